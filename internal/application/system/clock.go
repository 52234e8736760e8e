package system

import "math"

// Clock turns a pair of frame timestamps into simulation time
type Clock struct {
	FixedUnitMs float64
	MaxDeltaMs  float64
}

// Delta returns the elapsed milliseconds between prevMs and nowMs, and the same
// span as a fraction of FixedUnitMs. Backwards, non-finite or oversized gaps
// (a paused window, a suspended laptop) count as no time at all.
func (c Clock) Delta(prevMs, nowMs float64) (elapsedMs, dt float64) {
	elapsedMs = nowMs - prevMs
	if math.IsNaN(elapsedMs) || math.IsInf(elapsedMs, 0) || elapsedMs < 0 {
		return 0, 0
	}
	if c.MaxDeltaMs > 0 && elapsedMs > c.MaxDeltaMs {
		return 0, 0
	}
	if c.FixedUnitMs <= 0 {
		return elapsedMs, 0
	}
	return elapsedMs, elapsedMs / c.FixedUnitMs
}
