package system

// Intent is the per-tick player input. It is built fresh every tick and never
// mutated by the simulation.
type Intent struct {
	MoveUp    bool
	MoveDown  bool
	MoveLeft  bool
	MoveRight bool
	Attack    bool // held
	Dash      bool // edge-triggered: true only on the tick the key went down
}

// Axis returns the raw movement direction, each component in {-1, 0, 1}.
// Opposite keys cancel out.
func (in Intent) Axis() (dx, dy float64) {
	if in.MoveLeft {
		dx--
	}
	if in.MoveRight {
		dx++
	}
	if in.MoveUp {
		dy--
	}
	if in.MoveDown {
		dy++
	}
	return dx, dy
}

const (
	bitUp uint8 = 1 << iota
	bitDown
	bitLeft
	bitRight
	bitAttack
	bitDash
)

// Bits packs the intent into one byte for replay files
func (in Intent) Bits() uint8 {
	var b uint8
	if in.MoveUp {
		b |= bitUp
	}
	if in.MoveDown {
		b |= bitDown
	}
	if in.MoveLeft {
		b |= bitLeft
	}
	if in.MoveRight {
		b |= bitRight
	}
	if in.Attack {
		b |= bitAttack
	}
	if in.Dash {
		b |= bitDash
	}
	return b
}

// IntentFromBits is the inverse of Bits. Unknown bits are ignored.
func IntentFromBits(b uint8) Intent {
	return Intent{
		MoveUp:    b&bitUp != 0,
		MoveDown:  b&bitDown != 0,
		MoveLeft:  b&bitLeft != 0,
		MoveRight: b&bitRight != 0,
		Attack:    b&bitAttack != 0,
		Dash:      b&bitDash != 0,
	}
}
