package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/younwookim/lootrun/internal/application/simulation"
	"github.com/younwookim/lootrun/internal/application/system"
)

// Frame is one decoded tick of a replay
type Frame struct {
	NowMs  float64
	Intent system.Intent
	Reset  bool
}

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// Decode reads replay data from r
func Decode(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	return &data, nil
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file)
}

// Next returns the next frame and advances
func (r *Replayer) Next() (Frame, bool) {
	if r.frame >= len(r.data.Frames) {
		return Frame{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return Frame{
		NowMs:  fi.T,
		Intent: system.IntentFromBits(fi.I),
		Reset:  fi.Reset,
	}, true
}

// Done reports whether every frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// Apply feeds one frame into sim, resetting the world first when the frame says so
func Apply(sim *simulation.Simulation, f Frame) error {
	if f.Reset {
		if err := sim.Reset(); err != nil {
			return err
		}
	}
	sim.Tick(f.NowMs, f.Intent)
	return nil
}

// Run plays every remaining frame into sim without rendering
func Run(sim *simulation.Simulation, r *Replayer) error {
	for {
		f, ok := r.Next()
		if !ok {
			return nil
		}
		if err := Apply(sim, f); err != nil {
			return fmt.Errorf("frame %d: %w", r.CurrentFrame()-1, err)
		}
	}
}
