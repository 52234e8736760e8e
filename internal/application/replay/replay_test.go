package replay

import (
	"bytes"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/lootrun/internal/application/simulation"
	"github.com/younwookim/lootrun/internal/application/system"
	"github.com/younwookim/lootrun/internal/infrastructure/config"
)

func TestRecorder_RecordFrame(t *testing.T) {
	rec := NewRecorder(42, "game.json")

	rec.RecordFrame(0, system.Intent{})
	rec.RecordFrame(16, system.Intent{MoveLeft: true, Attack: true})
	rec.RecordReset()
	rec.RecordFrame(33, system.Intent{Dash: true})

	data := rec.Data()
	assert.Equal(t, Version, data.Version)
	assert.Equal(t, int64(42), data.Seed)
	assert.Equal(t, "game.json", data.Config)
	require.Len(t, data.Frames, 3)

	assert.Equal(t, FrameInput{F: 0, T: 0}, data.Frames[0])
	assert.Equal(t, 1, data.Frames[1].F)
	assert.Equal(t, 16.0, data.Frames[1].T)
	assert.Equal(t, system.Intent{MoveLeft: true, Attack: true}.Bits(), data.Frames[1].I)
	assert.False(t, data.Frames[1].Reset)
	assert.True(t, data.Frames[2].Reset)
}

func TestRecorder_Stop(t *testing.T) {
	rec := NewRecorder(1, "game.json")
	rec.RecordFrame(0, system.Intent{})
	rec.Stop()
	rec.RecordFrame(16, system.Intent{})
	rec.RecordReset()

	assert.False(t, rec.IsRecording())
	assert.Equal(t, 1, rec.FrameCount())
}

func TestRecorder_EmptyRecording(t *testing.T) {
	rec := NewRecorder(1, "game.json")

	assert.ErrorIs(t, rec.Write(&bytes.Buffer{}), ErrEmptyRecording)
	assert.ErrorIs(t, rec.Save(filepath.Join(t.TempDir(), "empty.json")), ErrEmptyRecording)
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	rec := NewRecorder(7, "arena.yaml")
	rec.RecordFrame(100, system.Intent{MoveUp: true})
	rec.RecordFrame(116, system.Intent{MoveUp: true, Dash: true})

	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, rec.Save(path))

	data, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, rec.Data().Frames, data.Frames)
	assert.Equal(t, "arena.yaml", data.Config)
}

func TestLoadReplay_Errors(t *testing.T) {
	_, err := LoadReplay(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to open file")

	_, err = Decode(bytes.NewBufferString("{not json"))
	assert.ErrorContains(t, err, "failed to decode replay")
}

func TestReplayer_Next(t *testing.T) {
	data := ReplayData{
		Seed: 99999,
		Frames: []FrameInput{
			{F: 0, T: 0},
			{F: 1, T: 16, I: system.Intent{MoveRight: true}.Bits()},
			{F: 2, T: 32, Reset: true},
		},
	}
	replayer := NewReplayer(data)

	assert.Equal(t, int64(99999), replayer.Seed())
	assert.Equal(t, 3, replayer.TotalFrames())

	f, ok := replayer.Next()
	require.True(t, ok)
	assert.Equal(t, Frame{}, f)

	f, ok = replayer.Next()
	require.True(t, ok)
	assert.Equal(t, 16.0, f.NowMs)
	assert.True(t, f.Intent.MoveRight)

	f, ok = replayer.Next()
	require.True(t, ok)
	assert.True(t, f.Reset)
	assert.True(t, replayer.Done())
	assert.Equal(t, 3, replayer.CurrentFrame())

	_, ok = replayer.Next()
	assert.False(t, ok)

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())
	assert.False(t, replayer.Done())
}

// TestReplay_ReproducesSession records a session with a mid-run reset and plays
// it back into a fresh simulation built from the recorded seed
func TestReplay_ReproducesSession(t *testing.T) {
	cfg := config.Default()
	cfg.World.Cols, cfg.World.Rows = 20, 15

	live, err := simulation.New(cfg, 31337)
	require.NoError(t, err)
	rec := NewRecorder(live.Seed(), "game.json")

	rng := rand.New(rand.NewSource(5))
	in := system.Intent{}
	for i := 0; i < 600; i++ {
		if i%15 == 0 {
			in = system.IntentFromBits(uint8(rng.Intn(64)))
		}
		if i == 400 {
			require.NoError(t, live.Reset())
			rec.RecordReset()
		}
		now := float64(i) * 16.6
		rec.RecordFrame(now, in)
		live.Tick(now, in)
	}

	var buf bytes.Buffer
	require.NoError(t, rec.Write(&buf))
	data, err := Decode(&buf)
	require.NoError(t, err)

	replayed, err := simulation.New(cfg, data.Seed)
	require.NoError(t, err)
	require.NoError(t, Run(replayed, NewReplayer(*data)))

	assert.Equal(t, live.Snapshot(), replayed.Snapshot())
	assert.Equal(t, live.Stats(), replayed.Stats())
}
