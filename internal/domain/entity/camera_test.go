package entity

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCamera_SmoothingRange(t *testing.T) {
	tests := []struct {
		name      string
		smoothing float64
		want      float64
	}{
		{"valid", 0.25, 0.25},
		{"one", 1, 1},
		{"zero falls back", 0, DefaultCameraSmoothing},
		{"negative falls back", -1, DefaultCameraSmoothing},
		{"NaN falls back", math.NaN(), DefaultCameraSmoothing},
		{"overshoot capped", 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewCamera(320, 240, tt.smoothing)
			assert.Equal(t, tt.want, cam.Smoothing)
		})
	}
}

func TestCamera_Update(t *testing.T) {
	t.Run("moves halfway with smoothing 0.5", func(t *testing.T) {
		cam := NewCamera(320, 240, 0.5)

		// target center (660, 520) -> wanted top-left (500, 400)
		cam.Update(660, 520, 2000, 2000)

		assert.Equal(t, 250.0, cam.X)
		assert.Equal(t, 200.0, cam.Y)
	})

	t.Run("smoothing 1 snaps", func(t *testing.T) {
		cam := NewCamera(320, 240, 1)

		cam.Update(660, 520, 2000, 2000)

		assert.Equal(t, 500.0, cam.X)
		assert.Equal(t, 400.0, cam.Y)
	})

	t.Run("floors to whole units", func(t *testing.T) {
		cam := NewCamera(320, 240, 0.5)

		cam.Update(160+3, 120+5, 2000, 2000)

		assert.Equal(t, 1.0, cam.X)
		assert.Equal(t, 2.0, cam.Y)
	})

	t.Run("converges on target", func(t *testing.T) {
		cam := NewCamera(320, 240, 0.5)

		for i := 0; i < 64; i++ {
			cam.Update(1000, 1000, 2000, 2000)
		}

		assert.InDelta(t, 840, cam.X, 1)
		assert.InDelta(t, 880, cam.Y, 1)
	})

	t.Run("pins to origin when map is smaller than viewport", func(t *testing.T) {
		cam := NewCamera(320, 240, 1)

		cam.Update(100, 100, 200, 200)

		assert.Equal(t, 0.0, cam.X)
		assert.Equal(t, 0.0, cam.Y)
	})
}

func TestCamera_StaysInsideMap(t *testing.T) {
	const mapW, mapH = 1600.0, 1200.0
	rng := rand.New(rand.NewSource(12345))

	for _, smoothing := range []float64{0.1, 0.5, 1} {
		cam := NewCamera(320, 240, smoothing)
		for i := 0; i < 500; i++ {
			cam.Update(rng.Float64()*mapW, rng.Float64()*mapH, mapW, mapH)

			assert.GreaterOrEqual(t, cam.X, 0.0)
			assert.LessOrEqual(t, cam.X, mapW-cam.Width)
			assert.GreaterOrEqual(t, cam.Y, 0.0)
			assert.LessOrEqual(t, cam.Y, mapH-cam.Height)
		}
	}
}

func TestCamera_CenterOn(t *testing.T) {
	cam := NewCamera(320, 240, 0.5)

	cam.CenterOn(1590, 10, 1600, 1200)

	assert.Equal(t, 1280.0, cam.X)
	assert.Equal(t, 0.0, cam.Y)
}

func TestCamera_WorldToScreenAndSees(t *testing.T) {
	cam := NewCamera(320, 240, 1)
	cam.X, cam.Y = 100, 50

	sx, sy := cam.WorldToScreen(150, 80)
	assert.Equal(t, 50.0, sx)
	assert.Equal(t, 30.0, sy)

	assert.True(t, cam.Sees(90, 40, 20, 20))
	assert.False(t, cam.Sees(0, 0, 32, 32))
	assert.False(t, cam.Sees(500, 50, 32, 32))
}
