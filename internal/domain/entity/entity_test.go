package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntity_TakeDamage(t *testing.T) {
	e := &Entity{Health: 25}

	killed := e.TakeDamage(10)
	assert.False(t, killed)
	assert.Equal(t, 15, e.Health)

	// Overkill floors at zero
	killed = e.TakeDamage(100)
	assert.True(t, killed)
	assert.Equal(t, 0, e.Health)

	// Further damage never goes negative
	killed = e.TakeDamage(5)
	assert.True(t, killed)
	assert.Equal(t, 0, e.Health)
}

func TestEntity_TakeDamage_IgnoresNegative(t *testing.T) {
	e := &Entity{Health: 10}

	e.TakeDamage(-5)

	assert.Equal(t, 10, e.Health, "negative damage must not heal")
}

func TestEntity_IsAlive(t *testing.T) {
	e := &Entity{Health: 1}
	assert.True(t, e.IsAlive())

	e.Health = 0
	assert.False(t, e.IsAlive())
}

func TestEntity_CenterAndDistance(t *testing.T) {
	a := &Entity{X: 0, Y: 0, Size: 10}
	b := &Entity{X: 30, Y: 40, Size: 10}

	cx, cy := a.Center()
	assert.Equal(t, 5.0, cx)
	assert.Equal(t, 5.0, cy)
	assert.InDelta(t, 50.0, a.DistanceTo(b), 0.0001)
	assert.InDelta(t, 50.0, b.DistanceTo(a), 0.0001)
}

func TestEntity_ClampTo(t *testing.T) {
	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{"inside", 50, 60, 50, 60},
		{"negative", -10, -3, 0, 0},
		{"past right/bottom edge", 500, 400, 90, 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Entity{X: tt.x, Y: tt.y, Size: 10}
			e.ClampTo(100, 80)
			assert.Equal(t, tt.wantX, e.X)
			assert.Equal(t, tt.wantY, e.Y)
		})
	}
}

func TestRectsOverlap(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, w1, h1 float64
		x2, y2, w2, h2 float64
		want           bool
	}{
		{"identical", 64, 64, 32, 32, 64, 64, 32, 32, true},
		{"partial", 0, 0, 10, 10, 5, 5, 10, 10, true},
		{"contained", 0, 0, 100, 100, 10, 10, 5, 5, true},
		{"touching edge", 0, 0, 10, 10, 10, 0, 10, 10, false},
		{"apart", 0, 0, 10, 10, 50, 50, 10, 10, false},
		{"apart vertically", 0, 0, 10, 10, 0, 20, 10, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RectsOverlap(tt.x1, tt.y1, tt.w1, tt.h1, tt.x2, tt.y2, tt.w2, tt.h2)
			assert.Equal(t, tt.want, got)
			// Overlap is symmetric
			assert.Equal(t, tt.want, RectsOverlap(tt.x2, tt.y2, tt.w2, tt.h2, tt.x1, tt.y1, tt.w1, tt.h1))
		})
	}
}
