package entity

import "math"

// Entity is the positional and health record shared by Player and Enemy.
// Position is the top-left corner of a square bounding box of side Size.
type Entity struct {
	X, Y   float64 // world units
	Size   float64
	Speed  float64 // world units per second
	Health int
}

// TakeDamage applies damage and floors health at zero.
// Returns true if the entity is dead afterwards.
func (e *Entity) TakeDamage(damage int) bool {
	if damage < 0 {
		damage = 0
	}
	e.Health -= damage
	if e.Health < 0 {
		e.Health = 0
	}
	return e.Health <= 0
}

// IsAlive returns true if health is above zero
func (e *Entity) IsAlive() bool {
	return e.Health > 0
}

// Center returns the center of the bounding box
func (e *Entity) Center() (float64, float64) {
	return e.X + e.Size/2, e.Y + e.Size/2
}

// GetHitbox returns the bounding box in world coordinates
func (e *Entity) GetHitbox() (x, y, w, h float64) {
	return e.X, e.Y, e.Size, e.Size
}

// DistanceTo returns the Euclidean distance between the centers of two entities
func (e *Entity) DistanceTo(other *Entity) float64 {
	ax, ay := e.Center()
	bx, by := other.Center()
	return math.Hypot(bx-ax, by-ay)
}

// ClampTo keeps the bounding box inside [0, width-Size] x [0, height-Size]
func (e *Entity) ClampTo(width, height float64) {
	e.X = clamp(e.X, 0, width-e.Size)
	e.Y = clamp(e.Y, 0, height-e.Size)
}

// RectsOverlap is the AABB intersection test used for every interaction.
// Touching edges do not count as overlap.
func RectsOverlap(x1, y1, w1, h1, x2, y2, w2, h2 float64) bool {
	return x1 < x2+w2 && x1+w1 > x2 && y1 < y2+h2 && y1+h1 > y2
}

// clamp limits v to [lo, hi]. When hi < lo the range collapses to lo.
func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
