package entity

import "math"

// DefaultCameraSmoothing is used when a camera is built with an out of range factor
const DefaultCameraSmoothing = 0.5

// Camera is the viewport rectangle. X, Y is the top-left corner in world units.
type Camera struct {
	X, Y          float64
	Width, Height float64
	Smoothing     float64 // 0 < Smoothing <= 1
}

// NewCamera creates a camera of the given screen size.
// A smoothing factor <= 0 (a frozen camera) falls back to the default,
// and one above 1 (overshoot) is capped at 1.
func NewCamera(width, height, smoothing float64) *Camera {
	switch {
	case math.IsNaN(smoothing) || smoothing <= 0:
		smoothing = DefaultCameraSmoothing
	case smoothing > 1:
		smoothing = 1
	}
	return &Camera{
		Width:     width,
		Height:    height,
		Smoothing: smoothing,
	}
}

// Update moves the camera toward centering (targetX, targetY), never showing
// area outside a mapWidth x mapHeight map. The result is floored to whole units.
func (c *Camera) Update(targetX, targetY, mapWidth, mapHeight float64) {
	wantX := clamp(targetX-c.Width/2, 0, mapWidth-c.Width)
	wantY := clamp(targetY-c.Height/2, 0, mapHeight-c.Height)

	c.X = math.Floor(c.X + (wantX-c.X)*c.Smoothing)
	c.Y = math.Floor(c.Y + (wantY-c.Y)*c.Smoothing)
}

// CenterOn snaps the camera to the target without smoothing
func (c *Camera) CenterOn(targetX, targetY, mapWidth, mapHeight float64) {
	c.X = math.Floor(clamp(targetX-c.Width/2, 0, mapWidth-c.Width))
	c.Y = math.Floor(clamp(targetY-c.Height/2, 0, mapHeight-c.Height))
}

// WorldToScreen converts world coordinates to screen coordinates
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	return wx - c.X, wy - c.Y
}

// Sees returns true if the box intersects the viewport
func (c *Camera) Sees(x, y, w, h float64) bool {
	return RectsOverlap(x, y, w, h, c.X, c.Y, c.Width, c.Height)
}
