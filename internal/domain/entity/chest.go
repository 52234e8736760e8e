package entity

// Chest is a static loot container that can be opened exactly once
type Chest struct {
	X, Y float64
	Size float64
	Gold int
	Open bool
}

// NewChest creates a closed chest holding gold
func NewChest(x, y, size float64, gold int) *Chest {
	return &Chest{
		X:    x,
		Y:    y,
		Size: size,
		Gold: gold,
	}
}

// TryOpen opens the chest and returns the gold it held.
// An already open chest yields nothing.
func (c *Chest) TryOpen() int {
	if c.Open {
		return 0
	}
	gold := c.Gold
	c.Open = true
	c.Gold = 0
	return gold
}

// GetHitbox returns the chest box in world coordinates
func (c *Chest) GetHitbox() (x, y, w, h float64) {
	return c.X, c.Y, c.Size, c.Size
}
