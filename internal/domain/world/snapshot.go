package world

import "github.com/younwookim/lootrun/internal/domain/entity"

// PlayerView is the read-only player state handed to renderers
type PlayerView struct {
	X, Y                  float64
	Size                  float64
	Health                int
	MaxHealth             int
	Gold                  int
	Dashing               bool
	DashCooldownRemaining float64 // milliseconds
}

// DashReady returns true if the player could dash now
func (p PlayerView) DashReady() bool {
	return !p.Dashing && p.DashCooldownRemaining <= 0
}

// EnemyView is the read-only enemy state handed to renderers
type EnemyView struct {
	ID     entity.EntityID
	X, Y   float64
	Size   float64
	State  entity.EnemyState
	Health int
}

// ChestView is the read-only chest state handed to renderers
type ChestView struct {
	X, Y float64
	Size float64
	Open bool
	Gold int
}

// MapView is the read-only map handed to renderers.
// Tiles is shared with the live map, which is never mutated after creation.
type MapView struct {
	Cols, Rows int
	TileSize   int
	Tiles      [][]entity.Tile
}

// CameraView is the read-only viewport
type CameraView struct {
	X, Y          float64
	Width, Height float64
}

// Snapshot is a fully updated copy of the world. It shares no mutable state
// with the live World, so it is safe to read from a separate render pass.
type Snapshot struct {
	Player  PlayerView
	Enemies []EnemyView
	Chests  []ChestView
	Map     MapView
	Camera  CameraView
}

// Snapshot copies the current world state
func (w *World) Snapshot() Snapshot {
	p := w.Player
	snap := Snapshot{
		Player: PlayerView{
			X:                     p.X,
			Y:                     p.Y,
			Size:                  p.Size,
			Health:                p.Health,
			MaxHealth:             p.MaxHealth,
			Gold:                  p.Gold,
			Dashing:               p.Dash.Active,
			DashCooldownRemaining: p.Dash.CooldownRemainingMs,
		},
		Enemies: make([]EnemyView, 0, len(w.Enemies)),
		Chests:  make([]ChestView, 0, len(w.Chests)),
		Map: MapView{
			Cols:     w.Map.Cols,
			Rows:     w.Map.Rows,
			TileSize: w.Map.TileSize,
			Tiles:    w.Map.Tiles,
		},
		Camera: CameraView{
			X:      w.Camera.X,
			Y:      w.Camera.Y,
			Width:  w.Camera.Width,
			Height: w.Camera.Height,
		},
	}

	for _, e := range w.Enemies {
		snap.Enemies = append(snap.Enemies, EnemyView{
			ID:     e.ID,
			X:      e.X,
			Y:      e.Y,
			Size:   e.Size,
			State:  e.State,
			Health: e.Health,
		})
	}
	for _, c := range w.Chests {
		snap.Chests = append(snap.Chests, ChestView{
			X:    c.X,
			Y:    c.Y,
			Size: c.Size,
			Open: c.Open,
			Gold: c.Gold,
		})
	}

	return snap
}
