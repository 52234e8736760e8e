// Package world holds the World aggregate: the single owner of every piece of
// mutable simulation state.
package world

import (
	"github.com/younwookim/lootrun/internal/domain/entity"
)

// World owns the player, the live enemies, the chests, the map and the camera.
// Entities never keep references to each other; systems look them up each tick.
type World struct {
	Player  *entity.Player
	Enemies []*entity.Enemy
	Chests  []*entity.Chest
	Map     *entity.GameMap
	Camera  *entity.Camera
}

// New creates a world from already built parts
func New(player *entity.Player, enemies []*entity.Enemy, chests []*entity.Chest, m *entity.GameMap, cam *entity.Camera) *World {
	if enemies == nil {
		enemies = make([]*entity.Enemy, 0)
	}
	if chests == nil {
		chests = make([]*entity.Chest, 0)
	}
	return &World{
		Player:  player,
		Enemies: enemies,
		Chests:  chests,
		Map:     m,
		Camera:  cam,
	}
}

// Bounds returns the map size in world units
func (w *World) Bounds() (width, height float64) {
	return w.Map.PixelWidth(), w.Map.PixelHeight()
}

// Over returns true once the player has no health left
func (w *World) Over() bool {
	return !w.Player.IsAlive()
}

// RemoveEnemies drops every enemy for which remove returns true, in one pass.
// Callers collect the decision first so no iteration sees a half-filtered slice.
func (w *World) RemoveEnemies(remove func(e *entity.Enemy) bool) int {
	kept := w.Enemies[:0]
	removed := 0
	for _, e := range w.Enemies {
		if remove(e) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	// Clear the tail so removed enemies can be collected
	for i := len(kept); i < len(w.Enemies); i++ {
		w.Enemies[i] = nil
	}
	w.Enemies = kept
	return removed
}

// FindEnemy returns the live enemy with the given ID
func (w *World) FindEnemy(id entity.EntityID) (*entity.Enemy, bool) {
	for _, e := range w.Enemies {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

// OpenChests returns the number of opened chests
func (w *World) OpenChests() int {
	n := 0
	for _, c := range w.Chests {
		if c.Open {
			n++
		}
	}
	return n
}
