package system

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/lootrun/internal/domain/entity"
	"github.com/younwookim/lootrun/internal/domain/world"
	"github.com/younwookim/lootrun/internal/infrastructure/logger"
)

// MovementSystem applies the player's intent: dash timers, dash requests and
// eight-way movement clamped to the map.
type MovementSystem struct {
	log *logrus.Entry
}

// NewMovementSystem creates a new movement system
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{log: logger.For("movement")}
}

// UpdatePlayer advances the player by one tick
func (s *MovementSystem) UpdatePlayer(w *world.World, in Intent, elapsedMs, dt float64) {
	player := w.Player

	s.updateTimers(player, elapsedMs)

	if in.Dash && player.TryDash() {
		s.log.WithFields(logrus.Fields{
			"durationMs": player.Dash.DurationMs,
			"cooldownMs": player.Dash.CooldownMs,
		}).Debug("dash started")
	}

	s.handleMovement(player, in, dt)

	mapW, mapH := w.Bounds()
	player.ClampTo(mapW, mapH)
}

// updateTimers updates the player's millisecond timers
func (s *MovementSystem) updateTimers(player *entity.Player, elapsedMs float64) {
	wasDashing := player.IsDashing()
	player.TickDash(elapsedMs)
	if wasDashing && !player.IsDashing() {
		s.log.Debug("dash ended")
	}
}

// handleMovement moves the player along the held directions.
// Diagonals are scaled by 1/√2 so they are not faster than straight lines.
func (s *MovementSystem) handleMovement(player *entity.Player, in Intent, dt float64) {
	dx, dy := in.Axis()
	if dx == 0 && dy == 0 {
		return
	}

	speed := player.EffectiveSpeed() * dt
	if dx != 0 && dy != 0 {
		speed /= math.Sqrt2
	}

	player.X += dx * speed
	player.Y += dy * speed
}
