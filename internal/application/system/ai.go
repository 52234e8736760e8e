package system

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/lootrun/internal/domain/entity"
	"github.com/younwookim/lootrun/internal/domain/world"
	"github.com/younwookim/lootrun/internal/infrastructure/logger"
)

// Separation configures how strongly enemies push each other apart
type Separation struct {
	Distance float64
	Strength float64
}

// AISystem runs the enemy state machine
type AISystem struct {
	separation Separation
	log        *logrus.Entry

	// Event callbacks
	OnPlayerHit func(damage int)
}

// NewAISystem creates a new AI system
func NewAISystem(sep Separation) *AISystem {
	return &AISystem{
		separation: sep,
		log:        logger.For("ai"),
	}
}

// Update advances every enemy by one tick, then pushes crowded enemies apart
func (s *AISystem) Update(w *world.World, dt float64) {
	mapW, _ := w.Bounds()
	for _, enemy := range w.Enemies {
		s.updateEnemy(enemy, w.Player, mapW, dt)
	}
	s.separate(w)
}

// updateEnemy makes at most one state transition. A tick that transitions
// does not also move.
func (s *AISystem) updateEnemy(enemy *entity.Enemy, player *entity.Player, mapW, dt float64) {
	dist := enemy.DistanceTo(&player.Entity)

	switch enemy.State {
	case entity.StateIdle:
		if dist <= enemy.SightRadius {
			s.transition(enemy, entity.StateChasing)
		}

	case entity.StatePacing:
		if dist <= enemy.SightRadius {
			s.transition(enemy, entity.StateChasing)
			return
		}
		pace(enemy, mapW, dt)

	case entity.StateChasing:
		switch {
		case dist > enemy.SightRadius:
			enemy.InitialX = enemy.X
			s.transition(enemy, enemy.PassiveState())
		case dist <= enemy.AttackRange:
			s.transition(enemy, entity.StateAttacking)
			enemy.AttackCooldown = enemy.AttackCooldownTicks
			s.strike(enemy, player)
		default:
			chase(enemy, player, dt)
		}

	case entity.StateAttacking:
		enemy.AttackCooldown--
		if enemy.AttackCooldown <= 0 {
			enemy.AttackCooldown = 0
			s.transition(enemy, entity.StateChasing)
		}

	default:
		panic(fmt.Sprintf("ai: unhandled enemy state %v", enemy.State))
	}
}

func (s *AISystem) transition(enemy *entity.Enemy, to entity.EnemyState) {
	s.log.WithFields(logrus.Fields{
		"enemy": enemy.ID,
		"from":  enemy.State,
		"to":    to,
	}).Debug("enemy state change")
	enemy.State = to
}

// strike deals the enemy's attack to the player once, on entering Attacking
func (s *AISystem) strike(enemy *entity.Enemy, player *entity.Player) {
	if enemy.AttackPower <= 0 {
		return
	}
	player.TakeDamage(enemy.AttackPower)
	if s.OnPlayerHit != nil {
		s.OnPlayerHit(enemy.AttackPower)
	}
}

// paceLimits is the pacing band cut to the map, so an enemy anchored near an
// edge still turns around instead of pressing against the wall
func paceLimits(enemy *entity.Enemy, mapW float64) (minX, maxX float64) {
	minX, maxX = enemy.PaceBounds()
	minX = math.Max(minX, 0)
	maxX = math.Min(maxX, mapW-enemy.Size)
	if maxX < minX {
		maxX = minX
	}
	return minX, maxX
}

// pace walks the enemy along its band, snapping to and reversing at each end
func pace(enemy *entity.Enemy, mapW, dt float64) {
	minX, maxX := paceLimits(enemy, mapW)
	enemy.X += float64(enemy.Direction) * enemy.Speed * dt

	if enemy.Direction < 0 && enemy.X <= minX {
		enemy.X = minX
		enemy.Direction = 1
	} else if enemy.Direction > 0 && enemy.X >= maxX {
		enemy.X = maxX
		enemy.Direction = -1
	}
}

// chase steps the enemy straight toward the player's center, never past it
func chase(enemy *entity.Enemy, player *entity.Player, dt float64) {
	ex, ey := enemy.Center()
	px, py := player.Center()
	dx, dy := px-ex, py-ey

	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return
	}

	step := math.Min(enemy.Speed*dt, dist)
	enemy.X += dx / dist * step
	enemy.Y += dy / dist * step
}

// separate applies the inverse distance repulsion between enemies.
// All pushes are computed from the positions before any push is applied,
// so the result does not depend on slice order.
func (s *AISystem) separate(w *world.World) {
	n := len(w.Enemies)
	mapW, mapH := w.Bounds()

	if n > 1 && s.separation.Distance > 0 && s.separation.Strength != 0 {
		pushX := make([]float64, n)
		pushY := make([]float64, n)

		for i, a := range w.Enemies {
			ax, ay := a.Center()
			for j, b := range w.Enemies {
				if i == j {
					continue
				}
				bx, by := b.Center()
				dx, dy := ax-bx, ay-by
				dist := math.Hypot(dx, dy)
				if dist >= s.separation.Distance {
					continue
				}

				if dist == 0 {
					// Stacked exactly: split along x, lower index goes left
					if i < j {
						pushX[i] -= s.separation.Strength
					} else {
						pushX[i] += s.separation.Strength
					}
					continue
				}

				// unit vector scaled by 1/dist; below one unit the weight stops growing
				weight := s.separation.Strength / math.Max(dist, 1)
				pushX[i] += dx / dist * weight
				pushY[i] += dy / dist * weight
			}
		}

		for i, enemy := range w.Enemies {
			enemy.X += pushX[i]
			enemy.Y += pushY[i]
		}
	}

	for _, enemy := range w.Enemies {
		if enemy.State.IsPassive() && enemy.PaceDistance > 0 {
			minX, maxX := paceLimits(enemy, mapW)
			enemy.X = math.Max(minX, math.Min(maxX, enemy.X))
		}
		enemy.ClampTo(mapW, mapH)
	}
}
