// Package simulation advances a World one tick at a time and owns the world's
// lifecycle (seeded creation and reset).
package simulation

import (
	"github.com/younwookim/lootrun/internal/application/system"
	"github.com/younwookim/lootrun/internal/domain/entity"
	"github.com/younwookim/lootrun/internal/domain/world"
	"github.com/younwookim/lootrun/internal/infrastructure/config"
)

// StepResult reports what happened during one step
type StepResult struct {
	ElapsedMs float64
	DT        float64
	Combat    system.CombatResult
}

// Events are optional callbacks fired from inside a step
type Events struct {
	OnPlayerHit   func(damage int)
	OnEnemyHit    func(enemy *entity.Enemy)
	OnEnemyKilled func(enemy *entity.Enemy)
	OnChestOpened func(chest *entity.Chest)
}

// Engine runs the systems in their fixed order
type Engine struct {
	clock    system.Clock
	movement *system.MovementSystem
	ai       *system.AISystem
	combat   *system.CombatSystem
}

// NewEngine creates the systems from config
func NewEngine(cfg *config.GameConfig) *Engine {
	return &Engine{
		clock: system.Clock{
			FixedUnitMs: cfg.Clock.FixedUnitMs,
			MaxDeltaMs:  cfg.Clock.MaxDeltaMs,
		},
		movement: system.NewMovementSystem(),
		ai: system.NewAISystem(system.Separation{
			Distance: cfg.Enemy.Separation.Distance,
			Strength: cfg.Enemy.Separation.Strength,
		}),
		combat: system.NewCombatSystem(),
	}
}

// SetEvents installs the step callbacks. Nil fields disable an event.
func (e *Engine) SetEvents(ev Events) {
	e.ai.OnPlayerHit = ev.OnPlayerHit
	e.combat.OnEnemyHit = ev.OnEnemyHit
	e.combat.OnEnemyKilled = ev.OnEnemyKilled
	e.combat.OnChestOpened = ev.OnChestOpened
}

// Step advances w by one tick:
// player timers and dash request, player movement and clamp, enemy AI and
// separation, attack resolution, camera.
// A step cannot fail; bad timestamps only produce a zero length step.
func (e *Engine) Step(w *world.World, prevMs, nowMs float64, in system.Intent) StepResult {
	elapsedMs, dt := e.clock.Delta(prevMs, nowMs)

	e.movement.UpdatePlayer(w, in, elapsedMs, dt)
	e.ai.Update(w, dt)
	res := e.combat.Resolve(w, in)
	system.FollowPlayer(w)

	return StepResult{
		ElapsedMs: elapsedMs,
		DT:        dt,
		Combat:    res,
	}
}
