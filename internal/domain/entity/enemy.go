package entity

// EnemyState is the active behavior of an enemy. Exactly one is active at a time.
type EnemyState int

const (
	StateIdle EnemyState = iota
	StatePacing
	StateChasing
	StateAttacking
)

// String returns the string representation of the enemy state
func (s EnemyState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StatePacing:
		return "Pacing"
	case StateChasing:
		return "Chasing"
	case StateAttacking:
		return "Attacking"
	default:
		return "Unknown"
	}
}

// IsPassive returns true for the non-hostile states (Idle, Pacing)
func (s EnemyState) IsPassive() bool {
	return s == StateIdle || s == StatePacing
}

// EnemyStats are the constant enemy parameters shared by every spawn
type EnemyStats struct {
	Size                float64
	Speed               float64
	MaxHealth           int
	AttackPower         int
	AttackCooldownTicks int
	SightRadius         float64
	AttackRange         float64
	PaceDistance        float64
}

// Enemy represents an enemy entity
type Enemy struct {
	Entity
	ID EntityID

	State     EnemyState
	InitialX  float64 // pacing anchor
	Direction int     // -1 or +1

	AttackPower    int
	AttackCooldown int // ticks left in Attacking

	// Gold is the loot value, fixed at spawn
	Gold int

	// AI parameters
	AttackCooldownTicks int
	SightRadius         float64
	AttackRange         float64
	PaceDistance        float64
}

// NewEnemy creates a new enemy in its passive state
func NewEnemy(id EntityID, x, y float64, gold int, stats EnemyStats) *Enemy {
	e := &Enemy{
		Entity: Entity{
			X:      x,
			Y:      y,
			Size:   stats.Size,
			Speed:  stats.Speed,
			Health: stats.MaxHealth,
		},
		ID:                  id,
		InitialX:            x,
		Direction:           -1,
		AttackPower:         stats.AttackPower,
		Gold:                gold,
		AttackCooldownTicks: stats.AttackCooldownTicks,
		SightRadius:         stats.SightRadius,
		AttackRange:         stats.AttackRange,
		PaceDistance:        stats.PaceDistance,
	}
	e.State = e.PassiveState()
	return e
}

// PassiveState returns the state an enemy falls back to when it loses the player.
// Enemies without room to pace stand idle.
func (e *Enemy) PassiveState() EnemyState {
	if e.PaceDistance > 0 {
		return StatePacing
	}
	return StateIdle
}

// PaceBounds returns the x range the enemy walks while pacing
func (e *Enemy) PaceBounds() (minX, maxX float64) {
	return e.InitialX - e.PaceDistance, e.InitialX + e.PaceDistance
}
