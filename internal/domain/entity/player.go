package entity

// Dash holds the dash ability state.
// Both timers count down in elapsed milliseconds, so the dash length does not
// depend on the frame rate.
type Dash struct {
	Active          bool
	SpeedMultiplier float64
	DurationMs      float64
	CooldownMs      float64

	RemainingMs         float64
	CooldownRemainingMs float64
}

// PlayerStats are the constant player parameters
type PlayerStats struct {
	Size           float64
	Speed          float64
	MaxHealth      int
	AttackPower    int
	DashMultiplier float64
	DashDurationMs float64
	DashCooldownMs float64
}

// Player represents the player entity
type Player struct {
	Entity

	MaxHealth   int
	Gold        int
	AttackPower int

	Dash Dash
}

// NewPlayer creates a new player at the given world position
func NewPlayer(x, y float64, stats PlayerStats) *Player {
	return &Player{
		Entity: Entity{
			X:      x,
			Y:      y,
			Size:   stats.Size,
			Speed:  stats.Speed,
			Health: stats.MaxHealth,
		},
		MaxHealth:   stats.MaxHealth,
		AttackPower: stats.AttackPower,
		Dash: Dash{
			SpeedMultiplier: stats.DashMultiplier,
			DurationMs:      stats.DashDurationMs,
			CooldownMs:      stats.DashCooldownMs,
		},
	}
}

// TryDash starts a dash if none is active and the cooldown has elapsed.
// The cooldown starts together with the dash. Returns false (and changes
// nothing) when the dash is not available.
func (p *Player) TryDash() bool {
	if !p.CanDash() {
		return false
	}
	p.Dash.Active = true
	p.Dash.RemainingMs = p.Dash.DurationMs
	p.Dash.CooldownRemainingMs = p.Dash.CooldownMs
	return true
}

// CanDash returns true if a dash may start now
func (p *Player) CanDash() bool {
	return !p.Dash.Active && p.Dash.CooldownRemainingMs <= 0
}

// TickDash advances the dash timers by elapsedMs
func (p *Player) TickDash(elapsedMs float64) {
	if elapsedMs <= 0 {
		return
	}

	if p.Dash.Active {
		p.Dash.RemainingMs -= elapsedMs
		if p.Dash.RemainingMs <= 0 {
			p.Dash.RemainingMs = 0
			p.Dash.Active = false
		}
	}

	if p.Dash.CooldownRemainingMs > 0 {
		p.Dash.CooldownRemainingMs -= elapsedMs
		if p.Dash.CooldownRemainingMs < 0 {
			p.Dash.CooldownRemainingMs = 0
		}
	}
}

// IsDashing returns true while a dash is in progress
func (p *Player) IsDashing() bool {
	return p.Dash.Active
}

// EffectiveSpeed returns the movement speed, boosted while dashing
func (p *Player) EffectiveSpeed() float64 {
	if p.Dash.Active {
		return p.Speed * p.Dash.SpeedMultiplier
	}
	return p.Speed
}

// AddGold credits gold to the player. Negative amounts are ignored.
func (p *Player) AddGold(amount int) {
	if amount > 0 {
		p.Gold += amount
	}
}
