package config

type PlayerConfig struct {
	Size        float64    `json:"size" yaml:"size"`
	Speed       float64    `json:"speed" yaml:"speed"` // world units per FixedUnitMs
	MaxHealth   int        `json:"maxHealth" yaml:"maxHealth"`
	AttackPower int        `json:"attackPower" yaml:"attackPower"`
	Dash        DashConfig `json:"dash" yaml:"dash"`
}

type DashConfig struct {
	SpeedMultiplier float64 `json:"speedMultiplier" yaml:"speedMultiplier"`
	DurationMs      float64 `json:"durationMs" yaml:"durationMs"`
	CooldownMs      float64 `json:"cooldownMs" yaml:"cooldownMs"`
}

type EnemyConfig struct {
	Size        float64 `json:"size" yaml:"size"`
	Speed       float64 `json:"speed" yaml:"speed"`
	MaxHealth   int     `json:"maxHealth" yaml:"maxHealth"`
	AttackPower int     `json:"attackPower" yaml:"attackPower"`
	// AttackCooldownTicks is how many ticks an enemy stays in Attacking
	AttackCooldownTicks int              `json:"attackCooldownTicks" yaml:"attackCooldownTicks"`
	SightRadius         float64          `json:"sightRadius" yaml:"sightRadius"`
	AttackRange         float64          `json:"attackRange" yaml:"attackRange"`
	PaceDistance        float64          `json:"paceDistance" yaml:"paceDistance"`
	GoldDrop            GoldRange        `json:"goldDrop" yaml:"goldDrop"`
	Separation          SeparationConfig `json:"separation" yaml:"separation"`
}

// SeparationConfig configures the repulsion between nearby enemies
type SeparationConfig struct {
	Distance float64 `json:"distance" yaml:"distance"`
	Strength float64 `json:"strength" yaml:"strength"`
}
