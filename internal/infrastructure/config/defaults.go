package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Default returns the built-in configuration. Loaded files are overlaid on it.
func Default() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{
			ScreenWidth:  480,
			ScreenHeight: 320,
			Scale:        2,
			Framerate:    60,
		},
		World: WorldConfig{
			Cols:       40,
			Rows:       30,
			TileSize:   32,
			EnemyCount: 8,
			ChestCount: 6,
			ChestGold:  GoldRange{Min: 5, Max: 25},
		},
		Player: PlayerConfig{
			Size:        28,
			Speed:       160,
			MaxHealth:   100,
			AttackPower: 10,
			Dash: DashConfig{
				SpeedMultiplier: 3,
				DurationMs:      200,
				CooldownMs:      1500,
			},
		},
		Enemy: EnemyConfig{
			Size:                28,
			Speed:               70,
			MaxHealth:           30,
			AttackPower:         5,
			AttackCooldownTicks: 45,
			SightRadius:         180,
			AttackRange:         34,
			PaceDistance:        48,
			GoldDrop:            GoldRange{Min: 3, Max: 12},
			Separation: SeparationConfig{
				Distance: 40,
				Strength: 20,
			},
		},
		Camera: CameraConfig{
			Smoothing: 0.5,
		},
		Clock: ClockConfig{
			FixedUnitMs: 1000,
			MaxDeltaMs:  1000,
		},
	}
}

// Validate checks the ranges the simulation relies on
func (c *GameConfig) Validate() error {
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		return fmt.Errorf("%w: display size must be positive, got %dx%d", ErrInvalidConfig, c.Display.ScreenWidth, c.Display.ScreenHeight)
	}
	if c.Display.Framerate <= 0 {
		return fmt.Errorf("%w: display.framerate must be positive, got %d", ErrInvalidConfig, c.Display.Framerate)
	}
	if c.World.TileSize <= 0 {
		return fmt.Errorf("%w: world.tileSize must be positive, got %d", ErrInvalidConfig, c.World.TileSize)
	}
	if len(c.World.Layout) == 0 && (c.World.Cols <= 0 || c.World.Rows <= 0) {
		return fmt.Errorf("%w: world size must be positive, got %dx%d", ErrInvalidConfig, c.World.Cols, c.World.Rows)
	}
	if c.World.EnemyCount < 0 || c.World.ChestCount < 0 {
		return fmt.Errorf("%w: world counts must not be negative", ErrInvalidConfig)
	}
	if err := c.World.ChestGold.validate("world.chestGold", 1); err != nil {
		return err
	}
	if c.Player.Size <= 0 || c.Player.Speed <= 0 || c.Player.MaxHealth <= 0 {
		return fmt.Errorf("%w: player size, speed and maxHealth must be positive", ErrInvalidConfig)
	}
	if c.Player.Dash.SpeedMultiplier < 1 {
		return fmt.Errorf("%w: player.dash.speedMultiplier must be >= 1, got %v", ErrInvalidConfig, c.Player.Dash.SpeedMultiplier)
	}
	if c.Player.Dash.DurationMs < 0 || c.Player.Dash.CooldownMs < 0 {
		return fmt.Errorf("%w: player.dash timers must not be negative", ErrInvalidConfig)
	}
	if c.Enemy.Size <= 0 || c.Enemy.Speed < 0 || c.Enemy.MaxHealth <= 0 {
		return fmt.Errorf("%w: enemy size and maxHealth must be positive", ErrInvalidConfig)
	}
	if c.Enemy.AttackCooldownTicks < 1 {
		return fmt.Errorf("%w: enemy.attackCooldownTicks must be >= 1, got %d", ErrInvalidConfig, c.Enemy.AttackCooldownTicks)
	}
	if c.Enemy.AttackRange > c.Enemy.SightRadius {
		return fmt.Errorf("%w: enemy.attackRange (%v) must not exceed enemy.sightRadius (%v)", ErrInvalidConfig, c.Enemy.AttackRange, c.Enemy.SightRadius)
	}
	if c.Enemy.PaceDistance < 0 {
		return fmt.Errorf("%w: enemy.paceDistance must not be negative", ErrInvalidConfig)
	}
	if err := c.Enemy.GoldDrop.validate("enemy.goldDrop", 0); err != nil {
		return err
	}
	if s := c.Camera.Smoothing; math.IsNaN(s) || s <= 0 || s > 1 {
		return fmt.Errorf("%w: camera.smoothing must be in (0, 1], got %v", ErrInvalidConfig, s)
	}
	if c.Clock.FixedUnitMs <= 0 {
		return fmt.Errorf("%w: clock.fixedUnitMs must be positive, got %v", ErrInvalidConfig, c.Clock.FixedUnitMs)
	}
	if c.Clock.MaxDeltaMs <= 0 {
		return fmt.Errorf("%w: clock.maxDeltaMs must be positive, got %v", ErrInvalidConfig, c.Clock.MaxDeltaMs)
	}
	return nil
}

func (r GoldRange) validate(field string, min int) error {
	if r.Min < min {
		return fmt.Errorf("%w: %s.min must be >= %d, got %d", ErrInvalidConfig, field, min, r.Min)
	}
	if r.Max < r.Min {
		return fmt.Errorf("%w: %s.max (%d) is below min (%d)", ErrInvalidConfig, field, r.Max, r.Min)
	}
	return nil
}
