package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadGameJSON(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.Load("game.json")
	require.NoError(t, err)

	assert.Equal(t, 480, cfg.Display.ScreenWidth)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 32, cfg.World.TileSize)
	assert.Equal(t, 3.0, cfg.Player.Dash.SpeedMultiplier)
	assert.Equal(t, 45, cfg.Enemy.AttackCooldownTicks)
	assert.Equal(t, 0.5, cfg.Camera.Smoothing)
	assert.Equal(t, 250.0, cfg.Clock.MaxDeltaMs)
	assert.Nil(t, cfg.World.PlayerSpawn)
}

func TestLoader_LoadArenaYAML(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.Load("arena.yaml")
	require.NoError(t, err)

	assert.Len(t, cfg.World.Layout, 11)
	assert.Equal(t, "stone", cfg.World.TileMapping["#"])
	assert.Equal(t, int64(42), cfg.World.Seed)
	require.NotNil(t, cfg.World.PlayerSpawn)
	assert.Equal(t, 48.0, cfg.World.PlayerSpawn.X)
	assert.Equal(t, 32.0, cfg.Enemy.PaceDistance)

	// untouched sections keep their defaults
	assert.Equal(t, Default().Player, cfg.Player)
	assert.Equal(t, Default().Enemy.SightRadius, cfg.Enemy.SightRadius)
}

func TestLoader_OverlaysDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"partial.json": {Data: []byte(`{"player": {"speed": 200}, "camera": {"smoothing": 1}}`)},
		"partial.yml":  {Data: []byte("player:\n  speed: 200\ncamera:\n  smoothing: 1\n")},
	}
	loader := NewFSLoader(fsys)

	for _, name := range []string{"partial.json", "partial.yml"} {
		t.Run(name, func(t *testing.T) {
			cfg, err := loader.Load(name)
			require.NoError(t, err)

			def := Default()
			assert.Equal(t, 200.0, cfg.Player.Speed)
			assert.Equal(t, def.Player.MaxHealth, cfg.Player.MaxHealth)
			assert.Equal(t, def.Player.Dash, cfg.Player.Dash)
			assert.Equal(t, 1.0, cfg.Camera.Smoothing)
			assert.Equal(t, def.Clock, cfg.Clock)
		})
	}
}

func TestLoader_Errors(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.json":  {Data: []byte(`{"player": `)},
		"broken.yaml":  {Data: []byte("player: [1, 2\n")},
		"game.toml":    {Data: []byte(`x = 1`)},
		"invalid.json": {Data: []byte(`{"camera": {"smoothing": 0}}`)},
	}
	loader := NewFSLoader(fsys)

	_, err := loader.Load("missing.json")
	assert.Error(t, err)

	_, err = loader.Load("broken.json")
	assert.ErrorContains(t, err, "failed to parse")

	_, err = loader.Load("broken.yaml")
	assert.ErrorContains(t, err, "failed to parse")

	_, err = loader.Load("game.toml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = loader.Load("invalid.json")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *GameConfig)
	}{
		{"zero screen", func(c *GameConfig) { c.Display.ScreenWidth = 0 }},
		{"zero framerate", func(c *GameConfig) { c.Display.Framerate = 0 }},
		{"zero tile size", func(c *GameConfig) { c.World.TileSize = 0 }},
		{"zero cols without layout", func(c *GameConfig) { c.World.Cols = 0 }},
		{"negative enemies", func(c *GameConfig) { c.World.EnemyCount = -1 }},
		{"empty chest gold", func(c *GameConfig) { c.World.ChestGold = GoldRange{Min: 0, Max: 0} }},
		{"inverted gold drop", func(c *GameConfig) { c.Enemy.GoldDrop = GoldRange{Min: 5, Max: 2} }},
		{"zero player speed", func(c *GameConfig) { c.Player.Speed = 0 }},
		{"dash slower than walk", func(c *GameConfig) { c.Player.Dash.SpeedMultiplier = 0.5 }},
		{"negative dash cooldown", func(c *GameConfig) { c.Player.Dash.CooldownMs = -1 }},
		{"zero attack cooldown", func(c *GameConfig) { c.Enemy.AttackCooldownTicks = 0 }},
		{"range beyond sight", func(c *GameConfig) { c.Enemy.AttackRange = c.Enemy.SightRadius + 1 }},
		{"negative pace", func(c *GameConfig) { c.Enemy.PaceDistance = -1 }},
		{"zero smoothing", func(c *GameConfig) { c.Camera.Smoothing = 0 }},
		{"overshooting smoothing", func(c *GameConfig) { c.Camera.Smoothing = 1.5 }},
		{"zero fixed unit", func(c *GameConfig) { c.Clock.FixedUnitMs = 0 }},
		{"zero max delta", func(c *GameConfig) { c.Clock.MaxDeltaMs = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestValidate_LayoutReplacesSize(t *testing.T) {
	cfg := Default()
	cfg.World.Cols, cfg.World.Rows = 0, 0
	cfg.World.Layout = []string{"..", ".."}
	assert.NoError(t, cfg.Validate())
}
