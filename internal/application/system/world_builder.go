package system

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/younwookim/lootrun/internal/domain/entity"
	"github.com/younwookim/lootrun/internal/domain/world"
	"github.com/younwookim/lootrun/internal/infrastructure/config"
)

// ErrUnknownTile is returned when a tile mapping names a tile type that does not exist
var ErrUnknownTile = errors.New("unknown tile type")

// spawnAttempts bounds the rejection sampling for enemy and chest positions
const spawnAttempts = 64

// ParseTileType converts a tile name from config ("grass", "Stone") into a TileType
func ParseTileType(name string) (entity.TileType, error) {
	for t := entity.TileType(0); t < entity.TileTypeCount; t++ {
		if strings.EqualFold(t.String(), name) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTile, name)
}

// GenerateMap fills a cols x rows map with randomly chosen tile tags
func GenerateMap(cols, rows, tileSize int, rng *rand.Rand) *entity.GameMap {
	m := entity.NewGameMap(cols, rows, tileSize)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			m.Tiles[y][x] = entity.Tile{Type: randomTile(rng)}
		}
	}
	return m
}

// randomTile is mostly grass with patches of the other tags
func randomTile(rng *rand.Rand) entity.TileType {
	switch r := rng.Intn(100); {
	case r < 60:
		return entity.TileGrass
	case r < 80:
		return entity.TileDirt
	case r < 92:
		return entity.TileFlowers
	default:
		return entity.TileStone
	}
}

// LoadMap converts a character layout into a GameMap.
// The map is as wide as the longest row; short rows and unmapped characters are grass.
func LoadMap(layout []string, mapping map[string]string, tileSize int) (*entity.GameMap, error) {
	types := make(map[rune]entity.TileType, len(mapping))
	for char, name := range mapping {
		runes := []rune(char)
		if len(runes) != 1 {
			return nil, fmt.Errorf("tile mapping key %q must be a single character", char)
		}
		t, err := ParseTileType(name)
		if err != nil {
			return nil, err
		}
		types[runes[0]] = t
	}

	cols := 0
	for _, row := range layout {
		if n := len([]rune(row)); n > cols {
			cols = n
		}
	}

	m := entity.NewGameMap(cols, len(layout), tileSize)
	for y, row := range layout {
		for x, char := range []rune(row) {
			if t, ok := types[char]; ok {
				m.Tiles[y][x] = entity.Tile{Type: t}
			}
		}
	}
	return m, nil
}

// PlayerStatsFrom extracts the player parameters from config
func PlayerStatsFrom(cfg *config.GameConfig) entity.PlayerStats {
	return entity.PlayerStats{
		Size:           cfg.Player.Size,
		Speed:          cfg.Player.Speed,
		MaxHealth:      cfg.Player.MaxHealth,
		AttackPower:    cfg.Player.AttackPower,
		DashMultiplier: cfg.Player.Dash.SpeedMultiplier,
		DashDurationMs: cfg.Player.Dash.DurationMs,
		DashCooldownMs: cfg.Player.Dash.CooldownMs,
	}
}

// EnemyStatsFrom extracts the enemy parameters from config
func EnemyStatsFrom(cfg *config.GameConfig) entity.EnemyStats {
	return entity.EnemyStats{
		Size:                cfg.Enemy.Size,
		Speed:               cfg.Enemy.Speed,
		MaxHealth:           cfg.Enemy.MaxHealth,
		AttackPower:         cfg.Enemy.AttackPower,
		AttackCooldownTicks: cfg.Enemy.AttackCooldownTicks,
		SightRadius:         cfg.Enemy.SightRadius,
		AttackRange:         cfg.Enemy.AttackRange,
		PaceDistance:        cfg.Enemy.PaceDistance,
	}
}

// BuildWorld creates a fresh world from config. All randomness comes from rng,
// so the same seed always builds the same world.
func BuildWorld(cfg *config.GameConfig, rng *rand.Rand) (*world.World, error) {
	var m *entity.GameMap
	if len(cfg.World.Layout) > 0 {
		var err error
		m, err = LoadMap(cfg.World.Layout, cfg.World.TileMapping, cfg.World.TileSize)
		if err != nil {
			return nil, fmt.Errorf("failed to load map layout: %w", err)
		}
	} else {
		m = GenerateMap(cfg.World.Cols, cfg.World.Rows, cfg.World.TileSize, rng)
	}
	mapW, mapH := m.PixelWidth(), m.PixelHeight()

	stats := PlayerStatsFrom(cfg)
	px, py := (mapW-stats.Size)/2, (mapH-stats.Size)/2
	if spawn := cfg.World.PlayerSpawn; spawn != nil {
		px, py = spawn.X, spawn.Y
	}
	player := entity.NewPlayer(px, py, stats)
	player.ClampTo(mapW, mapH)

	enemies := spawnEnemies(cfg, player, mapW, mapH, rng)
	chests := spawnChests(cfg, m, player, rng)

	cam := entity.NewCamera(float64(cfg.Display.ScreenWidth), float64(cfg.Display.ScreenHeight), cfg.Camera.Smoothing)
	cx, cy := player.Center()
	cam.CenterOn(cx, cy, mapW, mapH)

	return world.New(player, enemies, chests, m, cam), nil
}

// spawnEnemies places enemies out of sight of the player, with their whole
// pacing band inside the map when the map is wide enough
func spawnEnemies(cfg *config.GameConfig, player *entity.Player, mapW, mapH float64, rng *rand.Rand) []*entity.Enemy {
	stats := EnemyStatsFrom(cfg)
	enemies := make([]*entity.Enemy, 0, cfg.World.EnemyCount)

	minX, maxX := stats.PaceDistance, mapW-stats.Size-stats.PaceDistance
	if maxX < minX {
		minX, maxX = 0, mapW-stats.Size
	}
	maxY := mapH - stats.Size

	for i := 0; i < cfg.World.EnemyCount; i++ {
		var x, y float64
		for attempt := 0; attempt < spawnAttempts; attempt++ {
			x = minX + rng.Float64()*max(maxX-minX, 0)
			y = rng.Float64() * max(maxY, 0)

			probe := entity.Entity{X: x, Y: y, Size: stats.Size}
			if probe.DistanceTo(&player.Entity) > stats.SightRadius {
				break
			}
		}

		gold := randomGold(cfg.Enemy.GoldDrop, rng)
		enemies = append(enemies, entity.NewEnemy(entity.EntityID(i+1), x, y, gold, stats))
	}
	return enemies
}

// spawnChests places chests on distinct tiles that do not touch the player
func spawnChests(cfg *config.GameConfig, m *entity.GameMap, player *entity.Player, rng *rand.Rand) []*entity.Chest {
	chests := make([]*entity.Chest, 0, cfg.World.ChestCount)
	if m.Cols == 0 || m.Rows == 0 {
		return chests
	}

	size := float64(m.TileSize)
	used := make(map[[2]int]bool, cfg.World.ChestCount)
	px, py, pw, ph := player.GetHitbox()

	for i := 0; i < cfg.World.ChestCount; i++ {
		var col, row int
		for attempt := 0; attempt < spawnAttempts; attempt++ {
			col, row = rng.Intn(m.Cols), rng.Intn(m.Rows)
			x, y := float64(col)*size, float64(row)*size
			if !used[[2]int{col, row}] && !entity.RectsOverlap(px, py, pw, ph, x, y, size, size) {
				break
			}
		}
		used[[2]int{col, row}] = true

		gold := randomGold(cfg.World.ChestGold, rng)
		chests = append(chests, entity.NewChest(float64(col)*size, float64(row)*size, size, gold))
	}
	return chests
}

func randomGold(r config.GoldRange, rng *rand.Rand) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Intn(r.Max-r.Min+1)
}
