package system

import (
	"math/rand"

	"github.com/younwookim/lootrun/internal/domain/entity"
	"github.com/younwookim/lootrun/internal/domain/world"
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func testPlayerStats() entity.PlayerStats {
	return entity.PlayerStats{
		Size:           32,
		Speed:          100,
		MaxHealth:      100,
		AttackPower:    10,
		DashMultiplier: 3,
		DashDurationMs: 200,
		DashCooldownMs: 1000,
	}
}

func testEnemyStats() entity.EnemyStats {
	return entity.EnemyStats{
		Size:                32,
		Speed:               50,
		MaxHealth:           30,
		AttackPower:         5,
		AttackCooldownTicks: 3,
		SightRadius:         150,
		AttackRange:         40,
		PaceDistance:        50,
	}
}

// createTestWorld builds a 640x480 world (20x15 tiles of 32)
func createTestWorld(player *entity.Player, enemies []*entity.Enemy, chests []*entity.Chest) *world.World {
	m := entity.NewGameMap(20, 15, 32)
	cam := entity.NewCamera(320, 240, 0.5)
	return world.New(player, enemies, chests, m, cam)
}

// farPlayer is out of every test enemy's sight in the bottom-right corner of the map
func farPlayer() *entity.Player {
	return entity.NewPlayer(600, 440, testPlayerStats())
}
