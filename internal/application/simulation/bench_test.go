package simulation

import (
	"testing"

	"github.com/younwookim/lootrun/internal/application/system"
	"github.com/younwookim/lootrun/internal/infrastructure/config"
)

// crowdedConfig packs many enemies into the default map so separation dominates
func crowdedConfig(enemies int) *config.GameConfig {
	cfg := config.Default()
	cfg.World.EnemyCount = enemies
	cfg.World.Seed = 1
	return cfg
}

func benchmarkTick(b *testing.B, enemies int) {
	sim, err := New(crowdedConfig(enemies), 1)
	if err != nil {
		b.Fatal(err)
	}
	in := system.Intent{MoveRight: true}

	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		sim.Tick(float64(n)*16, in)
		if sim.Over() {
			b.StopTimer()
			if err := sim.Reset(); err != nil {
				b.Fatal(err)
			}
			b.StartTimer()
		}
	}
}

func BenchmarkTick_8Enemies(b *testing.B)   { benchmarkTick(b, 8) }
func BenchmarkTick_64Enemies(b *testing.B)  { benchmarkTick(b, 64) }
func BenchmarkTick_256Enemies(b *testing.B) { benchmarkTick(b, 256) }

func BenchmarkSnapshot(b *testing.B) {
	sim, err := New(crowdedConfig(64), 1)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		_ = sim.Snapshot()
	}
}
