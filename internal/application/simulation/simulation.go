package simulation

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/lootrun/internal/application/system"
	"github.com/younwookim/lootrun/internal/domain/world"
	"github.com/younwookim/lootrun/internal/infrastructure/config"
	"github.com/younwookim/lootrun/internal/infrastructure/logger"
)

// Stats are counters for the current run. Reset clears them.
type Stats struct {
	Ticks        int
	Kills        int
	ChestsOpened int
	GoldLooted   int
}

// Simulation owns the live World, the RNG it was generated from and the
// previous frame timestamp. It is driven from a single goroutine.
type Simulation struct {
	cfg    *config.GameConfig
	engine *Engine
	rng    *rand.Rand
	seed   int64
	world  *world.World

	prevMs  float64
	started bool
	stats   Stats

	log *logrus.Entry
}

// SeedFrom returns the configured seed, or a time based one when it is 0
func SeedFrom(cfg *config.GameConfig) int64 {
	if cfg.World.Seed != 0 {
		return cfg.World.Seed
	}
	return time.Now().UnixNano()
}

// New creates a simulation and builds its first world from seed
func New(cfg *config.GameConfig, seed int64) (*Simulation, error) {
	s := &Simulation{
		cfg:    cfg,
		engine: NewEngine(cfg),
		rng:    rand.New(rand.NewSource(seed)),
		seed:   seed,
		log:    logger.For("simulation"),
	}
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset replaces the world with a freshly generated one, drawing from the
// same RNG stream, and clears the run stats. The next Tick has zero delta.
func (s *Simulation) Reset() error {
	w, err := system.BuildWorld(s.cfg, s.rng)
	if err != nil {
		return fmt.Errorf("failed to build world: %w", err)
	}

	s.world = w
	s.started = false
	s.prevMs = 0
	s.stats = Stats{}

	s.log.WithFields(logrus.Fields{
		"seed":    s.seed,
		"enemies": len(w.Enemies),
		"chests":  len(w.Chests),
	}).Info("world reset")
	return nil
}

// Tick steps the world to nowMs. The first tick after New or Reset only
// records the timestamp and runs with zero elapsed time.
func (s *Simulation) Tick(nowMs float64, in system.Intent) StepResult {
	prevMs := nowMs
	if s.started {
		prevMs = s.prevMs
	}
	if !math.IsNaN(nowMs) && !math.IsInf(nowMs, 0) {
		s.prevMs = nowMs
		s.started = true
	}

	res := s.engine.Step(s.world, prevMs, nowMs, in)

	s.stats.Ticks++
	s.stats.Kills += res.Combat.Kills
	s.stats.ChestsOpened += res.Combat.ChestsOpened
	s.stats.GoldLooted += res.Combat.Gold
	return res
}

// SetEvents installs step callbacks
func (s *Simulation) SetEvents(ev Events) {
	s.engine.SetEvents(ev)
}

// World returns the live world. Renderers should use Snapshot instead.
func (s *Simulation) World() *world.World {
	return s.world
}

// Snapshot returns a detached copy of the current world
func (s *Simulation) Snapshot() world.Snapshot {
	return s.world.Snapshot()
}

// Stats returns the counters of the current run
func (s *Simulation) Stats() Stats {
	return s.stats
}

// Seed returns the seed the RNG was created with
func (s *Simulation) Seed() int64 {
	return s.seed
}

// Over reports whether the player has died
func (s *Simulation) Over() bool {
	return s.world.Over()
}
