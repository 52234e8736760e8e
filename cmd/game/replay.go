package main

import (
	"github.com/sirupsen/logrus"

	"github.com/younwookim/lootrun/internal/application/replay"
	"github.com/younwookim/lootrun/internal/application/simulation"
	"github.com/younwookim/lootrun/internal/infrastructure/config"
)

// Summary is the outcome of a headless replay
type Summary struct {
	Seed    int64
	Frames  int
	Stats   simulation.Stats
	Health  int
	Gold    int
	Enemies int
	Over    bool
}

// Fields returns the summary as log fields
func (s Summary) Fields() logrus.Fields {
	return logrus.Fields{
		"seed":    s.Seed,
		"frames":  s.Frames,
		"ticks":   s.Stats.Ticks,
		"kills":   s.Stats.Kills,
		"chests":  s.Stats.ChestsOpened,
		"gold":    s.Gold,
		"health":  s.Health,
		"enemies": s.Enemies,
		"over":    s.Over,
	}
}

// replayConfigName prefers an explicit -config flag, then the config stored in
// the recording, then the default
func replayConfigName(flagValue string, explicit bool, data *replay.ReplayData) string {
	if explicit || data.Config == "" {
		return flagValue
	}
	return data.Config
}

// runHeadless plays data into a fresh simulation without rendering
func runHeadless(cfg *config.GameConfig, data *replay.ReplayData) (Summary, error) {
	sim, err := simulation.New(cfg, data.Seed)
	if err != nil {
		return Summary{}, err
	}

	replayer := replay.NewReplayer(*data)
	if err := replay.Run(sim, replayer); err != nil {
		return Summary{}, err
	}

	w := sim.World()
	return Summary{
		Seed:    data.Seed,
		Frames:  replayer.CurrentFrame(),
		Stats:   sim.Stats(),
		Health:  w.Player.Health,
		Gold:    w.Player.Gold,
		Enemies: len(w.Enemies),
		Over:    sim.Over(),
	}, nil
}
