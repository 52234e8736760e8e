package main

import (
	"embed"
	"flag"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/lootrun/internal/application/game"
	"github.com/younwookim/lootrun/internal/application/replay"
	"github.com/younwookim/lootrun/internal/application/scene/playing"
	"github.com/younwookim/lootrun/internal/application/simulation"
	"github.com/younwookim/lootrun/internal/infrastructure/config"
	"github.com/younwookim/lootrun/internal/infrastructure/logger"
)

//go:embed configs
var configFS embed.FS

const defaultConfig = "game.json"

func main() {
	// Parse command line flags
	configFlag := flag.String("config", defaultConfig, "Config file name (json or yaml)")
	configDir := flag.String("config-dir", "", "Load configs from this directory instead of the built-in ones")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded session")
	headless := flag.Bool("headless", false, "With -replay, run without a window and print the result")
	flag.Parse()

	logger.Init()
	log := logger.For("main")

	loader, err := newLoader(*configDir)
	if err != nil {
		log.Fatalf("Failed to open configs: %v", err)
	}

	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		if data.Version != replay.Version {
			log.WithFields(logrus.Fields{
				"file":    data.Version,
				"current": replay.Version,
			}).Warn("replay version mismatch")
		}

		cfg, err := loader.Load(replayConfigName(*configFlag, flagSet("config"), data))
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		if *headless {
			summary, err := runHeadless(cfg, data)
			if err != nil {
				log.Fatalf("Replay failed: %v", err)
			}
			log.WithFields(summary.Fields()).Info("replay finished")
			return
		}

		sim, err := simulation.New(cfg, data.Seed)
		if err != nil {
			log.Fatalf("Failed to create simulation: %v", err)
		}
		run(cfg, playing.New(sim, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight, playing.Options{
			Replayer: replay.NewReplayer(*data),
		}), log)
		return
	}

	cfg, err := loader.Load(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	sim, err := simulation.New(cfg, simulation.SeedFrom(cfg))
	if err != nil {
		log.Fatalf("Failed to create simulation: %v", err)
	}

	run(cfg, playing.New(sim, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight, playing.Options{
		RecordPath: *recordFlag,
		ConfigName: *configFlag,
	}), log)
}

// newLoader reads configs from dir, or from the embedded configs when dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys), nil
}

func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func run(cfg *config.GameConfig, p *playing.Playing, log *logrus.Entry) {
	g := game.New(p, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	defer g.Close()

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale,
		cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle("Loot Run")
	ebiten.SetTPS(cfg.Display.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
