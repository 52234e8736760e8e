package config

// GameConfig is the root config for game.json / game.yaml
type GameConfig struct {
	Display DisplayConfig `json:"display" yaml:"display"`
	World   WorldConfig   `json:"world" yaml:"world"`
	Player  PlayerConfig  `json:"player" yaml:"player"`
	Enemy   EnemyConfig   `json:"enemy" yaml:"enemy"`
	Camera  CameraConfig  `json:"camera" yaml:"camera"`
	Clock   ClockConfig   `json:"clock" yaml:"clock"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth" yaml:"screenWidth"`
	ScreenHeight int `json:"screenHeight" yaml:"screenHeight"`
	Scale        int `json:"scale" yaml:"scale"`
	Framerate    int `json:"framerate" yaml:"framerate"`
}

// CameraConfig configures viewport tracking
type CameraConfig struct {
	// Smoothing is the fraction of the remaining distance covered per tick.
	// Must be in (0, 1]: 0 freezes the camera, above 1 overshoots.
	Smoothing float64 `json:"smoothing" yaml:"smoothing"`
}

// ClockConfig configures how frame timestamps become simulation time
type ClockConfig struct {
	// FixedUnitMs converts elapsed milliseconds into the unit speeds are given in.
	// 1000 makes speeds world units per second.
	FixedUnitMs float64 `json:"fixedUnitMs" yaml:"fixedUnitMs"`
	// MaxDeltaMs is the largest frame gap accepted; larger gaps count as zero
	MaxDeltaMs float64 `json:"maxDeltaMs" yaml:"maxDeltaMs"`
}

// GoldRange is an inclusive random gold amount
type GoldRange struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}
