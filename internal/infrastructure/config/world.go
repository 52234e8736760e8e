package config

// WorldConfig describes how a new world is generated
type WorldConfig struct {
	Cols       int       `json:"cols" yaml:"cols"`
	Rows       int       `json:"rows" yaml:"rows"`
	TileSize   int       `json:"tileSize" yaml:"tileSize"`
	EnemyCount int       `json:"enemyCount" yaml:"enemyCount"`
	ChestCount int       `json:"chestCount" yaml:"chestCount"`
	ChestGold  GoldRange `json:"chestGold" yaml:"chestGold"`

	// Seed for world generation. 0 picks a time based seed.
	Seed int64 `json:"seed" yaml:"seed"`

	// PlayerSpawn defaults to the map center when omitted
	PlayerSpawn *PositionConfig `json:"playerSpawn,omitempty" yaml:"playerSpawn,omitempty"`

	// Layout optionally fixes the map: one string per row, one character per cell,
	// mapped through TileMapping. Cols/Rows are taken from the layout.
	Layout      []string          `json:"layout,omitempty" yaml:"layout,omitempty"`
	TileMapping map[string]string `json:"tileMapping,omitempty" yaml:"tileMapping,omitempty"`
}

type PositionConfig struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}
