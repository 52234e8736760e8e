package entity

// EntityID is a unique identifier for an entity
type EntityID uint32

// TileType is the appearance tag of a map cell.
// Every tile is walkable; the tag only selects how the renderer paints it.
type TileType int

const (
	TileGrass TileType = iota
	TileDirt
	TileStone
	TileFlowers
)

// TileTypeCount is the number of defined tile tags
const TileTypeCount = 4

// String returns the string representation of the tile type
func (t TileType) String() string {
	switch t {
	case TileGrass:
		return "Grass"
	case TileDirt:
		return "Dirt"
	case TileStone:
		return "Stone"
	case TileFlowers:
		return "Flowers"
	default:
		return "Unknown"
	}
}

// Tile represents a single cell in the map
type Tile struct {
	Type TileType
}

// GameMap is the background grid and the world bounds.
// It is created once per game and never mutated afterwards.
type GameMap struct {
	Cols     int
	Rows     int
	TileSize int
	Tiles    [][]Tile // [row][col]
}

// NewGameMap creates a map of cols x rows grass tiles
func NewGameMap(cols, rows, tileSize int) *GameMap {
	tiles := make([][]Tile, rows)
	for y := range tiles {
		tiles[y] = make([]Tile, cols)
	}
	return &GameMap{
		Cols:     cols,
		Rows:     rows,
		TileSize: tileSize,
		Tiles:    tiles,
	}
}

// GetTile returns the tile at the given tile coordinates.
// Out of range coordinates return the zero tile.
func (m *GameMap) GetTile(tx, ty int) Tile {
	if tx < 0 || tx >= m.Cols || ty < 0 || ty >= m.Rows {
		return Tile{}
	}
	return m.Tiles[ty][tx]
}

// GetTileAt returns the tile under the given world coordinates
func (m *GameMap) GetTileAt(wx, wy float64) Tile {
	if wx < 0 || wy < 0 {
		return Tile{}
	}
	return m.GetTile(int(wx)/m.TileSize, int(wy)/m.TileSize)
}

// PixelWidth returns the map width in world units
func (m *GameMap) PixelWidth() float64 {
	return float64(m.Cols * m.TileSize)
}

// PixelHeight returns the map height in world units
func (m *GameMap) PixelHeight() float64 {
	return float64(m.Rows * m.TileSize)
}

// VisibleRange returns the inclusive tile range intersecting the given view rect,
// clipped to the map. Renderers use it to draw only what the camera sees.
func (m *GameMap) VisibleRange(viewX, viewY, viewW, viewH float64) (startX, startY, endX, endY int) {
	startX = int(viewX) / m.TileSize
	startY = int(viewY) / m.TileSize
	endX = int(viewX+viewW) / m.TileSize
	endY = int(viewY+viewH) / m.TileSize

	if startX < 0 {
		startX = 0
	}
	if startY < 0 {
		startY = 0
	}
	if endX >= m.Cols {
		endX = m.Cols - 1
	}
	if endY >= m.Rows {
		endY = m.Rows - 1
	}
	return startX, startY, endX, endY
}
