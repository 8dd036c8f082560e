package gamemap

// GameMap holds the static cell grid of one decoded level.
type GameMap struct {
	Width, Height int
	Tiles         [][]Tile
}

// New creates a GameMap filled with void cells.
func New(width, height int) *GameMap {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = MakeVoid()
		}
	}
	return &GameMap{Width: width, Height: height, Tiles: tiles}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns a pointer to the tile at (x, y). Panics if out of bounds.
func (m *GameMap) At(x, y int) *Tile {
	return &m.Tiles[y][x]
}

// Set replaces the tile at (x, y).
func (m *GameMap) Set(x, y int, t Tile) {
	m.Tiles[y][x] = t
}

// IsWalkable returns true when (x, y) is in bounds and walkable.
// Void cells and cells outside the grid behave like walls.
func (m *GameMap) IsWalkable(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[y][x].Walkable
}
