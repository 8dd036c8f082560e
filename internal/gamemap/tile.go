package gamemap

// TileKind identifies the type of a map cell.
type TileKind uint8

const (
	TileVoid  TileKind = iota // outside the level shape
	TileFloor                 // walkable
	TileWall
)

// Tile holds the kind of one map cell.
type Tile struct {
	Kind     TileKind
	Walkable bool
}

// MakeVoid returns a cell excluded from the grid.
func MakeVoid() Tile {
	return Tile{Kind: TileVoid}
}

// MakeWall returns a blocking wall cell.
func MakeWall() Tile {
	return Tile{Kind: TileWall, Walkable: false}
}

// MakeFloor returns a passable floor cell.
func MakeFloor() Tile {
	return Tile{Kind: TileFloor, Walkable: true}
}
