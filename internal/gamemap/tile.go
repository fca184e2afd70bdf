package gamemap

// Tile is the terrain of one map cell.
type Tile uint8

const (
	TileFloor Tile = iota
	TileWall
)

// Walkable reports whether the player may stand on the tile.
func (t Tile) Walkable() bool { return t == TileFloor }

func (t Tile) String() string {
	switch t {
	case TileFloor:
		return "floor"
	case TileWall:
		return "wall"
	}
	return "unknown"
}
