package gamemap

import "fmt"

const (
	// DefaultWidth and DefaultHeight are the fixed playfield dimensions.
	DefaultWidth  = 80
	DefaultHeight = 50
)

// Map is a row-major tile grid plus the wall rectangles stamped onto it.
// It is built once by the generator and only read afterwards.
type Map struct {
	Width, Height int
	Tiles         []Tile
	Walls         []Rect
}

// New returns a width×height map filled with floor.
func New(width, height int) *Map {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("gamemap: invalid size %dx%d", width, height))
	}
	return &Map{
		Width:  width,
		Height: height,
		Tiles:  make([]Tile, width*height),
	}
}

// InBounds reports whether (x, y) is on the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Index converts (x, y) to a position in Tiles. Panics if out of bounds.
func (m *Map) Index(x, y int) int {
	if !m.InBounds(x, y) {
		panic(fmt.Sprintf("gamemap: coordinate (%d,%d) outside %dx%d map", x, y, m.Width, m.Height))
	}
	return y*m.Width + x
}

// Coord converts an index in Tiles back to (x, y). Panics if out of range.
func (m *Map) Coord(idx int) (int, int) {
	if idx < 0 || idx >= len(m.Tiles) {
		panic(fmt.Sprintf("gamemap: index %d outside %dx%d map", idx, m.Width, m.Height))
	}
	return idx % m.Width, idx / m.Width
}

// At returns the tile at (x, y). Panics if out of bounds.
func (m *Map) At(x, y int) Tile {
	return m.Tiles[m.Index(x, y)]
}

// Set replaces the tile at (x, y).
func (m *Map) Set(x, y int, t Tile) {
	m.Tiles[m.Index(x, y)] = t
}

// IsWall reports whether (x, y) is in bounds and a wall.
func (m *Map) IsWall(x, y int) bool {
	return m.InBounds(x, y) && m.Tiles[y*m.Width+x] == TileWall
}

// IsWalkable returns true when (x, y) is in bounds and walkable.
func (m *Map) IsWalkable(x, y int) bool {
	return m.InBounds(x, y) && m.Tiles[y*m.Width+x].Walkable()
}

// Clamp pulls (x, y) onto the nearest in-bounds coordinate.
func (m *Map) Clamp(x, y int) (int, int) {
	return min(m.Width-1, max(0, x)), min(m.Height-1, max(0, y))
}

// ApplyWall stamps every tile of r as wall and records r.
func (m *Map) ApplyWall(r Rect) {
	for y := r.Y1; y <= r.Y2; y++ {
		for x := r.X1; x <= r.X2; x++ {
			m.Set(x, y, TileWall)
		}
	}
	m.Walls = append(m.Walls, r)
}
