package gamemap

// Rect is an axis-aligned rectangle with inclusive corners.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect builds the rectangle covering w×h tiles with its top-left corner at (x, y).
// No clamping is done; the caller keeps it on the map.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w - 1, Y2: y + h - 1}
}

// Width returns the number of columns covered.
func (r Rect) Width() int { return r.X2 - r.X1 + 1 }

// Height returns the number of rows covered.
func (r Rect) Height() int { return r.Y2 - r.Y1 + 1 }

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Grow returns r padded by n tiles on every side.
func (r Rect) Grow(n int) Rect {
	return Rect{X1: r.X1 - n, Y1: r.Y1 - n, X2: r.X2 + n, Y2: r.Y2 + n}
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}
