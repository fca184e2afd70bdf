package render

// Camera translates between world coordinates and screen coordinates.
// One world tile is one terminal cell.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int
	ViewHeight int
	// World size; the camera never scrolls past the map edge.
	WorldWidth  int
	WorldHeight int
}

// NewCamera creates a camera over a worldW×worldH map with a viewW×viewH viewport.
func NewCamera(viewW, viewH, worldW, worldH int) *Camera {
	return &Camera{ViewWidth: viewW, ViewHeight: viewH, WorldWidth: worldW, WorldHeight: worldH}
}

// Center scrolls so that (cx, cy) sits mid-viewport, clamped to the map.
func (c *Camera) Center(cx, cy int) {
	c.OffsetX = clampOffset(cx-c.ViewWidth/2, c.WorldWidth, c.ViewWidth)
	c.OffsetY = clampOffset(cy-c.ViewHeight/2, c.WorldHeight, c.ViewHeight)
}

// Resize changes the viewport size, keeping the current offset valid.
func (c *Camera) Resize(viewW, viewH int) {
	c.ViewWidth, c.ViewHeight = viewW, viewH
	c.OffsetX = clampOffset(c.OffsetX, c.WorldWidth, c.ViewWidth)
	c.OffsetY = clampOffset(c.OffsetY, c.WorldHeight, c.ViewHeight)
}

// WorldToScreen converts world (wx, wy) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = wx - c.OffsetX
	sy = wy - c.OffsetY
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy int) (int, int) {
	return sx + c.OffsetX, sy + c.OffsetY
}

func clampOffset(off, world, view int) int {
	if view >= world {
		return 0
	}
	return min(max(off, 0), world-view)
}
