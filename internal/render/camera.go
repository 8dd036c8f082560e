package render

// Camera translates between world coordinates and screen coordinates.
// World X is multiplied by 2 because emoji occupy 2 terminal columns.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera for a viewport of viewW columns by viewH rows.
func NewCamera(viewW, viewH int) *Camera {
	return &Camera{ViewWidth: viewW, ViewHeight: viewH}
}

// Resize changes the viewport size. Offsets are kept until the next Frame.
func (c *Camera) Resize(viewW, viewH int) {
	c.ViewWidth = viewW
	c.ViewHeight = viewH
}

// Frame positions the camera for a mapW by mapH level. A level that fits
// is centred in the viewport; along an axis where it does not fit the
// camera follows (fx, fy), clamped to the level edges.
func (c *Camera) Frame(mapW, mapH, fx, fy int) {
	cols := c.ViewWidth / 2
	c.OffsetX = frameAxis(mapW, cols, fx)
	c.OffsetY = frameAxis(mapH, c.ViewHeight, fy)
}

func frameAxis(size, view, focus int) int {
	if size <= view {
		// negative offset pushes the level towards the middle
		return -(view - size) / 2
	}
	off := focus - view/2
	if off < 0 {
		off = 0
	}
	if off > size-view {
		off = size - view
	}
	return off
}

// WorldToScreen converts world (wx, wy) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = (wx - c.OffsetX) * 2
	sy = wy - c.OffsetY
	visible = sx >= 0 && sx+1 < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy int) (int, int) {
	return sx/2 + c.OffsetX, sy + c.OffsetY
}
