package render

// Grid cells are drawn 4 terminal columns wide and 2 rows tall: 2 columns
// for the room's emoji glyph, then 2 columns / 1 row for the connection
// passage toward the next room.
const (
	cellW = 4
	cellH = 2
)

// Camera translates between room grid coordinates and screen coordinates.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // terminal columns
	ViewHeight int // terminal rows
}

// NewCamera creates a camera centered on grid position (cx, cy).
func NewCamera(cx, cy, viewW, viewH int) *Camera {
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH}
	c.Center(cx, cy)
	return c
}

// Center repositions the camera so grid position (cx, cy) sits mid-view.
func (c *Camera) Center(cx, cy int) {
	c.OffsetX = cx - (c.ViewWidth/cellW)/2
	c.OffsetY = cy - (c.ViewHeight/cellH)/2
}

// Pan moves the camera by (dx, dy) grid cells.
func (c *Camera) Pan(dx, dy int) {
	c.OffsetX += dx
	c.OffsetY += dy
}

// GridToScreen converts grid (gx, gy) to the screen position of the cell's
// top-left corner. visible is false outside the viewport.
func (c *Camera) GridToScreen(gx, gy int) (sx, sy int, visible bool) {
	sx = (gx - c.OffsetX) * cellW
	sy = (gy - c.OffsetY) * cellH
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}
