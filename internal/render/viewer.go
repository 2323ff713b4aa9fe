package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"dungeonforge/internal/dungeon"
	"dungeonforge/internal/path"
)

// Glyphs selects the emoji used for each room role. Terminals render emoji
// with their own colors, so roles get distinct glyphs rather than tints.
type Glyphs struct {
	Room     string
	Entrance string
	Exit     string
	Chest    string
	Enemy    string
}

// DefaultGlyphs is a fallback set for callers without theme data.
var DefaultGlyphs = Glyphs{
	Room:     "⬜",
	Entrance: "🚪",
	Exit:     "🏁",
	Chest:    "📦",
	Enemy:    "💀",
}

// Viewer draws a dungeon topology on a tcell screen: rooms as glyphs,
// passages as line segments, and optionally the critical path as arrows.
type Viewer struct {
	screen   tcell.Screen
	d        *dungeon.Dungeon
	glyphs   Glyphs
	camera   *Camera
	route    path.Route
	hasRoute bool
	showPath bool
}

// NewViewer creates a viewer centered on the dungeon's entrance. The
// critical path is reconstructed up front so toggling it is free.
func NewViewer(screen tcell.Screen, d *dungeon.Dungeon, glyphs Glyphs) *Viewer {
	w, h := screen.Size()
	cx, cy := d.Width/2, d.Height/2
	if entrance, ok := d.Entrance(); ok {
		cx, cy = entrance.X, entrance.Y
	}
	route, found := path.Solve(d)
	return &Viewer{
		screen:   screen,
		d:        d,
		glyphs:   glyphs,
		camera:   NewCamera(cx, cy, w, h-1),
		route:    route,
		hasRoute: found,
	}
}

// Run drives the event loop until the user quits.
func (v *Viewer) Run() {
	for {
		v.draw()
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.screen.Sync()
			w, h := v.screen.Size()
			v.camera.ViewWidth = w
			v.camera.ViewHeight = h - 1
		case *tcell.EventKey:
			if v.handleKey(ev) {
				return
			}
		}
	}
}

// handleKey returns true when the viewer should close.
func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		v.camera.Pan(0, -1)
	case tcell.KeyDown:
		v.camera.Pan(0, 1)
	case tcell.KeyLeft:
		v.camera.Pan(-1, 0)
	case tcell.KeyRight:
		v.camera.Pan(1, 0)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'h':
			v.camera.Pan(-1, 0)
		case 'j':
			v.camera.Pan(0, 1)
		case 'k':
			v.camera.Pan(0, -1)
		case 'l':
			v.camera.Pan(1, 0)
		case 'p':
			v.showPath = !v.showPath
		}
	}
	return false
}

func (v *Viewer) draw() {
	v.screen.Clear()
	lineStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	pathStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)

	for _, r := range v.d.Rooms() {
		sx, sy, visible := v.camera.GridToScreen(r.X, r.Y)
		if !visible {
			continue
		}
		v.putGlyph(sx, sy, v.roomGlyph(r), tcell.StyleDefault)
		v.drawPassages(r, sx, sy, lineStyle, pathStyle)
	}
	v.drawStatus()
	v.screen.Show()
}

// drawPassages renders r's east and south connections; the north and west
// sides are covered by the symmetric flags of the neighboring rooms.
func (v *Viewer) drawPassages(r *dungeon.Room, sx, sy int, lineStyle, pathStyle tcell.Style) {
	east, south := '─', '│'
	eastStyle, southStyle := lineStyle, lineStyle
	if v.showPath {
		if dir, ok := v.route[[2]int{r.X, r.Y}]; ok {
			switch dir {
			case dungeon.East:
				east, eastStyle = '→', pathStyle
			case dungeon.South:
				south, southStyle = '↓', pathStyle
			}
		}
		// Arrows pointing back into this row/column come from neighbors.
		if dir, ok := v.route[[2]int{r.X + 1, r.Y}]; ok && dir == dungeon.West {
			east, eastStyle = '←', pathStyle
		}
		if dir, ok := v.route[[2]int{r.X, r.Y + 1}]; ok && dir == dungeon.North {
			south, southStyle = '↑', pathStyle
		}
	}
	if r.Connected(dungeon.East) {
		v.screen.SetContent(sx+2, sy, east, nil, eastStyle)
		v.screen.SetContent(sx+3, sy, east, nil, eastStyle)
	}
	if r.Connected(dungeon.South) {
		v.screen.SetContent(sx, sy+1, south, nil, southStyle)
	}
}

// roomGlyph picks the glyph for a room by role, then by contents.
func (v *Viewer) roomGlyph(r *dungeon.Room) string {
	switch r.Type {
	case dungeon.Entrance:
		return v.glyphs.Entrance
	case dungeon.Exit:
		return v.glyphs.Exit
	}
	for _, e := range r.Entities() {
		switch e.Kind {
		case dungeon.KindEnemy:
			return v.glyphs.Enemy
		case dungeon.KindTreasureChest:
			return v.glyphs.Chest
		}
	}
	return v.glyphs.Room
}

func (v *Viewer) drawStatus() {
	_, h := v.screen.Size()
	pathNote := "p: show path"
	if v.showPath {
		pathNote = "p: hide path"
		if !v.hasRoute {
			pathNote = "no path to exit"
		}
	}
	msg := fmt.Sprintf(" %s — %dx%d, %d rooms │ arrows/hjkl: scroll │ %s │ q: quit",
		v.d.Theme, v.d.Width, v.d.Height, v.d.RoomCount(), pathNote)
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkBlue)
	x := 0
	for _, r := range msg {
		v.screen.SetContent(x, h-1, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	for ; x < v.camera.ViewWidth; x++ {
		v.screen.SetContent(x, h-1, ' ', nil, style)
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at (x, y).
func (v *Viewer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	v.screen.SetContent(x, y, runes[0], combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		v.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
