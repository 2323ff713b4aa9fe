package dungeon

import (
	"errors"
	"fmt"
	"strings"
)

// MaxDimension bounds each grid axis.
const MaxDimension = 1000

var (
	ErrBadDimensions   = errors.New("dungeon: dimensions must be in [1, 1000]")
	ErrBlankTheme      = errors.New("dungeon: theme must not be blank")
	ErrOutOfBounds     = errors.New("dungeon: coordinates out of bounds")
	ErrOccupied        = errors.New("dungeon: slot already occupied")
	ErrNotAdjacent     = errors.New("dungeon: rooms are not grid-adjacent")
	ErrSecondEntrance  = errors.New("dungeon: entrance already placed")
	ErrSecondExit      = errors.New("dungeon: exit already tagged")
	ErrDuplicateEntity = errors.New("dungeon: duplicate entity id")
)

// Dungeon owns the bounded room grid. The coordinate map is the occupancy
// truth; the room slice is a consistent, insertion-ordered view of the same
// set, kept in sync on every placement.
type Dungeon struct {
	Width  int
	Height int
	Theme  string

	rooms    []*Room
	byCoord  map[[2]int]*Room
	entrance *Room
	exit     *Room
}

// New validates the configuration and returns an empty dungeon.
func New(width, height int, theme string) (*Dungeon, error) {
	if width < 1 || width > MaxDimension || height < 1 || height > MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}
	if strings.TrimSpace(theme) == "" {
		return nil, ErrBlankTheme
	}
	return &Dungeon{
		Width:   width,
		Height:  height,
		Theme:   theme,
		byCoord: make(map[[2]int]*Room),
	}, nil
}

// InBounds reports whether (x, y) lies within the grid.
func (d *Dungeon) InBounds(x, y int) bool {
	return x >= 0 && x < d.Width && y >= 0 && y < d.Height
}

// RoomAt returns the room occupying (x, y), if any.
func (d *Dungeon) RoomAt(x, y int) (*Room, bool) {
	r, ok := d.byCoord[[2]int{x, y}]
	return r, ok
}

// PlaceRoom registers r at its coordinates. It fails without mutating state
// when the slot is out of bounds or occupied, or when r would introduce a
// second Entrance or Exit.
func (d *Dungeon) PlaceRoom(r *Room) error {
	if !d.InBounds(r.X, r.Y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, r.X, r.Y)
	}
	key := [2]int{r.X, r.Y}
	if _, taken := d.byCoord[key]; taken {
		return fmt.Errorf("%w: (%d,%d)", ErrOccupied, r.X, r.Y)
	}
	switch r.Type {
	case Entrance:
		if d.entrance != nil {
			return ErrSecondEntrance
		}
	case Exit:
		if d.exit != nil {
			return ErrSecondExit
		}
	}
	d.byCoord[key] = r
	d.rooms = append(d.rooms, r)
	switch r.Type {
	case Entrance:
		d.entrance = r
	case Exit:
		d.exit = r
	}
	return nil
}

// Connect links a and b by setting both reciprocal flags. The rooms must be
// grid-adjacent; flags are never set one-sided.
func (d *Dungeon) Connect(a, b *Room) error {
	dir, ok := adjacency(a, b)
	if !ok {
		return fmt.Errorf("%w: (%d,%d) and (%d,%d)", ErrNotAdjacent, a.X, a.Y, b.X, b.Y)
	}
	a.connected[dir] = true
	b.connected[dir.Opposite()] = true
	return nil
}

// adjacency returns the direction from a toward b when they share an edge.
func adjacency(a, b *Room) (Direction, bool) {
	for _, dir := range Directions {
		dx, dy := dir.Delta()
		if a.X+dx == b.X && a.Y+dy == b.Y {
			return dir, true
		}
	}
	return North, false
}

// Neighbor returns the room one step from r in direction d, if present.
func (d *Dungeon) Neighbor(r *Room, dir Direction) (*Room, bool) {
	dx, dy := dir.Delta()
	return d.RoomAt(r.X+dx, r.Y+dy)
}

// MarkExit promotes r to the dungeon's Exit. Only one room may carry the
// tag per generation run, and the Entrance is never promoted.
func (d *Dungeon) MarkExit(r *Room) error {
	if d.exit != nil {
		return ErrSecondExit
	}
	if r.Type == Entrance {
		return fmt.Errorf("dungeon: cannot mark the entrance as exit")
	}
	r.Type = Exit
	d.exit = r
	return nil
}

// Rooms returns all placed rooms in creation order. Callers must not modify
// the returned slice.
func (d *Dungeon) Rooms() []*Room {
	return d.rooms
}

// RoomCount returns the number of placed rooms.
func (d *Dungeon) RoomCount() int {
	return len(d.rooms)
}

// Entrance returns the entrance room when one has been placed.
func (d *Dungeon) Entrance() (*Room, bool) {
	return d.entrance, d.entrance != nil
}

// Exit returns the exit room when one has been tagged.
func (d *Dungeon) Exit() (*Room, bool) {
	return d.exit, d.exit != nil
}
