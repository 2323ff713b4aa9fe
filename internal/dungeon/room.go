package dungeon

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// RoomType classifies a room's role in the dungeon.
type RoomType uint8

const (
	Normal RoomType = iota
	Entrance
	Exit
)

func (t RoomType) String() string {
	switch t {
	case Entrance:
		return "Entrance"
	case Exit:
		return "Exit"
	default:
		return "Normal"
	}
}

// ParseRoomType is the inverse of RoomType.String.
func ParseRoomType(s string) (RoomType, error) {
	switch s {
	case "Normal":
		return Normal, nil
	case "Entrance":
		return Entrance, nil
	case "Exit":
		return Exit, nil
	}
	return Normal, fmt.Errorf("unknown room type %q", s)
}

// Room is one node of the dungeon graph. ID and coordinates never change
// after placement; Type changes only when the room is promoted to Exit.
// Name and Description are written later by a content describer.
type Room struct {
	ID   uuid.UUID
	X, Y int
	Type RoomType

	Name        string
	Description string

	connected [4]bool

	// mu guards contents only; structural fields are immutable once placed.
	mu       sync.Mutex
	contents []Entity
}

// NewRoom creates an unplaced Normal room at (x, y).
func NewRoom(id uuid.UUID, x, y int) *Room {
	return &Room{ID: id, X: x, Y: y, Type: Normal}
}

// Connected reports whether the room links to its neighbor in direction d.
// Flags are set exclusively by Dungeon.Connect so both sides stay in sync.
func (r *Room) Connected(d Direction) bool {
	return r.connected[d]
}

// AddEntity appends e to the room's contents. Adding a second entity with
// the same ID is a logic error and is rejected.
func (r *Room) AddEntity(e Entity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, have := range r.contents {
		if have.ID == e.ID {
			return fmt.Errorf("room (%d,%d): %w: %s", r.X, r.Y, ErrDuplicateEntity, e.ID)
		}
	}
	r.contents = append(r.contents, e)
	return nil
}

// RemoveEntity deletes the entity with the given ID, reporting whether it
// was present. Order of the remaining entities is preserved.
func (r *Room) RemoveEntity(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, have := range r.contents {
		if have.ID == id {
			r.contents = append(r.contents[:i], r.contents[i+1:]...)
			return true
		}
	}
	return false
}

// Entities returns a snapshot of the room's contents.
func (r *Room) Entities() []Entity {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entity, len(r.contents))
	copy(out, r.contents)
	return out
}

// EntityCount returns the number of entities in the room.
func (r *Room) EntityCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.contents)
}
