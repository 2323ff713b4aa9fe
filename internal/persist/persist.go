// Package persist maps the in-memory dungeon graph to its persisted JSON
// document and back. The field names and the four-direction boolean
// convention are a load-bearing contract for downstream consumers and must
// round-trip exactly.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"

	"dungeonforge/internal/dungeon"
)

// ErrMalformed marks any failure to reconstruct a dungeon from a persisted
// document: bad JSON, impossible dimensions, duplicate coordinates,
// asymmetric connection flags, or references past the grid edge. No partial
// recovery is attempted.
var ErrMalformed = errors.New("persist: malformed dungeon document")

// Document is the top-level persisted form.
type Document struct {
	Width  int          `json:"width"`
	Height int          `json:"height"`
	Theme  string       `json:"theme"`
	Rooms  []RoomRecord `json:"rooms"`
}

// RoomRecord is the persisted form of one room.
type RoomRecord struct {
	ID             uuid.UUID      `json:"id"`
	X              int            `json:"x"`
	Y              int            `json:"y"`
	Type           string         `json:"type"`
	Description    string         `json:"description"`
	ConnectedNorth bool           `json:"connectedNorth"`
	ConnectedEast  bool           `json:"connectedEast"`
	ConnectedSouth bool           `json:"connectedSouth"`
	ConnectedWest  bool           `json:"connectedWest"`
	Entities       []EntityRecord `json:"entities"`
}

// EntityRecord is the kind-discriminated persisted form of one entity.
// Fields beyond kind, id and name are present only for the kinds that
// carry them.
type EntityRecord struct {
	Kind string    `json:"kind"`
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`

	Locked   *bool  `json:"locked,omitempty"`
	Treasure string `json:"treasure,omitempty"`
	Value    *int   `json:"value,omitempty"`

	Health      *int `json:"health,omitempty"`
	Attack      *int `json:"attack,omitempty"`
	MoneyReward *int `json:"moneyReward,omitempty"`
}

// ToDocument maps a dungeon to its persisted form. Rooms appear in creation
// order and entities in content order, so the mapping is deterministic.
func ToDocument(d *dungeon.Dungeon) Document {
	doc := Document{
		Width:  d.Width,
		Height: d.Height,
		Theme:  d.Theme,
		Rooms:  make([]RoomRecord, 0, d.RoomCount()),
	}
	for _, r := range d.Rooms() {
		rec := RoomRecord{
			ID:             r.ID,
			X:              r.X,
			Y:              r.Y,
			Type:           r.Type.String(),
			Description:    r.Description,
			ConnectedNorth: r.Connected(dungeon.North),
			ConnectedEast:  r.Connected(dungeon.East),
			ConnectedSouth: r.Connected(dungeon.South),
			ConnectedWest:  r.Connected(dungeon.West),
		}
		for _, e := range r.Entities() {
			rec.Entities = append(rec.Entities, toEntityRecord(e))
		}
		doc.Rooms = append(doc.Rooms, rec)
	}
	return doc
}

func toEntityRecord(e dungeon.Entity) EntityRecord {
	rec := EntityRecord{Kind: e.Kind.String(), ID: e.ID, Name: e.Name}
	switch e.Kind {
	case dungeon.KindTreasureChest:
		locked, value := e.Locked, e.Value
		rec.Locked = &locked
		rec.Treasure = e.Treasure
		rec.Value = &value
	case dungeon.KindEnemy:
		health, attack, reward := e.Health, e.Attack, e.MoneyReward
		rec.Health = &health
		rec.Attack = &attack
		rec.MoneyReward = &reward
	}
	return rec
}

// FromDocument reconstructs a dungeon by re-placing every room at its
// recorded coordinates through the grid's placement contract. Generation
// logic never reruns here.
func FromDocument(doc Document) (*dungeon.Dungeon, error) {
	d, err := dungeon.New(doc.Width, doc.Height, doc.Theme)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	rooms := make([]*dungeon.Room, len(doc.Rooms))
	for i, rec := range doc.Rooms {
		t, err := dungeon.ParseRoomType(rec.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		room := dungeon.NewRoom(rec.ID, rec.X, rec.Y)
		room.Type = t
		room.Description = rec.Description
		if err := d.PlaceRoom(room); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		for _, er := range rec.Entities {
			e, err := fromEntityRecord(er)
			if err != nil {
				return nil, err
			}
			if err := room.AddEntity(e); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
			}
		}
		rooms[i] = room
	}

	// Rebuild edges. Every set flag must point at an existing room that
	// holds the reciprocal flag; Connect restores both sides at once.
	for i, rec := range doc.Rooms {
		flags := [4]bool{rec.ConnectedNorth, rec.ConnectedEast, rec.ConnectedSouth, rec.ConnectedWest}
		for _, dir := range dungeon.Directions {
			if !flags[dir] {
				continue
			}
			neighbor, ok := d.Neighbor(rooms[i], dir)
			if !ok {
				return nil, fmt.Errorf("%w: room (%d,%d) connected %s into an empty slot",
					ErrMalformed, rec.X, rec.Y, dir)
			}
			j := indexOf(doc.Rooms, neighbor.X, neighbor.Y)
			if j < 0 || !flagToward(doc.Rooms[j], dir.Opposite()) {
				return nil, fmt.Errorf("%w: room (%d,%d) connected %s without a reciprocal flag",
					ErrMalformed, rec.X, rec.Y, dir)
			}
			if err := d.Connect(rooms[i], neighbor); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
			}
		}
	}
	return d, nil
}

func fromEntityRecord(rec EntityRecord) (dungeon.Entity, error) {
	switch rec.Kind {
	case dungeon.KindTreasureChest.String():
		e := dungeon.NewTreasureChest(rec.ID, rec.Treasure, deref(rec.Value), rec.Locked != nil && *rec.Locked)
		e.Name = rec.Name
		return e, nil
	case dungeon.KindEnemy.String():
		return dungeon.NewEnemy(rec.ID, rec.Name, deref(rec.Health), deref(rec.Attack), deref(rec.MoneyReward)), nil
	case dungeon.KindLockPick.String():
		e := dungeon.NewLockPick(rec.ID)
		e.Name = rec.Name
		return e, nil
	}
	return dungeon.Entity{}, fmt.Errorf("%w: unknown entity kind %q", ErrMalformed, rec.Kind)
}

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func indexOf(rooms []RoomRecord, x, y int) int {
	for i, rec := range rooms {
		if rec.X == x && rec.Y == y {
			return i
		}
	}
	return -1
}

func flagToward(rec RoomRecord, dir dungeon.Direction) bool {
	switch dir {
	case dungeon.North:
		return rec.ConnectedNorth
	case dungeon.East:
		return rec.ConnectedEast
	case dungeon.South:
		return rec.ConnectedSouth
	default:
		return rec.ConnectedWest
	}
}

// Marshal serializes the dungeon to its persisted JSON form. Output is
// deterministic for a given dungeon.
func Marshal(d *dungeon.Dungeon) ([]byte, error) {
	return json.MarshalIndent(ToDocument(d), "", "  ")
}

// Unmarshal parses a persisted document and rebuilds the dungeon.
func Unmarshal(data []byte) (*dungeon.Dungeon, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return FromDocument(doc)
}

// Save writes the dungeon's persisted form to path.
func Save(path string, d *dungeon.Dungeon) error {
	data, err := Marshal(d)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads and rebuilds a dungeon from path.
func Load(path string) (*dungeon.Dungeon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Unmarshal(data)
}
