package content

import (
	"context"
	"encoding/binary"
	"fmt"

	"dungeonforge/internal/dungeon"
)

// Describer writes names and descriptions onto rooms. Implementations may
// call out to a remote text-generation service; the topology never depends
// on the call succeeding, and a room with an empty description stays valid.
// Cancellation is the caller's responsibility via ctx.
type Describer interface {
	Describe(ctx context.Context, theme string, rooms []*dungeon.Room) error
}

// Fragments holds the per-theme word pools a StockDescriber composes from.
type Fragments struct {
	Adjectives []string
	Nouns      []string
	Features   []string
}

// StockDescriber is the in-tree Describer. It derives each room's text from
// the room's own identifier, so output is stable across runs for the same
// generated dungeon.
type StockDescriber struct {
	frags Fragments
}

// NewStockDescriber creates a describer over the given word pools.
func NewStockDescriber(frags Fragments) *StockDescriber {
	return &StockDescriber{frags: frags}
}

// Describe fills Name and Description on every listed room, honoring ctx
// between rooms.
func (s *StockDescriber) Describe(ctx context.Context, theme string, rooms []*dungeon.Room) error {
	for _, r := range rooms {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		s.describeRoom(theme, r)
	}
	return nil
}

func (s *StockDescriber) describeRoom(theme string, r *dungeon.Room) {
	adj := pick(s.frags.Adjectives, r.ID[:4])
	noun := pick(s.frags.Nouns, r.ID[4:8])
	feature := pick(s.frags.Features, r.ID[8:12])

	switch r.Type {
	case dungeon.Entrance:
		r.Name = "Entrance"
		r.Description = fmt.Sprintf("The way into the %s. Daylight fades behind you.", theme)
	case dungeon.Exit:
		r.Name = "Exit"
		r.Description = fmt.Sprintf("A passage leading out of the %s at last.", theme)
	default:
		r.Name = fmt.Sprintf("%s %s", adj, noun)
		r.Description = fmt.Sprintf("A %s %s. %s", adj, noun, feature)
	}
}

// pick selects a pool entry from four identifier bytes.
func pick(pool []string, b []byte) string {
	if len(pool) == 0 {
		return "nondescript"
	}
	n := binary.BigEndian.Uint32(b)
	return pool[int(n%uint32(len(pool)))]
}
