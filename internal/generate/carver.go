package generate

import (
	"log"

	"dungeonforge/internal/dungeon"
)

// carveMainPath lays out the critical path from the entrance with a
// randomized depth-first walk. The stack holds the current path prefix;
// a room with no open neighbor is popped and stays in the graph as a
// non-extendable node. Returns the number of rooms placed beyond the
// entrance.
func carveMainPath(d *dungeon.Dungeon, entrance *dungeon.Room, cfg *Config) (int, error) {
	target := cfg.MinPathLength + cfg.Rand.Intn(pathLengthSpread)

	stack := []*dungeon.Room{entrance}
	last := entrance
	placed := 0

	for placed < target && len(stack) > 0 {
		current := stack[len(stack)-1]
		open := openDirections(d, current)
		if len(open) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		dir := open[cfg.Rand.Intn(len(open))]
		room, err := extend(d, current, dir, cfg.Rand)
		if err != nil {
			return placed, err
		}
		stack = append(stack, room)
		last = room
		placed++
	}

	if placed < target {
		log.Printf("generate: main path dead-ended at %d of %d rooms on a %dx%d grid; continuing with the shorter path",
			placed, target, d.Width, d.Height)
	}

	// Tag the last room reached as the exit. When not even one room could
	// be placed the dungeon has no exit at all.
	if last != entrance {
		if err := d.MarkExit(last); err != nil {
			return placed, err
		}
	} else {
		log.Printf("generate: no room could be carved from the entrance; dungeon has no exit")
	}
	return placed, nil
}
