package generate

import (
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"dungeonforge/internal/dungeon"
)

var errNilConfig = errors.New("generate: nil config")

// Generate builds a dungeon topology: entrance at the grid center, a carved
// main path whose terminal room is tagged Exit, then branch passes over the
// accumulated room set. It returns the dungeon and the achieved main path
// length (rooms beyond the entrance), which may fall short of
// cfg.MinPathLength when the carver dead-ends on a cramped grid.
func Generate(cfg *Config) (*dungeon.Dungeon, int, error) {
	if cfg == nil {
		return nil, 0, errNilConfig
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	d, err := dungeon.New(cfg.Width, cfg.Height, cfg.Theme)
	if err != nil {
		return nil, 0, err
	}

	entrance := dungeon.NewRoom(newID(cfg.Rand), d.Width/2, d.Height/2)
	entrance.Type = dungeon.Entrance
	if err := d.PlaceRoom(entrance); err != nil {
		return nil, 0, err
	}

	length, err := carveMainPath(d, entrance, cfg)
	if err != nil {
		return nil, 0, err
	}

	if err := runBranchPasses(d, cfg); err != nil {
		return nil, 0, err
	}
	return d, length, nil
}

// newID mints a room or entity identifier from the run's random source, so
// identical seeds yield identical ids. rand.Rand's Read never fails.
func newID(rng *rand.Rand) uuid.UUID {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		panic(err)
	}
	return id
}

// openDirections lists the directions from r that are in bounds and lead to
// an unoccupied slot, in fixed direction order.
func openDirections(d *dungeon.Dungeon, r *dungeon.Room) []dungeon.Direction {
	var open []dungeon.Direction
	for _, dir := range dungeon.Directions {
		dx, dy := dir.Delta()
		nx, ny := r.X+dx, r.Y+dy
		if !d.InBounds(nx, ny) {
			continue
		}
		if _, taken := d.RoomAt(nx, ny); taken {
			continue
		}
		open = append(open, dir)
	}
	return open
}

// extend places a new room one step from current in dir and connects the
// pair atomically.
func extend(d *dungeon.Dungeon, current *dungeon.Room, dir dungeon.Direction, rng *rand.Rand) (*dungeon.Room, error) {
	dx, dy := dir.Delta()
	room := dungeon.NewRoom(newID(rng), current.X+dx, current.Y+dy)
	if err := d.PlaceRoom(room); err != nil {
		return nil, err
	}
	if err := d.Connect(current, room); err != nil {
		return nil, err
	}
	return room, nil
}
