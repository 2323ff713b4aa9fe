package generate

import (
	"math/rand"

	"dungeonforge/internal/dungeon"
)

// runBranchPasses grows side branches off the dungeon. Each pass roots a
// branch at a uniformly random existing room — main path or earlier branch —
// so branches interleave and can loop into one another.
func runBranchPasses(d *dungeon.Dungeon, cfg *Config) error {
	passes := cfg.branchPasses()
	for i := 0; i < passes; i++ {
		rooms := d.Rooms()
		root := rooms[cfg.Rand.Intn(len(rooms))]
		length := branchLenMin + cfg.Rand.Intn(branchLenMax-branchLenMin+1)
		if err := growBranch(d, root, length, cfg.Rand, true); err != nil {
			return err
		}
	}
	return nil
}

// growBranch extends a chain of up to length rooms from root, stopping early
// at a dead end. Each placed room may spawn a smaller nested sub-branch.
// When topLevel is set, the branch's terminal room may additionally loop
// back into an already occupied neighbor — the only way cycles enter the
// graph.
func growBranch(d *dungeon.Dungeon, root *dungeon.Room, length int, rng *rand.Rand, topLevel bool) error {
	current := root
	for i := 0; i < length; i++ {
		open := openDirections(d, current)
		if len(open) == 0 {
			break
		}
		dir := open[rng.Intn(len(open))]
		room, err := extend(d, current, dir, rng)
		if err != nil {
			return err
		}
		current = room

		if rng.Float64() < subBranchChance {
			subLen := subLenMin + rng.Intn(subLenMax-subLenMin+1)
			if err := growBranch(d, room, subLen, rng, false); err != nil {
				return err
			}
		}
	}

	if topLevel && current != root && rng.Float64() < loopChance {
		if err := attemptLoop(d, current, rng); err != nil {
			return err
		}
	}
	return nil
}

// attemptLoop connects terminal to a random occupied neighbor it is not yet
// linked with. A no-op when every occupied neighbor is already connected or
// none exists.
func attemptLoop(d *dungeon.Dungeon, terminal *dungeon.Room, rng *rand.Rand) error {
	var candidates []*dungeon.Room
	for _, dir := range dungeon.Directions {
		if terminal.Connected(dir) {
			continue
		}
		if neighbor, ok := d.Neighbor(terminal, dir); ok {
			candidates = append(candidates, neighbor)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	return d.Connect(terminal, candidates[rng.Intn(len(candidates))])
}
