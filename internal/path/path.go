// Package path recovers the entrance→exit route of a generated dungeon
// after the fact, for rendering and diagnostics. The search is independent
// of how the graph was built: it succeeds on any graph that contains a
// route from the Entrance to an Exit-tagged room.
package path

import "dungeonforge/internal/dungeon"

// Route maps a coordinate on the solution path to the direction taken
// forward toward the exit from that coordinate. The exit room itself
// carries no entry.
type Route map[[2]int]dungeon.Direction

// frame is one level of the explicit search stack: a room and the index of
// the next direction to try from it.
type frame struct {
	room *dungeon.Room
	next int
}

// Solve runs a depth-first search from the Entrance, trying directions in
// fixed order. The search is iterative with an explicit stack, so depth is
// bounded by room count rather than goroutine stack size. Dead ends unwind
// with their forward marks removed, leaving only the solution marked.
// found is false when the dungeon has no entrance or no reachable exit.
func Solve(d *dungeon.Dungeon) (route Route, found bool) {
	start, ok := d.Entrance()
	if !ok {
		return nil, false
	}

	route = make(Route)
	visited := map[[2]int]bool{{start.X, start.Y}: true}
	stack := []frame{{room: start}}

	for len(stack) > 0 {
		f := &stack[len(stack)-1]

		if f.room.Type == dungeon.Exit {
			return route, true
		}

		advanced := false
		for f.next < len(dungeon.Directions) {
			dir := dungeon.Directions[f.next]
			f.next++
			if !f.room.Connected(dir) {
				continue
			}
			neighbor, ok := d.Neighbor(f.room, dir)
			if !ok {
				continue
			}
			key := [2]int{neighbor.X, neighbor.Y}
			if visited[key] {
				continue
			}
			route[[2]int{f.room.X, f.room.Y}] = dir
			visited[key] = true
			stack = append(stack, frame{room: neighbor})
			advanced = true
			break
		}

		if !advanced {
			// Dead end: remove this room's forward mark before
			// backtracking so only the real path stays marked.
			delete(route, [2]int{f.room.X, f.room.Y})
			stack = stack[:len(stack)-1]
		}
	}
	return nil, false
}
