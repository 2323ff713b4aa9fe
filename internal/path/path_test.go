package path

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"dungeonforge/internal/dungeon"
	"dungeonforge/internal/generate"
)

func mustDungeon(t *testing.T, w, h int) *dungeon.Dungeon {
	t.Helper()
	d, err := dungeon.New(w, h, "test theme")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return d
}

func place(t *testing.T, d *dungeon.Dungeon, x, y int, typ dungeon.RoomType) *dungeon.Room {
	t.Helper()
	r := dungeon.NewRoom(uuid.New(), x, y)
	r.Type = typ
	if err := d.PlaceRoom(r); err != nil {
		t.Fatalf("PlaceRoom(%d,%d): %v", x, y, err)
	}
	return r
}

func connect(t *testing.T, d *dungeon.Dungeon, a, b *dungeon.Room) {
	t.Helper()
	if err := d.Connect(a, b); err != nil {
		t.Fatalf("Connect: %v", err)
	}
}

// followRoute walks the route from the entrance and returns the room it
// ends on, failing if a step leaves the graph or runs past the room count.
func followRoute(t *testing.T, d *dungeon.Dungeon, route Route) *dungeon.Room {
	t.Helper()
	current, ok := d.Entrance()
	if !ok {
		t.Fatal("dungeon has no entrance")
	}
	for steps := 0; steps <= d.RoomCount(); steps++ {
		dir, ok := route[[2]int{current.X, current.Y}]
		if !ok {
			return current
		}
		if !current.Connected(dir) {
			t.Fatalf("route leads %s from (%d,%d) through a missing connection", dir, current.X, current.Y)
		}
		next, ok := d.Neighbor(current, dir)
		if !ok {
			t.Fatalf("route leads %s from (%d,%d) into an empty slot", dir, current.X, current.Y)
		}
		current = next
	}
	t.Fatal("route does not terminate within the room count")
	return nil
}

func TestSolveStraightLine(t *testing.T) {
	d := mustDungeon(t, 6, 3)
	entrance := place(t, d, 1, 1, dungeon.Entrance)
	a := place(t, d, 2, 1, dungeon.Normal)
	b := place(t, d, 3, 1, dungeon.Normal)
	exit := place(t, d, 4, 1, dungeon.Normal)
	connect(t, d, entrance, a)
	connect(t, d, a, b)
	connect(t, d, b, exit)
	if err := d.MarkExit(exit); err != nil {
		t.Fatalf("MarkExit: %v", err)
	}

	route, found := Solve(d)
	if !found {
		t.Fatal("Solve found no path on a straight corridor")
	}
	if len(route) != 3 {
		t.Errorf("route has %d marks, want 3", len(route))
	}
	if end := followRoute(t, d, route); end != exit {
		t.Errorf("route ends at (%d,%d), want the exit", end.X, end.Y)
	}
}

// TestSolveDeadEndsUnmarked builds a T shape where the first direction
// tried (north) dead-ends; the abandoned arm must leave no marks behind.
func TestSolveDeadEndsUnmarked(t *testing.T) {
	d := mustDungeon(t, 5, 5)
	entrance := place(t, d, 2, 2, dungeon.Entrance)
	deadEnd := place(t, d, 2, 1, dungeon.Normal) // north arm, tried first
	exitRoom := place(t, d, 3, 2, dungeon.Normal)
	connect(t, d, entrance, deadEnd)
	connect(t, d, entrance, exitRoom)
	if err := d.MarkExit(exitRoom); err != nil {
		t.Fatalf("MarkExit: %v", err)
	}

	route, found := Solve(d)
	if !found {
		t.Fatal("Solve found no path")
	}
	if _, marked := route[[2]int{2, 1}]; marked {
		t.Error("dead-end room kept a forward mark")
	}
	if dir := route[[2]int{2, 2}]; dir != dungeon.East {
		t.Errorf("entrance mark = %s, want east", dir)
	}
	if len(route) != 1 {
		t.Errorf("route has %d marks, want 1", len(route))
	}
}

func TestSolveNoExit(t *testing.T) {
	d := mustDungeon(t, 4, 4)
	entrance := place(t, d, 2, 2, dungeon.Entrance)
	a := place(t, d, 2, 1, dungeon.Normal)
	connect(t, d, entrance, a)

	if _, found := Solve(d); found {
		t.Error("Solve reported a path in an exitless dungeon")
	}
}

func TestSolveNoEntrance(t *testing.T) {
	d := mustDungeon(t, 4, 4)
	if _, found := Solve(d); found {
		t.Error("Solve reported a path in an empty dungeon")
	}
}

// TestSolveTerminatesOnCycle: a 2x2 ring with no exit must not loop.
func TestSolveTerminatesOnCycle(t *testing.T) {
	d := mustDungeon(t, 4, 4)
	entrance := place(t, d, 1, 1, dungeon.Entrance)
	a := place(t, d, 2, 1, dungeon.Normal)
	b := place(t, d, 2, 2, dungeon.Normal)
	c := place(t, d, 1, 2, dungeon.Normal)
	connect(t, d, entrance, a)
	connect(t, d, a, b)
	connect(t, d, b, c)
	connect(t, d, c, entrance)

	if _, found := Solve(d); found {
		t.Error("Solve reported a path in an exitless ring")
	}
}

// TestSolveOnGeneratedDungeons: the reconstructor must find the exit on any
// generated dungeon that has one, independent of how generation carved it.
func TestSolveOnGeneratedDungeons(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		cfg := &generate.Config{
			Width:         21,
			Height:        21,
			Theme:         "forgotten crypt",
			MinPathLength: 10,
			Rand:          rand.New(rand.NewSource(seed)),
		}
		d, _, err := generate.Generate(cfg)
		if err != nil {
			t.Fatalf("seed=%d: Generate: %v", seed, err)
		}
		exit, ok := d.Exit()
		if !ok {
			t.Fatalf("seed=%d: generated dungeon has no exit", seed)
		}

		route, found := Solve(d)
		if !found {
			t.Fatalf("seed=%d: Solve found no path", seed)
		}
		if end := followRoute(t, d, route); end != exit {
			t.Errorf("seed=%d: route ends at (%d,%d), not the exit (%d,%d)",
				seed, end.X, end.Y, exit.X, exit.Y)
		}
	}
}
