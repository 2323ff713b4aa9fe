package generate

import (
	"bytes"
	"math/rand"
	"testing"

	"dungeonforge/internal/dungeon"
	"dungeonforge/internal/persist"
)

func testConfig(seed int64) *Config {
	return &Config{
		Width:         21,
		Height:        21,
		Theme:         "forgotten crypt",
		MinPathLength: 10,
		Rand:          rand.New(rand.NewSource(seed)),
	}
}

func mustGenerate(t *testing.T, cfg *Config) (*dungeon.Dungeon, int) {
	t.Helper()
	d, length, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return d, length
}

func TestSingleEntranceAtCenter(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		d, _ := mustGenerate(t, testConfig(seed))

		entrances := 0
		for _, r := range d.Rooms() {
			if r.Type == dungeon.Entrance {
				entrances++
				if r.X != d.Width/2 || r.Y != d.Height/2 {
					t.Errorf("seed=%d: entrance at (%d,%d), want (%d,%d)",
						seed, r.X, r.Y, d.Width/2, d.Height/2)
				}
			}
		}
		if entrances != 1 {
			t.Errorf("seed=%d: %d entrances, want exactly 1", seed, entrances)
		}
	}
}

func TestExactlyOneExit(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		d, _ := mustGenerate(t, testConfig(seed))

		exits := 0
		for _, r := range d.Rooms() {
			if r.Type == dungeon.Exit {
				exits++
			}
		}
		if exits != 1 {
			t.Errorf("seed=%d: %d exits, want exactly 1", seed, exits)
		}
		if _, ok := d.Exit(); !ok {
			t.Errorf("seed=%d: Exit() reports no exit", seed)
		}
	}
}

// TestConnectionSymmetry checks the core graph invariant: every set flag
// has an existing neighbor with the reciprocal flag set.
func TestConnectionSymmetry(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		d, _ := mustGenerate(t, testConfig(seed))
		assertSymmetry(t, d, seed)
	}
}

func assertSymmetry(t *testing.T, d *dungeon.Dungeon, seed int64) {
	t.Helper()
	for _, r := range d.Rooms() {
		for _, dir := range dungeon.Directions {
			if !r.Connected(dir) {
				continue
			}
			neighbor, ok := d.Neighbor(r, dir)
			if !ok {
				t.Errorf("seed=%d: room (%d,%d) connected %s into an empty slot", seed, r.X, r.Y, dir)
				continue
			}
			if !neighbor.Connected(dir.Opposite()) {
				t.Errorf("seed=%d: room (%d,%d) connected %s but (%d,%d) lacks the reciprocal flag",
					seed, r.X, r.Y, dir, neighbor.X, neighbor.Y)
			}
		}
	}
}

// TestOccupancyUniqueness checks that the coordinate index and the room
// list describe the same set of rooms with no duplicate coordinates.
func TestOccupancyUniqueness(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		d, _ := mustGenerate(t, testConfig(seed))

		seen := make(map[[2]int]bool)
		for _, r := range d.Rooms() {
			key := [2]int{r.X, r.Y}
			if seen[key] {
				t.Errorf("seed=%d: duplicate coordinates (%d,%d)", seed, r.X, r.Y)
			}
			seen[key] = true

			got, ok := d.RoomAt(r.X, r.Y)
			if !ok || got != r {
				t.Errorf("seed=%d: RoomAt(%d,%d) does not return the listed room", seed, r.X, r.Y)
			}
		}
	}
}

func TestMainPathLengthBounds(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		_, length := mustGenerate(t, testConfig(seed))
		// 21x21 with min path 10 has ample space; the carver should never
		// dead-end, so the length stays within the drawn window.
		if length < 10 || length > 19 {
			t.Errorf("seed=%d: main path length = %d, want within [10,19]", seed, length)
		}
	}
}

// TestDegenerateGridTerminates asks for a far longer path than a 3x3 grid
// can hold. Generation must terminate and still produce a valid, shorter
// dungeon with exactly one exit.
func TestDegenerateGridTerminates(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		cfg := &Config{
			Width:         3,
			Height:        3,
			Theme:         "cramped cellar",
			MinPathLength: 50,
			Rand:          rand.New(rand.NewSource(seed)),
		}
		d, length, err := Generate(cfg)
		if err != nil {
			t.Fatalf("seed=%d: Generate: %v", seed, err)
		}
		if length >= 50 {
			t.Errorf("seed=%d: length = %d, expected a short path on a 3x3 grid", seed, length)
		}
		if length > 8 {
			t.Errorf("seed=%d: length = %d exceeds the 8 free slots of a 3x3 grid", seed, length)
		}
		if _, ok := d.Exit(); !ok {
			t.Errorf("seed=%d: degenerate dungeon still needs an exit", seed)
		}
		assertSymmetry(t, d, seed)
	}
}

// TestSingleCellGrid is the fully degenerate case: the entrance fills the
// grid and no exit can exist.
func TestSingleCellGrid(t *testing.T) {
	cfg := &Config{
		Width:         1,
		Height:        1,
		Theme:         "closet",
		MinPathLength: 10,
		Rand:          rand.New(rand.NewSource(1)),
	}
	d, length, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if length != 0 {
		t.Errorf("length = %d, want 0", length)
	}
	if d.RoomCount() != 1 {
		t.Errorf("room count = %d, want 1", d.RoomCount())
	}
	if _, ok := d.Exit(); ok {
		t.Error("a one-room dungeon cannot have an exit")
	}
}

func TestBranchPassesGrowTheDungeon(t *testing.T) {
	base := testConfig(7)
	base.BranchPasses = 1 // minimum work before comparison
	small, length := mustGenerate(t, base)

	full := testConfig(7)
	full.BranchPasses = DefaultBranchPasses
	grown, lengthFull := mustGenerate(t, full)

	if length != lengthFull {
		t.Errorf("branch passes changed main path length: %d vs %d", length, lengthFull)
	}
	if grown.RoomCount() <= small.RoomCount() {
		t.Errorf("30 passes produced %d rooms, 1 pass produced %d; expected growth",
			grown.RoomCount(), small.RoomCount())
	}
}

// TestDeterminism: the same seed must produce a byte-identical serialized
// dungeon.
func TestDeterminism(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		d1, _ := mustGenerate(t, testConfig(seed))
		d2, _ := mustGenerate(t, testConfig(seed))

		data1, err := persist.Marshal(d1)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		data2, err := persist.Marshal(d2)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if !bytes.Equal(data1, data2) {
			t.Errorf("seed=%d: two runs serialized differently", seed)
		}
	}
}

func TestGenerateRejectsBadConfig(t *testing.T) {
	if _, _, err := Generate(nil); err == nil {
		t.Error("nil config should fail")
	}
	cfg := testConfig(1)
	cfg.Width = 0
	if _, _, err := Generate(cfg); err == nil {
		t.Error("zero width should fail")
	}
	cfg = testConfig(1)
	cfg.Theme = " "
	if _, _, err := Generate(cfg); err == nil {
		t.Error("blank theme should fail")
	}
}
