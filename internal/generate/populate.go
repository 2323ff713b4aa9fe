package generate

import (
	"math/rand"
	"sync"

	"dungeonforge/internal/content"
	"dungeonforge/internal/dungeon"
)

// Populate stocks every Normal room from the theme catalog. Entrance and
// Exit are never populated. Each room's outcome is a single independent
// roll: under 10% a treasure chest (itself locked 30% of the time), the
// next 10% band an enemy from the catalog, otherwise the room stays empty.
func Populate(d *dungeon.Dungeon, cat content.Catalog, rng *rand.Rand) error {
	for _, r := range d.Rooms() {
		if r.Type != dungeon.Normal {
			continue
		}
		if err := populateRoom(r, cat, rng); err != nil {
			return err
		}
	}
	return nil
}

// PopulateConcurrent is Populate across a worker pool. Per-room seeds are
// drawn from rng in room order before any worker starts, so the outcome is
// independent of scheduling and identical to a run with the same base seed.
func PopulateConcurrent(d *dungeon.Dungeon, cat content.Catalog, rng *rand.Rand, workers int) error {
	if workers < 1 {
		workers = 1
	}

	var targets []*dungeon.Room
	for _, r := range d.Rooms() {
		if r.Type == dungeon.Normal {
			targets = append(targets, r)
		}
	}
	seeds := make([]int64, len(targets))
	for i := range seeds {
		seeds[i] = rng.Int63()
	}

	errs := make([]error, len(targets))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				local := rand.New(rand.NewSource(seeds[i]))
				errs[i] = populateRoom(targets[i], cat, local)
			}
		}()
	}
	for i := range targets {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// populateRoom rolls once for the room and appends at most one entity.
// Only the room's content list is touched; topology is never altered.
func populateRoom(r *dungeon.Room, cat content.Catalog, rng *rand.Rand) error {
	roll := rng.Float64()
	switch {
	case roll < chestChance:
		if len(cat.Treasures) == 0 {
			return nil
		}
		entry := cat.Treasures[rng.Intn(len(cat.Treasures))]
		locked := rng.Float64() < lockedChance
		value := 10 + rng.Intn(91)
		return r.AddEntity(dungeon.NewTreasureChest(newID(rng), entry.Name, value, locked))
	case roll < chestChance+enemyChance:
		if len(cat.Enemies) == 0 {
			return nil
		}
		entry := cat.Enemies[rng.Intn(len(cat.Enemies))]
		health := 10 + rng.Intn(21)
		attack := 1 + rng.Intn(5)
		reward := 5 + rng.Intn(26)
		return r.AddEntity(dungeon.NewEnemy(newID(rng), entry.Name, health, attack, reward))
	}
	return nil
}
