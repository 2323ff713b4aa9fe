package generate

import "math/rand"

// Defaults for knobs callers usually leave alone.
const (
	DefaultBranchPasses = 30

	// pathLengthSpread is the width of the uniform window the target main
	// path length is drawn from: [MinPathLength, MinPathLength+spread).
	pathLengthSpread = 10

	branchLenMin = 2
	branchLenMax = 5
	subLenMin    = 1
	subLenMax    = 3

	subBranchChance = 0.20
	loopChance      = 0.30

	chestChance  = 0.10
	enemyChance  = 0.10
	lockedChance = 0.30
)

// Config drives one dungeon generation run.
type Config struct {
	Width  int
	Height int
	Theme  string

	// MinPathLength is the minimum number of rooms carved beyond the
	// entrance for the main path.
	MinPathLength int

	// BranchPasses is the number of branch-creation passes; zero selects
	// DefaultBranchPasses.
	BranchPasses int

	// Rand is the random source for every decision in the run. Required
	// for reproducibility; all randomness flows through it.
	Rand *rand.Rand
}

func (cfg *Config) branchPasses() int {
	if cfg.BranchPasses <= 0 {
		return DefaultBranchPasses
	}
	return cfg.BranchPasses
}
