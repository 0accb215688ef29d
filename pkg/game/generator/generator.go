// Package generator builds crossword grids from a word pool.
package generator

import (
	"math/rand/v2"
	"time"

	"github.com/LeaderGRL/ELGJ25-sub000/pkg/game/crossword"
)

// GridGenerator is an interface for crossword layout algorithms
type GridGenerator interface {
	Generate(pool []crossword.Word, target int, rng *rand.Rand) *crossword.Grid
	Name() string
}

// Available generators
var (
	Intersection = &IntersectionGenerator{MaxIterations: DefaultMaxIterations}
)

// DefaultGenerator is the default grid generator
var DefaultGenerator GridGenerator = Intersection

// Build lays out up to target words from pool using DefaultGenerator. A nil
// seed draws a fresh one from the clock; the same seed and pool always give
// the same grid.
func Build(pool []crossword.Word, target int, seed *uint64) *crossword.Grid {
	return DefaultGenerator.Generate(pool, target, NewRand(seed))
}

// NewRand returns a PCG source seeded from seed, or from the clock when nil
func NewRand(seed *uint64) *rand.Rand {
	s := uint64(time.Now().UnixNano())
	if seed != nil {
		s = *seed
	}
	return rand.New(rand.NewPCG(s, s>>1|1))
}
