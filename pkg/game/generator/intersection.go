package generator

import (
	"math/rand/v2"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/LeaderGRL/ELGJ25-sub000/pkg/engine/world"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/game/crossword"
)

// DefaultMaxIterations bounds the candidate loop of IntersectionGenerator
const DefaultMaxIterations = 10000

// IntersectionGenerator grows a grid one word at a time, always crossing a
// word already on the grid. It gives up on a word only for the current pass;
// the loop ends at the target count, after two passes in a row place nothing,
// or at MaxIterations.
type IntersectionGenerator struct {
	MaxIterations int
}

// Name returns the name of this generator
func (g *IntersectionGenerator) Name() string {
	return "Intersection"
}

// Generate shuffles a copy of pool with rng and places words until target
// words are on the grid or nothing more fits.
func (g *IntersectionGenerator) Generate(pool []crossword.Word, target int, rng *rand.Rand) *crossword.Grid {
	grid := crossword.NewGrid()
	grid.OnWordAdded(func(w *crossword.PlacedWord) {
		log.Trace().
			Str("word", w.Text()).
			Stringer("origin", w.Origin()).
			Stringer("orientation", w.Orientation()).
			Msg("word placed")
	})
	if target <= 0 {
		return grid
	}

	candidates := make([]crossword.Word, 0, len(pool))
	for _, w := range pool {
		if w.Valid() {
			candidates = append(candidates, crossword.NewWord(w.Text, w.Clue, w.Difficulty))
		}
	}
	if len(candidates) == 0 {
		return grid
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	grid.AddWord(crossword.NewPlacedWord(candidates[0], world.At(0, 0), world.Row))
	placed := 1
	n := len(candidates)

	maxIterations := g.MaxIterations
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}

	used := make([]bool, n)
	used[0] = true
	idlePasses := 0
	progress := false
	iterations := 0

	for i := 1; placed < target && placed < n; {
		if iterations >= maxIterations {
			log.Warn().
				Int("iterations", iterations).
				Int("placed", placed).
				Int("target", target).
				Msg("grid builder hit iteration ceiling")
			break
		}
		iterations++

		if !used[i] {
			if w := g.place(grid, candidates[i], rng); w != nil {
				grid.AddWord(w)
				used[i] = true
				placed++
				progress = true
			}
		}

		i++
		if i >= n {
			i = 1
			if progress {
				idlePasses = 0
			} else {
				idlePasses++
			}
			progress = false
			if idlePasses >= 2 {
				break
			}
		}
	}

	log.Debug().
		Int("placed", placed).
		Int("target", target).
		Int("candidates", n).
		Int("iterations", iterations).
		Msg("grid built")
	return grid
}

// place tries the words already on grid as anchors in random order and
// returns word crossing the first anchor that admits at least one legal
// origin. It returns nil when no anchor does.
func (g *IntersectionGenerator) place(grid *crossword.Grid, word crossword.Word, rng *rand.Rand) *crossword.PlacedWord {
	letters := []rune(word.Text)
	anchors := grid.Words()

	for _, k := range rng.Perm(len(anchors)) {
		anchor := anchors[k]
		orientation := anchor.Orientation().Perpendicular()
		anchorLetters := []rune(anchor.Text())
		anchorPositions := anchor.Positions()

		var origins []world.Coord
		for i, r := range letters {
			for j, a := range anchorLetters {
				if r != a {
					continue
				}
				cross := anchorPositions[j]
				origin := cross.Offset(orientation.Backward(), i)
				if slices.Contains(origins, origin) {
					continue
				}
				if fits(grid, letters, origin, orientation, cross) {
					origins = append(origins, origin)
				}
			}
		}

		if len(origins) > 0 {
			origin := origins[rng.IntN(len(origins))]
			return crossword.NewPlacedWord(word, origin, orientation)
		}
	}
	return nil
}

// fits reports whether letters can be laid from origin along orientation
// crossing the grid at cross only. The cross cell must already hold the same
// letter; every other cell must be empty with empty cells on both sides; and
// the cells just before and after the word must be empty.
func fits(grid *crossword.Grid, letters []rune, origin world.Coord, orientation world.Orientation, cross world.Coord) bool {
	if len(letters) < 2 {
		return false
	}
	forward := orientation.Forward()
	backward := orientation.Backward()
	left, right := orientation.Sides()

	if _, taken := grid.LetterAt(origin.Step(backward)); taken {
		return false
	}
	if _, taken := grid.LetterAt(origin.Offset(forward, len(letters))); taken {
		return false
	}

	crossed := false
	for i, r := range letters {
		pos := origin.Offset(forward, i)
		existing, occupied := grid.LetterAt(pos)
		if pos == cross {
			if !occupied || existing != r {
				return false
			}
			crossed = true
			continue
		}
		if occupied {
			return false
		}
		if _, taken := grid.LetterAt(pos.Step(left)); taken {
			return false
		}
		if _, taken := grid.LetterAt(pos.Step(right)); taken {
			return false
		}
	}
	return crossed
}
