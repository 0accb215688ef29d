package crossword

import (
	"maps"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/LeaderGRL/ELGJ25-sub000/pkg/engine/world"
)

// startKey identifies a word by where it starts and which way it runs
type startKey struct {
	origin      world.Coord
	orientation world.Orientation
}

// Grid is the crossword aggregate: placed words in placement order, a cached
// combined solution-letter map, and completion tracking.
type Grid struct {
	words   []*PlacedWord
	letters world.LetterMap
	starts  map[startKey]*PlacedWord

	onWordAdded     []func(*PlacedWord)
	onWordValidated []func(*PlacedWord)
	onGridComplete  []func(*PlacedWord)

	complete bool
}

// NewGrid creates an empty grid
func NewGrid() *Grid {
	return &Grid{
		letters: world.NewLetterMap(),
		starts:  make(map[startKey]*PlacedWord),
	}
}

// OnWordAdded registers fn to run after each AddWord
func (g *Grid) OnWordAdded(fn func(*PlacedWord)) {
	if fn != nil {
		g.onWordAdded = append(g.onWordAdded, fn)
	}
}

// OnWordValidated registers fn to run when any word becomes fully validated
func (g *Grid) OnWordValidated(fn func(*PlacedWord)) {
	if fn != nil {
		g.onWordValidated = append(g.onWordValidated, fn)
	}
}

// OnGridComplete registers fn to run once, when the last unsolved word is
// validated. fn receives that word.
func (g *Grid) OnGridComplete(fn func(*PlacedWord)) {
	if fn != nil {
		g.onGridComplete = append(g.onGridComplete, fn)
	}
}

// AddWord appends w, indexes its letters and wires validation propagation
func (g *Grid) AddWord(w *PlacedWord) {
	if w == nil {
		return
	}
	g.words = append(g.words, w)
	for _, pos := range w.positions {
		if !g.letters.Has(pos) {
			g.letters[pos] = w.solution[pos]
		}
	}
	key := startKey{origin: w.origin, orientation: w.orientation}
	if _, taken := g.starts[key]; !taken {
		g.starts[key] = w
	}
	w.OnValidated(g.wordValidated)

	for _, fn := range g.onWordAdded {
		fn(w)
	}
}

// Words returns the placed words in placement order
func (g *Grid) Words() []*PlacedWord {
	return slices.Clone(g.words)
}

// Len returns the number of placed words
func (g *Grid) Len() int {
	return len(g.words)
}

// Letters returns a snapshot of the combined solution letters
func (g *Grid) Letters() world.LetterMap {
	return maps.Clone(g.letters)
}

// LetterAt returns the solution letter at pos
func (g *Grid) LetterAt(pos world.Coord) (rune, bool) {
	return g.letters.At(pos)
}

// Bounds returns the bounding box of all letters
func (g *Grid) Bounds() (min, max world.Coord, ok bool) {
	return g.letters.Bounds()
}

// WordAt returns a word through pos, preferring the row word when two cross
// there. Use WordsAt when both are needed.
func (g *Grid) WordAt(pos world.Coord) *PlacedWord {
	words := g.WordsAt(pos)
	if len(words) == 0 {
		return nil
	}
	return words[0]
}

// WordAtOriented returns the word of the given orientation through pos, if any
func (g *Grid) WordAtOriented(pos world.Coord, o world.Orientation) *PlacedWord {
	for _, w := range g.WordsAt(pos) {
		if w.orientation == o {
			return w
		}
	}
	return nil
}

// WordsAt returns the zero, one or two words occupying pos. The row word, if
// any, comes first.
func (g *Grid) WordsAt(pos world.Coord) []*PlacedWord {
	if !g.letters.Has(pos) {
		return nil
	}

	var found []*PlacedWord
	if g.letters.HasNeighbor(pos, world.West) || g.letters.HasNeighbor(pos, world.East) {
		if w := g.resolveRun(pos, world.Row); w != nil {
			found = append(found, w)
		}
	}
	if g.letters.HasNeighbor(pos, world.North) || g.letters.HasNeighbor(pos, world.South) {
		if w := g.resolveRun(pos, world.Column); w != nil {
			found = append(found, w)
		}
	}
	if len(found) == 0 {
		// single-letter word with no neighbours
		for _, w := range g.words {
			if w.Contains(pos) {
				found = append(found, w)
			}
		}
	}
	return found
}

// resolveRun walks backward from pos to the start of its run along o and
// looks the word up by its start.
func (g *Grid) resolveRun(pos world.Coord, o world.Orientation) *PlacedWord {
	back := o.Backward()
	start := pos
	for g.letters.HasNeighbor(start, back) {
		start = start.Step(back)
	}
	if w := g.starts[startKey{origin: start, orientation: o}]; w != nil && w.Contains(pos) {
		return w
	}
	// Runs built by hand may butt words end to end.
	for _, w := range g.words {
		if w.orientation == o && w.Contains(pos) {
			return w
		}
	}
	return nil
}

// SetLetter types r at pos into every word occupying it
func (g *Grid) SetLetter(pos world.Coord, r rune) {
	for _, w := range g.WordsAt(pos) {
		w.SetLetter(pos, r)
	}
}

// LockPosition locks pos in every word occupying it
func (g *Grid) LockPosition(pos world.Coord) {
	for _, w := range g.WordsAt(pos) {
		w.LockPosition(pos)
	}
}

// EnterText types a guess into w and mirrors the typed letters into the words
// crossing it.
func (g *Grid) EnterText(w *PlacedWord, text string) {
	if w == nil {
		return
	}
	w.EnterText(text)
	for _, pos := range w.positions {
		r := w.current[pos]
		for _, other := range g.WordsAt(pos) {
			if other != w {
				other.SetLetter(pos, r)
			}
		}
	}
}

// Submit types text into w and validates it when it spells the solution.
// Crossing words that the mirrored letters complete correctly are validated
// too, even when the guess for w is wrong. It reports whether w is validated
// afterwards.
func (g *Grid) Submit(w *PlacedWord, text string) bool {
	if w == nil {
		return false
	}
	if w.validated {
		return true
	}
	g.EnterText(w, text)
	if w.IsTypedCorrectly() {
		w.ValidateWhole()
	}
	for _, pos := range w.positions {
		for _, other := range g.WordsAt(pos) {
			if other != w && !other.validated && other.IsTypedCorrectly() {
				other.ValidateWhole()
			}
		}
	}
	return w.validated
}

// RevealLetter locks every position whose solution letter is r, in every word
// through that position. It returns the affected coordinates in reading order.
func (g *Grid) RevealLetter(r rune) []world.Coord {
	target := NormalizeLetter(r)
	if target == EmptyLetter {
		return nil
	}

	affected := mapset.New[world.Coord]()
	for _, w := range g.words {
		for _, pos := range w.positions {
			if w.solution[pos] == target {
				affected.Put(pos)
			}
		}
	}

	coords := make([]world.Coord, 0, affected.Size())
	affected.Each(func(pos world.Coord) {
		coords = append(coords, pos)
	})
	slices.SortFunc(coords, world.Compare)

	for _, pos := range coords {
		for _, w := range g.WordsAt(pos) {
			w.SetLetter(pos, target)
			w.LockPosition(pos)
		}
	}
	return coords
}

// DisplayLetterAt returns what the player sees at pos: the solution letter if
// any word has locked it, otherwise the first typed letter found.
func (g *Grid) DisplayLetterAt(pos world.Coord) (r rune, locked bool) {
	r = EmptyLetter
	for _, w := range g.WordsAt(pos) {
		if w.IsPositionLocked(pos) {
			s, _ := w.SolutionAt(pos)
			return s, true
		}
		if c, _ := w.CurrentAt(pos); c != EmptyLetter && r == EmptyLetter {
			r = c
		}
	}
	return r, false
}

// ValidatedCount returns how many words are fully validated
func (g *Grid) ValidatedCount() int {
	n := 0
	for _, w := range g.words {
		if w.validated {
			n++
		}
	}
	return n
}

// IsComplete reports whether every word is validated
func (g *Grid) IsComplete() bool {
	return g.complete
}

// wordValidated fans a validated word's letters out to the words crossing it,
// notifies observers and checks for completion.
func (g *Grid) wordValidated(w *PlacedWord) {
	for _, fn := range g.onWordValidated {
		fn(w)
	}
	for _, pos := range w.positions {
		for _, other := range g.WordsAt(pos) {
			if other != w {
				other.LockPosition(pos)
			}
		}
	}
	g.checkComplete(w)
}

func (g *Grid) checkComplete(last *PlacedWord) {
	if g.complete || len(g.words) == 0 {
		return
	}
	for _, w := range g.words {
		if !w.validated {
			return
		}
	}
	g.complete = true
	for _, fn := range g.onGridComplete {
		fn(last)
	}
}
