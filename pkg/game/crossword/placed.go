package crossword

import (
	"maps"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/LeaderGRL/ELGJ25-sub000/pkg/engine/world"
)

// PlacedWord is a word bound to a grid position and orientation. It owns the
// solution letters, the letters the player has typed, and the set of positions
// that can no longer change.
type PlacedWord struct {
	text       string
	clue       string
	difficulty int

	origin      world.Coord
	orientation world.Orientation

	positions []world.Coord // axis order
	solution  world.LetterMap
	current   world.LetterMap
	locked    mapset.Set[world.Coord]

	validated   bool
	onValidated []func(*PlacedWord)
}

// NewPlacedWord lays w out from origin along orientation. Solution letters are
// derived here and never change afterwards.
func NewPlacedWord(w Word, origin world.Coord, orientation world.Orientation) *PlacedWord {
	letters := []rune(Normalize(w.Text))
	pw := &PlacedWord{
		text:        string(letters),
		clue:        w.Clue,
		difficulty:  w.Difficulty,
		origin:      origin,
		orientation: orientation,
		positions:   make([]world.Coord, len(letters)),
		solution:    make(world.LetterMap, len(letters)),
		current:     make(world.LetterMap, len(letters)),
		locked:      mapset.New[world.Coord](),
	}

	forward := orientation.Forward()
	for i, r := range letters {
		pos := origin.Offset(forward, i)
		pw.positions[i] = pos
		pw.solution[pos] = r
		pw.current[pos] = EmptyLetter
	}
	return pw
}

// Text returns the solution text
func (w *PlacedWord) Text() string {
	return w.text
}

// Clue returns the clue shown to the player
func (w *PlacedWord) Clue() string {
	return w.clue
}

// Difficulty returns the source word's difficulty
func (w *PlacedWord) Difficulty() int {
	return w.difficulty
}

// Origin returns the first letter's position
func (w *PlacedWord) Origin() world.Coord {
	return w.origin
}

// Orientation returns the axis the word runs along
func (w *PlacedWord) Orientation() world.Orientation {
	return w.orientation
}

// Len returns the number of letters
func (w *PlacedWord) Len() int {
	return len(w.positions)
}

// Positions returns the word's coordinates in axis order
func (w *PlacedWord) Positions() []world.Coord {
	out := make([]world.Coord, len(w.positions))
	copy(out, w.positions)
	return out
}

// End returns the last letter's position
func (w *PlacedWord) End() world.Coord {
	if len(w.positions) == 0 {
		return w.origin
	}
	return w.positions[len(w.positions)-1]
}

// Contains reports whether pos is one of the word's positions
func (w *PlacedWord) Contains(pos world.Coord) bool {
	return w.solution.Has(pos)
}

// SolutionLetters returns a snapshot of the solution letters
func (w *PlacedWord) SolutionLetters() map[world.Coord]rune {
	return maps.Clone(w.solution)
}

// CurrentLetters returns a snapshot of the typed letters
func (w *PlacedWord) CurrentLetters() map[world.Coord]rune {
	return maps.Clone(w.current)
}

// SolutionAt returns the solution letter at pos
func (w *PlacedWord) SolutionAt(pos world.Coord) (rune, bool) {
	return w.solution.At(pos)
}

// CurrentAt returns the typed letter at pos
func (w *PlacedWord) CurrentAt(pos world.Coord) (rune, bool) {
	return w.current.At(pos)
}

// IsPositionLocked reports whether pos can no longer be edited
func (w *PlacedWord) IsPositionLocked(pos world.Coord) bool {
	return w.locked.Has(pos)
}

// LockedCount returns how many positions are locked
func (w *PlacedWord) LockedCount() int {
	return w.locked.Size()
}

// IsFullyValidated reports whether every position is locked
func (w *PlacedWord) IsFullyValidated() bool {
	return w.validated
}

// OnValidated registers fn to run once when the word becomes fully validated
func (w *PlacedWord) OnValidated(fn func(*PlacedWord)) {
	if fn != nil {
		w.onValidated = append(w.onValidated, fn)
	}
}

// SetLetter overwrites the typed letter at pos. Locked positions, validated
// words and foreign positions are ignored; they occur in normal play.
func (w *PlacedWord) SetLetter(pos world.Coord, r rune) {
	if w.validated || w.locked.Has(pos) || !w.current.Has(pos) {
		return
	}
	w.current[pos] = NormalizeLetter(r)
}

// LockPosition fixes pos to its solution letter. Locking the last open
// position validates the word.
func (w *PlacedWord) LockPosition(pos world.Coord) {
	if w.locked.Has(pos) || !w.solution.Has(pos) {
		return
	}
	w.locked.Put(pos)
	w.current[pos] = w.solution[pos]

	if w.locked.Size() == len(w.positions) {
		w.markValidated()
	}
}

// ValidateWhole locks every position at once
func (w *PlacedWord) ValidateWhole() {
	if w.validated {
		return
	}
	for _, pos := range w.positions {
		w.locked.Put(pos)
		w.current[pos] = w.solution[pos]
	}
	w.markValidated()
}

func (w *PlacedWord) markValidated() {
	if w.validated {
		return
	}
	w.validated = true
	for _, fn := range w.onValidated {
		fn(w)
	}
}

// CurrentWordAsText returns the typed letters in axis order
func (w *PlacedWord) CurrentWordAsText() string {
	var b strings.Builder
	for _, pos := range w.positions {
		b.WriteRune(w.current[pos])
	}
	return b.String()
}

// EnterText writes a typed guess into the word. A guess as long as the word
// maps letter i to position i and leaves locked positions alone; any other
// length is written in order across the unlocked positions only, clearing the
// unlocked positions it does not reach.
func (w *PlacedWord) EnterText(text string) {
	if w.validated {
		return
	}
	letters := []rune(Normalize(text))

	if len(letters) == len(w.positions) {
		for i, pos := range w.positions {
			w.SetLetter(pos, letters[i])
		}
		return
	}

	next := 0
	for _, pos := range w.positions {
		if w.locked.Has(pos) {
			continue
		}
		r := rune(EmptyLetter)
		if next < len(letters) {
			r = letters[next]
			next++
		}
		w.SetLetter(pos, r)
	}
}

// IsTypedCorrectly reports whether the typed letters spell the solution
func (w *PlacedWord) IsTypedCorrectly() bool {
	return w.CurrentWordAsText() == w.text
}
