// Package crossword holds the crossword data model: source words, words placed
// on the grid with their per-letter solve state, and the grid aggregate that
// resolves coordinates to words and detects completion.
//
// Nothing in this package is safe for concurrent use. Callers serialise access
// to a Grid and its words; notifications fire synchronously during the
// mutating call.
package crossword

import (
	"strings"
	"unicode"
)

// EmptyLetter marks a position the player has not filled in.
const EmptyLetter = ' '

// Word is an immutable source record from the word pool.
type Word struct {
	Text       string
	Clue       string
	Difficulty int
}

// NewWord creates a word with normalised text and a non-negative difficulty
func NewWord(text, clue string, difficulty int) Word {
	if difficulty < 0 {
		difficulty = 0
	}
	return Word{
		Text:       Normalize(text),
		Clue:       strings.TrimSpace(clue),
		Difficulty: difficulty,
	}
}

// Valid reports whether the word can be placed on a grid
func (w Word) Valid() bool {
	return Normalize(w.Text) != ""
}

// Len returns the number of letters in the word
func (w Word) Len() int {
	return len([]rune(Normalize(w.Text)))
}

// Normalize upper-cases text and drops everything that is not a letter.
func Normalize(text string) string {
	var b strings.Builder
	for _, r := range text {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

// NormalizeLetter upper-cases r. Anything that is not a letter becomes EmptyLetter.
func NormalizeLetter(r rune) rune {
	if !unicode.IsLetter(r) {
		return EmptyLetter
	}
	return unicode.ToUpper(r)
}
