package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"github.com/LeaderGRL/ELGJ25-sub000/pkg/game/crossword"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/game/state"
)

// GuessActive types text into the active word and submits it. It reports
// whether the word is solved afterwards.
func GuessActive(g *state.Game, text string) bool {
	w := g.ActiveWord()
	if w == nil {
		logMessage(g, "DENIED{GT{NO_WORD}}")
		return false
	}
	if w.IsFullyValidated() {
		logMessage(g, "SUBTLE{GT{ALREADY_SOLVED}}")
		return true
	}

	if g.Puzzle.Submit(w, text) {
		return true
	}
	logMessage(g, "GT{WRONG_GUESS} DENIED{%s}", crossword.Normalize(text))
	return false
}

// SubmitActive validates the active word if the letters typed so far spell it.
func SubmitActive(g *state.Game) bool {
	w := g.ActiveWord()
	if w == nil {
		return false
	}
	if w.IsFullyValidated() {
		return true
	}
	if w.IsTypedCorrectly() {
		w.ValidateWhole()
		return true
	}
	logMessage(g, "GT{WRONG_GUESS} DENIED{%s}", w.CurrentWordAsText())
	return false
}

// TypeLetters writes each letter of text at the cursor and advances along
// the active word. A word whose typed letters match its solution is solved.
func TypeLetters(g *state.Game, text string) {
	for _, r := range crossword.Normalize(text) {
		w := g.ActiveWord()
		if w == nil {
			return
		}
		g.Puzzle.SetLetter(g.Cursor, r)
		solveTyped(g)

		next := g.Cursor.Step(g.Orientation.Forward())
		if w.Contains(next) {
			g.Cursor = next
		}
	}
}

// EraseLetter clears the cursor cell, or the previous cell of the active word
// when the cursor cell is already blank.
func EraseLetter(g *state.Game) {
	w := g.ActiveWord()
	if w == nil {
		return
	}
	if r, _ := g.Puzzle.DisplayLetterAt(g.Cursor); r == crossword.EmptyLetter {
		prev := g.Cursor.Step(g.Orientation.Backward())
		if w.Contains(prev) {
			g.Cursor = prev
		}
	}
	g.Puzzle.SetLetter(g.Cursor, crossword.EmptyLetter)
}

// solveTyped validates every word through the cursor whose typed letters are
// complete and correct.
func solveTyped(g *state.Game) {
	for _, w := range g.Puzzle.WordsAt(g.Cursor) {
		if !w.IsFullyValidated() && w.IsTypedCorrectly() {
			w.ValidateWhole()
		}
	}
}

// RevealUnderCursor spends a reveal on the letter under the cursor, locking
// that letter everywhere in the puzzle.
func RevealUnderCursor(g *state.Game) bool {
	if g.Puzzle == nil {
		return false
	}
	if g.Reveals <= 0 {
		logMessage(g, "DENIED{GT{NO_REVEALS}}")
		return false
	}
	r, ok := g.Puzzle.LetterAt(g.Cursor)
	if !ok {
		return false
	}
	if _, locked := g.Puzzle.DisplayLetterAt(g.Cursor); locked || g.WasRevealed(r) {
		logMessage(g, "SUBTLE{GT{ALREADY_REVEALED}}")
		return false
	}

	coords := g.Puzzle.RevealLetter(r)
	g.Reveals--
	g.MarkRevealed(r)
	logMessage(g, "%s", gotext.Get("LETTER_REVEALED", string(r), len(coords), g.Reveals))
	return true
}

// ShowClue logs the active word's clue with its length and direction
func ShowClue(g *state.Game) {
	w := g.ActiveWord()
	if w == nil {
		logMessage(g, "DENIED{GT{NO_WORD}}")
		return
	}
	clue := w.Clue()
	if clue == "" {
		clue = gotext.Get("NO_CLUE")
	}
	logMessage(g, "CLUE{%s} SUBTLE{(%d, %s)}", clue, w.Len(), w.Orientation())
}
