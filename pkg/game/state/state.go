package state

import (
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/LeaderGRL/ELGJ25-sub000/pkg/engine/world"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/game/crossword"
)

// Game represents the game state for one run
type Game struct {
	Pool []crossword.Word // full word pool; levels filter it
	Seed *uint64          // base seed, nil for a random run

	Puzzle     *crossword.Grid
	PuzzleSeed uint64 // seed the current puzzle was built from

	DumpDir string // where puzzle dumps are written

	Cursor      world.Coord
	Orientation world.Orientation

	Hints []string

	Messages []string

	Reveals  int              // letter reveals left this level
	Revealed mapset.Set[rune] // letters revealed this level

	Level int // Current level number

	Complete     bool // current puzzle solved
	GameComplete bool // final puzzle solved
	Quit         bool
}

// NewGame creates a new game instance
func NewGame(pool []crossword.Word, seed *uint64) *Game {
	return &Game{
		Pool:     pool,
		Seed:     seed,
		Puzzle:   crossword.NewGrid(),
		Revealed: mapset.New[rune](),
		Messages: make([]string, 0),
		Level:    1,
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// AddHint adds a hint to the game
func (g *Game) AddHint(hint string) {
	g.Hints = append(g.Hints, hint)
}

// ActiveWord returns the word under the cursor along the current orientation,
// falling back to whichever word occupies the cursor.
func (g *Game) ActiveWord() *crossword.PlacedWord {
	if g.Puzzle == nil {
		return nil
	}
	if w := g.Puzzle.WordAtOriented(g.Cursor, g.Orientation); w != nil {
		return w
	}
	return g.Puzzle.WordAt(g.Cursor)
}

// MarkRevealed records a revealed letter
func (g *Game) MarkRevealed(r rune) {
	g.Revealed.Put(crossword.NormalizeLetter(r))
}

// WasRevealed reports whether r has been revealed this level
func (g *Game) WasRevealed(r rune) bool {
	return g.Revealed.Has(crossword.NormalizeLetter(r))
}

// RevealedLetters returns the letters revealed this level in alphabetical order
func (g *Game) RevealedLetters() string {
	letters := make([]rune, 0, g.Revealed.Size())
	g.Revealed.Each(func(r rune) {
		letters = append(letters, r)
	})
	slices.Sort(letters)
	return string(letters)
}

// LevelSeed derives the seed for the current level from the base seed, so a
// seeded run replays every level identically.
func (g *Game) LevelSeed() *uint64 {
	if g.Seed == nil {
		return nil
	}
	s := *g.Seed + uint64(g.Level)
	return &s
}

// ResetLevel clears level-specific state before a new puzzle is built
func (g *Game) ResetLevel(puzzle *crossword.Grid, reveals int) {
	g.Puzzle = puzzle
	g.Reveals = reveals
	g.Revealed = mapset.New[rune]()
	g.Hints = nil
	g.Complete = false
	g.Orientation = world.Row
	g.Cursor = world.Coord{}
}
