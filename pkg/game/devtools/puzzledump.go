// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/LeaderGRL/ELGJ25-sub000/pkg/engine/world"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/game/crossword"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/game/state"
)

const puzzleDumpFilename = "puzzle.txt"

// RenderLetters draws the grid as text, top row first. Empty cells are '#'.
// With current set, lettered cells show what the player sees ('.' when
// nothing is typed); otherwise they show the solution.
func RenderLetters(grid *crossword.Grid, current bool) string {
	var b strings.Builder
	lastY, first := 0, true
	grid.Letters().ForEachInBounds(func(c world.Coord, solution rune, ok bool) {
		if !first && c.Y != lastY {
			b.WriteByte('\n')
		}
		first, lastY = false, c.Y

		switch {
		case !ok:
			b.WriteByte('#')
		case current:
			r, _ := grid.DisplayLetterAt(c)
			if r == crossword.EmptyLetter {
				r = '.'
			}
			b.WriteRune(r)
		default:
			b.WriteRune(solution)
		}
	})
	if !first {
		b.WriteByte('\n')
	}
	return b.String()
}

// DumpPuzzleToFile writes a full debug dump to puzzle.txt in dir: metadata,
// the solution grid, the player's grid, and every word with its placement,
// progress and clue. Format is human-readable (sections, key: value).
func DumpPuzzleToFile(g *state.Game, dir string) (string, error) {
	if g.Puzzle == nil {
		return "", fmt.Errorf("no puzzle")
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	absPath, err := filepath.Abs(filepath.Join(dir, puzzleDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create dump: %w", err)
	}
	defer f.Close()

	grid := g.Puzzle
	min, max, _ := grid.Bounds()

	fmt.Fprintln(f, "=== PUZZLE DUMP ===")
	fmt.Fprintln(f, "")
	fmt.Fprintln(f, "--- Metadata ---")
	fmt.Fprintf(f, "level: %d\n", g.Level)
	fmt.Fprintf(f, "puzzle_seed: %d\n", g.PuzzleSeed)
	fmt.Fprintf(f, "words: %d\n", grid.Len())
	fmt.Fprintf(f, "validated: %d\n", grid.ValidatedCount())
	fmt.Fprintf(f, "complete: %v\n", grid.IsComplete())
	fmt.Fprintf(f, "bounds: %v..%v\n", min, max)
	fmt.Fprintf(f, "coordinate_system: x,y (y grows upward; top row printed first)\n")
	fmt.Fprintf(f, "cursor: %v %s\n", g.Cursor, g.Orientation)
	fmt.Fprintf(f, "reveals_left: %d\n", g.Reveals)
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Solution ---")
	fmt.Fprint(f, RenderLetters(grid, false))
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Player view (. = blank) ---")
	fmt.Fprint(f, RenderLetters(grid, true))
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Words ---")
	for i, w := range grid.Words() {
		fmt.Fprintf(f, "  #%d text: %s origin: %v end: %v orientation: %s typed: %q locked: %d/%d validated: %v clue: %q\n",
			i+1, w.Text(), w.Origin(), w.End(), w.Orientation(), w.CurrentWordAsText(),
			w.LockedCount(), w.Len(), w.IsFullyValidated(), w.Clue())
	}

	return absPath, nil
}
