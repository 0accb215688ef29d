package gameplay

import (
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/engine/world"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/game/state"
)

// MoveCursor moves the cursor to the next lettered cell in dir, jumping over
// empty cells. It reports whether the cursor moved.
func MoveCursor(g *state.Game, dir world.Direction) bool {
	if g.Puzzle == nil {
		return false
	}
	min, max, ok := g.Puzzle.Bounds()
	if !ok {
		return false
	}

	pos := g.Cursor
	for {
		pos = pos.Step(dir)
		if pos.X < min.X || pos.X > max.X || pos.Y < min.Y || pos.Y > max.Y {
			return false
		}
		if _, ok := g.Puzzle.LetterAt(pos); ok {
			g.Cursor = pos
			syncOrientation(g)
			return true
		}
	}
}

// SelectCell puts the cursor on pos if it holds a letter. Selecting the
// cursor's own cell toggles the orientation.
func SelectCell(g *state.Game, pos world.Coord) bool {
	if g.Puzzle == nil {
		return false
	}
	if _, ok := g.Puzzle.LetterAt(pos); !ok {
		return false
	}
	if pos == g.Cursor {
		ToggleOrientation(g)
		return true
	}
	g.Cursor = pos
	syncOrientation(g)
	return true
}

// ToggleOrientation switches to the crossing word under the cursor, if there
// is one.
func ToggleOrientation(g *state.Game) bool {
	if g.Puzzle == nil {
		return false
	}
	other := g.Orientation.Perpendicular()
	if g.Puzzle.WordAtOriented(g.Cursor, other) == nil {
		logMessage(g, "SUBTLE{GT{NO_CROSSING}}")
		return false
	}
	g.Orientation = other
	return true
}

// syncOrientation flips the orientation when the cursor cell has no word
// running the current way.
func syncOrientation(g *state.Game) {
	if g.Puzzle.WordAtOriented(g.Cursor, g.Orientation) != nil {
		return
	}
	if g.Puzzle.WordAtOriented(g.Cursor, g.Orientation.Perpendicular()) != nil {
		g.Orientation = g.Orientation.Perpendicular()
	}
}
