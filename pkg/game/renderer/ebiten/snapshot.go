package ebiten

import (
	"slices"

	"github.com/LeaderGRL/ELGJ25-sub000/pkg/engine/world"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/game/crossword"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/game/renderer"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/game/state"
)

// RenderFrame captures a snapshot of g for the next Draw call
func (e *EbitenRenderer) RenderFrame(g *state.Game) {
	rows, cols := e.GetViewportSize()
	snap := buildSnapshot(g, rows, cols)

	e.snapshotMutex.Lock()
	e.snapshot = snap
	e.snapshotMutex.Unlock()
}

// buildSnapshot copies what Draw needs out of g. Only cells inside a
// rows x cols window around the cursor are kept.
func buildSnapshot(g *state.Game, rows, cols int) renderSnapshot {
	if g == nil || g.Puzzle == nil {
		return renderSnapshot{}
	}
	min, max, ok := g.Puzzle.Bounds()
	if !ok {
		return renderSnapshot{}
	}

	minX, maxX := visibleRange(min.X, max.X, g.Cursor.X, cols)
	minY, maxY := visibleRange(min.Y, max.Y, g.Cursor.Y, rows)

	snap := renderSnapshot{
		valid:        true,
		level:        g.Level,
		solved:       g.Puzzle.ValidatedCount(),
		total:        g.Puzzle.Len(),
		reveals:      g.Reveals,
		revealed:     g.RevealedLetters(),
		viewMin:      world.At(minX, minY),
		viewMax:      world.At(maxX, maxY),
		orientation:  g.Orientation,
		messages:     make([]string, 0, len(g.Messages)),
		complete:     g.Complete,
		gameComplete: g.GameComplete,
	}
	for _, m := range g.Messages {
		snap.messages = append(snap.messages, renderer.StripMarkup(m))
	}

	active := g.ActiveWord()
	if active != nil {
		snap.clue = active.Clue()
		snap.clueLen = active.Len()
		snap.orientation = active.Orientation()
	}

	for pos := range g.Puzzle.Letters() {
		if pos.X < minX || pos.X > maxX || pos.Y < minY || pos.Y > maxY {
			continue
		}
		r, locked := g.Puzzle.DisplayLetterAt(pos)
		cell := cellSnapshot{
			Pos:    pos,
			Locked: locked,
			Typed:  !locked && r != crossword.EmptyLetter,
			Cursor: pos == g.Cursor,
			Active: active != nil && active.Contains(pos),
		}
		if r != crossword.EmptyLetter {
			cell.Glyph = string(r)
		}
		snap.cells = append(snap.cells, cell)
	}
	slices.SortFunc(snap.cells, func(a, b cellSnapshot) int {
		return world.Compare(a.Pos, b.Pos)
	})
	return snap
}

// visibleRange picks at most size consecutive values in [lo, hi] around focus
func visibleRange(lo, hi, focus, size int) (int, int) {
	if size <= 0 || hi-lo+1 <= size {
		return lo, hi
	}
	start := focus - size/2
	if start < lo {
		start = lo
	}
	if start+size-1 > hi {
		start = hi - size + 1
	}
	return start, start + size - 1
}
