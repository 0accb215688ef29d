package tui

import (
	"strings"
	"testing"

	"github.com/gookit/color"

	"github.com/LeaderGRL/ELGJ25-sub000/pkg/engine/world"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/game/crossword"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/game/renderer"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/game/state"
)

func newCrossGame() *state.Game {
	grid := crossword.NewGrid()
	grid.AddWord(crossword.NewPlacedWord(crossword.NewWord("CAT", "Feline", 1), world.At(0, 0), world.Row))
	grid.AddWord(crossword.NewPlacedWord(crossword.NewWord("BAD", "Not good", 1), world.At(1, 1), world.Column))
	g := state.NewGame(nil, nil)
	g.ResetLevel(grid, 1)
	return g
}

func plainRenderer() *TUIRenderer {
	color.Disable()
	r := New()
	r.Init()
	return r
}

func TestCellView(t *testing.T) {
	g := newCrossGame()
	g.Puzzle.SetLetter(world.At(2, 0), 'x')
	g.Puzzle.RevealLetter('A')

	tests := []struct {
		pos       world.Coord
		wantGlyph string
		wantStyle renderer.TextStyle
	}{
		{world.At(0, 1), IconVoid, renderer.StyleNormal},
		{world.At(0, 0), IconEmpty, renderer.StyleCursor},
		{world.At(1, 0), "A", renderer.StyleLocked},
		{world.At(2, 0), "X", renderer.StyleTyped},
		{world.At(1, -1), IconEmpty, renderer.StyleEmpty},
	}
	for _, tt := range tests {
		glyph, style := cellView(g, tt.pos)
		if glyph != tt.wantGlyph || style != tt.wantStyle {
			t.Errorf("cellView(%v) = %q, %v, want %q, %v", tt.pos, glyph, style, tt.wantGlyph, tt.wantStyle)
		}
	}
}

func TestGridLines_TopRowFirst(t *testing.T) {
	r := plainRenderer()
	g := newCrossGame()
	g.Puzzle.RevealLetter('A')

	got := r.gridLines(g, 10, 10)
	want := []string{
		"   ·  ",
		" · A ·",
		"   ·  ",
	}
	if len(got) != len(want) {
		t.Fatalf("gridLines() = %q, want %q", got, want)
	}
	for i := range want {
		if color.ClearCode(got[i]) != want[i] {
			t.Errorf("line %d = %q, want %q", i, color.ClearCode(got[i]), want[i])
		}
	}
}

func TestWindow(t *testing.T) {
	tests := []struct {
		lo, hi, focus, size int
		wantLo, wantHi      int
	}{
		{0, 4, 2, 10, 0, 4},
		{0, 20, 10, 5, 8, 12},
		{0, 20, 0, 5, 0, 4},
		{0, 20, 20, 5, 16, 20},
		{-5, 5, -5, 3, -5, -3},
	}
	for _, tt := range tests {
		lo, hi := window(tt.lo, tt.hi, tt.focus, tt.size)
		if lo != tt.wantLo || hi != tt.wantHi {
			t.Errorf("window(%d, %d, %d, %d) = %d, %d, want %d, %d",
				tt.lo, tt.hi, tt.focus, tt.size, lo, hi, tt.wantLo, tt.wantHi)
		}
	}
}

func TestFormatText_StripsTags(t *testing.T) {
	r := plainRenderer()
	got := color.ClearCode(r.FormatText("WORD{%s} DENIED{no} ACTION{:next} CLUE{Feline} SUBTLE{x}", "CAT"))
	if got != "CAT no :next Feline x" {
		t.Errorf("FormatText() = %q", got)
	}
	if strings.Contains(r.FormatText("GT{NO_WORD}"), "GT{") {
		t.Error("FormatText() left a GT tag unresolved")
	}
}
