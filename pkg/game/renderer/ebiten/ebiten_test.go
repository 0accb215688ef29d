package ebiten

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	engineinput "github.com/LeaderGRL/ELGJ25-sub000/pkg/engine/input"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/engine/world"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/game/crossword"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/game/state"
)

func newCrossGame() *state.Game {
	grid := crossword.NewGrid()
	grid.AddWord(crossword.NewPlacedWord(crossword.NewWord("CAT", "Feline", 1), world.At(0, 0), world.Row))
	grid.AddWord(crossword.NewPlacedWord(crossword.NewWord("BAD", "Not good", 1), world.At(1, 1), world.Column))
	g := state.NewGame(nil, nil)
	g.ResetLevel(grid, 2)
	return g
}

func TestBuildSnapshot(t *testing.T) {
	g := newCrossGame()
	g.Puzzle.SetLetter(world.At(2, 0), 'T')
	g.Puzzle.RevealLetter('A')
	g.MarkRevealed('A')
	g.AddMessage("GT{WORD_SOLVED} WORD{CAT}")

	snap := buildSnapshot(g, 20, 20)
	if !snap.valid {
		t.Fatal("snapshot not valid")
	}
	if snap.total != 2 || snap.reveals != 2 || snap.clue != "Feline" || snap.clueLen != 3 {
		t.Errorf("snapshot header = %d words, %d reveals, clue %q (%d)", snap.total, snap.reveals, snap.clue, snap.clueLen)
	}
	if snap.revealed != "A" {
		t.Errorf("revealed = %q, want A", snap.revealed)
	}
	if snap.viewMin != world.At(0, -1) || snap.viewMax != world.At(2, 1) {
		t.Errorf("view = %v..%v, want (0,-1)..(2,1)", snap.viewMin, snap.viewMax)
	}
	if len(snap.messages) != 1 || snap.messages[0] != "WORD_SOLVED CAT" {
		t.Errorf("messages = %q, want stripped markup", snap.messages)
	}

	want := []cellSnapshot{
		{Pos: world.At(1, 1)},
		{Pos: world.At(0, 0), Cursor: true, Active: true},
		{Pos: world.At(1, 0), Glyph: "A", Locked: true, Active: true},
		{Pos: world.At(2, 0), Glyph: "T", Typed: true, Active: true},
		{Pos: world.At(1, -1)},
	}
	if diff := cmp.Diff(want, snap.cells); diff != "" {
		t.Errorf("cells mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildSnapshot_NoPuzzle(t *testing.T) {
	if snap := buildSnapshot(nil, 5, 5); snap.valid {
		t.Error("snapshot of nil game is valid")
	}
	if snap := buildSnapshot(state.NewGame(nil, nil), 5, 5); snap.valid {
		t.Error("snapshot of empty puzzle is valid")
	}
}

func TestBuildSnapshot_CropsAroundCursor(t *testing.T) {
	grid := crossword.NewGrid()
	grid.AddWord(crossword.NewPlacedWord(crossword.NewWord("CONSTELLATION", "Star pattern", 3), world.At(0, 0), world.Row))
	g := state.NewGame(nil, nil)
	g.ResetLevel(grid, 1)
	g.Cursor = world.At(12, 0)

	snap := buildSnapshot(g, 5, 5)
	if snap.viewMin.X != 8 || snap.viewMax.X != 12 {
		t.Errorf("view X = %d..%d, want 8..12", snap.viewMin.X, snap.viewMax.X)
	}
	if len(snap.cells) != 5 {
		t.Errorf("len(cells) = %d, want 5", len(snap.cells))
	}
}

func TestGridLayout_CellAt(t *testing.T) {
	l := gridLayout{mapX: 100, mapY: 50, tileSize: 10, viewMin: world.At(0, -1), viewMax: world.At(2, 1)}

	tests := []struct {
		x, y   int
		want   world.Coord
		wantOK bool
	}{
		{105, 55, world.At(0, 1), true},
		{115, 65, world.At(1, 0), true},
		{129, 79, world.At(2, -1), true},
		{99, 55, world.Coord{}, false},
		{130, 55, world.Coord{}, false},
		{105, 80, world.Coord{}, false},
	}
	for _, tt := range tests {
		got, ok := l.cellAt(tt.x, tt.y)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("cellAt(%d, %d) = %v, %v, want %v, %v", tt.x, tt.y, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestTypedLetters(t *testing.T) {
	if got := typedLetters([]rune("a1=B ?c")); got != "aBc" {
		t.Errorf("typedLetters() = %q, want aBc", got)
	}
}

func TestViewportFor_Minimums(t *testing.T) {
	rows, cols := viewportFor(10, 10, 40, 12)
	if rows != 5 || cols != 5 {
		t.Errorf("viewportFor(tiny) = %d, %d, want 5, 5", rows, cols)
	}
	rows, cols = viewportFor(1000, 1000, 40, 12)
	if rows <= 5 || cols <= 5 {
		t.Errorf("viewportFor(large) = %d, %d, want more than 5", rows, cols)
	}
}

func TestGetInput_AfterStop(t *testing.T) {
	e := New()
	e.inputChan <- keyboardIntent("enter")
	if got := e.GetInput(); got.Action != engineinput.ActionSubmit {
		t.Errorf("GetInput() = %v, want the queued submit", got.Action)
	}
	e.Stop()
	e.Stop()
	if !e.stopped() {
		t.Error("stopped() = false after Stop")
	}
	if got := e.GetInput(); got.Action != engineinput.ActionQuit {
		t.Errorf("GetInput() after Stop = %v, want ActionQuit", got.Action)
	}
}
