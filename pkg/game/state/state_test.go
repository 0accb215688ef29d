package state

import (
	"fmt"
	"testing"

	"github.com/LeaderGRL/ELGJ25-sub000/pkg/engine/world"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/game/crossword"
)

func TestAddMessage_KeepsLastFive(t *testing.T) {
	g := NewGame(nil, nil)
	for i := 1; i <= 7; i++ {
		g.AddMessage(fmt.Sprintf("m%d", i))
	}
	if len(g.Messages) != 5 {
		t.Fatalf("len(Messages) = %d, want 5", len(g.Messages))
	}
	if g.Messages[0] != "m3" || g.Messages[4] != "m7" {
		t.Errorf("Messages = %v, want m3..m7", g.Messages)
	}
	g.ClearMessages()
	if len(g.Messages) != 0 {
		t.Errorf("len(Messages) after clear = %d, want 0", len(g.Messages))
	}
}

func TestActiveWord_FollowsOrientation(t *testing.T) {
	g := NewGame(nil, nil)
	cat := crossword.NewPlacedWord(crossword.NewWord("CAT", "", 0), world.At(0, 0), world.Row)
	bad := crossword.NewPlacedWord(crossword.NewWord("BAD", "", 0), world.At(1, 1), world.Column)
	g.Puzzle.AddWord(cat)
	g.Puzzle.AddWord(bad)

	g.Cursor = world.At(1, 0)
	if got := g.ActiveWord(); got != cat {
		t.Errorf("ActiveWord() row = %v, want CAT", got)
	}
	g.Orientation = world.Column
	if got := g.ActiveWord(); got != bad {
		t.Errorf("ActiveWord() column = %v, want BAD", got)
	}

	// Column orientation on a row-only cell falls back to the row word.
	g.Cursor = world.At(0, 0)
	if got := g.ActiveWord(); got != cat {
		t.Errorf("ActiveWord() fallback = %v, want CAT", got)
	}

	g.Cursor = world.At(9, 9)
	if got := g.ActiveWord(); got != nil {
		t.Errorf("ActiveWord() on empty cell = %v, want nil", got)
	}
}

func TestLevelSeed(t *testing.T) {
	g := NewGame(nil, nil)
	if g.LevelSeed() != nil {
		t.Error("LevelSeed() with no base seed should be nil")
	}

	seed := uint64(100)
	g = NewGame(nil, &seed)
	g.Level = 3
	if got := g.LevelSeed(); got == nil || *got != 103 {
		t.Errorf("LevelSeed() = %v, want 103", got)
	}
}

func TestResetLevel(t *testing.T) {
	g := NewGame(nil, nil)
	g.MarkRevealed('a')
	g.AddHint("hint")
	g.Complete = true
	g.Orientation = world.Column

	g.ResetLevel(crossword.NewGrid(), 2)

	if g.WasRevealed('A') {
		t.Error("revealed letters not cleared")
	}
	if g.Reveals != 2 || g.Complete || g.Hints != nil || g.Orientation != world.Row {
		t.Errorf("ResetLevel left state: reveals=%d complete=%v hints=%v orientation=%s",
			g.Reveals, g.Complete, g.Hints, g.Orientation)
	}
}

func TestRevealedLetters_Sorted(t *testing.T) {
	g := NewGame(nil, nil)
	if got := g.RevealedLetters(); got != "" {
		t.Errorf("RevealedLetters() = %q, want empty", got)
	}
	g.MarkRevealed('t')
	g.MarkRevealed('C')
	g.MarkRevealed('a')
	g.MarkRevealed('C')
	if got := g.RevealedLetters(); got != "ACT" {
		t.Errorf("RevealedLetters() = %q, want ACT", got)
	}
}
