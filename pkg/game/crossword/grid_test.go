package crossword

import (
	"testing"

	"github.com/LeaderGRL/ELGJ25-sub000/pkg/engine/world"
)

// newCrossGrid builds CAT across (0,0)-(2,0) and BAD down (1,1)-(1,-1),
// crossing on the A at (1,0).
func newCrossGrid(t *testing.T) (*Grid, *PlacedWord, *PlacedWord) {
	t.Helper()
	g := NewGrid()
	cat := NewPlacedWord(NewWord("CAT", "Feline", 1), world.At(0, 0), world.Row)
	bad := NewPlacedWord(NewWord("BAD", "Not good", 1), world.At(1, 1), world.Column)
	g.AddWord(cat)
	g.AddWord(bad)
	return g, cat, bad
}

func TestAddWord_NotifiesAndIndexes(t *testing.T) {
	g := NewGrid()
	var added []string
	g.OnWordAdded(func(w *PlacedWord) { added = append(added, w.Text()) })

	g.AddWord(NewPlacedWord(NewWord("CAT", "", 0), world.At(0, 0), world.Row))
	g.AddWord(nil)

	if len(added) != 1 || added[0] != "CAT" {
		t.Errorf("added = %v, want [CAT]", added)
	}
	if g.Len() != 1 {
		t.Errorf("Len() = %d, want 1", g.Len())
	}
	if r, ok := g.LetterAt(world.At(2, 0)); !ok || r != 'T' {
		t.Errorf("LetterAt((2,0)) = %q,%v, want T,true", r, ok)
	}
}

func TestWordsAt_EmptyCoordinate(t *testing.T) {
	g, _, _ := newCrossGrid(t)
	if got := g.WordsAt(world.At(10, 10)); len(got) != 0 {
		t.Errorf("WordsAt(empty) = %v, want empty", got)
	}
	if got := g.WordAt(world.At(10, 10)); got != nil {
		t.Errorf("WordAt(empty) = %v, want nil", got)
	}
}

func TestWordsAt_Intersection(t *testing.T) {
	g, cat, bad := newCrossGrid(t)
	got := g.WordsAt(world.At(1, 0))
	if len(got) != 2 {
		t.Fatalf("len(WordsAt(crossing)) = %d, want 2", len(got))
	}
	if got[0] != cat || got[1] != bad {
		t.Errorf("WordsAt(crossing) = [%s %s], want [CAT BAD]", got[0].Text(), got[1].Text())
	}
	if g.WordAt(world.At(1, 0)) != cat {
		t.Error("WordAt(crossing) should prefer the row word")
	}
	if g.WordAtOriented(world.At(1, 0), world.Column) != bad {
		t.Error("WordAtOriented(crossing, Column) != BAD")
	}
}

func TestWordsAt_SingleWordCells(t *testing.T) {
	g, cat, bad := newCrossGrid(t)
	tests := []struct {
		pos  world.Coord
		want *PlacedWord
	}{
		{world.At(0, 0), cat},
		{world.At(2, 0), cat},
		{world.At(1, 1), bad},
		{world.At(1, -1), bad},
	}
	for _, tt := range tests {
		got := g.WordsAt(tt.pos)
		if len(got) != 1 || got[0] != tt.want {
			t.Errorf("WordsAt(%v) = %d words, want only %s", tt.pos, len(got), tt.want.Text())
		}
	}
}

func TestWordsAt_SingleLetterWord(t *testing.T) {
	g := NewGrid()
	a := NewPlacedWord(NewWord("A", "", 0), world.At(5, 5), world.Row)
	g.AddWord(a)
	if got := g.WordsAt(world.At(5, 5)); len(got) != 1 || got[0] != a {
		t.Errorf("WordsAt(lone letter) = %v, want [A]", got)
	}
}

func TestRevealLetter_SingleWordValidatesOnThirdReveal(t *testing.T) {
	g := NewGrid()
	g.AddWord(NewPlacedWord(NewWord("CAT", "", 0), world.At(0, 0), world.Row))

	validated := 0
	complete := 0
	g.OnWordValidated(func(*PlacedWord) { validated++ })
	g.OnGridComplete(func(*PlacedWord) { complete++ })

	for i, r := range []rune{'c', 'A', 't'} {
		coords := g.RevealLetter(r)
		if len(coords) != 1 {
			t.Errorf("RevealLetter(%q) affected %d coords, want 1", r, len(coords))
		}
		wantValidated := 0
		if i == 2 {
			wantValidated = 1
		}
		if validated != wantValidated {
			t.Errorf("after reveal %d: validated = %d, want %d", i+1, validated, wantValidated)
		}
	}
	if complete != 1 {
		t.Errorf("grid complete notifications = %d, want 1", complete)
	}
	if !g.Words()[0].IsFullyValidated() {
		t.Error("CAT not fully validated")
	}
}

func TestRevealLetter_DeduplicatesSharedCells(t *testing.T) {
	g, cat, bad := newCrossGrid(t)
	coords := g.RevealLetter('a')
	if len(coords) != 1 || coords[0] != world.At(1, 0) {
		t.Fatalf("RevealLetter('a') = %v, want [(1,0)]", coords)
	}
	if !cat.IsPositionLocked(world.At(1, 0)) || !bad.IsPositionLocked(world.At(1, 0)) {
		t.Error("shared cell should be locked in both words")
	}
	if got := g.RevealLetter('?'); got != nil {
		t.Errorf("RevealLetter('?') = %v, want nil", got)
	}
}

func TestRevealLetter_ReadingOrder(t *testing.T) {
	g := NewGrid()
	g.AddWord(NewPlacedWord(NewWord("SASS", "", 0), world.At(0, 0), world.Row))
	got := g.RevealLetter('S')
	want := []world.Coord{world.At(0, 0), world.At(2, 0), world.At(3, 0)}
	if len(got) != len(want) {
		t.Fatalf("RevealLetter('S') = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("coords[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSubmit_ValidatesAndPropagatesToCrossingWord(t *testing.T) {
	g, cat, bad := newCrossGrid(t)

	if g.Submit(cat, "COT") {
		t.Fatal("Submit(COT) = true, want false")
	}
	if !g.Submit(cat, "cat") {
		t.Fatal("Submit(cat) = false, want true")
	}
	if !bad.IsPositionLocked(world.At(1, 0)) {
		t.Error("crossing cell not locked in BAD after CAT validated")
	}
	if bad.IsFullyValidated() {
		t.Error("BAD should not be validated yet")
	}
	if g.IsComplete() {
		t.Error("grid complete too early")
	}
}

func TestGridComplete_FiresOnceWithLastWord(t *testing.T) {
	g, cat, bad := newCrossGrid(t)
	var last []*PlacedWord
	g.OnGridComplete(func(w *PlacedWord) { last = append(last, w) })

	g.Submit(cat, "CAT")
	g.Submit(bad, "BAD")
	g.Submit(bad, "BAD")

	if len(last) != 1 {
		t.Fatalf("grid complete notifications = %d, want 1", len(last))
	}
	if last[0] != bad {
		t.Errorf("complete carried %s, want BAD", last[0].Text())
	}
	if !g.IsComplete() || g.ValidatedCount() != 2 {
		t.Errorf("IsComplete = %v, ValidatedCount = %d; want true, 2", g.IsComplete(), g.ValidatedCount())
	}
}

func TestLockPosition_CascadesIntoCompletion(t *testing.T) {
	// Locking the shared cell last validates both words from one call.
	g, _, _ := newCrossGrid(t)
	complete := 0
	g.OnGridComplete(func(*PlacedWord) { complete++ })

	for _, pos := range []world.Coord{world.At(0, 0), world.At(2, 0), world.At(1, 1), world.At(1, -1)} {
		g.LockPosition(pos)
	}
	if complete != 0 {
		t.Fatal("completed before the shared cell was locked")
	}
	g.LockPosition(world.At(1, 0))
	if complete != 1 {
		t.Errorf("grid complete notifications = %d, want 1", complete)
	}
}

func TestEnterText_MirrorsIntoCrossingWord(t *testing.T) {
	g, cat, bad := newCrossGrid(t)
	g.EnterText(cat, "COT")
	if r, _ := bad.CurrentAt(world.At(1, 0)); r != 'O' {
		t.Errorf("BAD current at crossing = %q, want O (mirrored)", r)
	}
	if r, locked := g.DisplayLetterAt(world.At(1, 0)); r != 'O' || locked {
		t.Errorf("DisplayLetterAt(crossing) = %q,%v, want O,false", r, locked)
	}

	g.LockPosition(world.At(1, 0))
	if r, locked := g.DisplayLetterAt(world.At(1, 0)); r != 'A' || !locked {
		t.Errorf("DisplayLetterAt(crossing) after lock = %q,%v, want A,true", r, locked)
	}
}

func TestSubmit_WrongGuessCompletesCrossingWord(t *testing.T) {
	g, cat, bad := newCrossGrid(t)
	g.SetLetter(world.At(1, 1), 'B')
	g.SetLetter(world.At(1, -1), 'D')

	if g.Submit(cat, "CAB") {
		t.Error("Submit(CAB) = true, want false")
	}
	if !bad.IsFullyValidated() {
		t.Errorf("BAD typed %q not validated after the mirrored A", bad.CurrentWordAsText())
	}
	if cat.IsFullyValidated() || !cat.IsPositionLocked(world.At(1, 0)) {
		t.Errorf("CAT validated=%v locked crossing=%v, want false,true", cat.IsFullyValidated(), cat.IsPositionLocked(world.At(1, 0)))
	}
}

func TestSetLetter_FansOutToBothWords(t *testing.T) {
	g, cat, bad := newCrossGrid(t)
	g.SetLetter(world.At(1, 0), 'e')
	for _, w := range []*PlacedWord{cat, bad} {
		if r, _ := w.CurrentAt(world.At(1, 0)); r != 'E' {
			t.Errorf("%s current at crossing = %q, want E", w.Text(), r)
		}
	}
}

func TestNoConflictingLettersAcrossWords(t *testing.T) {
	g, _, _ := newCrossGrid(t)
	seen := map[world.Coord]rune{}
	for _, w := range g.Words() {
		for pos, r := range w.SolutionLetters() {
			if prev, ok := seen[pos]; ok && prev != r {
				t.Errorf("conflict at %v: %q vs %q", pos, prev, r)
			}
			seen[pos] = r
		}
	}
}
