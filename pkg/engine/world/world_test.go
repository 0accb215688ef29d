package world

import "testing"

func TestDirection_DeltaAndOpposite(t *testing.T) {
	for _, dir := range []Direction{North, East, South, West} {
		dx, dy := dir.Delta()
		ox, oy := dir.Opposite().Delta()
		if dx != -ox || dy != -oy {
			t.Errorf("%v.Delta() = (%d,%d), opposite = (%d,%d); want negated", dir, dx, dy, ox, oy)
		}
	}
	if dx, dy := North.Delta(); dx != 0 || dy != 1 {
		t.Errorf("North.Delta() = (%d,%d), want (0,1) (Y grows upward)", dx, dy)
	}
}

func TestOrientation_Forward(t *testing.T) {
	if got := Row.Forward(); got != East {
		t.Errorf("Row.Forward() = %v, want East", got)
	}
	if got := Column.Forward(); got != South {
		t.Errorf("Column.Forward() = %v, want South", got)
	}
	if got := Column.Backward(); got != North {
		t.Errorf("Column.Backward() = %v, want North", got)
	}
	if got := Row.Perpendicular(); got != Column {
		t.Errorf("Row.Perpendicular() = %v, want Column", got)
	}
}

func TestOrientation_Sides(t *testing.T) {
	a, b := Row.Sides()
	if a != North || b != South {
		t.Errorf("Row.Sides() = %v,%v, want North,South", a, b)
	}
	a, b = Column.Sides()
	if a != West || b != East {
		t.Errorf("Column.Sides() = %v,%v, want West,East", a, b)
	}
}

func TestCoord_Offset(t *testing.T) {
	c := At(2, 3)
	if got := c.Offset(South, 2); got != At(2, 1) {
		t.Errorf("Offset(South, 2) = %v, want (2,1)", got)
	}
	if got := c.Step(West); got != At(1, 3) {
		t.Errorf("Step(West) = %v, want (1,3)", got)
	}
}

func TestCompare_ReadingOrder(t *testing.T) {
	top := At(5, 2)
	left := At(0, 0)
	right := At(1, 0)
	if Compare(top, left) >= 0 {
		t.Error("higher Y should sort first")
	}
	if Compare(left, right) >= 0 {
		t.Error("lower X should sort first on the same row")
	}
	if Compare(left, left) != 0 {
		t.Error("equal coords should compare 0")
	}
}

func TestLetterMap_Bounds(t *testing.T) {
	m := NewLetterMap()
	if _, _, ok := m.Bounds(); ok {
		t.Fatal("Bounds() on empty map: ok = true, want false")
	}
	m[At(-1, 2)] = 'A'
	m[At(3, -4)] = 'B'
	min, max, ok := m.Bounds()
	if !ok {
		t.Fatal("Bounds() ok = false, want true")
	}
	if min != At(-1, -4) || max != At(3, 2) {
		t.Errorf("Bounds() = %v..%v, want (-1,-4)..(3,2)", min, max)
	}
}

func TestLetterMap_ForEachInBounds(t *testing.T) {
	m := NewLetterMap()
	m[At(0, 1)] = 'A'
	m[At(1, 0)] = 'B'

	var order []Coord
	filled := 0
	m.ForEachInBounds(func(c Coord, r rune, ok bool) {
		order = append(order, c)
		if ok {
			filled++
		}
	})
	want := []Coord{At(0, 1), At(1, 1), At(0, 0), At(1, 0)}
	if len(order) != len(want) {
		t.Fatalf("visited %d cells, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %v, want %v", i, order[i], want[i])
		}
	}
	if filled != 2 {
		t.Errorf("filled = %d, want 2", filled)
	}
	if !m.HasNeighbor(At(0, 0), North) {
		t.Error("HasNeighbor((0,0), North) = false, want true")
	}
}
