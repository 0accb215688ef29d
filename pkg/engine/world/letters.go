package world

// LetterMap is a sparse coordinate to letter mapping
type LetterMap map[Coord]rune

// NewLetterMap creates an empty letter map
func NewLetterMap() LetterMap {
	return make(LetterMap)
}

// Has reports whether a letter is stored at c
func (m LetterMap) Has(c Coord) bool {
	_, ok := m[c]
	return ok
}

// At returns the letter at c and whether one exists
func (m LetterMap) At(c Coord) (rune, bool) {
	r, ok := m[c]
	return r, ok
}

// HasNeighbor reports whether the cell adjacent to c in dir holds a letter
func (m LetterMap) HasNeighbor(c Coord, dir Direction) bool {
	return m.Has(c.Step(dir))
}

// Bounds returns the smallest and largest X/Y of all stored cells.
// ok is false when the map is empty.
func (m LetterMap) Bounds() (min, max Coord, ok bool) {
	for c := range m {
		if !ok {
			min, max, ok = c, c, true
			continue
		}
		if c.X < min.X {
			min.X = c.X
		}
		if c.Y < min.Y {
			min.Y = c.Y
		}
		if c.X > max.X {
			max.X = c.X
		}
		if c.Y > max.Y {
			max.Y = c.Y
		}
	}
	return min, max, ok
}

// ForEachInBounds visits every coordinate in the bounding box in reading order
// (top row first), whether or not it holds a letter.
func (m LetterMap) ForEachInBounds(fn func(c Coord, r rune, ok bool)) {
	min, max, found := m.Bounds()
	if !found {
		return
	}
	for y := max.Y; y >= min.Y; y-- {
		for x := min.X; x <= max.X; x++ {
			c := Coord{X: x, Y: y}
			r, ok := m[c]
			fn(c, r, ok)
		}
	}
}
