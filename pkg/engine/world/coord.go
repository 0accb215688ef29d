// Package world provides sparse, unbounded 2D grid primitives.
// These are engine-level constructs with no knowledge of words or clues.
package world

import (
	"cmp"
	"fmt"
)

// Coord is a cell position on an unbounded integer plane.
type Coord struct {
	X int
	Y int
}

// At returns the coordinate (x, y)
func At(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns "(x,y)"
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the adjacent coordinate in the given direction
func (c Coord) Step(dir Direction) Coord {
	return c.Offset(dir, 1)
}

// Offset returns the coordinate n cells away in the given direction
func (c Coord) Offset(dir Direction, n int) Coord {
	dx, dy := dir.Delta()
	return Coord{X: c.X + dx*n, Y: c.Y + dy*n}
}

// Compare orders coordinates top to bottom, then left to right (reading order
// with Y growing upward).
func Compare(a, b Coord) int {
	if a.Y != b.Y {
		return cmp.Compare(b.Y, a.Y)
	}
	return cmp.Compare(a.X, b.X)
}
