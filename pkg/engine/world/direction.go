package world

// Direction represents a cardinal direction on the crossword plane.
// North points towards increasing Y.
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
)

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the x and y offsets for this direction
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Orientation is the axis a word runs along.
type Orientation int

const (
	Row    Orientation = iota // left to right, ascending X
	Column                    // top to bottom, descending Y
)

// String returns the string representation of an orientation
func (o Orientation) String() string {
	switch o {
	case Row:
		return "Row"
	case Column:
		return "Column"
	default:
		return "Unknown"
	}
}

// Forward returns the direction in which successive letters are laid out.
func (o Orientation) Forward() Direction {
	if o == Column {
		return South
	}
	return East
}

// Backward returns the direction towards the start of a word.
func (o Orientation) Backward() Direction {
	return o.Forward().Opposite()
}

// Perpendicular returns the other orientation.
func (o Orientation) Perpendicular() Orientation {
	if o == Column {
		return Row
	}
	return Column
}

// Sides returns the two directions flanking a cell across this orientation's axis.
func (o Orientation) Sides() (Direction, Direction) {
	if o == Column {
		return West, East
	}
	return North, South
}
