package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for coordinate conversion.
var (
	// ErrOutOfBounds indicates an index or position outside the raster extents.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrEmptyGrid indicates a raster with non-positive width or height.
	ErrEmptyGrid = errors.New("grid: width and height must be positive")
)

// Position is a (row, column) pair, 0-indexed from the top-left corner.
type Position struct {
	Row, Col int
}

// String renders the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Step returns the neighboring position one cell away in direction d.
// The result may lie outside any raster; callers check it with InBounds.
func (p Position) Step(d Direction) Position {
	dr, dc := d.Offset()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// DistanceSq returns the squared Euclidean distance of p from the origin (0,0),
// treating the row as one axis and the column as the other.
func (p Position) DistanceSq() int {
	return p.Row*p.Row + p.Col*p.Col
}

// Direction is one of the four cardinal directions.
type Direction int

const (
	// North points to the previous row.
	North Direction = iota
	// East points to the next column.
	East
	// South points to the next row.
	South
	// West points to the previous column.
	West
)

// NumDirections is the number of cardinal directions.
const NumDirections = 4

// offsets holds (dRow, dCol) per Direction, in N, E, S, W order.
var offsets = [NumDirections][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Directions returns the four cardinal directions in N, E, S, W order.
func Directions() [NumDirections]Direction {
	return [NumDirections]Direction{North, East, South, West}
}

// Offset returns the row and column delta of a single step in d.
func (d Direction) Offset() (dRow, dCol int) {
	o := offsets[d]
	return o[0], o[1]
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) % NumDirections
}

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}
