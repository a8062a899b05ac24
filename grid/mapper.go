package grid

import "fmt"

// ToPosition converts a row-major index into a Position for a width×height raster.
// Returns ErrEmptyGrid for non-positive dimensions and ErrOutOfBounds when the
// derived row is ≥ height (or the index is negative).
// Complexity: O(1).
func ToPosition(index, width, height int) (Position, error) {
	if width <= 0 || height <= 0 {
		return Position{}, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, width, height)
	}
	if index < 0 {
		return Position{}, fmt.Errorf("%w: index %d", ErrOutOfBounds, index)
	}
	p := Position{Row: index / width, Col: index % width}
	if p.Row >= height || p.Col >= width {
		return Position{}, fmt.Errorf("%w: index %d in %dx%d", ErrOutOfBounds, index, width, height)
	}

	return p, nil
}

// ToIndex converts p into its row-major index row*width+col.
// Each axis is checked on its own, so (0, width) is rejected even though
// width < width*height.
// Complexity: O(1).
func ToIndex(p Position, width, height int) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, width, height)
	}
	if !InBounds(p, width, height) {
		return 0, fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, p, width, height)
	}

	return p.Row*width + p.Col, nil
}

// InBounds reports whether p lies within a width×height raster.
func InBounds(p Position, width, height int) bool {
	return p.Row >= 0 && p.Row < height && p.Col >= 0 && p.Col < width
}

// IsBorder reports whether p lies on the outermost ring of the raster.
func IsBorder(p Position, width, height int) bool {
	if !InBounds(p, width, height) {
		return false
	}
	return p.Row == 0 || p.Row == height-1 || p.Col == 0 || p.Col == width-1
}

// Corners returns the four corner positions in the order
// top-left, top-right, bottom-left, bottom-right.
func Corners(width, height int) [4]Position {
	return [4]Position{
		{Row: 0, Col: 0},
		{Row: 0, Col: width - 1},
		{Row: height - 1, Col: 0},
		{Row: height - 1, Col: width - 1},
	}
}

// IsCorner reports whether p is one of the four corners of the raster.
func IsCorner(p Position, width, height int) bool {
	for _, c := range Corners(width, height) {
		if p == c {
			return true
		}
	}
	return false
}

// Dims is the width and height of a raster.
type Dims struct {
	Width, Height int
}

// Len returns the number of cells, Width*Height.
func (d Dims) Len() int {
	return d.Width * d.Height
}

// Contains reports whether p lies inside the raster.
func (d Dims) Contains(p Position) bool {
	return InBounds(p, d.Width, d.Height)
}

// Index is ToIndex bound to d.
func (d Dims) Index(p Position) (int, error) {
	return ToIndex(p, d.Width, d.Height)
}

// Position is ToPosition bound to d.
func (d Dims) Position(index int) (Position, error) {
	return ToPosition(index, d.Width, d.Height)
}

// String renders the dimensions as "WxH".
func (d Dims) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}
