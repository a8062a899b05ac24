package pixel

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazegraph/grid"
)

// Sentinel errors for buffer construction.
var (
	// ErrEmptyBuffer indicates a raster with no rows or no columns.
	ErrEmptyBuffer = errors.New("pixel: buffer must have at least one row and one column")
	// ErrSizeMismatch indicates len(pix) != width*height, or ragged ASCII rows.
	ErrSizeMismatch = errors.New("pixel: pixel count does not match dimensions")
	// ErrUnknownRune indicates an ASCII sketch uses a rune absent from the legend.
	ErrUnknownRune = errors.New("pixel: rune not found in legend")
	// ErrDecode indicates the image stream could not be decoded.
	ErrDecode = errors.New("pixel: cannot decode image")
)

// Color is an 8-bit RGB triple. Colors compare with ==; they carry no
// ordering. Color implements image/color.Color as a fully opaque color.
type Color struct {
	R, G, B uint8
}

// RGB is shorthand for Color{R: r, G: g, B: b}.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// String renders the color as "#rrggbb".
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Common colors used by maze images and test sketches.
var (
	Black = Color{}
	White = Color{R: 0xff, G: 0xff, B: 0xff}
)

// Buffer is an immutable width×height raster stored row-major.
// It is safe for concurrent reads.
type Buffer struct {
	dims grid.Dims
	pix  []Color
}

// NewBuffer builds a Buffer from row-major pixels. The slice is copied.
// Returns ErrEmptyBuffer for non-positive dimensions and ErrSizeMismatch
// when len(pix) != width*height.
// Complexity: O(W×H).
func NewBuffer(width, height int, pix []Color) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyBuffer, width, height)
	}
	if len(pix) != width*height {
		return nil, fmt.Errorf("%w: %d pixels for %dx%d", ErrSizeMismatch, len(pix), width, height)
	}
	cp := make([]Color, len(pix))
	copy(cp, pix)

	return &Buffer{dims: grid.Dims{Width: width, Height: height}, pix: cp}, nil
}

// Width returns the number of columns.
func (b *Buffer) Width() int { return b.dims.Width }

// Height returns the number of rows.
func (b *Buffer) Height() int { return b.dims.Height }

// Dims returns width and height together.
func (b *Buffer) Dims() grid.Dims { return b.dims }

// Len returns the number of pixels.
func (b *Buffer) Len() int { return len(b.pix) }

// At returns the color at p, or grid.ErrOutOfBounds.
func (b *Buffer) At(p grid.Position) (Color, error) {
	i, err := b.dims.Index(p)
	if err != nil {
		return Color{}, err
	}
	return b.pix[i], nil
}

// ColorAt returns the color at (row, col), or grid.ErrOutOfBounds.
func (b *Buffer) ColorAt(row, col int) (Color, error) {
	return b.At(grid.Position{Row: row, Col: col})
}

// Lookup returns the color at p and whether p lies inside the buffer.
// It is the non-failing form used by neighbor inspection near the edges.
func (b *Buffer) Lookup(p grid.Position) (Color, bool) {
	i, err := b.dims.Index(p)
	if err != nil {
		return Color{}, false
	}
	return b.pix[i], true
}

// Is reports whether p lies inside the buffer and holds color c.
func (b *Buffer) Is(p grid.Position, c Color) bool {
	got, ok := b.Lookup(p)
	return ok && got == c
}

// Each calls fn for every pixel in row-major order and stops early when fn
// returns false.
func (b *Buffer) Each(fn func(p grid.Position, c Color) bool) {
	for i, c := range b.pix {
		p, err := b.dims.Position(i)
		if err != nil {
			return
		}
		if !fn(p, c) {
			return
		}
	}
}
