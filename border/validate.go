package border

import (
	"github.com/katalvlaran/mazegraph/grid"
	"github.com/katalvlaran/mazegraph/pixel"
)

// Validate checks that every pixel of buf, interior included, is one of the
// two palette colors. It returns a *PixelError for the first offending pixel
// in row-major order. Run it after Classify has fixed the palette; the ring
// scan alone cannot see stray interior colors.
// Complexity: O(W×H) time, O(1) memory.
func Validate(buf *pixel.Buffer, palette Palette) error {
	if buf == nil {
		return ErrNilBuffer
	}
	var bad *PixelError
	buf.Each(func(p grid.Position, c pixel.Color) bool {
		if palette.Contains(c) {
			return true
		}
		bad = &PixelError{Position: p, Color: c}
		return false
	})
	if bad != nil {
		return bad
	}
	return nil
}
