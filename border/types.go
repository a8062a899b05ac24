package border

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazegraph/grid"
	"github.com/katalvlaran/mazegraph/pixel"
)

// Sentinel errors for border classification and endpoint resolution.
var (
	// ErrNilBuffer indicates a nil *pixel.Buffer.
	ErrNilBuffer = errors.New("border: pixel buffer is nil")
	// ErrImageTooSmall indicates an image narrower or shorter than 2 pixels.
	ErrImageTooSmall = errors.New("border: image must be at least 2x2")
	// ErrTooManyColors indicates the border does not use exactly two colors.
	ErrTooManyColors = errors.New("border: border must use exactly two colors")
	// ErrNoUniqueMarkerColor indicates no border color occurs exactly twice.
	ErrNoUniqueMarkerColor = errors.New("border: no border color occurs exactly twice")
	// ErrInvalidColorOutsideBorder indicates a pixel outside the two-color palette.
	ErrInvalidColorOutsideBorder = errors.New("border: pixel color outside the palette")
	// ErrMarkerInCorner indicates an entrance or exit on one of the four corners.
	ErrMarkerInCorner = errors.New("border: marker in image corner")
	// ErrMarkerNotOnBorder indicates a marker position off the outer ring.
	ErrMarkerNotOnBorder = errors.New("border: marker not on image border")
	// ErrAmbiguousEndpoints indicates equidistant markers under TieReject.
	ErrAmbiguousEndpoints = errors.New("border: markers are equidistant from the origin")
	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("border: invalid option supplied")
)

// Palette is the two colors of a maze image.
// Path is the marker color; it also paints every corridor inside the image.
type Palette struct {
	Path       pixel.Color
	Background pixel.Color
}

// Contains reports whether c is one of the two palette colors.
func (p Palette) Contains(c pixel.Color) bool {
	return c == p.Path || c == p.Background
}

// Classification is the result of scanning the border ring.
type Classification struct {
	// Palette holds the path (marker) and background colors.
	Palette Palette
	// Markers are the two marker positions in ring scan order.
	Markers [2]grid.Position
	// MarkerIndices are the row-major indices of Markers.
	MarkerIndices [2]int
	// RingLength is the number of pixels on the ring, corners counted once.
	RingLength int
}

// Endpoints are the resolved entrance (Start) and exit (End).
type Endpoints struct {
	Start, End grid.Position
	// Tied is true when both markers are equally far from the origin and
	// Start was picked by the TieBreak policy.
	Tied bool
}

// TieBreak selects how equidistant markers are ordered.
type TieBreak int

const (
	// TieFirstScanned makes the marker found first on the ring the start.
	TieFirstScanned TieBreak = iota
	// TieReject fails with ErrAmbiguousEndpoints.
	TieReject
)

// String returns the config name of the policy.
func (t TieBreak) String() string {
	switch t {
	case TieFirstScanned:
		return "first-scanned"
	case TieReject:
		return "reject"
	default:
		return fmt.Sprintf("tiebreak(%d)", int(t))
	}
}

// ParseTieBreak maps a config name back to a TieBreak.
func ParseTieBreak(s string) (TieBreak, error) {
	switch s {
	case "", "first-scanned":
		return TieFirstScanned, nil
	case "reject":
		return TieReject, nil
	default:
		return 0, fmt.Errorf("%w: unknown tie-break %q", ErrOptionViolation, s)
	}
}

// Option configures ResolveEndpoints.
type Option func(*Options)

// Options holds endpoint resolution settings.
type Options struct {
	TieBreak TieBreak

	err error
}

// DefaultOptions returns Options with TieFirstScanned.
func DefaultOptions() Options {
	return Options{TieBreak: TieFirstScanned}
}

// WithTieBreak selects the policy for equidistant markers.
func WithTieBreak(t TieBreak) Option {
	return func(o *Options) {
		if t != TieFirstScanned && t != TieReject {
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, t)
			return
		}
		o.TieBreak = t
	}
}

// ColorCountError reports a border ring rejected because of its color counts.
// Color is the offending color: the first color beyond the second for
// ErrTooManyColors, the color with the larger count for ErrNoUniqueMarkerColor.
type ColorCountError struct {
	Err      error
	Color    pixel.Color
	Count    int
	Distinct int
}

// Error implements error.
func (e *ColorCountError) Error() string {
	return fmt.Sprintf("%v: %d distinct colors, %v appears %d times", e.Err, e.Distinct, e.Color, e.Count)
}

// Unwrap returns the sentinel.
func (e *ColorCountError) Unwrap() error { return e.Err }

// PixelError reports the first pixel whose color falls outside the palette.
type PixelError struct {
	Position grid.Position
	Color    pixel.Color
}

// Error implements error.
func (e *PixelError) Error() string {
	return fmt.Sprintf("%v: %v at %v", ErrInvalidColorOutsideBorder, e.Color, e.Position)
}

// Unwrap returns ErrInvalidColorOutsideBorder.
func (e *PixelError) Unwrap() error { return ErrInvalidColorOutsideBorder }
