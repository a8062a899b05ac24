package border

import (
	"fmt"

	"github.com/katalvlaran/mazegraph/grid"
	"github.com/katalvlaran/mazegraph/pixel"
)

// Ring returns the border positions of a width×height image in scan order:
// the north row left to right, the east column top to bottom without its
// corners, the south row left to right, the west column top to bottom
// without its corners. Each corner appears exactly once.
// width and height must both be at least 2.
// Complexity: O(W+H).
func Ring(width, height int) []grid.Position {
	ring := make([]grid.Position, 0, 2*width+2*(height-2))
	for c := 0; c < width; c++ {
		ring = append(ring, grid.Position{Row: 0, Col: c})
	}
	for r := 1; r < height-1; r++ {
		ring = append(ring, grid.Position{Row: r, Col: width - 1})
	}
	for c := 0; c < width; c++ {
		ring = append(ring, grid.Position{Row: height - 1, Col: c})
	}
	for r := 1; r < height-1; r++ {
		ring = append(ring, grid.Position{Row: r, Col: 0})
	}
	return ring
}

// tally counts one ring color and remembers where it was first seen.
type tally struct {
	color pixel.Color
	count int
	seen  []grid.Position // first two occurrences, in scan order
}

// Classify scans the border ring of buf and returns the palette and the two
// marker positions.
//
// Steps:
//  1. Collect the ring (corners once) in north, east, south, west order.
//  2. Tally distinct colors in first-seen order; fail with ErrTooManyColors
//     unless there are exactly two.
//  3. The color occurring exactly twice becomes Palette.Path, the other
//     Palette.Background; fail with ErrNoUniqueMarkerColor if neither or both
//     occur twice.
//  4. Record both marker positions and their row-major indices.
//
// Complexity: O(W+H) time and memory.
func Classify(buf *pixel.Buffer) (*Classification, error) {
	if buf == nil {
		return nil, ErrNilBuffer
	}
	dims := buf.Dims()
	if dims.Width < 2 || dims.Height < 2 {
		return nil, fmt.Errorf("%w: got %v", ErrImageTooSmall, dims)
	}

	ring := Ring(dims.Width, dims.Height)
	var tallies []tally
	for _, p := range ring {
		c, err := buf.At(p)
		if err != nil {
			return nil, err
		}
		i := indexOf(tallies, c)
		if i < 0 {
			tallies = append(tallies, tally{color: c})
			i = len(tallies) - 1
		}
		t := &tallies[i]
		t.count++
		if len(t.seen) < 2 {
			t.seen = append(t.seen, p)
		}
	}

	if len(tallies) != 2 {
		off := tallies[0]
		if len(tallies) > 2 {
			off = tallies[2]
		}
		return nil, &ColorCountError{Err: ErrTooManyColors, Color: off.color, Count: off.count, Distinct: len(tallies)}
	}

	marker, background, ok := pickMarker(tallies[0], tallies[1])
	if !ok {
		off := tallies[0]
		if tallies[1].count > off.count {
			off = tallies[1]
		}
		return nil, &ColorCountError{Err: ErrNoUniqueMarkerColor, Color: off.color, Count: off.count, Distinct: 2}
	}

	cls := &Classification{
		Palette:    Palette{Path: marker.color, Background: background.color},
		RingLength: len(ring),
	}
	for k, p := range marker.seen {
		idx, err := dims.Index(p)
		if err != nil {
			return nil, err
		}
		cls.Markers[k] = p
		cls.MarkerIndices[k] = idx
	}

	return cls, nil
}

// pickMarker returns (marker, background) when exactly one tally counts two.
func pickMarker(a, b tally) (tally, tally, bool) {
	switch {
	case a.count == 2 && b.count != 2:
		return a, b, true
	case b.count == 2 && a.count != 2:
		return b, a, true
	default:
		return tally{}, tally{}, false
	}
}

func indexOf(ts []tally, c pixel.Color) int {
	for i := range ts {
		if ts[i].color == c {
			return i
		}
	}
	return -1
}
