package topology

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mazegraph/grid"
	"github.com/katalvlaran/mazegraph/pixel"
)

// ClassifyPixel returns the Kind of the pixel at p for the given path color.
// Pixels outside the buffer or of another color are NotPath.
// Complexity: O(1).
func ClassifyPixel(buf *pixel.Buffer, path pixel.Color, p grid.Position) Kind {
	if !buf.Is(p, path) {
		return NotPath
	}

	var present [grid.NumDirections]bool
	count := 0
	for _, d := range grid.Directions() {
		if buf.Is(p.Step(d), path) {
			present[d] = true
			count++
		}
	}

	switch count {
	case 0:
		return Isolated
	case 1:
		return DeadEnd
	case 2:
		straightEW := present[grid.East] && present[grid.West]
		straightNS := present[grid.North] && present[grid.South]
		if straightEW || straightNS {
			return Corridor
		}
		return Corner
	case 3:
		return Junction
	default:
		return Crossroads
	}
}

// RelevantPositions returns every graph-relevant path pixel of buf in
// row-major order.
// Returns ErrNilBuffer or ErrOptionViolation for invalid input.
// Complexity: O(W×H) time.
func RelevantPositions(buf *pixel.Buffer, path pixel.Color, opts ...Option) ([]grid.Position, error) {
	if buf == nil {
		return nil, ErrNilBuffer
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	h := buf.Height()
	workers := o.Workers
	if workers > h {
		workers = h
	}
	if workers <= 1 {
		return scanRows(buf, path, 0, h), nil
	}

	// Split rows into contiguous bands; each band owns its result slot.
	bands := make([][]grid.Position, workers)
	per := (h + workers - 1) / workers
	var g errgroup.Group
	for i := 0; i < workers; i++ {
		lo, hi := i*per, min((i+1)*per, h)
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			bands[i] = scanRows(buf, path, lo, hi)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []grid.Position
	for _, b := range bands {
		out = append(out, b...)
	}
	return out, nil
}

// scanRows classifies rows [lo, hi) and collects relevant positions.
func scanRows(buf *pixel.Buffer, path pixel.Color, lo, hi int) []grid.Position {
	var out []grid.Position
	w := buf.Width()
	for r := lo; r < hi; r++ {
		for c := 0; c < w; c++ {
			p := grid.Position{Row: r, Col: c}
			if ClassifyPixel(buf, path, p).Relevant() {
				out = append(out, p)
			}
		}
	}
	return out
}

// Count returns the Census of every path pixel in buf.
// Complexity: O(W×H).
func Count(buf *pixel.Buffer, path pixel.Color) Census {
	census := make(Census)
	if buf == nil {
		return census
	}
	buf.Each(func(p grid.Position, c pixel.Color) bool {
		if c == path {
			census[ClassifyPixel(buf, path, p)]++
		}
		return true
	})
	return census
}
