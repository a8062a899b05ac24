package border

import (
	"fmt"

	"github.com/katalvlaran/mazegraph/grid"
)

// ResolveEndpoints orders the two markers of a width×height image into a
// start and an end.
//
//  1. Both markers must lie on the border and be distinct.
//  2. A marker on (0,0), (0,W-1), (H-1,0) or (H-1,W-1) fails with ErrMarkerInCorner.
//  3. The marker with the strictly smaller Euclidean distance of (row, col)
//     from (0,0) becomes Start. Equal distances follow Options.TieBreak.
//
// Distances are compared as exact squared integers.
// Complexity: O(1).
func ResolveEndpoints(markers [2]grid.Position, width, height int, opts ...Option) (Endpoints, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Endpoints{}, o.err
	}

	for _, m := range markers {
		if !grid.InBounds(m, width, height) {
			return Endpoints{}, fmt.Errorf("%w: marker %v in %dx%d", grid.ErrOutOfBounds, m, width, height)
		}
		if grid.IsCorner(m, width, height) {
			return Endpoints{}, fmt.Errorf("%w: marker at %v", ErrMarkerInCorner, m)
		}
		if !grid.IsBorder(m, width, height) {
			return Endpoints{}, fmt.Errorf("%w: %v", ErrMarkerNotOnBorder, m)
		}
	}
	first, second := markers[0], markers[1]
	if first == second {
		return Endpoints{}, fmt.Errorf("%w: both markers at %v", ErrAmbiguousEndpoints, first)
	}

	d1, d2 := first.DistanceSq(), second.DistanceSq()
	switch {
	case d1 < d2:
		return Endpoints{Start: first, End: second}, nil
	case d2 < d1:
		return Endpoints{Start: second, End: first}, nil
	}

	if o.TieBreak == TieReject {
		return Endpoints{}, fmt.Errorf("%w: %v and %v", ErrAmbiguousEndpoints, first, second)
	}
	return Endpoints{Start: first, End: second, Tied: true}, nil
}
