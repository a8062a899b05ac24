package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegraph/grid"
)

// TestRoundTrip checks ToIndex(ToPosition(i)) == i for every cell of
// several raster shapes, including single-row and single-column ones.
func TestRoundTrip(t *testing.T) {
	shapes := []grid.Dims{{1, 1}, {5, 5}, {7, 3}, {3, 7}, {1, 9}, {9, 1}}
	for _, d := range shapes {
		t.Run(d.String(), func(t *testing.T) {
			for i := 0; i < d.Len(); i++ {
				p, err := grid.ToPosition(i, d.Width, d.Height)
				require.NoError(t, err)
				got, err := grid.ToIndex(p, d.Width, d.Height)
				require.NoError(t, err)
				assert.Equal(t, i, got)
			}
		})
	}
}

// TestToPosition_RowMajor pins the layout on a non-square raster.
func TestToPosition_RowMajor(t *testing.T) {
	p, err := grid.ToPosition(7, 5, 3)
	require.NoError(t, err)
	assert.Equal(t, grid.Position{Row: 1, Col: 2}, p)
}

func TestToPosition_Errors(t *testing.T) {
	cases := []struct {
		name        string
		index, w, h int
		want        error
	}{
		{"Negative", -1, 3, 3, grid.ErrOutOfBounds},
		{"PastEnd", 9, 3, 3, grid.ErrOutOfBounds},
		{"ZeroWidth", 0, 0, 3, grid.ErrEmptyGrid},
		{"ZeroHeight", 0, 3, 0, grid.ErrEmptyGrid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.ToPosition(tc.index, tc.w, tc.h)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestToIndex_PerAxis verifies that a column past the right edge is rejected
// even when its naive linear index would still fit inside the buffer.
func TestToIndex_PerAxis(t *testing.T) {
	cases := []struct {
		name string
		p    grid.Position
	}{
		{"ColumnWraps", grid.Position{Row: 0, Col: 4}},
		{"RowPastEnd", grid.Position{Row: 4, Col: 0}},
		{"NegativeRow", grid.Position{Row: -1, Col: 1}},
		{"NegativeCol", grid.Position{Row: 1, Col: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.ToIndex(tc.p, 4, 4)
			assert.ErrorIs(t, err, grid.ErrOutOfBounds)
		})
	}
}

func TestBorderAndCorners(t *testing.T) {
	const w, h = 5, 4
	corners := grid.Corners(w, h)
	assert.Equal(t, [4]grid.Position{{0, 0}, {0, 4}, {3, 0}, {3, 4}}, corners)
	for _, c := range corners {
		assert.True(t, grid.IsCorner(c, w, h), "corner %v", c)
		assert.True(t, grid.IsBorder(c, w, h), "corner %v on border", c)
	}

	assert.True(t, grid.IsBorder(grid.Position{Row: 0, Col: 2}, w, h))
	assert.True(t, grid.IsBorder(grid.Position{Row: 2, Col: 4}, w, h))
	assert.False(t, grid.IsBorder(grid.Position{Row: 1, Col: 1}, w, h))
	assert.False(t, grid.IsBorder(grid.Position{Row: -1, Col: 0}, w, h))
	assert.False(t, grid.IsCorner(grid.Position{Row: 0, Col: 2}, w, h))
}

func TestDirections(t *testing.T) {
	origin := grid.Position{Row: 2, Col: 2}
	want := map[grid.Direction]grid.Position{
		grid.North: {Row: 1, Col: 2},
		grid.East:  {Row: 2, Col: 3},
		grid.South: {Row: 3, Col: 2},
		grid.West:  {Row: 2, Col: 1},
	}
	for _, d := range grid.Directions() {
		assert.Equal(t, want[d], origin.Step(d), d.String())
		assert.Equal(t, origin, origin.Step(d).Step(d.Opposite()), "opposite of %v", d)
	}
	assert.Equal(t, "west", grid.West.String())
	assert.Equal(t, "direction(9)", grid.Direction(9).String())
}

func TestDistanceSq(t *testing.T) {
	assert.Equal(t, 0, grid.Position{}.DistanceSq())
	assert.Equal(t, 25, grid.Position{Row: 3, Col: 4}.DistanceSq())
}

func TestDims(t *testing.T) {
	d := grid.Dims{Width: 3, Height: 2}
	assert.Equal(t, 6, d.Len())
	assert.True(t, d.Contains(grid.Position{Row: 1, Col: 2}))
	assert.False(t, d.Contains(grid.Position{Row: 2, Col: 0}))

	i, err := d.Index(grid.Position{Row: 1, Col: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, i)

	p, err := d.Position(4)
	require.NoError(t, err)
	assert.Equal(t, grid.Position{Row: 1, Col: 1}, p)
	assert.Equal(t, "3x2", d.String())
}
