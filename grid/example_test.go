package grid_test

import (
	"fmt"

	"github.com/katalvlaran/mazegraph/grid"
)

// ExampleToPosition converts indices of a 4×3 raster back and forth.
//
//	index layout:
//	 0  1  2  3
//	 4  5  6  7
//	 8  9 10 11
func ExampleToPosition() {
	p, _ := grid.ToPosition(6, 4, 3)
	i, _ := grid.ToIndex(p, 4, 3)
	fmt.Println(p, i)

	_, err := grid.ToPosition(12, 4, 3)
	fmt.Println(err)
	// Output:
	// (1,2) 6
	// grid: coordinate out of bounds: index 12 in 4x3
}
