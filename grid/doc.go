// Package grid maps between linear pixel indices and (row, column) positions
// of a rectangular, row-major raster, and names the four cardinal directions
// used to walk it.
//
// What:
//
//   - Position is a (Row, Col) pair, 0-indexed from the top-left corner.
//   - ToIndex / ToPosition convert between Position and row*Width+Col.
//   - Dims bundles Width and Height and exposes the same conversions as methods.
//   - Direction enumerates North, East, South, West with unit offsets.
//
// Why:
//
//   - Every other package addresses pixels and graph slots through this one
//     bounds-checked mapping, so the row-major layout has a single source of truth.
//
// Complexity:
//
//   - All operations are O(1) time and memory.
//
// Errors:
//
//   - ErrOutOfBounds: index or position lies outside the raster.
//   - ErrEmptyGrid:   width or height is not positive.
package grid
