// Package pixel defines the read-only RGB raster consumed by the maze
// pipeline, together with adapters that build one from a decoded image,
// an encoded image stream, or an ASCII sketch.
//
// What:
//
//   - Buffer is an immutable width×height row-major raster of Color values.
//     Every positional access (At, Lookup, Is, Each) goes through grid.Dims,
//     so an out-of-range Position never aliases another pixel.
//   - Decode reads PNG, GIF, JPEG or BMP and returns the format name.
//   - FromImage reduces any image.Image to 8-bit RGB. Alpha is ignored, so a
//     transparent pixel keeps its color.
//   - FromASCII builds a Buffer from text rows and a rune legend
//     ('#' black, '.' white by default).
//
// Errors:
//
//   - ErrEmptyBuffer:  zero or negative width or height.
//   - ErrSizeMismatch: pixel count differs from width×height, or ragged rows.
//   - ErrUnknownRune:  a sketch rune missing from the legend.
//   - ErrDecode:       the stream is not a registered image format.
//
// Complexity:
//
//   - NewBuffer, FromImage, FromASCII, Decode: O(W×H).
//   - At, Lookup, Is: O(1).
package pixel
