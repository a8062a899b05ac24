// Package border derives the maze palette and the entrance/exit markers from
// the outermost ring of a two-color image, validates the whole image against
// that palette, and resolves which marker is the start and which the end.
//
// What:
//
//   - Classify scans the ring north → east → south → west, with the four
//     corners counted once (east and west columns skip their first and last
//     cell). Exactly two colors must appear; the one seen exactly twice is the
//     marker (= path) color, the other the background.
//   - Validate scans every pixel and rejects the first one outside the palette.
//   - ResolveEndpoints rejects markers sitting on a corner and orders the two
//     markers by Euclidean distance of (row, col) from the origin.
//
// Ties:
//
//	Two markers at the same distance from the origin (for example (0,3) and
//	(3,0)) are resolved by the TieBreak option: TieFirstScanned (default)
//	keeps the marker found first on the ring as the start; TieReject fails
//	with ErrAmbiguousEndpoints. Endpoints.Tied reports the situation either way.
//
// Errors:
//
//   - ErrImageTooSmall:              width or height below 2.
//   - ErrTooManyColors:              the ring does not use exactly two colors.
//   - ErrNoUniqueMarkerColor:        no ring color occurs exactly twice.
//   - ErrInvalidColorOutsideBorder:  a pixel uses a color outside the palette.
//   - ErrMarkerInCorner:             a marker occupies one of the four corners.
//   - ErrAmbiguousEndpoints:         equidistant markers under TieReject.
//
// Ring errors are *ColorCountError values and palette violations are
// *PixelError values; both unwrap to their sentinel for errors.Is.
//
// Complexity:
//
//   - Classify:         O(W+H) time, O(W+H) memory.
//   - Validate:         O(W×H) time, O(1) memory.
//   - ResolveEndpoints: O(1).
package border
