// Package topology decides, pixel by pixel, which path pixels of a maze carry
// graph structure and which are plain corridor fill that a graph can elide.
//
// What:
//
//   - ClassifyPixel looks at the four cardinal neighbors of one pixel. A
//     neighbor is present when it lies inside the image and has the path
//     color; missing neighbors past the edge simply count as absent.
//   - RelevantPositions returns every graph-relevant path pixel in row-major
//     order, optionally splitting the rows across worker goroutines.
//   - Count tallies the Kind of every path pixel (a Census).
//
// Kinds (n = present neighbors):
//
//	n == 0                     Isolated    not relevant
//	n == 1                     DeadEnd     relevant
//	n == 2, opposite neighbors Corridor    not relevant
//	n == 2, adjacent neighbors Corner      relevant
//	n == 3                     Junction    relevant
//	n == 4                     Crossroads  relevant
//
// Concurrency:
//
//	Each pixel is classified from read-only data, so WithWorkers(n) simply
//	partitions rows into n bands. Results are concatenated band by band, so
//	the output is identical to the sequential scan.
//
// Complexity:
//
//   - ClassifyPixel:     O(1).
//   - RelevantPositions: O(W×H) time, O(R) memory for R relevant pixels.
package topology
