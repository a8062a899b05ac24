// Package mazegraph is the root of a toolkit that turns two-color maze
// bitmaps into corridor graphs ready for path search.
//
// What is in the box?
//
//	A maze image uses one color for corridors and one for walls. The border
//	ring is all wall except two corridor pixels: the entrance and the exit.
//	The toolkit finds both colors, checks the image, orders the two markers,
//	keeps only the pixels where a corridor ends, turns or branches, and links
//	each of them to its nearest neighbor in the four cardinal directions.
//
// Subpackages:
//
//	grid/           Position, Direction, Dims and bounds-checked index mapping
//	pixel/          RGB Buffer, image decoding (PNG, GIF, JPEG, BMP), ASCII sketches
//	border/         ring classification, palette validation, start/end resolution
//	topology/       per-pixel kind and graph-relevant positions
//	mazegraph/      Node/Link graph assembly and gonum export
//	maze/           Parse, the whole pipeline with stage hooks
//	cmd/mazegraph/  CLI: inspect, nodes, edges, version
//
// Quick ASCII example:
//
//	##.##      (0,2) start
//	##.##        │ 2
//	##...      (2,2)──2──(2,4) end
//	#####
//	#####
//
// The L-shaped maze above yields three nodes and four directed links.
//
//	go install github.com/katalvlaran/mazegraph/cmd/mazegraph@latest
package mazegraph
