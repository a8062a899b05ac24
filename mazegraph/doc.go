// Package mazegraph assembles the graph of a maze image: one Node per
// graph-relevant pixel, linked to the nearest node in each cardinal
// direction along the corridor that joins them.
//
// What:
//
//   - Build allocates a dense table of W×H slots, creates a Node in every
//     relevant slot (start and end always included), then walks each node's
//     four directions through path pixels until the next node is met.
//   - Graph.NodeAt resolves a Position through the bounds-checked grid
//     mapping; links are plain Positions resolved the same way, so nodes never
//     own one another.
//   - Graph.Edges lists every directed link with its corridor length in pixels.
//   - Graph.WeightedDirected exports the graph as a gonum
//     simple.WeightedDirectedGraph for downstream search.
//
// Link rule:
//
//	From node N in direction d, step one pixel at a time away from N.
//	  • step leaves the image or hits a background pixel → no link in d
//	  • step hits a slot holding a node                  → link to it
//	  • otherwise (corridor fill)                        → keep stepping
//	Corridor fill between two nodes is always straight, so links are
//	symmetric: A→B east with length L implies B→A west with length L.
//
// Concurrency:
//
//	Nodes are created first; the link phase only reads the pixel buffer and
//	the table and writes the links of the node it is processing. WithWorkers
//	shards nodes across goroutines and waits for all of them before Build
//	returns, so a partially linked Graph is never exposed.
//
// Complexity:
//
//   - Build: O(W×H) time and memory (each corridor pixel is crossed at most
//     twice per axis).
//   - NodeAt: O(1).
package mazegraph
