package mazegraph

import (
	"math"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/mazegraph/grid"
)

// NodeID returns the gonum node ID used for p: its row-major index.
func (g *Graph) NodeID(p grid.Position) (int64, error) {
	i, err := g.dims.Index(p)
	if err != nil {
		return 0, err
	}
	return int64(i), nil
}

// PositionOf maps a gonum node ID back to its pixel position.
func (g *Graph) PositionOf(id int64) (grid.Position, error) {
	return g.dims.Position(int(id))
}

// WeightedDirected exports the graph as a gonum weighted directed graph.
// Node IDs are row-major pixel indices (see NodeID); each directed link
// becomes an edge weighted by its corridor length. Absent edges weigh +Inf.
// Complexity: O(V+E).
func (g *Graph) WeightedDirected() *simple.WeightedDirectedGraph {
	wg := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for _, n := range g.nodes {
		// Node positions are in bounds by construction.
		id, _ := g.NodeID(n.pos)
		wg.AddNode(simple.Node(id))
	}
	for _, e := range g.Edges() {
		from, _ := g.NodeID(e.From)
		to, _ := g.NodeID(e.To)
		wg.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(from), T: simple.Node(to), W: float64(e.Length)})
	}
	return wg
}
