package mazegraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/mazegraph/border"
	"github.com/katalvlaran/mazegraph/grid"
	"github.com/katalvlaran/mazegraph/mazegraph"
	"github.com/katalvlaran/mazegraph/pixel"
	"github.com/katalvlaran/mazegraph/topology"
)

func pos(r, c int) grid.Position { return grid.Position{Row: r, Col: c} }

// build runs the upstream stages on an ASCII sketch and assembles the graph.
func build(t testing.TB, rows []string, opts ...mazegraph.Option) *mazegraph.Graph {
	t.Helper()
	buf, err := pixel.FromASCII(rows, nil)
	require.NoError(t, err)
	cls, err := border.Classify(buf)
	require.NoError(t, err)
	require.NoError(t, border.Validate(buf, cls.Palette))
	ends, err := border.ResolveEndpoints(cls.Markers, buf.Width(), buf.Height())
	require.NoError(t, err)
	relevant, err := topology.RelevantPositions(buf, cls.Palette.Path)
	require.NoError(t, err)

	g, err := mazegraph.Build(buf, cls.Palette.Path, ends, relevant, opts...)
	require.NoError(t, err)
	return g
}

var lMaze = []string{
	"##.##",
	"##.##",
	"##...",
	"#####",
	"#####",
}

// TestBuild_LMaze: two endpoints plus one corner, linked through the bend.
func TestBuild_LMaze(t *testing.T) {
	g := build(t, lMaze)
	require.Equal(t, 3, g.Len())

	start, end := g.Start(), g.End()
	assert.Equal(t, pos(0, 2), start.Position())
	assert.Equal(t, pos(2, 4), end.Position())
	assert.True(t, start.IsStart())
	assert.False(t, start.IsEnd())
	assert.True(t, end.IsEnd())

	south, ok := start.South()
	require.True(t, ok)
	assert.Equal(t, pos(2, 2), south)
	_, ok = start.North()
	assert.False(t, ok)

	corner, ok := g.NodeAt(pos(2, 2))
	require.True(t, ok)
	assert.False(t, corner.IsStart() || corner.IsEnd())
	l, ok := corner.Neighbor(grid.East)
	require.True(t, ok)
	assert.Equal(t, mazegraph.Link{To: pos(2, 4), Length: 2}, l)
	north, ok := corner.North()
	require.True(t, ok)
	assert.Equal(t, pos(0, 2), north)
	assert.Equal(t, 2, corner.Degree())

	// Corridor fill has no node.
	_, ok = g.NodeAt(pos(1, 2))
	assert.False(t, ok)
	_, ok = g.NodeAt(pos(2, 3))
	assert.False(t, ok)
	// Out-of-range lookups are simply absent.
	_, ok = g.NodeAt(pos(5, 0))
	assert.False(t, ok)
}

// TestBuild_StraightCorridor: junctions at both ends of a long horizontal
// corridor are linked directly, and no interior node exists.
//
//	#.#######
//	#.......#
//	#.#####.#
//	#######.#
func TestBuild_StraightCorridor(t *testing.T) {
	g := build(t, []string{
		"#.#######",
		"#.......#",
		"#.#####.#",
		"#######.#",
	})

	left, ok := g.NodeAt(pos(1, 1))
	require.True(t, ok)
	l, ok := left.Neighbor(grid.East)
	require.True(t, ok)
	assert.Equal(t, mazegraph.Link{To: pos(1, 7), Length: 6}, l)

	right, ok := g.NodeAt(pos(1, 7))
	require.True(t, ok)
	l, ok = right.Neighbor(grid.West)
	require.True(t, ok)
	assert.Equal(t, mazegraph.Link{To: pos(1, 1), Length: 6}, l)

	for c := 2; c <= 6; c++ {
		_, ok := g.NodeAt(pos(1, c))
		assert.False(t, ok, "corridor pixel (1,%d)", c)
	}
}

// branching is a maze with dead ends, corners, junctions and a loop.
var branching = []string{
	"#.#########",
	"#.....#...#",
	"#.###.#.#.#",
	"#...#...#.#",
	"###.#####.#",
	"#.........#",
	"#.#.#.###.#",
	"#.#.#...#..",
	"###########",
}

// TestBuild_LinksSymmetric checks that every link has a mirror link of the
// same length in the opposite direction, and that no link skips a node.
func TestBuild_LinksSymmetric(t *testing.T) {
	g := build(t, branching)
	edges := g.Edges()
	require.NotEmpty(t, edges)

	for _, e := range edges {
		target, ok := g.NodeAt(e.To)
		require.True(t, ok, "edge %v→%v points at empty slot", e.From, e.To)
		back, ok := target.Neighbor(e.Direction.Opposite())
		require.True(t, ok, "no mirror for %v→%v", e.From, e.To)
		assert.Equal(t, e.From, back.To)
		assert.Equal(t, e.Length, back.Length)

		// Pixels strictly between the two nodes hold no node.
		cur := e.From
		for i := 1; i < e.Length; i++ {
			cur = cur.Step(e.Direction)
			_, ok := g.NodeAt(cur)
			assert.False(t, ok, "link %v→%v skips node %v", e.From, e.To, cur)
		}
	}
}

func TestBuild_ParallelMatchesSequential(t *testing.T) {
	want := build(t, branching)
	for _, n := range []int{0, 2, 3, 8, 1000} {
		got := build(t, branching, mazegraph.WithWorkers(n))
		assert.Equal(t, want.Edges(), got.Edges(), "workers=%d", n)
		assert.Equal(t, want.Stats(), got.Stats(), "workers=%d", n)
	}
}

func TestBuild_EdgesOrdered(t *testing.T) {
	g := build(t, lMaze)
	want := []mazegraph.Edge{
		{From: pos(0, 2), To: pos(2, 2), Direction: grid.South, Length: 2},
		{From: pos(2, 2), To: pos(0, 2), Direction: grid.North, Length: 2},
		{From: pos(2, 2), To: pos(2, 4), Direction: grid.East, Length: 2},
		{From: pos(2, 4), To: pos(2, 2), Direction: grid.West, Length: 2},
	}
	assert.Equal(t, want, g.Edges())
	assert.Equal(t, mazegraph.Stats{Nodes: 3, Edges: 4, DeadEnds: 2}, g.Stats())
}

func TestBuild_NodesRowMajor(t *testing.T) {
	g := build(t, branching)
	nodes := g.Nodes()
	require.Equal(t, g.Len(), len(nodes))
	for i := 1; i < len(nodes); i++ {
		a, _ := g.NodeID(nodes[i-1].Position())
		b, _ := g.NodeID(nodes[i].Position())
		assert.Less(t, a, b)
	}
}

func TestBuild_Errors(t *testing.T) {
	buf, err := pixel.FromASCII(lMaze, nil)
	require.NoError(t, err)
	ends := border.Endpoints{Start: pos(0, 2), End: pos(2, 4)}

	_, err = mazegraph.Build(nil, pixel.White, ends, nil)
	assert.ErrorIs(t, err, mazegraph.ErrNilBuffer)

	_, err = mazegraph.Build(buf, pixel.White, ends, nil, mazegraph.WithWorkers(-1))
	assert.ErrorIs(t, err, mazegraph.ErrOptionViolation)

	_, err = mazegraph.Build(buf, pixel.White, ends, []grid.Position{pos(7, 7)})
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)

	_, err = mazegraph.Build(buf, pixel.White, ends, []grid.Position{pos(0, 0)})
	assert.ErrorIs(t, err, mazegraph.ErrNotPath)

	_, err = mazegraph.Build(buf, pixel.White, border.Endpoints{Start: pos(0, 1), End: pos(2, 4)}, nil)
	assert.ErrorIs(t, err, mazegraph.ErrNotPath)
}

// TestBuild_EndpointsAlwaysNodes: even without relevant positions the two
// endpoints become nodes (and link to each other across the corridor).
func TestBuild_EndpointsAlwaysNodes(t *testing.T) {
	rows := []string{
		"#####",
		".....",
		"#####",
	}
	buf, err := pixel.FromASCII(rows, nil)
	require.NoError(t, err)
	ends := border.Endpoints{Start: pos(1, 0), End: pos(1, 4)}

	g, err := mazegraph.Build(buf, pixel.White, ends, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Len())
	l, ok := g.Start().Neighbor(grid.East)
	require.True(t, ok)
	assert.Equal(t, mazegraph.Link{To: pos(1, 4), Length: 4}, l)
}

// TestWeightedDirected_ShortestPath hands the graph to gonum and checks that
// the exit is reachable at the expected corridor length.
func TestWeightedDirected_ShortestPath(t *testing.T) {
	g := build(t, branching)
	wg := g.WeightedDirected()
	assert.Equal(t, g.Len(), wg.Nodes().Len())

	startID, err := g.NodeID(g.Start().Position())
	require.NoError(t, err)
	endID, err := g.NodeID(g.End().Position())
	require.NoError(t, err)

	shortest := path.DijkstraFrom(simple.Node(startID), wg)
	route, weight := shortest.To(endID)
	require.NotEmpty(t, route)
	assert.Equal(t, startID, route[0].ID())
	assert.Equal(t, endID, route[len(route)-1].ID())

	// The route weight is the sum of its corridor lengths.
	total := 0
	for i := 1; i < len(route); i++ {
		w, ok := wg.Weight(route[i-1].ID(), route[i].ID())
		require.True(t, ok)
		total += int(w)
	}
	assert.Equal(t, float64(total), weight)

	p, err := g.PositionOf(endID)
	require.NoError(t, err)
	assert.Equal(t, g.End().Position(), p)
}

func TestNode_String(t *testing.T) {
	g := build(t, lMaze)
	assert.Equal(t, "(0,2)[start]", g.Start().String())
	assert.Equal(t, "(2,4)[end]", g.End().String())
	n, _ := g.NodeAt(pos(2, 2))
	assert.Equal(t, "(2,2)", n.String())
	_, ok := n.Neighbor(grid.Direction(9))
	assert.False(t, ok)
}
