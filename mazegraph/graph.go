package mazegraph

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mazegraph/border"
	"github.com/katalvlaran/mazegraph/grid"
	"github.com/katalvlaran/mazegraph/pixel"
)

// Graph is a maze graph addressed by pixel position. The table holds one
// slot per pixel; slots of non-relevant pixels stay nil. A Graph is
// immutable once Build returns and safe for concurrent reads.
type Graph struct {
	dims  grid.Dims
	table []*Node
	nodes []*Node // row-major
	start *Node
	end   *Node
}

// Build assembles the graph of buf.
//
// Implementation:
//   - Stage 1: allocate a dense table of W×H empty slots.
//   - Stage 2: create a Node at ends.Start, ends.End and every position in
//     relevant (duplicates collapse into one node), flagging start and end.
//   - Stage 3: for every node and direction, step through path pixels to the
//     next node and record the link (see package doc).
//
// Returns ErrNilBuffer, ErrOptionViolation, grid.ErrOutOfBounds for a
// position outside buf, or ErrNotPath for a position without the path color.
// Complexity: O(W×H) time and memory.
func Build(buf *pixel.Buffer, path pixel.Color, ends border.Endpoints, relevant []grid.Position, opts ...Option) (*Graph, error) {
	if buf == nil {
		return nil, ErrNilBuffer
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	dims := buf.Dims()
	g := &Graph{dims: dims, table: make([]*Node, dims.Len())}

	var err error
	if g.start, err = g.place(buf, path, ends.Start); err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	if g.end, err = g.place(buf, path, ends.End); err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}
	g.start.start = true
	g.end.end = true
	for _, p := range relevant {
		if _, err = g.place(buf, path, p); err != nil {
			return nil, err
		}
	}

	g.nodes = make([]*Node, 0, len(relevant)+2)
	for _, n := range g.table {
		if n != nil {
			g.nodes = append(g.nodes, n)
		}
	}

	l := &linker{graph: g, buf: buf, path: path}
	if err = l.run(o.Workers); err != nil {
		return nil, err
	}

	return g, nil
}

// place creates (or returns the existing) node at p.
func (g *Graph) place(buf *pixel.Buffer, path pixel.Color, p grid.Position) (*Node, error) {
	i, err := g.dims.Index(p)
	if err != nil {
		return nil, err
	}
	if !buf.Is(p, path) {
		return nil, fmt.Errorf("%w: %v", ErrNotPath, p)
	}
	if n := g.table[i]; n != nil {
		return n, nil
	}
	n := &Node{pos: p}
	g.table[i] = n
	return n, nil
}

// lookup returns the node at p, nil for an empty slot, or grid.ErrOutOfBounds.
func (g *Graph) lookup(p grid.Position) (*Node, error) {
	i, err := g.dims.Index(p)
	if err != nil {
		return nil, err
	}
	return g.table[i], nil
}

// NodeAt returns the node at p. It returns false for empty slots and for
// positions outside the image.
func (g *Graph) NodeAt(p grid.Position) (*Node, bool) {
	n, err := g.lookup(p)
	if err != nil || n == nil {
		return nil, false
	}
	return n, true
}

// Nodes returns all nodes in row-major order. The slice is a copy.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Dims returns the image dimensions the graph was built for.
func (g *Graph) Dims() grid.Dims { return g.dims }

// Width returns the image width.
func (g *Graph) Width() int { return g.dims.Width }

// Height returns the image height.
func (g *Graph) Height() int { return g.dims.Height }

// Start returns the entrance node.
func (g *Graph) Start() *Node { return g.start }

// End returns the exit node.
func (g *Graph) End() *Node { return g.end }

// Edges lists every directed link, ordered by source node (row-major) and
// then by direction N, E, S, W.
// Complexity: O(V).
func (g *Graph) Edges() []Edge {
	var out []Edge
	for _, n := range g.nodes {
		for _, d := range grid.Directions() {
			if l, ok := n.Neighbor(d); ok {
				out = append(out, Edge{From: n.pos, To: l.To, Direction: d, Length: l.Length})
			}
		}
	}
	return out
}

// Stats counts nodes, directed edges and nodes by degree.
// Complexity: O(V).
func (g *Graph) Stats() Stats {
	s := Stats{Nodes: len(g.nodes)}
	for _, n := range g.nodes {
		deg := n.Degree()
		s.Edges += deg
		switch {
		case deg == 0:
			s.Unlinked++
		case deg == 1:
			s.DeadEnds++
		case deg >= 3:
			s.Junctions++
		}
	}
	return s
}

// linker resolves the four links of every node.
type linker struct {
	graph *Graph
	buf   *pixel.Buffer
	path  pixel.Color
}

// run links all nodes, sharding them across workers goroutines when
// workers > 1. Each goroutine writes only the links of its own nodes.
func (l *linker) run(workers int) error {
	nodes := l.graph.nodes
	if workers > len(nodes) {
		workers = len(nodes)
	}
	if workers <= 1 {
		for _, n := range nodes {
			if err := l.link(n); err != nil {
				return err
			}
		}
		return nil
	}

	per := (len(nodes) + workers - 1) / workers
	var eg errgroup.Group
	for lo := 0; lo < len(nodes); lo += per {
		shard := nodes[lo:min(lo+per, len(nodes))]
		eg.Go(func() error {
			for _, n := range shard {
				if err := l.link(n); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return eg.Wait()
}

// link walks away from n in each direction until it meets another node,
// a background pixel or the image edge.
func (l *linker) link(n *Node) error {
	for _, d := range grid.Directions() {
		cur := n.pos
		for steps := 1; ; steps++ {
			cur = cur.Step(d)
			if !l.buf.Is(cur, l.path) {
				break
			}
			other, err := l.graph.lookup(cur)
			if err != nil {
				return err
			}
			if other != nil {
				n.links[d] = Link{To: cur, Length: steps}
				n.linked[d] = true
				break
			}
		}
	}
	return nil
}
