package mazegraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazegraph/grid"
)

// Sentinel errors for graph assembly.
var (
	// ErrNilBuffer indicates a nil *pixel.Buffer.
	ErrNilBuffer = errors.New("mazegraph: pixel buffer is nil")
	// ErrNotPath indicates a node position (or endpoint) without the path color.
	ErrNotPath = errors.New("mazegraph: node position is not path colored")
	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("mazegraph: invalid option supplied")
)

// Link is a directed corridor from one node to the nearest node in one direction.
type Link struct {
	// To is the position of the target node.
	To grid.Position
	// Length is the number of pixel steps from the source node to To.
	Length int
}

// Node is a graph-relevant pixel with up to four directional links.
// Nodes are created by Build and read-only afterwards.
type Node struct {
	pos    grid.Position
	links  [grid.NumDirections]Link
	linked [grid.NumDirections]bool
	start  bool
	end    bool
}

// Position returns the pixel position of the node.
func (n *Node) Position() grid.Position { return n.pos }

// Neighbor returns the link in direction d, if any.
func (n *Node) Neighbor(d grid.Direction) (Link, bool) {
	if d < 0 || d >= grid.NumDirections {
		return Link{}, false
	}
	return n.links[d], n.linked[d]
}

// North returns the position of the linked node to the north, if any.
func (n *Node) North() (grid.Position, bool) { return n.to(grid.North) }

// East returns the position of the linked node to the east, if any.
func (n *Node) East() (grid.Position, bool) { return n.to(grid.East) }

// South returns the position of the linked node to the south, if any.
func (n *Node) South() (grid.Position, bool) { return n.to(grid.South) }

// West returns the position of the linked node to the west, if any.
func (n *Node) West() (grid.Position, bool) { return n.to(grid.West) }

func (n *Node) to(d grid.Direction) (grid.Position, bool) {
	return n.links[d].To, n.linked[d]
}

// Degree returns the number of links.
func (n *Node) Degree() int {
	k := 0
	for _, ok := range n.linked {
		if ok {
			k++
		}
	}
	return k
}

// IsStart reports whether the node is the maze entrance.
func (n *Node) IsStart() bool { return n.start }

// IsEnd reports whether the node is the maze exit.
func (n *Node) IsEnd() bool { return n.end }

// String renders the node as "(r,c)" plus start/end tags.
func (n *Node) String() string {
	switch {
	case n.start:
		return fmt.Sprintf("%v[start]", n.pos)
	case n.end:
		return fmt.Sprintf("%v[end]", n.pos)
	default:
		return n.pos.String()
	}
}

// Edge is one directed link, as listed by Graph.Edges.
type Edge struct {
	From      grid.Position
	To        grid.Position
	Direction grid.Direction
	Length    int
}

// Stats summarizes a Graph.
type Stats struct {
	Nodes     int
	Edges     int
	DeadEnds  int // nodes of degree 1
	Junctions int // nodes of degree 3 or 4
	Unlinked  int // nodes of degree 0
}

// Option configures Build.
type Option func(*Options)

// Options holds graph assembly settings.
type Options struct {
	// Workers is the number of goroutines linking nodes.
	// 0 and 1 both mean sequential linking.
	Workers int

	err error
}

// DefaultOptions returns sequential Options.
func DefaultOptions() Options {
	return Options{Workers: 1}
}

// WithWorkers links nodes with n goroutines.
//
//	n > 1:  parallel
//	n == 0: sequential
//	n < 0:  ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}
