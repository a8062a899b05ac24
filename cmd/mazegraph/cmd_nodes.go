package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazegraph/grid"
	"github.com/katalvlaran/mazegraph/mazegraph"
	"github.com/katalvlaran/mazegraph/topology"
)

type linkOut struct {
	Direction string `json:"direction" yaml:"direction"`
	To        point  `json:"to" yaml:"to"`
	Length    int    `json:"length" yaml:"length"`
}

type nodeOut struct {
	Position point     `json:"position" yaml:"position"`
	Role     string    `json:"role,omitempty" yaml:"role,omitempty"`
	Kind     string    `json:"kind" yaml:"kind"`
	Degree   int       `json:"degree" yaml:"degree"`
	Links    []linkOut `json:"links" yaml:"links"`
}

func role(n *mazegraph.Node) string {
	switch {
	case n.IsStart():
		return "start"
	case n.IsEnd():
		return "end"
	default:
		return ""
	}
}

func (a *app) newNodesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nodes <image>",
		Short: "List the graph nodes of a maze image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.parseFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			nodes := p.res.Graph.Nodes()
			out := make([]nodeOut, 0, len(nodes))
			rows := make([][]string, 0, len(nodes))
			for _, n := range nodes {
				kind := topology.ClassifyPixel(p.buf, p.res.Palette.Path, n.Position())
				no := nodeOut{
					Position: pointOf(n.Position()),
					Role:     role(n),
					Kind:     kind.String(),
					Degree:   n.Degree(),
					Links:    []linkOut{},
				}
				row := []string{
					strconv.Itoa(n.Position().Row),
					strconv.Itoa(n.Position().Col),
					orDash(no.Role),
					no.Kind,
					strconv.Itoa(no.Degree),
				}
				for _, d := range grid.Directions() {
					l, ok := n.Neighbor(d)
					if !ok {
						row = append(row, "-")
						continue
					}
					no.Links = append(no.Links, linkOut{Direction: d.String(), To: pointOf(l.To), Length: l.Length})
					row = append(row, l.To.String())
				}
				out = append(out, no)
				rows = append(rows, row)
			}

			headers := []string{"ROW", "COL", "ROLE", "KIND", "DEGREE", "NORTH", "EAST", "SOUTH", "WEST"}
			return a.output(cmd.OutOrStdout(), out, headers, rows)
		},
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
