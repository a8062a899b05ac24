package main

import (
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazegraph/grid"
	"github.com/katalvlaran/mazegraph/topology"
)

// point is a JSON/YAML friendly grid.Position.
type point struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

func pointOf(p grid.Position) point { return point{Row: p.Row, Col: p.Col} }

type summary struct {
	File       string         `json:"file" yaml:"file"`
	Format     string         `json:"format" yaml:"format"`
	Bytes      int64          `json:"bytes" yaml:"bytes"`
	Width      int            `json:"width" yaml:"width"`
	Height     int            `json:"height" yaml:"height"`
	PathColor  string         `json:"path_color" yaml:"path_color"`
	Background string         `json:"background" yaml:"background"`
	Start      point          `json:"start" yaml:"start"`
	End        point          `json:"end" yaml:"end"`
	Tied       bool           `json:"tied" yaml:"tied"`
	Nodes      int            `json:"nodes" yaml:"nodes"`
	Edges      int            `json:"edges" yaml:"edges"`
	DeadEnds   int            `json:"dead_ends" yaml:"dead_ends"`
	Junctions  int            `json:"junctions" yaml:"junctions"`
	Unlinked   int            `json:"unlinked" yaml:"unlinked"`
	Kinds      map[string]int `json:"kinds" yaml:"kinds"`
}

func (a *app) newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <image>",
		Short: "Parse a maze image and print a summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.parseFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			res := p.res
			stats := res.Graph.Stats()
			census := topology.Count(p.buf, res.Palette.Path)
			s := summary{
				File:       p.file,
				Format:     p.format,
				Bytes:      p.size,
				Width:      p.buf.Width(),
				Height:     p.buf.Height(),
				PathColor:  res.Palette.Path.String(),
				Background: res.Palette.Background.String(),
				Start:      pointOf(res.Endpoints.Start),
				End:        pointOf(res.Endpoints.End),
				Tied:       res.Endpoints.Tied,
				Nodes:      stats.Nodes,
				Edges:      stats.Edges,
				DeadEnds:   stats.DeadEnds,
				Junctions:  stats.Junctions,
				Unlinked:   stats.Unlinked,
				Kinds:      make(map[string]int, len(census)),
			}

			rows := [][]string{
				{"file", p.file},
				{"format", p.format},
				{"size", humanize.Bytes(uint64(p.size))},
				{"dimensions", strconv.Itoa(s.Width) + "x" + strconv.Itoa(s.Height)},
				{"pixels", humanize.Comma(int64(p.buf.Len()))},
				{"path color", s.PathColor},
				{"background", s.Background},
				{"start", res.Endpoints.Start.String()},
				{"end", res.Endpoints.End.String()},
				{"tied", strconv.FormatBool(s.Tied)},
				{"nodes", humanize.Comma(int64(s.Nodes))},
				{"edges", humanize.Comma(int64(s.Edges))},
				{"dead ends", humanize.Comma(int64(s.DeadEnds))},
				{"junctions", humanize.Comma(int64(s.Junctions))},
				{"unlinked", humanize.Comma(int64(s.Unlinked))},
			}
			for k := topology.Isolated; k <= topology.Crossroads; k++ {
				s.Kinds[k.String()] = census[k]
				rows = append(rows, []string{k.String() + " pixels", humanize.Comma(int64(census[k]))})
			}
			rows = append(rows, []string{"elapsed", p.elapsed.String()})

			return a.output(cmd.OutOrStdout(), s, []string{"FIELD", "VALUE"}, rows)
		},
	}
}
