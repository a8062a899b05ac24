package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

type edgeOut struct {
	From      point  `json:"from" yaml:"from"`
	To        point  `json:"to" yaml:"to"`
	Direction string `json:"direction" yaml:"direction"`
	Length    int    `json:"length" yaml:"length"`
}

func (a *app) newEdgesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edges <image>",
		Short: "List the directed corridor links of a maze image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.parseFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			edges := p.res.Graph.Edges()
			out := make([]edgeOut, 0, len(edges))
			rows := make([][]string, 0, len(edges))
			for _, e := range edges {
				out = append(out, edgeOut{
					From:      pointOf(e.From),
					To:        pointOf(e.To),
					Direction: e.Direction.String(),
					Length:    e.Length,
				})
				rows = append(rows, []string{e.From.String(), e.To.String(), e.Direction.String(), strconv.Itoa(e.Length)})
			}

			return a.output(cmd.OutOrStdout(), out, []string{"FROM", "TO", "DIRECTION", "LENGTH"}, rows)
		},
	}
}
