package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arbor-dev/arbor/pkg/arbor"
	"github.com/arbor-dev/arbor/pkg/graph"
)

func graphCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print a demo dependency graph",
		Long: `Builds a small runtime (signals, a memo chain and effects), snapshots its
dependency graph and prints it as Graphviz DOT (or JSON with --json).

Pipe the output through dot:

  arbor-bench graph | dot -Tsvg -o graph.svg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := arbor.NewRuntime(arbor.WithLogger(newLogger()))

			price := arbor.NewSignal(rt, 100.0).Named("price")
			taxRate := arbor.NewSignal(rt, 0.08).Named("tax_rate")

			taxed := arbor.CreateMemo(rt, func() float64 {
				return price.Get() * (1 + taxRate.Get())
			})
			rounded := arbor.CreateSelector(rt, func() float64 {
				return float64(int(taxed.Get()))
			})
			arbor.CreateEffect(rt, func() {
				_ = rounded.Get()
			})

			snap := rt.Snapshot()
			if asJSON {
				out, err := graph.JSON(snap)
				if err != nil {
					return err
				}
				fmt.Println(string(out))
				return nil
			}

			fmt.Print(graph.DOT(snap))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of DOT")

	return cmd
}
