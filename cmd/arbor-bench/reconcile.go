package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/arbor-dev/arbor/pkg/arbor"
	"github.com/arbor-dev/arbor/pkg/metrics"
)

func reconcileCmd() *cobra.Command {
	var (
		items   int
		updates int
		seed    int64
	)

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Benchmark keyed list reconciliation",
		Long: `Feeds random permutations, appends and removals through a keyed mapper
and reports diff throughput plus how many per-item computations were
created fresh versus reused.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := prometheus.NewRegistry()
			collector := metrics.New(metrics.WithRegistry(registry))

			rt := arbor.NewRuntime(
				arbor.WithLogger(newLogger()),
				arbor.WithObserver(collector),
			)

			base := make([]int, items)
			for i := range base {
				base[i] = i
			}

			list := arbor.NewSignal(rt, base).Named("list")

			created := 0
			mapped := arbor.MapKeyed(rt, list.ReadOnly(), func(x int) int {
				created++
				return x * 2
			})
			mapped()

			rng := rand.New(rand.NewSource(seed))
			initialCreated := created

			start := time.Now()
			for i := 0; i < updates; i++ {
				next := append([]int(nil), base...)
				switch i % 3 {
				case 0: // permutation
					rng.Shuffle(len(next), func(a, b int) {
						next[a], next[b] = next[b], next[a]
					})
				case 1: // removal
					if len(next) > 1 {
						drop := rng.Intn(len(next))
						next = append(next[:drop], next[drop+1:]...)
					}
				case 2: // append
					next = append(next, items+i)
				}
				list.MustSet(next)
				mapped()
			}
			elapsed := time.Since(start)

			total := updates * items
			fmt.Printf("reconcile: %d updates over %d items in %s\n", updates, items, elapsed)
			fmt.Printf("  %.0f updates/sec, %.0f items/sec\n",
				float64(updates)/elapsed.Seconds(),
				float64(total)/elapsed.Seconds())
			fmt.Printf("  fresh computations: %d, reused: %d\n",
				created-initialCreated, total-(created-initialCreated))

			return printCounters(registry)
		},
	}

	cmd.Flags().IntVarP(&items, "items", "n", 1000, "List size")
	cmd.Flags().IntVarP(&updates, "updates", "u", 1000, "Number of list updates")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Random seed")

	return cmd
}
