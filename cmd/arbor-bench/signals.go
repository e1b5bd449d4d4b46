package main

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/arbor-dev/arbor/pkg/arbor"
	"github.com/arbor-dev/arbor/pkg/metrics"
)

func signalsCmd() *cobra.Command {
	var (
		subscribers int
		writes      int
	)

	cmd := &cobra.Command{
		Use:   "signals",
		Short: "Benchmark signal write fan-out",
		Long: `Creates one signal with a configurable number of subscribed effects and
measures synchronous write throughput.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := prometheus.NewRegistry()
			collector := metrics.New(metrics.WithRegistry(registry))

			rt := arbor.NewRuntime(
				arbor.WithLogger(newLogger()),
				arbor.WithObserver(collector),
			)

			source := arbor.NewSignal(rt, 0).Named("source")
			sink := 0
			for i := 0; i < subscribers; i++ {
				arbor.CreateEffect(rt, func() {
					sink += source.Get()
				})
			}

			start := time.Now()
			for i := 0; i < writes; i++ {
				source.MustSet(i)
			}
			elapsed := time.Since(start)

			fmt.Printf("signals: %d writes x %d subscribers in %s\n", writes, subscribers, elapsed)
			fmt.Printf("  %.0f writes/sec, %.0f notifications/sec\n",
				float64(writes)/elapsed.Seconds(),
				float64(writes*subscribers)/elapsed.Seconds())

			return printCounters(registry)
		},
	}

	cmd.Flags().IntVarP(&subscribers, "subscribers", "s", 10, "Number of subscribed effects")
	cmd.Flags().IntVarP(&writes, "writes", "w", 100000, "Number of writes to perform")

	return cmd
}

// printCounters dumps the counter metrics gathered during a run.
func printCounters(registry *prometheus.Registry) error {
	families, err := registry.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}

	fmt.Println("  engine counters:")
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			if counter := metric.GetCounter(); counter != nil {
				fmt.Printf("    %s = %.0f\n", family.GetName(), counter.GetValue())
			}
		}
	}
	return nil
}
