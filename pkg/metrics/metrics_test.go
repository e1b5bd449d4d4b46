package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/arbor-dev/arbor/pkg/arbor"
)

func TestCollectorCountsEngineEvents(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := New(WithRegistry(registry))

	rt := arbor.NewRuntime(arbor.WithObserver(collector))

	count := arbor.NewSignal(rt, 0)
	arbor.CreateEffect(rt, func() {
		_ = count.Get()
	})

	count.MustSet(1)
	count.MustSet(2)

	require.Equal(t, float64(2), testutil.ToFloat64(collector.writesTotal))
	require.Equal(t, float64(2), testutil.ToFloat64(collector.subscribersTotal))
	// One initial run plus one re-run per write.
	require.Equal(t, float64(3), testutil.ToFloat64(collector.runsTotal))
	require.Equal(t, float64(0), testutil.ToFloat64(collector.cycleErrorsTotal))
}

func TestCollectorCountsCycleErrors(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := New(WithRegistry(registry))

	rt := arbor.NewRuntime(arbor.WithObserver(collector))

	state := arbor.NewSignal(rt, 0)
	arbor.CreateEffect(rt, func() {
		v := state.Get()
		_ = state.Set(v + 1)
	})

	state.MustSet(1)

	require.Equal(t, float64(1), testutil.ToFloat64(collector.cycleErrorsTotal))
}

func TestCollectorNamespaceAndLabels(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := New(
		WithRegistry(registry),
		WithNamespace("demo"),
		WithSubsystem("engine"),
		WithConstLabels(prometheus.Labels{"instance": "test"}),
	)

	collector.ObserveWrite(1, 0)

	count, err := testutil.GatherAndCount(registry, "demo_engine_signal_writes_total")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}
