// Package metrics exports Prometheus metrics for a reactive runtime.
//
// A Collector implements arbor.Observer; attach it with
// arbor.WithObserver:
//
//	collector := metrics.New(metrics.WithNamespace("myapp"))
//	rt := arbor.NewRuntime(arbor.WithObserver(collector))
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/arbor-dev/arbor/pkg/arbor"
)

// Config configures the Prometheus collector.
type Config struct {
	// Namespace is the metrics namespace (default: "arbor").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for computation run duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the Prometheus collector.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

// defaultConfig returns the default collector configuration.
func defaultConfig() Config {
	return Config{
		Namespace:   "arbor",
		Subsystem:   "",
		ConstLabels: nil,
		Buckets:     prometheus.DefBuckets,
		Registry:    prometheus.DefaultRegisterer,
	}
}

// Collector records engine events as Prometheus metrics.
//
// Metrics collected:
//   - arbor_signal_writes_total: Counter of successful signal writes
//   - arbor_subscribers_notified_total: Counter of subscribers notified
//   - arbor_computation_runs_total: Counter of computation runs
//   - arbor_computation_run_duration_seconds: Histogram of run durations
//   - arbor_cycle_errors_total: Counter of rejected re-entrant writes
type Collector struct {
	writesTotal      prometheus.Counter
	subscribersTotal prometheus.Counter
	runsTotal        prometheus.Counter
	runDuration      prometheus.Histogram
	cycleErrorsTotal prometheus.Counter
}

// New creates a Collector registered with the configured registry.
func New(opts ...Option) *Collector {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Collector{
		writesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "signal_writes_total",
			Help:        "Total number of successful signal writes",
			ConstLabels: config.ConstLabels,
		}),

		subscribersTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "subscribers_notified_total",
			Help:        "Total number of subscribers notified by signal writes",
			ConstLabels: config.ConstLabels,
		}),

		runsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "computation_runs_total",
			Help:        "Total number of computation runs",
			ConstLabels: config.ConstLabels,
		}),

		runDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "computation_run_duration_seconds",
			Help:        "Computation run duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		cycleErrorsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "cycle_errors_total",
			Help:        "Total number of rejected re-entrant signal writes",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// ObserveWrite implements arbor.Observer.
func (c *Collector) ObserveWrite(cell uint64, subscribers int) {
	c.writesTotal.Inc()
	c.subscribersTotal.Add(float64(subscribers))
}

// ObserveRun implements arbor.Observer.
func (c *Collector) ObserveRun(comp uint64, d time.Duration) {
	c.runsTotal.Inc()
	c.runDuration.Observe(d.Seconds())
}

// ObserveCycle implements arbor.Observer.
func (c *Collector) ObserveCycle(cell uint64) {
	c.cycleErrorsTotal.Inc()
}

var _ arbor.Observer = (*Collector)(nil)
