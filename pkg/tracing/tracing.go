// Package tracing exports OpenTelemetry spans for a reactive runtime.
//
// A Tracer implements arbor.Observer; attach it with arbor.WithObserver.
// It uses the global OpenTelemetry tracer provider, so configure that in
// main() before creating the runtime.
package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/arbor-dev/arbor/pkg/arbor"
)

// Default tracer name for arbor runtimes.
const defaultTracerName = "arbor"

// Config configures the OpenTelemetry observer.
type Config struct {
	// TracerName is the name of the tracer (default: "arbor").
	TracerName string

	// MinDuration drops spans for computation runs shorter than this.
	// Zero records every run.
	MinDuration time.Duration
}

// Option configures the OpenTelemetry observer.
type Option func(*Config)

// WithTracerName sets the tracer name.
func WithTracerName(name string) Option {
	return func(c *Config) {
		c.TracerName = name
	}
}

// WithMinDuration sets the minimum run duration worth a span.
func WithMinDuration(d time.Duration) Option {
	return func(c *Config) {
		c.MinDuration = d
	}
}

// Tracer records computation runs and cycle rejections as spans.
type Tracer struct {
	tracer      trace.Tracer
	minDuration time.Duration
}

// New creates an OpenTelemetry observer.
func New(opts ...Option) *Tracer {
	config := Config{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}

	return &Tracer{
		tracer:      otel.Tracer(config.TracerName),
		minDuration: config.MinDuration,
	}
}

// ObserveWrite implements arbor.Observer. Writes are not traced; the
// interesting work happens in the runs they trigger.
func (t *Tracer) ObserveWrite(cell uint64, subscribers int) {}

// ObserveRun implements arbor.Observer. The run already finished when the
// observer fires, so the span is recorded with explicit timestamps.
func (t *Tracer) ObserveRun(comp uint64, d time.Duration) {
	if d < t.minDuration {
		return
	}

	end := time.Now()
	_, span := t.tracer.Start(context.Background(), "arbor.computation.run",
		trace.WithTimestamp(end.Add(-d)),
		trace.WithAttributes(attribute.Int64("arbor.computation.id", int64(comp))),
	)
	span.End(trace.WithTimestamp(end))
}

// ObserveCycle implements arbor.Observer.
func (t *Tracer) ObserveCycle(cell uint64) {
	_, span := t.tracer.Start(context.Background(), "arbor.cycle.rejected",
		trace.WithAttributes(attribute.Int64("arbor.cell.id", int64(cell))),
	)
	span.SetStatus(codes.Error, "re-entrant write rejected")
	span.End()
}

var _ arbor.Observer = (*Tracer)(nil)
