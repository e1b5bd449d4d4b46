package arbor

import "time"

// Observer receives engine events. Implementations must be fast and must
// not touch the runtime: callbacks fire synchronously on the engine's
// thread, in the middle of writes and runs.
//
// The metrics package provides a Prometheus-backed implementation and the
// tracing package an OpenTelemetry one.
type Observer interface {
	// ObserveWrite fires after a successful signal write, before its
	// subscribers are notified.
	ObserveWrite(cell uint64, subscribers int)

	// ObserveRun fires after each computation run with its duration.
	ObserveRun(comp uint64, d time.Duration)

	// ObserveCycle fires when a re-entrant write is rejected.
	ObserveCycle(cell uint64)
}

// MultiObserver fans events out to several observers in order.
func MultiObserver(observers ...Observer) Observer {
	return multiObserver(observers)
}

type multiObserver []Observer

func (m multiObserver) ObserveWrite(cell uint64, subscribers int) {
	for _, obs := range m {
		obs.ObserveWrite(cell, subscribers)
	}
}

func (m multiObserver) ObserveRun(comp uint64, d time.Duration) {
	for _, obs := range m {
		obs.ObserveRun(comp, d)
	}
}

func (m multiObserver) ObserveCycle(cell uint64) {
	for _, obs := range m {
		obs.ObserveCycle(cell)
	}
}
