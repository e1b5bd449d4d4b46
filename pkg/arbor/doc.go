// Package arbor is a fine-grained reactive dependency-tracking engine:
// signals, auto-tracked computations, disposal scopes and incremental list
// reconciliation. It decides what must recompute when state changes, and
// with minimal work; it knows nothing about rendering, I/O or any other
// consumer of its values.
//
// # Core types
//
// Everything hangs off an explicit Runtime:
//
//	rt := arbor.NewRuntime()
//	count := arbor.NewSignal(rt, 0)
//
//	arbor.CreateEffect(rt, func() {
//	    fmt.Println("count is", count.Get()) // subscribes to count
//	})
//
//	count.MustSet(1) // effect re-runs synchronously, printing "count is 1"
//
// Reading a signal inside an effect or memo registers the dependency
// automatically; the dependency set is rebuilt on every run, so signals
// read only under some condition stop triggering re-runs as soon as the
// condition turns false. GetUntracked reads without subscribing.
//
// Memos are computations whose result is itself a signal:
//
//	double := arbor.CreateMemo(rt, func() int { return count.Get() * 2 })
//
// CreateSelector additionally suppresses notification when a recompute
// yields an equal value.
//
// # Propagation model
//
// Everything is synchronous and depth-first: a write's entire notification
// chain, including chains started by subscriber writes, completes before
// Set returns. Subscribers are notified in order of first read. A write to
// a signal that is already notifying on the calling stack is a cyclic
// dependency and fails with CycleError instead of looping.
//
// # Disposal
//
// Runtime.CreateRoot opens a scope; computations and signals created
// inside belong to it and are torn down by Owner.Dispose. Scopes nest into
// a tree; the list reconcilers (MapKeyed, MapIndexed) give every mapped
// item its own scope so that removing an item disposes exactly its
// per-item state.
//
// # Threading
//
// A Runtime and everything created from it are confined to one logical
// thread. No operation suspends and nothing locks; use one Runtime per
// goroutine.
package arbor
