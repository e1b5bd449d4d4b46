package arbor

import (
	"log/slog"
	"time"
)

// handle addresses a value cell in the runtime's arena.
// The generation counter guards against use of a handle whose cell was
// freed by scope disposal and whose slot has been reused.
type handle struct {
	slot uint32
	gen  uint32
}

// cell is a single arena entry: a value plus its ordered subscriber set.
type cell struct {
	id   uint64
	gen  uint32
	live bool

	// notifying is set while this cell's write-notification loop is on the
	// call stack. A write observing it is a cyclic dependency.
	notifying bool

	value any
	name  string

	// subs holds the IDs of subscribed computations in order of first
	// read. Deduplicated; order is externally observable.
	subs []uint64
}

// computation is the record of one tracked body: its re-run callback and
// the dependency edges established during its last run. The edge list is
// discarded and rebuilt on every run.
type computation struct {
	id       uint64
	body     func()
	deps     []handle
	disposed bool
}

// Runtime owns the cell arena, the stack of running computations, and the
// current disposal scope. All state is confined to a single logical
// thread; a Runtime must not be shared across goroutines.
type Runtime struct {
	cells []cell
	free  []uint32

	comps map[uint64]*computation

	// stack holds the currently running computations, innermost last.
	// Reads register only with the innermost record.
	stack []*computation

	owner *Owner

	nextID uint64

	logger   *slog.Logger
	observer Observer
}

// RuntimeOption configures a Runtime.
type RuntimeOption func(*Runtime)

// WithLogger sets the logger used for debug output.
// If nil, slog.Default() is used.
func WithLogger(logger *slog.Logger) RuntimeOption {
	return func(rt *Runtime) {
		rt.logger = logger
	}
}

// WithObserver sets the observer notified of writes, computation runs and
// cycle rejections. See the metrics and tracing packages for
// implementations.
func WithObserver(obs Observer) RuntimeOption {
	return func(rt *Runtime) {
		rt.observer = obs
	}
}

// NewRuntime creates an empty reactive runtime.
func NewRuntime(opts ...RuntimeOption) *Runtime {
	rt := &Runtime{
		comps: make(map[uint64]*computation),
	}
	for _, opt := range opts {
		opt(rt)
	}
	if rt.logger == nil {
		rt.logger = slog.Default()
	}
	return rt
}

// allocID returns the next unique ID for a cell or computation.
// IDs are monotonically increasing and never reused.
func (rt *Runtime) allocID() uint64 {
	rt.nextID++
	return rt.nextID
}

// allocCell reserves an arena slot and returns its handle.
// The cell is registered with the current owner for disposal.
func (rt *Runtime) allocCell(value any) handle {
	var slot uint32
	if n := len(rt.free); n > 0 {
		slot = rt.free[n-1]
		rt.free = rt.free[:n-1]
	} else {
		rt.cells = append(rt.cells, cell{})
		slot = uint32(len(rt.cells) - 1)
	}

	c := &rt.cells[slot]
	c.id = rt.allocID()
	c.live = true
	c.notifying = false
	c.value = value
	c.name = ""
	c.subs = nil

	h := handle{slot: slot, gen: c.gen}
	if rt.owner != nil {
		rt.owner.registerCell(h)
	}
	return h
}

// freeCell releases a cell back to the arena. Stale handles are ignored so
// disposal stays idempotent.
func (rt *Runtime) freeCell(h handle) {
	c := rt.lookup(h)
	if c == nil {
		return
	}
	c.live = false
	c.gen++
	c.value = nil
	c.subs = nil
	c.name = ""
	rt.free = append(rt.free, h.slot)
}

// lookup resolves a handle to its cell, or nil if the cell was freed.
func (rt *Runtime) lookup(h handle) *cell {
	c := &rt.cells[h.slot]
	if !c.live || c.gen != h.gen {
		return nil
	}
	return c
}

// mustLookup resolves a handle or panics. Public signal operations go
// through here so that use-after-dispose fails loudly.
func (rt *Runtime) mustLookup(h handle) *cell {
	c := rt.lookup(h)
	if c == nil {
		panic("arbor: signal used after its scope was disposed")
	}
	return c
}

// readCell returns the cell's value and registers the innermost running
// computation as a subscriber. Registration is a no-op if the computation
// already depends on this cell.
func (rt *Runtime) readCell(h handle) any {
	c := rt.mustLookup(h)

	if n := len(rt.stack); n > 0 {
		rt.stack[n-1].addDep(h)
	}

	return c.value
}

// peekCell returns the cell's value without registering a dependency.
func (rt *Runtime) peekCell(h handle) any {
	return rt.mustLookup(h).value
}

// writeCell stores a new value and synchronously notifies the subscribers
// recorded at the time of the write. Notification is depth-first: a
// subscriber writing another cell completes that cell's whole chain before
// the outer loop resumes.
func (rt *Runtime) writeCell(h handle, value any) error {
	c := rt.mustLookup(h)

	if c.notifying {
		if rt.observer != nil {
			rt.observer.ObserveCycle(c.id)
		}
		return &CycleError{Cell: c.id, Name: c.name}
	}

	c.value = value

	if Debug.LogWrites {
		rt.logger.Debug("arbor: signal write", "cell", c.id, "name", c.name, "subscribers", len(c.subs))
	}
	if rt.observer != nil {
		rt.observer.ObserveWrite(c.id, len(c.subs))
	}

	// Snapshot the subscriber list so subscriptions added or removed while
	// notifying do not affect this round.
	subs := append([]uint64(nil), c.subs...)

	c.notifying = true
	defer func() {
		// The cell may have been freed by a subscriber; resolve again.
		if c := rt.lookup(h); c != nil {
			c.notifying = false
		}
	}()

	for _, id := range subs {
		if comp, ok := rt.comps[id]; ok && !comp.disposed {
			rt.runComputation(comp)
		}
	}

	return nil
}

// storeCell overwrites the value without notifying subscribers.
// Used by selectors when the recomputed value compares equal.
func (rt *Runtime) storeCell(h handle, value any) {
	rt.mustLookup(h).value = value
}

// newComputation allocates a computation record and registers it with the
// current owner.
func (rt *Runtime) newComputation(body func()) *computation {
	comp := &computation{
		id:   rt.allocID(),
		body: body,
	}
	rt.comps[comp.id] = comp
	if rt.owner != nil {
		rt.owner.registerComputation(comp)
	}
	return comp
}

// runComputation executes one tracked run: unsubscribe from the previous
// dependencies, rebuild the record with a fresh tracked run, subscribe to
// everything read. The stack depth must be identical before and after,
// even when the body panics.
func (rt *Runtime) runComputation(comp *computation) {
	if comp.disposed {
		return
	}

	depth := len(rt.stack)
	start := time.Now()

	rt.detach(comp)
	rt.stack = append(rt.stack, comp)

	defer func() {
		if len(rt.stack) != depth+1 {
			panic("arbor: tracking stack depth changed during computation run")
		}
		rt.stack = rt.stack[:depth]

		if Debug.LogRuns {
			rt.logger.Debug("arbor: computation run", "comp", comp.id, "deps", len(comp.deps), "duration", time.Since(start))
		}
		if rt.observer != nil {
			rt.observer.ObserveRun(comp.id, time.Since(start))
		}
	}()

	comp.body()
	rt.attach(comp)
}

// attach subscribes the computation to every cell read during its run.
// Cell-side registration deduplicates by computation ID.
func (rt *Runtime) attach(comp *computation) {
	for _, h := range comp.deps {
		c := rt.lookup(h)
		if c == nil {
			continue
		}
		if !containsID(c.subs, comp.id) {
			c.subs = append(c.subs, comp.id)
		}
	}
}

// detach removes the computation from every cell recorded in its last run
// and clears the record. Edge removal is explicit on both sides.
func (rt *Runtime) detach(comp *computation) {
	for _, h := range comp.deps {
		if c := rt.lookup(h); c != nil {
			c.subs = removeID(c.subs, comp.id)
		}
	}
	comp.deps = comp.deps[:0]
}

// disposeComputation permanently detaches and removes a computation.
func (rt *Runtime) disposeComputation(comp *computation) {
	if comp.disposed {
		return
	}
	comp.disposed = true
	rt.detach(comp)
	delete(rt.comps, comp.id)
}

// Untrack runs fn with dependency tracking suspended: reads inside fn do
// not register edges with any enclosing computation.
func (rt *Runtime) Untrack(fn func()) {
	saved := rt.stack
	rt.stack = nil
	defer func() { rt.stack = saved }()
	fn()
}

// addDep records a dependency edge for this run, deduplicated by handle.
func (comp *computation) addDep(h handle) {
	for _, d := range comp.deps {
		if d == h {
			return
		}
	}
	comp.deps = append(comp.deps, h)
}

func containsID(ids []uint64, id uint64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// removeID removes id from ids preserving order. Subscription order is
// externally observable, so no swap-with-last tricks here.
func removeID(ids []uint64, id uint64) []uint64 {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
