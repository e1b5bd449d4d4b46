package arbor

// CreateEffect registers body as a tracked computation and runs it once
// immediately to discover its dependencies. The body re-runs synchronously
// whenever any signal it read during its last run is written. Dependencies
// are rebuilt from scratch on every run, so a signal read only under some
// condition stops triggering re-runs as soon as a run no longer reads it.
//
// The effect is owned by the current scope and stops re-running when that
// scope is disposed.
func CreateEffect(rt *Runtime, body func()) {
	comp := rt.newComputation(body)
	rt.runComputation(comp)
}

// CreateEffectInitial is CreateEffect with a distinguished first run:
// initial is executed once under tracking and returns both the re-run
// callback used for every subsequent notification and a result value
// handed back to the caller. This lets a computation expose a constructed
// result from its first run while remaining reactive afterwards; the list
// reconcilers and memos are built on it.
func CreateEffectInitial[R any](rt *Runtime, initial func() (rerun func(), result R)) R {
	comp := rt.newComputation(nil)

	depth := len(rt.stack)
	rt.stack = append(rt.stack, comp)
	defer func() {
		if len(rt.stack) != depth+1 {
			panic("arbor: tracking stack depth changed during computation run")
		}
		rt.stack = rt.stack[:depth]
	}()

	rerun, result := initial()
	comp.body = rerun
	rt.attach(comp)

	return result
}
