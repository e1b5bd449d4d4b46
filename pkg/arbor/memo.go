package arbor

// CreateMemo wraps derive as a computation whose result is itself a
// signal. Every upstream notification recomputes and unconditionally
// overwrites the internal value, notifying the memo's own subscribers.
//
// The derivation runs at most once per upstream notification; reads in
// between return the cached value.
func CreateMemo[T any](rt *Runtime, derive func() T) ReadSignal[T] {
	return CreateSelectorWith(rt, derive, func(T, T) bool { return false })
}

// CreateSelector is CreateSelectorWith specialized to native equality
// (== for comparable kinds, reflect.DeepEqual otherwise).
func CreateSelector[T any](rt *Runtime, derive func() T) ReadSignal[T] {
	return CreateSelectorWith(rt, derive, defaultEquals[T])
}

// CreateSelectorWith is CreateMemo with change suppression: after each
// recompute the new value is compared to the previous one with equals, and
// when they are equal the value is stored without re-running subscribers.
func CreateSelectorWith[T any](rt *Runtime, derive func() T, equals func(T, T) bool) ReadSignal[T] {
	return CreateEffectInitial(rt, func() (func(), ReadSignal[T]) {
		out := NewSignal(rt, derive())

		rerun := func() {
			next := derive()
			if equals(out.GetUntracked(), next) {
				rt.storeCell(out.h, next)
				return
			}
			out.MustSet(next)
		}

		return rerun, out.ReadOnly()
	})
}
