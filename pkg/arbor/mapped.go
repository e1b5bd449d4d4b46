package arbor

// MapKeyed incrementally maps a reactive sequence, reusing per-item
// computation state across updates. It returns a closure meant to be
// invoked inside a tracked computation: the closure reads list (tracked),
// diffs it against the previous sequence and returns the mapped outputs in
// order. All bookkeeping reads are untracked.
//
// Identity is the item's own value: items that compare equal are treated
// as interchangeable, and equal-valued duplicates match in stable
// left-to-right order (the first unmatched old occurrence pairs with the
// first new occurrence). Each freshly mapped item runs inside its own root
// scope, which is disposed when the item leaves the sequence.
//
// Complexity is O(n) for appends, removals and no-op updates, and a single
// O(n) pass for arbitrary permutations.
//
// Ported from the keyed array mapping in SolidJS.
func MapKeyed[T comparable, U any](rt *Runtime, list ReadSignal[[]T], mapFn func(T) U) func() []U {
	// Previous state used for diffing.
	var items []T
	var mapped []U
	var scopes []*Owner

	mapFresh := func(item T) (U, *Owner) {
		var out U
		scope := rt.CreateRoot(func() {
			out = mapFn(item)
		})
		return out, scope
	}

	return func() []U {
		newItems := list.Get() // Subscribe to list.
		rt.Untrack(func() {
			switch {
			case len(newItems) == 0:
				// Fast path for removing all items.
				for _, scope := range scopes {
					scope.Dispose()
				}
				items, mapped, scopes = nil, nil, nil

			case len(items) == 0:
				// Fast path for a fresh create.
				newMapped := make([]U, len(newItems))
				newScopes := make([]*Owner, len(newItems))
				for i, item := range newItems {
					newMapped[i], newScopes[i] = mapFresh(item)
				}
				items = append([]T(nil), newItems...)
				mapped, scopes = newMapped, newScopes

			default:
				oldN, newN := len(items), len(newItems)

				// Skip common prefix.
				start := 0
				for start < oldN && start < newN && items[start] == newItems[start] {
					start++
				}

				// Skip common suffix.
				oldEnd, newEnd := oldN, newN
				for oldEnd > start && newEnd > start && items[oldEnd-1] == newItems[newEnd-1] {
					oldEnd--
					newEnd--
				}

				// Index the remaining new range by value, scanning
				// backwards so duplicates chain to their next earlier
				// occurrence and hand out positions left to right.
				newIndices := make(map[T]int, newEnd-start)
				next := make([]int, newEnd)
				for i := newEnd - 1; i >= start; i-- {
					item := newItems[i]
					if j, ok := newIndices[item]; ok {
						next[i] = j
					} else {
						next[i] = -1
					}
					newIndices[item] = i
				}

				// Match old items against the index; matched outputs move
				// to their new position, the rest become stale.
				moveOut := make([]U, newN)
				moveScope := make([]*Owner, newN)
				var stale []*Owner
				for i := start; i < oldEnd; i++ {
					item := items[i]
					if j, ok := newIndices[item]; ok && j >= 0 {
						moveOut[j] = mapped[i]
						moveScope[j] = scopes[i]
						newIndices[item] = next[j]
					} else {
						stale = append(stale, scopes[i])
					}
				}

				// Assemble the new arrays: reused prefix and suffix slot
				// straight in, moved items from the match step, everything
				// still unfilled is mapped fresh.
				newMapped := make([]U, newN)
				newScopes := make([]*Owner, newN)
				copy(newMapped, mapped[:start])
				copy(newScopes, scopes[:start])
				copy(newMapped[newEnd:], mapped[oldEnd:])
				copy(newScopes[newEnd:], scopes[oldEnd:])
				for i := start; i < newEnd; i++ {
					if moveScope[i] != nil {
						newMapped[i], newScopes[i] = moveOut[i], moveScope[i]
					} else {
						newMapped[i], newScopes[i] = mapFresh(newItems[i])
					}
				}

				// Every mapFn call succeeded; now it is safe to drop the
				// unmatched scopes and overwrite the baseline.
				for _, scope := range stale {
					scope.Dispose()
				}
				items = append([]T(nil), newItems...)
				mapped, scopes = newMapped, newScopes
			}
		})

		return append([]U(nil), mapped...)
	}
}

// MapIndexed incrementally maps a reactive sequence with position as
// identity: the item at index i is remapped only when it differs from the
// previous item at i, and its old scope is disposed (no cross-position
// reuse). Shrinking truncates trailing scopes and outputs. The right
// default when positional identity is the only meaningful identity or
// remapping is cheap.
//
// Like MapKeyed, the returned closure is meant to be invoked inside a
// tracked computation and keeps its bookkeeping reads untracked.
func MapIndexed[T comparable, U any](rt *Runtime, list ReadSignal[[]T], mapFn func(T) U) func() []U {
	// Previous state used for diffing.
	var items []T
	var mapped []U
	var scopes []*Owner

	mapFresh := func(item T) (U, *Owner) {
		var out U
		scope := rt.CreateRoot(func() {
			out = mapFn(item)
		})
		return out, scope
	}

	return func() []U {
		newItems := list.Get() // Subscribe to list.
		rt.Untrack(func() {
			newN := len(newItems)

			newMapped := make([]U, newN)
			newScopes := make([]*Owner, newN)
			var stale []*Owner

			for i, item := range newItems {
				switch {
				case i >= len(items):
					newMapped[i], newScopes[i] = mapFresh(item)
				case items[i] != item:
					stale = append(stale, scopes[i])
					newMapped[i], newScopes[i] = mapFresh(item)
				default:
					newMapped[i], newScopes[i] = mapped[i], scopes[i]
				}
			}
			// Trailing items from a longer previous sequence go away.
			for i := newN; i < len(scopes); i++ {
				stale = append(stale, scopes[i])
			}

			for _, scope := range stale {
				scope.Dispose()
			}
			items = append([]T(nil), newItems...)
			mapped, scopes = newMapped, newScopes
		})

		return append([]U(nil), mapped...)
	}
}
