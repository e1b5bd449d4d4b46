package arbor

import "testing"

func TestOwnerDisposeUnsubscribesEffects(t *testing.T) {
	rt := NewRuntime()

	state := NewSignal(rt, 0)

	runs := 0
	owner := rt.CreateRoot(func() {
		CreateEffect(rt, func() {
			_ = state.Get()
			runs++
		})
	})

	state.MustSet(1)
	if runs != 2 {
		t.Fatalf("expected 2 runs before dispose, got %d", runs)
	}

	owner.Dispose()

	state.MustSet(2)
	if runs != 2 {
		t.Errorf("disposed effect must not re-run; got %d runs", runs)
	}
}

func TestOwnerRunsCleanups(t *testing.T) {
	rt := NewRuntime()

	var order []string
	owner := rt.CreateRoot(func() {
		rt.OnCleanup(func() { order = append(order, "first") })
		rt.OnCleanup(func() { order = append(order, "second") })
	})

	if len(order) != 0 {
		t.Fatal("cleanups must not run before dispose")
	}

	owner.Dispose()

	// Reverse registration order, mirroring child disposal.
	if len(order) != 2 || order[0] != "second" || order[1] != "first" {
		t.Errorf("expected [second first], got %v", order)
	}
}

func TestOwnerDisposesChildren(t *testing.T) {
	rt := NewRuntime()

	var child *Owner
	parent := rt.CreateRoot(func() {
		child = rt.CreateRoot(func() {})
	})

	parent.Dispose()

	if !child.IsDisposed() {
		t.Error("disposing the parent must dispose the child")
	}
}

func TestOwnerDisposeIsIdempotent(t *testing.T) {
	rt := NewRuntime()

	cleanups := 0
	owner := rt.CreateRoot(func() {
		rt.OnCleanup(func() { cleanups++ })
	})

	owner.Dispose()
	owner.Dispose()

	if cleanups != 1 {
		t.Errorf("expected 1 cleanup, got %d", cleanups)
	}
}

func TestOwnerCleanupAfterDisposeRunsImmediately(t *testing.T) {
	rt := NewRuntime()

	owner := rt.CreateRoot(func() {})
	owner.Dispose()

	ran := false
	owner.OnCleanup(func() { ran = true })

	if !ran {
		t.Error("cleanup registered after dispose must run immediately")
	}
}

func TestOwnerChildDisposeUnlinksFromParent(t *testing.T) {
	rt := NewRuntime()

	cleanups := 0
	var child *Owner
	parent := rt.CreateRoot(func() {
		child = rt.CreateRoot(func() {
			rt.OnCleanup(func() { cleanups++ })
		})
	})

	child.Dispose()
	parent.Dispose()

	if cleanups != 1 {
		t.Errorf("expected the child cleanup to run once, got %d", cleanups)
	}
}

func TestSignalPanicsAfterScopeDisposal(t *testing.T) {
	rt := NewRuntime()

	var state Signal[int]
	owner := rt.CreateRoot(func() {
		state = NewSignal(rt, 1)
	})
	owner.Dispose()

	defer func() {
		if recover() == nil {
			t.Error("expected use-after-dispose to panic")
		}
	}()

	_ = state.Get()
}

func TestOwnerDisposeFreesCellsForReuse(t *testing.T) {
	rt := NewRuntime()

	owner := rt.CreateRoot(func() {
		_ = NewSignal(rt, "transient")
	})
	slots := len(rt.cells)
	owner.Dispose()

	// A fresh signal reuses the freed arena slot.
	_ = NewSignal(rt, "fresh")
	if len(rt.cells) != slots {
		t.Errorf("expected arena to stay at %d slots, got %d", slots, len(rt.cells))
	}
}
