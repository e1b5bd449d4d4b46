package arbor

import "testing"

func TestMemoDerivesValue(t *testing.T) {
	rt := NewRuntime()

	state := NewSignal(rt, 0)
	double := CreateMemo(rt, func() int {
		return state.Get() * 2
	})

	if double.Get() != 0 {
		t.Errorf("expected 0, got %d", double.Get())
	}

	state.MustSet(1)
	if double.Get() != 2 {
		t.Errorf("expected 2, got %d", double.Get())
	}

	state.MustSet(2)
	if double.Get() != 4 {
		t.Errorf("expected 4, got %d", double.Get())
	}
}

func TestMemoComputesOncePerNotification(t *testing.T) {
	rt := NewRuntime()

	state := NewSignal(rt, 0)

	computations := 0
	double := CreateMemo(rt, func() int {
		computations++
		return state.Get() * 2
	})

	if computations != 1 {
		t.Fatalf("expected 1 computation for the initial value, got %d", computations)
	}

	state.MustSet(2)
	if computations != 2 {
		t.Errorf("expected 2 computations, got %d", computations)
	}

	// Reads between notifications return the cached snapshot.
	if double.Get() != 4 {
		t.Errorf("expected 4, got %d", double.Get())
	}
	if double.Get() != 4 {
		t.Errorf("expected 4, got %d", double.Get())
	}
	if computations != 2 {
		t.Errorf("reads must not recompute; expected 2 computations, got %d", computations)
	}
}

func TestMemoIsObservable(t *testing.T) {
	rt := NewRuntime()

	state := NewSignal(rt, 0)
	double := CreateMemo(rt, func() int {
		return state.Get() * 2
	})
	quadruple := CreateMemo(rt, func() int {
		return double.Get() * 2
	})

	if quadruple.Get() != 0 {
		t.Errorf("expected 0, got %d", quadruple.Get())
	}

	state.MustSet(1)
	if quadruple.Get() != 4 {
		t.Errorf("expected 4, got %d", quadruple.Get())
	}
}

func TestMemoUntrackedRead(t *testing.T) {
	rt := NewRuntime()

	state := NewSignal(rt, 1)
	double := CreateMemo(rt, func() int {
		return state.GetUntracked() * 2
	})

	if double.Get() != 2 {
		t.Errorf("expected 2, got %d", double.Get())
	}

	state.MustSet(2)
	if double.Get() != 2 {
		t.Errorf("untracked derivation must keep the stale value; got %d", double.Get())
	}
}

func TestSelectorSuppressesEqualValues(t *testing.T) {
	rt := NewRuntime()

	state := NewSignal(rt, 0)

	derivations := 0
	double := CreateSelector(rt, func() int {
		derivations++
		return state.Get() * 2
	})

	effectRuns := 0
	CreateEffect(rt, func() {
		effectRuns++
		_ = double.Get()
	})

	if double.Get() != 0 {
		t.Errorf("expected 0, got %d", double.Get())
	}
	if effectRuns != 1 {
		t.Fatalf("expected 1 effect run, got %d", effectRuns)
	}

	// Same value: the derivation itself re-runs, subscribers don't.
	state.MustSet(0)
	if derivations != 2 {
		t.Errorf("expected the derivation to re-run, got %d runs", derivations)
	}
	if effectRuns != 1 {
		t.Errorf("equal output must not re-notify; got %d effect runs", effectRuns)
	}

	state.MustSet(2)
	if double.Get() != 4 {
		t.Errorf("expected 4, got %d", double.Get())
	}
	if effectRuns != 2 {
		t.Errorf("expected 2 effect runs, got %d", effectRuns)
	}
}

func TestSelectorWithCustomEquality(t *testing.T) {
	rt := NewRuntime()

	state := NewSignal(rt, "go")

	effectRuns := 0
	length := CreateSelectorWith(rt, func() string {
		return state.Get()
	}, func(a, b string) bool {
		return len(a) == len(b)
	})

	CreateEffect(rt, func() {
		effectRuns++
		_ = length.Get()
	})

	// Same length: stored, not notified.
	state.MustSet("rs")
	if effectRuns != 1 {
		t.Errorf("expected 1 effect run, got %d", effectRuns)
	}
	if length.GetUntracked() != "rs" {
		t.Errorf("equal value must still be stored, got %q", length.GetUntracked())
	}

	state.MustSet("java")
	if effectRuns != 2 {
		t.Errorf("expected 2 effect runs, got %d", effectRuns)
	}
}
