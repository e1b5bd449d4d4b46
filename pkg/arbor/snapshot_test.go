package arbor

import "testing"

func TestSnapshotCapturesGraph(t *testing.T) {
	rt := NewRuntime()

	a := NewSignal(rt, 1).Named("a")
	b := NewSignal(rt, 2).Named("b")

	CreateEffect(rt, func() {
		_ = a.Get()
		_ = b.Get()
	})

	snap := rt.Snapshot()

	if len(snap.Cells) != 2 {
		t.Fatalf("expected 2 cells, got %d", len(snap.Cells))
	}
	if snap.Cells[0].Name != "a" || snap.Cells[1].Name != "b" {
		t.Errorf("expected cells [a b], got [%s %s]", snap.Cells[0].Name, snap.Cells[1].Name)
	}
	if len(snap.Computations) != 1 {
		t.Fatalf("expected 1 computation, got %d", len(snap.Computations))
	}

	comp := snap.Computations[0]
	if len(comp.Dependencies) != 2 {
		t.Fatalf("expected 2 dependencies, got %d", len(comp.Dependencies))
	}
	if comp.Dependencies[0] != snap.Cells[0].ID || comp.Dependencies[1] != snap.Cells[1].ID {
		t.Errorf("expected dependencies on a and b, got %v", comp.Dependencies)
	}
	for _, cell := range snap.Cells {
		if len(cell.Subscribers) != 1 || cell.Subscribers[0] != comp.ID {
			t.Errorf("expected cell %s to have the effect subscribed, got %v", cell.Name, cell.Subscribers)
		}
	}
}

func TestSnapshotOmitsDisposed(t *testing.T) {
	rt := NewRuntime()

	_ = NewSignal(rt, "kept")
	owner := rt.CreateRoot(func() {
		_ = NewSignal(rt, "dropped")
	})
	owner.Dispose()

	snap := rt.Snapshot()
	if len(snap.Cells) != 1 {
		t.Errorf("expected 1 live cell, got %d", len(snap.Cells))
	}
}
