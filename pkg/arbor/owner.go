package arbor

// Owner is a disposal scope. Computations and signal cells created while
// an owner is current are recorded on it; disposing the owner unsubscribes
// the computations from all their dependency edges, frees the cells, runs
// registered cleanups and recursively disposes child owners.
//
// Owners form a tree mirroring the structure of the code that created
// them: an owner created while another is current becomes its child.
type Owner struct {
	rt     *Runtime
	parent *Owner

	children []*Owner
	comps    []*computation
	cells    []handle
	cleanups []func()

	disposed bool
}

// CreateRoot runs fn with a new owner as the current scope and returns the
// owner for later disposal. If another owner is current, the new one is
// linked under it so disposing an ancestor disposes the whole subtree.
func (rt *Runtime) CreateRoot(fn func()) *Owner {
	o := &Owner{rt: rt, parent: rt.owner}
	if o.parent != nil {
		o.parent.children = append(o.parent.children, o)
	}

	prev := rt.owner
	rt.owner = o
	defer func() { rt.owner = prev }()

	fn()
	return o
}

// OnCleanup registers fn to run when the current scope is disposed.
// Without a current scope the callback can never fire and is dropped.
func (rt *Runtime) OnCleanup(fn func()) {
	if rt.owner != nil {
		rt.owner.OnCleanup(fn)
	}
}

// OnCleanup registers a cleanup callback on this owner. If the owner is
// already disposed the callback runs immediately.
func (o *Owner) OnCleanup(fn func()) {
	if o.disposed {
		fn()
		return
	}
	o.cleanups = append(o.cleanups, fn)
}

// IsDisposed reports whether Dispose has been called.
func (o *Owner) IsDisposed() bool {
	return o.disposed
}

// Parent returns the parent owner, or nil for a root.
func (o *Owner) Parent() *Owner {
	return o.parent
}

// Dispose tears down this owner: children are disposed in reverse creation
// order, then cleanups run, computations are detached from every
// dependency edge and cells are freed. Disposing twice is a no-op.
func (o *Owner) Dispose() {
	if o.disposed {
		return
	}
	o.disposed = true

	children := o.children
	o.children = nil
	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}

	for i := len(o.cleanups) - 1; i >= 0; i-- {
		o.cleanups[i]()
	}
	o.cleanups = nil

	for _, comp := range o.comps {
		o.rt.disposeComputation(comp)
	}
	o.comps = nil

	for _, h := range o.cells {
		o.rt.freeCell(h)
	}
	o.cells = nil

	// When an ancestor is mid-dispose it has already detached its child
	// list; only a standalone dispose needs to unlink.
	if o.parent != nil && !o.parent.disposed {
		o.parent.removeChild(o)
	}
	o.parent = nil
}

func (o *Owner) registerComputation(comp *computation) {
	o.comps = append(o.comps, comp)
}

func (o *Owner) registerCell(h handle) {
	o.cells = append(o.cells, h)
}

func (o *Owner) removeChild(child *Owner) {
	for i, c := range o.children {
		if c == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			return
		}
	}
}
