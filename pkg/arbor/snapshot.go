package arbor

import "sort"

// CellInfo describes one live value cell in a Snapshot.
type CellInfo struct {
	// ID is the cell's stable identifier.
	ID uint64 `json:"id"`

	// Name is the debug label set via Named, or empty.
	Name string `json:"name,omitempty"`

	// Subscribers lists subscribed computation IDs in subscription order.
	Subscribers []uint64 `json:"subscribers,omitempty"`
}

// ComputationInfo describes one live computation in a Snapshot.
type ComputationInfo struct {
	// ID is the computation's stable identifier.
	ID uint64 `json:"id"`

	// Dependencies lists the cell IDs read during the last run.
	Dependencies []uint64 `json:"dependencies,omitempty"`
}

// Snapshot is a point-in-time dump of the dependency graph, intended for
// devtools. See the graph package for DOT and JSON renderings.
type Snapshot struct {
	Cells        []CellInfo        `json:"cells"`
	Computations []ComputationInfo `json:"computations"`
}

// Snapshot captures the current dependency graph. Output is deterministic:
// cells and computations are ordered by ID.
func (rt *Runtime) Snapshot() Snapshot {
	var snap Snapshot

	for i := range rt.cells {
		c := &rt.cells[i]
		if !c.live {
			continue
		}
		snap.Cells = append(snap.Cells, CellInfo{
			ID:          c.id,
			Name:        c.name,
			Subscribers: append([]uint64(nil), c.subs...),
		})
	}
	sort.Slice(snap.Cells, func(i, j int) bool { return snap.Cells[i].ID < snap.Cells[j].ID })

	for _, comp := range rt.comps {
		info := ComputationInfo{ID: comp.id}
		for _, h := range comp.deps {
			if c := rt.lookup(h); c != nil {
				info.Dependencies = append(info.Dependencies, c.id)
			}
		}
		snap.Computations = append(snap.Computations, info)
	}
	sort.Slice(snap.Computations, func(i, j int) bool { return snap.Computations[i].ID < snap.Computations[j].ID })

	return snap
}
