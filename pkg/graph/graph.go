// Package graph renders runtime dependency snapshots for devtools:
// Graphviz DOT for visual inspection and JSON for programmatic consumers.
package graph

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/arbor-dev/arbor/pkg/arbor"
)

// DOT renders a snapshot as a Graphviz digraph. Cells are boxes (labelled
// with their name when one was set), computations are ellipses, and edges
// point from each cell to its subscribers in subscription order.
func DOT(snap arbor.Snapshot) string {
	var b strings.Builder

	b.WriteString("digraph arbor {\n")
	b.WriteString("  rankdir=LR;\n")

	for _, cell := range snap.Cells {
		label := cell.Name
		if label == "" {
			label = fmt.Sprintf("cell %d", cell.ID)
		}
		fmt.Fprintf(&b, "  c%d [shape=box, label=%q];\n", cell.ID, label)
	}
	for _, comp := range snap.Computations {
		fmt.Fprintf(&b, "  f%d [shape=ellipse, label=\"comp %d\"];\n", comp.ID, comp.ID)
	}
	for _, cell := range snap.Cells {
		for _, sub := range cell.Subscribers {
			fmt.Fprintf(&b, "  c%d -> f%d;\n", cell.ID, sub)
		}
	}

	b.WriteString("}\n")
	return b.String()
}

// JSON renders a snapshot as indented JSON.
func JSON(snap arbor.Snapshot) ([]byte, error) {
	return json.MarshalIndent(snap, "", "  ")
}
