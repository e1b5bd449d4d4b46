package arbor

import (
	"errors"
	"fmt"
)

// ErrCyclicDependency is the sentinel matched by errors.Is for writes
// rejected because the target signal is mid-notification on the calling
// stack. Such a write would re-enter its own notification chain and loop
// forever, so it fails immediately instead.
var ErrCyclicDependency = errors.New("arbor: cyclic dependency")

// CycleError reports a rejected re-entrant write. The host decides whether
// to recover or abort; the engine never drops the error silently.
type CycleError struct {
	// Cell is the ID of the signal cell whose write was rejected.
	Cell uint64

	// Name is the cell's debug label, if one was set via Named.
	Name string
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("arbor: cyclic dependency: write to signal %q (cell %d) during its own notification", e.Name, e.Cell)
	}
	return fmt.Sprintf("arbor: cyclic dependency: write to cell %d during its own notification", e.Cell)
}

// Unwrap returns ErrCyclicDependency for errors.Is support.
func (e *CycleError) Unwrap() error {
	return ErrCyclicDependency
}
