package domain

import (
	"strconv"

	"go.trai.ch/zerr"
)

var (
	// ErrCyclicInteraction is raised when the plugin graph or the group
	// graph contains a cycle that cannot be resolved by sorting.
	ErrCyclicInteraction = zerr.New("cyclic interaction")

	// ErrUndefinedGroup is raised when a plugin references a group that is
	// not present in the merged masterlist+userlist group set.
	ErrUndefinedGroup = zerr.New("undefined group")

	// ErrConditionSyntax is raised on condition parse failure, or an
	// invalid path or regex referenced by a condition.
	ErrConditionSyntax = zerr.New("condition syntax error")

	// ErrFileAccess is raised when a filesystem operation fails in a way
	// the caller cannot proceed past.
	ErrFileAccess = zerr.New("file access error")
)

// CycleStep describes one vertex in a reported cycle, along with the edge
// type of the edge that led into it.
type CycleStep struct {
	Name        string
	IncomingEdge EdgeType
}

// NewCyclicInteractionError builds the error contract required by §6/§7:
// the ordered cycle plus the edge type that connects each consecutive pair.
func NewCyclicInteractionError(cycle []CycleStep) error {
	err := zerr.With(ErrCyclicInteraction, "cycle_length", len(cycle))
	for i, step := range cycle {
		err = zerr.With(err, keyForStep(i, "name"), step.Name)
		err = zerr.With(err, keyForStep(i, "edge_type"), step.IncomingEdge.String())
	}
	return err
}

func keyForStep(i int, field string) string {
	return "cycle." + strconv.Itoa(i) + "." + field
}
