package wfc

import (
	"errors"
	"fmt"
)

var (
	ErrNoUndecidedCell = errors.New("wfc: no undecided cell")
	ErrContradiction   = errors.New("wfc: contradiction - no valid tiles for cell")
	ErrInvalidSize     = errors.New("wfc: invalid grid size")
	ErrOutOfBounds     = errors.New("wfc: cell out of bounds")
)

// Phase names the engine operation that emptied a candidate set.
type Phase string

const (
	PhaseSelect    Phase = "select"
	PhaseBoundary  Phase = "boundary"
	PhasePropagate Phase = "propagate"
)

// ContradictionError reports the cell whose candidate set became empty.
type ContradictionError struct {
	Row, Col int
	Phase    Phase
}

func (e *ContradictionError) Error() string {
	return fmt.Sprintf("wfc: contradiction at (%d,%d) during %s", e.Row, e.Col, e.Phase)
}

// Unwrap lets errors.Is match ErrContradiction.
func (e *ContradictionError) Unwrap() error { return ErrContradiction }
