package nn

import (
	"errors"
	"fmt"
)

// ErrInvalidTopology is returned when an MLP cannot be built from the
// requested layer widths.
var ErrInvalidTopology = errors.New("invalid topology")

// TopologyError describes why a list of widths was rejected.
type TopologyError struct {
	Widths []int  // Widths as passed by the caller
	Reason string // Human-readable cause
}

// Error implements the error interface.
func (e *TopologyError) Error() string {
	return fmt.Sprintf("%s: widths %v: %s", ErrInvalidTopology, e.Widths, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidTopology).
func (e *TopologyError) Unwrap() error {
	return ErrInvalidTopology
}
