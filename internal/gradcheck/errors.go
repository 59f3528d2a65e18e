package gradcheck

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrGradientMismatch = errors.New("gradient mismatch")
	ErrNilOutput        = errors.New("builder returned nil")
	ErrBuilderPanic     = errors.New("builder panicked")
)

// MismatchError reports the first input whose analytic gradient disagrees
// with the finite-difference estimate.
type MismatchError struct {
	Point     []float64 // Evaluation point
	Index     int       // Input coordinate
	Analytic  float64   // Gradient from Backward
	Numerical float64   // Central-difference estimate
	RelError  float64   // |Analytic-Numerical| / max(1, |Analytic|, |Numerical|)
}

// Error implements the error interface.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s at %v: input %d: analytic %g, numerical %g (relative error %g)",
		ErrGradientMismatch, e.Point, e.Index, e.Analytic, e.Numerical, e.RelError)
}

// Unwrap allows errors.Is(err, ErrGradientMismatch).
func (e *MismatchError) Unwrap() error {
	return ErrGradientMismatch
}
