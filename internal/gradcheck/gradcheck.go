// Package gradcheck verifies autodiff gradients against finite differences.
//
// Expression nodes are consumed when combined, so a Builder is invoked once
// per evaluation with fresh leaves: once for the analytic pass and twice per
// input for the central differences.
package gradcheck

import (
	"fmt"
	"math"
	"slices"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/parallel"
)

// Builder builds an expression over the given leaves and returns its root.
// It must only combine the leaves it is handed and constants it creates.
type Builder func(inputs []*autodiff.Node[float64]) *autodiff.Node[float64]

// Config holds configuration for gradient checks.
type Config struct {
	Epsilon   float64         // Finite-difference step (default: 1e-6)
	Tolerance float64         // Maximum relative error (default: 1e-4)
	Parallel  parallel.Config // Fan-out for CheckBatch
}

// DefaultConfig returns the default step, tolerance and parallelism.
func DefaultConfig() Config {
	return Config{
		Epsilon:   1e-6,
		Tolerance: 1e-4,
		Parallel:  parallel.DefaultConfig(),
	}
}

// Report is the outcome of one check.
type Report struct {
	Point     []float64
	Value     float64   // Output at Point
	Analytic  []float64 // Gradients from Backward
	Numerical []float64 // Central-difference estimates
	MaxError  float64   // Largest relative error over all inputs
}

// Numerical estimates the gradient of f at x with central differences.
func Numerical(f func([]float64) float64, x []float64, eps float64) []float64 {
	grads := make([]float64, len(x))
	probe := slices.Clone(x)
	for i := range x {
		probe[i] = x[i] + eps
		plus := f(probe)
		probe[i] = x[i] - eps
		minus := f(probe)
		probe[i] = x[i]
		grads[i] = (plus - minus) / (2 * eps)
	}
	return grads
}

// Evaluate builds the expression at x, runs Backward and returns the output
// value together with the gradient of every input.
func Evaluate(build Builder, x []float64) (value float64, grads []float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrBuilderPanic, r)
		}
	}()

	leaves := make([]*autodiff.Node[float64], len(x))
	for i, v := range x {
		leaves[i] = autodiff.New(v)
	}
	root := build(leaves)
	if root == nil {
		return 0, nil, ErrNilOutput
	}
	root.Backward()

	grads = make([]float64, len(leaves))
	for i, l := range leaves {
		grads[i] = l.Grad()
	}
	return root.Value(), grads, nil
}

// Check compares the analytic and numerical gradients of build at x.
//
// Returns a *MismatchError (wrapping ErrGradientMismatch) for the first input
// whose relative error exceeds cfg.Tolerance. The report is filled in either way.
func Check(build Builder, x []float64, cfg Config) (Report, error) {
	cfg = withDefaults(cfg)
	report := Report{Point: slices.Clone(x)}

	value, analytic, err := Evaluate(build, x)
	if err != nil {
		return report, err
	}
	report.Value = value
	report.Analytic = analytic

	var evalErr error
	report.Numerical = Numerical(func(p []float64) float64 {
		v, _, err := Evaluate(build, p)
		if err != nil && evalErr == nil {
			evalErr = err
		}
		return v
	}, x, cfg.Epsilon)
	if evalErr != nil {
		return report, evalErr
	}

	var mismatch *MismatchError
	for i := range analytic {
		rel := relError(analytic[i], report.Numerical[i])
		if rel > report.MaxError || math.IsNaN(rel) {
			report.MaxError = rel
		}
		if mismatch == nil && !(rel <= cfg.Tolerance) {
			mismatch = &MismatchError{
				Point:     report.Point,
				Index:     i,
				Analytic:  analytic[i],
				Numerical: report.Numerical[i],
				RelError:  rel,
			}
		}
	}
	if mismatch != nil {
		return report, mismatch
	}
	return report, nil
}

// CheckBatch runs Check at every point, fanned out per cfg.Parallel.
// Reports are returned in point order; the error joins every failure.
func CheckBatch(build Builder, points [][]float64, cfg Config) ([]Report, error) {
	cfg = withDefaults(cfg)
	reports := make([]Report, len(points))
	err := parallel.ForErr(len(points), func(i int) error {
		r, err := Check(build, points[i], cfg)
		reports[i] = r
		if err != nil {
			return fmt.Errorf("point %d: %w", i, err)
		}
		return nil
	}, cfg.Parallel)
	return reports, err
}

func withDefaults(cfg Config) Config {
	def := DefaultConfig()
	if cfg.Epsilon == 0 {
		cfg.Epsilon = def.Epsilon
	}
	if cfg.Tolerance == 0 {
		cfg.Tolerance = def.Tolerance
	}
	return cfg
}

// relError is |a-n| / max(1, |a|, |n|).
func relError(a, n float64) float64 {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(n)))
	return math.Abs(a-n) / scale
}
