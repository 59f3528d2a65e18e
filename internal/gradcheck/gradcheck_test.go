package gradcheck_test

import (
	"errors"
	"math"
	"testing"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/gradcheck"
	"github.com/born-ml/minigrad/internal/parallel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type node = autodiff.Node[float64]

// polynomial builds f(x) = x³ - 2x² + x from three copies of x.
func polynomial(in []*node) *node {
	x := in[0]
	x2 := x.Clone()
	x3 := x.Clone()
	cube := x.Pow(3)
	square := x2.Pow(2).Mul(autodiff.New(2.0))
	return cube.Sub(square).Add(x3)
}

// mixed builds relu(a*b + c) / b² - a, using every operation.
func mixed(in []*node) *node {
	a, b, c := in[0], in[1], in[2]
	a2, b2 := a.Clone(), b.Clone()
	hidden := a.Mul(b).Add(c).ReLU()
	return hidden.Div(b2.Pow(2)).Sub(a2)
}

// TestNumerical tests central differences on a closed-form function.
func TestNumerical(t *testing.T) {
	f := func(x []float64) float64 { return x[0]*x[0] + 3*x[1] }
	grads := gradcheck.Numerical(f, []float64{2, -1}, 1e-5)

	require.Len(t, grads, 2)
	assert.InDelta(t, 4, grads[0], 1e-6)
	assert.InDelta(t, 3, grads[1], 1e-6)
}

// TestEvaluate tests the analytic pass.
func TestEvaluate(t *testing.T) {
	value, grads, err := gradcheck.Evaluate(polynomial, []float64{2})
	require.NoError(t, err)

	// f(2) = 8 - 8 + 2; clones are independent, so only the cube's
	// contribution reaches the original leaf: 3x² = 12.
	assert.InDelta(t, 2, value, 1e-12)
	assert.InDelta(t, 12, grads[0], 1e-12)
}

// TestCheck_Passes tests an expression with one use per input.
func TestCheck_Passes(t *testing.T) {
	build := func(in []*node) *node {
		return in[0].Mul(in[1]).Add(in[2].Pow(2)).Div(in[3])
	}

	report, err := gradcheck.Check(build, []float64{1.5, -2, 3, 0.5}, gradcheck.Config{})
	require.NoError(t, err)

	assert.InDelta(t, (1.5*-2+9)/0.5, report.Value, 1e-12)
	require.Len(t, report.Analytic, 4)
	for i := range report.Analytic {
		assert.InDelta(t, report.Numerical[i], report.Analytic[i], 1e-4, "input %d", i)
	}
	assert.LessOrEqual(t, report.MaxError, 1e-4)
}

// TestCheck_Mixed tests every combinator away from the ReLU kink.
func TestCheck_Mixed(t *testing.T) {
	build := func(in []*node) *node {
		return in[0].Mul(in[1]).Add(in[2]).ReLU().Div(in[3].Pow(2)).Sub(in[4]).Neg()
	}

	_, err := gradcheck.Check(build, []float64{1.2, 0.7, 0.3, 1.5, -0.4}, gradcheck.DefaultConfig())
	assert.NoError(t, err)
}

// TestCheck_CloneMismatch tests that reusing a value through Clone is caught:
// the copies do not share gradient accumulation.
func TestCheck_CloneMismatch(t *testing.T) {
	_, err := gradcheck.Check(mixed, []float64{1.2, 0.7, 0.3}, gradcheck.DefaultConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, gradcheck.ErrGradientMismatch)

	var mismatch *gradcheck.MismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, 0, mismatch.Index)
	assert.Contains(t, err.Error(), "gradient mismatch")
}

// TestCheck_NilOutput tests a builder that returns nothing.
func TestCheck_NilOutput(t *testing.T) {
	_, err := gradcheck.Check(func([]*node) *node { return nil }, []float64{1}, gradcheck.Config{})
	assert.ErrorIs(t, err, gradcheck.ErrNilOutput)
}

// TestCheck_BuilderPanic tests that ownership misuse is reported as an error.
func TestCheck_BuilderPanic(t *testing.T) {
	square := func(in []*node) *node { return in[0].Mul(in[0]) }

	_, err := gradcheck.Check(square, []float64{3}, gradcheck.Config{})
	require.Error(t, err)
	assert.ErrorIs(t, err, gradcheck.ErrBuilderPanic)
	assert.Contains(t, err.Error(), autodiff.ErrNodeConsumed.Error())
}

// TestCheck_NaN tests that a NaN gradient counts as a mismatch.
func TestCheck_NaN(t *testing.T) {
	build := func(in []*node) *node { return in[0].Pow(0.5) }

	report, err := gradcheck.Check(build, []float64{-4}, gradcheck.Config{})
	assert.ErrorIs(t, err, gradcheck.ErrGradientMismatch)
	assert.True(t, math.IsNaN(report.Analytic[0]))
}

// TestCheckBatch tests fan-out over many points.
func TestCheckBatch(t *testing.T) {
	build := func(in []*node) *node {
		return in[0].Mul(in[1]).Add(in[2]).ReLU()
	}
	points := make([][]float64, 50)
	for i := range points {
		f := float64(i + 1)
		points[i] = []float64{f / 10, 1 + f/50, 0.5}
	}

	cfg := gradcheck.DefaultConfig()
	cfg.Parallel = parallel.Config{Enabled: true, NumWorkers: 4}

	reports, err := gradcheck.CheckBatch(build, points, cfg)
	require.NoError(t, err)
	require.Len(t, reports, len(points))
	for i, r := range reports {
		assert.Equal(t, points[i], r.Point)
		assert.InDelta(t, points[i][1], r.Analytic[0], 1e-12, "point %d", i)
	}
}

// TestCheckBatch_ReportsFailures tests that every failing point is reported.
func TestCheckBatch_ReportsFailures(t *testing.T) {
	points := [][]float64{{1.2, 0.7, 0.3}, {1.0, 2.0, 0.5}}

	_, err := gradcheck.CheckBatch(mixed, points, gradcheck.Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "point 0:")
	assert.Contains(t, err.Error(), "point 1:")
}
