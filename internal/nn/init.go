package nn

import (
	"math/rand"

	"github.com/born-ml/minigrad/internal/autodiff"
)

// Uniform draws a value from the open interval (-1, 1).
//
// A nil rng uses the package-level source from math/rand.
func Uniform(rng *rand.Rand) float64 {
	for {
		var u float64
		if rng != nil {
			u = rng.Float64()
		} else {
			//nolint:gosec // Using math/rand for weight initialization (not security-critical)
			u = rand.Float64()
		}
		// Float64 is in [0, 1); reject 0 so -1 is excluded.
		if u != 0 {
			return u*2 - 1
		}
	}
}

// uniform is Uniform converted to T. Narrowing to float32 can round values
// near the bounds onto ±1, so those are redrawn.
func uniform[T autodiff.Scalar](rng *rand.Rand) T {
	for {
		v := T(Uniform(rng))
		if v > -1 && v < 1 {
			return v
		}
	}
}

// uniformLeaves creates n leaf nodes initialized with uniform values.
func uniformLeaves[T autodiff.Scalar](n int, rng *rand.Rand) []*autodiff.Node[T] {
	leaves := make([]*autodiff.Node[T], n)
	for i := range leaves {
		leaves[i] = autodiff.New(uniform[T](rng))
	}
	return leaves
}
