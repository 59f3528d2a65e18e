// Package nn implements parameterized modules built from autodiff nodes.
//
// This package provides:
//   - Module interface: uniform parameter enumeration and gradient zeroing
//   - Neuron: weights plus a bias, optionally followed by ReLU
//   - Layer: neurons sharing the same input arity
//   - MLP: a stack of layers built from a list of widths
//
// Parameters are autodiff leaf nodes owned by the module. Enumeration order
// is fixed by construction: weights then bias within a neuron, neuron-major
// within a layer, layer-major within an MLP.
package nn

import (
	"iter"

	"github.com/born-ml/minigrad/internal/autodiff"
)

// Module is the interface shared by Neuron, Layer and MLP.
//
// Type parameter T is the scalar type of the parameters.
type Module[T autodiff.Scalar] interface {
	// Parameters returns every owned parameter in a stable order.
	//
	// The sequence is lazy and can be ranged over any number of times.
	Parameters() iter.Seq[*autodiff.Node[T]]

	// ZeroGrad resets the gradient of every owned parameter to zero.
	ZeroGrad()

	// NumParameters returns the number of owned parameters.
	NumParameters() int
}

// zeroGrad resets every parameter yielded by m.
func zeroGrad[T autodiff.Scalar](m Module[T]) {
	for p := range m.Parameters() {
		p.ZeroGrad()
	}
}

// Collect returns the parameters of m as a slice.
func Collect[T autodiff.Scalar](m Module[T]) []*autodiff.Node[T] {
	params := make([]*autodiff.Node[T], 0, m.NumParameters())
	for p := range m.Parameters() {
		params = append(params, p)
	}
	return params
}
