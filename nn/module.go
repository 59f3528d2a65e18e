// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/minigrad/autodiff"
	"github.com/born-ml/minigrad/internal/nn"
)

// Module is implemented by Neuron, Layer and MLP.
type Module[T autodiff.Scalar] = nn.Module[T]

// Neuron owns weights and a bias.
type Neuron[T autodiff.Scalar] = nn.Neuron[T]

// Layer owns neurons of equal input arity.
type Layer[T autodiff.Scalar] = nn.Layer[T]

// MLP owns a stack of layers.
type MLP[T autodiff.Scalar] = nn.MLP[T]

// TopologyError describes rejected MLP widths.
type TopologyError = nn.TopologyError

// ErrInvalidTopology is wrapped by every error from NewMLP.
var ErrInvalidTopology = nn.ErrInvalidTopology

// NewNeuron creates a neuron with nin weights.
func NewNeuron[T autodiff.Scalar](nin int, nonLinear bool, rng *rand.Rand) *Neuron[T] {
	return nn.NewNeuron[T](nin, nonLinear, rng)
}

// NewLayer creates a layer mapping nin inputs to nout outputs.
func NewLayer[T autodiff.Scalar](nin, nout int, nonLinear bool, rng *rand.Rand) *Layer[T] {
	return nn.NewLayer[T](nin, nout, nonLinear, rng)
}

// NewMLP creates an MLP from layer widths.
//
// Returns an error wrapping ErrInvalidTopology for fewer than two widths or
// a non-positive width.
func NewMLP[T autodiff.Scalar](widths []int, rng *rand.Rand) (*MLP[T], error) {
	return nn.NewMLP[T](widths, rng)
}

// Collect returns the parameters of m as a slice.
func Collect[T autodiff.Scalar](m Module[T]) []*autodiff.Node[T] {
	return nn.Collect(m)
}
