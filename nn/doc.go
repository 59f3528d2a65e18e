// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neurons, layers and multilayer perceptrons whose
// parameters are autodiff leaf nodes.
//
// # Overview
//
// This package contains:
//   - Neuron: weights in (-1, 1) and a zero bias
//   - Layer: neurons with a shared input arity
//   - MLP: layers built from widths [n0, n1, ..., nk]; all but the last use ReLU
//   - Module: Parameters and ZeroGrad across all of the above
//
// # Basic Usage
//
//	import (
//	    "math/rand"
//
//	    "github.com/born-ml/minigrad/nn"
//	)
//
//	func main() {
//	    model, err := nn.NewMLP[float64]([]int{3, 4, 4, 1}, rand.New(rand.NewSource(1)))
//	    if err != nil {
//	        log.Fatal(err) // errors.Is(err, nn.ErrInvalidTopology)
//	    }
//
//	    for p := range model.Parameters() {
//	        fmt.Println(p.Value())
//	    }
//	    model.ZeroGrad()
//	}
//
// # Parameter order
//
// Parameters are enumerated weights-then-bias within a neuron, neuron by
// neuron within a layer, and layer by layer within an MLP. The order only
// depends on the widths, so it is identical across runs.
package nn
