// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over scalars.
//
// Nodes are combined with Add, Mul, ReLU, Pow, Neg, Sub and Div. Each
// combinator consumes its operands, so an expression is always a tree and
// Backward visits every node exactly once.
//
// Example:
//
//	import "github.com/born-ml/minigrad/autodiff"
//
//	func main() {
//	    a := autodiff.New(2.0)
//	    b := autodiff.New(-3.0)
//	    c := autodiff.New(10.0)
//	    f := autodiff.New(-2.0)
//
//	    g := a.Mul(b).Add(c).Mul(f) // a, b, c and f are now owned by g
//	    g.Backward()
//
//	    fmt.Println(a.Grad(), b.Grad()) // 6 -4
//	}
//
// Reusing a consumed node panics with ErrNodeConsumed. Clone a node first to
// use its value in two places; the copies accumulate gradients separately.
package autodiff

import (
	"github.com/born-ml/minigrad/internal/autodiff"
)

// Scalar is the constraint on node value types (float32 or float64).
type Scalar = autodiff.Scalar

// Node is a scalar value with its gradient and origin.
type Node[T Scalar] = autodiff.Node[T]

// Op identifies the operation that produced a node.
type Op = autodiff.Op

// Operations.
const (
	OpLeaf = autodiff.OpLeaf
	OpAdd  = autodiff.OpAdd
	OpMul  = autodiff.OpMul
	OpReLU = autodiff.OpReLU
	OpPow  = autodiff.OpPow
)

// Errors carried by engine panics.
var (
	ErrNodeConsumed = autodiff.ErrNodeConsumed
	ErrNilNode      = autodiff.ErrNilNode
)

// New creates a leaf node with a zero gradient.
func New[T Scalar](value T) *Node[T] {
	return autodiff.New(value)
}
