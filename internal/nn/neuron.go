package nn

import (
	"fmt"
	"iter"
	"math/rand"

	"github.com/born-ml/minigrad/internal/autodiff"
)

// Neuron owns a fixed number of weights and one bias.
//
// Weights are initialized uniformly in (-1, 1); the bias starts at zero.
// nonLinear records whether the neuron's output goes through ReLU.
type Neuron[T autodiff.Scalar] struct {
	weights   []*autodiff.Node[T]
	bias      *autodiff.Node[T]
	nonLinear bool
}

// NewNeuron creates a neuron with nin weights.
//
// Parameters:
//   - nin: Number of inputs (weights)
//   - nonLinear: Whether ReLU is applied to the output
//   - rng: Source for weight initialization (nil for the global source)
func NewNeuron[T autodiff.Scalar](nin int, nonLinear bool, rng *rand.Rand) *Neuron[T] {
	if nin < 0 {
		panic(fmt.Sprintf("NewNeuron: negative input count %d", nin))
	}
	return &Neuron[T]{
		weights:   uniformLeaves[T](nin, rng),
		bias:      autodiff.New(T(0)),
		nonLinear: nonLinear,
	}
}

// Parameters yields the weights in order, then the bias.
func (n *Neuron[T]) Parameters() iter.Seq[*autodiff.Node[T]] {
	return func(yield func(*autodiff.Node[T]) bool) {
		for _, w := range n.weights {
			if !yield(w) {
				return
			}
		}
		yield(n.bias)
	}
}

// ZeroGrad resets the gradients of all weights and the bias.
func (n *Neuron[T]) ZeroGrad() {
	zeroGrad[T](n)
}

// NumParameters returns the number of weights plus one.
func (n *Neuron[T]) NumParameters() int {
	return len(n.weights) + 1
}

// Weights returns the weight nodes.
func (n *Neuron[T]) Weights() []*autodiff.Node[T] {
	return n.weights
}

// Bias returns the bias node.
func (n *Neuron[T]) Bias() *autodiff.Node[T] {
	return n.bias
}

// NonLinear reports whether ReLU is applied to the output.
func (n *Neuron[T]) NonLinear() bool {
	return n.nonLinear
}

// NumInputs returns the number of weights.
func (n *Neuron[T]) NumInputs() int {
	return len(n.weights)
}
