package nn

import (
	"iter"
	"math/rand"

	"github.com/born-ml/minigrad/internal/autodiff"
)

// Layer is a list of neurons with the same number of inputs.
type Layer[T autodiff.Scalar] struct {
	nin     int
	neurons []*Neuron[T]
}

// NewLayer creates a layer mapping nin inputs to nout outputs.
func NewLayer[T autodiff.Scalar](nin, nout int, nonLinear bool, rng *rand.Rand) *Layer[T] {
	neurons := make([]*Neuron[T], nout)
	for i := range neurons {
		neurons[i] = NewNeuron[T](nin, nonLinear, rng)
	}
	return &Layer[T]{nin: nin, neurons: neurons}
}

// Parameters yields the parameters of each neuron in turn.
func (l *Layer[T]) Parameters() iter.Seq[*autodiff.Node[T]] {
	return func(yield func(*autodiff.Node[T]) bool) {
		for _, n := range l.neurons {
			for p := range n.Parameters() {
				if !yield(p) {
					return
				}
			}
		}
	}
}

// ZeroGrad resets the gradients of every neuron.
func (l *Layer[T]) ZeroGrad() {
	for _, n := range l.neurons {
		n.ZeroGrad()
	}
}

// NumParameters returns (nin + 1) * nout.
func (l *Layer[T]) NumParameters() int {
	return (l.nin + 1) * len(l.neurons)
}

// Neurons returns the neurons of the layer.
func (l *Layer[T]) Neurons() []*Neuron[T] {
	return l.neurons
}

// NumInputs returns the input arity shared by all neurons.
func (l *Layer[T]) NumInputs() int {
	return l.nin
}

// NumOutputs returns the number of neurons.
func (l *Layer[T]) NumOutputs() int {
	return len(l.neurons)
}
