package nn

import (
	"fmt"
	"iter"
	"math/rand"
	"slices"

	"github.com/born-ml/minigrad/internal/autodiff"
)

// MLP is a multilayer perceptron.
//
// Built from widths [n0, n1, ..., nk], it holds k layers where layer i maps
// n_i inputs to n_{i+1} outputs. Every layer but the last applies ReLU; the
// last one is linear so outputs can take any sign.
//
// Example:
//
//	model, err := nn.NewMLP[float64]([]int{3, 4, 4, 1}, rand.New(rand.NewSource(1)))
//	if err != nil {
//	    return err
//	}
//	model.ZeroGrad()
type MLP[T autodiff.Scalar] struct {
	widths []int
	layers []*Layer[T]
}

// NewMLP creates an MLP from layer widths.
//
// Returns an error wrapping ErrInvalidTopology if fewer than two widths are
// given or any width is not positive.
func NewMLP[T autodiff.Scalar](widths []int, rng *rand.Rand) (*MLP[T], error) {
	if len(widths) < 2 {
		return nil, &TopologyError{
			Widths: slices.Clone(widths),
			Reason: fmt.Sprintf("need at least 2 widths, got %d", len(widths)),
		}
	}
	for i, w := range widths {
		if w < 1 {
			return nil, &TopologyError{
				Widths: slices.Clone(widths),
				Reason: fmt.Sprintf("width %d is %d, must be positive", i, w),
			}
		}
	}

	last := len(widths) - 2
	layers := make([]*Layer[T], len(widths)-1)
	for i := range layers {
		layers[i] = NewLayer[T](widths[i], widths[i+1], i != last, rng)
	}

	return &MLP[T]{
		widths: slices.Clone(widths),
		layers: layers,
	}, nil
}

// Parameters yields the parameters of each layer in turn.
func (m *MLP[T]) Parameters() iter.Seq[*autodiff.Node[T]] {
	return func(yield func(*autodiff.Node[T]) bool) {
		for _, l := range m.layers {
			for p := range l.Parameters() {
				if !yield(p) {
					return
				}
			}
		}
	}
}

// ZeroGrad resets the gradients of every layer.
func (m *MLP[T]) ZeroGrad() {
	for _, l := range m.layers {
		l.ZeroGrad()
	}
}

// NumParameters returns sum over layers of (n_{i-1} + 1) * n_i.
func (m *MLP[T]) NumParameters() int {
	total := 0
	for _, l := range m.layers {
		total += l.NumParameters()
	}
	return total
}

// Layers returns the layers in order.
func (m *MLP[T]) Layers() []*Layer[T] {
	return m.layers
}

// Widths returns a copy of the widths the MLP was built from.
func (m *MLP[T]) Widths() []int {
	return slices.Clone(m.widths)
}

// String summarizes the architecture, e.g. "MLP[3 -> 4 relu, 4 -> 1 linear]".
func (m *MLP[T]) String() string {
	s := "MLP["
	for i, l := range m.layers {
		if i > 0 {
			s += ", "
		}
		act := "linear"
		if len(l.neurons) > 0 && l.neurons[0].nonLinear {
			act = "relu"
		}
		s += fmt.Sprintf("%d -> %d %s", l.nin, len(l.neurons), act)
	}
	return s + "]"
}
