package autodiff

// ReLU returns max(0, n), consuming n.
//
// Backward pass:
//   - d(ReLU(x))/dx = 1 if the output is > 0, else 0 (including at x == 0)
//
// NaN inputs are passed through unchanged.
func (n *Node[T]) ReLU() *Node[T] {
	consume("relu", n)
	value := n.value
	if value < 0 {
		value = zero[T]()
	}
	return derive(value, OpReLU, n, nil)
}

func reluBackward[T Scalar](node *Node[T], grad T) T {
	if node.value > 0 {
		return grad
	}
	return zero[T]()
}
