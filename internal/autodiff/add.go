package autodiff

// Add returns n + other, consuming both operands.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a += grad
//   - d(a+b)/db = 1, so grad_b += grad
func (n *Node[T]) Add(other *Node[T]) *Node[T] {
	consume("add", n, other)
	return derive(n.value+other.value, OpAdd, n, other)
}

func addBackward[T Scalar](_ *Node[T], grad T) (T, T) {
	return grad, grad
}
