package autodiff

// Mul returns n * other, consuming both operands.
//
// Backward pass (product rule):
//   - d(a*b)/da = b, so grad_a += b * grad
//   - d(a*b)/db = a, so grad_b += a * grad
func (n *Node[T]) Mul(other *Node[T]) *Node[T] {
	consume("mul", n, other)
	return derive(n.value*other.value, OpMul, n, other)
}

func mulBackward[T Scalar](node *Node[T], grad T) (T, T) {
	return node.rhs.value * grad, node.lhs.value * grad
}
