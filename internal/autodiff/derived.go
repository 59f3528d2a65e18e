package autodiff

// Neg returns -n as n * -1, consuming n.
func (n *Node[T]) Neg() *Node[T] {
	return n.Mul(New(-one[T]()))
}

// Sub returns n - other as n + (-other), consuming both operands.
func (n *Node[T]) Sub(other *Node[T]) *Node[T] {
	validate("sub", n, other)
	return n.Add(other.Neg())
}

// Div returns n / other as n * other^-1, consuming both operands.
// Dividing by a zero-valued node yields Inf (or NaN for 0/0).
func (n *Node[T]) Div(other *Node[T]) *Node[T] {
	validate("div", n, other)
	return n.Mul(other.Pow(-one[T]()))
}
