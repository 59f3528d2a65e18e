package autodiff

import "math"

// Pow returns n raised to the constant exponent, consuming n.
//
// Backward pass (power rule):
//   - d(x^e)/dx = e * x^(e-1), so grad_x += e * x^(e-1) * grad
//
// Domain problems are not intercepted: Pow(-1) of zero yields +Inf and a
// fractional power of a negative base yields NaN, in both the value and the
// gradient, exactly as math.Pow returns them.
func (n *Node[T]) Pow(exponent T) *Node[T] {
	consume("pow", n)
	out := derive(pow(n.value, exponent), OpPow, n, nil)
	out.exponent = exponent
	return out
}

func powBackward[T Scalar](node *Node[T], grad T) T {
	x := node.lhs.value
	e := node.exponent
	return e * pow(x, e-one[T]()) * grad
}

func pow[T Scalar](x, e T) T {
	return T(math.Pow(float64(x), float64(e)))
}
