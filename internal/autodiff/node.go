package autodiff

import (
	"fmt"
)

// Node is a scalar participating in a computation.
//
// A leaf node (OpLeaf) has no operands. A derived node owns the one or two
// operands it was built from; for OpPow it also carries the constant
// exponent, which does not receive a gradient.
type Node[T Scalar] struct {
	value    T
	grad     T
	op       Op
	lhs      *Node[T] // first operand; nil for leaves
	rhs      *Node[T] // second operand; nil for leaves and unary ops
	exponent T        // OpPow only
	consumed bool     // set once the node becomes an operand
}

// New creates a leaf node holding value with a zero gradient.
func New[T Scalar](value T) *Node[T] {
	return &Node[T]{value: value, grad: zero[T]()}
}

// derive builds a node produced by op. Operands must already be consumed.
func derive[T Scalar](value T, op Op, lhs, rhs *Node[T]) *Node[T] {
	return &Node[T]{
		value: value,
		grad:  zero[T](),
		op:    op,
		lhs:   lhs,
		rhs:   rhs,
	}
}

// Value returns the forward-computed value.
func (n *Node[T]) Value() T {
	return n.value
}

// Grad returns the accumulated gradient.
func (n *Node[T]) Grad() T {
	return n.grad
}

// ZeroGrad resets the gradient to the additive identity.
func (n *Node[T]) ZeroGrad() {
	n.grad = zero[T]()
}

// Op returns the operation that produced the node (OpLeaf for leaves).
func (n *Node[T]) Op() Op {
	return n.op
}

// IsLeaf reports whether the node has no origin.
func (n *Node[T]) IsLeaf() bool {
	return n.op == OpLeaf
}

// Operands returns the owned operands: none for leaves, one for unary
// operations, two for binary ones.
func (n *Node[T]) Operands() []*Node[T] {
	switch n.op.Arity() {
	case 2:
		return []*Node[T]{n.lhs, n.rhs}
	case 1:
		return []*Node[T]{n.lhs}
	default:
		return nil
	}
}

// Exponent returns the constant exponent of a power node and false for
// every other operation.
func (n *Node[T]) Exponent() (T, bool) {
	if n.op != OpPow {
		return zero[T](), false
	}
	return n.exponent, true
}

// Consumed reports whether the node has been used as an operand.
// A consumed node can still be read but not combined or propagated from.
func (n *Node[T]) Consumed() bool {
	return n.consumed
}

// Clone returns a deep copy of the node and its owned subtree.
//
// The copy is unconsumed and shares nothing with the original, so gradients
// accumulated into one are never seen by the other.
func (n *Node[T]) Clone() *Node[T] {
	if n == nil {
		panic(fmt.Errorf("clone: %w", ErrNilNode))
	}
	c := &Node[T]{
		value:    n.value,
		grad:     n.grad,
		op:       n.op,
		exponent: n.exponent,
	}
	if n.lhs != nil {
		c.lhs = n.lhs.Clone()
		c.lhs.consumed = true
	}
	if n.rhs != nil {
		c.rhs = n.rhs.Clone()
		c.rhs.consumed = true
	}
	return c
}

// Walk calls fn for every node in the owned subtree, root first, visiting
// the right operand before the left. Returning false from fn stops the walk.
func (n *Node[T]) Walk(fn func(*Node[T]) bool) {
	stack := []*Node[T]{n}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(node) {
			return
		}
		if node.lhs != nil {
			stack = append(stack, node.lhs)
		}
		if node.rhs != nil {
			stack = append(stack, node.rhs)
		}
	}
}

// Size returns the number of nodes in the owned subtree, including n.
func (n *Node[T]) Size() int {
	count := 0
	n.Walk(func(*Node[T]) bool {
		count++
		return true
	})
	return count
}

// String renders the node and its origin, e.g. "Node(value=-8, grad=1, op=mul)".
func (n *Node[T]) String() string {
	if n.op == OpPow {
		return fmt.Sprintf("Node(value=%v, grad=%v, op=pow, exponent=%v)", n.value, n.grad, n.exponent)
	}
	return fmt.Sprintf("Node(value=%v, grad=%v, op=%s)", n.value, n.grad, n.op)
}

// consume marks operands as owned by a new node. All operands are validated
// before any is marked, so a rejected call leaves them untouched.
func consume[T Scalar](name string, operands ...*Node[T]) {
	validate(name, operands...)
	for _, o := range operands {
		o.consumed = true
	}
}

// validate panics unless every operand is non-nil, unconsumed and distinct.
func validate[T Scalar](name string, operands ...*Node[T]) {
	for i, o := range operands {
		if o == nil {
			panic(fmt.Errorf("%s: operand %d: %w", name, i, ErrNilNode))
		}
		if o.consumed {
			panic(fmt.Errorf("%s: operand %d: %w", name, i, ErrNodeConsumed))
		}
		for _, prev := range operands[:i] {
			if prev == o {
				panic(fmt.Errorf("%s: operand %d repeats operand: %w", name, i, ErrNodeConsumed))
			}
		}
	}
}
