package autodiff

import "fmt"

// pending is a node waiting to hand its share of the gradient to its operands.
type pending[T Scalar] struct {
	node *Node[T]
	grad T // contribution this pass added to node.grad
}

// Backward propagates gradients from n through its owned subtree.
//
// The root gradient is set to one, then every node is visited exactly once,
// root first, right operand before left. Because no node has two parents,
// a node's contribution is final by the time it is visited.
//
// Gradients are never reset: calling Backward again accumulates on top of
// the previous results, so each descendant ends up with the sum of the
// gradients of both passes. Use ZeroGrad between passes to start fresh.
//
// Panics with ErrNodeConsumed if n is owned by another node.
func (n *Node[T]) Backward() {
	if n == nil {
		panic(fmt.Errorf("backward: %w", ErrNilNode))
	}
	if n.consumed {
		panic(fmt.Errorf("backward: %w", ErrNodeConsumed))
	}

	n.grad = one[T]()
	stack := []pending[T]{{node: n, grad: one[T]()}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		lhs, rhs, ok := localBackward(p.node, p.grad)
		if !ok {
			continue
		}
		p.node.lhs.grad += lhs
		stack = append(stack, pending[T]{node: p.node.lhs, grad: lhs})
		if p.node.rhs != nil {
			p.node.rhs.grad += rhs
			stack = append(stack, pending[T]{node: p.node.rhs, grad: rhs})
		}
	}
}

// localBackward applies the chain rule for node's operation to grad and
// returns the contributions for its operands. ok is false for leaves.
func localBackward[T Scalar](node *Node[T], grad T) (lhs, rhs T, ok bool) {
	switch node.op {
	case OpAdd:
		lhs, rhs = addBackward(node, grad)
	case OpMul:
		lhs, rhs = mulBackward(node, grad)
	case OpReLU:
		lhs = reluBackward(node, grad)
	case OpPow:
		lhs = powBackward(node, grad)
	default:
		return lhs, rhs, false
	}
	return lhs, rhs, true
}
