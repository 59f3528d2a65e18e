// Package autodiff implements reverse-mode automatic differentiation over
// scalar values.
//
// Every Node records how it was produced. Combinators (Add, Mul, ReLU, Pow
// and the derived Neg, Sub, Div) consume their operands: an operand becomes
// owned substructure of the result and cannot be used as an operand again.
// The nodes reachable from any output therefore form a tree, never a DAG,
// and Backward can propagate gradients with a single visit per node, without
// a topological sort or memoization.
//
// Usage:
//
//	a := autodiff.New(2.0)
//	b := autodiff.New(-3.0)
//	c := a.Mul(b) // a and b are now owned by c
//	c.Backward()
//	fmt.Println(a.Grad(), b.Grad()) // -3 2
//
// To use the same value in two places, Clone it first. The clone is tracked
// independently and does not share gradient accumulation with the original.
package autodiff

// Op identifies the operation that produced a Node.
type Op int

// Supported operations. Neg, Sub and Div are compositions of these and have
// no backward rule of their own.
const (
	OpLeaf Op = iota // no origin: an input or a parameter
	OpAdd
	OpMul
	OpReLU
	OpPow
)

// String returns a human-readable name for the operation.
func (op Op) String() string {
	switch op {
	case OpLeaf:
		return "leaf"
	case OpAdd:
		return "add"
	case OpMul:
		return "mul"
	case OpReLU:
		return "relu"
	case OpPow:
		return "pow"
	default:
		return "unknown"
	}
}

// Arity returns the number of operands the operation consumes.
func (op Op) Arity() int {
	switch op {
	case OpAdd, OpMul:
		return 2
	case OpReLU, OpPow:
		return 1
	default:
		return 0
	}
}
