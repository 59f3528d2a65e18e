package autodiff

import "errors"

// Misuse errors. The engine panics with an error wrapping one of these;
// arithmetic edge cases (Inf, NaN) are never reported as errors.
var (
	ErrNodeConsumed = errors.New("node already consumed as an operand")
	ErrNilNode      = errors.New("nil node")
)
