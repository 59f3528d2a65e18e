package autodiff

// Scalar is a constraint for the numeric types a Node can carry.
//
// Any type in the set supports addition, multiplication, ordering and
// negation natively. Exponentiation goes through math.Pow in float64 and is
// converted back, so float32 graphs pay one widening per Pow.
type Scalar interface {
	~float32 | ~float64
}

// zero returns the additive identity for T.
func zero[T Scalar]() T {
	return 0
}

// one returns the multiplicative identity for T.
func one[T Scalar]() T {
	return 1
}
