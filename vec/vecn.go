package vec

import (
	"github.com/tphakala/go-motion-planning/internal/simdops"
)

// VecN is a vector whose dimension is chosen at construction.
//
// Operations never check dimensions; operands must have been built with the
// same length. Results are freshly allocated, so a VecN is never mutated by
// its methods.
type VecN[F Float] []F

// N creates a VecN holding a copy of components.
func N[F Float](components ...F) VecN[F] {
	return append(VecN[F](nil), components...)
}

// Zero creates a VecN of dimension dim with all components zero.
func Zero[F Float](dim int) VecN[F] {
	return make(VecN[F], dim)
}

// Add returns the vector sum a + b.
func (a VecN[F]) Add(b VecN[F]) VecN[F] {
	out := make(VecN[F], len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}

// Sub returns the vector difference a - b.
func (a VecN[F]) Sub(b VecN[F]) VecN[F] {
	out := make(VecN[F], len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

// Scale returns the vector scaled by s.
func (a VecN[F]) Scale(s F) VecN[F] {
	out := make(VecN[F], len(a))
	simdops.For[F]().Scale(out, a, s)
	return out
}

// Neg returns the negation of the vector.
func (a VecN[F]) Neg() VecN[F] {
	out := make(VecN[F], len(a))
	for i, c := range a {
		out[i] = -c
	}
	return out
}

// Dot returns the dot product of two vectors.
func (a VecN[F]) Dot(b VecN[F]) F {
	return simdops.For[F]().DotProductUnsafe(a, b[:len(a)])
}

// Dim returns the number of components.
func (a VecN[F]) Dim() int {
	return len(a)
}

// String formats the vector as "(c0,c1,...)".
func (a VecN[F]) String() string {
	return format(a)
}
