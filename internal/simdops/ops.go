// Package simdops provides generic SIMD operations for float32 and float64 types.
// This lets the slice-backed vector type share one implementation across both
// precisions.
package simdops

import (
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// Float is the type constraint for supported floating-point types.
type Float interface {
	float32 | float64
}

// Ops provides SIMD-accelerated operations for type F.
// Function pointers allow type-safe generic code while delegating
// to optimized type-specific implementations.
type Ops[F Float] struct {
	// DotProductUnsafe computes the dot product without bounds checking.
	// Use only when slices are guaranteed to have equal length.
	DotProductUnsafe func(a, b []F) F

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []F, s F)
}

// Pre-instantiated operations for each float type.
var (
	ops32 = Ops[float32]{
		DotProductUnsafe: f32.DotProductUnsafe,
		Scale:            f32.Scale,
	}
	ops64 = Ops[float64]{
		DotProductUnsafe: f64.DotProductUnsafe,
		Scale:            f64.Scale,
	}
)

// For returns the Ops instance for type F.
func For[F Float]() *Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		ops, ok := any(&ops32).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float32")
		}
		return ops
	case float64:
		ops, ok := any(&ops64).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float64")
		}
		return ops
	default:
		panic("simdops: unsupported float type")
	}
}
