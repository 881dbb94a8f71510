// Package mathutil provides polynomial helpers shared by the basis families.
package mathutil

import (
	"math"
)

// Horner evaluates the polynomial c[0] + c[1]*x + ... + c[n]*x^n.
//
// Every step is a fused multiply-add, so each coefficient is folded in with a
// single rounding. At x == 0 the result is exactly c[0].
func Horner(x float64, coeffs ...float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}

	acc := coeffs[len(coeffs)-1]
	for i := len(coeffs) - 2; i >= 0; i-- {
		acc = math.FMA(acc, x, coeffs[i])
	}
	return acc
}

// PolyDerivative returns the coefficients of the first derivative of the
// polynomial described by coeffs (ascending powers).
// A constant polynomial yields an empty slice.
func PolyDerivative(coeffs []float64) []float64 {
	if len(coeffs) <= 1 {
		return []float64{}
	}

	out := make([]float64, len(coeffs)-1)
	for i := 1; i < len(coeffs); i++ {
		out[i-1] = float64(i) * coeffs[i]
	}
	return out
}
