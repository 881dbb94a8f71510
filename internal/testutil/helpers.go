// Package testutil provides reusable test helper functions for trajectory tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-10
	SepticTolerance  = 1e-12 // septic coefficients are not dyadic
	Float32Tolerance = 1e-5
)

// AssertComponentsInDelta verifies that two coordinate slices have the same
// length and agree component-wise within tolerance.
func AssertComponentsInDelta(t *testing.T, expected, actual []float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	for i := range expected {
		if !assert.InDelta(t, expected[i], actual[i], tolerance,
			"component %d: got %g, want %g", i, actual[i], expected[i]) {
			return false
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertMonotonic verifies that a slice is monotonically increasing.
func AssertMonotonic(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, "not monotonic",
				"s[%d]=%f < s[%d]=%f", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}
