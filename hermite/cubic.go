package hermite

// Cubic basis coefficients, ascending powers of t.
// Index order: p0, v0, v1, p1.
var (
	cubicValue = table{
		{1, 0, -3, 2},
		{0, 1, -2, 1},
		{0, 0, -1, 1},
		{0, 0, 3, -2},
	}
	cubicD1 = table{
		{0, -6, 6},
		{1, -4, 3},
		{0, -2, 3},
		{0, 6, -6},
	}
	cubicD2 = table{
		{-6, 12},
		{-4, 6},
		{-2, 6},
		{6, -12},
	}
	cubicD3 = table{
		{12},
		{6},
		{6},
		{-12},
	}
)

// H3 computes the value of cubic Hermite basis function n at t:
//
//	h0 = 2t³ - 3t² + 1
//	h1 = t³ - 2t² + t
//	h2 = t³ - t²
//	h3 = -2t³ + 3t²
//
// At t = 0 only h0 is 1; at t = 1 only h3 is 1.
// H3 panics unless 0 <= n <= 3.
func H3(t float64, n int) float64 {
	return cubicValue.at(cubicName, t, n)
}

// H3p computes the first derivative of [H3]. At t = 0 only h1' is 1; at
// t = 1 only h2' is 1.
func H3p(t float64, n int) float64 {
	return cubicD1.at(cubicName, t, n)
}

// H3pp computes the second derivative of [H3].
func H3pp(t float64, n int) float64 {
	return cubicD2.at(cubicName, t, n)
}

// H3ppp computes the third derivative of [H3], which is constant in t.
func H3ppp(t float64, n int) float64 {
	return cubicD3.at(cubicName, t, n)
}
