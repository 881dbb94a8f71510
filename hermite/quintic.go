package hermite

// Quintic basis coefficients, ascending powers of t.
// Index order: p0, v0, a0, a1, v1, p1.
var (
	quinticValue = table{
		{1, 0, 0, -10, 15, -6},
		{0, 1, 0, -6, 8, -3},
		{0, 0, 0.5, -1.5, 1.5, -0.5},
		{0, 0, 0, 0.5, -1, 0.5},
		{0, 0, 0, -4, 7, -3},
		{0, 0, 0, 10, -15, 6},
	}
	quinticD1 = table{
		{0, 0, -30, 60, -30},
		{1, 0, -18, 32, -15},
		{0, 1, -4.5, 6, -2.5},
		{0, 0, 1.5, -4, 2.5},
		{0, 0, -12, 28, -15},
		{0, 0, 30, -60, 30},
	}
	quinticD2 = table{
		{0, -60, 180, -120},
		{0, -36, 96, -60},
		{1, -9, 18, -10},
		{0, 3, -12, 10},
		{0, -24, 84, -60},
		{0, 60, -180, 120},
	}
	quinticD3 = table{
		{-60, 360, -360},
		{-36, 192, -180},
		{-9, 36, -30},
		{3, -24, 30},
		{-24, 168, -180},
		{60, -360, 360},
	}
)

// H5 computes the value of quintic Hermite basis function n at t. The six
// functions weight start position, velocity and acceleration followed by end
// acceleration, velocity and position:
//
//	h0 = 1 - 10t³ + 15t⁴ - 6t⁵
//	h1 = t - 6t³ + 8t⁴ - 3t⁵
//	h2 = ½t² - 3⁄2t³ + 3⁄2t⁴ - ½t⁵
//	h3 = ½t³ - t⁴ + ½t⁵
//	h4 = -4t³ + 7t⁴ - 3t⁵
//	h5 = 10t³ - 15t⁴ + 6t⁵
//
// H5 panics unless 0 <= n <= 5.
func H5(t float64, n int) float64 {
	return quinticValue.at(quinticName, t, n)
}

// H5p computes the first derivative of [H5].
func H5p(t float64, n int) float64 {
	return quinticD1.at(quinticName, t, n)
}

// H5pp computes the second derivative of [H5].
func H5pp(t float64, n int) float64 {
	return quinticD2.at(quinticName, t, n)
}

// H5ppp computes the third derivative of [H5].
func H5ppp(t float64, n int) float64 {
	return quinticD3.at(quinticName, t, n)
}
