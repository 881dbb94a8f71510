package hermite

// Septic basis coefficients, ascending powers of t.
// Index order: p0, v0, a0, j0, j1, a1, v1, p1.
var (
	septicValue = table{
		{1, 0, 0, 0, -35, 84, -70, 20},
		{0, 1, 0, 0, -20, 45, -36, 10},
		{0, 0, 0.5, 0, -5, 10, -7.5, 2},
		{0, 0, 0, 1.0 / 6, -2.0 / 3, 1, -2.0 / 3, 1.0 / 6},
		{0, 0, 0, 0, -1.0 / 6, 0.5, -0.5, 1.0 / 6},
		{0, 0, 0, 0, 2.5, -7, 6.5, -2},
		{0, 0, 0, 0, -15, 39, -34, 10},
		{0, 0, 0, 0, 35, -84, 70, -20},
	}
	septicD1 = table{
		{0, 0, 0, -140, 420, -420, 140},
		{1, 0, 0, -80, 225, -216, 70},
		{0, 1, 0, -20, 50, -45, 14},
		{0, 0, 0.5, -8.0 / 3, 5, -4, 7.0 / 6},
		{0, 0, 0, -2.0 / 3, 2.5, -3, 7.0 / 6},
		{0, 0, 0, 10, -35, 39, -14},
		{0, 0, 0, -60, 195, -204, 70},
		{0, 0, 0, 140, -420, 420, -140},
	}
	septicD2 = table{
		{0, 0, -420, 1680, -2100, 840},
		{0, 0, -240, 900, -1080, 420},
		{1, 0, -60, 200, -225, 84},
		{0, 1, -8, 20, -20, 7},
		{0, 0, -2, 10, -15, 7},
		{0, 0, 30, -140, 195, -84},
		{0, 0, -180, 780, -1020, 420},
		{0, 0, 420, -1680, 2100, -840},
	}
	septicD3 = table{
		{0, -840, 5040, -8400, 4200},
		{0, -480, 2700, -4320, 2100},
		{0, -120, 600, -900, 420},
		{1, -16, 60, -80, 35},
		{0, -4, 30, -60, 35},
		{0, 60, -420, 780, -420},
		{0, -360, 2340, -4080, 2100},
		{0, 840, -5040, 8400, -4200},
	}
)

// H7 computes the value of septic Hermite basis function n at t. The eight
// functions weight start position, velocity, acceleration and jerk followed by
// end jerk, acceleration, velocity and position.
//
// Coefficients with thirds and sixths are not exact in binary, so the
// boundary values of indices 3 and 4 hold to rounding rather than exactly.
// H7 panics unless 0 <= n <= 7.
func H7(t float64, n int) float64 {
	return septicValue.at(septicName, t, n)
}

// H7p computes the first derivative of [H7].
func H7p(t float64, n int) float64 {
	return septicD1.at(septicName, t, n)
}

// H7pp computes the second derivative of [H7].
func H7pp(t float64, n int) float64 {
	return septicD2.at(septicName, t, n)
}

// H7ppp computes the third derivative of [H7].
func H7ppp(t float64, n int) float64 {
	return septicD3.at(septicName, t, n)
}
