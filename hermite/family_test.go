package hermite

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/tphakala/go-motion-planning/internal/mathutil"
)

// boundaryTolerance returns the allowed deviation from the Kronecker delta at
// t = 1. Cubic and quintic coefficients are dyadic and evaluate exactly.
func boundaryTolerance(f *Family) float64 {
	if f == Septic {
		return 1e-12
	}
	return 0
}

// TestFamily_Metadata tests counts, degrees and name lookup.
func TestFamily_Metadata(t *testing.T) {
	tests := []struct {
		family *Family
		name   string
		orders int
		count  int
		degree int
	}{
		{Cubic, "cubic", 2, CubicCount, 3},
		{Quintic, "quintic", 3, QuinticCount, 5},
		{Septic, "septic", 4, SepticCount, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.family.Name())
			assert.Equal(t, tt.name, tt.family.String())
			assert.Equal(t, tt.orders, tt.family.Orders())
			assert.Equal(t, tt.count, tt.family.Count())
			assert.Equal(t, tt.degree, tt.family.Degree())

			got, ok := ByName(tt.name)
			require.True(t, ok)
			assert.Same(t, tt.family, got)
		})
	}

	_, ok := ByName("nonic")
	assert.False(t, ok)
}

// TestFamily_BoundaryIndex tests that Boundary and Index are inverses and
// that the index layout is p0 v0 ... v1 p1.
func TestFamily_BoundaryIndex(t *testing.T) {
	for _, f := range Families() {
		t.Run(f.Name(), func(t *testing.T) {
			order, end := f.Boundary(0)
			assert.Equal(t, 0, order)
			assert.Equal(t, Start, end)

			order, end = f.Boundary(f.Count() - 1)
			assert.Equal(t, 0, order)
			assert.Equal(t, Finish, end)

			for n := range f.Count() {
				order, end := f.Boundary(n)
				assert.Equal(t, n, f.Index(order, end), "index %d", n)
			}
		})
	}

	assert.Equal(t, "start", Start.String())
	assert.Equal(t, "finish", Finish.String())
}

// TestFamily_KroneckerDelta tests that at each segment end the weights of
// every constrained derivative order select exactly one boundary condition.
func TestFamily_KroneckerDelta(t *testing.T) {
	for _, f := range Families() {
		t.Run(f.Name(), func(t *testing.T) {
			for d := range f.Orders() {
				for n := range f.Count() {
					order, end := f.Boundary(n)

					want0 := 0.0
					if order == d && end == Start {
						want0 = 1
					}
					assert.Equal(t, want0, f.Weight(d, 0, n),
						"derivative %d index %d at t=0", d, n)

					want1 := 0.0
					if order == d && end == Finish {
						want1 = 1
					}
					assert.InDelta(t, want1, f.Weight(d, 1, n), boundaryTolerance(f),
						"derivative %d index %d at t=1", d, n)
				}
			}
		})
	}
}

// TestFamily_PositionWeightsSumToOne tests that the two position weights
// reproduce a constant, so their derivatives cancel.
func TestFamily_PositionWeightsSumToOne(t *testing.T) {
	for _, f := range Families() {
		t.Run(f.Name(), func(t *testing.T) {
			last := f.Count() - 1
			for i := 0; i <= 20; i++ {
				u := float64(i) / 20
				assert.InDelta(t, 1.0, f.Weight(0, u, 0)+f.Weight(0, u, last), 1e-12, "u=%v", u)
				for d := 1; d <= MaxDerivative; d++ {
					assert.InDelta(t, 0.0, f.Weight(d, u, 0)+f.Weight(d, u, last), 1e-9,
						"derivative %d u=%v", d, u)
				}
			}
		})
	}
}

// TestFamily_DerivativeTables tests that each derivative table is the
// derivative of the table before it.
func TestFamily_DerivativeTables(t *testing.T) {
	for _, f := range Families() {
		t.Run(f.Name(), func(t *testing.T) {
			for d := range MaxDerivative {
				for n := range f.Count() {
					want := mathutil.PolyDerivative(f.Coefficients(d, n))
					got := f.Coefficients(d+1, n)
					require.Len(t, got, len(want), "derivative %d index %d", d+1, n)
					assert.InDeltaSlice(t, want, got, 1e-12, "derivative %d index %d", d+1, n)
				}
			}
		})
	}
}

// TestFamily_SolvesBoundarySystem re-derives every value basis from the
// Hermite boundary conditions. With A[j][i] the order_j-th derivative of t^i
// at the end of condition j, column n of A⁻¹ holds the coefficients of h_n.
func TestFamily_SolvesBoundarySystem(t *testing.T) {
	for _, f := range Families() {
		t.Run(f.Name(), func(t *testing.T) {
			c := f.Count()
			a := mat.NewDense(c, c, nil)
			for j := range c {
				order, end := f.Boundary(j)
				at := 0.0
				if end == Finish {
					at = 1
				}
				for i := range c {
					a.Set(j, i, monomialDerivative(i, order, at))
				}
			}

			var inv mat.Dense
			require.NoError(t, inv.Inverse(a))

			for n := range c {
				coeffs := f.Coefficients(0, n)
				require.Len(t, coeffs, c)
				for i := range c {
					assert.InDelta(t, inv.At(i, n), coeffs[i], 1e-9,
						"h%d coefficient of t^%d", n, i)
				}
			}
		})
	}
}

// monomialDerivative evaluates the k-th derivative of t^i at t.
func monomialDerivative(i, k int, t float64) float64 {
	if k > i {
		return 0
	}
	factor := 1.0
	for j := i - k + 1; j <= i; j++ {
		factor *= float64(j)
	}
	return factor * math.Pow(t, float64(i-k))
}

// TestFamily_WeightsAppend tests Weights against Weight.
func TestFamily_WeightsAppend(t *testing.T) {
	prefix := []float64{42}
	got := Quintic.Weights(2, 0.25, prefix)
	require.Len(t, got, 1+QuinticCount)
	assert.InDelta(t, 42.0, got[0], 0)
	for n := range QuinticCount {
		assert.InDelta(t, Quintic.Weight(2, 0.25, n), got[n+1], 0)
	}
}

// TestFamily_EntryPoints tests that the standalone functions match the
// family tables.
func TestFamily_EntryPoints(t *testing.T) {
	tests := []struct {
		name       string
		family     *Family
		derivative int
		fn         Func
	}{
		{"H3", Cubic, 0, H3},
		{"H3p", Cubic, 1, H3p},
		{"H3pp", Cubic, 2, H3pp},
		{"H3ppp", Cubic, 3, H3ppp},
		{"H5", Quintic, 0, H5},
		{"H5p", Quintic, 1, H5p},
		{"H5pp", Quintic, 2, H5pp},
		{"H5ppp", Quintic, 3, H5ppp},
		{"H7", Septic, 0, H7},
		{"H7p", Septic, 1, H7p},
		{"H7pp", Septic, 2, H7pp},
		{"H7ppp", Septic, 3, H7ppp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viaFunc := tt.family.Func(tt.derivative)
			for n := range tt.family.Count() {
				for _, u := range []float64{0, 0.1, 0.5, 0.9, 1} {
					want := tt.family.Weight(tt.derivative, u, n)
					assert.InDelta(t, want, tt.fn(u, n), 0, "n=%d u=%v", n, u)
					assert.InDelta(t, want, viaFunc(u, n), 0, "n=%d u=%v", n, u)
				}
			}
		})
	}
}

// TestFamily_InvalidIndexPanics tests the fail-fast contract.
func TestFamily_InvalidIndexPanics(t *testing.T) {
	assert.PanicsWithValue(t, "hermite: invalid cubic basis index 7", func() { H3(0.5, 7) })
	assert.PanicsWithValue(t, "hermite: invalid cubic basis index 4", func() { H3p(0.5, 4) })
	assert.PanicsWithValue(t, "hermite: invalid quintic basis index -1", func() { H5(0.5, -1) })
	assert.PanicsWithValue(t, "hermite: invalid quintic basis index 6", func() { H5pp(0.5, 6) })
	assert.PanicsWithValue(t, "hermite: invalid septic basis index 8", func() { H7ppp(0.5, 8) })
	assert.PanicsWithValue(t, "hermite: invalid septic basis index 8", func() { Septic.Boundary(8) })
	assert.PanicsWithValue(t, "hermite: cubic family has no derivative 4", func() { Cubic.Weight(4, 0.5, 0) })
	assert.PanicsWithValue(t, "hermite: quintic family has no boundary order 3", func() { Quintic.Index(3, Start) })
}

// BenchmarkFamily_Weights benchmarks a full weight vector per family.
func BenchmarkFamily_Weights(b *testing.B) {
	for _, f := range Families() {
		b.Run(f.Name(), func(b *testing.B) {
			buf := make([]float64, 0, MaxCount)
			for b.Loop() {
				buf = f.Weights(0, 0.37, buf[:0])
			}
		})
	}
}
