// Package hermite implements the cubic, quintic and septic Hermite basis
// families used to blend a pair of waypoints.
//
// A family with k boundary orders has 2k basis functions. Index n < k weights
// the start waypoint's n-th derivative; the remaining indices weight the end
// waypoint's derivatives in descending order, so the last index always weights
// the end position:
//
//	cubic:   p0 v0 v1 p1
//	quintic: p0 v0 a0 a1 v1 p1
//	septic:  p0 v0 a0 j0 j1 a1 v1 p1
//
// Each basis function comes with its first three derivatives. Evaluating an
// index outside the family panics: the index space is closed and call sites
// enumerate it exhaustively.
package hermite

import (
	"fmt"

	"github.com/tphakala/go-motion-planning/internal/mathutil"
)

// Func is a single-index basis weight function such as [H5] or [H7pp].
type Func func(t float64, n int) float64

// End identifies the segment boundary a basis index belongs to.
type End int

const (
	// Start is the preceding waypoint (t = 0).
	Start End = iota
	// Finish is the succeeding waypoint (t = 1).
	Finish
)

// String returns "start" or "finish".
func (e End) String() string {
	if e == Start {
		return "start"
	}
	return "finish"
}

// table holds ascending-power coefficients, one row per basis index.
type table [][]float64

func (tb table) at(family string, t float64, n int) float64 {
	if n < 0 || n >= len(tb) {
		panic(fmt.Sprintf("hermite: invalid %s basis index %d", family, n))
	}
	return mathutil.Horner(t, tb[n]...)
}

// Family is a Hermite basis family together with its derivative weights.
// The package-level [Cubic], [Quintic] and [Septic] values are the only
// families; they are safe for concurrent use.
type Family struct {
	name   string
	orders int
	tables [MaxDerivative + 1]table
}

// Predefined families.
var (
	Cubic = &Family{
		name:   cubicName,
		orders: cubicOrders,
		tables: [MaxDerivative + 1]table{cubicValue, cubicD1, cubicD2, cubicD3},
	}
	Quintic = &Family{
		name:   quinticName,
		orders: quinticOrders,
		tables: [MaxDerivative + 1]table{quinticValue, quinticD1, quinticD2, quinticD3},
	}
	Septic = &Family{
		name:   septicName,
		orders: septicOrders,
		tables: [MaxDerivative + 1]table{septicValue, septicD1, septicD2, septicD3},
	}
)

// Families lists the predefined families by increasing degree.
func Families() []*Family {
	return []*Family{Cubic, Quintic, Septic}
}

// ByName returns the family called name ("cubic", "quintic" or "septic").
func ByName(name string) (*Family, bool) {
	for _, f := range Families() {
		if f.name == name {
			return f, true
		}
	}
	return nil, false
}

// Name returns the family name.
func (f *Family) Name() string {
	return f.name
}

// String implements fmt.Stringer.
func (f *Family) String() string {
	return f.name
}

// Orders returns the number of derivative orders constrained at each end.
func (f *Family) Orders() int {
	return f.orders
}

// Count returns the number of basis functions.
func (f *Family) Count() int {
	return 2 * f.orders
}

// Degree returns the polynomial degree of the value weights.
func (f *Family) Degree() int {
	return f.Count() - 1
}

// Boundary reports which waypoint derivative basis index n weights.
func (f *Family) Boundary(n int) (order int, end End) {
	f.checkIndex(n)
	if n < f.orders {
		return n, Start
	}
	return f.Count() - 1 - n, Finish
}

// Index is the inverse of Boundary.
func (f *Family) Index(order int, end End) int {
	if order < 0 || order >= f.orders {
		panic(fmt.Sprintf("hermite: %s family has no boundary order %d", f.name, order))
	}
	if end == Start {
		return order
	}
	return f.Count() - 1 - order
}

// Weight evaluates the derivative-th derivative of basis function n at t.
// Derivative 0 is the value weight.
func (f *Family) Weight(derivative int, t float64, n int) float64 {
	return f.table(derivative).at(f.name, t, n)
}

// Weights appends all basis weights of the given derivative at t to dst.
func (f *Family) Weights(derivative int, t float64, dst []float64) []float64 {
	tb := f.table(derivative)
	for n := range tb {
		dst = append(dst, tb.at(f.name, t, n))
	}
	return dst
}

// Func returns the single-index weight function of the given derivative.
func (f *Family) Func(derivative int) Func {
	tb := f.table(derivative)
	return func(t float64, n int) float64 {
		return tb.at(f.name, t, n)
	}
}

// Coefficients returns a copy of the ascending-power coefficients of the
// derivative-th derivative of basis function n.
func (f *Family) Coefficients(derivative, n int) []float64 {
	f.checkIndex(n)
	return append([]float64(nil), f.table(derivative)[n]...)
}

func (f *Family) table(derivative int) table {
	if derivative < 0 || derivative > MaxDerivative {
		panic(fmt.Sprintf("hermite: %s family has no derivative %d", f.name, derivative))
	}
	return f.tables[derivative]
}

func (f *Family) checkIndex(n int) {
	if n < 0 || n >= f.Count() {
		panic(fmt.Sprintf("hermite: invalid %s basis index %d", f.name, n))
	}
}
