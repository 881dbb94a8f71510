package trajectory

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-motion-planning/hermite"
	"github.com/tphakala/go-motion-planning/vec"
)

// Evaluator is the family-independent query surface of a trajectory.
// Tools that load waypoints at run time work against this interface.
type Evaluator[F vec.Float, V any] interface {
	// Len returns the number of waypoints.
	Len() int

	// Family returns the basis family used for blending.
	Family() *hermite.Family

	// Duration returns the largest valid parameter, Len()-1.
	Duration() F

	// At evaluates the given derivative of the trajectory at t.
	// It reports false when the trajectory has no waypoints.
	At(derivative int, t F) (V, bool)

	// PositionAt, VelocityAt, AccelerationAt and JerkAt are At with
	// derivative 0 through 3.
	PositionAt(t F) (V, bool)
	VelocityAt(t F) (V, bool)
	AccelerationAt(t F) (V, bool)
	JerkAt(t F) (V, bool)

	// Sample evaluates the trajectory on a grid of parameters.
	Sample(ctx context.Context, cfg SampleConfig) ([]Sample[F, V], error)
}

// Common errors returned by the package.
var (
	// ErrInvalidConfig indicates invalid sampling parameters.
	ErrInvalidConfig = errors.New("invalid sampling configuration")

	// ErrEmptyTrajectory indicates an operation that needs at least one waypoint.
	ErrEmptyTrajectory = errors.New("trajectory has no waypoints")

	// ErrDimensionMismatch indicates waypoint vectors of differing dimension.
	ErrDimensionMismatch = errors.New("waypoint dimension mismatch")
)

// Segment is the pair of waypoints bounding a parameter, with the local
// parameter U in [0, 1]. At an integer parameter Prec and Succ are the same
// waypoint and U is 0.
type Segment[F vec.Float, P any] struct {
	U     F
	Index int // index of Prec
	Prec  P
	Succ  P
}

// Trajectory evaluates a sequence of waypoints spaced one parameter unit
// apart. Waypoint i sits at t = i.
//
// A Trajectory is a read-only view over the caller's slice and holds no
// other state, so it is safe for concurrent use as long as the slice is not
// modified.
type Trajectory[F vec.Float, V vec.Vector[V, F], P State[V]] struct {
	poses  []P
	family *hermite.Family
}

// New creates a trajectory over poses. Vectors that report a run-time
// dimension must all agree. An empty trajectory is valid; every query on it
// reports no value.
func New[F vec.Float, V vec.Vector[V, F], P State[V]](poses []P) (*Trajectory[F, V, P], error) {
	var zero P
	tr := &Trajectory[F, V, P]{
		poses:  poses,
		family: zero.Family(),
	}

	if err := checkDimensions[V](poses, tr.family.Orders()); err != nil {
		return nil, err
	}

	return tr, nil
}

// checkDimensions verifies that every state vector has the dimension of the
// first waypoint's position.
func checkDimensions[V any, P State[V]](poses []P, orders int) error {
	want := -1
	for i, p := range poses {
		for order := range orders {
			d, ok := any(p.Derivative(order)).(vec.Dimensioned)
			if !ok {
				return nil
			}
			if want < 0 {
				want = d.Dim()
				continue
			}
			if d.Dim() != want {
				return fmt.Errorf("%w: waypoint %d derivative %d has dimension %d, want %d",
					ErrDimensionMismatch, i, order, d.Dim(), want)
			}
		}
	}
	return nil
}

// Len returns the number of waypoints.
func (tr *Trajectory[F, V, P]) Len() int {
	return len(tr.poses)
}

// Poses returns the underlying waypoints.
func (tr *Trajectory[F, V, P]) Poses() []P {
	return tr.poses
}

// Family returns the basis family used for blending.
func (tr *Trajectory[F, V, P]) Family() *hermite.Family {
	return tr.family
}

// Duration returns the largest valid parameter, or 0 for an empty trajectory.
func (tr *Trajectory[F, V, P]) Duration() F {
	if len(tr.poses) == 0 {
		return 0
	}
	return F(len(tr.poses) - 1)
}

// SegmentAt selects the waypoints bounding t. It reports false for an empty
// trajectory and panics when t is negative, NaN, or past the last waypoint.
func (tr *Trajectory[F, V, P]) SegmentAt(t F) (Segment[F, P], bool) {
	n := len(tr.poses)
	if n == 0 {
		return Segment[F, P]{}, false
	}

	x := float64(t)
	if !(x >= 0) || math.Ceil(x) > float64(n-1) {
		panic(fmt.Sprintf("trajectory: parameter %v outside [0, %d]", t, n-1))
	}

	prec := math.Floor(x)
	succ := math.Ceil(x)

	return Segment[F, P]{
		U:     F(x - prec),
		Index: int(prec),
		Prec:  tr.poses[int(prec)],
		Succ:  tr.poses[int(succ)],
	}, true
}

// At evaluates the given derivative (0 = position ... 3 = jerk) at t.
func (tr *Trajectory[F, V, P]) At(derivative int, t F) (V, bool) {
	seg, ok := tr.SegmentAt(t)
	if !ok {
		var zero V
		return zero, false
	}
	return blend[F, V](tr.family, derivative, seg), true
}

// PositionAt returns the position at t.
func (tr *Trajectory[F, V, P]) PositionAt(t F) (V, bool) {
	return tr.At(0, t)
}

// VelocityAt returns the velocity at t.
func (tr *Trajectory[F, V, P]) VelocityAt(t F) (V, bool) {
	return tr.At(1, t)
}

// AccelerationAt returns the acceleration at t.
func (tr *Trajectory[F, V, P]) AccelerationAt(t F) (V, bool) {
	return tr.At(2, t)
}

// JerkAt returns the jerk at t.
func (tr *Trajectory[F, V, P]) JerkAt(t F) (V, bool) {
	return tr.At(3, t)
}

// blend sums each boundary state weighted by its basis function, in basis
// index order (p0, v0, ..., v1, p1).
func blend[F vec.Float, V vec.Vector[V, F], P State[V]](family *hermite.Family, derivative int, seg Segment[F, P]) V {
	var buf [hermite.MaxCount]float64
	weights := family.Weights(derivative, float64(seg.U), buf[:0])

	var out V
	for n, w := range weights {
		order, end := family.Boundary(n)
		p := seg.Prec
		if end == hermite.Finish {
			p = seg.Succ
		}

		term := p.Derivative(order).Scale(F(w))
		if n == 0 {
			out = term
			continue
		}
		out = out.Add(term)
	}
	return out
}
