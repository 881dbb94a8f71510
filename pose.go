package trajectory

import (
	"fmt"

	"github.com/tphakala/go-motion-planning/hermite"
)

// State is the capability a waypoint type offers the evaluator: the basis
// family its boundary conditions fit, and access to those conditions by
// derivative order (0 = position, 1 = velocity, ...).
//
// Family must not depend on the receiver's contents; the evaluator calls it
// on the zero value.
type State[V any] interface {
	Family() *hermite.Family
	Derivative(order int) V
}

// Pose2 is a waypoint with position and velocity, blended with the cubic
// family.
type Pose2[V any] struct {
	Position V
	Velocity V
}

// Family returns [hermite.Cubic].
func (Pose2[V]) Family() *hermite.Family {
	return hermite.Cubic
}

// Derivative returns the position (0) or velocity (1).
func (p Pose2[V]) Derivative(order int) V {
	switch order {
	case 0:
		return p.Position
	case 1:
		return p.Velocity
	default:
		panic(noDerivative("Pose2", order))
	}
}

// Pose3 is a waypoint with position, velocity and acceleration, blended with
// the quintic family.
type Pose3[V any] struct {
	Position     V
	Velocity     V
	Acceleration V
}

// Family returns [hermite.Quintic].
func (Pose3[V]) Family() *hermite.Family {
	return hermite.Quintic
}

// Derivative returns the position (0), velocity (1) or acceleration (2).
func (p Pose3[V]) Derivative(order int) V {
	switch order {
	case 0:
		return p.Position
	case 1:
		return p.Velocity
	case 2:
		return p.Acceleration
	default:
		panic(noDerivative("Pose3", order))
	}
}

// Pose4 is a waypoint carrying jerk as well, blended with the septic family
// for jerk-continuous trajectories.
type Pose4[V any] struct {
	Position     V
	Velocity     V
	Acceleration V
	Jerk         V
}

// Family returns [hermite.Septic].
func (Pose4[V]) Family() *hermite.Family {
	return hermite.Septic
}

// Derivative returns the position (0), velocity (1), acceleration (2) or
// jerk (3).
func (p Pose4[V]) Derivative(order int) V {
	switch order {
	case 0:
		return p.Position
	case 1:
		return p.Velocity
	case 2:
		return p.Acceleration
	case 3:
		return p.Jerk
	default:
		panic(noDerivative("Pose4", order))
	}
}

func noDerivative(pose string, order int) string {
	return fmt.Sprintf("trajectory: %s has no derivative %d", pose, order)
}
