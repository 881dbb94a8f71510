package trajectory

import (
	"github.com/tphakala/go-motion-planning/vec"
)

// Common instantiations for double-precision 2-D and 3-D waypoints.
type (
	Cubic2   = Trajectory[float64, vec.Vec2d[float64], Pose2[vec.Vec2d[float64]]]
	Cubic3   = Trajectory[float64, vec.Vec3d[float64], Pose2[vec.Vec3d[float64]]]
	Quintic2 = Trajectory[float64, vec.Vec2d[float64], Pose3[vec.Vec2d[float64]]]
	Quintic3 = Trajectory[float64, vec.Vec3d[float64], Pose3[vec.Vec3d[float64]]]
	Septic3  = Trajectory[float64, vec.Vec3d[float64], Pose4[vec.Vec3d[float64]]]
)

// Compile-time interface checks.
var (
	_ Evaluator[float64, vec.Vec3d[float64]] = (*Cubic3)(nil)
	_ Evaluator[float64, vec.Vec3d[float64]] = (*Quintic3)(nil)
	_ Evaluator[float64, vec.Vec3d[float64]] = (*Septic3)(nil)
	_ Evaluator[float64, vec.Vec2d[float64]] = (*Quintic2)(nil)
	_ Evaluator[float32, vec.VecN[float32]]  = (*Trajectory[float32, vec.VecN[float32], Pose3[vec.VecN[float32]]])(nil)
	_ State[vec.Vec3d[float64]]              = Pose4[vec.Vec3d[float64]]{}
)

// NewCubic creates a position/velocity trajectory blended with the cubic
// family. Only the scalar type needs to be given:
//
//	tr, err := trajectory.NewCubic[float64](poses)
func NewCubic[F vec.Float, V vec.Vector[V, F]](poses []Pose2[V]) (*Trajectory[F, V, Pose2[V]], error) {
	return New[F, V](poses)
}

// NewQuintic creates an acceleration-continuous trajectory blended with the
// quintic family.
func NewQuintic[F vec.Float, V vec.Vector[V, F]](poses []Pose3[V]) (*Trajectory[F, V, Pose3[V]], error) {
	return New[F, V](poses)
}

// NewSeptic creates a jerk-continuous trajectory blended with the septic
// family.
func NewSeptic[F vec.Float, V vec.Vector[V, F]](poses []Pose4[V]) (*Trajectory[F, V, Pose4[V]], error) {
	return New[F, V](poses)
}
