// Package trajectory evaluates smooth motion trajectories through a sequence
// of waypoints using Hermite basis polynomials.
//
// Each waypoint carries a position plus the derivatives the chosen basis
// family needs as boundary conditions. Waypoint i sits at parameter t = i, so
// a query at t = 1.25 blends waypoints 1 and 2 at local parameter 0.25.
//
// # Features
//
//   - Cubic (position, velocity), quintic (+ acceleration) and septic
//     (+ jerk) blending through one generic evaluator
//   - Position, velocity, acceleration and jerk queries
//   - 2-D, 3-D and N-D vectors in float32 or float64 (package vec)
//   - Closed-form basis functions evaluated with fused multiply-add
//     (package hermite)
//   - Batch sampling, optionally parallel
//
// # Quick Start
//
//	poses := []trajectory.Pose3[vec.Vec3d[float64]]{
//	    {Position: vec.V3(0.0, 0, 0), Velocity: vec.V3(0.0, 1, 0), Acceleration: vec.V3(0.0, 0, 0)},
//	    {Position: vec.V3(0.0, 1, 0), Velocity: vec.V3(0.0, 0, 0), Acceleration: vec.V3(0.0, 0, 0)},
//	}
//	tr, err := trajectory.NewQuintic[float64](poses)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	pos, ok := tr.PositionAt(0.5) // ok is false only for an empty trajectory
//
// # Sampling
//
// [Trajectory.Sample] evaluates a whole grid of parameters:
//
//	samples, err := tr.Sample(ctx, trajectory.SampleConfig{Step: 0.001})
//
// # Boundary Behavior
//
// At an integer parameter both sides of the segment are the same waypoint and
// the blend returns that waypoint's own state exactly. Queries on an empty
// trajectory report no value. A negative parameter, or one past the last
// waypoint, is a caller bug and panics.
//
// # Thread Safety
//
// A [Trajectory] keeps no state between queries and only reads the waypoint
// slice it was built from. Any number of goroutines may query it as long as
// nobody modifies that slice.
package trajectory
