// Package vec provides the small fixed-dimension vectors that waypoints are
// built from.
//
// [Vec2d] and [Vec3d] are arrays, so dimension mismatches are compile errors.
// [VecN] is slice-backed; its dimension is fixed when it is constructed and all
// operands of a binary operation must share it.
package vec

import (
	"strconv"
	"strings"
)

// Float is the scalar constraint for vector components.
type Float interface {
	float32 | float64
}

// Vector is the algebra a trajectory needs to blend waypoint states.
// Weights have the same scalar type as the components.
type Vector[V any, F Float] interface {
	Add(V) V
	Scale(F) V
}

// Dimensioned is implemented by vectors whose dimension is only known at
// run time.
type Dimensioned interface {
	Dim() int
}

// format renders components as "(c0,c1,...)" using the shortest
// representation that round-trips.
func format[F Float](cs []F) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, c := range cs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(formatScalar(c))
	}
	b.WriteByte(')')
	return b.String()
}

func formatScalar[F Float](c F) string {
	if v, ok := any(c).(float32); ok {
		return strconv.FormatFloat(float64(v), 'f', -1, bitSize32)
	}
	return strconv.FormatFloat(float64(c), 'f', -1, bitSize64)
}
