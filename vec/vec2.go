package vec

// Vec2d is a two-component vector.
type Vec2d[F Float] [2]F

// V2 creates a new Vec2d.
func V2[F Float](x, y F) Vec2d[F] {
	return Vec2d[F]{x, y}
}

// Add returns the vector sum a + b.
func (a Vec2d[F]) Add(b Vec2d[F]) Vec2d[F] {
	return Vec2d[F]{a[0] + b[0], a[1] + b[1]}
}

// Sub returns the vector difference a - b.
func (a Vec2d[F]) Sub(b Vec2d[F]) Vec2d[F] {
	return Vec2d[F]{a[0] - b[0], a[1] - b[1]}
}

// Scale returns the vector scaled by s.
func (a Vec2d[F]) Scale(s F) Vec2d[F] {
	return Vec2d[F]{s * a[0], s * a[1]}
}

// Neg returns the negation of the vector.
func (a Vec2d[F]) Neg() Vec2d[F] {
	return Vec2d[F]{-a[0], -a[1]}
}

// Dot returns the dot product of two vectors.
func (a Vec2d[F]) Dot(b Vec2d[F]) F {
	return a[0]*b[0] + a[1]*b[1]
}

// Dim returns 2.
func (a Vec2d[F]) Dim() int {
	return len(a)
}

// String formats the vector as "(x,y)".
func (a Vec2d[F]) String() string {
	return format(a[:])
}
