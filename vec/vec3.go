package vec

// Vec3d is a three-component vector.
type Vec3d[F Float] [3]F

// V3 creates a new Vec3d.
func V3[F Float](x, y, z F) Vec3d[F] {
	return Vec3d[F]{x, y, z}
}

// Add returns the vector sum a + b.
func (a Vec3d[F]) Add(b Vec3d[F]) Vec3d[F] {
	return Vec3d[F]{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Sub returns the vector difference a - b.
func (a Vec3d[F]) Sub(b Vec3d[F]) Vec3d[F] {
	return Vec3d[F]{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Scale returns the vector scaled by s.
func (a Vec3d[F]) Scale(s F) Vec3d[F] {
	return Vec3d[F]{s * a[0], s * a[1], s * a[2]}
}

// Neg returns the negation of the vector.
func (a Vec3d[F]) Neg() Vec3d[F] {
	return Vec3d[F]{-a[0], -a[1], -a[2]}
}

// Dot returns the dot product of two vectors.
func (a Vec3d[F]) Dot(b Vec3d[F]) F {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Dim returns 3.
func (a Vec3d[F]) Dim() int {
	return len(a)
}

// String formats the vector as "(x,y,z)".
func (a Vec3d[F]) String() string {
	return format(a[:])
}
