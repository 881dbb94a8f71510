package hermite

// Boundary derivative orders constrained at each end of a segment.
const (
	cubicOrders   = 2 // position, velocity
	quinticOrders = 3 // position, velocity, acceleration
	septicOrders  = 4 // position, velocity, acceleration, jerk
)

// Basis function counts (two boundaries per segment).
const (
	CubicCount   = 2 * cubicOrders
	QuinticCount = 2 * quinticOrders
	SepticCount  = 2 * septicOrders

	// MaxCount is the largest basis count of any family.
	MaxCount = SepticCount
)

// MaxDerivative is the highest derivative order with weight functions.
const MaxDerivative = 3

// Family names used in panics and by waypoint files.
const (
	cubicName   = "cubic"
	quinticName = "quintic"
	septicName  = "septic"
)
