package trajectory

// Sampling limits
const (
	maxSamples         = 1 << 24 // Largest grid Sample will allocate
	minParallelSamples = 1024    // Below this, goroutine overhead dominates
	ctxCheckInterval   = 256     // Samples evaluated between context checks
)

// stepTolerance absorbs rounding in duration/step so that a step dividing
// the duration exactly still reaches the last waypoint.
const stepTolerance = 1e-9
