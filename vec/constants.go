package vec

// Float bit sizes for formatting.
const (
	bitSize32 = 32
	bitSize64 = 64
)
