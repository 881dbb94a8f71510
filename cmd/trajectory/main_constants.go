package main

// Default command-line flag values
const (
	defaultStep    = 0.001 // 1001 samples over the two-waypoint demo
	defaultSamples = 0     // use -step unless set
)

// Output formatting
const (
	csvBufferSize = 64 * 1024
	floatBits     = 64
)
