package main

// CLI defaults
const (
	defaultRate           = 8000 // Hz
	defaultSegmentSeconds = 1.0  // seconds per waypoint segment
	defaultBitDepth       = 16
	minRequiredArgs       = 2
)

// Sample format constants
const (
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	wavFormatPCM = 1 // WAVE_FORMAT_PCM
)

// Render limits
const (
	maxFrames = 1 << 24 // matches the sampling limit of the library
)
