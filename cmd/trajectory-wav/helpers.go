package main

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	trajectory "github.com/tphakala/go-motion-planning"
	"github.com/tphakala/go-motion-planning/vec"
)

// renderOptions holds the validated command-line settings.
type renderOptions struct {
	rate     int
	seconds  float64
	bitDepth int
	parallel bool
}

// renderStats summarizes a finished render.
type renderStats struct {
	frames   int
	channels int
	peak     float64
}

// validate checks the options before any file is touched.
func (o *renderOptions) validate() error {
	if o.rate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", o.rate)
	}
	if !(o.seconds > 0) || math.IsInf(o.seconds, 0) {
		return fmt.Errorf("segment duration must be a positive number of seconds, got %g", o.seconds)
	}
	switch o.bitDepth {
	case bitsPerSample16, bitsPerSample24, bitsPerSample32:
	default:
		return fmt.Errorf("unsupported bit depth %d (want 16, 24 or 32)", o.bitDepth)
	}
	return nil
}

// frames returns the number of output frames for a trajectory with the given
// number of waypoints: one per sample period plus the final waypoint.
// Renders longer than maxFrames are rejected, never shortened.
func (o *renderOptions) frames(waypoints int) (int, error) {
	if waypoints <= 1 {
		return 1, nil
	}
	n := math.Round(o.seconds*float64(o.rate)*float64(waypoints-1)) + 1
	if n > maxFrames {
		return 0, fmt.Errorf("%g s per segment over %d segments at %d Hz needs %.0f frames, limit is %d",
			o.seconds, waypoints-1, o.rate, n, maxFrames)
	}
	return int(n), nil
}

// positionChannels transposes sampled positions into one slice per axis.
func positionChannels(samples []trajectory.Sample[float64, vec.VecN[float64]]) [][]float64 {
	if len(samples) == 0 {
		return nil
	}

	dim := samples[0].Position.Dim()
	channels := make([][]float64, dim)
	for ch := range channels {
		channels[ch] = make([]float64, len(samples))
	}

	for i, s := range samples {
		for ch, c := range s.Position {
			channels[ch][i] = c
		}
	}
	return channels
}

// normalize scales all channels by one gain so the largest absolute value
// becomes 1, and returns that value. Silent input is left untouched.
func normalize(channels [][]float64) float64 {
	var peak float64
	for _, ch := range channels {
		for _, v := range ch {
			peak = max(peak, math.Abs(v))
		}
	}
	if peak == 0 {
		return 0
	}

	gain := 1 / peak
	for _, ch := range channels {
		for i := range ch {
			ch[i] *= gain
		}
	}
	return peak
}

// getMaxValue returns the full-scale integer value for a bit depth.
func getMaxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

// interleave converts channels in [-1, 1] to interleaved PCM integers.
func interleave(channels [][]float64, bitDepth int) []int {
	if len(channels) == 0 || len(channels[0]) == 0 {
		return nil
	}

	numChannels := len(channels)
	samplesPerChannel := len(channels[0])
	result := make([]int, samplesPerChannel*numChannels)
	maxVal := getMaxValue(bitDepth)

	for i := range samplesPerChannel {
		for ch := range numChannels {
			sample := max(-1, min(1, channels[ch][i]))
			result[i*numChannels+ch] = int(math.Round(sample * maxVal))
		}
	}
	return result
}

// writeWAV encodes the channels as PCM to path.
func writeWAV(path string, sampleRate, bitDepth int, channels [][]float64) (err error) {
	if len(channels) == 0 {
		return fmt.Errorf("nothing to write: trajectory has no axes")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc := wav.NewEncoder(f, sampleRate, bitDepth, len(channels), wavFormatPCM)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: len(channels),
			SampleRate:  sampleRate,
		},
		Data:           interleave(channels, bitDepth),
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return nil
}
