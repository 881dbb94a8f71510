// Command trajectory-wav renders a trajectory's position as a multichannel
// WAV file, one channel per axis. Listening to or plotting the result is a
// quick way to spot discontinuities between waypoints.
//
// Usage:
//
//	trajectory-wav waypoints.yaml output.wav
//	trajectory-wav -rate 8000 -seconds 0.5 -bits 24 waypoints.yaml output.wav
//
// Each segment between two waypoints lasts -seconds. All channels share one
// gain, chosen so that the largest absolute coordinate reaches full scale.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	trajectory "github.com/tphakala/go-motion-planning"
	"github.com/tphakala/go-motion-planning/internal/logging"
	"github.com/tphakala/go-motion-planning/internal/waypoint"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Parse command line flags
	rate := flag.Int("rate", defaultRate, "Output sample rate in Hz")
	seconds := flag.Float64("seconds", defaultSegmentSeconds, "Duration of each segment between waypoints in seconds")
	bits := flag.Int("bits", defaultBitDepth, "PCM bit depth: 16, 24 or 32")
	parallel := flag.Bool("parallel", true, "Evaluate the trajectory in parallel")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] waypoints.yaml output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return errors.New("insufficient arguments")
	}

	opts := renderOptions{
		rate:     *rate,
		seconds:  *seconds,
		bitDepth: *bits,
		parallel: *parallel,
	}
	if err := opts.validate(); err != nil {
		return err
	}

	logger, err := logging.New(*verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	inputPath := args[0]
	outputPath := args[1]

	file, err := waypoint.Load(inputPath)
	if err != nil {
		return err
	}
	tr, err := file.Trajectory()
	if err != nil {
		return err
	}

	logger.Debug("loaded waypoints",
		zap.String("file", inputPath),
		zap.Stringer("family", tr.Family()),
		zap.Int("waypoints", tr.Len()),
		zap.Int("dim", file.Dim()))

	start := time.Now()
	stats, err := render(context.Background(), tr, outputPath, opts)
	if err != nil {
		return err
	}

	logger.Debug("rendered",
		zap.Int("frames", stats.frames),
		zap.Float64("peak", stats.peak),
		zap.Duration("elapsed", time.Since(start)))

	// Print summary
	fmt.Printf("Rendered %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	fmt.Printf("  %d waypoints (%s), %d channels, %d Hz, %d-bit\n",
		tr.Len(), tr.Family(), stats.channels, opts.rate, opts.bitDepth)
	fmt.Printf("  %d frames, peak coordinate %g\n", stats.frames, stats.peak)

	return nil
}

// render samples tr at the output rate and writes the position channels to
// outputPath.
func render(ctx context.Context, tr waypoint.Evaluator, outputPath string, opts renderOptions) (*renderStats, error) {
	frames, err := opts.frames(tr.Len())
	if err != nil {
		return nil, err
	}

	samples, err := tr.Sample(ctx, trajectory.SampleConfig{
		Count:    frames,
		Parallel: opts.parallel,
	})
	if err != nil {
		return nil, err
	}

	channels := positionChannels(samples)
	peak := normalize(channels)

	if err := writeWAV(outputPath, opts.rate, opts.bitDepth, channels); err != nil {
		return nil, err
	}

	return &renderStats{
		frames:   frames,
		channels: len(channels),
		peak:     peak,
	}, nil
}
