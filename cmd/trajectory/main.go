// Command trajectory samples a trajectory and prints one CSV line per sample:
//
//	t,position,velocity,acceleration
//
// Vectors are printed as (x,y,z). Without -file it samples the built-in
// demo: a quintic move from the origin to (0,1,0) with zero velocity and
// acceleration at both ends.
//
// Usage:
//
//	trajectory                            # demo, t = 0, 0.001, ..., 1
//	trajectory -file path.yaml -step 0.01
//	trajectory -file path.yaml -samples 500 -parallel
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"

	"go.uber.org/zap"

	trajectory "github.com/tphakala/go-motion-planning"
	"github.com/tphakala/go-motion-planning/internal/logging"
	"github.com/tphakala/go-motion-planning/internal/waypoint"
	"github.com/tphakala/go-motion-planning/vec"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Command-line flags
	var (
		path     = flag.String("file", "", "YAML waypoint file (default: built-in demo)")
		samples  = flag.Int("samples", defaultSamples, "Number of evenly spaced samples (overrides -step)")
		step     = flag.Float64("step", defaultStep, "Parameter step between samples")
		parallel = flag.Bool("parallel", false, "Evaluate samples in parallel")
		verbose  = flag.Bool("v", false, "Verbose output on stderr")
	)
	flag.Parse()

	logger, err := logging.New(*verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg := trajectory.SampleConfig{Parallel: *parallel}
	if *samples > 0 {
		cfg.Count = *samples
	} else {
		cfg.Step = *step
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out := bufio.NewWriterSize(os.Stdout, csvBufferSize)

	if *path == "" {
		logger.Debug("sampling demo trajectory", zap.Int("count", cfg.Count), zap.Float64("step", cfg.Step))
		tr, err := demo()
		if err != nil {
			return err
		}
		if err := sampleTo[vec.Vec3d[float64]](ctx, out, tr, cfg); err != nil {
			return err
		}
		return out.Flush()
	}

	file, err := waypoint.Load(*path)
	if err != nil {
		return err
	}
	tr, err := file.Trajectory()
	if err != nil {
		return err
	}

	logger.Debug("sampling waypoint file",
		zap.String("file", *path),
		zap.Stringer("family", tr.Family()),
		zap.Int("waypoints", tr.Len()),
		zap.Int("count", cfg.Count),
		zap.Float64("step", cfg.Step),
		zap.Bool("parallel", cfg.Parallel))

	if err := sampleTo(ctx, out, tr, cfg); err != nil {
		return err
	}
	return out.Flush()
}

// demo returns the two-waypoint straight-line trajectory.
func demo() (*trajectory.Quintic3, error) {
	return trajectory.NewQuintic[float64]([]trajectory.Pose3[vec.Vec3d[float64]]{
		{Position: vec.V3(0.0, 0, 0), Velocity: vec.V3(0.0, 0, 0), Acceleration: vec.V3(0.0, 0, 0)},
		{Position: vec.V3(0.0, 1, 0), Velocity: vec.V3(0.0, 0, 0), Acceleration: vec.V3(0.0, 0, 0)},
	})
}

// sampleTo samples tr and writes the samples as CSV.
func sampleTo[V fmt.Stringer](ctx context.Context, w io.Writer, tr trajectory.Evaluator[float64, V], cfg trajectory.SampleConfig) error {
	samples, err := tr.Sample(ctx, cfg)
	if err != nil {
		return err
	}
	return writeCSV(w, samples)
}

// writeCSV writes t,position,velocity,acceleration per sample.
func writeCSV[V fmt.Stringer](w io.Writer, samples []trajectory.Sample[float64, V]) error {
	var line []byte
	for _, s := range samples {
		line = strconv.AppendFloat(line[:0], s.T, 'f', -1, floatBits)
		line = append(line, ',')
		line = append(line, s.Position.String()...)
		line = append(line, ',')
		line = append(line, s.Velocity.String()...)
		line = append(line, ',')
		line = append(line, s.Acceleration.String()...)
		line = append(line, '\n')

		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}
