package trajectory

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-motion-planning/vec"
)

// Sample is the trajectory state at one parameter value.
type Sample[F vec.Float, V any] struct {
	T            F
	Position     V
	Velocity     V
	Acceleration V
}

// SampleConfig selects the parameter grid for Sample.
type SampleConfig struct {
	// Count is the number of samples spread evenly over [0, Duration],
	// both ends included. A single sample is taken at t = 0.
	Count int

	// Step samples t = 0, Step, 2*Step, ... up to Duration.
	// The last sample is clamped to Duration. Used when Count is 0.
	Step float64

	// Parallel evaluates chunks of the grid concurrently.
	Parallel bool

	// Workers bounds the number of concurrent chunks.
	// Zero means runtime.GOMAXPROCS(0).
	Workers int
}

// Validate checks if the configuration is valid.
func (c *SampleConfig) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("%w: count must not be negative", ErrInvalidConfig)
	}

	if c.Step < 0 || math.IsNaN(c.Step) || math.IsInf(c.Step, 0) {
		return fmt.Errorf("%w: step must be a positive finite number", ErrInvalidConfig)
	}

	if c.Count == 0 && c.Step == 0 {
		return fmt.Errorf("%w: either count or step must be set", ErrInvalidConfig)
	}

	if c.Count > 0 && c.Step > 0 {
		return fmt.Errorf("%w: count and step are mutually exclusive", ErrInvalidConfig)
	}

	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative", ErrInvalidConfig)
	}

	return nil
}

// grid returns the parameter values for a trajectory of the given duration.
func (c *SampleConfig) grid(duration float64) ([]float64, error) {
	if c.Count > 0 {
		if c.Count > maxSamples {
			return nil, fmt.Errorf("%w: %d samples exceeds limit of %d", ErrInvalidConfig, c.Count, maxSamples)
		}
		ts := make([]float64, c.Count)
		if c.Count == 1 {
			return ts, nil
		}
		floats.Span(ts, 0, duration)
		for i := range ts {
			ts[i] = min(ts[i], duration)
		}
		return ts, nil
	}

	steps := math.Floor(duration/c.Step + stepTolerance)
	if steps+1 > maxSamples {
		return nil, fmt.Errorf("%w: step %g yields more than %d samples", ErrInvalidConfig, c.Step, maxSamples)
	}

	ts := make([]float64, int(steps)+1)
	for i := range ts {
		ts[i] = min(float64(i)*c.Step, duration)
	}
	return ts, nil
}

func (c *SampleConfig) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Sample evaluates position, velocity and acceleration on the grid described
// by cfg. Parallel and sequential evaluation produce identical results.
func (tr *Trajectory[F, V, P]) Sample(ctx context.Context, cfg SampleConfig) ([]Sample[F, V], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if len(tr.poses) == 0 {
		return nil, ErrEmptyTrajectory
	}

	ts, err := cfg.grid(float64(tr.Duration()))
	if err != nil {
		return nil, err
	}

	out := make([]Sample[F, V], len(ts))

	// Sequential processing (default or when the grid is small)
	workers := cfg.workers()
	if !cfg.Parallel || workers == 1 || len(ts) < minParallelSamples {
		if err := tr.sampleRange(ctx, ts, out, 0, len(ts)); err != nil {
			return nil, err
		}
		return out, nil
	}

	// Parallel processing: one chunk per worker
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	chunk := (len(ts) + workers - 1) / workers
	for start := 0; start < len(ts); start += chunk {
		end := min(start+chunk, len(ts))
		g.Go(func() error {
			return tr.sampleRange(gctx, ts, out, start, end)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// sampleRange fills out[start:end], checking ctx periodically.
func (tr *Trajectory[F, V, P]) sampleRange(ctx context.Context, ts []float64, out []Sample[F, V], start, end int) error {
	for i := start; i < end; i++ {
		if (i-start)%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		out[i] = tr.sampleAt(F(ts[i]))
	}
	return nil
}

// sampleAt selects the segment once and blends it three times.
func (tr *Trajectory[F, V, P]) sampleAt(t F) Sample[F, V] {
	seg, _ := tr.SegmentAt(t)
	return Sample[F, V]{
		T:            t,
		Position:     blend[F, V](tr.family, 0, seg),
		Velocity:     blend[F, V](tr.family, 1, seg),
		Acceleration: blend[F, V](tr.family, 2, seg),
	}
}
