package trajectory

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-motion-planning/internal/testutil"
	"github.com/tphakala/go-motion-planning/vec"
)

// TestSampleConfig_Validate tests configuration validation.
func TestSampleConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     SampleConfig
		wantErr bool
	}{
		{"count", SampleConfig{Count: 10}, false},
		{"step", SampleConfig{Step: 0.001}, false},
		{"parallel with workers", SampleConfig{Count: 10, Parallel: true, Workers: 4}, false},
		{"neither", SampleConfig{}, true},
		{"both", SampleConfig{Count: 10, Step: 0.1}, true},
		{"negative count", SampleConfig{Count: -1}, true},
		{"negative step", SampleConfig{Step: -0.1}, true},
		{"NaN step", SampleConfig{Step: math.NaN()}, true},
		{"infinite step", SampleConfig{Step: math.Inf(1)}, true},
		{"negative workers", SampleConfig{Count: 10, Workers: -2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
		})
	}
}

// TestSampleConfig_Grid tests the parameter grids for count and step sampling.
func TestSampleConfig_Grid(t *testing.T) {
	tests := []struct {
		name     string
		cfg      SampleConfig
		duration float64
		want     []float64
	}{
		{"single count", SampleConfig{Count: 1}, 2, []float64{0}},
		{"count spans both ends", SampleConfig{Count: 5}, 2, []float64{0, 0.5, 1, 1.5, 2}},
		{"step divides duration", SampleConfig{Step: 0.25}, 1, []float64{0, 0.25, 0.5, 0.75, 1}},
		{"step stops before duration", SampleConfig{Step: 0.75}, 2, []float64{0, 0.75, 1.5}},
		{"zero duration", SampleConfig{Step: 0.5}, 0, []float64{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cfg.grid(tt.duration)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestSampleConfig_GridStepRounding tests that a step which does not divide
// exactly in binary still reaches the last waypoint.
func TestSampleConfig_GridStepRounding(t *testing.T) {
	cfg := SampleConfig{Step: 0.001}

	ts, err := cfg.grid(2)
	require.NoError(t, err)

	require.Len(t, ts, 2001)
	assert.Zero(t, ts[0])
	assert.InDelta(t, 2.0, ts[len(ts)-1], 1e-12)
	testutil.AssertMonotonic(t, ts)
	testutil.AssertAllInRange(t, ts, 0, 2)
}

// TestSampleConfig_GridLimit tests that oversized grids are rejected.
func TestSampleConfig_GridLimit(t *testing.T) {
	cfg := SampleConfig{Count: maxSamples + 1}
	_, err := cfg.grid(1)
	require.ErrorIs(t, err, ErrInvalidConfig)

	cfg = SampleConfig{Step: 1e-9}
	_, err = cfg.grid(1)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

// TestSample tests that samples agree with the point queries.
func TestSample(t *testing.T) {
	tr := newQuintic3(t, northStopNorth())

	samples, err := tr.Sample(context.Background(), SampleConfig{Count: 9})
	require.NoError(t, err)
	require.Len(t, samples, 9)

	for _, s := range samples {
		pos, _ := tr.PositionAt(s.T)
		vel, _ := tr.VelocityAt(s.T)
		acc, _ := tr.AccelerationAt(s.T)

		assert.Equal(t, pos, s.Position, "t=%v", s.T)
		assert.Equal(t, vel, s.Velocity, "t=%v", s.T)
		assert.Equal(t, acc, s.Acceleration, "t=%v", s.T)
	}

	assert.Equal(t, vec.V3(0.0, 2, 0), samples[len(samples)-1].Position)
}

// TestSample_Empty tests that sampling needs at least one waypoint.
func TestSample_Empty(t *testing.T) {
	tr := newQuintic3(t, nil)

	_, err := tr.Sample(context.Background(), SampleConfig{Count: 4})
	require.ErrorIs(t, err, ErrEmptyTrajectory)
}

// TestSample_InvalidConfig tests that configuration errors are returned before sampling.
func TestSample_InvalidConfig(t *testing.T) {
	tr := newQuintic3(t, northStopNorth())

	_, err := tr.Sample(context.Background(), SampleConfig{})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

// TestSampleParallel tests that parallel sampling produces bit-exact sequential results.
func TestSampleParallel(t *testing.T) {
	tr := newQuintic3(t, northStopNorth())

	seq, err := tr.Sample(context.Background(), SampleConfig{Step: 0.0005})
	require.NoError(t, err)

	for _, workers := range []int{0, 2, 3, 8} {
		par, err := tr.Sample(context.Background(), SampleConfig{Step: 0.0005, Parallel: true, Workers: workers})
		require.NoError(t, err, "workers=%d", workers)
		require.Len(t, par, len(seq))

		for i := range seq {
			if !assert.Equal(t, seq[i], par[i], "workers=%d sample %d", workers, i) {
				break
			}
		}
	}
}

// TestSampleParallel_VecN tests parallel sampling with slice-backed vectors.
func TestSampleParallel_VecN(t *testing.T) {
	type vn = vec.VecN[float64]
	poses := make([]Pose3[vn], 5)
	for i := range poses {
		f := float64(i)
		poses[i] = Pose3[vn]{
			Position:     vec.N(f, f*f, -f, 1),
			Velocity:     vec.N(1, 2*f, -1, 0),
			Acceleration: vec.N(0.0, 2, 0, 0),
		}
	}
	tr, err := NewQuintic[float64](poses)
	require.NoError(t, err)

	cfg := SampleConfig{Count: 4001}
	seq, err := tr.Sample(context.Background(), cfg)
	require.NoError(t, err)

	cfg.Parallel = true
	cfg.Workers = 4
	par, err := tr.Sample(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, seq, par)
	for _, s := range par {
		testutil.AssertNoNaNOrInf(t, s.Position)
	}
}

// TestSample_Cancelled tests that a cancelled context stops sampling.
func TestSample_Cancelled(t *testing.T) {
	tr := newQuintic3(t, northStopNorth())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, parallel := range []bool{false, true} {
		_, err := tr.Sample(ctx, SampleConfig{Step: 0.0001, Parallel: parallel, Workers: 4})
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled), "parallel=%v: %v", parallel, err)
	}
}

func BenchmarkSample(b *testing.B) {
	tr, err := NewQuintic[float64](northStopNorth())
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()

	b.Run("Sequential", func(b *testing.B) {
		cfg := SampleConfig{Step: 0.0001}
		for b.Loop() {
			if _, err := tr.Sample(ctx, cfg); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("Parallel", func(b *testing.B) {
		cfg := SampleConfig{Step: 0.0001, Parallel: true}
		for b.Loop() {
			if _, err := tr.Sample(ctx, cfg); err != nil {
				b.Fatal(err)
			}
		}
	})
}
