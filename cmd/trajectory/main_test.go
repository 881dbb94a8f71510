package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	trajectory "github.com/tphakala/go-motion-planning"
	"github.com/tphakala/go-motion-planning/internal/waypoint"
	"github.com/tphakala/go-motion-planning/vec"
)

func TestDemo_CSV(t *testing.T) {
	tr, err := demo()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = sampleTo[vec.Vec3d[float64]](context.Background(), &buf, tr, trajectory.SampleConfig{Step: 0.5})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "0,(0,0,0),(0,0,0),(0,0,0)", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "0.5,(0,0.5,0),(0,1.875,0),"), lines[1])
	assert.Equal(t, "1,(0,1,0),(0,0,0),(0,0,0)", lines[2])
}

func TestDemo_DefaultStep(t *testing.T) {
	tr, err := demo()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = sampleTo[vec.Vec3d[float64]](context.Background(), &buf, tr, trajectory.SampleConfig{Step: defaultStep})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 1001)
	assert.True(t, strings.HasPrefix(lines[1], "0.001,"), lines[1])
	assert.True(t, strings.HasPrefix(lines[1000], "1,(0,1,0),"), lines[1000])
}

func TestSampleTo_WaypointFile(t *testing.T) {
	file, err := waypoint.Load(filepath.Join("..", "..", "internal", "waypoint", "testdata", "north.yaml"))
	require.NoError(t, err)
	tr, err := file.Trajectory()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = sampleTo(context.Background(), &buf, tr, trajectory.SampleConfig{Count: 5, Parallel: true})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "0,(0,0,0),(0,1,0),(0,0,0)", lines[0])
	assert.Equal(t, "1,(0,1,0),(0,0,0),(0,0,0)", lines[2])
	assert.Equal(t, "2,(0,2,0),(0,1,0),(0,0,0)", lines[4])
}

func TestSampleTo_Empty(t *testing.T) {
	file, err := waypoint.Decode(strings.NewReader("family: quintic\n"))
	require.NoError(t, err)
	tr, err := file.Trajectory()
	require.NoError(t, err)

	err = sampleTo(context.Background(), &bytes.Buffer{}, tr, trajectory.SampleConfig{Count: 5})
	require.ErrorIs(t, err, trajectory.ErrEmptyTrajectory)
}
