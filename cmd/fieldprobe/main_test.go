package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func smallConfigFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gravfield.yaml")
	body := "field:\n  world_width: 120\n  world_height: 70\n  params:\n    edge_dist: 2\nlogger:\n  level: error\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestProbeSingleAttractor(t *testing.T) {
	out, err := execute(t, "probe", "--attractor", "5,5,1000", "--cell", "0,5", "--cell", "200,50")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "cell (0,5): fx=-15536 fy=5000", lines[0])
	assert.Equal(t, "cell (200,50): fx=-26 fy=-493", lines[1])
}

func TestProbeRejectsBadArgs(t *testing.T) {
	_, err := execute(t, "probe", "--attractor", "5,5", "--cell", "0,0")
	assert.True(t, errors.Is(err, ErrBadArg))

	_, err = execute(t, "probe", "--attractor", "5,5,-1", "--cell", "0,0")
	assert.True(t, errors.Is(err, ErrBadArg))

	_, err = execute(t, "probe", "--cell", "260,0")
	assert.True(t, errors.Is(err, ErrBadArg))

	_, err = execute(t, "probe")
	assert.Error(t, err, "--cell is required")
}

func TestRowUsesConfigFile(t *testing.T) {
	cfg := smallConfigFile(t)

	out, err := execute(t, "--config", cfg, "row", "--gy", "0")
	require.NoError(t, err)
	assert.Equal(t, "2000 1000 0 0 0 0 0 0 0 0 0 -1000\n", out)

	out, err = execute(t, "--config", cfg, "row", "--gy", "1", "--axis", "y")
	require.NoError(t, err)
	assert.Equal(t, strings.TrimSpace(strings.Repeat("1000 ", 12))+"\n", out)

	_, err = execute(t, "--config", cfg, "row", "--gy", "7")
	assert.True(t, errors.Is(err, ErrBadArg))
	_, err = execute(t, "--config", cfg, "row", "--axis", "z")
	assert.True(t, errors.Is(err, ErrBadArg))
}

func TestRunReportsSummary(t *testing.T) {
	out, err := execute(t, "--config", smallConfigFile(t), "run", "--steps", "5", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "steps=5 attractors=4 probes=64")
	assert.Contains(t, out, "mean probe position:")

	_, err = execute(t, "run", "--steps", "-1")
	assert.Error(t, err)
}

func TestParseAttractorTrimsSpaces(t *testing.T) {
	a, err := parseAttractor(" 10, 20 ,30")
	require.NoError(t, err)
	assert.Equal(t, 10, a.Position.X)
	assert.Equal(t, 20, a.Position.Y)
	assert.Equal(t, 30, a.Mass)
}
