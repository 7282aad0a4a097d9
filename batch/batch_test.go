// SPDX-License-Identifier: MIT
// Package: kolam/batch

package batch

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolamlab/kolam/compose"
	"github.com/kolamlab/kolam/grid"
	"github.com/kolamlab/kolam/pattern"
	"github.com/kolamlab/kolam/symmetry"
)

func testConfig() compose.Config {
	return compose.Config{
		Grid:          grid.Spec{Kind: grid.Square, Rows: 4, Cols: 4, Spacing: 1},
		SymmetryOrder: 4,
		SymmetryKind:  symmetry.Rotational,
		Pattern:       pattern.Geometric,
		Complexity:    pattern.Simple,
		Seed:          42,
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	m, err := Run(context.Background(), Request{
		Config: testConfig(),
		Count:  4,
		Dir:    dir,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, m.Requested)
	assert.Equal(t, 4, m.Succeeded)
	require.Len(t, m.Items, 4)

	seen := map[int64]bool{}
	for i, it := range m.Items {
		assert.Equal(t, i, it.Index)
		assert.Empty(t, it.Err)
		assert.False(t, seen[it.Seed], "derived seeds must be distinct")
		seen[it.Seed] = true

		_, err := os.Stat(filepath.Join(dir, it.File))
		assert.NoError(t, err, "item %d file missing", i)
	}
	assert.Equal(t, int64(42), m.Items[0].Seed, "first design uses the base seed")

	// The manifest on disk round-trips.
	data, err := os.ReadFile(filepath.Join(dir, manifestName))
	require.NoError(t, err)
	var onDisk Manifest
	require.NoError(t, json.Unmarshal(data, &onDisk))
	assert.Equal(t, m.RunID, onDisk.RunID)
	assert.Len(t, onDisk.Items, 4)
}

func TestRun_FailuresAreRecordedNotFatal(t *testing.T) {
	cfg := testConfig()
	cfg.Grid = grid.Spec{Kind: grid.Square, Rows: 2, Cols: 2, Spacing: 1}
	cfg.Complexity = pattern.Complex

	m, err := Run(context.Background(), Request{Config: cfg, Count: 2, Dir: t.TempDir()})
	require.NoError(t, err)

	assert.Equal(t, 0, m.Succeeded)
	for _, it := range m.Items {
		assert.NotEmpty(t, it.Err)
		assert.Empty(t, it.File, "failed designs must not be written")
	}
}

func TestRun_WriteFailureRecorded(t *testing.T) {
	dir := t.TempDir()
	// A directory squatting on the first design's file name makes its write
	// fail; the failure must land in the manifest, never as a silent success.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "kolam-000.svg"), 0o755))

	m, err := Run(context.Background(), Request{Config: testConfig(), Count: 2, Dir: dir, Workers: 1})
	require.NoError(t, err)

	assert.Equal(t, 1, m.Succeeded)
	assert.NotEmpty(t, m.Items[0].Err)
	assert.Empty(t, m.Items[0].File)
	assert.Empty(t, m.Items[1].Err)
	assert.Equal(t, "kolam-001.svg", m.Items[1].File)
}

func TestRun_BadCount(t *testing.T) {
	_, err := Run(context.Background(), Request{Config: testConfig(), Count: 0, Dir: t.TempDir()})
	require.Error(t, err)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Request{Config: testConfig(), Count: 8, Dir: t.TempDir()})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRun_Deterministic(t *testing.T) {
	a, err := Run(context.Background(), Request{Config: testConfig(), Count: 3, Dir: t.TempDir()})
	require.NoError(t, err)
	b, err := Run(context.Background(), Request{Config: testConfig(), Count: 3, Dir: t.TempDir()})
	require.NoError(t, err)

	for i := range a.Items {
		assert.Equal(t, a.Items[i].Seed, b.Items[i].Seed)
		assert.Equal(t, a.Items[i].ID, b.Items[i].ID)
		assert.Equal(t, a.Items[i].Segments, b.Items[i].Segments)
	}
}
