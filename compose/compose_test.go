// SPDX-License-Identifier: MIT
// Package: kolam/compose

package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolamlab/kolam/curve"
	"github.com/kolamlab/kolam/grid"
	"github.com/kolamlab/kolam/pattern"
	"github.com/kolamlab/kolam/symmetry"
)

func baseConfig() Config {
	return Config{
		Grid:          grid.Spec{Kind: grid.Square, Rows: 4, Cols: 4, Spacing: 1},
		SymmetryOrder: 4,
		SymmetryKind:  symmetry.Rotational,
		Pattern:       pattern.Geometric,
		Complexity:    pattern.Simple,
		Seed:          42,
	}
}

func TestGenerate_DihedralScenario(t *testing.T) {
	cfg := baseConfig()
	cfg.SymmetryKind = symmetry.Dihedral

	k, err := Generate(cfg)
	require.NoError(t, err)

	// A dihedral-4 design has 8 transforms but the mirror replicas collapse
	// onto the rotation replicas: exactly 4 congruent closed paths remain.
	require.Len(t, k.Paths, 4)
	for pi, p := range k.Paths {
		assert.True(t, p.Closed, "path %d must be closed", pi)
		assert.GreaterOrEqual(t, p.Len(), 3, "path %d", pi)
		assert.LessOrEqual(t, p.Len(), 6, "path %d", pi)
	}

	// Congruence: every path is some group transform of the first.
	for pi := 1; pi < len(k.Paths); pi++ {
		found := false
		for _, tr := range k.Group.Transforms {
			if symmetry.PathsCoincide(symmetry.ApplyToPath(tr, k.Paths[0]), k.Paths[pi]) {
				found = true
				break
			}
		}
		assert.True(t, found, "path %d is not congruent to path 0", pi)
	}
}

func TestGenerate_SparseGridFails(t *testing.T) {
	cfg := baseConfig()
	cfg.Grid = grid.Spec{Kind: grid.Square, Rows: 2, Cols: 2, Spacing: 1}
	cfg.Complexity = pattern.Complex

	_, err := Generate(cfg)
	require.ErrorIs(t, err, pattern.ErrPathGeneration)
}

func TestGenerate_OrderZeroFailsBeforeGridWork(t *testing.T) {
	cfg := baseConfig()
	cfg.SymmetryOrder = 0
	// The grid spec is also invalid: the symmetry failure must win, proving
	// symmetry is validated before any grid construction.
	cfg.Grid.Rows = -1

	_, err := Generate(cfg)
	require.ErrorIs(t, err, symmetry.ErrInvalidSymmetry)
	require.NotErrorIs(t, err, grid.ErrInvalidGrid)
}

func TestGenerate_BadCustomWeights(t *testing.T) {
	cfg := baseConfig()
	cfg.Pattern = pattern.Custom
	cfg.Weights = map[pattern.Type]float64{pattern.Geometric: 0.5, pattern.Floral: 0.6}

	_, err := Generate(cfg)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestGenerate_InvalidInputs(t *testing.T) {
	t.Run("unknown pattern", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Pattern = pattern.Type("paisley")
		_, err := Generate(cfg)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
	t.Run("unknown complexity", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Complexity = pattern.Complexity("ornate")
		_, err := Generate(cfg)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
	t.Run("invalid grid", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Grid.Spacing = 0
		_, err := Generate(cfg)
		require.ErrorIs(t, err, grid.ErrInvalidGrid)
	})
}

func TestGenerate_Deterministic(t *testing.T) {
	cfg := baseConfig()

	a, err := Generate(cfg)
	require.NoError(t, err)
	b, err := Generate(cfg)
	require.NoError(t, err)

	require.Equal(t, len(a.Paths), len(b.Paths))
	for i := range a.Paths {
		require.Equal(t, a.Paths[i].Len(), b.Paths[i].Len(), "path %d", i)
		for j := range a.Paths[i].Segments {
			assert.Equal(t, a.Paths[i].Segments[j], b.Paths[i].Segments[j])
		}
	}
	assert.Equal(t, a.Meta.ID, b.Meta.ID, "equal configs must share a design ID")
}

func TestGenerate_SeedChangesID(t *testing.T) {
	cfg := baseConfig()
	a, err := Generate(cfg)
	require.NoError(t, err)

	cfg.Seed = 43
	b, err := Generate(cfg)
	require.NoError(t, err)
	assert.NotEqual(t, a.Meta.ID, b.Meta.ID)
}

func TestGenerate_RotationalFidelity(t *testing.T) {
	k, err := Generate(baseConfig())
	require.NoError(t, err)
	require.Len(t, k.Paths, 4)

	// Rotating the whole set by 2π/4 maps it onto itself.
	rot := k.Group.Transforms[1]
	for pi, p := range k.Paths {
		moved := symmetry.ApplyToPath(rot, p)
		found := false
		for _, q := range k.Paths {
			if symmetry.PathsCoincide(moved, q) {
				found = true
				break
			}
		}
		assert.True(t, found, "rotated path %d left the design", pi)
	}
}

func TestGenerate_ReflectiveProducesTwoPaths(t *testing.T) {
	cfg := baseConfig()
	cfg.SymmetryKind = symmetry.Reflective
	cfg.SymmetryOrder = 2

	k, err := Generate(cfg)
	require.NoError(t, err)
	assert.Len(t, k.Paths, 2)
}

func TestGenerate_TrivialSymmetry(t *testing.T) {
	cfg := baseConfig()
	cfg.SymmetryKind = symmetry.Rotational
	cfg.SymmetryOrder = 1

	k, err := Generate(cfg)
	require.NoError(t, err)
	assert.Len(t, k.Paths, 1)
}

func TestGenerate_Containment(t *testing.T) {
	for _, typ := range []pattern.Type{pattern.Geometric, pattern.Floral, pattern.Diamond, pattern.Spiral} {
		t.Run(string(typ), func(t *testing.T) {
			cfg := baseConfig()
			cfg.Pattern = typ

			k, err := Generate(cfg)
			require.NoError(t, err)

			min, max := grid.Bounds(k.Grid, overshootMargin*k.Grid.Spacing)
			for pi, p := range k.Paths {
				for _, pt := range p.Points() {
					assert.GreaterOrEqual(t, pt.X, min.X, "path %d", pi)
					assert.GreaterOrEqual(t, pt.Y, min.Y, "path %d", pi)
					assert.LessOrEqual(t, pt.X, max.X, "path %d", pi)
					assert.LessOrEqual(t, pt.Y, max.Y, "path %d", pi)
				}
			}
		})
	}
}

// A custom geometric+floral blend mixes lines and arcs in one anchor graph.
// A walk may still run out of closable candidates (that is a retryable
// ErrPathGeneration), but a completed walk must never be rejected by the
// composed-design validator.
func TestGenerate_CustomMixture(t *testing.T) {
	succeeded := 0
	for seed := int64(1); seed <= 12; seed++ {
		cfg := Config{
			Grid:          grid.Spec{Kind: grid.Square, Rows: 5, Cols: 5, Spacing: 1},
			SymmetryOrder: 4,
			SymmetryKind:  symmetry.Rotational,
			Pattern:       pattern.Custom,
			Complexity:    pattern.Medium,
			Seed:          seed,
			Weights:       map[pattern.Type]float64{pattern.Geometric: 0.5, pattern.Floral: 0.5},
		}
		k, err := Generate(cfg)
		if err != nil {
			require.ErrorIs(t, err, pattern.ErrPathGeneration, "seed %d", seed)
			require.NotErrorIs(t, err, ErrComposition, "seed %d", seed)
			continue
		}
		succeeded++
		for pi, p := range k.Paths {
			assert.True(t, p.Closed, "seed %d path %d", seed, pi)
			assert.NoError(t, p.Check(), "seed %d path %d", seed, pi)
		}
	}
	assert.Greater(t, succeeded, 0, "every seed ran out of candidates")
}

func TestGenerate_FloralManySeeds(t *testing.T) {
	succeeded := 0
	for seed := int64(1); seed <= 12; seed++ {
		cfg := baseConfig()
		cfg.Pattern = pattern.Floral
		cfg.Complexity = pattern.Medium
		cfg.Seed = seed

		k, err := Generate(cfg)
		if err != nil {
			require.ErrorIs(t, err, pattern.ErrPathGeneration, "seed %d", seed)
			require.NotErrorIs(t, err, ErrComposition, "seed %d", seed)
			continue
		}
		succeeded++
		for pi, p := range k.Paths {
			assert.NoError(t, p.Check(), "seed %d path %d", seed, pi)
		}
	}
	assert.Greater(t, succeeded, 0, "every seed ran out of candidates")
}

func TestKolamStats(t *testing.T) {
	k, err := Generate(baseConfig())
	require.NoError(t, err)

	st := k.Stats()
	assert.Equal(t, len(k.Paths), st.Paths)
	total := 0
	for _, p := range k.Paths {
		total += p.Len()
	}
	assert.Equal(t, total, st.Segments)
	assert.Greater(t, st.Points, 0)
	assert.Less(t, st.Min.X, st.Max.X)
	assert.Less(t, st.Min.Y, st.Max.Y)
}

func TestValidate_FlagsOutOfBounds(t *testing.T) {
	k, err := Generate(baseConfig())
	require.NoError(t, err)

	// Drag one path far outside the margin; Validate must flag it.
	bad := *k
	bad.Paths = make([]curve.Path, len(k.Paths))
	for i, p := range k.Paths {
		bad.Paths[i] = p.Clone()
	}
	off := curve.Point{X: 100, Y: 100}
	for i := range bad.Paths[0].Segments {
		s := &bad.Paths[0].Segments[i]
		s.From = s.From.Add(off)
		s.To = s.To.Add(off)
		s.Ctrl = s.Ctrl.Add(off)
	}
	err = Validate(&bad)
	require.ErrorIs(t, err, ErrComposition)
}
