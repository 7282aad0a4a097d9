// SPDX-License-Identifier: MIT
// Package: kolam/compose
//
// compose.go - Generate, the pipeline entry point.
//
// Stage order is contractual: config validation, then symmetry resolution,
// then grid construction, then motif tracing — each stage fails before any
// work of the next stage begins, so an order-0 symmetry request never
// touches the grid and bad custom weights never touch geometry at all.
//
// Retry policy: motif tracing is the only recoverable stage. Each failed
// attempt derives a fresh seed from the base seed via SplitMix64, up to
// retryBudget attempts, then the last failure surfaces. Mirrored groups
// additionally require the motif to coincide with its own mirror image;
// an asymmetric motif consumes a retry like a failed trace does.
package compose

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/kolamlab/kolam/curve"
	"github.com/kolamlab/kolam/grid"
	"github.com/kolamlab/kolam/pattern"
	"github.com/kolamlab/kolam/symmetry"
)

// retryBudget is the number of derived-seed attempts at tracing the motif
// before ErrPathGeneration surfaces to the caller.
const retryBudget = 5

const methodGenerate = "Generate"

// Generate runs the full pipeline and returns the frozen design.
func Generate(cfg Config) (*Kolam, error) {
	strat, err := resolveStrategy(cfg)
	if err != nil {
		return nil, err
	}
	if _, _, ok := cfg.Complexity.Band(); !ok {
		return nil, fmt.Errorf("%s: complexity %q: %w",
			methodGenerate, cfg.Complexity, ErrInvalidConfig)
	}

	group, err := symmetry.Resolve(cfg.SymmetryOrder, cfg.SymmetryKind, grid.Center(cfg.Grid))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}
	dots, err := grid.Build(cfg.Grid)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	wedge := extractWedge(cfg.Grid, dots, group)
	motif, attempt, err := traceWithRetries(wedge, strat, group, cfg)
	if err != nil {
		return nil, err
	}

	k := &Kolam{
		Grid:  cfg.Grid,
		Dots:  dots,
		Group: group,
		Paths: symmetry.Replicate(motif, group),
		Meta: Metadata{
			ID:            uuid.NewSHA1(uuid.NameSpaceOID, []byte(cfg.Fingerprint())),
			Seed:          cfg.Seed,
			Attempt:       attempt,
			Weaves:        strat.WeaveBudget(),
			Pattern:       cfg.Pattern,
			Complexity:    cfg.Complexity,
			SymmetryKind:  cfg.SymmetryKind,
			SymmetryOrder: cfg.SymmetryOrder,
		},
	}
	if err := Validate(k); err != nil {
		return nil, err
	}
	return k, nil
}

// resolveStrategy maps the config's pattern selection to a strategy,
// folding weight and type errors into ErrInvalidConfig.
func resolveStrategy(cfg Config) (pattern.Strategy, error) {
	if cfg.Pattern == pattern.Custom {
		s, err := pattern.NewCustom(cfg.Weights)
		if err != nil {
			return nil, fmt.Errorf("%s: %v: %w", methodGenerate, err, ErrInvalidConfig)
		}
		return s, nil
	}
	s, err := pattern.New(cfg.Pattern)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", methodGenerate, err, ErrInvalidConfig)
	}
	return s, nil
}

// traceWithRetries traces the seed motif, deriving a new seed per failed
// attempt. For mirrored groups the motif must coincide with its own mirror
// image so reflection replicas collapse onto rotation replicas.
func traceWithRetries(w pattern.Wedge, s pattern.Strategy, g symmetry.Group, cfg Config) (curve.Path, int, error) {
	var lastErr error
	for attempt := 0; attempt < retryBudget; attempt++ {
		seed := cfg.Seed
		if attempt > 0 {
			seed = pattern.DeriveSeed(cfg.Seed, uint64(attempt))
		}
		motif, err := pattern.Trace(w, s, cfg.Complexity, seed)
		if err != nil {
			lastErr = err
			continue
		}
		if g.Kind == symmetry.Dihedral && !mirrorSymmetric(motif, g) {
			lastErr = fmt.Errorf("%s: attempt %d traced an asymmetric motif: %w",
				methodGenerate, attempt, pattern.ErrPathGeneration)
			continue
		}
		return motif, attempt, nil
	}
	return curve.Path{}, 0, fmt.Errorf(
		"%s: %s/%s motif failed after %d attempts: %w",
		methodGenerate, cfg.Pattern, cfg.Complexity, retryBudget, lastErr)
}

// mirrorSymmetric reports whether the motif coincides with its reflection
// across the group's mirror axis.
func mirrorSymmetric(motif curve.Path, g symmetry.Group) bool {
	axis, ok := g.MirrorAxis()
	if !ok {
		return true
	}
	mirrored := symmetry.ApplyToPath(symmetry.ReflectionAbout(axis, g.Center), motif)
	return symmetry.PathsCoincide(motif, mirrored)
}
