// SPDX-License-Identifier: MIT
// Package: kolam/compose
//
// Package compose is the generation pipeline: it validates a Config, builds
// the dot grid, resolves the symmetry group, extracts the symmetry-unique
// wedge, traces the seed motif (retrying with derived seeds on failure),
// replicates it across the group, and freezes the result into an immutable
// Kolam.
//
// What: Generate(Config) → *Kolam | error.
//
// Why a single entry point: every stage is pure and deterministic, so the
// pipeline composes as a plain function chain. Batch and CLI layers invoke
// Generate once per design with derived seeds; there is no shared mutable
// state anywhere in the pipeline.
//
// Errors:
//
//   - ErrInvalidConfig: a malformed Config field (unknown pattern type or
//     complexity, bad custom weights). Fails before any geometry work.
//   - symmetry.ErrInvalidSymmetry, grid.ErrInvalidGrid: forwarded from the
//     respective stages, also before any path work.
//   - pattern.ErrPathGeneration: no motif found after the retry budget.
//   - ErrComposition: a frozen design violated a structural invariant.
//     Assertion-style — indicates a generator bug, never retried.
package compose
