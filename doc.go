// Package kolam generates traditional kolam designs — continuous decorative
// loops woven around a dot lattice with strong rotational, reflective, or
// dihedral symmetry — deterministically from a seed.
//
// 🚀 What is kolam?
//
//	A pure, deterministic generation core plus thin output layers:
//		• Dot grids: square, triangular, radial lattices
//		• Symmetry groups: rotations, reflections, dihedral combinations
//		• Motif tracing: a constrained seeded walk over loop anchor points
//		• Pattern families: geometric, floral, diamond, spiral, custom mixes
//		• Composition: replication, structural validation, frozen output
//		• Output: SVG export, terminal preview, parallel batch runs
//
// ✨ Why choose kolam?
//
//   - Reproducible – every design is a pure function of (config, seed)
//   - Authentic – loops weave around dots, never through them
//   - Validated – closure, containment, and crossing rules are enforced
//   - Extensible – pattern families plug in through one small interface
//
// Under the hood, everything is organized under these subpackages:
//
//	curve/    — points, segments, paths & ε-tolerant geometric predicates
//	grid/     — dot lattice construction
//	symmetry/ — transform groups, replication, coincidence collapse
//	pattern/  — anchor graphs, family strategies & the traversal core
//	compose/  — the pipeline: validate, trace, replicate, freeze
//	render/   — SVG writer & styled terminal preview
//	config/   — TOML config loading
//	batch/    — concurrent multi-design runs with derived seeds
//	cmd/kolamgen — the CLI
//
// Quick ASCII example:
//
//	    ·─·   ·─·
//	    │ ● │ ● │     dots with a loop woven around them
//	    ·─·   ·─·
//
//	go get github.com/kolamlab/kolam
package kolam
