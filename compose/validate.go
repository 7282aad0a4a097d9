// SPDX-License-Identifier: MIT
// Package: kolam/compose
//
// validate.go - the assertion-style structural check on a frozen design.
//
// Validate should never fail on valid input: every rule it checks is
// guaranteed by construction upstream. It exists to turn a latent generator
// bug into a loud ErrComposition instead of a silently malformed design.
package compose

import (
	"fmt"
	"strings"

	"github.com/kolamlab/kolam/curve"
	"github.com/kolamlab/kolam/grid"
)

// overshootMargin is the decorative overshoot allowance around the dot
// bounding box, in spacing units. Arc bulges and anchor offsets stay well
// inside it.
const overshootMargin = 1.5

// Validate checks the structural invariants of a frozen design: every path
// is well formed, every point lies within grid bounds plus the overshoot
// margin, and no two non-adjacent segments of a non-weaving design cross.
// All violations are collected before the error is built.
func Validate(k *Kolam) error {
	var violations []string

	min, max := grid.Bounds(k.Grid, overshootMargin*k.Grid.Spacing)
	for pi, p := range k.Paths {
		if err := p.Check(); err != nil {
			violations = append(violations, fmt.Sprintf("path %d: %v", pi, err))
		}
		for _, pt := range p.Points() {
			if pt.X < min.X || pt.Y < min.Y || pt.X > max.X || pt.Y > max.Y {
				violations = append(violations,
					fmt.Sprintf("path %d: point (%g, %g) outside bounds", pi, pt.X, pt.Y))
				break
			}
		}
	}

	if k.Meta.Weaves == 0 {
		violations = append(violations, crossingViolations(k.Paths)...)
	}

	if len(violations) > 0 {
		return fmt.Errorf("Validate: %d violations: %s: %w",
			len(violations), strings.Join(violations, "; "), ErrComposition)
	}
	return nil
}

// crossingViolations scans every non-adjacent segment pair of the composed
// set. O(n²) over total segments; composed sets are small.
func crossingViolations(paths []curve.Path) []string {
	type placed struct {
		seg  curve.Segment
		path int
	}
	var all []placed
	for pi, p := range paths {
		for _, s := range p.Segments {
			all = append(all, placed{seg: s, path: pi})
		}
	}

	var violations []string
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			a, b := all[i], all[j]
			if a.path == b.path && a.seg.SameEdge(b.seg) {
				continue // same-path duplicates are Check's concern
			}
			if curve.Adjacent(a.seg, b.seg) {
				continue
			}
			if curve.SegmentsCross(a.seg, b.seg) {
				violations = append(violations, fmt.Sprintf(
					"paths %d and %d: segments cross near (%g, %g)",
					a.path, b.path, a.seg.From.X, a.seg.From.Y))
			}
		}
	}
	return violations
}
