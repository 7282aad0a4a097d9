// SPDX-License-Identifier: MIT
// Package: kolam/compose
//
// wedge.go - symmetry-unique wedge extraction.
//
// Membership is strict: a dot qualifies only when its anchors can stay
// inside the open sector, so replicated segments never touch, let alone
// cross, across wedge boundaries (the sector is convex for every order ≥ 2).
//
// Mirrored groups are special. A dihedral-k group has 2k transforms but the
// composed design must contain exactly k congruent paths, so the motif is
// traced over the dots lying on the wedge's mirror bisector with a
// mirror-symmetric anchor frame: every reflection replica then coincides
// with a rotation replica and collapses in Replicate. Reflective groups
// trace in the open half-plane instead; their two replicas are distinct.
package compose

import (
	"math"

	"github.com/kolamlab/kolam/curve"
	"github.com/kolamlab/kolam/grid"
	"github.com/kolamlab/kolam/pattern"
	"github.com/kolamlab/kolam/symmetry"
)

// axisTolerance is the angular tolerance for classifying a dot as lying on
// the mirror axis of a dihedral wedge.
const axisTolerance = 1e-9

// extractWedge selects the dots of the symmetry-unique region and packages
// them with the sector geometry the walker needs.
func extractWedge(spec grid.Spec, dots []grid.Dot, g symmetry.Group) pattern.Wedge {
	center := g.Center

	// An order-1 rotational group is the trivial symmetry: the whole grid
	// is the wedge and no angular filtering applies.
	if g.Kind == symmetry.Rotational && g.Order == 1 {
		return pattern.Wedge{
			Dots:    dots,
			Center:  center,
			Spacing: spec.Spacing,
			Full:    true,
		}
	}

	start, span := g.WedgeStart(), g.WedgeSpan()
	axis := start + span/2 // anchor-frame bisector; mirror axis when mirrored

	w := pattern.Wedge{
		Center:  center,
		Start:   start,
		Span:    span,
		Axis:    axis,
		Spacing: spec.Spacing,
	}

	if g.Kind == symmetry.Dihedral {
		mirror, _ := g.MirrorAxis()
		for _, d := range dots {
			if onAxis(d.Pos, center, mirror) {
				w.Dots = append(w.Dots, d)
			}
		}
		w.Axis = mirror
		return w
	}

	for _, d := range dots {
		if inSector(d.Pos, center, start, span) {
			w.Dots = append(w.Dots, d)
		}
	}
	return w
}

// inSector reports whether p lies strictly inside the open sector
// [start, start+span] about center. The center itself is excluded.
func inSector(p, center curve.Point, start, span float64) bool {
	v := p.Sub(center)
	if v.Norm() < curve.Epsilon {
		return false
	}
	a := math.Mod(v.Angle()-start, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a > axisTolerance && a < span-axisTolerance
}

// onAxis reports whether p lies on the ray from center at angle axis,
// excluding the center itself. Only the in-wedge half of the mirror line
// counts; the opposite ray belongs to another wedge's replica.
func onAxis(p, center curve.Point, axis float64) bool {
	v := p.Sub(center)
	r := v.Norm()
	if r < curve.Epsilon {
		return false
	}
	d := math.Mod(v.Angle()-axis, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return d < axisTolerance || 2*math.Pi-d < axisTolerance
}
