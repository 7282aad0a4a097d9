// SPDX-License-Identifier: MIT
// Package: kolam/pattern
//
// impl_geometric.go - the geometric family.
//
// Neighbor rule:
//   - Orthogonal anchor slots (N,E,S,W) at half spacing: ring steps trace a
//     straight diamond around each dot; facing anchors of orthogonal
//     neighbors coincide, so loops chain across the lattice.
//   - Straight link steps up to geometricLinkMax spacings bridge anchors of
//     different dots (diagonal-ish hops), keeping clear of unrelated dots.
//
// Weaving: none. Closure: moderate eagerness — loops extend while the band
// allows, then close.
package pattern

import "github.com/kolamlab/kolam/curve"

const (
	geometricLinkMax   = 0.85
	geometricEagerness = 0.6
)

type geometricStrategy struct{}

func (geometricStrategy) Type() Type { return Geometric }

func (geometricStrategy) Build(w Wedge) *Graph {
	return buildAnchors(w, ringSpec{
		offsets: orthSlots,
		kind:    curve.Line,
		linkMax: geometricLinkMax,
		weight:  1,
	})
}

func (geometricStrategy) Admit(*State, Node, Node) bool { return true }

func (geometricStrategy) CloseEagerness() float64 { return geometricEagerness }

func (geometricStrategy) WeaveBudget() int { return 0 }
