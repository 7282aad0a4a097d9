// SPDX-License-Identifier: MIT
// Package: kolam/pattern
//
// impl_floral.go - the floral family.
//
// Neighbor rule:
//   - Orthogonal anchor slots as in geometric, but ring steps are arcs that
//     bulge outward through a control point at petalBulge spacings from the
//     dot, forming petal-like sub-loops.
//   - Links between nearby anchors of different dots stay straight so
//     petals read as attached to stems.
//
// Weaving: one controlled overlap per loop is permitted — petals may cross
// at a junction the way hand-drawn flower kolams do. Closure: low eagerness,
// letting loops wander before closing.
package pattern

import "github.com/kolamlab/kolam/curve"

const (
	floralLinkMax   = 0.85
	floralEagerness = 0.4
	floralWeaves    = 1
)

type floralStrategy struct{}

func (floralStrategy) Type() Type { return Floral }

func (floralStrategy) Build(w Wedge) *Graph {
	return buildAnchors(w, ringSpec{
		offsets: orthSlots,
		kind:    curve.Arc,
		bulge:   petalBulge,
		linkMax: floralLinkMax,
		weight:  1,
	})
}

func (floralStrategy) Admit(*State, Node, Node) bool { return true }

func (floralStrategy) CloseEagerness() float64 { return floralEagerness }

func (floralStrategy) WeaveBudget() int { return floralWeaves }
