// SPDX-License-Identifier: MIT
// Package: kolam/pattern
//
// impl_diamond.go - the diamond family.
//
// Neighbor rule:
//   - Diagonal anchor slots (NE,SE,SW,NW) at half spacing: ring steps trace
//     a 45°-rotated square around each dot.
//   - Straight links along the diagonals bridge anchors of diagonal
//     neighbors, producing compact rhombus tiles.
//
// Weaving: none. Closure: maximal eagerness — the walk closes at the first
// legal opportunity, which is what keeps diamond tiles compact.
package pattern

import "github.com/kolamlab/kolam/curve"

const diamondLinkMax = 0.85

type diamondStrategy struct{}

func (diamondStrategy) Type() Type { return Diamond }

func (diamondStrategy) Build(w Wedge) *Graph {
	return buildAnchors(w, ringSpec{
		offsets: diagSlots,
		kind:    curve.Line,
		linkMax: diamondLinkMax,
		weight:  1,
	})
}

func (diamondStrategy) Admit(*State, Node, Node) bool { return true }

func (diamondStrategy) CloseEagerness() float64 { return 1 }

func (diamondStrategy) WeaveBudget() int { return 0 }
