// SPDX-License-Identifier: MIT
// Package: kolam/pattern
//
// impl_spiral.go - the spiral family.
//
// Neighbor rule:
//   - All eight compass slots in angular order, straight ring steps, plus
//     links — the densest anchor graph, so radius-ordered walks have moves
//     to choose from.
//   - Admit enforces the spiral discipline: while outbound, every step must
//     keep the radius (distance from the wedge origin) non-decreasing within
//     a slack of spiralSlack spacings; after the walk reaches the
//     complexity-determined peak radius it reverses and the radius must be
//     non-increasing, pulling the loop back toward its start.
//
// Weaving: none. Closure: high eagerness once inbound.
package pattern

import "github.com/kolamlab/kolam/curve"

const (
	spiralLinkMax   = 0.85
	spiralEagerness = 0.7
	// spiralSlack absorbs the small radius wobble of ring steps around a
	// dot, in spacing units; without it no loop could ever close.
	spiralSlack = 0.45
)

type spiralStrategy struct{}

func (spiralStrategy) Type() Type { return Spiral }

func (spiralStrategy) Build(w Wedge) *Graph {
	return buildAnchors(w, ringSpec{
		offsets: allSlots,
		kind:    curve.Line,
		linkMax: spiralLinkMax,
		weight:  1,
	})
}

// Admit keeps the radius monotone per phase, within the slack.
func (spiralStrategy) Admit(st *State, from, to Node) bool {
	rf := from.Pos.Dist(st.Origin)
	rt := to.Pos.Dist(st.Origin)
	slack := spiralSlack * st.Spacing
	if st.Outbound {
		return rt >= rf-slack
	}
	return rt <= rf+slack
}

func (spiralStrategy) CloseEagerness() float64 { return spiralEagerness }

func (spiralStrategy) WeaveBudget() int { return 0 }
