// SPDX-License-Identifier: MIT
// Package: kolam/pattern
//
// anchors.go - shared anchor-graph construction used by every strategy.
//
// Each in-wedge dot contributes a ring of anchor slots offset by half the
// grid spacing. Anchors of adjacent dots that land on the same point merge
// into one node, letting loops kiss between dots the way hand-drawn kolam
// strokes do. Ring steps connect cyclically adjacent slots of one dot; link
// steps connect nearby anchors of different dots when the family permits.
//
// Determinism: nodes are emitted dot-major then slot-major; edges ring-first
// then links in ascending (node, node) order. The same wedge and spec always
// produce the same graph.
package pattern

import (
	"math"

	"github.com/kolamlab/kolam/curve"
)

// Aesthetic constants. These are tunable creative parameters, not derived
// quantities; the values below match traditional proportions closely enough
// while keeping anchors of adjacent dots exactly coincident.
const (
	// anchorRadius is the anchor offset from its dot, in spacing units.
	// At 0.5 the facing anchors of orthogonal neighbors coincide.
	anchorRadius = 0.5
	// petalBulge is the control-point offset of curved ring steps, in
	// spacing units. Larger values make rounder petals.
	petalBulge = 0.75
	// dotClearance is the minimum distance, in spacing units, a link step
	// must keep from every dot it is not anchored to.
	dotClearance = 0.25
	// angMargin keeps anchors strictly inside the open wedge sector so
	// replicated copies never overlap across wedge boundaries.
	angMargin = 1e-9
	// quantum is the grid used to merge coincident anchors of neighboring
	// dots into a single node.
	quantum = 1e-6
)

// ringSpec parameterizes buildAnchors for one family.
type ringSpec struct {
	offsets []curve.Point // cyclic slot offsets in the local frame, spacing units
	kind    curve.Kind    // ring-step curve kind
	bulge   float64       // ctrl offset for curved ring steps, spacing units
	linkMax float64       // max link length in spacing units; 0 disables links
	weight  float64       // edge weight (mixture strategies override)
}

// Slot offset tables, unit anchor radius, cyclic order.
var (
	orthSlots = []curve.Point{
		{X: 0, Y: anchorRadius},  // N
		{X: anchorRadius, Y: 0},  // E
		{X: 0, Y: -anchorRadius}, // S
		{X: -anchorRadius, Y: 0}, // W
	}
	diagSlots = []curve.Point{
		{X: anchorRadius * invSqrt2, Y: anchorRadius * invSqrt2},   // NE
		{X: anchorRadius * invSqrt2, Y: -anchorRadius * invSqrt2},  // SE
		{X: -anchorRadius * invSqrt2, Y: -anchorRadius * invSqrt2}, // SW
		{X: -anchorRadius * invSqrt2, Y: anchorRadius * invSqrt2},  // NW
	}
	allSlots = []curve.Point{
		{X: 0, Y: anchorRadius},                                    // N
		{X: anchorRadius * invSqrt2, Y: anchorRadius * invSqrt2},   // NE
		{X: anchorRadius, Y: 0},                                    // E
		{X: anchorRadius * invSqrt2, Y: -anchorRadius * invSqrt2},  // SE
		{X: 0, Y: -anchorRadius},                                   // S
		{X: -anchorRadius * invSqrt2, Y: -anchorRadius * invSqrt2}, // SW
		{X: -anchorRadius, Y: 0},                                   // W
		{X: -anchorRadius * invSqrt2, Y: anchorRadius * invSqrt2},  // NW
	}
)

const invSqrt2 = 0.7071067811865476

// rotated returns off rotated by theta and scaled by spacing.
func rotated(off curve.Point, theta, spacing float64) curve.Point {
	sin, cos := math.Sincos(theta)
	return curve.Point{
		X: (off.X*cos - off.Y*sin) * spacing,
		Y: (off.X*sin + off.Y*cos) * spacing,
	}
}

// inWedge reports whether p lies strictly inside the open wedge sector.
// The exact center and both boundary rays are excluded: with a convex
// sector this guarantees replicated segments never cross wedge boundaries.
func inWedge(w Wedge, p curve.Point) bool {
	if w.Full {
		return true
	}
	v := p.Sub(w.Center)
	if v.Norm() < curve.Epsilon {
		return false
	}
	a := math.Mod(v.Angle()-w.Start, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a > angMargin && a < w.Span-angMargin
}

// nodeKey quantizes a position for coincident-anchor merging.
func nodeKey(p curve.Point) [2]int64 {
	return [2]int64{
		int64(math.Round(p.X / quantum)),
		int64(math.Round(p.Y / quantum)),
	}
}

// buildAnchors lays out the anchor nodes of the wedge and emits ring and
// link candidate edges per the ringSpec. Complexity: O(dots × slots) nodes and
// ring edges, O(n²) link scan (n is small: anchors of one wedge).
func buildAnchors(w Wedge, rs ringSpec) *Graph {
	g := &Graph{}
	index := make(map[[2]int64]int)

	// slotNode[d][s] is the node index of slot s of dot d, or -1.
	slotNode := make([][]int, len(w.Dots))
	for di, d := range w.Dots {
		slotNode[di] = make([]int, len(rs.offsets))
		for si, off := range rs.offsets {
			pos := d.Pos.Add(rotated(off, w.Axis, w.Spacing))
			if !inWedge(w, pos) {
				slotNode[di][si] = -1
				continue
			}
			k := nodeKey(pos)
			ni, seen := index[k]
			if !seen {
				ni = len(g.Nodes)
				index[k] = ni
				g.Nodes = append(g.Nodes, Node{Pos: pos, Dot: di})
			}
			slotNode[di][si] = ni
		}
	}
	g.Adj = make([][]Edge, len(g.Nodes))

	// Ring edges: cyclically adjacent present slots of each dot.
	for di, d := range w.Dots {
		present := make([]int, 0, len(rs.offsets))
		slots := make([]int, 0, len(rs.offsets))
		for si, ni := range slotNode[di] {
			if ni >= 0 {
				present = append(present, ni)
				slots = append(slots, si)
			}
		}
		if len(present) < 2 {
			continue
		}
		for i := range present {
			j := (i + 1) % len(present)
			if len(present) == 2 && j < i {
				break // two slots form a single edge, not a doubled pair
			}
			a, b := present[i], present[j]
			ctrl := ringCtrl(d.Pos, w, rs, slots[i], slots[j])
			addEdge(g, a, b, rs.kind, ctrl, rs.weight)
		}
	}

	// Link edges: straight steps between nearby anchors of different dots
	// that keep clear of every unrelated dot.
	if rs.linkMax > 0 {
		maxLen := rs.linkMax * w.Spacing
		for a := 0; a < len(g.Nodes); a++ {
			for b := a + 1; b < len(g.Nodes); b++ {
				na, nb := g.Nodes[a], g.Nodes[b]
				if na.Dot == nb.Dot {
					continue
				}
				d := na.Pos.Dist(nb.Pos)
				if d < curve.Epsilon || d > maxLen {
					continue
				}
				if !clearOfDots(w, na, nb) {
					continue
				}
				addEdge(g, a, b, curve.Line, curve.Point{}, rs.weight)
			}
		}
	}
	return g
}

// ringCtrl computes the control point of a curved ring step: it sits on the
// bisector of the two slot directions, bulged outward from the dot.
func ringCtrl(dot curve.Point, w Wedge, rs ringSpec, si, sj int) curve.Point {
	if rs.bulge == 0 {
		return curve.Point{}
	}
	a := rotated(rs.offsets[si], w.Axis, 1)
	b := rotated(rs.offsets[sj], w.Axis, 1)
	mid := curve.Mid(a, b)
	n := mid.Norm()
	if n < curve.Epsilon {
		// Opposite slots: bulge perpendicular to their common axis.
		mid = curve.Point{X: -a.Y, Y: a.X}
		n = mid.Norm()
	}
	return dot.Add(mid.Scale(rs.bulge * w.Spacing / n))
}

// clearOfDots reports whether the straight step a→b stays at least
// dotClearance away from every dot neither endpoint is anchored to.
func clearOfDots(w Wedge, a, b Node) bool {
	minDist := dotClearance * w.Spacing
	for di, d := range w.Dots {
		if di == a.Dot || di == b.Dot {
			continue
		}
		if pointSegDist(d.Pos, a.Pos, b.Pos) < minDist {
			return false
		}
	}
	return true
}

// pointSegDist returns the distance from p to the segment [a,b].
func pointSegDist(p, a, b curve.Point) float64 {
	ab := b.Sub(a)
	len2 := ab.X*ab.X + ab.Y*ab.Y
	if len2 < curve.Epsilon {
		return p.Dist(a)
	}
	t := ((p.X-a.X)*ab.X + (p.Y-a.Y)*ab.Y) / len2
	t = math.Max(0, math.Min(1, t))
	return p.Dist(a.Add(ab.Scale(t)))
}

// addEdge appends the undirected edge (a,b) to both adjacency lists.
// Dedup ignores curve kind: two kinds over the same node pair would be the
// same geometric edge, so the first emitter wins (ring steps are emitted
// before links, merged component graphs in sorted component order).
func addEdge(g *Graph, a, b int, kind curve.Kind, ctrl curve.Point, weight float64) {
	for _, e := range g.Adj[a] {
		if e.To == b {
			return
		}
	}
	g.Adj[a] = append(g.Adj[a], Edge{To: b, Kind: kind, Ctrl: ctrl, Weight: weight})
	g.Adj[b] = append(g.Adj[b], Edge{To: a, Kind: kind, Ctrl: ctrl, Weight: weight})
}
