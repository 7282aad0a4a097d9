// SPDX-License-Identifier: MIT
// Package: kolam/pattern
//
// trace.go - the shared constrained walk that turns a strategy's candidate
// graph into one closed motif.
//
// What: a depth-first walk with explicit backtracking over the anchor graph.
// Each step must use a fresh undirected edge, pass the strategy's Admit
// filter, and stay within the weave budget for crossings against already
// placed segments. The walk succeeds the moment it returns to its start
// node with a segment count inside the complexity band.
//
// Why deterministic: the only randomness is the seeded start node, the
// initial heading, and a bounded jitter of each frame's best candidate.
// Candidate ordering is otherwise a pure function of geometry, so the same
// wedge, strategy, complexity, and seed always reproduce the same motif.
//
// Complexity: O(E log E) per frame for candidate sorting, bounded overall
// by maxExpansions, so Trace always terminates.
//
// Errors: ErrPathGeneration when the graph is too sparse for the band or
// when no closed loop is found within the expansion budget.
package pattern

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/kolamlab/kolam/curve"
)

const (
	// maxExpansions bounds the total number of edge applications per walk
	// so hostile graphs fail fast instead of exploring exponentially.
	maxExpansions = 4096
	// closeBonus is the cost reduction of a closing move, scaled by the
	// strategy's eagerness. Large enough to dominate angular costs.
	closeBonus = 64.0
	// jitterWindow is how deep into the sorted candidates the seed may
	// promote an alternative to the front.
	jitterWindow = 3
	// minWeight floors edge weights in cost division. Mixture components
	// with tiny weights stay expensive but never divide by zero.
	minWeight = 1e-3
)

// peakFraction maps complexity to the fraction of the wedge's outermost
// anchor radius at which a radius-phased walk reverses.
func peakFraction(c Complexity) float64 {
	switch c {
	case Simple:
		return 0.55
	case Medium:
		return 0.8
	default:
		return 1.0
	}
}

// edgeKey identifies one undirected candidate edge by its node pair. Curve
// kind is deliberately not part of the key: a Line and an Arc over the same
// pair describe the same geometric edge, and walking both would double the
// stroke.
type edgeKey struct {
	a, b int
}

func keyOf(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a: a, b: b}
}

// cand is one scored outgoing move of a frame.
type cand struct {
	edge      Edge
	cost      float64
	crossings int
	closes    bool
}

// frame is one node of the walk with its remaining untried moves.
type frame struct {
	node        int
	cands       []cand
	next        int
	wasOutbound bool // phase before the move that entered this frame
}

// Trace walks the strategy's candidate graph over the wedge and returns one
// closed motif whose segment count lies inside the complexity band.
func Trace(w Wedge, s Strategy, c Complexity, seed int64) (curve.Path, error) {
	minSeg, maxSeg, ok := c.Band()
	if !ok {
		return curve.Path{}, fmt.Errorf("Trace: unknown complexity %q: %w", c, ErrPathGeneration)
	}
	g := s.Build(w)
	if len(g.Nodes) == 0 || g.EdgeCount() < minSeg {
		return curve.Path{}, fmt.Errorf(
			"Trace: %d candidate edges cannot host a %s motif (need ≥ %d): %w",
			g.EdgeCount(), c, minSeg, ErrPathGeneration)
	}

	rng := SeedRNG(seed)
	start := rng.Intn(len(g.Nodes))

	maxR := 0.0
	for _, n := range g.Nodes {
		if r := n.Pos.Dist(w.Center); r > maxR {
			maxR = r
		}
	}
	st := &State{
		Origin:     w.Center,
		Spacing:    w.Spacing,
		Outbound:   true,
		PeakRadius: maxR * peakFraction(c),
	}

	used := make(map[edgeKey]bool)
	placed := make([]curve.Segment, 0, maxSeg)
	weaveLeft := s.WeaveBudget()

	stack := []*frame{newFrame(g, s, st, used, placed, weaveLeft,
		start, start, minSeg, maxSeg, 0, false, rng)}
	stack[0].wasOutbound = true

	expansions := 0
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		if f.next >= len(f.cands) {
			// Exhausted: pop and undo the move that entered this frame.
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				p := stack[len(stack)-1]
				ca := p.cands[p.next-1]
				delete(used, keyOf(p.node, ca.edge.To))
				placed = placed[:len(placed)-1]
				weaveLeft += ca.crossings
				st.Outbound = f.wasOutbound
				st.Steps = len(placed)
			}
			continue
		}
		ca := f.cands[f.next]
		f.next++
		if expansions++; expansions > maxExpansions {
			return curve.Path{}, fmt.Errorf(
				"Trace: expansion budget exhausted after %d moves: %w",
				maxExpansions, ErrPathGeneration)
		}

		seg := segmentOf(g, f.node, ca.edge)
		used[keyOf(f.node, ca.edge.To)] = true
		placed = append(placed, seg)
		weaveLeft -= ca.crossings
		st.Steps = len(placed)

		if ca.closes {
			out := make([]curve.Segment, len(placed))
			copy(out, placed)
			return curve.Path{Segments: out, Closed: true}, nil
		}

		wasOut := st.Outbound
		to := ca.edge.To
		if st.Outbound && g.Nodes[to].Pos.Dist(st.Origin) >= st.PeakRadius-curve.Epsilon {
			st.Outbound = false
		}
		child := newFrame(g, s, st, used, placed, weaveLeft,
			to, start, minSeg, maxSeg, endTangent(seg), true, rng)
		child.wasOutbound = wasOut
		stack = append(stack, child)
	}
	return curve.Path{}, fmt.Errorf("Trace: no closed loop within the %s band: %w",
		c, ErrPathGeneration)
}

// newFrame scores and orders the legal moves out of node, then lets the
// seed promote one of the top candidates to the front.
func newFrame(g *Graph, s Strategy, st *State, used map[edgeKey]bool,
	placed []curve.Segment, weaveLeft int,
	node, start, minSeg, maxSeg int, heading float64, hasHeading bool,
	rng *rand.Rand,
) *frame {
	f := &frame{node: node}
	from := g.Nodes[node]
	for _, e := range g.Adj[node] {
		if used[keyOf(node, e.To)] {
			continue
		}
		closes := e.To == start
		steps := len(placed) + 1
		if closes && steps < minSeg {
			continue // too short to close; passing through start is not allowed
		}
		if !closes && steps >= maxSeg {
			continue // would leave no room for the closing segment
		}
		if !s.Admit(st, from, g.Nodes[e.To]) {
			continue
		}
		seg := segmentOf(g, node, e)
		cnt := countCrossings(placed, seg)
		if cnt > weaveLeft {
			continue
		}
		cost := moveCost(seg, e, heading, hasHeading, st.Spacing)
		if closes {
			cost -= closeBonus * s.CloseEagerness()
		}
		f.cands = append(f.cands, cand{edge: e, cost: cost, crossings: cnt, closes: closes})
	}
	sort.Slice(f.cands, func(i, j int) bool {
		if f.cands[i].cost != f.cands[j].cost {
			return f.cands[i].cost < f.cands[j].cost
		}
		return f.cands[i].edge.To < f.cands[j].edge.To
	})
	if len(f.cands) > 1 {
		j := rng.Intn(min(jitterWindow, len(f.cands)))
		f.cands[0], f.cands[j] = f.cands[j], f.cands[0]
	}
	return f
}

// moveCost scores a move: smooth continuations and heavy edges are cheap,
// sharp turns and long links expensive.
func moveCost(seg curve.Segment, e Edge, heading float64, hasHeading bool, spacing float64) float64 {
	turn := 0.0
	if hasHeading {
		turn = math.Abs(angleDiff(startTangent(seg), heading))
	}
	w := e.Weight
	if w < minWeight {
		w = minWeight
	}
	return (1+turn)/w + 0.05*seg.Length()/spacing
}

// angleDiff normalizes a-b into (-π, π].
func angleDiff(a, b float64) float64 {
	d := math.Mod(a-b, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	}
	if d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

// segmentOf materializes the segment of edge e leaving node from.
func segmentOf(g *Graph, from int, e Edge) curve.Segment {
	return curve.Segment{
		Kind: e.Kind,
		From: g.Nodes[from].Pos,
		To:   g.Nodes[e.To].Pos,
		Ctrl: e.Ctrl,
	}
}

// startTangent is the departure direction of a segment.
func startTangent(s curve.Segment) float64 {
	if s.Kind != curve.Line && !s.Ctrl.Eq(s.From) {
		return s.Ctrl.Sub(s.From).Angle()
	}
	return s.To.Sub(s.From).Angle()
}

// endTangent is the arrival direction of a segment.
func endTangent(s curve.Segment) float64 {
	if s.Kind != curve.Line && !s.Ctrl.Eq(s.To) {
		return s.To.Sub(s.Ctrl).Angle()
	}
	return s.To.Sub(s.From).Angle()
}

// countCrossings counts placed segments the candidate would cross. Segments
// sharing an endpoint with the candidate are legal junctions, not crossings.
func countCrossings(placed []curve.Segment, seg curve.Segment) int {
	n := 0
	for _, p := range placed {
		if curve.Adjacent(p, seg) {
			continue
		}
		if curve.SegmentsCross(p, seg) {
			n++
		}
	}
	return n
}
