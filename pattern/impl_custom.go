// SPDX-License-Identifier: MIT
// Package: kolam/pattern
//
// impl_custom.go - the weighted mixture of pure families.
//
// Neighbor rule:
//   - The union of the component graphs, with each edge carrying its
//     component's weight. Heavier components contribute cheaper moves, so
//     the walk statistically favors their texture without excluding the
//     lighter ones.
//   - A move is admitted when any component admits it.
//
// Weaving and closure blend by weight.
package pattern

import (
	"fmt"
	"math"
	"sort"
)

// weightTolerance bounds the allowed drift of the mixture-weight sum
// from 1 (float literals in user config rarely sum exactly).
const weightTolerance = 1e-6

type customStrategy struct {
	parts   []Strategy
	weights []float64 // parallel to parts, sums to 1
}

// NewCustom builds a mixture strategy from per-family weights. Weights must
// name pure families only, be non-negative, and sum to 1 within tolerance.
func NewCustom(weights map[Type]float64) (Strategy, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("NewCustom: empty weights: %w", ErrBadWeights)
	}
	types := make([]Type, 0, len(weights))
	sum := 0.0
	for t, w := range weights {
		if t == Custom {
			return nil, fmt.Errorf("NewCustom: custom cannot nest: %w", ErrBadWeights)
		}
		if w < 0 {
			return nil, fmt.Errorf("NewCustom: negative weight %v for %q: %w", w, t, ErrBadWeights)
		}
		sum += w
		types = append(types, t)
	}
	if math.Abs(sum-1) > weightTolerance {
		return nil, fmt.Errorf("NewCustom: weights sum to %v, want 1: %w", sum, ErrBadWeights)
	}
	// Deterministic component order regardless of map iteration.
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	cs := &customStrategy{}
	for _, t := range types {
		if weights[t] == 0 {
			continue
		}
		s, err := New(t)
		if err != nil {
			return nil, err
		}
		cs.parts = append(cs.parts, s)
		cs.weights = append(cs.weights, weights[t])
	}
	if len(cs.parts) == 0 {
		return nil, fmt.Errorf("NewCustom: all weights zero: %w", ErrBadWeights)
	}
	return cs, nil
}

func (cs *customStrategy) Type() Type { return Custom }

// Build merges the component graphs. Coincident nodes (the shared anchor
// layout guarantees many) merge by quantized position; edges keep their
// component's weight and deduplicate by endpoints, the first component in
// sorted type order winning ties. One node pair therefore carries at most
// one edge regardless of how many components propose it.
func (cs *customStrategy) Build(w Wedge) *Graph {
	g := &Graph{}
	index := make(map[[2]int64]int)

	node := func(n Node) int {
		k := nodeKey(n.Pos)
		if ni, ok := index[k]; ok {
			return ni
		}
		ni := len(g.Nodes)
		index[k] = ni
		g.Nodes = append(g.Nodes, n)
		g.Adj = append(g.Adj, nil)
		return ni
	}

	for pi, p := range cs.parts {
		pg := p.Build(w)
		remap := make([]int, len(pg.Nodes))
		for i, n := range pg.Nodes {
			remap[i] = node(n)
		}
		for from, es := range pg.Adj {
			for _, e := range es {
				if e.To < from {
					continue // undirected edge, emit once
				}
				addEdge(g, remap[from], remap[e.To], e.Kind, e.Ctrl, cs.weights[pi])
			}
		}
	}
	return g
}

func (cs *customStrategy) Admit(st *State, from, to Node) bool {
	for _, p := range cs.parts {
		if p.Admit(st, from, to) {
			return true
		}
	}
	return false
}

func (cs *customStrategy) CloseEagerness() float64 {
	e := 0.0
	for i, p := range cs.parts {
		e += cs.weights[i] * p.CloseEagerness()
	}
	return e
}

func (cs *customStrategy) WeaveBudget() int {
	b := 0.0
	for i, p := range cs.parts {
		b += cs.weights[i] * float64(p.WeaveBudget())
	}
	return int(math.Round(b))
}
