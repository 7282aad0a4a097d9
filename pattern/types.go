// SPDX-License-Identifier: MIT
// Package: kolam/pattern
//
// types.go - pattern families, complexity bands, the anchor graph, and the
// Strategy capability contract.
package pattern

import (
	"errors"
	"fmt"

	"github.com/kolamlab/kolam/curve"
	"github.com/kolamlab/kolam/grid"
)

// Sentinel errors for motif generation.
var (
	// ErrPathGeneration indicates no closed motif could be traced within the
	// complexity band. Recoverable: retry with a perturbed seed.
	ErrPathGeneration = errors.New("pattern: path generation failed")

	// ErrUnknownPattern indicates an unrecognized pattern type.
	ErrUnknownPattern = errors.New("pattern: unknown pattern type")

	// ErrBadWeights indicates custom mixture weights that do not sum to 1
	// within ε, contain an unknown component, or are empty.
	ErrBadWeights = errors.New("pattern: invalid mixture weights")
)

// Type names a pattern family.
type Type string

const (
	Geometric Type = "geometric"
	Floral    Type = "floral"
	Diamond   Type = "diamond"
	Spiral    Type = "spiral"
	Custom    Type = "custom"
)

// ParseType validates a pattern type name.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case Geometric, Floral, Diamond, Spiral, Custom:
		return Type(s), nil
	default:
		return "", fmt.Errorf("ParseType: %q: %w", s, ErrUnknownPattern)
	}
}

// Complexity selects the target segment band of a motif.
type Complexity string

const (
	Simple  Complexity = "simple"
	Medium  Complexity = "medium"
	Complex Complexity = "complex"
)

// Band returns the inclusive [min,max] segment counts for the complexity.
// Unknown complexities report ok=false.
func (c Complexity) Band() (min, max int, ok bool) {
	switch c {
	case Simple:
		return simpleMin, simpleMax, true
	case Medium:
		return mediumMin, mediumMax, true
	case Complex:
		return complexMin, complexMax, true
	default:
		return 0, 0, false
	}
}

// Complexity bands. The minima keep loops authentic (≥ 3 segments always);
// the maxima bound the walk so pathological grids terminate.
const (
	simpleMin  = 3
	simpleMax  = 6
	mediumMin  = 6
	mediumMax  = 12
	complexMin = 12
	complexMax = 24
)

// Wedge is the symmetry-unique slice of the grid a motif is traced in.
// Dots are the lattice sites available to the walk (already restricted by
// the caller to the wedge interior, or to the mirror axis for mirrored
// groups); Start/Span bound the angular sector about Center. Full marks the
// degenerate whole-plane wedge of an order-1 group (no angular filtering).
type Wedge struct {
	Dots    []grid.Dot
	Center  curve.Point
	Start   float64
	Span    float64
	Axis    float64 // local anchor-frame rotation (mirror axis for mirrored wedges)
	Spacing float64
	Full    bool
}

// Node is one anchor point of the motif graph.
type Node struct {
	Pos curve.Point
	Dot int // index into Wedge.Dots of the owning dot
}

// Edge is one candidate step out of a node.
type Edge struct {
	To     int
	Kind   curve.Kind
	Ctrl   curve.Point // control point for Arc/Bezier steps
	Weight float64     // strategy weight; 1 for pure strategies
}

// Graph is the candidate-edge graph a Strategy builds over a wedge.
// Adjacency lists are emitted in deterministic order.
type Graph struct {
	Nodes []Node
	Adj   [][]Edge
}

// EdgeCount returns the number of undirected candidate edges.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, es := range g.Adj {
		n += len(es)
	}
	return n / 2
}

// State is the walk progress a Strategy may consult when admitting a move.
type State struct {
	Origin     curve.Point // wedge center
	Spacing    float64     // grid spacing, for slack expressed in spacing units
	Steps      int         // segments placed so far
	Outbound   bool        // spiral phase: still growing in radius
	PeakRadius float64     // radius at which the spiral reverses
}

// Strategy supplies the per-family pieces of the traversal: the candidate
// rule (Build), a dynamic admission filter (Admit), the closing-preference
// weighting (CloseEagerness), and the permitted overlap count (WeaveBudget).
// Everything else — ordering, crossing checks, backtracking, closure — is
// shared and lives in Trace.
type Strategy interface {
	// Type names the family.
	Type() Type
	// Build returns the candidate-edge graph for the wedge.
	Build(w Wedge) *Graph
	// Admit reports whether the move from → to is allowed in the current
	// walk state. Pure families return true unconditionally.
	Admit(st *State, from, to Node) bool
	// CloseEagerness in [0,1] weights how strongly a closing move is
	// preferred once the band minimum is reached (1 = close immediately).
	CloseEagerness() float64
	// WeaveBudget is the number of placed-segment crossings the walk may
	// absorb (0 for strict families).
	WeaveBudget() int
}

// New returns the strategy for a pattern type. Custom requires mixture
// weights and is constructed via NewCustom instead.
func New(t Type) (Strategy, error) {
	switch t {
	case Geometric:
		return geometricStrategy{}, nil
	case Floral:
		return floralStrategy{}, nil
	case Diamond:
		return diamondStrategy{}, nil
	case Spiral:
		return spiralStrategy{}, nil
	case Custom:
		return nil, fmt.Errorf("New: custom requires weights, use NewCustom: %w", ErrBadWeights)
	default:
		return nil, fmt.Errorf("New: %q: %w", t, ErrUnknownPattern)
	}
}
