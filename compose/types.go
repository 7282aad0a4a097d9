// SPDX-License-Identifier: MIT
// Package: kolam/compose
//
// types.go - Config, Metadata, Stats, and the frozen Kolam.
package compose

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kolamlab/kolam/curve"
	"github.com/kolamlab/kolam/grid"
	"github.com/kolamlab/kolam/pattern"
	"github.com/kolamlab/kolam/symmetry"
)

// Sentinel errors for the pipeline.
var (
	// ErrInvalidConfig indicates a malformed generation Config: unknown
	// pattern type or complexity, or custom weights that do not sum to 1.
	ErrInvalidConfig = errors.New("compose: invalid config")

	// ErrComposition indicates a frozen design that violates a structural
	// invariant. Assertion-style: a generator bug, never a user error.
	ErrComposition = errors.New("compose: composition invariant violated")
)

// Config is one generation request. All fields are required except Weights,
// which applies only when Pattern is pattern.Custom.
type Config struct {
	Grid          grid.Spec
	SymmetryOrder int
	SymmetryKind  symmetry.Kind
	Pattern       pattern.Type
	Complexity    pattern.Complexity
	Seed          int64
	Weights       map[pattern.Type]float64
}

// Fingerprint renders the config as a canonical string. It feeds the
// deterministic design ID, so equal configs always share an ID.
func (c Config) Fingerprint() string {
	return fmt.Sprintf("%s/%dx%d/%g %s-%d %s %s seed=%d weights=%v",
		c.Grid.Kind, c.Grid.Rows, c.Grid.Cols, c.Grid.Spacing,
		c.SymmetryKind, c.SymmetryOrder,
		c.Pattern, c.Complexity, c.Seed, sortedWeights(c.Weights))
}

// sortedWeights renders a weight map in deterministic key order.
func sortedWeights(w map[pattern.Type]float64) string {
	if len(w) == 0 {
		return "none"
	}
	types := make([]pattern.Type, 0, len(w))
	for t := range w {
		types = append(types, t)
	}
	for i := 1; i < len(types); i++ { // insertion sort, the map is tiny
		for j := i; j > 0 && types[j] < types[j-1]; j-- {
			types[j], types[j-1] = types[j-1], types[j]
		}
	}
	s := ""
	for _, t := range types {
		s += fmt.Sprintf("%s:%g,", t, w[t])
	}
	return s
}

// Metadata describes how a design was produced.
type Metadata struct {
	// ID is a deterministic UUID derived from the config fingerprint:
	// equal configs yield equal IDs, so reruns are recognizable.
	ID uuid.UUID
	// Seed is the requested base seed (before retry derivation).
	Seed int64
	// Attempt is the 0-based retry attempt that produced the motif.
	Attempt int
	// Weaves is the strategy's permitted crossing budget, consulted by
	// Validate to decide whether pairwise crossings are violations.
	Weaves int

	Pattern       pattern.Type
	Complexity    pattern.Complexity
	SymmetryKind  symmetry.Kind
	SymmetryOrder int
}

// Kolam is the frozen output of one generation: the grid, the resolved
// group, the ordered replicated paths (insertion order is z-order), and
// metadata. Read-only once returned by Generate.
type Kolam struct {
	Grid  grid.Spec
	Dots  []grid.Dot
	Group symmetry.Group
	Paths []curve.Path
	Meta  Metadata
}

// Stats summarizes a design for reporting layers.
type Stats struct {
	Paths    int
	Segments int
	Points   int
	Min, Max curve.Point
}

// Stats computes path, segment, and point counts plus the bounding box of
// all path points. An empty design reports a zero box.
func (k *Kolam) Stats() Stats {
	st := Stats{Paths: len(k.Paths)}
	first := true
	for _, p := range k.Paths {
		st.Segments += p.Len()
		for _, pt := range p.Points() {
			st.Points++
			if first {
				st.Min, st.Max = pt, pt
				first = false
				continue
			}
			if pt.X < st.Min.X {
				st.Min.X = pt.X
			}
			if pt.Y < st.Min.Y {
				st.Min.Y = pt.Y
			}
			if pt.X > st.Max.X {
				st.Max.X = pt.X
			}
			if pt.Y > st.Max.Y {
				st.Max.Y = pt.Y
			}
		}
	}
	return st
}
