// Package grid defines the lattice Spec, Dot, and sentinel errors.
package grid

import (
	"errors"

	"github.com/kolamlab/kolam/curve"
)

// Sentinel errors for grid construction.
var (
	// ErrInvalidGrid indicates a Spec with non-positive dimensions,
	// spacing ≤ 0, or an unknown lattice kind.
	ErrInvalidGrid = errors.New("grid: invalid grid spec")
)

// Lattice selects the dot arrangement of a Spec.
type Lattice string

const (
	// Square lays dots on an orthogonal rows×cols lattice.
	Square Lattice = "square"
	// Triangular lays dots on a rows×cols lattice with odd rows offset by
	// half the spacing and rows pitched at spacing·√3/2.
	Triangular Lattice = "triangular"
	// Radial lays a center dot plus rings×spokes dots on concentric circles.
	Radial Lattice = "radial"
)

// Spec describes a dot lattice. It is immutable once constructed and is
// referenced by value from downstream structures.
//
// For Square and Triangular lattices Rows/Cols are used; for Radial lattices
// Rows is the ring count and Cols the spokes per ring.
type Spec struct {
	Kind    Lattice
	Rows    int
	Cols    int
	Spacing float64
}

// Rings returns the ring count of a radial spec (alias of Rows).
func (s Spec) Rings() int { return s.Rows }

// Spokes returns the spokes-per-ring of a radial spec (alias of Cols).
func (s Spec) Spokes() int { return s.Cols }

// Dot is one lattice site: integer coordinate (I, J) plus the resolved plane
// position. Dots are never mutated after construction.
type Dot struct {
	I, J int
	Pos  curve.Point
}
