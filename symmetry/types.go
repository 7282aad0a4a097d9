// Package symmetry defines Transform, Group, Kind, and sentinel errors.
package symmetry

import (
	"errors"
	"math"

	"github.com/kolamlab/kolam/curve"
)

// Sentinel errors for symmetry resolution.
var (
	// ErrInvalidSymmetry indicates a non-positive order or an unknown kind.
	ErrInvalidSymmetry = errors.New("symmetry: invalid symmetry request")
)

// Kind selects the symmetry family of a design.
type Kind string

const (
	// Rotational produces order rotations about the center.
	Rotational Kind = "rotational"
	// Reflective produces the identity plus one mirror through the center.
	Reflective Kind = "reflective"
	// Dihedral produces order rotations plus order reflections (2×order).
	Dihedral Kind = "dihedral"
)

// Transform is one affine rigid motion or reflection:
//
//	x' = A·x + C·y + E
//	y' = B·x + D·y + F
//
// The column layout follows the usual 2×3 affine convention.
type Transform struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{A: 1, D: 1}
}

// RotationAbout returns the rotation by theta radians about center.
func RotationAbout(theta float64, center curve.Point) Transform {
	sin, cos := math.Sincos(theta)
	return Transform{
		A: cos, B: sin,
		C: -sin, D: cos,
		E: center.X - cos*center.X + sin*center.Y,
		F: center.Y - sin*center.X - cos*center.Y,
	}
}

// ReflectionAbout returns the reflection across the line through center
// inclined at axisAngle radians.
func ReflectionAbout(axisAngle float64, center curve.Point) Transform {
	sin, cos := math.Sincos(2 * axisAngle)
	return Transform{
		A: cos, B: sin,
		C: sin, D: -cos,
		E: center.X - cos*center.X - sin*center.Y,
		F: center.Y - sin*center.X + cos*center.Y,
	}
}

// Apply maps p through the transform.
func (t Transform) Apply(p curve.Point) curve.Point {
	return curve.Point{
		X: t.A*p.X + t.C*p.Y + t.E,
		Y: t.B*p.X + t.D*p.Y + t.F,
	}
}

// Eq reports whether two transforms coincide coefficient-wise within ε.
// This is the canonical matrix comparison used for group deduplication.
func (t Transform) Eq(u Transform) bool {
	return math.Abs(t.A-u.A) < curve.Epsilon &&
		math.Abs(t.B-u.B) < curve.Epsilon &&
		math.Abs(t.C-u.C) < curve.Epsilon &&
		math.Abs(t.D-u.D) < curve.Epsilon &&
		math.Abs(t.E-u.E) < curve.Epsilon &&
		math.Abs(t.F-u.F) < curve.Epsilon
}

// IsReflection reports whether the transform flips orientation
// (determinant < 0).
func (t Transform) IsReflection() bool {
	return t.A*t.D-t.B*t.C < 0
}

// Group is an ordered, deduplicated transform set with its resolution
// parameters. Immutable once resolved.
type Group struct {
	Kind       Kind
	Order      int
	Center     curve.Point
	Transforms []Transform
}

// Size returns the number of transforms in the group.
func (g Group) Size() int { return len(g.Transforms) }

// WedgeSpan returns the angular span of the symmetry-unique wedge:
// 2π/order for rotational and dihedral groups, π for reflective groups.
func (g Group) WedgeSpan() float64 {
	if g.Kind == Reflective {
		return math.Pi
	}
	return 2 * math.Pi / float64(g.Order)
}

// WedgeStart returns the polar angle at which the wedge begins. Rotational
// and dihedral wedges start on the +X axis; the reflective wedge starts on
// its mirror axis.
func (g Group) WedgeStart() float64 {
	if g.Kind == Reflective {
		return math.Pi / float64(g.Order)
	}
	return 0
}

// MirrorAxis returns the angle of the mirror axis bisecting the wedge and
// whether the group has one. Dihedral wedges are bisected by the axis at
// π/order; reflective groups mirror across their single axis; rotational
// groups have none.
func (g Group) MirrorAxis() (float64, bool) {
	switch g.Kind {
	case Dihedral:
		return math.Pi / float64(g.Order), true
	case Reflective:
		return math.Pi / float64(g.Order), true
	default:
		return 0, false
	}
}
