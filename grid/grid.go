// grid.go - Build and the per-lattice dot emitters.
//
// Contract:
//   - Build is a pure function: no side effects, deterministic emission order.
//   - Validation is fail-fast; no dots are produced for an invalid Spec.
//   - Returns only sentinel-wrapped errors; never panics.
package grid

import (
	"fmt"
	"math"

	"github.com/kolamlab/kolam/curve"
)

// File-local constants (no magic literals).
const (
	methodBuild = "Build"
	minDim      = 1
	// rowPitch is the vertical pitch factor of a triangular lattice: √3/2.
	rowPitch = 0.8660254037844386
)

// Build resolves a Spec into its dot sequence.
//
// Emission order (stable, documented):
//   - Square/Triangular: row-major, r ascending then c ascending; Dot.I=r,
//     Dot.J=c.
//   - Radial: the center dot (I=0, J=0) first, then rings ascending with
//     spokes ascending; Dot.I=ring (1-based), Dot.J=spoke.
//
// Complexity: O(n) in the dot count; O(n) space for the result.
func Build(spec Spec) ([]Dot, error) {
	if spec.Spacing <= 0 {
		return nil, fmt.Errorf("%s: spacing=%g (must be > 0): %w",
			methodBuild, spec.Spacing, ErrInvalidGrid)
	}
	switch spec.Kind {
	case Square, Triangular:
		if spec.Rows < minDim || spec.Cols < minDim {
			return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodBuild, spec.Rows, spec.Cols, minDim, ErrInvalidGrid)
		}
		if spec.Kind == Triangular {
			return buildRect(spec, rowPitch, 0.5), nil
		}
		return buildRect(spec, 1, 0), nil
	case Radial:
		return buildRadial(spec)
	case "":
		return nil, fmt.Errorf("%s: missing lattice kind: %w", methodBuild, ErrInvalidGrid)
	default:
		return nil, fmt.Errorf("%s: unknown lattice kind %q: %w",
			methodBuild, spec.Kind, ErrInvalidGrid)
	}
}

// buildRect emits a rows×cols lattice. pitch scales the row spacing and
// offset shifts odd rows by offset×spacing (0 for square, 0.5 for
// triangular). Dimensions are validated by Build before this runs.
func buildRect(spec Spec, pitch, offset float64) []Dot {
	dots := make([]Dot, 0, spec.Rows*spec.Cols)
	for r := 0; r < spec.Rows; r++ {
		shift := 0.0
		if r%2 == 1 {
			shift = offset * spec.Spacing
		}
		for c := 0; c < spec.Cols; c++ {
			dots = append(dots, Dot{
				I: r,
				J: c,
				Pos: curve.Point{
					X: float64(c)*spec.Spacing + shift,
					Y: float64(r) * spec.Spacing * pitch,
				},
			})
		}
	}
	return dots
}

// buildRadial emits the center dot plus rings×spokes dots on concentric
// circles of radius ring×spacing.
func buildRadial(spec Spec) ([]Dot, error) {
	if spec.Rings() < minDim || spec.Spokes() < minDim {
		return nil, fmt.Errorf("%s: rings=%d, spokes=%d (each must be ≥ %d): %w",
			methodBuild, spec.Rings(), spec.Spokes(), minDim, ErrInvalidGrid)
	}
	dots := make([]Dot, 0, spec.Rings()*spec.Spokes()+1)
	dots = append(dots, Dot{I: 0, J: 0, Pos: curve.Point{}})
	for ring := 1; ring <= spec.Rings(); ring++ {
		radius := float64(ring) * spec.Spacing
		for spoke := 0; spoke < spec.Spokes(); spoke++ {
			theta := 2 * math.Pi * float64(spoke) / float64(spec.Spokes())
			dots = append(dots, Dot{
				I:   ring,
				J:   spoke,
				Pos: curve.Point{X: radius * math.Cos(theta), Y: radius * math.Sin(theta)},
			})
		}
	}
	return dots, nil
}

// Center returns the geometric center of the lattice described by spec:
// the centroid of the bounding rows/cols for rectangular kinds, the origin
// for radial kinds.
func Center(spec Spec) curve.Point {
	switch spec.Kind {
	case Radial:
		return curve.Point{}
	case Triangular:
		return curve.Point{
			X: float64(spec.Cols-1) * spec.Spacing / 2,
			Y: float64(spec.Rows-1) * spec.Spacing * rowPitch / 2,
		}
	default:
		return curve.Point{
			X: float64(spec.Cols-1) * spec.Spacing / 2,
			Y: float64(spec.Rows-1) * spec.Spacing / 2,
		}
	}
}

// Bounds returns the axis-aligned bounding box of the lattice plus margin on
// every side. The margin admits the decorative overshoot of loop anchors.
func Bounds(spec Spec, margin float64) (min, max curve.Point) {
	switch spec.Kind {
	case Radial:
		r := float64(spec.Rings())*spec.Spacing + margin
		return curve.Point{X: -r, Y: -r}, curve.Point{X: r, Y: r}
	case Triangular:
		min = curve.Point{X: -margin, Y: -margin}
		max = curve.Point{
			// Odd rows overshoot by half a spacing.
			X: float64(spec.Cols-1)*spec.Spacing + spec.Spacing/2 + margin,
			Y: float64(spec.Rows-1)*spec.Spacing*rowPitch + margin,
		}
		return min, max
	default:
		min = curve.Point{X: -margin, Y: -margin}
		max = curve.Point{
			X: float64(spec.Cols-1)*spec.Spacing + margin,
			Y: float64(spec.Rows-1)*spec.Spacing + margin,
		}
		return min, max
	}
}
