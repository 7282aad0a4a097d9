// symmetry.go - Resolve and Replicate.
//
// Contract:
//   - Resolve validates fail-fast and returns only sentinel-wrapped errors.
//   - The transform list is deterministic and index-addressable: rotations by
//     ascending angle, then reflections by ascending axis angle.
//   - Replicate guarantees one output per transform unless two replicas
//     coincide within ε, in which case the later one is dropped.
//
// Complexity:
//   - Resolve: O(order²) for the dedup scan (order is tiny in practice).
//   - Replicate: O(|group| × |motif|) transform work plus O(|group|² × |motif|)
//     for coincidence collapsing.
package symmetry

import (
	"fmt"
	"math"

	"github.com/kolamlab/kolam/curve"
)

const methodResolve = "Resolve"

// Resolve computes the transform set for the requested symmetry.
// Order must be positive; the kind must be one of Rotational, Reflective,
// Dihedral. The result always includes the identity at index 0.
func Resolve(order int, kind Kind, center curve.Point) (Group, error) {
	if order <= 0 {
		return Group{}, fmt.Errorf("%s: order=%d (must be > 0): %w",
			methodResolve, order, ErrInvalidSymmetry)
	}

	var ts []Transform
	switch kind {
	case Rotational:
		ts = rotations(order, center)
	case Dihedral:
		ts = rotations(order, center)
		for i := 0; i < order; i++ {
			ts = append(ts, ReflectionAbout(math.Pi*float64(i)/float64(order), center))
		}
	case Reflective:
		ts = []Transform{
			Identity(),
			ReflectionAbout(math.Pi/float64(order), center),
		}
	default:
		return Group{}, fmt.Errorf("%s: unknown kind %q: %w",
			methodResolve, kind, ErrInvalidSymmetry)
	}

	return Group{
		Kind:       kind,
		Order:      order,
		Center:     center,
		Transforms: dedup(ts),
	}, nil
}

// rotations returns the order rotations about center by ascending angle;
// index 0 is the identity.
func rotations(order int, center curve.Point) []Transform {
	ts := make([]Transform, 0, order)
	for i := 0; i < order; i++ {
		ts = append(ts, RotationAbout(2*math.Pi*float64(i)/float64(order), center))
	}
	return ts
}

// dedup removes transforms that coincide with an earlier one under canonical
// matrix comparison, preserving first-occurrence order.
func dedup(ts []Transform) []Transform {
	out := make([]Transform, 0, len(ts))
	for _, t := range ts {
		dup := false
		for _, kept := range out {
			if t.Eq(kept) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, t)
		}
	}
	return out
}

// ApplyToPath maps every segment of the motif through t, preserving segment
// order, curve kinds, and the closed/open tag.
func ApplyToPath(t Transform, motif curve.Path) curve.Path {
	out := curve.Path{
		Closed:   motif.Closed,
		Segments: make([]curve.Segment, len(motif.Segments)),
	}
	for i, s := range motif.Segments {
		seg := curve.Segment{
			Kind: s.Kind,
			From: t.Apply(s.From),
			To:   t.Apply(s.To),
		}
		if s.Kind != curve.Line {
			seg.Ctrl = t.Apply(s.Ctrl)
		}
		out.Segments[i] = seg
	}
	return out
}

// Replicate applies every transform of the group to the motif, in group
// order. Replicas whose geometry coincides within ε with an earlier replica
// are collapsed; this is what keeps mirror-axis strokes single. The result
// length is Size() minus the number of collapsed replicas.
func Replicate(motif curve.Path, g Group) []curve.Path {
	out := make([]curve.Path, 0, g.Size())
	for _, t := range g.Transforms {
		p := ApplyToPath(t, motif)
		dup := false
		for i := range out {
			if PathsCoincide(out[i], p) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}

// PathsCoincide reports whether two paths trace the same geometry within ε,
// ignoring traversal direction and starting segment. Each segment of a must
// match a distinct segment of b as an undirected edge of the same kind.
func PathsCoincide(a, b curve.Path) bool {
	if len(a.Segments) != len(b.Segments) || a.Closed != b.Closed {
		return false
	}
	used := make([]bool, len(b.Segments))
	for _, sa := range a.Segments {
		found := false
		for j, sb := range b.Segments {
			if used[j] || sa.Kind != sb.Kind || !sa.SameEdge(sb) {
				continue
			}
			// Curved segments must also bulge through the same control
			// point (reversal leaves a quadratic's geometry unchanged).
			if sa.Kind != curve.Line && !sa.Ctrl.Eq(sb.Ctrl) {
				continue
			}
			used[j] = true
			found = true
			break
		}
		if !found {
			return false
		}
	}
	return true
}
