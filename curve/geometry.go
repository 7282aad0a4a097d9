// geometry.go - ε-tolerant predicates used by the walker and the validator:
// orientation tests, strict segment crossing, and curve flattening.
//
// Determinism: all predicates are pure functions of their inputs; the same
// coordinates always produce the same answers on every platform that follows
// IEEE-754 (no randomized perturbation, no global state).
package curve

import (
	"fmt"
	"math"
)

// flattenSteps is the number of chords used to approximate one curved
// segment for crossing tests and bounds. Four chords keep the test cheap
// while bounding the sagitta error well below the anchor spacing.
const flattenSteps = 4

func errWrap(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrMalformedPath)
}

// Cross returns the z-component of (b-a) × (c-a).
// Positive when a→b→c turns counter-clockwise.
func Cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// orientation classifies the turn a→b→c as -1 (clockwise), 0 (collinear
// within Epsilon, scaled by the span of the points), or +1 (counter-clockwise).
func orientation(a, b, c Point) int {
	cr := Cross(a, b, c)
	// Scale the tolerance by the segment extent so long segments do not
	// report false collinearity on tiny absolute cross products.
	scale := math.Max(1, a.Dist(b)*a.Dist(c))
	if math.Abs(cr) < Epsilon*scale {
		return 0
	}
	if cr > 0 {
		return 1
	}
	return -1
}

// onSpan reports whether collinear point p lies within the closed span [a,b].
func onSpan(a, b, p Point) bool {
	return p.X <= math.Max(a.X, b.X)+Epsilon && p.X >= math.Min(a.X, b.X)-Epsilon &&
		p.Y <= math.Max(a.Y, b.Y)+Epsilon && p.Y >= math.Min(a.Y, b.Y)-Epsilon
}

// chordsCross reports whether chords (a1,a2) and (b1,b2) intersect anywhere
// other than a shared endpoint. Proper crossings and collinear overlaps both
// count; touching exactly at a common endpoint does not.
func chordsCross(a1, a2, b1, b2 Point) bool {
	// Shared endpoints are legal junctions, never crossings.
	shared := a1.Eq(b1) || a1.Eq(b2) || a2.Eq(b1) || a2.Eq(b2)

	o1 := orientation(a1, a2, b1)
	o2 := orientation(a1, a2, b2)
	o3 := orientation(b1, b2, a1)
	o4 := orientation(b1, b2, a2)

	// Proper crossing: each chord separates the other's endpoints.
	if o1 != o2 && o3 != o4 && o1 != 0 && o2 != 0 && o3 != 0 && o4 != 0 {
		return true
	}
	if shared {
		return false
	}
	// Collinear touch: an endpoint of one chord lies inside the other.
	if o1 == 0 && onSpan(a1, a2, b1) {
		return true
	}
	if o2 == 0 && onSpan(a1, a2, b2) {
		return true
	}
	if o3 == 0 && onSpan(b1, b2, a1) {
		return true
	}
	if o4 == 0 && onSpan(b1, b2, a2) {
		return true
	}
	return false
}

// Flatten approximates the segment as a short polyline from From to To.
// Line segments return their endpoints; Arc and Bezier segments are sampled
// as the quadratic curve (From, Ctrl, To) at flattenSteps chords.
func (s Segment) Flatten() []Point {
	if s.Kind == Line {
		return []Point{s.From, s.To}
	}
	pts := make([]Point, 0, flattenSteps+1)
	for i := 0; i <= flattenSteps; i++ {
		t := float64(i) / float64(flattenSteps)
		pts = append(pts, quadAt(s.From, s.Ctrl, s.To, t))
	}
	return pts
}

// quadAt evaluates the quadratic bezier (p0, p1, p2) at parameter t.
func quadAt(p0, p1, p2 Point, t float64) Point {
	u := 1 - t
	return Point{
		X: u*u*p0.X + 2*u*t*p1.X + t*t*p2.X,
		Y: u*u*p0.Y + 2*u*t*p1.Y + t*t*p2.Y,
	}
}

// SegmentsCross reports whether two segments intersect anywhere other than a
// shared endpoint. Curved segments are compared via their flattened chords,
// which is exact enough for walk rejection at kolam anchor spacing.
func SegmentsCross(a, b Segment) bool {
	if a.SameEdge(b) {
		return true
	}
	fa, fb := a.Flatten(), b.Flatten()
	for i := 0; i+1 < len(fa); i++ {
		for j := 0; j+1 < len(fb); j++ {
			if chordsCross(fa[i], fa[i+1], fb[j], fb[j+1]) {
				return true
			}
		}
	}
	return false
}

// Adjacent reports whether two segments share at least one endpoint within
// Epsilon. Adjacent segments are exempt from crossing validation.
func Adjacent(a, b Segment) bool {
	return a.From.Eq(b.From) || a.From.Eq(b.To) || a.To.Eq(b.From) || a.To.Eq(b.To)
}
