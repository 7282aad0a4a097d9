// Package curve defines Point, Segment, and Path types plus the sentinel
// errors for structural path validation.
package curve

import (
	"errors"
	"math"
)

// Epsilon is the module-wide tolerance for floating-point coincidence checks:
// point equality, path closure, and transform deduplication.
const Epsilon = 1e-9

// Sentinel errors for curve path validation.
var (
	// ErrMalformedPath indicates a Path that violates its structural
	// invariants (closed with < 3 segments, gap between consecutive
	// segments, zero-length or doubled edges).
	ErrMalformedPath = errors.New("curve: malformed path")
)

// Point is a location in the real plane.
type Point struct {
	X, Y float64
}

// Add returns p + q component-wise.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q component-wise.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by k.
func (p Point) Scale(k float64) Point { return Point{p.X * k, p.Y * k} }

// Dist returns the Euclidean distance to q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Norm returns the Euclidean length of p viewed as a vector.
func (p Point) Norm() float64 { return math.Hypot(p.X, p.Y) }

// Angle returns the polar angle of p viewed as a vector, in (-π, π].
func (p Point) Angle() float64 { return math.Atan2(p.Y, p.X) }

// Eq reports whether p and q coincide within Epsilon.
func (p Point) Eq(q Point) bool {
	return math.Abs(p.X-q.X) < Epsilon && math.Abs(p.Y-q.Y) < Epsilon
}

// Mid returns the midpoint of p and q.
func Mid(p, q Point) Point {
	return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2}
}

// Kind selects how a Segment connects its endpoints.
type Kind uint8

const (
	// Line connects From to To with a straight stroke.
	Line Kind = iota
	// Arc connects From to To bulging through the Ctrl point
	// (rendered as a quadratic curve through Ctrl).
	Arc
	// Bezier connects From to To with Ctrl as a quadratic control point.
	Bezier
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case Line:
		return "line"
	case Arc:
		return "arc"
	case Bezier:
		return "bezier"
	default:
		return "unknown"
	}
}

// Segment is one stroke piece of a curve path. For Line segments Ctrl is
// ignored; for Arc and Bezier it shapes the bulge between the endpoints.
type Segment struct {
	Kind     Kind
	From, To Point
	Ctrl     Point
}

// Length returns the chord length of the segment (straight-line distance
// between endpoints; bulge is not accounted for).
func (s Segment) Length() float64 { return s.From.Dist(s.To) }

// SameEdge reports whether s and t describe the same geometric edge,
// ignoring direction, within Epsilon. Used to reject zero-length doubling.
func (s Segment) SameEdge(t Segment) bool {
	return (s.From.Eq(t.From) && s.To.Eq(t.To)) ||
		(s.From.Eq(t.To) && s.To.Eq(t.From))
}

// Reverse returns the segment traversed in the opposite direction.
func (s Segment) Reverse() Segment {
	return Segment{Kind: s.Kind, From: s.To, To: s.From, Ctrl: s.Ctrl}
}

// Path is an ordered sequence of segments forming a single stroke.
// Closed paths return within Epsilon of their start.
type Path struct {
	Segments []Segment
	Closed   bool
}

// Start returns the first point of the path (zero Point if empty).
func (p Path) Start() Point {
	if len(p.Segments) == 0 {
		return Point{}
	}
	return p.Segments[0].From
}

// End returns the last point of the path (zero Point if empty).
func (p Path) End() Point {
	if len(p.Segments) == 0 {
		return Point{}
	}
	return p.Segments[len(p.Segments)-1].To
}

// Len returns the number of segments.
func (p Path) Len() int { return len(p.Segments) }

// Clone returns a deep copy of the path.
func (p Path) Clone() Path {
	out := Path{Closed: p.Closed}
	out.Segments = make([]Segment, len(p.Segments))
	copy(out.Segments, p.Segments)
	return out
}

// Points returns the ordered polyline of path anchors: every segment start
// plus the final segment end. Control points are not included.
func (p Path) Points() []Point {
	if len(p.Segments) == 0 {
		return nil
	}
	pts := make([]Point, 0, len(p.Segments)+1)
	for _, s := range p.Segments {
		pts = append(pts, s.From)
	}
	return append(pts, p.Segments[len(p.Segments)-1].To)
}

// Bounds returns the axis-aligned bounding box covering every anchor and
// flattened curve point of the path.
func (p Path) Bounds() (min, max Point) {
	min = Point{math.Inf(1), math.Inf(1)}
	max = Point{math.Inf(-1), math.Inf(-1)}
	for _, s := range p.Segments {
		for _, pt := range s.Flatten() {
			min.X = math.Min(min.X, pt.X)
			min.Y = math.Min(min.Y, pt.Y)
			max.X = math.Max(max.X, pt.X)
			max.Y = math.Max(max.Y, pt.Y)
		}
	}
	return min, max
}

// Check validates the structural invariants of the path:
//
//   - consecutive segments are connected within Epsilon;
//   - no segment has zero chord length;
//   - no two consecutive segments describe the same geometric edge;
//   - a closed path has ≥ 3 segments and End ≈ Start.
//
// Returns nil or an error wrapping ErrMalformedPath.
func (p Path) Check() error {
	n := len(p.Segments)
	if n == 0 {
		if p.Closed {
			return errWrap("closed path with no segments")
		}
		return nil
	}
	for i, s := range p.Segments {
		if s.Length() < Epsilon {
			return errWrap("zero-length segment")
		}
		if i == 0 {
			continue
		}
		prev := p.Segments[i-1]
		if !prev.To.Eq(s.From) {
			return errWrap("gap between consecutive segments")
		}
		if prev.SameEdge(s) {
			return errWrap("doubled edge between consecutive segments")
		}
	}
	if p.Closed {
		if n < minClosedSegments {
			return errWrap("closed path shorter than three segments")
		}
		if !p.End().Eq(p.Start()) {
			return errWrap("closed path does not return to its start")
		}
		// The seam between the last and first segment is consecutive too.
		if p.Segments[n-1].SameEdge(p.Segments[0]) {
			return errWrap("doubled edge across the closure seam")
		}
	}
	return nil
}

// minClosedSegments is the smallest loop an authentic kolam stroke can form.
const minClosedSegments = 3
