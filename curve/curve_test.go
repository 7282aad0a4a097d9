package curve_test

import (
	"errors"
	"testing"

	"github.com/kolamlab/kolam/curve"
)

//----------------------------------------------------------------------------//
// Point and Segment Tests
//----------------------------------------------------------------------------//

// TestPointEq verifies ε-tolerant equality on coincident and distinct points.
func TestPointEq(t *testing.T) {
	a := curve.Point{X: 1, Y: 2}
	b := curve.Point{X: 1 + 1e-12, Y: 2 - 1e-12}
	c := curve.Point{X: 1.0001, Y: 2}

	if !a.Eq(b) {
		t.Errorf("Eq(%v,%v)=false; want true", a, b)
	}
	if a.Eq(c) {
		t.Errorf("Eq(%v,%v)=true; want false", a, c)
	}
}

// TestSegmentSameEdge checks direction-insensitive edge identity.
func TestSegmentSameEdge(t *testing.T) {
	s := curve.Segment{Kind: curve.Line, From: curve.Point{X: 0, Y: 0}, To: curve.Point{X: 1, Y: 0}}
	rev := s.Reverse()
	other := curve.Segment{Kind: curve.Line, From: curve.Point{X: 0, Y: 0}, To: curve.Point{X: 0, Y: 1}}

	if !s.SameEdge(rev) {
		t.Error("SameEdge(s, reverse(s))=false; want true")
	}
	if s.SameEdge(other) {
		t.Error("SameEdge(s, other)=true; want false")
	}
}

//----------------------------------------------------------------------------//
// Crossing Predicate Tests
//----------------------------------------------------------------------------//

// TestSegmentsCross covers proper crossings, shared endpoints, disjoint
// segments, and collinear overlaps.
func TestSegmentsCross(t *testing.T) {
	line := func(x1, y1, x2, y2 float64) curve.Segment {
		return curve.Segment{Kind: curve.Line,
			From: curve.Point{X: x1, Y: y1}, To: curve.Point{X: x2, Y: y2}}
	}
	cases := []struct {
		name string
		a, b curve.Segment
		want bool
	}{
		{"ProperX", line(0, 0, 2, 2), line(0, 2, 2, 0), true},
		{"SharedEndpoint", line(0, 0, 1, 1), line(1, 1, 2, 0), false},
		{"Disjoint", line(0, 0, 1, 0), line(0, 1, 1, 1), false},
		{"CollinearOverlap", line(0, 0, 2, 0), line(1, 0, 3, 0), true},
		{"CollinearDisjoint", line(0, 0, 1, 0), line(2, 0, 3, 0), false},
		{"TTouchMidpoint", line(0, 0, 2, 0), line(1, -1, 1, 0), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := curve.SegmentsCross(tc.a, tc.b); got != tc.want {
				t.Errorf("SegmentsCross=%v; want %v", got, tc.want)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Path Invariant Tests
//----------------------------------------------------------------------------//

func square(closed bool) curve.Path {
	pts := []curve.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	p := curve.Path{Closed: closed}
	for i := range pts {
		p.Segments = append(p.Segments, curve.Segment{
			Kind: curve.Line, From: pts[i], To: pts[(i+1)%len(pts)],
		})
	}
	return p
}

// TestPathCheck_Valid verifies that a unit square loop passes validation.
func TestPathCheck_Valid(t *testing.T) {
	if err := square(true).Check(); err != nil {
		t.Fatalf("Check() = %v; want nil", err)
	}
}

// TestPathCheck_Violations verifies each structural invariant individually.
func TestPathCheck_Violations(t *testing.T) {
	t.Run("TooShortClosed", func(t *testing.T) {
		p := square(true)
		p.Segments = p.Segments[:2]
		if err := p.Check(); !errors.Is(err, curve.ErrMalformedPath) {
			t.Errorf("Check() = %v; want ErrMalformedPath", err)
		}
	})
	t.Run("Gap", func(t *testing.T) {
		p := square(false)
		p.Segments[2].From = curve.Point{X: 5, Y: 5}
		if err := p.Check(); !errors.Is(err, curve.ErrMalformedPath) {
			t.Errorf("Check() = %v; want ErrMalformedPath", err)
		}
	})
	t.Run("DoubledEdge", func(t *testing.T) {
		s := curve.Segment{Kind: curve.Line, From: curve.Point{}, To: curve.Point{X: 1}}
		p := curve.Path{Segments: []curve.Segment{s, s.Reverse()}}
		if err := p.Check(); !errors.Is(err, curve.ErrMalformedPath) {
			t.Errorf("Check() = %v; want ErrMalformedPath", err)
		}
	})
	t.Run("ZeroLength", func(t *testing.T) {
		p := curve.Path{Segments: []curve.Segment{
			{Kind: curve.Line, From: curve.Point{X: 1, Y: 1}, To: curve.Point{X: 1, Y: 1}},
		}}
		if err := p.Check(); !errors.Is(err, curve.ErrMalformedPath) {
			t.Errorf("Check() = %v; want ErrMalformedPath", err)
		}
	})
}

// TestPathBounds checks bounds against a known square.
func TestPathBounds(t *testing.T) {
	min, max := square(true).Bounds()
	if !min.Eq(curve.Point{X: 0, Y: 0}) || !max.Eq(curve.Point{X: 1, Y: 1}) {
		t.Errorf("Bounds() = %v..%v; want (0,0)..(1,1)", min, max)
	}
}

// TestFlattenArc verifies that a bulged segment samples through its control
// region and keeps its endpoints.
func TestFlattenArc(t *testing.T) {
	s := curve.Segment{
		Kind: curve.Arc,
		From: curve.Point{X: 0, Y: 0},
		To:   curve.Point{X: 2, Y: 0},
		Ctrl: curve.Point{X: 1, Y: 2},
	}
	pts := s.Flatten()
	if len(pts) < 3 {
		t.Fatalf("Flatten() returned %d points; want ≥ 3", len(pts))
	}
	if !pts[0].Eq(s.From) || !pts[len(pts)-1].Eq(s.To) {
		t.Errorf("Flatten() endpoints = %v..%v; want %v..%v",
			pts[0], pts[len(pts)-1], s.From, s.To)
	}
	// The quadratic midpoint sits at half the control height.
	mid := pts[len(pts)/2]
	if mid.Y < 0.5 {
		t.Errorf("Flatten() midpoint %v does not bulge toward Ctrl", mid)
	}
}
