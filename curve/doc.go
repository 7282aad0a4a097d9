// Package curve provides the planar primitives shared by every stage of the
// kolam pipeline: points, path segments, curve paths, and the ε-tolerant
// geometric predicates the generator relies on.
//
// What:
//
//   - Point: a plane coordinate with ε-aware equality and vector helpers.
//   - Segment: one stroke piece (line, arc, or bezier) between two points.
//   - Path: an ordered segment sequence tagged closed or open.
//   - SegmentsCross: strict crossing test used to reject illegal moves.
//
// Why:
//
//   - The walker, the symmetry engine, and the final validator all need the
//     same notion of "equal within tolerance" and "strictly crossing";
//     centralizing them keeps the determinism contract in one place.
//
// Tolerance:
//
//   - Epsilon (1e-9) is the single tolerance used for point coincidence,
//     closure detection, and transform deduplication across the module.
//
// Errors:
//
//   - ErrMalformedPath: a Path violates its structural invariants
//     (closed with < 3 segments, open endpoints, doubled edges).
package curve
