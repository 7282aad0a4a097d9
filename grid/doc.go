// Package grid models the dot lattice that anchors every kolam design.
//
// What:
//
//   - Spec: immutable lattice description (square, triangular, radial) with
//     dimensions and spacing.
//   - Dot: one lattice site — integer coordinate plus its resolved plane
//     position, derived deterministically from the Spec.
//   - Build: pure constructor Spec → []Dot with fail-fast validation.
//
// Why:
//
//   - Downstream stages (wedge extraction, anchor layout, bounds checks) all
//     consume the same frozen dot sequence; building it once keeps the
//     generation request deterministic and cache-friendly.
//
// Determinism:
//
//   - Dots are emitted in a fixed documented order: row-major for square and
//     triangular lattices, center then ring-by-ring (spoke ascending) for
//     radial lattices. The same Spec always yields the same sequence.
//
// Complexity:
//
//   - Build: O(rows×cols) or O(rings×spokes) time, same space.
//
// Errors:
//
//   - ErrInvalidGrid: non-positive dimensions, spacing ≤ 0, or an unknown
//     lattice kind.
package grid
