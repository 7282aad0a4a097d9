// SPDX-License-Identifier: MIT
// Package: kolam/pattern
//
// Package pattern is the algorithmic core of the generator: it traces one
// seed motif — a closed curve path — through the anchor points of a single
// symmetry wedge, using a pattern-family strategy to shape the local steps.
//
// Model:
//
//   - Every in-wedge dot contributes a ring of anchor points (loop waypoints
//     offset from the dot by half the grid spacing). The motif weaves through
//     anchors, looping around dots rather than through them, as an authentic
//     kolam stroke does.
//   - A Strategy turns the anchor set into a candidate-edge graph (its
//     neighbor rule) and supplies a closure eagerness and a weave budget.
//     The traversal itself — candidate ordering, crossing rejection,
//     backtracking, closure — is shared by all strategies.
//
// Traversal contract (strict):
//
//   - Never revisits an edge. Edge identity is the undirected node pair,
//     regardless of curve kind, so a loop can never retrace a chord as a
//     different kind — the degeneracy the composed-design validator would
//     reject as a doubled edge.
//   - Rejects moves that cross an already-placed segment unless the strategy
//     still has weave budget (floral permits one controlled overlap).
//   - Candidate order is deterministic: ascending angle difference from the
//     current heading, then ascending edge length, then node index; the seed
//     only perturbs the choice among the leading candidates.
//   - Closes when a move returns to the start with the segment count inside
//     the complexity band [min,max]; fails once the band or the expansion
//     budget is exhausted.
//
// Determinism:
//
//   - Same (wedge, strategy, complexity, seed) ⇒ identical motif, bit for
//     bit. RNG streams derive from the seed via SplitMix64 only.
//
// Errors:
//
//   - ErrPathGeneration: no closed motif exists within the band (recoverable;
//     callers retry with derived seeds up to a fixed budget).
//   - ErrUnknownPattern: unrecognized pattern type.
//   - ErrBadWeights: custom mixture weights do not sum to 1 within ε.
package pattern
