// Package symmetry computes the rigid-motion transform set of a kolam design
// and replicates a seed motif across the grid under it.
//
// What:
//
//   - Transform: one affine rotation or reflection about the grid center.
//   - Group: an ordered, ε-deduplicated transform set, identity first.
//   - Resolve: (order, kind, center) → Group with fail-fast validation.
//   - Replicate: applies every transform of a Group to a motif path,
//     collapsing replicas that coincide within ε.
//
// Ordering (stable, index-addressable):
//
//   - Rotational k: rotations by 2πi/k, i ascending (identity first).
//   - Dihedral k: the k rotations first, then the k reflections across axes
//     at angle iπ/k, i ascending (reflection-after-rotation ordering).
//   - Reflective k: identity, then one reflection across the axis inclined
//     at π/k through the center.
//
// Why dedup:
//
//   - A motif that is itself mirror-symmetric produces reflection replicas
//     that coincide exactly with rotation replicas; collapsing them prevents
//     double-stroked lines along mirror axes.
//
// Errors:
//
//   - ErrInvalidSymmetry: order ≤ 0 or an unknown kind.
package symmetry
