// Package route computes orthogonal edge paths for box-and-line diagrams.
//
// What:
//
//   - Every edge of a diagram gets a polyline from a point on its start
//     node's boundary to a point on its end node's boundary.
//   - Segmented classes (inheritance, implementation, aggregation,
//     composition, association) travel on axis-aligned segments and edges
//     sharing an endpoint on the same side merge into one trunk.
//   - Dependencies are straight lines; self-edges are fixed loops around a
//     node corner.
//
// How:
//
//   - A Layouter runs one pass over the edge list. The pass owns a fresh
//     Context (routing storage) that is written once per edge and only ever
//     consulted for edges routed earlier in priority order.
//   - Segmentation styles (Straight, HVH, VHV) decide sides and the shape of
//     a path for one edge in isolation; the Layouter tries them as an ordered
//     chain guarded by IsPossible.
//   - Attachment points come from a slot allocator that spaces discrete
//     indices along a side proportionally to its length.
//
// Complexity:
//
//   - Each outer iteration removes at least one pending edge; conflict
//     searches are linear in the stored edges touching a node, so a class of
//     N edges costs O(N²).
//
// Errors:
//
//   - ErrUnclassified: an edge reached the router without a priority class.
//   - ErrNotAttached: a style was asked about a node the edge does not touch.
//   - ErrAlreadyRouted: an edge was stored twice in one pass.
//
// These are contract violations and are raised with panic; Layouter.Layout
// validates its input first and returns an error instead.
package route
