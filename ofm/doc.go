// Package ofm implements order file maintenance: a packed array supporting
// fast insertion at either end or at an arbitrary rank.
//
// Overview:
//
//   - A traditional slice needs O(n) time per insertion or deletion to
//     shift the succeeding elements. By maintaining bounded-density gaps
//     between elements, insertion and deletion drop to O(log² n) amortized
//     element moves.
//   - A linked list achieves O(1) insertion, but this structure is
//     cache-oblivious: it performs an asymptotically optimal number of
//     memory transfers at every level of the cache hierarchy, so in-order
//     traversal runs at sequential-scan speed instead of pointer-chasing
//     speed.
//
// Mechanics:
//
//   - Cells are grouped into equal leaves of a conceptual complete binary
//     tree. An insertion that fills a leaf walks toward the root, widening
//     the window, until it finds an ancestor whose occupancy density ρ
//     falls inside the window [0.5 − d/4, 0.75 + d/4] (d = relative depth);
//     that ancestor's range is rebalanced by redistributing its occupants
//     at an even stride. Reaching the root doubles the structure instead.
//   - The window's [0.5, 0.75] base is the classic choice; NewWith accepts
//     an Options value tightening or loosening it (ErrBadDensity rejects a
//     window not strictly inside (0, 1)).
//
// Stable addressing:
//
//   - Elements are addressed by an opaque Index that changes whenever a
//     redistribution moves them. A stored type may implement Relocatable
//     to observe every move and keep external references current; types
//     that do not implement it are moved silently.
//
// Complexity:
//
//	– PushFront/PushBack/insert: O(log² n) amortized element moves.
//	– At:                        O(1).
//	– In-order traversal:        O(n) with optimal cache behavior.
//
// Thread safety: none; synchronize externally if needed.
package ofm
