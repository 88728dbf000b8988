// Package strictheap implements a mergeable min-heap with worst-case — not
// amortized — operation bounds: O(1) Insert, MinKey/MinValue/MinNode, and
// Meld; O(1) DecreaseKey; O(log n) DeleteMin.
//
// Overview:
//
//   - The structure is a single heap-ordered tree whose nodes are divided
//     into active and passive ones. Passive nodes are dormant subtrees merged
//     in from a smaller heap; they are excluded from the rank and loss
//     bookkeeping until removed or cut.
//   - Activity is shared, not stored per node: every node holds a reference
//     to its originating heap's activity cell. Melding flips the smaller
//     heap's cell once, deactivating its entire node set in O(1) regardless
//     of its size. Passivity is monotone — a node never becomes active again.
//   - Rank bookkeeping is deferred through a fix-list: a circular list of
//     (node, rank) entries covering exactly the active roots, partitioned
//     into a "multis" segment (rank collides with a neighbor) and a
//     "singles" segment (rank currently unique). The front two entries of
//     the multis segment are always an equal-rank pair, so a reducible pair
//     is detected in O(1) without any scan.
//   - Every mutating operation performs a constant-size structural edit and
//     then invokes the reduction engine with a fixed, operation-specific
//     budget. Four independent repair rules — active-root reduction, root
//     degree reduction, and one- and two-node loss reduction — each fire at
//     most as many times as their budget allows. The budget discipline is
//     what converts the rules' amortized cost into a worst-case bound: each
//     operation pays a constant (or, for DeleteMin, logarithmic) number of
//     reduction steps and any backlog is drained by later operations.
//
// When to use:
//
//   - Schedulers, event-driven simulation, and real-time shortest-path
//     computation — anywhere predictable per-call latency matters more than
//     amortized averages, and where Meld or DecreaseKey must be cheap.
//   - For plain push/pop workloads without melding, an array-backed binary
//     heap is simpler and usually faster in absolute terms.
//
// Complexity:
//
//	– Insert:      O(1) worst case (a singleton meld).
//	– Meld:        O(1) worst case (size comparison decides which side is
//	               bulk-demoted; tree shape is never inspected).
//	– MinKey/…:    O(1), read-only.
//	– DecreaseKey: O(1) worst case (at most one cut plus a constant
//	               reduction budget).
//	– DeleteMin:   O(log n) worst case (the root's child set and the
//	               reduction budget are both logarithmically bounded).
//
// Error handling (sentinel errors):
//
//   - An empty heap is an ordinary condition for the read accessors:
//     MinKey, MinValue, and MinNode return a comma-ok false instead of an
//     error. DeleteMin on an empty heap returns ErrEmptyHeap.
//   - ErrKeyOrder: DecreaseKey was called with a key greater than the
//     node's current key. Caller error, never silently corrected.
//   - ErrStaleHandle: the handle's node has already been removed from its
//     heap. Caller error.
//   - Internal consistency (fix entries referencing live active roots,
//     resolvable rank descriptors, parent/child agreement) is guarded by
//     debug-only assertions from github.com/negrel/assert, compiled to
//     no-ops unless the build carries -tags assert.
//
// Concurrency:
//
//	The engine is single-threaded by design: no internal locking, no
//	suspension points. Wrap a heap with an external mutex if concurrent
//	callers are unavoidable.
//
// Keys are assumed unique. Ties that arise in internal link comparisons
// break toward the first operand and are not observable through the API.
//
// The underlying ring primitive is github.com/katalvlaran/strix/cyclist;
// one node participates simultaneously in its parent's sibling ring, the
// fix-list, and the pending work queue through three independent ring cells.
package strictheap
