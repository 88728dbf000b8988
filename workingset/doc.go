// Package workingset implements Iacono's working-set structure, a
// dictionary whose access time adapts to recency.
//
// # The working-set property
//
// If t distinct operations have happened since key x was last touched,
// looking x up again costs O(log t), worst case. A large dictionary whose
// hot subset is small therefore serves that subset at effectively constant
// cost, no matter how much cold data sits behind it.
//
// Splay trees achieve the same bound only amortized. This structure gets
// the worst-case bound with a simpler device: a sequence of exponentially
// growing buckets, bucket i holding at most 2^i entries. Every access
// moves the entry to bucket 0; displaced entries ripple rightward one
// bucket at a time, oldest first, so each operation touches O(log t)
// buckets and does O(1) work in each.
//
// Each bucket pairs a hash map (membership and value storage) with a FIFO
// ring that remembers arrival order, so evicting the oldest entry and
// extracting an arbitrary one are both O(1) inside a bucket.
//
// # Complexity
//
//	Insert    O(log n) worst case
//	Get       O(log t), t = operations since the key was last accessed
//	Remove    O(log n) worst case
//	Len       O(1)
//
// # Concurrency
//
// A Set is not safe for concurrent use. Note that Get mutates the
// structure, so read-only workloads still require external locking.
package workingset
