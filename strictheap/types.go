// This file declares the Heap, Handle, node, rank-descriptor, and fix-entry
// types plus the package's sentinel errors. The operations live in heap.go,
// the activity model in node.go, the fix-list mechanism in fixlist.go, and
// the reduction engine in reduce.go.
package strictheap

import (
	"cmp"
	"errors"

	"github.com/katalvlaran/strix/cyclist"
)

// Sentinel errors for heap operations.
var (
	// ErrEmptyHeap indicates a mutating operation that requires a non-empty
	// heap (DeleteMin) was called on an empty one.
	ErrEmptyHeap = errors.New("strictheap: heap is empty")

	// ErrKeyOrder indicates DecreaseKey was called with a key greater than
	// the node's current key.
	ErrKeyOrder = errors.New("strictheap: new key exceeds current key")

	// ErrStaleHandle indicates the handle's node was already removed from
	// its heap (or the handle is nil).
	ErrStaleHandle = errors.New("strictheap: handle no longer refers to a live node")
)

// activityCell is the shared boolean cell behind the O(1) bulk-deactivation
// trick: every node minted by a heap references that heap's cell, so one
// write demotes the whole node set. The cell's lifetime is that of the
// longest-lived referencing node.
type activityCell struct {
	active bool
}

// rankState tags a node's rank descriptor.
type rankState uint8

const (
	// rankUnset marks a freshly created node that has never been linked.
	// It resolves to rank zero.
	rankUnset rankState = iota

	// rankFixed marks a concrete, settled rank stored in node.rankVal.
	rankFixed

	// rankPending marks a rank recorded in the node's fix-list entry;
	// resolution follows node.fixEntry at read time.
	rankPending
)

// fix pairs a node with the rank it is currently recorded under in the
// fix-list. Entries cover exactly the live active roots of a heap.
type fix[K cmp.Ordered, V any] struct {
	n    *node[K, V]
	rank int
}

// rankBucket tracks all fix entries of one rank. Entries of a rank are kept
// contiguous in whichever segment they occupy, with repr at the block head,
// so reclassification between singles and multis touches the affected
// neighborhood only.
type rankBucket[K cmp.Ordered, V any] struct {
	repr     *cyclist.Node[*fix[K, V]]
	count    int
	inMultis bool
}

// node is the tree node. It is shared between its parent's sibling ring,
// its own parent back-reference (never owning), the fix-list, and, when
// enqueued, the pending work queue; each role has its own ring cell so the
// aliases never collide.
type node[K cmp.Ordered, V any] struct {
	key K
	val V

	// cell is the shared activity flag; nil means unconditionally passive.
	cell *activityCell

	// Rank descriptor: a tagged union of unset / concrete / pending.
	rankState rankState
	rankVal   int
	fixEntry  *cyclist.Node[*fix[K, V]]

	// loss counts potential debt from cuts among this node's active
	// children. Bounded to 2 at the end of every public operation.
	loss int

	parent *node[K, V]

	// children points at the leftmost child's sibling cell; active children
	// are pushed at the front, passive ones at the back.
	children *cyclist.Node[*node[K, V]]
	degree   int

	// sib is this node's cell in its parent's children ring.
	sib *cyclist.Node[*node[K, V]]

	// qcell is this node's cell in the pending queue, nil when not queued.
	qcell *cyclist.Node[*node[K, V]]

	// removed is set when the node leaves its heap for good; it is what
	// invalidates outstanding handles.
	removed bool
}

// Heap is a mergeable min-heap with worst-case operation bounds.
// The zero value is not usable; construct heaps with New.
type Heap[K cmp.Ordered, V any] struct {
	size int
	root *node[K, V]

	// cell is flipped false exactly once, when this heap loses a meld.
	cell *activityCell

	// pending queues nodes whose fix-list membership awaits
	// reclassification; drained by DeleteMin under its budget.
	pending *cyclist.Node[*node[K, V]]

	// The fix-list: one circular structure conceptually, held as its two
	// segments plus a per-rank index for O(1) local reclassification.
	fixMultis  *cyclist.Node[*fix[K, V]]
	fixSingles *cyclist.Node[*fix[K, V]]
	rankIndex  map[int]*rankBucket[K, V]

	// Loss-tracking partition: one loss-1 candidate per rank, plus queued
	// candidates for the two loss-reduction rules.
	lossOnes  map[int]*node[K, V]
	lossPend  []*node[K, V]
	lossPairs [][2]*node[K, V]
}

// Handle is a stable reference to a node returned by Insert (and MinNode).
// It remains valid until the node is removed by DeleteMin.
type Handle[K cmp.Ordered, V any] struct {
	n *node[K, V]
}

// Key returns the node's current key. The result is unspecified once the
// handle is stale.
func (h *Handle[K, V]) Key() K { return h.n.key }

// Value returns the node's value. The result is unspecified once the
// handle is stale.
func (h *Handle[K, V]) Value() V { return h.n.val }
