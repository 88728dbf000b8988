// Public heap operations: New, Size, the min accessors, Insert, Meld,
// DecreaseKey, and DeleteMin. Every mutating operation performs a small
// constant-size structural edit and then hands a fixed budget to the
// reduction engine (reduce.go).
package strictheap

import (
	"cmp"
	"fmt"
	"math/bits"

	"github.com/katalvlaran/strix/cyclist"
)

// New returns an empty heap.
func New[K cmp.Ordered, V any]() *Heap[K, V] {
	return &Heap[K, V]{
		cell:      &activityCell{active: true},
		rankIndex: make(map[int]*rankBucket[K, V]),
		lossOnes:  make(map[int]*node[K, V]),
	}
}

// Size reports the number of live nodes in the heap.
func (h *Heap[K, V]) Size() int { return h.size }

// MinKey returns the minimum key. The second result is false on an empty
// heap — an ordinary condition, not an error.
func (h *Heap[K, V]) MinKey() (K, bool) {
	if h.root == nil {
		var zero K

		return zero, false
	}

	return h.root.key, true
}

// MinValue returns the value stored at the minimum key.
func (h *Heap[K, V]) MinValue() (V, bool) {
	if h.root == nil {
		var zero V

		return zero, false
	}

	return h.root.val, true
}

// MinNode returns a handle to the minimum node.
func (h *Heap[K, V]) MinNode() (*Handle[K, V], bool) {
	if h.root == nil {
		return nil, false
	}

	return &Handle[K, V]{n: h.root}, true
}

// Insert adds (key, val) to the heap and returns a stable handle to the new
// node, valid until that node is removed. Implemented as a singleton meld,
// so the cost is the O(1) meld cost.
//
// Keys are assumed unique across the heap's live nodes.
func (h *Heap[K, V]) Insert(key K, val V) *Handle[K, V] {
	if h.root == nil {
		n := newNode(key, val, h.cell)
		h.root = n
		h.size = 1
		h.syncFix(n) // a singleton root is an active root of rank zero

		return &Handle[K, V]{n: n}
	}

	other := New[K, V]()
	hd := other.Insert(key, val)
	h.Meld(other)

	return hd
}

// Meld absorbs other into h in O(1) worst case and leaves other logically
// empty (reset to a fresh heap). A nil or empty other is a no-op.
//
// The side with fewer elements has its entire node set deactivated by one
// write to its shared activity cell — which is why the size comparison,
// not tree shape, decides the demotion. The two roots are compared by key,
// the larger becoming a child of the smaller; the newly demoted root joins
// the pending queue, both queues concatenate in O(1), and the reduction
// engine runs with one unit each of active-root and root-degree budget
// (a meld cannot directly create a loss violation).
func (h *Heap[K, V]) Meld(other *Heap[K, V]) {
	if other == nil || other.root == nil {
		return
	}
	if h.root == nil {
		h.moveFrom(other)

		return
	}

	// 1) Bulk-demote the smaller side: a single cell write, independent of
	//    its size. The loser's fix structure covers only now-passive nodes,
	//    so it is dropped wholesale; descriptors its nodes still carry are
	//    frozen lazily on the next touch.
	loser := other
	if h.size <= other.size {
		loser = h
	}
	loser.cell.active = false
	loser.fixMultis, loser.fixSingles = nil, nil
	loser.rankIndex = make(map[int]*rankBucket[K, V])
	loser.lossOnes = make(map[int]*node[K, V])
	loser.lossPend, loser.lossPairs = nil, nil

	// 2) The merged heap continues under the winner's bookkeeping.
	if loser == h {
		h.cell = other.cell
		h.fixMultis, h.fixSingles = other.fixMultis, other.fixSingles
		h.rankIndex = other.rankIndex
		h.lossOnes = other.lossOnes
		h.lossPend, h.lossPairs = other.lossPend, other.lossPairs
	}

	h.size += other.size

	// 3) Link roots: larger key under smaller.
	u, v := h.root, other.root
	if v.key < u.key {
		u, v = v, u
	}
	h.root = u
	h.link(v, u)
	h.syncFix(v)
	h.syncFix(u)

	// 4) Enqueue the demoted root and concatenate the pending queues.
	h.enqueue(v)
	if other.pending != nil {
		if h.pending == nil {
			h.pending = other.pending
		} else {
			cyclist.ConcatBefore(h.pending, other.pending)
		}
	}

	other.resetEmpty()

	// 5) Restore structural invariants under the meld budget.
	h.reduce(1, 1, 0, 0)
}

// DecreaseKey lowers the key of the node behind hd to key. Returns
// ErrStaleHandle if the node has been removed and ErrKeyOrder if key
// exceeds the current key; both are caller errors, never corrected
// silently. O(1) worst case.
//
// If the new key keeps heap order the edit is purely local. Otherwise the
// node is cut from its parent and reattached at root level (becoming the
// new minimum when its key undercuts the root), the abandoned parent is
// charged one unit of loss, and the reduction engine runs with a constant
// budget sized to absorb the resulting cascade.
func (h *Heap[K, V]) DecreaseKey(hd *Handle[K, V], key K) error {
	if hd == nil || hd.n == nil || hd.n.removed {
		return ErrStaleHandle
	}
	n := hd.n
	if key > n.key {
		return fmt.Errorf("%w: %v > %v", ErrKeyOrder, key, n.key)
	}

	n.key = key
	if n == h.root || key >= n.parent.key {
		return nil // heap order intact; nothing structural to do
	}

	// Cut: detach n from its parent with rank bookkeeping.
	wasActive := n.isActive()
	old := n.parent
	old.removeChild(n)
	n.parent = nil
	if wasActive {
		h.decreaseRank(old)
		n.loss = 0
	}

	// Reattach at root level.
	if key < h.root.key {
		prev := h.root
		h.root = n
		h.link(prev, n)
		h.syncFix(prev)
	} else {
		h.link(n, h.root)
	}
	h.syncFix(n)

	// The cut charges one unit of loss to the abandoned parent.
	if wasActive {
		h.chargeLoss(old)
	}

	h.reduce(1, 0, 1, 1)

	return nil
}

// DeleteMin removes the minimum node and returns its key and value, or
// ErrEmptyHeap. O(log n) worst case: the root's child set, the pending
// drain, and the reduction budget are all logarithmically bounded.
func (h *Heap[K, V]) DeleteMin() (K, V, error) {
	if h.root == nil {
		var zk K
		var zv V

		return zk, zv, ErrEmptyHeap
	}

	old := h.root
	old.removed = true
	h.dequeue(old)
	if old.fixEntry != nil {
		h.removeFix(old)
	}

	h.size--
	if h.size == 0 {
		h.root = nil
		h.pending = nil
		h.lossPend, h.lossPairs = nil, nil
		clear(h.lossOnes)

		return old.key, old.val, nil
	}

	// 1) Promote the children to root level, preserving their previous
	//    activity (active children become active-root candidates).
	kids := old.childSlice()
	for _, c := range kids {
		c.sib.Excise()
		c.parent = nil
	}
	old.children, old.degree = nil, 0

	// 2) Select the new minimum by scanning the bounded promoted set.
	min := kids[0]
	for _, c := range kids[1:] {
		if c.key < min.key {
			min = c
		}
	}
	h.root = min
	if min.isActive() {
		min.loss = 0
	}

	// 3) Re-anchor the remaining promoted nodes under the new minimum and
	//    rebuild fix-list membership for every affected node.
	for _, c := range kids {
		if c == min {
			continue
		}
		h.link(c, min)
		h.syncFix(c)
	}
	h.syncFix(min)

	// 4) Drain deferred reclassifications and run the reduction engine
	//    under a budget proportional to the logarithmic bound.
	r := bits.Len(uint(h.size)) + 1
	h.drainPending(r)
	h.reduce(2*r, 2*r, 1, 1)

	return old.key, old.val, nil
}

// moveFrom makes h take over other's entire state (the empty-receiver meld
// case) and leaves other reset.
func (h *Heap[K, V]) moveFrom(other *Heap[K, V]) {
	h.size = other.size
	h.root = other.root
	h.cell = other.cell
	h.pending = other.pending
	h.fixMultis, h.fixSingles = other.fixMultis, other.fixSingles
	h.rankIndex = other.rankIndex
	h.lossOnes = other.lossOnes
	h.lossPend, h.lossPairs = other.lossPend, other.lossPairs

	other.resetEmpty()
}

// resetEmpty returns a consumed heap to the state New produces, so a
// moved-from heap remains usable as a fresh empty heap.
func (h *Heap[K, V]) resetEmpty() {
	h.size = 0
	h.root = nil
	h.cell = &activityCell{active: true}
	h.pending = nil
	h.fixMultis, h.fixSingles = nil, nil
	h.rankIndex = make(map[int]*rankBucket[K, V])
	h.lossOnes = make(map[int]*node[K, V])
	h.lossPend, h.lossPairs = nil, nil
}
