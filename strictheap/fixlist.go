// The rank / fix-list mechanism.
//
// Rank changes are never propagated eagerly: they are recorded by moving a
// node's fix entry between per-rank buckets, and each bucket keeps its
// entries contiguous in whichever segment it occupies. A bucket lives in
// the singles segment while it holds one entry and is promoted to the front
// of the multis segment on its first collision, so the multis front two are
// always an equal-rank pair and the reduction engine's probe is O(1).
//
// Fix entries cover exactly the live active roots. Bulk demotion (losing a
// meld) drops the loser's whole fix structure in O(1); the pending
// descriptors its nodes still carry are frozen lazily, at the next touch,
// by removeFix's passive-node guard.
package strictheap

import (
	"github.com/negrel/assert"

	"github.com/katalvlaran/strix/cyclist"
)

// rankOf resolves a node's rank descriptor, following the fix entry when
// the rank is pending. An unset descriptor resolves to zero.
func (h *Heap[K, V]) rankOf(n *node[K, V]) int {
	switch n.rankState {
	case rankPending:
		return n.fixEntry.Value.rank
	case rankFixed:
		return n.rankVal
	default:
		return 0
	}
}

// setRank settles a concrete rank on a node that is not in the fix-list.
func (n *node[K, V]) setRank(r int) {
	n.rankState = rankFixed
	n.rankVal = r
}

// increaseRank records a +1 rank change. For a fix-listed node this is a
// bucket move (remove + re-add under the new rank); otherwise the concrete
// value is bumped. O(1) either way.
func (h *Heap[K, V]) increaseRank(n *node[K, V]) {
	if n.fixEntry != nil && n.isPassive() {
		h.removeFix(n) // freeze a descriptor stranded by bulk demotion
	}
	r := h.rankOf(n) + 1
	if n.fixEntry != nil {
		h.removeFix(n)
		h.addFix(n, r)

		return
	}
	n.setRank(r)
}

// decreaseRank records a -1 rank change, floored at zero.
func (h *Heap[K, V]) decreaseRank(n *node[K, V]) {
	if n.fixEntry != nil && n.isPassive() {
		h.removeFix(n)
	}
	r := h.rankOf(n) - 1
	if r < 0 {
		r = 0
	}
	if n.fixEntry != nil {
		h.removeFix(n)
		h.addFix(n, r)

		return
	}
	n.setRank(r)
}

// singles/multis head maintenance. Excising the node a segment head points
// at must re-aim the head first.

func (h *Heap[K, V]) dropFromSingles(e *cyclist.Node[*fix[K, V]]) {
	if cyclist.Same(h.fixSingles, e) {
		if e.IsSingleton() {
			h.fixSingles = nil
		} else {
			h.fixSingles = e.Next()
		}
	}
	e.Excise()
}

func (h *Heap[K, V]) dropFromMultis(e *cyclist.Node[*fix[K, V]]) {
	if cyclist.Same(h.fixMultis, e) {
		if e.IsSingleton() {
			h.fixMultis = nil
		} else {
			h.fixMultis = e.Next()
		}
	}
	e.Excise()
}

func (h *Heap[K, V]) pushSinglesBack(e *cyclist.Node[*fix[K, V]]) {
	if h.fixSingles == nil {
		h.fixSingles = e
	} else {
		cyclist.SpliceBefore(h.fixSingles, e)
	}
}

func (h *Heap[K, V]) pushMultisFront(e *cyclist.Node[*fix[K, V]]) {
	if h.fixMultis == nil {
		h.fixMultis = e
	} else {
		cyclist.SpliceBefore(h.fixMultis, e)
		h.fixMultis = e
	}
}

// addFix registers n — which must be an active root — in the fix-list under
// rank r. A first-of-its-rank entry joins the singles segment; a colliding
// entry promotes its bucket to the front of multis, entry adjacent to the
// bucket head, making the new reducible pair probe-visible immediately.
func (h *Heap[K, V]) addFix(n *node[K, V], r int) {
	assert.True(n.isActiveRoot(), "strictheap: fix entry for a non active root")
	assert.True(n.fixEntry == nil, "strictheap: node already fix-listed")

	e := cyclist.New(&fix[K, V]{n: n, rank: r})
	n.fixEntry = e
	n.rankState = rankPending

	b := h.rankIndex[r]
	if b == nil {
		h.pushSinglesBack(e)
		h.rankIndex[r] = &rankBucket[K, V]{repr: e, count: 1}

		return
	}

	b.count++
	if !b.inMultis {
		// First collision: move the lone resident to the multis front.
		h.dropFromSingles(b.repr)
		h.pushMultisFront(b.repr)
		b.inMultis = true
	}
	cyclist.SpliceAfter(b.repr, e)
}

// removeFix withdraws n's fix entry, settling the recorded rank as the
// node's concrete rank. A bucket shrinking to one resident is demoted back
// to singles; an emptied bucket is deleted.
//
// A passive node reaching this point carries a descriptor stranded by a
// bulk demotion (its heap's fix structure was dropped wholesale); the
// descriptor is frozen in place without touching any list.
func (h *Heap[K, V]) removeFix(n *node[K, V]) {
	e := n.fixEntry
	assert.True(e != nil, "strictheap: removeFix on a node without entry")

	r := e.Value.rank
	n.setRank(r)
	n.fixEntry = nil

	if n.isPassive() {
		return // stranded descriptor; its lists are gone
	}

	b := h.rankIndex[r]
	assert.True(b != nil, "strictheap: fix entry without rank bucket")

	b.count--
	if cyclist.Same(b.repr, e) && b.count > 0 {
		// Entries of a bucket are contiguous, so the neighbor is same-rank.
		b.repr = e.Next()
	}
	if b.inMultis {
		h.dropFromMultis(e)
	} else {
		h.dropFromSingles(e)
	}

	switch {
	case b.count == 0:
		delete(h.rankIndex, r)
	case b.count == 1 && b.inMultis:
		// No collision left at this rank: demote the survivor to singles.
		h.dropFromMultis(b.repr)
		h.pushSinglesBack(b.repr)
		b.inMultis = false
	}
}

// syncFix reconciles a node's fix-list membership with its current status:
// active roots are listed, everything else is not. Becoming an active root
// also clears loss, which is only meaningful on active non-roots.
func (h *Heap[K, V]) syncFix(n *node[K, V]) {
	if n.isActiveRoot() && !n.removed {
		if n.fixEntry == nil {
			n.loss = 0
			h.addFix(n, h.rankOf(n))
		}

		return
	}
	if n.fixEntry != nil {
		h.removeFix(n)
	}
}

// enqueue appends n to the pending queue unless it is already queued.
func (h *Heap[K, V]) enqueue(n *node[K, V]) {
	if n.qcell != nil {
		return
	}
	n.qcell = cyclist.New(n)
	if h.pending == nil {
		h.pending = n.qcell
	} else {
		cyclist.SpliceBefore(h.pending, n.qcell)
	}
}

// dequeue withdraws n from the pending queue if present.
func (h *Heap[K, V]) dequeue(n *node[K, V]) {
	if n.qcell == nil {
		return
	}
	if cyclist.Same(h.pending, n.qcell) {
		if n.qcell.IsSingleton() {
			h.pending = nil
		} else {
			h.pending = n.qcell.Next()
		}
	}
	n.qcell.Excise()
	n.qcell = nil
}

// drainPending reclassifies up to k queued nodes. Stale queue residents
// (removed or demoted nodes) cost O(1) each and leave the queue for good.
func (h *Heap[K, V]) drainPending(k int) {
	for i := 0; i < k && h.pending != nil; i++ {
		n := h.pending.Value
		h.dequeue(n)
		if n.removed {
			continue
		}
		h.syncFix(n)
	}
}

// noteLoss records a loss transition for the loss-reduction rules: hitting
// 1 may complete a rank-equal pair, hitting 2 queues a one-node candidate.
// Candidates are re-validated when a rule fires, so stale registrations are
// harmless.
func (h *Heap[K, V]) noteLoss(n *node[K, V]) {
	switch {
	case n.loss >= 2:
		h.lossPend = append(h.lossPend, n)
	case n.loss == 1:
		r := h.rankOf(n)
		buddy, ok := h.lossOnes[r]
		if ok && buddy != n && !buddy.removed &&
			buddy.isActive() && !buddy.isActiveRoot() &&
			buddy.loss == 1 && h.rankOf(buddy) == r {
			h.lossPairs = append(h.lossPairs, [2]*node[K, V]{buddy, n})
			delete(h.lossOnes, r)

			return
		}
		h.lossOnes[r] = n
	}
}
