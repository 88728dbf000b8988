// The reduction engine: four independent structural-repair rules, each
// invoked under a strict per-operation budget. The budget discipline is the
// source of the worst-case (not merely amortized) guarantee — an operation
// pays a fixed number of rule firings and leaves any backlog for the same
// budgets of later operations.
package strictheap

import (
	"github.com/negrel/assert"

	"github.com/katalvlaran/strix/cyclist"
)

// link detaches x from its current parent, if any, and attaches it under y,
// maintaining rank bookkeeping on both ends: an active x is prepended to
// y's children and raises y's rank; a passive x is appended and leaves
// ranks alone. Returns x's former parent (nil if x was a root) so callers
// can settle loss debt.
//
// link does not touch fix-list membership of x or y; callers follow up
// with syncFix on the nodes whose active-root status may have changed.
func (h *Heap[K, V]) link(x, y *node[K, V]) *node[K, V] {
	assert.True(x != y, "strictheap: self-link")

	old := x.parent
	active := x.isActive()

	if old != nil {
		old.removeChild(x)
		if active {
			h.decreaseRank(old)
		}
	}

	x.parent = y
	if active {
		y.pushChildFront(x)
		h.increaseRank(y)
	} else {
		y.pushChildBack(x)
	}

	return old
}

// reparent moves a passive node under y with no rank bookkeeping on either
// side; passive children are invisible to the rank machinery.
func (h *Heap[K, V]) reparent(x, y *node[K, V]) {
	assert.True(x.isPassive(), "strictheap: reparent of an active node")

	if x.parent != nil {
		x.parent.removeChild(x)
	}
	x.parent = y
	y.pushChildBack(x)
}

// chargeLoss settles one unit of loss on n. A node below the threshold
// simply counts the unit and registers with the loss partition. A node
// already carrying maximal debt is cut instead — reattached under the root
// with a clean counter — and the unit moves to the parent it abandoned,
// mirroring a Fibonacci-heap cascading cut. The walk is strictly upward,
// so it terminates; counters never exceed the bound of 2.
func (h *Heap[K, V]) chargeLoss(n *node[K, V]) {
	for n != nil && n.isActive() && !n.isActiveRoot() {
		if n.loss < 2 {
			n.loss++
			h.noteLoss(n)

			return
		}

		old := h.link(n, h.root)
		n.loss = 0
		h.syncFix(n)
		n = old
	}
}

// reduce repeatedly attempts the four rules while their budgets remain and
// at least one rule fired in the previous pass. Terminates after at most
// a+b+c+d firings.
func (h *Heap[K, V]) reduce(a, b, c, d int) {
	progress := true
	sum := a + b + c + d
	for progress && sum > 0 {
		if a > 0 && h.activeRootReduction() {
			a--
		}
		if b > 0 && h.rootDegreeReduction() {
			b--
		}
		if c > 0 && h.oneNodeLossReduction() {
			c--
		}
		if d > 0 && h.twoNodeLossReduction() {
			d--
		}

		oldSum := sum
		sum = a + b + c + d
		progress = sum < oldSum // progress iff at least one rule fired
	}
}

// activeRootReduction probes the front two entries of the multis segment.
// No-op when they are absent, identical, or rank-distinct. Otherwise the
// pair of equal-rank active roots is linked, larger key under smaller, and
// if the absorber's rightmost child is passive it is reattached directly
// under the overall minimum to keep mixed child sequences bounded.
func (h *Heap[K, V]) activeRootReduction() bool {
	if h.fixMultis == nil {
		return false
	}
	x := h.fixMultis
	y := x.Next()
	if cyclist.Same(x, y) || x.Value.rank != y.Value.rank {
		return false
	}

	fx, fy := x.Value, y.Value
	assert.True(fx.n.isActiveRoot(), "strictheap: multis front is not an active root")
	assert.True(fy.n.isActiveRoot(), "strictheap: multis front is not an active root")

	if fy.n.key < fx.n.key {
		fx, fy = fy, fx
	}

	// Standard heap link: the larger key becomes a child of the smaller.
	h.link(fy.n, fx.n)
	h.syncFix(fy.n) // fy is no longer an active root

	// Keep the absorber's mixed children bounded: a passive rightmost child
	// moves under the heap minimum. Skipped when the absorber is the
	// minimum itself, where the move is the identity.
	if fx.n != h.root {
		if last := fx.n.lastChild(); last != nil && last.isPassive() {
			h.reparent(last, h.root)
		}
	}

	return true
}

// rootDegreeReduction links the two rightmost passive-linkable children of
// the minimum root together, shrinking the root's fan-out by one.
func (h *Heap[K, V]) rootDegreeReduction() bool {
	root := h.root
	if root == nil || root.degree < 2 {
		return false
	}

	xCell := root.children.Prev()
	yCell := xCell.Prev()
	x, y := xCell.Value, yCell.Value
	if !x.isPassiveLinkable() || !y.isPassiveLinkable() {
		return false
	}

	if y.key < x.key {
		x, y = y, x
	}
	h.link(y, x) // passive under passive: appended, no rank traffic

	return true
}

// oneNodeLossReduction drains stale candidates and fires on the first live
// one: an active non-root whose loss reached the threshold is cut from its
// parent and reattached under the root as a root-level node, transferring
// one unit of loss to the parent it left.
func (h *Heap[K, V]) oneNodeLossReduction() bool {
	for len(h.lossPend) > 0 {
		n := h.lossPend[0]
		h.lossPend = h.lossPend[1:]
		if n.removed || !n.isActive() || n.isActiveRoot() || n.loss < 2 || n.parent == nil {
			continue // invalidated since registration
		}

		old := h.link(n, h.root)
		n.loss = 0
		h.syncFix(n)
		h.chargeLoss(old)

		return true
	}

	return false
}

// twoNodeLossReduction fires on a registered pair of rank-equal active
// non-roots with one unit of loss each, linking the larger key under the
// smaller and clearing both counters — the capped analogue of a cascading
// cut.
func (h *Heap[K, V]) twoNodeLossReduction() bool {
	for len(h.lossPairs) > 0 {
		pair := h.lossPairs[0]
		h.lossPairs = h.lossPairs[1:]
		x, y := pair[0], pair[1]

		if !h.pairStillQualifies(x, y) {
			continue
		}

		if y.key < x.key {
			x, y = y, x
		}
		old := h.link(y, x)
		x.loss, y.loss = 0, 0
		h.syncFix(y)
		h.chargeLoss(old)

		return true
	}

	return false
}

// pairStillQualifies re-validates a two-node-loss registration at fire
// time: both live active non-roots, both at loss 1, ranks still equal.
func (h *Heap[K, V]) pairStillQualifies(x, y *node[K, V]) bool {
	for _, n := range []*node[K, V]{x, y} {
		if n.removed || !n.isActive() || n.isActiveRoot() || n.loss != 1 {
			return false
		}
	}

	return h.rankOf(x) == h.rankOf(y)
}
