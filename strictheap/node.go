// Activity model and tree-structure helpers for nodes.
//
// Invariant: a freshly
// inserted node references its heap's activity cell, whose value is true,
// so the root of an isolated single-node heap is an active root. A nil cell
// means unconditionally passive. Passivity is monotone: cells are only ever
// flipped from true to false, and nodes never exchange cells.
package strictheap

import (
	"cmp"

	"github.com/negrel/assert"

	"github.com/katalvlaran/strix/cyclist"
)

// newNode mints a node owned by the heap whose activity cell is given.
func newNode[K cmp.Ordered, V any](key K, val V, cell *activityCell) *node[K, V] {
	n := &node[K, V]{
		key:       key,
		val:       val,
		cell:      cell,
		rankState: rankUnset,
	}
	n.sib = cyclist.New(n)

	return n
}

// isActive reports whether the node participates in the rank/loss
// machinery. Reconciles the default state against the shared cell: once
// the cell flips false every node relying on it inherits passivity with no
// individual update.
func (n *node[K, V]) isActive() bool {
	return n.cell != nil && n.cell.active
}

func (n *node[K, V]) isPassive() bool { return !n.isActive() }

// isActiveRoot reports whether n is active and either parentless or the
// child of a passive node — the set the fix-list covers.
func (n *node[K, V]) isActiveRoot() bool {
	return n.isActive() && (n.parent == nil || n.parent.isPassive())
}

// isLinkable reports whether every child of n is passive, a precondition
// for links that must not create two active paths through one node.
// O(degree of n).
func (n *node[K, V]) isLinkable() bool {
	linkable := true
	if n.children != nil {
		n.children.Do(func(c *cyclist.Node[*node[K, V]]) bool {
			if c.Value.isActive() {
				linkable = false
			}

			return linkable
		})
	}

	return linkable
}

func (n *node[K, V]) isPassiveLinkable() bool {
	return n.isPassive() && n.isLinkable()
}

// pushChildFront prepends c to n's children; used for active children so
// the most recently linked active child is leftmost.
func (n *node[K, V]) pushChildFront(c *node[K, V]) {
	assert.True(c.sib.IsSingleton(), "strictheap: child already linked")
	if n.children == nil {
		n.children = c.sib
	} else {
		cyclist.SpliceBefore(n.children, c.sib)
		n.children = c.sib
	}
	n.degree++
}

// pushChildBack appends c to n's children; used for passive children.
func (n *node[K, V]) pushChildBack(c *node[K, V]) {
	assert.True(c.sib.IsSingleton(), "strictheap: child already linked")
	if n.children == nil {
		n.children = c.sib
	} else {
		cyclist.SpliceBefore(n.children, c.sib)
	}
	n.degree++
}

// removeChild excises c from n's children ring.
func (n *node[K, V]) removeChild(c *node[K, V]) {
	assert.True(c.parent == n, "strictheap: parent/children disagreement")
	if c.sib.IsSingleton() {
		n.children = nil
	} else if cyclist.Same(n.children, c.sib) {
		n.children = c.sib.Next()
	}
	c.sib.Excise()
	n.degree--
}

// lastChild returns n's rightmost child, or nil.
func (n *node[K, V]) lastChild() *node[K, V] {
	if n.children == nil {
		return nil
	}

	return n.children.Prev().Value
}

// childSlice snapshots n's children in sibling order. Used by DeleteMin,
// where the degree is logarithmically bounded.
func (n *node[K, V]) childSlice() []*node[K, V] {
	if n.children == nil {
		return nil
	}
	out := make([]*node[K, V], 0, n.degree)
	n.children.Do(func(c *cyclist.Node[*node[K, V]]) bool {
		out = append(out, c.Value)

		return true
	})

	return out
}
