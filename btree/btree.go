// Package btree implements a fixed-order in-memory B-tree.
// See doc.go for the full contract.
package btree

import (
	"cmp"
	"slices"

	"github.com/negrel/assert"
)

// order is the maximum number of children below a node. It is odd so a
// full node splits into two equal halves around a single middle item.
const order = 7

// midpoint is the index of the promoted item when a node at order items
// splits.
const midpoint = order / 2

// item is one stored key/value pair.
type item[K cmp.Ordered, V any] struct {
	key K
	val V
}

// treeNode holds up to order-1 items in steady state; it reaches order
// items only transiently, between an insert and the split that follows.
// A leaf has no children; an internal node has len(items)+1 children.
type treeNode[K cmp.Ordered, V any] struct {
	parent   *treeNode[K, V]
	items    []item[K, V]
	children []*treeNode[K, V]
}

// Tree is a B-tree map. Construct instances with New; the zero value is
// not usable.
type Tree[K cmp.Ordered, V any] struct {
	root *treeNode[K, V]
	size int
}

// New constructs an empty tree.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{root: &treeNode[K, V]{}}
}

// Len reports the number of stored pairs.
func (t *Tree[K, V]) Len() int { return t.size }

// search locates key within n's items: the index where it sits, or where
// it would be inserted, plus whether it was found.
func (n *treeNode[K, V]) search(key K) (int, bool) {
	return slices.BinarySearchFunc(n.items, key, func(it item[K, V], k K) int {
		return cmp.Compare(it.key, k)
	})
}

func (n *treeNode[K, V]) isLeaf() bool { return len(n.children) == 0 }

// Get returns the value stored under key.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	n := t.root
	for {
		i, found := n.search(key)
		if found {
			return n.items[i].val, true
		}
		if n.isLeaf() {
			var zero V

			return zero, false
		}
		n = n.children[i]
	}
}

// Insert stores the pair, replacing the value if the key exists.
func (t *Tree[K, V]) Insert(key K, val V) {
	n := t.root
	for {
		i, found := n.search(key)
		if found {
			n.items[i].val = val

			return
		}
		if n.isLeaf() {
			n.items = slices.Insert(n.items, i, item[K, V]{key: key, val: val})
			t.size++
			t.balance(n)

			return
		}
		n = n.children[i]
	}
}

// balance walks from n toward the root, splitting every node that has
// reached order items.
func (t *Tree[K, V]) balance(n *treeNode[K, V]) {
	for n != nil && len(n.items) == order {
		promoted, right := n.split()

		parent := n.parent
		if parent == nil {
			// The root split: grow the tree by one level.
			root := &treeNode[K, V]{
				items:    []item[K, V]{promoted},
				children: []*treeNode[K, V]{n, right},
			}
			n.parent = root
			right.parent = root
			t.root = root

			return
		}

		right.parent = parent
		parent.upinsert(promoted, right)
		n = parent
	}
}

// split divides a node at order items into itself (the left half), the
// promoted middle item, and a fresh right sibling.
func (n *treeNode[K, V]) split() (item[K, V], *treeNode[K, V]) {
	assert.True(len(n.items) == order, "btree: split of a non-full node")
	assert.True(n.isLeaf() || len(n.children) == order+1, "btree: item/child count mismatch")

	right := &treeNode[K, V]{
		items: append([]item[K, V](nil), n.items[midpoint+1:]...),
	}
	if !n.isLeaf() {
		right.children = append([]*treeNode[K, V](nil), n.children[midpoint+1:]...)
		for _, c := range right.children {
			c.parent = right
		}
		n.children = n.children[:midpoint+1]
	}

	promoted := n.items[midpoint]
	n.items = n.items[:midpoint]

	return promoted, right
}

// upinsert receives a promoted item and the right half of the child that
// produced it.
func (n *treeNode[K, V]) upinsert(it item[K, V], right *treeNode[K, V]) {
	assert.True(!n.isLeaf(), "btree: upinsert into a leaf")

	i, _ := n.search(it.key)
	n.items = slices.Insert(n.items, i, it)
	n.children = slices.Insert(n.children, i+1, right)
}

// Ascend visits every pair in ascending key order; it stops early if fn
// returns false. The tree must not be mutated during the walk.
func (t *Tree[K, V]) Ascend(fn func(K, V) bool) {
	t.root.ascend(fn)
}

func (n *treeNode[K, V]) ascend(fn func(K, V) bool) bool {
	for i, it := range n.items {
		if !n.isLeaf() && !n.children[i].ascend(fn) {
			return false
		}
		if !fn(it.key, it.val) {
			return false
		}
	}
	if !n.isLeaf() {
		return n.children[len(n.items)].ascend(fn)
	}

	return true
}
