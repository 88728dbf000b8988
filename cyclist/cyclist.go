// Package cyclist implements the circular doubly-linked list primitive.
// See doc.go for the full contract.
package cyclist

// Node is a single member of a circular doubly-linked ring.
// The zero value is not usable; construct nodes with New.
type Node[T any] struct {
	// Value is the payload carried by this ring member.
	Value T

	prev, next *Node[T]
}

// New returns a detached singleton ring carrying v:
// the node's predecessor and successor are the node itself.
func New[T any](v T) *Node[T] {
	n := &Node[T]{Value: v}
	n.prev = n
	n.next = n

	return n
}

// Prev returns the node immediately before n in ring order.
func (n *Node[T]) Prev() *Node[T] { return n.prev }

// Next returns the node immediately after n in ring order.
func (n *Node[T]) Next() *Node[T] { return n.next }

// IsSingleton reports whether n is the only member of its ring.
func (n *Node[T]) IsSingleton() bool { return n.next == n }

// Same reports structural identity of two nodes. It exists to make call
// sites explicit about comparing ring membership rather than values.
func Same[T any](a, b *Node[T]) bool { return a == b }

// putBehind links n to come directly after prev. It writes exactly the two
// half-edges between the pair and is the shared kernel of every structural
// operation below.
func (n *Node[T]) putBehind(prev *Node[T]) {
	prev.next = n
	n.prev = prev
}

// SpliceBefore inserts the detached singleton single immediately before
// anchor in ring order.
//
// Precondition: single.IsSingleton().
func SpliceBefore[T any](anchor, single *Node[T]) {
	prev := anchor.prev
	single.putBehind(prev)
	anchor.putBehind(single)
}

// SpliceAfter inserts the detached singleton single immediately after
// anchor in ring order.
//
// Precondition: single.IsSingleton().
func SpliceAfter[T any](anchor, single *Node[T]) {
	next := anchor.next
	single.putBehind(anchor)
	next.putBehind(single)
}

// ConcatAfter merges the entire ring containing first into the ring
// containing anchor, so that first comes directly after anchor and the
// remainder of first's ring follows in order. Neither ring is traversed.
//
// Precondition: the two rings are distinct.
func ConcatAfter[T any](anchor, first *Node[T]) {
	next := anchor.next
	last := first.prev

	first.putBehind(anchor)
	next.putBehind(last)
}

// ConcatBefore merges the entire ring containing first into the ring
// containing anchor, so that first's ring ends directly before anchor.
//
// Precondition: the two rings are distinct.
func ConcatBefore[T any](anchor, first *Node[T]) {
	prev := anchor.prev
	last := first.prev

	first.putBehind(prev)
	anchor.putBehind(last)
}

// Excise removes n from its ring, re-closing the remaining circle.
// n itself is reset to a detached singleton so it can be spliced into
// another ring immediately. Excising a singleton is a no-op.
func (n *Node[T]) Excise() {
	if n.IsSingleton() {
		return
	}
	n.next.putBehind(n.prev)
	n.prev = n
	n.next = n
}

// Do calls fn for every node of the ring exactly once, starting at n and
// following successor links. Iteration stops early if fn returns false.
// fn must not mutate the ring structure during the walk.
func (n *Node[T]) Do(fn func(*Node[T]) bool) {
	cur := n
	for {
		if !fn(cur) {
			return
		}
		cur = cur.next
		if cur == n {
			return
		}
	}
}

// Len reports the number of nodes in n's ring by walking it once.
// Intended for tests and diagnostics; structural code should track counts
// externally to preserve O(1) bounds.
func (n *Node[T]) Len() int {
	count := 0
	n.Do(func(*Node[T]) bool {
		count++

		return true
	})

	return count
}
