// Package cyclist provides a circularly doubly-linked list of shared nodes
// with strict O(1) splice, concatenate, and excise operations.
//
// Overview:
//
//   - A cyclist ring has no separate container object: any *Node[T] is a
//     handle to the whole ring it belongs to. A detached node is a ring of
//     one (its own predecessor and successor are itself).
//   - All structural operations re-link a constant number of pointers and
//     never traverse either operand, which is what makes the package usable
//     as the sibling-order, fix-list, and work-queue substrate of the
//     strictheap engine.
//   - Equality of nodes is structural identity (pointer equality), never
//     value equality: two nodes may carry equal values yet be distinct ring
//     members. Use Same to compare.
//
// Operations and complexity (all O(1) unless noted):
//
//	New(v)                    – construct a detached singleton ring.
//	n.Prev() / n.Next()       – neighbor access.
//	n.IsSingleton()           – true iff n is alone in its ring.
//	SpliceBefore/SpliceAfter  – insert a detached singleton next to an anchor.
//	ConcatBefore/ConcatAfter  – merge two rings by re-linking four edges.
//	n.Excise()                – remove n from its ring; n re-closes as a
//	                            singleton, ready to be spliced elsewhere.
//	Same(a, b)                – pointer identity.
//	n.Do(fn)                  – visit every node once, O(ring length).
//	n.Len()                   – ring length, O(ring length); intended for
//	                            tests and diagnostics only.
//
// Preconditions:
//
//   - SpliceBefore and SpliceAfter require the inserted node to be a
//     detached singleton; splicing a node that is still linked into another
//     ring would silently corrupt both rings. The precondition is documented
//     rather than checked in production builds.
//   - ConcatBefore and ConcatAfter require the two rings to be distinct;
//     concatenating a ring with itself is undefined.
//
// Memory model:
//
//	Nodes are ordinary garbage-collected pointers. Rings are reference
//	cycles by construction, which is harmless under Go's tracing collector;
//	Excise resets the removed node's links so it retains no path back into
//	the ring it left.
//
// Thread safety:
//
//	None. Callers mutating a ring from multiple goroutines must synchronize
//	externally.
package cyclist
