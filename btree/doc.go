// Package btree implements an in-memory B-tree keyed by any ordered type.
//
// The branching factor is fixed at 7: a node holds at most 6 items and 7
// children in steady state. Inserts descend to a leaf, place the item in
// sorted position, and split any node that reaches 7 items around its
// middle item, promoting it into the parent; a splitting root grows the
// tree by one level. Keys are unique: inserting an existing key replaces
// the stored value.
//
// # Complexity
//
//	Insert  O(log n)
//	Get     O(log n)
//	Ascend  O(n)
//	Len     O(1)
//
// # Concurrency
//
// A Tree is not safe for concurrent use.
package btree
