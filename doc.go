// Package strix is a collection of worst-case-efficient in-memory data
// structures — priority queues, order maintenance and recency-adaptive
// dictionaries that trade amortized bounds for guarantees on every single
// operation.
//
// 🚀 What is strix?
//
//	A pure-Go library of structures built around strict (non-amortized)
//	time bounds:
//		• strictheap  — strict Fibonacci heap: O(1) Insert, Meld and
//		  DecreaseKey, O(log n) DeleteMin, all worst case
//		• cyclist     — the O(1) circular doubly-linked ring the heap is
//		  built on, exported for direct use
//		• ofm         — order-file maintenance: a packed array keeping
//		  elements in order with localized, density-driven rebalancing
//		• workingset  — Iacono's working-set dictionary: O(log t) access
//		  to anything touched t operations ago, worst case
//		• btree       — a compact fixed-order B-tree map
//		• sorts       — Hoare quicksort and an external distribution sort
//
// ✨ Why choose strix?
//
//   - Worst-case bounds – no operation hides behind an amortized average
//   - Handle-based APIs – DecreaseKey and friends without lookups
//   - Pure Go – generics, no cgo, a minimal dependency footprint
//   - Debug assertions – deep structural checks compile in only under
//     the assert build tag, costing nothing in release builds
//
// Quick example:
//
//	h := strictheap.New[int, string]()
//	handle := h.Insert(7, "seven")
//	h.Insert(3, "three")
//	_ = h.DecreaseKey(handle, 1)
//	k, _ := h.MinKey() // 1
//	_ = k
//
// Each subpackage carries its own doc.go with the full contract,
// complexity table and error semantics. Start with strictheap; the rest
// of the library is useful on its own.
package strix
