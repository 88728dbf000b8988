package strictheap_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/strix/strictheap"
)

// buildHeap inserts a deterministic pseudo-random permutation of n keys.
func buildHeap(n int, seed int64) *strictheap.Heap[int, int] {
	r := rand.New(rand.NewSource(seed))
	h := strictheap.New[int, int]()
	for _, k := range r.Perm(n) {
		h.Insert(k, k)
	}

	return h
}

// BenchmarkInsert measures the O(1) insert path in isolation.
func BenchmarkInsert(b *testing.B) {
	h := strictheap.New[int, int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Insert(i, i)
	}
}

// BenchmarkInsertDeleteMin measures the steady-state push/pop cycle on a
// pre-filled heap.
func BenchmarkInsertDeleteMin(b *testing.B) {
	h := buildHeap(1024, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Insert(2048+i, i)
		_, _, _ = h.DeleteMin()
	}
}

// BenchmarkMeld measures melding pairs of mid-sized heaps; rebuilding the
// operands dominates, so the pairs are prepared outside the timed region.
func BenchmarkMeld(b *testing.B) {
	const pairSize = 512
	heaps := make([]*strictheap.Heap[int, int], 0, 2*b.N)
	for i := 0; i < b.N; i++ {
		heaps = append(heaps, buildHeap(pairSize, int64(i)), buildHeap(pairSize, int64(i+1)))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		heaps[2*i].Meld(heaps[2*i+1])
	}
}

// BenchmarkDecreaseKey measures repeated decreases across a static heap.
func BenchmarkDecreaseKey(b *testing.B) {
	const n = 4096
	h := strictheap.New[int, int]()
	handles := make([]*strictheap.Handle[int, int], n)
	for i := 0; i < n; i++ {
		// Spread keys out so every decrease keeps them unique.
		handles[i] = h.Insert(i*(1<<20), i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		hd := handles[i%n]
		_ = h.DecreaseKey(hd, hd.Key()-1)
	}
}
