// Package strictheap_test provides runnable examples: basic priority-queue
// usage, O(1) melding, and a decrease-key-driven shortest-path computation.
package strictheap_test

import (
	"fmt"

	"github.com/katalvlaran/strix/strictheap"
)

// ExampleHeap demonstrates insertion and an ordered drain.
func ExampleHeap() {
	h := strictheap.New[int, string]()
	h.Insert(3, "three")
	h.Insert(1, "one")
	h.Insert(2, "two")

	for h.Size() > 0 {
		k, v, _ := h.DeleteMin()
		fmt.Println(k, v)
	}
	// Output:
	// 1 one
	// 2 two
	// 3 three
}

// ExampleHeap_Meld merges two heaps in O(1); the argument is consumed and
// left empty.
func ExampleHeap_Meld() {
	a := strictheap.New[int, string]()
	a.Insert(4, "four")
	a.Insert(1, "one")

	b := strictheap.New[int, string]()
	b.Insert(2, "two")

	a.Meld(b)

	k, _ := a.MinKey()
	fmt.Println("min:", k, "size:", a.Size(), "other size:", b.Size())
	// Output: min: 1 size: 3 other size: 0
}

// ExampleHeap_shortestPaths runs Dijkstra's algorithm over a small directed
// graph using handles and DecreaseKey instead of the usual
// push-duplicates-and-skip-stale strategy — the workload this heap's O(1)
// DecreaseKey is built for.
func ExampleHeap_shortestPaths() {
	type edge struct {
		to string
		w  int
	}
	adj := map[string][]edge{
		"A": {{"B", 1}, {"C", 5}},
		"B": {{"C", 2}},
	}

	// Keys must be unique, so pack (distance, vertex index) into one int.
	const inf = 1 << 20
	idx := map[string]int{"A": 0, "B": 1, "C": 2}
	pack := func(d, i int) int { return d<<4 | i }

	dist := map[string]int{"A": 0, "B": inf, "C": inf}
	h := strictheap.New[int, string]()
	handles := make(map[string]*strictheap.Handle[int, string])
	for _, v := range []string{"A", "B", "C"} {
		handles[v] = h.Insert(pack(dist[v], idx[v]), v)
	}

	for h.Size() > 0 {
		k, u, _ := h.DeleteMin()
		d := k >> 4
		for _, e := range adj[u] {
			if nd := d + e.w; nd < dist[e.to] {
				dist[e.to] = nd
				if err := h.DecreaseKey(handles[e.to], pack(nd, idx[e.to])); err != nil {
					fmt.Println("error:", err)

					return
				}
			}
		}
	}

	fmt.Printf("A=%d B=%d C=%d\n", dist["A"], dist["B"], dist["C"])
	// Output: A=0 B=1 C=3
}
