// Package cyclist_test provides runnable examples for the ring primitive.
package cyclist_test

import (
	"fmt"

	"github.com/katalvlaran/strix/cyclist"
)

// ExampleNode_Excise demonstrates building a small ring, removing a middle
// node in O(1), and reusing the removed node elsewhere.
func ExampleNode_Excise() {
	// 1) Build the ring [a b c] by splicing at the back.
	a := cyclist.New("a")
	b := cyclist.New("b")
	cyclist.SpliceBefore(a, b)
	cyclist.SpliceBefore(a, cyclist.New("c"))

	// 2) Remove b; the circle re-closes around it.
	b.Excise()

	// 3) Walk the surviving ring.
	a.Do(func(n *cyclist.Node[string]) bool {
		fmt.Println(n.Value)

		return true
	})
	// Output:
	// a
	// c
}

// ExampleConcatAfter merges two rings with four pointer writes, independent
// of either ring's length.
func ExampleConcatAfter() {
	left := cyclist.New(1)
	cyclist.SpliceBefore(left, cyclist.New(2))

	right := cyclist.New(3)
	cyclist.SpliceBefore(right, cyclist.New(4))

	cyclist.ConcatAfter(left, right)

	left.Do(func(n *cyclist.Node[int]) bool {
		fmt.Print(n.Value, " ")

		return true
	})
	// Output: 1 3 4 2
}
