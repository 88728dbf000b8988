// Package cyclist_test validates the ring algebra: singleton construction,
// splicing, concatenation, excision, and identity semantics.
package cyclist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strix/cyclist"
)

// collect walks the ring starting at n and returns the values in successor
// order. Used to assert ring contents positionally.
func collect(n *cyclist.Node[int]) []int {
	var out []int
	n.Do(func(m *cyclist.Node[int]) bool {
		out = append(out, m.Value)

		return true
	})

	return out
}

func TestNew_Singleton(t *testing.T) {
	n := cyclist.New(42)

	// A fresh node is its own predecessor and successor.
	assert.True(t, n.IsSingleton())
	assert.True(t, cyclist.Same(n, n.Next()))
	assert.True(t, cyclist.Same(n, n.Prev()))
	assert.Equal(t, 1, n.Len())
	assert.Equal(t, []int{42}, collect(n))
}

func TestSpliceAfter_Order(t *testing.T) {
	a := cyclist.New(1)
	cyclist.SpliceAfter(a, cyclist.New(2))
	cyclist.SpliceAfter(a, cyclist.New(3)) // lands between 1 and 2

	assert.Equal(t, []int{1, 3, 2}, collect(a))
	assert.False(t, a.IsSingleton())
}

func TestSpliceBefore_Order(t *testing.T) {
	a := cyclist.New(1)
	cyclist.SpliceBefore(a, cyclist.New(2)) // circular: before a == at the back
	cyclist.SpliceBefore(a, cyclist.New(3))

	assert.Equal(t, []int{1, 2, 3}, collect(a))
}

func TestConcatAfter_MergesWholeRing(t *testing.T) {
	a := cyclist.New(1)
	cyclist.SpliceBefore(a, cyclist.New(2))

	b := cyclist.New(10)
	cyclist.SpliceBefore(b, cyclist.New(20))
	cyclist.SpliceBefore(b, cyclist.New(30))

	cyclist.ConcatAfter(a, b)

	// b's ring [10 20 30] lands directly after a.
	require.Equal(t, []int{1, 10, 20, 30, 2}, collect(a))
	assert.Equal(t, 5, a.Len())
}

func TestConcatBefore_MergesWholeRing(t *testing.T) {
	a := cyclist.New(1)
	cyclist.SpliceBefore(a, cyclist.New(2))

	b := cyclist.New(10)
	cyclist.SpliceBefore(b, cyclist.New(20))

	cyclist.ConcatBefore(a, b)

	// b's ring [10 20] ends directly before a.
	require.Equal(t, []int{1, 2, 10, 20}, collect(a))
}

func TestExcise_ReclosesRing(t *testing.T) {
	a := cyclist.New(1)
	b := cyclist.New(2)
	c := cyclist.New(3)
	cyclist.SpliceBefore(a, b)
	cyclist.SpliceBefore(a, c)
	require.Equal(t, []int{1, 2, 3}, collect(a))

	b.Excise()

	// The remaining circle closes over the gap.
	assert.Equal(t, []int{1, 3}, collect(a))

	// The excised node is a reusable singleton again.
	assert.True(t, b.IsSingleton())
	cyclist.SpliceAfter(c, b)
	assert.Equal(t, []int{1, 3, 2}, collect(a))
}

func TestExcise_SingletonIsNoop(t *testing.T) {
	n := cyclist.New(7)
	n.Excise()

	assert.True(t, n.IsSingleton())
	assert.Equal(t, []int{7}, collect(n))
}

func TestSame_IdentityNotValue(t *testing.T) {
	a := cyclist.New(5)
	b := cyclist.New(5)

	// Equal payloads, distinct nodes.
	assert.False(t, cyclist.Same(a, b))
	assert.True(t, cyclist.Same(a, a))
}

func TestDo_EarlyStop(t *testing.T) {
	a := cyclist.New(1)
	cyclist.SpliceBefore(a, cyclist.New(2))
	cyclist.SpliceBefore(a, cyclist.New(3))

	var seen []int
	a.Do(func(m *cyclist.Node[int]) bool {
		seen = append(seen, m.Value)

		return len(seen) < 2
	})

	assert.Equal(t, []int{1, 2}, seen)
}
