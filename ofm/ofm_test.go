package ofm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strix/ofm"
)

// collect walks the structure front-to-back into a slice.
func collect[T any](o *ofm.Ofm[T]) []T {
	var out []T
	o.ForEach(func(v T) bool {
		out = append(out, v)

		return true
	})

	return out
}

func TestOfm_PushBackKeepsOrder(t *testing.T) {
	o := ofm.New[int]()
	o.PushBack(1)
	o.PushBack(2)
	o.PushBack(3)
	o.PushBack(4)

	assert.Equal(t, []int{1, 2, 3, 4}, collect(o))
	assert.Equal(t, 4, o.Len())
}

func TestOfm_PushFrontReversesOrder(t *testing.T) {
	o := ofm.New[int]()
	o.PushFront(1)
	o.PushFront(2)
	o.PushFront(3)
	o.PushFront(4)

	assert.Equal(t, []int{4, 3, 2, 1}, collect(o))
}

func TestOfm_MixedEndsKeepOrder(t *testing.T) {
	o := ofm.New[int]()
	// Alternate ends: back gets ascending positives, front descending
	// negatives. The packed order must read -4..-1 then 1..4.
	for i := 1; i <= 4; i++ {
		o.PushBack(i)
		o.PushFront(-i)
	}

	assert.Equal(t, []int{-4, -3, -2, -1, 1, 2, 3, 4}, collect(o))
}

// atom counts how many times the structure relocated it.
type atom struct {
	moves int
	at    ofm.Index
}

func (a *atom) Relocate(i ofm.Index) {
	a.moves++
	a.at = i
}

func TestOfm_RelocatableObservesEveryMove(t *testing.T) {
	o := ofm.New[*atom]()
	atoms := make([]*atom, 0, 4)
	for i := 0; i < 4; i++ {
		a := &atom{}
		atoms = append(atoms, a)
		o.PushBack(a)
	}

	for _, a := range atoms {
		assert.Greater(t, a.moves, 0)
	}
}

func TestOfm_RelocatableAddressStaysCurrent(t *testing.T) {
	o := ofm.New[*atom]()
	atoms := make([]*atom, 0, 64)
	for i := 0; i < 64; i++ {
		a := &atom{}
		atoms = append(atoms, a)
		o.PushBack(a)
	}

	// Every atom's last reported address must resolve back to itself.
	for _, a := range atoms {
		got, ok := o.At(a.at)
		require.True(t, ok)
		assert.Same(t, a, got)
	}
}

func TestOfm_At(t *testing.T) {
	o := ofm.New[int]()

	_, ok := o.At(0)
	assert.False(t, ok, "fresh structure has no occupied cells")
	_, ok = o.At(-1)
	assert.False(t, ok)
	_, ok = o.At(1 << 20)
	assert.False(t, ok)
}

func TestOfm_GrowthPreservesOrder(t *testing.T) {
	const n = 1000

	o := ofm.New[int]()
	for i := 0; i < n; i++ {
		o.PushBack(i)
	}

	require.Equal(t, n, o.Len())
	got := collect(o)
	require.Len(t, got, n)
	for i, v := range got {
		require.Equal(t, i, v)
	}
}

func TestOfm_FrontGrowthKeepsEveryElement(t *testing.T) {
	// Front inserts hit the same leaf every time, so every rebalance that
	// packs the span edge-tight leaves leaf zero full again; the structure
	// must keep making room without dropping or reordering occupants.
	const n = 1000

	o := ofm.New[int]()
	for i := 0; i < n; i++ {
		o.PushFront(i)
	}

	require.Equal(t, n, o.Len())
	got := collect(o)
	require.Len(t, got, n)
	for i, v := range got {
		require.Equal(t, n-1-i, v)
	}
}

func TestNewWith_RejectsBadWindow(t *testing.T) {
	for _, opts := range []ofm.Options{
		{MinDensity: 0, MaxDensity: 0.75},
		{MinDensity: 0.5, MaxDensity: 1},
		{MinDensity: 0.75, MaxDensity: 0.5},
		{MinDensity: -0.1, MaxDensity: 0.6},
	} {
		_, err := ofm.NewWith[int](opts)
		assert.ErrorIs(t, err, ofm.ErrBadDensity, "window [%v, %v]", opts.MinDensity, opts.MaxDensity)
	}
}

func TestNewWith_CustomWindowStillOrders(t *testing.T) {
	opts := ofm.DefaultOptions()
	opts.MinDensity = 0.3
	opts.MaxDensity = 0.9
	o, err := ofm.NewWith[int](opts)
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		o.PushBack(i)
	}
	got := collect(o)
	require.Len(t, got, 200)
	for i, v := range got {
		require.Equal(t, i, v)
	}
}

func TestOfm_ForEachEarlyStop(t *testing.T) {
	o := ofm.New[int]()
	for i := 0; i < 10; i++ {
		o.PushBack(i)
	}

	seen := 0
	o.ForEach(func(int) bool {
		seen++

		return seen < 3
	})

	assert.Equal(t, 3, seen)
}
