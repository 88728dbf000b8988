package workingset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_Basic(t *testing.T) {
	s := New[string, int]()
	s.Insert("a", 3)
	s.Insert("b", 2)
	s.Insert("c", 1)

	require.Equal(t, 3, s.Len())

	v, ok := s.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	v, ok = s.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	v, ok = s.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = s.Get("d")
	assert.False(t, ok)
}

func TestSet_GrowthProfile(t *testing.T) {
	s := New[int, struct{}]()
	for i := 0; i < 512; i++ {
		s.Insert(i, struct{}{})
	}

	assert.Equal(t, []int{2, 2, 4, 8, 16, 32, 64, 128, 256}, s.bucketSizes())
	assert.Equal(t, 512, s.Len())
}

func TestSet_InsertExistingIsNoop(t *testing.T) {
	s := New[string, int]()
	s.Insert("k", 1)
	s.Insert("k", 99)

	assert.Equal(t, 1, s.Len())
	v, _ := s.Get("k")
	assert.Equal(t, 1, v, "original value kept")
}

func TestSet_Remove(t *testing.T) {
	s := New[string, int]()
	s.Insert("a", 1)
	s.Insert("b", 2)

	v, ok := s.Remove("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, s.Len())

	_, ok = s.Get("a")
	assert.False(t, ok)

	_, ok = s.Remove("a")
	assert.False(t, ok, "double remove reports absence")

	v, ok = s.Get("b")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestSet_GetPromotesToFrontBucket(t *testing.T) {
	s := New[int, int]()
	for i := 0; i < 64; i++ {
		s.Insert(i, i*10)
	}

	// Key 0 was inserted first, so it has drifted into a rear bucket.
	rear := s.findBucket(0)
	require.Greater(t, rear, 0)

	v, ok := s.Get(0)
	require.True(t, ok)
	assert.Equal(t, 0, v)
	assert.Equal(t, 0, s.findBucket(0))
}

func TestSet_AllKeysSurviveChurn(t *testing.T) {
	const n = 300

	s := New[int, int]()
	for i := 0; i < n; i++ {
		s.Insert(i, i)
	}
	// Re-access every third key to shuffle the buckets around.
	for i := 0; i < n; i += 3 {
		_, ok := s.Get(i)
		require.True(t, ok)
	}

	require.Equal(t, n, s.Len())
	for i := 0; i < n; i++ {
		v, ok := s.Get(i)
		require.True(t, ok, "key %d lost", i)
		require.Equal(t, i, v)
	}
}
