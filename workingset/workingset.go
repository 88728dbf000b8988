// Package workingset implements Iacono's working-set dictionary.
// See doc.go for the full contract.
package workingset

import "github.com/katalvlaran/strix/cyclist"

// entry is one stored pair together with its position in the bucket's
// arrival ring.
type entry[K comparable, V any] struct {
	val  V
	cell *cyclist.Node[K]
}

// bucket pairs a dictionary with a FIFO ring over the same keys. The ring
// front is the oldest entry; nil means the bucket is empty.
type bucket[K comparable, V any] struct {
	items map[K]*entry[K, V]
	front *cyclist.Node[K]
}

func newBucket[K comparable, V any]() *bucket[K, V] {
	return &bucket[K, V]{items: make(map[K]*entry[K, V])}
}

// push appends the pair as the bucket's newest entry.
func (b *bucket[K, V]) push(key K, val V) {
	cell := cyclist.New(key)
	if b.front == nil {
		b.front = cell
	} else {
		cyclist.SpliceBefore(b.front, cell)
	}
	b.items[key] = &entry[K, V]{val: val, cell: cell}
}

// pop removes and returns the oldest entry. The bucket must be non-empty.
func (b *bucket[K, V]) pop() (K, V) {
	key := b.front.Value
	val := b.remove(key)

	return key, val
}

// remove extracts the entry for key, wherever it sits in arrival order.
// The key must be present.
func (b *bucket[K, V]) remove(key K) V {
	e := b.items[key]
	delete(b.items, key)

	if cyclist.Same(e.cell, b.front) {
		if e.cell.IsSingleton() {
			b.front = nil
		} else {
			b.front = e.cell.Next()
		}
	}
	e.cell.Excise()

	return e.val
}

// Set is a working-set dictionary. Construct instances with New; the zero
// value is not usable.
type Set[K comparable, V any] struct {
	buckets []*bucket[K, V]
	size    int
}

// New constructs an empty working-set dictionary.
func New[K comparable, V any]() *Set[K, V] {
	return &Set[K, V]{}
}

// Len reports the number of stored pairs.
func (s *Set[K, V]) Len() int { return s.size }

// findBucket returns the index of the bucket holding key, or -1.
func (s *Set[K, V]) findBucket(key K) int {
	for i, b := range s.buckets {
		if _, ok := b.items[key]; ok {
			return i
		}
	}

	return -1
}

// bucketPush appends to bucket i, materializing it if it is the next one.
func (s *Set[K, V]) bucketPush(i int, key K, val V) {
	if i == len(s.buckets) {
		s.buckets = append(s.buckets, newBucket[K, V]())
	}
	s.buckets[i].push(key, val)
}

// shiftSingle demotes bucket i's oldest entry into bucket i+1.
func (s *Set[K, V]) shiftSingle(i int) {
	key, val := s.buckets[i].pop()
	s.bucketPush(i+1, key, val)
}

// shiftMulti ripples overflow rightward through buckets [0, max), stopping
// at the first bucket within its 2^i capacity.
func (s *Set[K, V]) shiftMulti(max int) {
	for i := 0; i < max; i++ {
		if len(s.buckets[i].items) <= 1<<i {
			break
		}
		s.shiftSingle(i)
	}
}

// Insert stores the pair as the most recently accessed entry. Inserting a
// key that is already present is a no-op; the stored value is kept.
func (s *Set[K, V]) Insert(key K, val V) {
	if s.findBucket(key) >= 0 {
		return
	}

	s.shiftMulti(len(s.buckets))
	s.bucketPush(0, key, val)
	s.size++
}

// Get returns the value stored under key and marks it most recently
// accessed, moving it to the front bucket.
func (s *Set[K, V]) Get(key K) (V, bool) {
	i := s.findBucket(key)
	if i < 0 {
		var zero V

		return zero, false
	}

	s.shiftMulti(i)
	val := s.buckets[i].remove(key)
	s.buckets[0].push(key, val)

	return val, true
}

// Remove deletes key, returning the stored value if it was present.
func (s *Set[K, V]) Remove(key K) (V, bool) {
	i := s.findBucket(key)
	if i < 0 {
		var zero V

		return zero, false
	}

	val := s.buckets[i].remove(key)
	s.size--

	return val, true
}

// bucketSizes reports the per-bucket entry counts, for tests.
func (s *Set[K, V]) bucketSizes() []int {
	out := make([]int, len(s.buckets))
	for i, b := range s.buckets {
		out[i] = len(b.items)
	}

	return out
}
