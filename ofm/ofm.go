// Package ofm implements the order-file-maintenance structure.
// See doc.go for the full contract.
package ofm

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrBadDensity indicates Options carrying an unusable density window.
var ErrBadDensity = errors.New("ofm: density bounds must satisfy 0 < min < max < 1")

// Options configures the density window of the structure.
//
// Fields:
//   - MinDensity — the target fill ratio at the root of the window scale.
//     Windows denser than this at depth d are accepted down to
//     MinDensity − d/4.
//   - MaxDensity — the target fill ratio ceiling, widened to
//     MaxDensity + d/4 with depth. A tighter window redistributes more
//     often but keeps scans denser.
type Options struct {
	MinDensity float64
	MaxDensity float64
}

// DefaultOptions returns the classic packed-memory-array window.
func DefaultOptions() Options {
	return Options{MinDensity: 0.5, MaxDensity: 0.75}
}

// Index is an opaque address of a stored element. It is only valid until
// the next mutation; elements implementing Relocatable observe each move.
type Index int

// Relocatable is implemented by stored types that need to track where a
// redistribution moved them.
type Relocatable interface {
	Relocate(Index)
}

// slot is one cell of the packed array.
type slot[T any] struct {
	val  T
	full bool
}

// Ofm is an order-file-maintenance array. Construct instances with New or
// NewWith; the zero value is not usable.
type Ofm[T any] struct {
	cells    []slot[T]
	occupied []int // per-leaf occupancy
	leafSize int
	size     int
	opts     Options
}

// New constructs an empty structure with DefaultOptions. A small amount of
// space is allocated up front, unlike an empty slice.
func New[T any]() *Ofm[T] {
	o, _ := NewWith[T](DefaultOptions())

	return o
}

// NewWith constructs an empty structure with the given density window.
// Returns ErrBadDensity when the window is not strictly inside (0, 1).
func NewWith[T any](opts Options) (*Ofm[T], error) {
	if !(0 < opts.MinDensity && opts.MinDensity < opts.MaxDensity && opts.MaxDensity < 1) {
		return nil, fmt.Errorf("%w: got [%v, %v]", ErrBadDensity, opts.MinDensity, opts.MaxDensity)
	}

	return &Ofm[T]{
		cells:    make([]slot[T], 2),
		occupied: make([]int, 2),
		leafSize: 1,
		opts:     opts,
	}, nil
}

// Len reports the number of stored elements.
func (o *Ofm[T]) Len() int { return o.size }

// PushFront inserts v before every existing element.
func (o *Ofm[T]) PushFront(v T) { o.insert(0, v) }

// PushBack inserts v after every existing element.
func (o *Ofm[T]) PushBack(v T) { o.insert(-1, v) }

// At returns the element stored at index i. The second result is false if
// i does not address an occupied cell.
func (o *Ofm[T]) At(i Index) (T, bool) {
	if int(i) < 0 || int(i) >= len(o.cells) || !o.cells[i].full {
		var zero T

		return zero, false
	}

	return o.cells[i].val, true
}

// ForEach visits the stored elements in order; it stops early if fn
// returns false. The structure must not be mutated during the walk.
func (o *Ofm[T]) ForEach(fn func(T) bool) {
	for i := range o.cells {
		if o.cells[i].full && !fn(o.cells[i].val) {
			return
		}
	}
}

// threshold reports whether a window at relative depth d with occupancy
// density rho is ripe for rebalancing.
func (o *Ofm[T]) threshold(d, rho float64) bool {
	return rho >= o.opts.MinDensity-d/4 && rho <= o.opts.MaxDensity+d/4
}

// target maps a cell rank to (leaf index, offset within leaf) against the
// current geometry. A negative or out-of-range rank addresses the back.
// Ranks go stale whenever grow or double reshapes the array, so the mapping
// is recomputed rather than carried across those calls.
func (o *Ofm[T]) target(i int) (int, int) {
	if i < 0 || i >= len(o.cells) {
		return len(o.occupied) - 1, o.leafSize - 1
	}

	return o.leafOf(i)
}

// insert places v at cell rank i (negative for the back), growing or
// rebalancing until the target leaf has a free cell.
func (o *Ofm[T]) insert(i int, v T) {
	o.size++

	leaf, offset := o.target(i)
	if o.occupied[leaf] == o.leafSize {
		o.grow(leaf)
		leaf, offset = o.target(i)
		if o.occupied[leaf] == o.leafSize {
			// The rebalance packed the span edge-tight and the leaf is full
			// again. Doubling redistributes at stride ≥ 2, leaving a free
			// cell in every leaf, so one escalation always yields room.
			o.double()
			leaf, offset = o.target(i)
		}
	}

	start, end := o.leafBoundary(leaf)
	vals := o.cellsTake(start, end)
	at := offset
	if at > len(vals) {
		at = len(vals)
	}
	vals = append(vals, v)
	copy(vals[at+1:], vals[at:])
	vals[at] = v

	o.redistribute(start, end, vals)
}

// grow makes room near a full leaf: ascend the conceptual tree to the
// nearest ancestor within the density threshold and rebalance the span one
// level above it, or double the whole structure when none qualifies. The
// caller re-checks the leaf afterward; a rebalance is not guaranteed to
// free it.
func (o *Ofm[T]) grow(l int) {
	if o.occupied[l] != o.leafSize {
		return
	}

	leaves := len(o.occupied)
	height := uint(bits.Len(uint(2*leaves)) - 1) // 2*leaves is a power of two

	t := tree{height: height}
	node := t.leaf(l)

	occ := o.occupied[l]
	room := o.leafSize
	for {
		sibStart, sibEnd := t.span(node.sibling())
		room *= 2
		for i := sibStart; i < sibEnd; i++ {
			occ += o.occupied[i]
		}
		node.toParent()

		if node.isRoot() {
			o.double()

			return
		}
		if o.threshold(float64(node.depth)/float64(height), float64(occ)/float64(room)) {
			// Rebalance one level above the window that passed the density
			// test: the wider span is what guarantees the full leaf actually
			// sheds occupants instead of being repacked edge-tight.
			node.toParent()
			start, end := t.span(node)
			o.rebalance(start*o.leafSize, end*o.leafSize)

			return
		}
	}
}

// double grows the structure: one extra cell per leaf, twice the leaves,
// and a full redistribution of the occupants.
func (o *Ofm[T]) double() {
	o.leafSize++
	numLeaves := len(o.occupied) * 2
	numCells := o.leafSize * numLeaves

	vals := make([]T, 0, o.size)
	for i := range o.cells {
		if o.cells[i].full {
			vals = append(vals, o.cells[i].val)
		}
	}

	o.occupied = make([]int, numLeaves)
	o.cells = make([]slot[T], numCells)
	o.redistribute(0, numCells, vals)
}

// leafOf maps a cell rank to (leaf index, offset within leaf).
func (o *Ofm[T]) leafOf(i int) (int, int) {
	divisor := o.leafSize
	if divisor < 1 {
		divisor = 1
	}

	return i / divisor, i % divisor
}

// leafBoundary returns the half-open cell range of leaf l.
func (o *Ofm[T]) leafBoundary(l int) (int, int) {
	return l * o.leafSize, (l + 1) * o.leafSize
}

// cellTake vacates cell i, returning its value if it was occupied.
func (o *Ofm[T]) cellTake(i int) (T, bool) {
	if !o.cells[i].full {
		var zero T

		return zero, false
	}
	v := o.cells[i].val
	o.cells[i] = slot[T]{}
	l, _ := o.leafOf(i)
	o.occupied[l]--

	return v, true
}

// cellPut stores v at cell i, notifying Relocatable values of their new
// address.
func (o *Ofm[T]) cellPut(i int, v T) {
	if r, ok := any(v).(Relocatable); ok {
		r.Relocate(Index(i))
	}
	o.cells[i] = slot[T]{val: v, full: true}
	l, _ := o.leafOf(i)
	o.occupied[l]++
}

// cellsTake vacates the half-open range [start, end), returning the
// occupants in order.
func (o *Ofm[T]) cellsTake(start, end int) []T {
	out := make([]T, 0, end-start)
	for i := start; i < end; i++ {
		if v, ok := o.cellTake(i); ok {
			out = append(out, v)
		}
	}

	return out
}

// rebalance redistributes the occupants of [start, end) at even stride.
func (o *Ofm[T]) rebalance(start, end int) {
	vs := o.cellsTake(start, end)
	o.redistribute(start, end, vs)
}

func (o *Ofm[T]) redistribute(start, end int, vs []T) {
	if len(vs) == 0 {
		return
	}
	stride := (end - start) / len(vs)
	i := start
	for _, v := range vs {
		o.cellPut(i, v)
		i += stride
	}
}
