package sorts

import (
	"cmp"
	"math/rand"
	"slices"
)

const (
	memoryFit = 4096 // elements sorted directly, without partitioning
	blockSize = 64   // transfer block of the cost model
	numPivots = 8    // √(memoryFit/blockSize)
)

// Distribution sorts a copy of the input with an external distribution
// sort and returns it; the input slice is left untouched.
func Distribution[T cmp.Ordered](a []T) []T {
	if len(a) <= memoryFit {
		out := make([]T, len(a))
		copy(out, a)
		slices.Sort(out)

		return out
	}

	pivots := sample(a, numPivots)
	slices.Sort(pivots)

	// Scatter each element into the partition counted by the pivots
	// strictly below it, then recurse per partition in order.
	parts := make([][]T, len(pivots)+1)
	for _, v := range a {
		p := 0
		for _, piv := range pivots {
			if piv < v {
				p++
			}
		}
		parts[p] = append(parts[p], v)
	}

	out := make([]T, 0, len(a))
	for _, part := range parts {
		if len(part) == len(a) {
			// All sampled pivots were equal and sorted below every element,
			// which happens on duplicate-heavy input; recursing would never
			// shrink the partition, so sort it directly.
			slices.Sort(part)
			out = append(out, part...)

			continue
		}
		out = append(out, Distribution(part)...)
	}

	return out
}

// sample draws k elements of a uniformly, with replacement.
func sample[T any](a []T, k int) []T {
	out := make([]T, k)
	for i := range out {
		out[i] = a[rand.Intn(len(a))]
	}

	return out
}
