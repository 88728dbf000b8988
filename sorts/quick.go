package sorts

import "cmp"

// Quick sorts a in place using Hoare's partition scheme.
func Quick[T cmp.Ordered](a []T) {
	if len(a) < 2 {
		return
	}
	quickRange(a, 0, len(a)-1)
}

// quickRange sorts the inclusive range a[lo..hi].
func quickRange[T cmp.Ordered](a []T, lo, hi int) {
	if lo < hi {
		p := partition(a, lo, hi)
		quickRange(a, lo, p)
		quickRange(a, p+1, hi)
	}
}

// partition arranges a[lo..hi] around the pivot a[lo] and returns the
// split point j: everything in a[lo..j] is ≤ pivot, everything in
// a[j+1..hi] is ≥ pivot. The pivot itself may land on either side.
func partition[T cmp.Ordered](a []T, lo, hi int) int {
	pivot := a[lo]
	i, j := lo-1, hi+1
	for {
		i++
		for a[i] < pivot {
			i++
		}
		j--
		for a[j] > pivot {
			j--
		}

		if i >= j {
			return j
		}
		a[i], a[j] = a[j], a[i]
	}
}
