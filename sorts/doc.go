// Package sorts provides the sorting routines used across strix, exposed
// for direct use.
//
// What is included:
//
//   - Quick — in-place quicksort with Hoare's partition scheme. The
//     classic two-index formulation: pointers converge from both ends and
//     the recursion splits at the right pointer, so the pivot's final
//     position need not be fixed.
//
//   - Distribution — an external distribution sort (sample sort). Inputs
//     that fit the in-memory cutoff are sorted directly; larger inputs are
//     split around randomly sampled pivots and each partition is sorted
//     recursively. The cache-oblivious shape keeps every pass sequential,
//     which is what makes it suitable for data far larger than memory.
//
// # Complexity
//
//	Quick         O(n log n) expected, O(n²) worst case, O(log n) stack.
//	Distribution  O(n log n) expected; pivots are sampled uniformly, so
//	              heavily duplicated keys degrade the partition balance.
//
// # Determinism
//
// Quick is fully deterministic. Distribution samples pivots from the
// package-level math/rand source; seed it for reproducible partition
// shapes (the output order is of course always sorted).
package sorts
