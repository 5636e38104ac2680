// SPDX-License-Identifier: MIT

// Package combinatorics provides permutation arithmetic and lazy enumerators.
//
// Permutations are plain []int values holding each of 0..n-1 exactly once.
// The package offers:
//
//   - ValidatePermutation, a presence-marking check run by every function
//     that takes a permutation;
//   - Inversions and Parity, computed with a merge sort in O(n log n);
//   - Rank and Unrank, the Lehmer-code bijection between permutations of
//     size n and 0..n!-1 in lexicographic order;
//   - Inverse and Compose;
//   - Combinations and Permutations, finite restartable enumerators in
//     lexicographic order, usable both as explicit state machines
//     (Iterator().Next()) and as Go range-over-func sequences (All()).
//
// Integer overflow is detected before it happens and reported as ErrOverflow,
// which is the same sentinel as intmath.ErrOverflow.
//
// Enumerators yield a fresh slice on every step; callers may keep or modify
// it. An iterator must not be shared between goroutines.
package combinatorics
