// SPDX-License-Identifier: MIT

package combinatorics

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/samber/lo"

	"github.com/katalvlaran/lvmath/intmath"
)

// Identity returns the identity permutation [0 1 … n-1].
// A non-positive n yields an empty permutation.
func Identity(n int) []int {
	if n <= 0 {
		return []int{}
	}

	return lo.Range(n)
}

// ValidatePermutation checks that p holds each of 0..len(p)-1 exactly once.
// The empty slice is the (only) permutation of size 0.
//
// Errors:
//   - ErrInvalidPermutation naming the first offending position.
//
// Complexity:
//   - Time O(n), Space O(n).
func ValidatePermutation(p []int) error {
	n := len(p)
	seen := make([]bool, n)
	for i, v := range p {
		if v < 0 || v >= n {
			return fmt.Errorf("ValidatePermutation: p[%d]=%d outside [0,%d): %w", i, v, n, ErrInvalidPermutation)
		}
		if seen[v] {
			return fmt.Errorf("ValidatePermutation: p[%d]=%d repeated: %w", i, v, ErrInvalidPermutation)
		}
		seen[v] = true
	}

	return nil
}

// Inversions COUNTS pairs (i, j) with i < j and p[i] > p[j].
// Implementation:
//   - Stage 1: validate p.
//   - Stage 2: merge-sort a private copy; whenever an element of the right
//     half is placed before the remaining left-half elements, each of those
//     remaining elements forms one inversion with it.
//
// Behavior highlights:
//   - Input is never modified.
//   - Same result as the naive O(n²) pair count.
//
// Errors:
//   - ErrInvalidPermutation if p is not a permutation.
//
// Complexity:
//   - Time O(n log n), Space O(n).
func Inversions(p []int) (int, error) {
	if err := ValidatePermutation(p); err != nil {
		return 0, fmt.Errorf("Inversions: %w", err)
	}

	work := slices.Clone(p)
	scratch := make([]int, len(p))

	return countInversions(work, scratch), nil
}

// countInversions sorts a in place using tmp (same length) as merge buffer
// and returns the number of inversions a held.
func countInversions(a, tmp []int) int {
	n := len(a)
	if n < 2 {
		return 0
	}

	mid := n / 2
	inv := countInversions(a[:mid], tmp[:mid]) + countInversions(a[mid:], tmp[mid:])

	i, j, k := 0, mid, 0
	for i < mid && j < n {
		if a[i] <= a[j] {
			tmp[k] = a[i]
			i++
		} else {
			tmp[k] = a[j]
			j++
			inv += mid - i
		}
		k++
	}
	k += copy(tmp[k:], a[i:mid])
	copy(tmp[k:], a[j:])
	copy(a, tmp[:n])

	return inv
}

// Parity returns +1 for an even permutation and -1 for an odd one.
// The identity (of any size, including 0) is even.
func Parity(p []int) (int, error) {
	inv, err := Inversions(p)
	if err != nil {
		return 0, fmt.Errorf("Parity: %w", err)
	}
	if inv%2 == 0 {
		return 1, nil
	}

	return -1, nil
}

// Rank RETURNS the lexicographic index of p among all permutations of its
// size, i.e. its Lehmer code read as a factorial-base number.
// Implementation:
//   - Stage 1: validate p.
//   - Stage 2: keep the ascending list of unused values; for position i let
//     ind be the position of p[i] in that list, add ind·(n-i-1)! and drop
//     p[i] from the list.
//
// Behavior highlights:
//   - Rank(Identity(n)) == 0 for every n, even when n! itself overflows.
//   - Bijective onto 0..n!-1; Unrank is the inverse.
//
// Errors:
//   - ErrInvalidPermutation if p is not a permutation.
//   - ErrOverflow if the rank (or one of its terms) exceeds math.MaxInt.
//
// Complexity:
//   - Time O(n²) (list removal), Space O(n).
//
// Notes:
//   - A zero digit contributes nothing, so its factorial is never computed;
//     this keeps long identity prefixes from overflowing spuriously.
func Rank(p []int) (int, error) {
	if err := ValidatePermutation(p); err != nil {
		return 0, fmt.Errorf("Rank: %w", err)
	}

	n := len(p)
	unused := lo.Range(n)
	rank := 0
	for i, v := range p {
		ind := lo.IndexOf(unused, v)
		unused = slices.Delete(unused, ind, ind+1)
		if ind == 0 {
			continue
		}

		f, err := intmath.Factorial(n - i - 1)
		if err != nil {
			return 0, fmt.Errorf("Rank: %w", err)
		}
		if ind > math.MaxInt/f {
			return 0, fmt.Errorf("Rank: term %d·%d!: %w", ind, n-i-1, ErrOverflow)
		}
		term := ind * f
		if rank > math.MaxInt-term {
			return 0, fmt.Errorf("Rank: accumulated index: %w", ErrOverflow)
		}
		rank += term
	}

	return rank, nil
}

// Unrank returns the permutation of size n whose Rank is rank.
//
// Errors:
//   - ErrInvalidArgument for n < 0, rank < 0, or rank ≥ n! (when n! fits).
func Unrank(n, rank int) ([]int, error) {
	if n < 0 || rank < 0 {
		return nil, fmt.Errorf("Unrank(%d,%d): %w", n, rank, ErrInvalidArgument)
	}

	total, err := intmath.Factorial(n)
	switch {
	case errors.Is(err, intmath.ErrOverflow):
		// n! > MaxInt ≥ rank: every int rank is in range.
	case err != nil:
		return nil, fmt.Errorf("Unrank(%d,%d): %w", n, rank, err)
	case rank >= total:
		return nil, fmt.Errorf("Unrank(%d,%d): rank outside [0,%d): %w", n, rank, total, ErrInvalidArgument)
	}

	unused := lo.Range(n)
	p := make([]int, n)
	for i := range p {
		ind := 0
		// An overflowing (n-i-1)! exceeds rank, so the digit is 0.
		if f, ferr := intmath.Factorial(n - i - 1); ferr == nil {
			ind, rank = rank/f, rank%f
		}
		p[i] = unused[ind]
		unused = slices.Delete(unused, ind, ind+1)
	}

	return p, nil
}

// Inverse returns q with q[p[i]] = i for every i.
func Inverse(p []int) ([]int, error) {
	if err := ValidatePermutation(p); err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}

	q := make([]int, len(p))
	for i, v := range p {
		q[v] = i
	}

	return q, nil
}

// Compose returns r with r[i] = p[q[i]] (apply q first, then p).
//
// Errors:
//   - ErrInvalidPermutation if either operand is not a permutation.
//   - ErrInvalidArgument if the sizes differ.
func Compose(p, q []int) ([]int, error) {
	if err := ValidatePermutation(p); err != nil {
		return nil, fmt.Errorf("Compose: left: %w", err)
	}
	if err := ValidatePermutation(q); err != nil {
		return nil, fmt.Errorf("Compose: right: %w", err)
	}
	if len(p) != len(q) {
		return nil, fmt.Errorf("Compose: sizes %d and %d: %w", len(p), len(q), ErrInvalidArgument)
	}

	r := make([]int, len(q))
	for i, v := range q {
		r[i] = p[v]
	}

	return r, nil
}
