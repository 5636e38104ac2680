// SPDX-License-Identifier: MIT

package combinatorics

import (
	"fmt"
	"iter"
	"slices"

	"github.com/samber/lo/mutable"

	"github.com/katalvlaran/lvmath/intmath"
)

// Permutations describes all permutations of {0,…,size-1}. Like Combinations
// it holds no cursor; each traversal gets its own.
type Permutations struct {
	size  int
	count int
}

// NewPermutations returns the enumerator description for size! permutations.
//
// Errors:
//   - ErrInvalidArgument for size < 0.
//   - ErrOverflow if size! does not fit into int (size > 20 on 64-bit).
//
// Notes:
//   - size 0 yields exactly one, empty, permutation (0! = 1).
func NewPermutations(size int) (*Permutations, error) {
	if size < 0 {
		return nil, fmt.Errorf("NewPermutations(%d): negative size: %w", size, ErrInvalidArgument)
	}
	count, err := intmath.Factorial(size)
	if err != nil {
		return nil, fmt.Errorf("NewPermutations(%d): %w", size, err)
	}

	return &Permutations{size: size, count: count}, nil
}

// Size returns the permutation length.
func (p *Permutations) Size() int { return p.size }

// Count returns size!.
func (p *Permutations) Count() int { return p.count }

// Iterator returns a fresh state machine positioned before the identity.
func (p *Permutations) Iterator() *PermutationIterator {
	return &PermutationIterator{cur: Identity(p.size)}
}

// All returns the permutations in lexicographic order as a range-over-func
// sequence; each range statement runs on a new Iterator.
func (p *Permutations) All() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		it := p.Iterator()
		for perm, ok := it.Next(); ok; perm, ok = it.Next() {
			if !yield(perm) {
				return
			}
		}
	}
}

// PermutationIterator is the cursor of one traversal. Not safe for
// concurrent use.
type PermutationIterator struct {
	cur     []int
	started bool
	done    bool
}

// Next ADVANCES to the lexicographic successor and returns a copy of it,
// or (nil, false) once the last (descending) permutation has been produced.
// Implementation:
//   - Stage 1: find the longest non-increasing suffix; its left neighbour is
//     the pivot. No pivot means the sequence is exhausted.
//   - Stage 2: swap the pivot with the smallest suffix element greater than it
//     (the rightmost such, since the suffix is non-increasing).
//   - Stage 3: reverse the suffix so it becomes ascending.
//
// Complexity:
//   - Time O(n) per step worst case, amortized O(1); Space O(n) for the copy.
func (it *PermutationIterator) Next() ([]int, bool) {
	if it.done {
		return nil, false
	}
	if !it.started {
		it.started = true
		return slices.Clone(it.cur), true
	}

	a := it.cur
	i := len(a) - 2
	for i >= 0 && a[i] >= a[i+1] {
		i--
	}
	if i < 0 {
		it.done = true
		return nil, false
	}

	j := len(a) - 1
	for a[j] <= a[i] {
		j--
	}
	a[i], a[j] = a[j], a[i]
	mutable.Reverse(a[i+1:])

	return slices.Clone(a), true
}
