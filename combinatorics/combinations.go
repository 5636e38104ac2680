// SPDX-License-Identifier: MIT

package combinatorics

import (
	"fmt"
	"iter"
	"slices"

	"github.com/samber/lo"

	"github.com/katalvlaran/lvmath/intmath"
)

// Combinations describes the k-subsets of {0,…,n-1}. It is an immutable
// description; every traversal starts from its own fresh state, so a single
// Combinations value may be ranged over any number of times.
type Combinations struct {
	n, k  int
	count int
}

// NewCombinations VALIDATES the parameters and returns the enumerator
// description for C(n, k) subsets.
// Implementation:
//   - Stage 1: require 0 ≤ k ≤ n.
//   - Stage 2: count C(n,k) with intmath.Binomial (no factorial overflow).
//
// Errors:
//   - ErrInvalidArgument for n < 0, k < 0 or k > n.
//   - ErrOverflow if C(n,k) does not fit into int.
//
// Notes:
//   - k == 0 yields exactly one, empty, combination.
func NewCombinations(n, k int) (*Combinations, error) {
	if n < 0 || k < 0 || k > n {
		return nil, fmt.Errorf("NewCombinations(%d,%d): need 0 ≤ k ≤ n: %w", n, k, ErrInvalidArgument)
	}
	count, err := intmath.Binomial(n, k)
	if err != nil {
		return nil, fmt.Errorf("NewCombinations(%d,%d): %w", n, k, err)
	}

	return &Combinations{n: n, k: k, count: count}, nil
}

// N returns the size of the ground set.
func (c *Combinations) N() int { return c.n }

// K returns the subset size.
func (c *Combinations) K() int { return c.k }

// Count returns C(n, k), the number of subsets a full traversal yields.
func (c *Combinations) Count() int { return c.count }

// Iterator returns a fresh state machine positioned before the first subset.
func (c *Combinations) Iterator() *CombinationIterator {
	return &CombinationIterator{n: c.n, cur: lo.Range(c.k)}
}

// All returns the subsets in lexicographic order as a range-over-func
// sequence. Each range statement runs on a new Iterator.
func (c *Combinations) All() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		it := c.Iterator()
		for comb, ok := it.Next(); ok; comb, ok = it.Next() {
			if !yield(comb) {
				return
			}
		}
	}
}

// CombinationIterator is the cursor of one traversal: the current subset plus
// started/exhausted flags. Not safe for concurrent use.
type CombinationIterator struct {
	n       int
	cur     []int
	started bool
	done    bool
}

// Next returns a copy of the next subset, or (nil, false) once exhausted.
//
// Successor rule: find the rightmost position i whose element is at least two
// below its right neighbour (an implicit sentinel n follows the last slot),
// increment it and reset every element to its right to consecutive values.
func (it *CombinationIterator) Next() ([]int, bool) {
	if it.done {
		return nil, false
	}
	if !it.started {
		it.started = true
		return slices.Clone(it.cur), true
	}

	k := len(it.cur)
	for i := k - 1; i >= 0; i-- {
		next := it.n
		if i+1 < k {
			next = it.cur[i+1]
		}
		if next-it.cur[i] < 2 {
			continue
		}

		it.cur[i]++
		for j := i + 1; j < k; j++ {
			it.cur[j] = it.cur[j-1] + 1
		}

		return slices.Clone(it.cur), true
	}

	it.done = true

	return nil, false
}
