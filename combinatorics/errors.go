// SPDX-License-Identifier: MIT

package combinatorics

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmath/intmath"
)

var (
	// ErrInvalidArgument reports enumerator parameters outside their domain
	// (negative n, k > n, ...) and operands of unequal length.
	ErrInvalidArgument = errors.New("combinatorics: invalid argument")

	// ErrInvalidPermutation reports a slice that is not a permutation of
	// 0..n-1 (out-of-range or duplicate element). It wraps ErrInvalidArgument.
	ErrInvalidPermutation = fmt.Errorf("%w: not a permutation", ErrInvalidArgument)

	// ErrOverflow is intmath.ErrOverflow, re-exported so callers of this
	// package need a single import.
	ErrOverflow = intmath.ErrOverflow
)
