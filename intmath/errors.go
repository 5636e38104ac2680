// SPDX-License-Identifier: MIT

package intmath

import "errors"

// Every message is prefixed with "intmath:"; call sites wrap with
// fmt.Errorf("Func(args): %w", ErrX) so callers match via errors.Is.
var (
	// ErrInvalidArgument is returned for arguments outside a function's domain
	// (negative factorial argument, empty prime range, k > n, ...).
	ErrInvalidArgument = errors.New("intmath: invalid argument")

	// ErrOverflow is returned when the exact result does not fit into int.
	// It is detected before the overflowing multiplication is performed.
	ErrOverflow = errors.New("intmath: integer overflow")
)
