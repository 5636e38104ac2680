// SPDX-License-Identifier: MIT

package intmath

import (
	"fmt"
	"math"
)

// Factorial returns n! = 1·2·…·n (0! = 1).
//
// Implementation:
//   - Stage 1: reject n < 0.
//   - Stage 2: multiply 2..n, checking result > MaxInt/i BEFORE each multiply.
//
// Errors:
//   - ErrInvalidArgument for n < 0.
//   - ErrOverflow when n! > math.MaxInt (n > 20 on 64-bit platforms).
//
// Complexity:
//   - Time O(n), Space O(1).
func Factorial(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("Factorial(%d): negative argument: %w", n, ErrInvalidArgument)
	}

	result := 1
	for i := 2; i <= n; i++ {
		// Pre-multiply bound check: result*i must stay ≤ MaxInt.
		if result > math.MaxInt/i {
			return 0, fmt.Errorf("Factorial(%d): %w", n, ErrOverflow)
		}
		result *= i
	}

	return result, nil
}

// DoubleFactorial returns n!! = n·(n-2)·(n-4)·… down to 1 or 2 (0!! = 1).
// Same overflow policy as Factorial.
func DoubleFactorial(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("DoubleFactorial(%d): negative argument: %w", n, ErrInvalidArgument)
	}

	result := 1
	for i := n; i > 0; i -= 2 {
		if result > math.MaxInt/i {
			return 0, fmt.Errorf("DoubleFactorial(%d): %w", n, ErrOverflow)
		}
		result *= i
	}

	return result, nil
}

// GCD returns the greatest common divisor of two non-negative integers
// using the Euclidean algorithm. GCD(0, 0) is 0.
func GCD(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("GCD(%d,%d): negative argument: %w", a, b, ErrInvalidArgument)
	}

	return gcd(a, b), nil
}

// gcd is the unchecked Euclidean loop; callers guarantee a, b ≥ 0.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// LCM returns the least common multiple of two non-negative integers.
// LCM(0, x) is 0.
//
// The product a·b is bounded against MaxInt before it is formed, so LCM
// fails with ErrOverflow whenever a·b does not fit, even when a·b/gcd would.
func LCM(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("LCM(%d,%d): negative argument: %w", a, b, ErrInvalidArgument)
	}
	if a == 0 || b == 0 {
		return 0, nil
	}
	if a > math.MaxInt/b {
		return 0, fmt.Errorf("LCM(%d,%d): %w", a, b, ErrOverflow)
	}

	return a * b / gcd(a, b), nil
}

// Binomial returns C(n, k) = n! / (k!·(n-k)!).
//
// Implementation:
//   - Stage 1: reject n < 0, k < 0, k > n; use the symmetry C(n,k) = C(n,n-k).
//   - Stage 2: multiplicative form C(m,i) = C(m-1,i-1)·m/i. Each step reduces
//     the running value and i by their gcd first, so the step divides exactly
//     and the overflow check only fires when the true intermediate C(m,i)
//     does not fit.
//
// Errors:
//   - ErrInvalidArgument for parameters outside 0 ≤ k ≤ n.
//   - ErrOverflow when an intermediate binomial exceeds MaxInt.
//
// Complexity:
//   - Time O(min(k, n-k) · log n), Space O(1).
//
// AI-Hints:
//   - Prefer this over three Factorial calls: those overflow for n > 20 while
//     C(60,30) still fits in 64 bits.
func Binomial(n, k int) (int, error) {
	if n < 0 || k < 0 || k > n {
		return 0, fmt.Errorf("Binomial(%d,%d): %w", n, k, ErrInvalidArgument)
	}
	steps := k
	if steps > n-k {
		steps = n - k
	}

	result := 1
	for i := 1; i <= steps; i++ {
		m := n - steps + i // numerator factor of this step
		g := gcd(result, i)
		r, d := result/g, i/g // gcd(r, d) == 1, so d divides m
		q := m / d
		if r > math.MaxInt/q {
			return 0, fmt.Errorf("Binomial(%d,%d): %w", n, k, ErrOverflow)
		}
		result = r * q
	}

	return result, nil
}
