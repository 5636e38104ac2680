// SPDX-License-Identifier: MIT

package intmath

import (
	"fmt"
	"math"
)

// Sieve returns flags of length end where flags[i] reports whether i is prime,
// computed with the sieve of Eratosthenes over [0, end).
// A non-positive end yields an empty slice.
//
// Complexity: Time O(end · log log end), Space O(end).
func Sieve(end int) []bool {
	if end <= 0 {
		return []bool{}
	}

	flags := make([]bool, end)
	for i := 2; i < end; i++ {
		flags[i] = true
	}
	for i := 2; i*i < end; i++ {
		if !flags[i] {
			continue
		}
		// Multiples below i*i were already struck by smaller primes.
		for j := i * i; j < end; j += i {
			flags[j] = false
		}
	}

	return flags
}

// IsPrime reports whether n is prime by trial division up to √n.
// Values below 2 (including all negatives) are not prime.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := 3; d <= n/d; d += 2 {
		if n%d == 0 {
			return false
		}
	}

	return true
}

// trialSieveLimit bounds the sieve PrimeDivisors builds; larger candidate
// divisors are tried as odd numbers without a table.
const trialSieveLimit = 1 << 16

// isqrt returns ⌊√n⌋ for n ≥ 0 without overflowing near math.MaxInt.
func isqrt(n int) int {
	r := int(math.Sqrt(float64(n)))
	for r > 0 && r > n/r {
		r--
	}
	for r+1 <= n/(r+1) {
		r++
	}

	return r
}

// PrimesInRange returns the primes p with start ≤ p < end in ascending order.
// A negative start is clamped to 0.
//
// Implementation:
//   - Stage 1: strike multiples of the sieved primes below min(√end, 2^16)
//     inside [start, end) only.
//   - Stage 2: strike multiples of odd d up to √end beyond the sieve; striking
//     a composite d's multiples is redundant but harmless.
//
// Errors:
//   - ErrInvalidArgument when end ≤ start (empty or inverted range).
//
// Complexity:
//   - Time O((end-start) · log log end + √end), Space O(end-start) plus the
//     fixed 2^16 sieve.
func PrimesInRange(start, end int) ([]int, error) {
	if end <= start {
		return nil, fmt.Errorf("PrimesInRange(%d,%d): empty range: %w", start, end, ErrInvalidArgument)
	}

	primes := make([]int, 0)
	low := max(start, 2)
	if low >= end {
		return primes, nil
	}

	root := isqrt(end - 1)
	base := Sieve(min(root, trialSieveLimit) + 1)
	composite := make([]bool, end-low)
	strike := func(p int) {
		first := p * p
		if first < low {
			first = low / p * p
			if first < low {
				if first > end-1-p {
					return
				}
				first += p
			}
		}
		for m := first; m < end; m += p {
			composite[m-low] = true
			if m > end-1-p {
				return // the next step would pass end or overflow
			}
		}
	}

	d := 2
	for ; d < len(base); d++ {
		if base[d] {
			strike(d)
		}
	}
	if d%2 == 0 {
		d++
	}
	for ; d <= root; d += 2 {
		strike(d)
	}

	for k, c := range composite {
		if !c {
			primes = append(primes, low+k)
		}
	}

	return primes, nil
}

// PrimeDivisors decomposes n into its prime factors, ascending, with
// multiplicity: PrimeDivisors(360) = [2 2 2 3 3 5]. PrimeDivisors(1) is empty.
//
// Implementation:
//   - Stage 1: divide by the sieved primes below min(√n, 2^16).
//   - Stage 2: continue with odd trial divisors while d² ≤ the remaining n.
//     Composite d never divide, their prime factors are already gone.
//   - Stage 3: a remainder > 1 has no divisor ≤ √n and is itself prime.
//
// Errors:
//   - ErrInvalidArgument for n ≤ 0.
//
// Complexity:
//   - Time O(√p₂) where p₂ is the second largest prime factor, Space O(1)
//     beyond the fixed 2^16 sieve and the result.
func PrimeDivisors(n int) ([]int, error) {
	if n <= 0 {
		return nil, fmt.Errorf("PrimeDivisors(%d): non-positive argument: %w", n, ErrInvalidArgument)
	}

	flags := Sieve(min(isqrt(n), trialSieveLimit) + 1)
	divisors := make([]int, 0)
	p := 2
	for ; p < len(flags) && p <= n/p; p++ {
		if !flags[p] {
			continue
		}
		for n%p == 0 {
			n /= p
			divisors = append(divisors, p)
		}
	}
	if p%2 == 0 {
		p++
	}
	for ; p <= n/p; p += 2 {
		for n%p == 0 {
			n /= p
			divisors = append(divisors, p)
		}
	}
	if n > 1 {
		divisors = append(divisors, n)
	}

	return divisors, nil
}
