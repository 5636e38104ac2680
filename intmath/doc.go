// SPDX-License-Identifier: MIT

// Package intmath provides the small integer helpers the combinatorics
// package is built on: factorials, binomial coefficients, gcd/lcm and an
// Eratosthenes sieve with prime listing and prime factorization.
//
// Every function works on the platform int and detects overflow before it
// happens (the bound is checked before each multiplication), so a result is
// either exact or the call fails with ErrOverflow. No function wraps around.
//
// With a 64-bit int the largest factorial that fits is 20!; 21! overflows.
package intmath
