// SPDX-License-Identifier: MIT

package intmath_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"modernc.org/mathutil"

	"github.com/katalvlaran/lvmath/intmath"
)

func TestSieve_MatchesReference(t *testing.T) {
	t.Parallel()

	const end = 2000
	flags := intmath.Sieve(end)
	require.Len(t, flags, end)
	for i := 0; i < end; i++ {
		require.Equal(t, mathutil.IsPrime(uint32(i)), flags[i], "i=%d", i)
	}

	assert.Empty(t, intmath.Sieve(0))
	assert.Empty(t, intmath.Sieve(-5))
}

func TestIsPrime(t *testing.T) {
	t.Parallel()

	for n := -10; n < 5000; n++ {
		want := n >= 0 && mathutil.IsPrime(uint32(n))
		require.Equal(t, want, intmath.IsPrime(n), "n=%d", n)
	}
	assert.True(t, intmath.IsPrime(2147483647))
	assert.False(t, intmath.IsPrime(2147483645))
}

func TestPrimesInRange(t *testing.T) {
	t.Parallel()

	got, err := intmath.PrimesInRange(10, 30)
	require.NoError(t, err)
	assert.Equal(t, []int{11, 13, 17, 19, 23, 29}, got)

	got, err = intmath.PrimesInRange(-7, 12)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 5, 7, 11}, got)

	got, err = intmath.PrimesInRange(24, 29)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = intmath.PrimesInRange(5, 5)
	require.ErrorIs(t, err, intmath.ErrInvalidArgument)
	_, err = intmath.PrimesInRange(9, 2)
	require.ErrorIs(t, err, intmath.ErrInvalidArgument)
}

func TestPrimeDivisors_MatchesReference(t *testing.T) {
	t.Parallel()

	for n := 2; n < 3000; n++ {
		got, err := intmath.PrimeDivisors(n)
		require.NoError(t, err)

		want := make([]int, 0)
		for _, term := range mathutil.FactorInt(uint32(n)) {
			for p := uint32(0); p < term.Power; p++ {
				want = append(want, int(term.Prime))
			}
		}
		require.Equal(t, want, got, "n=%d", n)
	}
}

func TestPrimeDivisors_Edges(t *testing.T) {
	t.Parallel()

	got, err := intmath.PrimeDivisors(1)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = intmath.PrimeDivisors(360)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 2, 3, 3, 5}, got)

	// Large prime remainder above the sieve bound.
	got, err = intmath.PrimeDivisors(2 * 1000003)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1000003}, got)

	_, err = intmath.PrimeDivisors(0)
	require.ErrorIs(t, err, intmath.ErrInvalidArgument)
	_, err = intmath.PrimeDivisors(-12)
	require.ErrorIs(t, err, intmath.ErrInvalidArgument)
}

func TestPrimeDivisors_LargeComposites(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("needs a 64-bit int")
	}
	t.Parallel()

	pow2 := 1
	pow2 <<= 56
	got, err := intmath.PrimeDivisors(pow2)
	require.NoError(t, err)
	require.Len(t, got, 56)
	for _, p := range got {
		require.Equal(t, 2, p)
	}

	n := 59049 // 3^10 · 1000003 · 2^20
	n *= 1000003
	n <<= 20
	got, err = intmath.PrimeDivisors(n)
	require.NoError(t, err)
	want := make([]int, 0, 31)
	for i := 0; i < 20; i++ {
		want = append(want, 2)
	}
	for i := 0; i < 10; i++ {
		want = append(want, 3)
	}
	assert.Equal(t, append(want, 1000003), got)

	prod := 1
	for _, p := range got {
		prod *= p
	}
	assert.Equal(t, n, prod)

	// Both factors lie beyond the sieved table.
	a, b := 65537, 65539
	got, err = intmath.PrimeDivisors(a * b)
	require.NoError(t, err)
	assert.Equal(t, []int{65537, 65539}, got)
}

func TestPrimesInRange_FarFromZero(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("needs a 64-bit int")
	}
	t.Parallel()

	// √(2^40) lies far above the sieved table, so odd divisors do most of
	// the striking here.
	base := 1
	base <<= 40
	got, err := intmath.PrimesInRange(base, base+200)
	require.NoError(t, err)

	want := make([]int, 0)
	for _, off := range []int{15, 27, 55, 97, 115, 141, 157, 177} {
		want = append(want, base+off)
	}
	assert.Equal(t, want, got)
	for _, p := range got {
		assert.True(t, intmath.IsPrime(p), "%d", p)
	}
}

var sinkInts []int

func BenchmarkPrimeDivisors(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkInts, _ = intmath.PrimeDivisors(735134400)
	}
}

func BenchmarkSieve(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = intmath.Sieve(1 << 16)
	}
}
