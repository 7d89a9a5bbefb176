package intseq_test

import (
	"testing"

	"github.com/katalvlaran/numcore/intseq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFibonacci_BaseTerms verifies the seed terms F(0)=0 and F(1)=1.
func TestFibonacci_BaseTerms(t *testing.T) {
	assert.Equal(t, int64(0), intseq.Fibonacci(0), "F(0) must be 0")
	assert.Equal(t, int64(1), intseq.Fibonacci(1), "F(1) must be 1")
}

// TestFibonacci_KnownTerms checks a spread of well-known Fibonacci values.
func TestFibonacci_KnownTerms(t *testing.T) {
	for _, tc := range []struct {
		n    int
		want int64
	}{
		{2, 1},
		{3, 2},
		{7, 13},
		{10, 55},
		{20, 6765},
		{50, 12586269025},
		{92, 7540113804746346429}, // largest term representable in int64
	} {
		assert.Equalf(t, tc.want, intseq.Fibonacci(tc.n), "F(%d)", tc.n)
	}
}

// TestFibonacci_NegativeInput confirms the n ≤ 1 contract maps negative n
// to itself rather than panicking or looping.
func TestFibonacci_NegativeInput(t *testing.T) {
	assert.Equal(t, int64(-3), intseq.Fibonacci(-3), "negative n must be returned as-is")
}

// TestFactorial_NegativeInput ensures negative inputs return ErrNegativeInput
// and a zero value.
func TestFactorial_NegativeInput(t *testing.T) {
	v, err := intseq.Factorial(-1)
	assert.ErrorIs(t, err, intseq.ErrNegativeInput, "negative input must error")
	assert.Equal(t, uint64(0), v, "errored Factorial must return 0")
}

// TestFactorial_SmallValues verifies the trivial and small factorials.
func TestFactorial_SmallValues(t *testing.T) {
	for _, tc := range []struct {
		n    int
		want uint64
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{5, 120},
		{10, 3628800},
	} {
		v, err := intseq.Factorial(tc.n)
		require.NoErrorf(t, err, "Factorial(%d)", tc.n)
		assert.Equalf(t, tc.want, v, "Factorial(%d)", tc.n)
	}
}

// TestFactorial_CapPolicy pins the hard cap: Factorial(20) is the exact
// 20! value and every larger input returns the same capped result.
func TestFactorial_CapPolicy(t *testing.T) {
	const fact20 = uint64(2432902008176640000)

	capped, err := intseq.Factorial(intseq.FactorialCap)
	require.NoError(t, err, "Factorial(FactorialCap) must not error")
	assert.Equal(t, fact20, capped, "20! reference value")

	// Every n above the cap clamps to 20!.
	for _, n := range []int{21, 25, 100, 1 << 20} {
		v, errN := intseq.Factorial(n)
		require.NoErrorf(t, errN, "Factorial(%d)", n)
		assert.Equalf(t, fact20, v, "Factorial(%d) must equal Factorial(20)", n)
	}
}

// TestIsPrime_SmallAndComposite walks the edge cases below 2, the sole even
// prime, and a mix of primes and composites.
func TestIsPrime_SmallAndComposite(t *testing.T) {
	assert.False(t, intseq.IsPrime(0), "0 is not prime")
	assert.False(t, intseq.IsPrime(1), "1 is not prime")
	assert.True(t, intseq.IsPrime(2), "2 is prime")
	assert.False(t, intseq.IsPrime(4), "even > 2 is not prime")

	for _, p := range []uint64{3, 5, 7, 11, 13, 17, 97, 7919} {
		assert.Truef(t, intseq.IsPrime(p), "%d is prime", p)
	}
	for _, c := range []uint64{9, 15, 18, 21, 49, 91, 7917} {
		assert.Falsef(t, intseq.IsPrime(c), "%d is composite", c)
	}
}

// TestIsPrime_PerfectSquares exercises the sqrt boundary of the trial
// division: p*p must be rejected because p itself divides it.
func TestIsPrime_PerfectSquares(t *testing.T) {
	for _, p := range []uint64{3, 5, 7, 11, 101} {
		assert.Falsef(t, intseq.IsPrime(p*p), "%d*%d must be composite", p, p)
	}
}
