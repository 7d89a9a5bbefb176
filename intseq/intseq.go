package intseq

import "errors"

// ErrNegativeInput indicates that a sequence function received a negative
// argument for which the sequence is undefined.
// Callers MUST match it via errors.Is.
var ErrNegativeInput = errors.New("intseq: negative input")

// FactorialCap is the largest n for which n! fits into a uint64.
// Factorial clamps every larger input to this value; 21! already
// overflows 64 bits.
const FactorialCap = 20

// Fibonacci returns the n-th Fibonacci term (F(0)=0, F(1)=1).
// Stage 1 (Trivial): n ≤ 1 is its own answer.
// Stage 2 (Iterate): two running accumulators, n-1 additions.
//
// The result is an int64; terms beyond F(92) exceed the representable
// range and silently wrap. This is a deliberate limitation of the
// fixed-width contract — callers needing larger terms must use
// arbitrary-precision arithmetic, which is out of scope here.
//
// Complexity: O(n) time, O(1) memory.
func Fibonacci(n int) int64 {
	// Trivial terms: F(0)=0, F(1)=1 (and any negative n maps to itself,
	// matching the n ≤ 1 contract).
	if n <= 1 {
		return int64(n)
	}

	// Two-accumulator iteration: a=F(i-2), b=F(i-1).
	var a, b int64 = 0, 1
	for i := 2; i <= n; i++ {
		a, b = b, a+b
	}

	return b
}

// Factorial returns n! as a uint64.
// Stage 1 (Validate): negative n returns (0, ErrNegativeInput).
// Stage 2 (Trivial): n ≤ 1 returns 1.
// Stage 3 (Iterate): multiply 2..min(n, FactorialCap) into the accumulator.
//
// Inputs above FactorialCap return exactly FactorialCap! with a nil
// error: the cap is an intentional overflow guard, not an error
// condition, so Factorial(25) == Factorial(20). Callers that must
// distinguish capped results can compare n against FactorialCap.
//
// Complexity: O(min(n, FactorialCap)) time, O(1) memory.
func Factorial(n int) (uint64, error) {
	// Negative inputs are undefined for the factorial function.
	if n < 0 {
		return 0, ErrNegativeInput
	}
	// 0! = 1! = 1.
	if n <= 1 {
		return 1, nil
	}

	// Accumulate 2..min(n, FactorialCap).
	var result uint64 = 1
	for i := 2; i <= n && i <= FactorialCap; i++ {
		result *= uint64(i)
	}

	return result, nil
}

// IsPrime reports whether n is prime.
// Stage 1 (Trivial): n < 2 is not prime; 2 is prime; even n > 2 is not.
// Stage 2 (Trial-divide): odd candidates 3, 5, ... up to floor(sqrt(n)).
//
// Complexity: O(sqrt(n)) time, O(1) memory.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}

	// Odd trial division; i*i <= n bounds the scan at floor(sqrt(n)).
	for i := uint64(3); i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}

	return true
}
