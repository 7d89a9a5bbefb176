// Package intseq provides bounded integer-sequence operations.
//
// The intseq package provides:
//
//   - Fibonacci — iterative n-th Fibonacci term over int64.
//   - Factorial — uint64 factorial with a hard cap at 20! to stay inside
//     the representable range.
//   - IsPrime — deterministic trial-division primality test.
//
// All functions are pure computations over scalar inputs: no state, no
// allocation, no concurrency. Fixed-width integer limits are part of the
// contract (no arbitrary-precision fallback) and are documented on each
// function.
//
// See the examples in this package for usage patterns.
package intseq
