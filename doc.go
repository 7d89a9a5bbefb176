// Package numcore is a small toolbox of numeric primitives — integer
// sequences, a dense matrix engine and 3D vector algebra, with a handful
// of string helpers on the side.
//
// 🚀 What is numcore?
//
//	A compact, deterministic library that brings together:
//		• Integer sequences: Fibonacci, capped Factorial, trial-division primality
//		• Dense matrices: row-major float64 storage, multiply, small determinants
//		• Vector algebra: pure value-semantics Vec3 (add, cross, dot, normalize)
//		• Text helpers: casing, rune-safe reversal, word counting
//
// ✨ Why choose numcore?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable – no goroutines, no global state, no hidden allocation
//   - Pure Go – no cgo, no hidden deps
//   - Honest errors – package sentinels matched with errors.Is, never panics
//
// Under the hood, everything is organized under four subpackages:
//
//	intseq/  — Fibonacci, Factorial (hard-capped at 20!) and IsPrime
//	matrix/  — row-major Dense matrix with Mul, Add, Transpose, Scale, Det
//	vector/  — fixed 3-component Vec3 value algebra
//	textops/ — ToUpper, ToLower, Reverse, WordCount
//
// Every operation is synchronous and pure: matrix kernels allocate a
// fresh result and never mutate their operands, Vec3 is copied by value,
// and nothing in the module logs, retries or spawns concurrent work.
//
//	go get github.com/katalvlaran/numcore
package numcore
