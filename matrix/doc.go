// Package matrix implements a dense, row-major float64 matrix engine.
//
// The matrix package provides:
//
//   - Dense — a flat-slice, row-major matrix with O(1) element access
//     and cache-friendly iteration.
//   - Fresh-result kernels (Mul, Add, Transpose, Scale) that never
//     mutate their operands.
//   - Det for 1×1 and 2×2 matrices. Larger determinants are an
//     intentionally unsupported operation (ErrUnsupportedSize); so are
//     inversion, decomposition and solving.
//
// Ownership is plain Go value ownership: a Dense owns its backing slice
// for its lifetime and the garbage collector reclaims it. There is no
// release call to forget or to call twice.
//
// All failure modes are distinct package sentinels (see errors.go),
// matched via errors.Is. No operation panics on user input, logs, or
// retries — every failure is local and terminal for that call.
//
// Matrices are best for small, dense data; there is no sparsity
// exploitation and no parallel execution.
//
// See the examples in this package for usage patterns.
package matrix
