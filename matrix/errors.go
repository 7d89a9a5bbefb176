// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user-triggered
// error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to
// allow easy grepping across logs. Sentinels are returned wrapped with
// an operation tag via matrixErrorf ("Mul: matrix: ...") so call sites
// keep context while errors.Is still matches.

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (negative rows or cols). Zero dimensions are legal.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside
	// valid bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Add with different shapes, or Mul where
	// a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the
	// input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrUnsupportedSize marks an intentionally unsupported operation
	// size: Det beyond 2×2. A typed error, not a silent NaN.
	ErrUnsupportedSize = errors.New("matrix: unsupported size")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument)
	// was passed where a matrix is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
