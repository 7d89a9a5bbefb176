// Package matrix: canonical validation checks shared by all kernels.
// Validators return plain sentinels (no wrapping) so call sites can wrap
// uniformly with matrixErrorf. All checks are pure, deterministic and
// allocate nothing.

package matrix

// validateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func validateNotNil(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// validateBinary ensures both operands of a binary kernel are non-nil.
// Complexity: O(1).
func validateBinary(a, b *Dense) error {
	if err := validateNotNil(a); err != nil {
		return err
	}

	return validateNotNil(b)
}

// validateSameShape ensures a and b have equal dimensions.
// Assumes both are non-nil (validateBinary runs first).
// Returns ErrDimensionMismatch on any difference. Complexity: O(1).
func validateSameShape(a, b *Dense) error {
	if a.r != b.r || a.c != b.c {
		return ErrDimensionMismatch
	}

	return nil
}

// validateInner ensures the inner dimensions of a×b agree
// (a.Cols == b.Rows). Assumes both are non-nil.
// Returns ErrDimensionMismatch otherwise. Complexity: O(1).
func validateInner(a, b *Dense) error {
	if a.c != b.r {
		return ErrDimensionMismatch
	}

	return nil
}

// validateSquare ensures m is square (Rows == Cols).
// Assumes m is non-nil. Returns ErrNonSquare otherwise. Complexity: O(1).
func validateSquare(m *Dense) error {
	if m.r != m.c {
		return ErrNonSquare
	}

	return nil
}
