// Package matrix: fresh-result kernels over Dense operands.
// All kernels perform strict fail-fast validation via the central
// validators and return sentinels wrapped with an operation tag.
// Operands are never mutated; every success allocates exactly one new
// Dense.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opDet       = "Det"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w so errors.Is/As keep matching. Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense.
// Implementation:
//   - Stage 1: validate both operands non-nil and identically shaped.
//   - Stage 2: single flat loop 0..n-1 over the backing slices.
//
// Errors:
//   - ErrNilMatrix (nil operand), ErrDimensionMismatch (shape mismatch).
//
// Determinism: flat 0..(r*c−1) walk; inputs remain immutable.
// Complexity: O(r*c) time, O(r*c) space for the result.
func Add(a, b *Dense) (*Dense, error) {
	// Validate operands and shapes.
	if err := validateBinary(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	if err := validateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	// Allocate result and fill with the element-wise sum.
	res := &Dense{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	for idx := range a.data {
		res.data[idx] = a.data[idx] + b.data[idx]
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: validate A, B non-nil and inner dimensions (A.Cols == B.Rows).
//     On mismatch no allocation happens.
//   - Stage 2: triple loop i→j→k; each C[i,j] is the dot product of row i
//     of A and column j of B over the row-major backing slices:
//     sum += a[i*a.c+k] * b[k*b.c+j].
//
// Errors:
//   - ErrNilMatrix (nil operand), ErrDimensionMismatch (inner mismatch).
//
// Determinism: fixed i→j→k order; one allocation for C.
// Complexity: O(A.Rows * B.Cols * A.Cols) time, O(A.Rows * B.Cols) space.
//
// AI-Hints:
//   - Zero-dimension operands are legal and produce an empty result
//     without touching the loops.
func Mul(a, b *Dense) (*Dense, error) {
	// Validate operands and inner dimensions before any allocation.
	if err := validateBinary(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := validateInner(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate the a.r × b.c result.
	res := &Dense{r: a.r, c: b.c, data: make([]float64, a.r*b.c)}

	// Row-major triple-nested accumulation.
	var i, j, k int
	var sum float64
	for i = 0; i < a.r; i++ {
		for j = 0; j < b.c; j++ {
			sum = 0.0
			for k = 0; k < a.c; k++ {
				sum += a.data[i*a.c+k] * b.data[k*b.c+j]
			}
			res.data[i*b.c+j] = sum
		}
	}

	return res, nil
}

// Transpose returns a fresh Dense T with T[j,i] = M[i,j].
// Implementation:
//   - Stage 1: validate m non-nil.
//   - Stage 2: fixed i→j copy into the c×r result.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c) time and space.
func Transpose(m *Dense) (*Dense, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	res := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			res.data[j*res.c+i] = m.data[i*m.c+j]
		}
	}

	return res, nil
}

// Scale returns a fresh Dense with every element of m multiplied by k.
// Implementation:
//   - Stage 1: validate m non-nil.
//   - Stage 2: single flat loop over the backing slice.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c) time and space.
func Scale(m *Dense, k float64) (*Dense, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for idx := range m.data {
		res.data[idx] = k * m.data[idx]
	}

	return res, nil
}

// Det computes the determinant of a square Dense.
// Implementation:
//   - Stage 1: validate m non-nil and square.
//   - Stage 2: 1×1 returns the sole element; 2×2 returns
//     a00*a11 − a01*a10.
//   - Stage 3: any larger square returns ErrUnsupportedSize.
//
// The 2×2 ceiling is an intentional limitation of this engine, kept as
// a typed error rather than generalized — cofactor expansion and LU
// factorization are out of scope alongside inversion and solving.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrNonSquare (rectangular input),
//     ErrUnsupportedSize (square input larger than 2×2).
//
// Complexity: O(1).
func Det(m *Dense) (float64, error) {
	// Validate input shape first.
	if err := validateNotNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	if err := validateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	// Closed forms for the supported sizes.
	switch m.r {
	case 1:
		return m.data[0], nil
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2], nil
	}

	// 0×0 and anything above 2×2 have no closed form here.
	return 0, matrixErrorf(opDet, ErrUnsupportedSize)
}
