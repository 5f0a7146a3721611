// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points over the kernels.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders of the underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a rows×cols matrix of zero values.
//
// Errors: ErrInvalidDimensions.
func NewZeros[T Numeric](rows, cols int) (*Dense[T], error) {
	if err := validateShape[T](rows, cols); err != nil {
		return nil, matrixErrorf("NewZeros", err)
	}

	return newDense[T](rows, cols), nil
}

// NewIdentity returns I_n (n×n; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
//
// Errors: ErrInvalidDimensions when n <= 0.
func NewIdentity[T Numeric](n int) (*Dense[T], error) {
	if err := validateShape[T](n, n); err != nil {
		return nil, matrixErrorf("NewIdentity", err)
	}
	id := newDense[T](n, n)
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1
	}

	return id, nil
}

// ZerosLike returns a zero matrix with the same shape as m.
//
// Errors: ErrNilMatrix.
func ZerosLike[T Numeric](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return newDense[T](m.r, m.c), nil
}

// IdentityLike returns I with dimension Rows(m); requires a square m.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func IdentityLike[T Numeric](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity[T](m.r)
}

// ---------- Arithmetic (facades map 1:1 to kernels) ----------

// Sum is an alias for Add: element-wise a + b.
func Sum[T Numeric](a, b *Dense[T]) (*Dense[T], error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff[T Numeric](a, b *Dense[T]) (*Dense[T], error) { return Sub(a, b) }

// Product is an alias for Mul: naive a×b.
func Product[T Numeric](a, b *Dense[T]) (*Dense[T], error) { return Mul(a, b) }

// T is a short alias for Transpose.
func T[E Numeric](m *Dense[E]) (*Dense[E], error) { return Transpose(m) }

// ScaleBy is an alias for Scale.
func ScaleBy[T Numeric](m *Dense[T], alpha T) (*Dense[T], error) { return Scale(m, alpha) }
