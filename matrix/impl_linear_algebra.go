// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels over Dense: element-wise
// addition and subtraction, naive matrix multiplication, transpose, and
// scalar scaling. All functions perform strict fail-fast validation and
// return clear errors on dimension mismatches.
//
// Purpose:
//   - Canonical kernels (signatures and bodies) used by the facades in api.go.
//   - Operation tags shared for error reporting.
//
// Notes:
//   - Every kernel validates via validators.go before touching data.
//   - Every kernel allocates a fresh result; operands are never mutated.
//   - Loop orders are fixed and documented; results are bit-for-bit
//     reproducible for finite-precision and non-associative scalar types.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes element-wise out = a + b, or out = a - b when sub is true.
// Internal helper for Add/Sub to share validation and allocation.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: single flat loop 0..n-1 over both row-major buffers.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
//
// Notes:
//   - The sub branch is taken once, outside the hot loop.
//   - Overflow behavior is that of T (wrapping for integers).
func addSub[T Numeric](a, b *Dense[T], sub bool, opTag string) (*Dense[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newDense[T](a.r, a.c)
	if sub {
		for k := range res.data {
			res.data[k] = a.data[k] - b.data[k]
		}
	} else {
		for k := range res.data {
			res.data[k] = a.data[k] + b.data[k]
		}
	}

	return res, nil
}

// Add returns a new matrix with a[i,j] + b[i,j].
//
// Errors:
//   - ErrNilMatrix          when a or b is nil.
//   - ErrDimensionMismatch  when shapes differ (message names both shapes).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add[T Numeric](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, false, opAdd) }

// Sub returns a new matrix with a[i,j] - b[i,j] (always a − b, never b − a).
//
// Errors:
//   - ErrNilMatrix          when a or b is nil.
//   - ErrDimensionMismatch  when shapes differ (message names both shapes).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub[T Numeric](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, true, opSub) }

// Mul returns the matrix product a×b using the schoolbook triple loop.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b): a.Cols must equal b.Rows.
//   - Stage 2: check and allocate Dense(a.Rows, b.Cols).
//   - Stage 3: for i (rows of a), for j (cols of b): sum starts at the zero
//     value of T and accumulates a[i,k]*b[k,j] for k = 0..a.Cols-1 ascending.
//
// Determinism:
//   - The i → j → k order and the ascending-k accumulation are part of the
//     contract: no zero-skipping, blocking or parallel reduction, so results
//     match bit-for-bit for floating-point and complex T.
//
// Errors:
//   - ErrNilMatrix          when a or b is nil.
//   - ErrDimensionMismatch  when a.Cols != b.Rows (message names both shapes).
//   - ErrInvalidDimensions  when the a.Rows×b.Cols result cannot be allocated.
//
// Complexity:
//   - Time O(m*n*k), Space O(m*n).
func Mul[T Numeric](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.r, a.c, b.c
	if err := validateShape[T](aRows, bCols); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res := newDense[T](aRows, bCols)

	var (
		i, j, k    int // loop iterators
		rowOffsetA int // i*aCols
		rowOffsetR int // i*bCols
		sum, zero  T   // running dot product and its initial value
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for j = 0; j < bCols; j++ {
			sum = zero
			for k = 0; k < aCols; k++ {
				sum += a.data[rowOffsetA+k] * b.data[k*bCols+j]
			}
			res.data[rowOffsetR+j] = sum
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The result has shape (Cols, Rows) and out[j,i] = m[i,j].
//
// Errors:
//   - ErrNilMatrix when m is nil. A valid matrix always transposes.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose[T Numeric](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.r, m.c
	res := newDense[T](cols, rows)

	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are m[i,j] * alpha.
// The input is never mutated. Scale(m, 1) equals m element-wise.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale[T Numeric](m *Dense[T], alpha T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res := newDense[T](m.r, m.c)
	for k, v := range m.data {
		res.data[k] = v * alpha
	}

	return res, nil
}
