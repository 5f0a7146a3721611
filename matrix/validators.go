// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for shape and nil checks.
//   - Keep kernels minimal by delegating precondition checks here.
//   - Every check runs before any computation, so a failing call never
//     produces a partial result.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and O(1); they allocate only on failure.
//
// Note:
//   - Composite validators follow a fixed sequence (NotNil(a) → NotNil(b) → Shape).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"unsafe"
)

// maxAllocBytes bounds the backing buffer of a single matrix: 2^47 bytes on
// 64-bit platforms, 2^31 on 32-bit ones. Both sit below the runtime's
// makeslice limit, so an accepted shape never panics in make.
const maxAllocBytes uint64 = 1 << (strconv.IntSize/2 + 15)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// shapeMismatch wraps ErrDimensionMismatch with both operand shapes.
func shapeMismatch(a, b Dims) error {
	return fmt.Errorf("%w: %s vs %s", ErrDimensionMismatch, a, b)
}

// ValidateDims ensures rows and cols are both positive and that rows*cols
// fits in an int. Returns ErrInvalidDimensions otherwise.
func ValidateDims(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return validatorErrorf("ValidateDims",
			fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, cols))
	}
	if cols > math.MaxInt/rows {
		return validatorErrorf("ValidateDims",
			fmt.Errorf("%w: %dx%d overflows int", ErrInvalidDimensions, rows, cols))
	}

	return nil
}

// validateShape runs ValidateDims and then checks that a rows×cols buffer of T
// stays within maxAllocBytes. Every allocation of a new shape goes through it.
func validateShape[T Numeric](rows, cols int) error {
	if err := ValidateDims(rows, cols); err != nil {
		return err
	}
	var zero T
	if uint64(rows)*uint64(cols) > maxAllocBytes/uint64(unsafe.Sizeof(zero)) {
		return validatorErrorf("ValidateDims",
			fmt.Errorf("%w: %dx%d exceeds the allocation limit", ErrInvalidDimensions, rows, cols))
	}

	return nil
}

// ValidateLen ensures a supplied element count equals the expected one.
// Returns ErrShapeMismatch otherwise.
func ValidateLen(got, want int) error {
	if got != want {
		return validatorErrorf("ValidateLen",
			fmt.Errorf("%w: want %d values, got %d", ErrShapeMismatch, want, got))
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Use as the first step in composite validations.
func ValidateNotNil[T Numeric](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Errors: ErrNilMatrix, ErrDimensionMismatch naming both shapes.
// Use for Add/Sub.
func ValidateSameShape[T Numeric](a, b *Dense[T]) error {
	if err := validateBothNotNil(a, b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.r != b.r || a.c != b.c {
		return validatorErrorf("ValidateSameShape", shapeMismatch(a.Dims(), b.Dims()))
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows.
// Errors: ErrNilMatrix, ErrDimensionMismatch naming both shapes.
func ValidateMulCompatible[T Numeric](a, b *Dense[T]) error {
	if err := validateBothNotNil(a, b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", shapeMismatch(a.Dims(), b.Dims()))
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateSquare[T Numeric](m *Dense[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare",
			fmt.Errorf("%w: %s is not square", ErrDimensionMismatch, m.Dims()))
	}

	return nil
}

// validateBothNotNil is the NotNil(a) → NotNil(b) prefix of binary validators.
func validateBothNotNil[T Numeric](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}

	return ValidateNotNil(b)
}
