// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every operation returns one of these (possibly wrapped with call-site
// context) and tests check them via errors.Is. No operation panics on
// caller-triggered conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so it can be grepped in caller
// logs. Operations wrap these with fmt.Errorf("<Op>: %w", ErrX); callers still
// match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> invalid dimensions -> shape mismatch -> numeric policy
// for constructors; nil operand -> dimension mismatch for arithmetic.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive,
	// or that rows*cols elements cannot be addressed or allocated.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrShapeMismatch indicates that supplied element data does not match the
	// declared rows×cols at construction time (flat length or row-of-rows layout).
	ErrShapeMismatch = errors.New("matrix: data does not match shape")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub on different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	// At and Builder.Set return this, never panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value under the opt-in finite-value policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
