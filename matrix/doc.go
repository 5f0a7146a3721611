// Package matrix offers a small, generic, row-major dense matrix.
//
// The matrix package provides:
//
//   - Dense[T], an immutable rows×cols matrix over any Numeric scalar
//     (signed/unsigned integers, floats, complex numbers).
//   - Constructors from a flat slice (NewDense), a fill value (NewFilled),
//     a row-of-rows layout (NewDenseRows), plus NewZeros and NewIdentity.
//   - Builder[T] for cell-by-cell filling before freezing into a Dense.
//   - Add, Sub, Transpose, Scale and naive Mul, each returning a new Dense.
//
// Every precondition is checked before any computation and reported as a
// sentinel error (ErrInvalidDimensions, ErrShapeMismatch,
// ErrDimensionMismatch, ErrIndexOutOfBounds, ErrNilMatrix); match them with
// errors.Is.
//
// Mul is the schoolbook i→j→k triple loop with ascending-k accumulation from
// the zero value, so floating-point results are reproducible bit for bit.
package matrix
