// SPDX-License-Identifier: MIT
// Package matrix - Builder: the only mutable surface.
//
// Purpose:
//   - Fill a fixed-shape buffer cell by cell, then freeze it into a Dense.
//   - Keep Dense itself free of setters so built matrices never change.
//
// Contract:
//   - Dimensions are fixed at NewBuilder; Set never grows or shrinks the buffer.
//   - Build copies the buffer, so later Set calls never leak into a built Dense.
//   - A Builder is not safe for concurrent Set; the Dense it builds is.

package matrix

// Builder accumulates elements of a rows×cols matrix before freezing it.
type Builder[T Numeric] struct {
	buf  *Dense[T] // staging buffer; never handed out
	opts Options   // resolved policy applied on Set
}

// NewBuilder returns a zero-filled rows×cols builder.
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0, cols <= 0, or rows*cols is too large.
func NewBuilder[T Numeric](rows, cols int, opts ...Option) (*Builder[T], error) {
	if err := validateShape[T](rows, cols); err != nil {
		return nil, matrixErrorf(ctxBuild, err)
	}

	return &Builder[T]{
		buf:  newDense[T](rows, cols),
		opts: gatherOptions(opts...),
	}, nil
}

// Dims returns the fixed shape of the builder.
func (b *Builder[T]) Dims() Dims { return b.buf.Dims() }

// At returns the staged value at (row, col).
func (b *Builder[T]) At(row, col int) (T, error) { return b.buf.At(row, col) }

// Set stages v at (row, col).
//
// Errors:
//   - ErrIndexOutOfBounds for invalid indices.
//   - ErrNaNInf when the finite-value policy is on and v is NaN/±Inf.
func (b *Builder[T]) Set(row, col int, v T) error {
	idx, err := b.buf.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if b.opts.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	b.buf.data[idx] = v

	return nil
}

// SetRow stages a full row. len(values) must equal Cols.
//
// Errors:
//   - ErrIndexOutOfBounds for an invalid row.
//   - ErrShapeMismatch when len(values) != Cols.
//   - ErrNaNInf under the finite-value policy; the row is left untouched.
func (b *Builder[T]) SetRow(row int, values []T) error {
	if row < 0 || row >= b.buf.r {
		return denseErrorf(ctxSetRow, row, 0, ErrIndexOutOfBounds)
	}
	if err := ValidateLen(len(values), b.buf.c); err != nil {
		return matrixErrorf(ctxSetRow, err)
	}
	if b.opts.validateNaNInf {
		if err := validateFinite(values, b.buf.c); err != nil {
			return matrixErrorf(ctxSetRow, err)
		}
	}
	copy(b.buf.data[row*b.buf.c:(row+1)*b.buf.c], values)

	return nil
}

// Build returns an independent Dense holding the staged values.
// The builder stays usable; further Set calls do not affect the result.
func (b *Builder[T]) Build() *Dense[T] { return b.buf.Clone() }
