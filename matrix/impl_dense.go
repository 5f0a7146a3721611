// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At returns errors instead of panicking.
//   - Keep Dense read-only once built; every operation allocates a new Dense.
//   - Enforce the optional numeric policy (NaN/Inf rejection) at ingestion only.
//
// Complexity quicksheet:
//   - NewDense/NewFilled/NewDenseRows: O(r*c); At: O(1); Clone/Values: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"           // method tag used in error wrappers
	ctxRow    = "Row"          // method tag used in error wrappers
	ctxSet    = "Set"          // Builder.Set tag
	ctxSetRow = "SetRow"       // Builder.SetRow tag
	ctxNew    = "NewDense"     // ctor tag
	ctxFill   = "NewFilled"    // ctor tag
	ctxRows   = "NewDenseRows" // ctor tag
	ctxBuild  = "NewBuilder"   // ctor tag
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Produces "Dense.<method>(row,col): <err>"; the sentinel survives via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is an immutable row-major matrix over a Numeric scalar type.
//   - r,c hold dimensions (both ≥ 1 for every value produced by this package).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The buffer is owned exclusively: constructors copy their input and accessors
// returning slices return copies, so a *Dense can be shared freely between
// goroutines.
type Dense[T Numeric] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[float64])(nil)

// NewDense creates a rows×cols matrix from a flat row-major slice.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0 and that rows*cols is allocatable;
//     else ErrInvalidDimensions.
//   - Stage 2: validate len(values) == rows*cols; else ErrShapeMismatch.
//   - Stage 3: apply numeric policy, copy values into an owned buffer.
//
// Errors:
//   - ErrInvalidDimensions, ErrShapeMismatch, ErrNaNInf (policy only).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Numeric](rows, cols int, values []T, opts ...Option) (*Dense[T], error) {
	if err := validateShape[T](rows, cols); err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}
	if err := ValidateLen(len(values), rows*cols); err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		if err := validateFinite(values, cols); err != nil {
			return nil, matrixErrorf(ctxNew, err)
		}
	}

	buf := make([]T, len(values))
	copy(buf, values)

	return &Dense[T]{r: rows, c: cols, data: buf}, nil
}

// NewFilled creates a rows×cols matrix with every element equal to v.
//
// Errors:
//   - ErrInvalidDimensions, ErrNaNInf (policy only).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFilled[T Numeric](rows, cols int, v T, opts ...Option) (*Dense[T], error) {
	if err := validateShape[T](rows, cols); err != nil {
		return nil, matrixErrorf(ctxFill, err)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf && isNonFinite(v) {
		return nil, matrixErrorf(ctxFill, ErrNaNInf)
	}

	m := newDense[T](rows, cols)
	var zero T
	if v != zero { // make() already zero-filled the buffer
		for i := range m.data {
			m.data[i] = v
		}
	}

	return m, nil
}

// NewDenseRows creates a rows×cols matrix from a row-of-rows layout.
// len(data) must equal rows and every inner slice must have length cols;
// jagged input is rejected rather than padded or truncated.
//
// Errors:
//   - ErrInvalidDimensions, ErrShapeMismatch, ErrNaNInf (policy only).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseRows[T Numeric](rows, cols int, data [][]T, opts ...Option) (*Dense[T], error) {
	if err := validateShape[T](rows, cols); err != nil {
		return nil, matrixErrorf(ctxRows, err)
	}
	if err := ValidateLen(len(data), rows); err != nil {
		return nil, matrixErrorf(ctxRows, fmt.Errorf("rows: %w", err))
	}
	for i, row := range data {
		if err := ValidateLen(len(row), cols); err != nil {
			return nil, matrixErrorf(ctxRows, fmt.Errorf("row %d: %w", i, err))
		}
	}

	o := gatherOptions(opts...)
	m := newDense[T](rows, cols)
	for i, row := range data {
		copy(m.data[i*cols:(i+1)*cols], row)
	}
	if o.validateNaNInf {
		if err := validateFinite(m.data, cols); err != nil {
			return nil, matrixErrorf(ctxRows, err)
		}
	}

	return m, nil
}

// newDense allocates a zero-filled rows×cols matrix.
// Callers must have validated the shape.
func newDense[T Numeric](rows, cols int) *Dense[T] {
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
}

// validateFinite returns ErrNaNInf wrapped with the first offending coordinate.
// Scan order is flat row-major.
func validateFinite[T Numeric](values []T, cols int) error {
	for k, v := range values {
		if isNonFinite(v) {
			return fmt.Errorf("at (%d,%d): %w", k/cols, k%cols, ErrNaNInf)
		}
	}

	return nil
}

// Rows returns the number of rows.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense[T]) Cols() int { return m.c }

// Dims returns the shape as a Dims value.
func (m *Dense[T]) Dims() Dims { return Dims{Rows: m.r, Cols: m.c} }

// Len returns the number of stored elements (Rows*Cols).
func (m *Dense[T]) Len() int { return len(m.data) }

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Indices are zero-based; out-of-range indices return ErrIndexOutOfBounds and
// are never clamped or wrapped.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		var zero T

		return zero, err
	}

	return m.data[idx], nil
}

// Row returns a copy of row i.
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrIndexOutOfBounds)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Values returns a copy of the row-major backing buffer.
func (m *Dense[T]) Values() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// Equal reports whether m and other have the same shape and identical elements
// under ==. Two nil matrices are equal; NaN never equals itself.
func (m *Dense[T]) Equal(other *Dense[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for k := range m.data {
		if m.data[k] != other.data[k] {
			return false
		}
	}

	return true
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only; no allocations.
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// String renders one bracketed, comma-separated line per row, using %v.
// Intended for debugging; not for hot paths.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
