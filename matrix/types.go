// SPDX-License-Identifier: MIT

// Package matrix: scalar constraint and shape value.
// This file intentionally contains ONLY domain-facing types. Errors and
// options live in dedicated files (errors.go, options.go).
package matrix

import "strconv"

// Numeric is the set of scalar types a Dense may hold.
// Every member supports +, - and * with a result of the same type and can
// represent the constants 0 and 1 (used by NewIdentity).
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// Dims is the (rows, cols) shape of a matrix.
type Dims struct {
	Rows int // number of rows
	Cols int // number of columns
}

// Square reports whether Rows == Cols.
func (d Dims) Square() bool { return d.Rows == d.Cols }

// Size returns Rows*Cols, the length of the backing buffer.
func (d Dims) Size() int { return d.Rows * d.Cols }

// String renders the shape as "RxC".
func (d Dims) String() string {
	return strconv.Itoa(d.Rows) + "x" + strconv.Itoa(d.Cols)
}

// isNonFinite reports whether v is NaN or ±Inf (or has such a component).
// v-v is zero for every finite value and NaN otherwise; NaN is the only value
// not equal to itself. Integers are always finite.
func isNonFinite[T Numeric](v T) bool {
	d := v - v

	return d != d
}
