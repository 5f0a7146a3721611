// Package linalg is a minimal, dependency-light dense linear-algebra toolkit.
//
// What is inside?
//
//	matrix/  generic row-major Dense matrix: construction, bounds-checked
//	          access, element-wise add/sub, transpose, scaling and naive
//	          (triple-loop) multiplication.
//
// Quick example:
//
//	a, _ := matrix.NewDenseRows(2, 2, [][]int{{1, 2}, {3, 4}})
//	b, _ := matrix.NewDenseRows(2, 2, [][]int{{5, 6}, {7, 8}})
//	p, _ := matrix.Mul(a, b) // [[19, 22], [43, 50]]
//
// Determinants, inversion, factorizations, sparse storage and I/O are not
// part of this module.
//
//	go get github.com/alec-broadhurst/linalg/matrix
package linalg
