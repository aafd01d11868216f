// Package graphreduce is a small toolkit built around a generic
// square-matrix algebra engine.
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/  Square[T] over float32/float64/complex64/complex128: storage,
//	         arithmetic, determinant, inversion, transpose, conjugate
//	item/    a named record with a sorted, de-duplicated dependency list
//	tree/    registry-owned value nodes with non-owning child links
//
// The subpackages share no types. The matrix engine performs no I/O and
// takes no locks; wrap a matrix in matrix.Synced to share it.
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]float64{{4, 7}, {2, 6}})
//	a.Determinant()  // 10
//	inv, _ := a.Inverse() // [[0.6 -0.7] [-0.2 0.4]]
//
//	go get github.com/Melephas/graph-reduce
package graphreduce
