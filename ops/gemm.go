// SPDX-License-Identifier: MIT
// Package ops: matrix-vector and matrix-matrix products (BLAS levels 2 and 3).

package ops

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// Gemv computes y ← alpha·op(A)·x + beta·y where A is a column-major m×n
// matrix with leading dimension lda and op(A) is A or Aᵀ.
//
// Implementation:
//   - Stage 1: validate A, x and y against op(A)'s shape.
//   - Stage 2: call blas64.Gemv on the transposed view with the flag flipped
//     (A·x = (Aᵀ)ᵀ·x).
//
// Complexity: O(m·n).
func Gemv(t blas.Transpose, m, n int, alpha float64, a []float64, lda int, x []float64, beta float64, y []float64) error {
	if t != blas.NoTrans && t != blas.Trans {
		return opsErrorf(opGemv, ErrDimensionMismatch, "transpose flag %q", t)
	}
	if err := checkGeneral(opGemv, m, n, lda, a); err != nil {
		return err
	}
	lenX, lenY := n, m // lengths of x and y for op(A) = A
	if t == blas.Trans {
		lenX, lenY = m, n
	}
	if err := checkVector(opGemv, lenX, 1, x); err != nil {
		return err
	}
	if err := checkVector(opGemv, lenY, 1, y); err != nil {
		return err
	}
	if lenY == 0 {
		return nil
	}
	if lenX == 0 {
		// op(A) has no columns: y ← beta·y.
		blas64.Scal(beta, vec(lenY, 1, y))
		return nil
	}
	blas64.Gemv(flip(t), alpha, transposedView(m, n, lda, a), vec(lenX, 1, x), beta, vec(lenY, 1, y))

	return nil
}

// Gemm computes C ← alpha·op(A)·op(B) + beta·C with column-major operands:
// op(A) is m×k, op(B) is k×n and C is m×n.
//
// Implementation:
//   - Stage 1: derive the stored shapes of A and B from the transpose flags
//     and validate them with their leading dimensions.
//   - Stage 2: Cᵀ = op(B)ᵀ·op(A)ᵀ. On the transposed views the flags keep
//     their meaning, so gonum is called with the operands swapped.
//
// Complexity: O(m·n·k).
func Gemm(tA, tB blas.Transpose, m, n, k int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) error {
	if (tA != blas.NoTrans && tA != blas.Trans) || (tB != blas.NoTrans && tB != blas.Trans) {
		return opsErrorf(opGemm, ErrDimensionMismatch, "transpose flags %q/%q", tA, tB)
	}
	rowsA, colsA := m, k // stored shape of A
	if tA == blas.Trans {
		rowsA, colsA = k, m
	}
	rowsB, colsB := k, n // stored shape of B
	if tB == blas.Trans {
		rowsB, colsB = n, k
	}
	if err := checkGeneral(opGemm, rowsA, colsA, lda, a); err != nil {
		return err
	}
	if err := checkGeneral(opGemm, rowsB, colsB, ldb, b); err != nil {
		return err
	}
	if err := checkGeneral(opGemm, m, n, ldc, c); err != nil {
		return err
	}
	if m == 0 || n == 0 {
		return nil
	}
	if k == 0 {
		// Empty inner dimension: C ← beta·C column by column.
		var j int
		for j = 0; j < n; j++ {
			blas64.Scal(beta, vec(m, 1, c[j*ldc:]))
		}
		return nil
	}

	// Cᵀ = op(B)ᵀ·op(A)ᵀ: swap the operands on the row-major views
	var (
		av = transposedView(rowsA, colsA, lda, a) // Aᵀ
		bv = transposedView(rowsB, colsB, ldb, b) // Bᵀ
		cv = transposedView(m, n, ldc, c)         // Cᵀ, written in place
	)
	blas64.Gemm(tB, tA, alpha, bv, av, beta, cv)

	return nil
}

// SyrkGram writes the full symmetric n×n Gram matrix G = AᵀA of the
// column-major m×n matrix A into g (leading dimension n).
//
// Implementation:
//   - Stage 1: the transposed view of A is Aᵀ (n×m); AᵀA = Aᵀ·(Aᵀ)ᵀ is a
//     NoTrans rank-m update on that view, accumulated into the upper triangle.
//   - Stage 2: mirror the upper triangle so g is usable as a general matrix.
//
// Complexity: O(m·n²).
func SyrkGram(m, n int, a []float64, lda int, g []float64) error {
	if err := checkGeneral(opSyrk, m, n, lda, a); err != nil {
		return err
	}
	if len(g) < n*n {
		return opsErrorf(opSyrk, ErrDimensionMismatch, "len(g)=%d < %d", len(g), n*n)
	}
	if n == 0 {
		return nil
	}
	if m == 0 {
		clear(g[:n*n])
		return nil
	}

	sym := blas64.Symmetric{Uplo: blas.Upper, N: n, Stride: n, Data: g} // upper half only
	blas64.Syrk(blas.NoTrans, 1, transposedView(m, n, lda, a), 0, sym)

	// Row-major upper (i ≤ j at i*n+j) mirrored into the lower half.
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			g[j*n+i] = g[i*n+j]
		}
	}

	return nil
}
