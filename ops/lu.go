// SPDX-License-Identifier: MIT
// Package ops: LU factorization with partial pivoting.

package ops

import (
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"
)

// LU computes P·A = L·U for the column-major m×n matrix A in place, LAPACK
// getrf style: on return the strict lower part of A holds L (unit diagonal
// implied) and the upper triangle holds U. ipiv[i] is the 0-based row that
// was interchanged with row i.
//
// Implementation:
//   - Stage 1: copy A into a row-major scratch matrix. Unlike QR, LU has no
//     transpose identity that keeps the same factors, so one O(mn) copy is
//     paid in each direction.
//   - Stage 2: lapack64.Getrf on the scratch matrix.
//   - Stage 3: copy the packed factors back into the column-major buffer.
//
// Errors:
//   - ErrFactorizationFailed when U has an exactly zero diagonal entry. The
//     factors are still written back so callers can inspect them.
//
// Complexity: O(m·n·min(m,n)) time, O(m·n) scratch.
func LU(m, n int, a []float64, lda int) ([]int, error) {
	if err := checkGeneral(opLU, m, n, lda, a); err != nil {
		return nil, err
	}
	ipiv := make([]int, min(m, n))
	if m == 0 || n == 0 {
		return ipiv, nil
	}

	// Stage 2: row-major copy (row pivoting does not survive the transposed view)
	var (
		rm   = blas64.General{Rows: m, Cols: n, Stride: n, Data: make([]float64, m*n)}
		i, j int // loop indices
	)
	for j = 0; j < n; j++ {
		for i = 0; i < m; i++ {
			rm.Data[i*n+j] = a[i+j*lda] // A[i][j]
		}
	}

	// Stage 3: factor, then scatter L\U back even when a pivot is zero
	ok := lapack64.Getrf(rm, ipiv)
	for j = 0; j < n; j++ {
		for i = 0; i < m; i++ {
			a[i+j*lda] = rm.Data[i*n+j] // packed L\U
		}
	}
	if !ok {
		return ipiv, opsErrorf(opLU, ErrFactorizationFailed, "zero pivot")
	}

	return ipiv, nil
}
