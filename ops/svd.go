// SPDX-License-Identifier: MIT
// Package ops: singular values.

package ops

import (
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack"
	"gonum.org/v1/gonum/lapack/lapack64"
)

// SingularValues computes the min(m,n) singular values of the column-major
// m×n matrix A in descending order and stores them in s. A is destroyed.
//
// Implementation:
//   - Stage 1: validate A and s.
//   - Stage 2: Gesvd in values-only mode on the transposed view (σ(A) = σ(Aᵀ)),
//     with a workspace query first.
//
// Errors:
//   - ErrDimensionMismatch on bad shapes, ErrFactorizationFailed if the
//     bidiagonal QR iteration did not converge.
//
// Complexity: O(m·n·min(m,n)).
func SingularValues(m, n int, a []float64, lda int, s []float64) error {
	if err := checkGeneral(opSVD, m, n, lda, a); err != nil {
		return err
	}
	k := min(m, n)
	if len(s) < k {
		return opsErrorf(opSVD, ErrDimensionMismatch, "len(s)=%d < %d", len(s), k)
	}
	if k == 0 {
		return nil
	}

	// σ(Aᵀ) = σ(A), so the transposed view needs no copy
	var (
		av   = transposedView(m, n, lda, a) // destroyed by Gesvd
		none blas64.General                 // no U, no Vᵀ
		work = make([]float64, 1)           // sized by the query below
	)
	lapack64.Gesvd(lapack.SVDNone, lapack.SVDNone, av, none, none, s[:k], work, -1) // workspace query
	work = make([]float64, max(1, int(work[0])))
	if ok := lapack64.Gesvd(lapack.SVDNone, lapack.SVDNone, av, none, none, s[:k], work, len(work)); !ok {
		return opsErrorf(opSVD, ErrFactorizationFailed, "%dx%d did not converge", m, n)
	}

	return nil
}
