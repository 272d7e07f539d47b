// SPDX-License-Identifier: MIT
// Package ops: Householder QR with explicit recovery of the orthonormal factor.

package ops

import "gonum.org/v1/gonum/lapack/lapack64"

// QR factors the column-major m×n matrix A (m ≥ n) in place using Householder
// reflections. On return the upper triangle of A holds R and the entries
// below it, together with tau, describe the reflectors. tau must have length
// at least n.
//
// Implementation:
//   - Stage 1: validate shape (m ≥ n) and tau.
//   - Stage 2: run Gelqf on the transposed view. The LQ factor of Aᵀ is the
//     transpose of the QR factor of A, so the row-major L lands as R in the
//     column-major upper triangle.
//
// Complexity: O(m·n²) time, O(n·nb) workspace.
func QR(m, n int, a []float64, lda int, tau []float64) error {
	if err := checkGeneral(opQR, m, n, lda, a); err != nil {
		return err
	}
	if m < n {
		return opsErrorf(opQR, ErrDimensionMismatch, "m=%d < n=%d", m, n)
	}
	if len(tau) < n {
		return opsErrorf(opQR, ErrDimensionMismatch, "len(tau)=%d < n=%d", len(tau), n)
	}
	if n == 0 {
		return nil
	}

	// Stage 2: LQ of the row-major n×m view
	var (
		av   = transposedView(m, n, lda, a) // Aᵀ over the same storage
		work = make([]float64, 1)           // sized by the query below
	)
	lapack64.Gelqf(av, tau[:n], work, -1)        // workspace query
	work = make([]float64, max(n, int(work[0]))) // optimal block size
	lapack64.Gelqf(av, tau[:n], work, len(work)) // R and reflectors in place

	return nil
}

// ExplicitQ overwrites A, previously factored by QR, with the m×n matrix Q
// that has orthonormal columns spanning the column space of the original A.
//
// Complexity: O(m·n²).
func ExplicitQ(m, n int, a []float64, lda int, tau []float64) error {
	if err := checkGeneral(opQ, m, n, lda, a); err != nil {
		return err
	}
	if m < n {
		return opsErrorf(opQ, ErrDimensionMismatch, "m=%d < n=%d", m, n)
	}
	if len(tau) < n {
		return opsErrorf(opQ, ErrDimensionMismatch, "len(tau)=%d < n=%d", len(tau), n)
	}
	if n == 0 {
		return nil
	}

	// accumulate the reflectors into the explicit factor
	var (
		av   = transposedView(m, n, lda, a) // Aᵀ over the same storage
		work = make([]float64, 1)           // sized by the query below
	)
	lapack64.Orglq(av, tau[:n], work, -1)        // workspace query
	work = make([]float64, max(n, int(work[0]))) // optimal block size
	lapack64.Orglq(av, tau[:n], work, len(work)) // Q overwrites A

	return nil
}

// OrthonormalizeColumns replaces the column-major m×n matrix A (m ≥ n) by the
// orthonormal factor of its Householder QR factorization.
// It is the QR + explicit-Q pair used to turn Gaussian samples into random
// orthonormal bases.
//
// Complexity: O(m·n²).
func OrthonormalizeColumns(m, n int, a []float64, lda int) error {
	tau := make([]float64, n) // reflector scalars
	if err := QR(m, n, a, lda, tau); err != nil {
		return opsErrorf(opOrth, err, "factor")
	}
	if err := ExplicitQ(m, n, a, lda, tau); err != nil {
		return opsErrorf(opOrth, err, "recover Q")
	}

	return nil
}
