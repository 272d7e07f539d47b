// SPDX-License-Identifier: MIT
// Package ops: matrix norms.

package ops

import (
	"gonum.org/v1/gonum/lapack"
	"gonum.org/v1/gonum/lapack/lapack64"
)

// Frobenius returns ‖A‖_F for the column-major m×n block stored at a with
// leading dimension lda. Because lda may exceed m, sub-blocks such as the
// trailing rows A[k:, :] are measured in place by passing a[k:] with m-k rows
// and the parent's lda.
// Complexity: O(m·n).
func Frobenius(m, n int, a []float64, lda int) (float64, error) {
	if err := checkGeneral(opFrob, m, n, lda, a); err != nil {
		return 0, err
	}
	if m == 0 || n == 0 {
		return 0, nil
	}

	return lapack64.Lange(lapack.Frobenius, transposedView(m, n, lda, a), nil), nil
}
