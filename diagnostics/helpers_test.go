// SPDX-License-Identifier: MIT
// Package diagnostics_test: fixtures with known spectra.

package diagnostics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matgen/ops"
	"github.com/katalvlaran/matgen/rng"
)

// diagMatrix returns the column-major m×n matrix with s on its diagonal.
func diagMatrix(t *testing.T, m, n int, s []float64) []float64 {
	t.Helper()
	require.LessOrEqual(t, len(s), min(m, n))
	a := make([]float64, m*n)
	for i, v := range s {
		a[i+i*m] = v
	}

	return a
}

// orthonormal returns a random m×k matrix with orthonormal columns.
func orthonormal(t *testing.T, m, k int, seed uint64) []float64 {
	t.Helper()
	q := make([]float64, m*k)
	_, err := rng.FillDense(rng.DenseDist{Rows: m, Cols: k}, q, rng.New(seed))
	require.NoError(t, err)
	require.NoError(t, ops.OrthonormalizeColumns(m, k, q, m))

	return q
}

// withSpectrum returns the m×n matrix U·diag(s)·Vᵀ for random orthonormal U
// and V, so its singular values are exactly s up to roundoff.
func withSpectrum(t *testing.T, m, n int, s []float64, seed uint64) []float64 {
	t.Helper()
	k := len(s)
	u := orthonormal(t, m, k, seed)
	v := orthonormal(t, n, k, seed+1)
	for j, sv := range s {
		require.NoError(t, ops.Scal(m, sv, u[j*m:], 1))
	}
	a := make([]float64, m*n)
	require.NoError(t, ops.Gemm(ops.NoTrans, ops.Trans, m, n, k, 1, u, m, v, n, 0, a, m))

	return a
}
