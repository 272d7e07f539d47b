// SPDX-License-Identifier: MIT
package ops_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/matgen/ops"
)

func TestOrthonormalizeColumns_OrthonormalAndSameSpan(t *testing.T) {
	for _, tc := range []struct{ m, n int }{{6, 6}, {9, 4}, {30, 1}} {
		a := randomColMajor(t, tc.m, tc.n, 7)
		q := append([]float64(nil), a...)
		require.NoError(t, ops.OrthonormalizeColumns(tc.m, tc.n, q, tc.m))
		require.Less(t, identityResidual(tc.m, tc.n, q), 1e-13)

		// Span check: Q·(QᵀA) reproduces A.
		qta := make([]float64, tc.n*tc.n)
		require.NoError(t, ops.Gemm(ops.Trans, ops.NoTrans, tc.n, tc.n, tc.m, 1, q, tc.m, a, tc.m, 0, qta, tc.n))
		back := make([]float64, tc.m*tc.n)
		require.NoError(t, ops.Gemm(ops.NoTrans, ops.NoTrans, tc.m, tc.n, tc.n, 1, q, tc.m, qta, tc.n, 0, back, tc.m))
		require.InDeltaSlice(t, a, back, 1e-12)
	}
}

func TestQR_ReconstructsInput(t *testing.T) {
	const m, n = 8, 5
	a := randomColMajor(t, m, n, 11)
	f := append([]float64(nil), a...)
	tau := make([]float64, n)
	require.NoError(t, ops.QR(m, n, f, m, tau))

	// R: upper n×n triangle of the factored buffer.
	r := make([]float64, n*n)
	var i, j int
	for j = 0; j < n; j++ {
		for i = 0; i <= j; i++ {
			r[i+j*n] = f[i+j*m]
		}
	}
	require.NoError(t, ops.ExplicitQ(m, n, f, m, tau))

	qr := make([]float64, m*n)
	require.NoError(t, ops.Gemm(ops.NoTrans, ops.NoTrans, m, n, n, 1, f, m, r, n, 0, qr, m))
	require.InDeltaSlice(t, a, qr, 1e-12)
}

func TestQR_RejectsWide(t *testing.T) {
	err := ops.QR(2, 3, make([]float64, 6), 2, make([]float64, 3))
	require.ErrorIs(t, err, ops.ErrDimensionMismatch)
	err = ops.OrthonormalizeColumns(2, 3, make([]float64, 6), 2)
	require.ErrorIs(t, err, ops.ErrDimensionMismatch)
}

func TestSingularValues_MatchesGonumMat(t *testing.T) {
	for _, tc := range []struct{ m, n int }{{7, 4}, {4, 7}, {5, 5}} {
		a := randomColMajor(t, tc.m, tc.n, 21)

		// Row-major copy for the reference factorization.
		ref := mat.NewDense(tc.m, tc.n, nil)
		var i, j int
		for j = 0; j < tc.n; j++ {
			for i = 0; i < tc.m; i++ {
				ref.Set(i, j, a[i+j*tc.m])
			}
		}
		var svd mat.SVD
		require.True(t, svd.Factorize(ref, mat.SVDNone))
		want := svd.Values(nil)

		got := make([]float64, min(tc.m, tc.n))
		require.NoError(t, ops.SingularValues(tc.m, tc.n, a, tc.m, got))
		require.True(t, sort.SliceIsSorted(got, func(x, y int) bool { return got[x] > got[y] }))
		require.InDeltaSlice(t, want, got, 1e-12)
	}
}

func TestSingularValues_Diagonal(t *testing.T) {
	a := []float64{
		2, 0, 0,
		0, -5, 0,
		0, 0, 1,
	}
	s := make([]float64, 3)
	require.NoError(t, ops.SingularValues(3, 3, a, 3, s))
	require.InDeltaSlice(t, []float64{5, 2, 1}, s, 1e-14)

	require.ErrorIs(t, ops.SingularValues(3, 3, make([]float64, 9), 3, s[:2]), ops.ErrDimensionMismatch)
}

func TestFrobenius_TrailingRowsInPlace(t *testing.T) {
	// 3×2 column-major: [1 4; 2 5; 3 6]
	a := []float64{1, 2, 3, 4, 5, 6}
	full, err := ops.Frobenius(3, 2, a, 3)
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt(91), full, 1e-14)

	tail, err := ops.Frobenius(2, 2, a[1:], 3) // rows 1..2
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt(4+9+25+36), tail, 1e-14)

	empty, err := ops.Frobenius(0, 2, a[3:], 3)
	require.NoError(t, err)
	require.Zero(t, empty)
}

func TestPacked_RoundTrip(t *testing.T) {
	const n = 4
	full := randomColMajor(t, n, n, 5)
	ap := make([]float64, ops.PackedLen(n))
	require.NoError(t, ops.FullToPackedUpper(n, full, n, ap))

	back := make([]float64, n*n)
	require.NoError(t, ops.PackedUpperToFull(n, ap, back, n))

	var i, j int
	for j = 0; j < n; j++ {
		for i = 0; i < n; i++ {
			if i <= j {
				require.Equal(t, full[i+j*n], back[i+j*n])
			} else {
				require.Zero(t, back[i+j*n])
			}
		}
	}
	require.ErrorIs(t, ops.PackedUpperToFull(n, ap[:3], back, n), ops.ErrDimensionMismatch)
}

func TestLU_ReconstructsPermutedInput(t *testing.T) {
	const n = 5
	a := randomColMajor(t, n, n, 13)
	f := append([]float64(nil), a...)
	ipiv, err := ops.LU(n, n, f, n)
	require.NoError(t, err)
	require.Len(t, ipiv, n)

	// Apply the recorded interchanges to a copy of A.
	pa := append([]float64(nil), a...)
	var i, j, k int
	for i = 0; i < n; i++ {
		if p := ipiv[i]; p != i {
			for j = 0; j < n; j++ {
				pa[i+j*n], pa[p+j*n] = pa[p+j*n], pa[i+j*n]
			}
		}
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			var s float64
			for k = 0; k <= min(i, j); k++ {
				l := f[i+k*n]
				if k == i {
					l = 1
				}
				s += l * f[k+j*n]
			}
			require.InDelta(t, pa[i+j*n], s, 1e-12)
		}
	}
}

func TestLU_Singular(t *testing.T) {
	_, err := ops.LU(2, 2, []float64{1, 2, 2, 4}, 2)
	require.ErrorIs(t, err, ops.ErrFactorizationFailed)
}
