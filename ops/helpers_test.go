// SPDX-License-Identifier: MIT
// Package ops_test: shared fixtures for the backend adapter tests.

package ops_test

import (
	"math/rand/v2"
	"testing"
)

// randomColMajor fills an m×n column-major matrix with standard normal
// entries from a fixed seed.
func randomColMajor(t testing.TB, m, n int, seed uint64) []float64 {
	t.Helper()
	r := rand.New(rand.NewPCG(seed, seed^0x5bd1e995))
	a := make([]float64, m*n)
	for i := range a {
		a[i] = r.NormFloat64()
	}

	return a
}

// naiveGemm returns op(A)·op(B) for column-major operands (no gonum involved).
func naiveGemm(transA, transB bool, m, n, k int, a []float64, lda int, b []float64, ldb int) []float64 {
	at := func(i, l int) float64 {
		if transA {
			return a[l+i*lda]
		}
		return a[i+l*lda]
	}
	bt := func(l, j int) float64 {
		if transB {
			return b[j+l*ldb]
		}
		return b[l+j*ldb]
	}
	c := make([]float64, m*n)
	var i, j, l int
	for j = 0; j < n; j++ {
		for i = 0; i < m; i++ {
			var s float64
			for l = 0; l < k; l++ {
				s += at(i, l) * bt(l, j)
			}
			c[i+j*m] = s
		}
	}

	return c
}

// identityResidual returns max |QᵀQ - I| over an m×n column-major Q.
func identityResidual(m, n int, q []float64) float64 {
	var worst float64
	var i, j, r int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			var s float64
			for r = 0; r < m; r++ {
				s += q[r+i*m] * q[r+j*m]
			}
			if i == j {
				s -= 1
			}
			if s < 0 {
				s = -s
			}
			if s > worst {
				worst = s
			}
		}
	}

	return worst
}
