// SPDX-License-Identifier: MIT
// Package: matgen/gen
//
// synth.go - orthogonal factor synthesis, A = U·diag(s)·Vᵀ.
//
// Determinism:
//   - U is drawn before V, each as one dense Gaussian block, so the rng
//     counter advances by (m+n)·k per call.

package gen

import (
	"github.com/katalvlaran/matgen/ops"
	"github.com/katalvlaran/matgen/rng"
)

// RandomOrthonormal samples an m×k Gaussian matrix and orthonormalizes it with
// Householder QR, returning the explicit column-major factor Q (QᵀQ = I) and
// the advanced state. Requires 1 ≤ k ≤ m.
// Complexity: O(m·k²).
func RandomOrthonormal(m, k int, s rng.State) ([]float64, rng.State, error) {
	if k < 1 || k > m {
		return nil, s, wrapf(methodOrthonormal, ErrInvalidSpec, "m=%d k=%d", m, k)
	}
	q := make([]float64, m*k) // Gaussian sample, then Q
	next, err := rng.FillDense(rng.DenseDist{Rows: m, Cols: k}, q, s)
	if err != nil {
		return nil, s, wrapf(methodOrthonormal, err, "")
	}
	if err = ops.OrthonormalizeColumns(m, k, q, m); err != nil {
		return nil, s, wrapf(methodOrthonormal, err, "")
	}

	return q, next, nil
}

// Synthesize writes into dst[:m*n] the column-major m×n matrix
// A = U·diag(sv)·Vᵀ, where U (m×k) and V (n×k) are random orthonormal factors
// and k = len(sv). A has exactly the singular values sv up to roundoff.
//
// Implementation:
//   - Stage 1: U, V ← RandomOrthonormal.
//   - Stage 2: scale column j of U by sv[j].
//   - Stage 3: one Gemm, A = (U·diag(sv))·Vᵀ.
//
// Errors: ErrInvalidSpec unless 1 ≤ k ≤ min(m, n) and len(dst) ≥ m·n.
// Complexity: O(m·n·k + (m+n)·k²).
func Synthesize(m, n int, sv []float64, dst []float64, s rng.State) (rng.State, error) {
	k := len(sv)
	if k < 1 || k > min(m, n) {
		return s, wrapf(methodSynthesize, ErrInvalidSpec, "m=%d n=%d k=%d", m, n, k)
	}
	if len(dst) < m*n {
		return s, wrapf(methodSynthesize, ErrInvalidSpec, "len(dst)=%d < %d", len(dst), m*n)
	}

	// Stage 1: U first, then V, so the stream layout is fixed
	u, next, err := RandomOrthonormal(m, k, s)
	if err != nil {
		return s, wrapf(methodSynthesize, err, "U")
	}
	v, next, err := RandomOrthonormal(n, k, next)
	if err != nil {
		return s, wrapf(methodSynthesize, err, "V")
	}

	// Stage 2: U ← U·diag(sv)
	var j int
	for j = 0; j < k; j++ {
		if err = ops.Scal(m, sv[j], u[j*m:], 1); err != nil { // column j of U
			return s, wrapf(methodSynthesize, err, "")
		}
	}
	// Stage 3: A = U·Vᵀ
	if err = ops.Gemm(ops.NoTrans, ops.Trans, m, n, k, 1, u, m, v, n, 0, dst, m); err != nil {
		return s, wrapf(methodSynthesize, err, "")
	}

	return next, nil
}
