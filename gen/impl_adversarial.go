// SPDX-License-Identifier: MIT
// Package: matgen/gen
//
// impl_adversarial.go - numerically rank-deficient matrices that standard
// rank estimators undercount.
//
// Construction (A = U·R):
//   - Stage 1: Gaussian U (m×n) then Gaussian V (n×n).
//   - Stage 2: multiply the first adversarialRows rows of U by Spec.Scaling.
//   - Stage 3: orthonormalize U and V with Householder QR.
//   - Stage 4: R ← upper triangle of V; R[i,i] *= adversarialPerturbation for
//     i ≥ adversarialPerturbFrom.
//   - Stage 5: A = U·R with one Gemm.
//
// The row count, starting index and perturbation are reproduced exactly from
// the published construction and exposed only as options.

package gen

import (
	"github.com/katalvlaran/matgen/buffer"
	"github.com/katalvlaran/matgen/ops"
	"github.com/katalvlaran/matgen/rng"
)

const methodAdversarial = "Adversarial"

// buildAdversarial requires Rows ≥ Cols (checked by Spec.Validate).
// Complexity: O(m·n²).
func buildAdversarial(spec Spec, cfg config, dst *buffer.Dense, s rng.State) (Result, rng.State, error) {
	m, n := spec.Rows, spec.Cols // tall: m ≥ n

	// Stage 1: Gaussian factors, U before V
	u := make([]float64, m*n)
	next, err := rng.FillDense(rng.DenseDist{Rows: m, Cols: n}, u, s)
	if err != nil {
		return Result{}, s, wrapf(methodAdversarial, err, "U")
	}
	v := make([]float64, n*n)
	if next, err = rng.FillDense(rng.DenseDist{Rows: n, Cols: n}, v, next); err != nil {
		return Result{}, s, wrapf(methodAdversarial, err, "V")
	}

	// Stage 2: heavy leading rows of U
	scaled := min(cfg.adversarialRows, m) // rows multiplied by sigma
	var j int
	for j = 0; j < n; j++ {
		if err = ops.Scal(scaled, spec.Scaling, u[j*m:], 1); err != nil {
			return Result{}, s, wrapf(methodAdversarial, err, "")
		}
	}

	// Stage 3: orthonormalize both factors
	if err = ops.OrthonormalizeColumns(m, n, u, m); err != nil {
		return Result{}, s, wrapf(methodAdversarial, err, "U")
	}
	if err = ops.OrthonormalizeColumns(n, n, v, n); err != nil {
		return Result{}, s, wrapf(methodAdversarial, err, "V")
	}

	// Stage 4: R = triu(V) with a shrunken trailing diagonal
	r, err := buffer.UpperTriangle(v, n, n)
	if err != nil {
		return Result{}, s, wrapf(methodAdversarial, err, "")
	}
	var i int
	for i = cfg.adversarialPerturbFrom; i < n; i++ {
		r[i+i*n] *= cfg.adversarialPerturbation // R[i][i]
	}

	if err = dst.Resize(m, n); err != nil {
		return Result{}, s, err
	}
	// Stage 5: A = U·R
	if err = ops.Gemm(ops.NoTrans, ops.NoTrans, m, n, n, 1, u, m, r, n, 0, dst.Data(), m); err != nil {
		return Result{}, s, wrapf(methodAdversarial, err, "")
	}

	return Result{Rows: m, Cols: n, Rank: n, Family: Adversarial}, next, nil
}
