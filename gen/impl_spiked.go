// SPDX-License-Identifier: MIT
// Package: matgen/gen
//
// impl_spiked.go - matrices with highly coherent left singular vectors.
//
// Construction:
//   - Stage 1: sample ⌊n/2⌋ distinct rows of [0, m) as the row pattern of a
//     tall m×1 sparse operator (one long-axis vector).
//   - Stage 2: draw an n×n Gaussian matrix and orthonormalize it to V.
//   - Stage 3: stack copies of V down the m rows; the m mod n rows left over
//     stay zero.
//   - Stage 4: multiply every sampled row by Spec.Scaling.
//
// The result is full rank with a condition number of roughly Scaling, and its
// dominant singular vectors concentrate on a few rows, which is what makes
// such matrices hard to sketch.
//
// Determinism: the row sample is drawn before V.

package gen

import (
	"github.com/katalvlaran/matgen/buffer"
	"github.com/katalvlaran/matgen/rng"
)

const methodSpiked = "Spiked"

// buildSpiked requires Rows ≥ Cols (checked by Spec.Validate).
// Complexity: O(n³ + m·n).
func buildSpiked(spec Spec, _ config, dst *buffer.Dense, s rng.State) (Result, rng.State, error) {
	m, n := spec.Rows, spec.Cols // tall: m ≥ n

	// Stage 1: spiked rows
	rows, next, err := rng.SampleWithoutReplacement(m, n/2, s)
	if err != nil {
		return Result{}, s, wrapf(methodSpiked, err, "")
	}
	// Stage 2: orthonormal basis
	v, next, err := RandomOrthonormal(n, n, next)
	if err != nil {
		return Result{}, s, wrapf(methodSpiked, err, "")
	}

	if err = dst.Resize(m, n); err != nil {
		return Result{}, s, err
	}
	// Stage 3: stack copies of V; Resize left the leftover rows zero
	var (
		a        = dst.Data()
		start, j int // block offset, column index
	)
	for start = 0; start+n <= m; start += n {
		for j = 0; j < n; j++ {
			copy(a[start+j*m:start+j*m+n], v[j*n:(j+1)*n]) // V[:, j] into rows start..start+n-1
		}
	}
	// Stage 4: apply the spike
	for _, r := range rows {
		for j = 0; j < n; j++ {
			a[r+j*m] *= spec.Scaling // row r, column j
		}
	}

	return Result{Rows: m, Cols: n, Rank: n, Family: Spiked}, next, nil
}
