// SPDX-License-Identifier: MIT
// Package: matgen/gen
//
// impl_gaussian.go - i.i.d. N(0,1) matrices straight from the rng.

package gen

import (
	"github.com/katalvlaran/matgen/buffer"
	"github.com/katalvlaran/matgen/rng"
)

// buildGaussian fills dst with Rows×Cols standard normal entries. Rank and
// CondNum are ignored; the nominal rank is min(Rows, Cols).
// Complexity: O(m·n).
func buildGaussian(spec Spec, _ config, dst *buffer.Dense, s rng.State) (Result, rng.State, error) {
	if err := dst.Resize(spec.Rows, spec.Cols); err != nil {
		return Result{}, s, err
	}
	next, err := rng.FillDense(rng.DenseDist{Rows: spec.Rows, Cols: spec.Cols}, dst.Data(), s)
	if err != nil {
		return Result{}, s, err
	}

	return Result{Rows: spec.Rows, Cols: spec.Cols, Rank: min(spec.Rows, spec.Cols), Family: Gaussian}, next, nil
}
