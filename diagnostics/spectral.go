// SPDX-License-Identifier: MIT
// Package diagnostics - spectral norm by power iteration.

package diagnostics

import (
	"fmt"
	"math"

	"github.com/katalvlaran/matgen/ops"
	"github.com/katalvlaran/matgen/rng"
)

// SpectralNorm estimates ‖A‖₂ for the column-major m×n matrix in a with p
// steps of power iteration on AᵀA, starting from a Gaussian vector drawn
// from s.
//
// Implementation:
//   - v ← N(0, I_n); c ← 1.
//   - repeat p times: w ← A·v; v ← c·Aᵀ·w; c ← 1/‖v‖.
//   - return √‖v‖.
//
// After the first step v is the image of a unit vector, so ‖v‖ tends to σ₁²
// as p grows. Convergence is not checked; choose p from the expected gap
// σ₂/σ₁. A zero matrix returns 0.
//
// Errors: ErrInvalidArgument for a bad shape or p < 1.
// Complexity: O(p·m·n).
func SpectralNorm(a []float64, m, n, p int, s rng.State) (float64, rng.State, error) {
	if err := checkMatrix(opSpectral, a, m, n); err != nil {
		return 0, s, err
	}
	if p < 1 {
		return 0, s, diagErrorf(opSpectral, ErrInvalidArgument, "p=%d", p)
	}

	v, next, err := rng.Normal(n, s)
	if err != nil {
		return 0, s, fmt.Errorf("%s: %w", opSpectral, err)
	}
	w := make([]float64, m)
	c := 1.0
	var nrm float64
	var i int
	for i = 0; i < p; i++ {
		if err = ops.Gemv(ops.NoTrans, m, n, 1, a, m, v, 0, w); err != nil {
			return 0, s, fmt.Errorf("%s: %w", opSpectral, err)
		}
		if err = ops.Gemv(ops.Trans, m, n, c, a, m, w, 0, v); err != nil {
			return 0, s, fmt.Errorf("%s: %w", opSpectral, err)
		}
		if nrm, err = ops.Nrm2(n, v, 1); err != nil {
			return 0, s, fmt.Errorf("%s: %w", opSpectral, err)
		}
		if nrm == 0 {
			return 0, next, nil
		}
		c = 1 / nrm
	}

	return math.Sqrt(nrm), next, nil
}
