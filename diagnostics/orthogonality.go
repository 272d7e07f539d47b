// SPDX-License-Identifier: MIT
// Package diagnostics - orthonormality of leading columns.

package diagnostics

import (
	"fmt"

	"github.com/katalvlaran/matgen/ops"
)

// OrthoTolerance is the largest ‖QᵀQ − I‖_F accepted as orthonormal.
const OrthoTolerance = 1e-10

// Orthogonality reports how far the leading columns of a matrix are from
// orthonormal.
type Orthogonality struct {
	Residual    float64 // ‖A₁ᵀA₁ − I‖_F over the first k columns A₁
	Orthonormal bool    // Residual ≤ OrthoTolerance
}

// CheckOrthogonality forms the k×k Gram matrix of the first k columns of the
// column-major m×n matrix in a, subtracts the identity and measures the
// Frobenius norm of what is left.
//
// Errors: ErrInvalidArgument for a bad shape or k outside [1, n].
// Complexity: O(m·k²).
func CheckOrthogonality(a []float64, m, n, k int) (Orthogonality, error) {
	if err := checkMatrix(opOrtho, a, m, n); err != nil {
		return Orthogonality{}, err
	}
	if k < 1 || k > n {
		return Orthogonality{}, diagErrorf(opOrtho, ErrInvalidArgument, "k=%d not in [1,%d]", k, n)
	}

	g := make([]float64, k*k)
	if err := ops.SyrkGram(m, k, a, m, g); err != nil {
		return Orthogonality{}, fmt.Errorf("%s: %w", opOrtho, err)
	}
	var i int
	for i = 0; i < k; i++ {
		g[i+i*k]--
	}
	res, err := ops.Frobenius(k, k, g, k)
	if err != nil {
		return Orthogonality{}, fmt.Errorf("%s: %w", opOrtho, err)
	}

	return Orthogonality{Residual: res, Orthonormal: res <= OrthoTolerance}, nil
}
