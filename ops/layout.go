// SPDX-License-Identifier: MIT
// Package ops: column-major ↔ row-major views.

package ops

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// Re-exported transpose flags so callers need not import gonum/blas.
const (
	NoTrans = blas.NoTrans
	Trans   = blas.Trans
)

// checkGeneral validates a column-major rows×cols operand with leading
// dimension ld stored in a.
// Complexity: O(1).
func checkGeneral(op string, rows, cols, ld int, a []float64) error {
	if rows < 0 || cols < 0 {
		return opsErrorf(op, ErrDimensionMismatch, "%s shape %dx%d", opGeneral, rows, cols)
	}
	if ld < max(1, rows) {
		return opsErrorf(op, ErrDimensionMismatch, "ld=%d < rows=%d", ld, rows)
	}
	if rows == 0 || cols == 0 {
		return nil
	}
	if need := (cols-1)*ld + rows; len(a) < need {
		return opsErrorf(op, ErrDimensionMismatch, "len=%d < %d", len(a), need)
	}

	return nil
}

// checkVector validates a dense vector of n elements with increment inc.
// Complexity: O(1).
func checkVector(op string, n, inc int, x []float64) error {
	if n < 0 || inc == 0 {
		return opsErrorf(op, ErrDimensionMismatch, "%s n=%d inc=%d", opVector, n, inc)
	}
	if n == 0 {
		return nil
	}
	if inc < 0 {
		inc = -inc
	}
	if need := (n-1)*inc + 1; len(x) < need {
		return opsErrorf(op, ErrDimensionMismatch, "%s len=%d < %d", opVector, len(x), need)
	}

	return nil
}

// transposedView exposes a column-major rows×cols block with leading
// dimension ld as the row-major cols×rows matrix (the transpose) that gonum
// understands. No data is copied.
func transposedView(rows, cols, ld int, a []float64) blas64.General {
	return blas64.General{Rows: cols, Cols: rows, Stride: max(1, ld), Data: a}
}

// vec wraps x as a gonum vector.
func vec(n, inc int, x []float64) blas64.Vector {
	return blas64.Vector{N: n, Inc: inc, Data: x}
}

// flip swaps NoTrans and Trans; used when a column-major operand is passed to
// gonum through its transposed view.
func flip(t blas.Transpose) blas.Transpose {
	if t == blas.NoTrans {
		return blas.Trans
	}

	return blas.NoTrans
}
