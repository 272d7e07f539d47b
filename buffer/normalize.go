// SPDX-License-Identifier: MIT
// Package buffer: column normalization.

package buffer

import "gonum.org/v1/gonum/floats"

// NormalizeColumns writes into dst the columns of the column-major rows×cols
// matrix in buf, each divided by its Euclidean norm. A column whose norm is
// zero is written as zeros instead of being divided. dst may alias buf.
//
// Errors: ErrInvalidArgument for a bad shape or a short dst.
// Complexity: O(rows·cols).
func NormalizeColumns(buf []float64, rows, cols int, dst []float64) error {
	if err := checkShape(opNormalize, buf, rows, cols); err != nil {
		return err
	}
	if len(dst) < rows*cols {
		return bufferErrorf(opNormalize, ErrInvalidArgument, "dst len=%d < %dx%d", len(dst), rows, cols)
	}
	var j int
	var col, out []float64
	var nrm float64
	for j = 0; j < cols; j++ {
		col = buf[j*rows : (j+1)*rows]
		out = dst[j*rows : (j+1)*rows]
		nrm = floats.Norm(col, 2)
		if nrm == 0 {
			clear(out)
			continue
		}
		floats.ScaleTo(out, 1/nrm, col)
	}

	return nil
}
