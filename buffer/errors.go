// SPDX-License-Identifier: MIT
// Package buffer: sentinel errors.
//
// Every message is prefixed with "buffer: ..." so it greps well in logs.
// Call sites attach the helper name with bufferErrorf; callers match with
// errors.Is.

package buffer

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for negative sizes, buffers shorter than
	// the declared shape and index arrays that are not valid permutations.
	ErrInvalidArgument = errors.New("buffer: invalid argument")

	// ErrOutOfRange indicates that a row or column index is outside the
	// matrix. Dense.At and Dense.Set return it instead of panicking.
	ErrOutOfRange = errors.New("buffer: index out of range")
)

// Helper tags used in wrapped errors.
const (
	opEnsure    = "EnsureCapacity"
	opReshape   = "ReshapeRows"
	opExtract   = "ExtractDiagonal"
	opWrite     = "WriteDiagonal"
	opEye       = "Eye"
	opLower     = "LowerToUnit"
	opUpper     = "UpperTriangle"
	opZeroBelow = "ZeroBelowDiagonal"
	opPermute   = "PermuteColumns"
	opInverse   = "InversePermutation"
	opNormalize = "NormalizeColumns"
	opTranspose = "TransposeSquare"
	opCompact   = "CompactStride"
	opNewDense  = "NewDense"
	errPattern  = "%s: %s: %w"
)

// bufferErrorf wraps err with the helper tag and a formatted detail.
func bufferErrorf(op string, err error, format string, args ...interface{}) error {
	return fmt.Errorf(errPattern, op, fmt.Sprintf(format, args...), err)
}

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// checkShape validates a rows×cols column-major operand held in buf.
// Complexity: O(1).
func checkShape(op string, buf []float64, rows, cols int) error {
	if rows < 0 || cols < 0 {
		return bufferErrorf(op, ErrInvalidArgument, "shape %dx%d", rows, cols)
	}
	if len(buf) < rows*cols {
		return bufferErrorf(op, ErrInvalidArgument, "len=%d < %dx%d", len(buf), rows, cols)
	}

	return nil
}
