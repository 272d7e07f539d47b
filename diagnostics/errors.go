// SPDX-License-Identifier: MIT
// Package diagnostics: sentinel errors.

package diagnostics

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for non-positive shapes, short buffers,
	// negative tolerances or iteration counts and nil oracles.
	ErrInvalidArgument = errors.New("diagnostics: invalid argument")

	// ErrUnknownFormat is returned for a Format value other than Full or
	// PackedUpper.
	ErrUnknownFormat = errors.New("diagnostics: unknown storage format")
)

// Diagnostic tags used in wrapped errors.
const (
	opSingular   = "SingularValues"
	opCond       = "ConditionNumber"
	opRank       = "Rank"
	opSearch     = "RankSearchBinary"
	opTrailing   = "TrailingRowsNorm"
	opTruncation = "TruncationRank"
	opOrtho      = "Orthogonality"
	opSpectral   = "SpectralNorm"
)

// diagErrorf wraps err with the diagnostic tag and a formatted detail.
func diagErrorf(op string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), err)
}

// checkMatrix validates a column-major m×n operand held in a.
func checkMatrix(op string, a []float64, m, n int) error {
	if m < 1 || n < 1 {
		return diagErrorf(op, ErrInvalidArgument, "shape %dx%d", m, n)
	}
	if len(a) < m*n {
		return diagErrorf(op, ErrInvalidArgument, "len=%d < %dx%d", len(a), m, n)
	}

	return nil
}
