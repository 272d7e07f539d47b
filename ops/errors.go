// SPDX-License-Identifier: MIT
// Package ops: sentinel errors.
//
// Callers branch with errors.Is; call sites attach the routine name with
// opsErrorf so messages read "Gemm: lda=3 < m=4: ops: dimension mismatch".

package ops

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch is returned when sizes, leading dimensions or slice
	// lengths are inconsistent with the requested operation.
	ErrDimensionMismatch = errors.New("ops: dimension mismatch")

	// ErrFactorizationFailed is returned when a LAPACK routine reports failure
	// (SVD did not converge, LU hit an exactly zero pivot).
	ErrFactorizationFailed = errors.New("ops: factorization failed")
)

// Routine tags used in wrapped errors.
const (
	opCopy     = "Copy"
	opScal     = "Scal"
	opAxpy     = "Axpy"
	opDot      = "Dot"
	opNrm2     = "Nrm2"
	opSwap     = "Swap"
	opGemv     = "Gemv"
	opGemm     = "Gemm"
	opSyrk     = "SyrkGram"
	opQR       = "QR"
	opQ        = "ExplicitQ"
	opOrth     = "OrthonormalizeColumns"
	opLU       = "LU"
	opSVD      = "SingularValues"
	opFrob     = "Frobenius"
	opUnpack   = "PackedUpperToFull"
	opPack     = "FullToPackedUpper"
	opGeneral  = "general"
	opVector   = "vector"
	errPattern = "%s: %s: %w"
)

// opsErrorf wraps err with the routine tag and a formatted detail.
func opsErrorf(op string, err error, format string, args ...interface{}) error {
	return fmt.Errorf(errPattern, op, fmt.Sprintf(format, args...), err)
}
