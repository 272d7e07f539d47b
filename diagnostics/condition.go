// SPDX-License-Identifier: MIT
// Package diagnostics - singular values, condition number, numerical rank.

package diagnostics

import (
	"fmt"
	"math"

	"github.com/katalvlaran/matgen/ops"
)

// Format tags the storage layout of a matrix handed to SingularValues and
// ConditionNumber.
type Format int

const (
	// Full is a dense column-major m×n buffer with leading dimension m.
	Full Format = iota
	// PackedUpper is the upper triangle of an n×n matrix in LAPACK packed
	// column-major order, n(n+1)/2 elements. The full matrix is m×n with
	// rows n..m-1 zero (m ≥ n).
	PackedUpper
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case Full:
		return "full"
	case PackedUpper:
		return "packed-upper"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// rankTolerance is the relative threshold below which a singular value is
// indistinguishable from zero.
const rankTolerance = 5 * 0x1p-52

// fullCopy returns a private column-major m×n copy of a in the given format.
func fullCopy(op string, a []float64, m, n int, format Format) ([]float64, error) {
	switch format {
	case Full:
		if err := checkMatrix(op, a, m, n); err != nil {
			return nil, err
		}
		cp := make([]float64, m*n)
		copy(cp, a)

		return cp, nil
	case PackedUpper:
		if m < n || n < 1 {
			return nil, diagErrorf(op, ErrInvalidArgument, "packed %dx%d needs m ≥ n ≥ 1", m, n)
		}
		cp := make([]float64, m*n)
		if err := ops.PackedUpperToFull(n, a, cp, m); err != nil {
			return nil, diagErrorf(op, ErrInvalidArgument, "%v", err)
		}

		return cp, nil
	default:
		return nil, diagErrorf(op, ErrUnknownFormat, "%v", format)
	}
}

// SingularValues returns the min(m,n) singular values of A in descending
// order. A is read through an explicit copy and left untouched.
//
// Errors: ErrInvalidArgument, ErrUnknownFormat, wrapped
// ops.ErrFactorizationFailed.
// Complexity: O(m·n·min(m,n)).
func SingularValues(a []float64, m, n int, format Format) ([]float64, error) {
	cp, err := fullCopy(opSingular, a, m, n, format)
	if err != nil {
		return nil, err
	}
	s := make([]float64, min(m, n))
	if err = ops.SingularValues(m, n, cp, m, s); err != nil {
		return nil, fmt.Errorf("%s: %w", opSingular, err)
	}

	return s, nil
}

// ConditionNumber returns σ_max/σ_min of A over its min(m,n) singular values.
// A rank-deficient matrix yields +Inf.
// Complexity: O(m·n·min(m,n)).
func ConditionNumber(a []float64, m, n int, format Format) (float64, error) {
	s, err := SingularValues(a, m, n, format)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opCond, err)
	}
	if s[len(s)-1] == 0 {
		return math.Inf(1), nil
	}

	return s[0] / s[len(s)-1], nil
}

// Rank returns the numerical rank of the column-major m×n matrix A: the
// number of singular values with σ_i/σ_0 > 5·ε. The zero matrix has rank 0.
// Complexity: O(m·n·min(m,n)).
func Rank(a []float64, m, n int) (int, error) {
	s, err := SingularValues(a, m, n, Full)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opRank, err)
	}
	if s[0] == 0 {
		return 0, nil
	}
	var r int
	for r = 0; r < len(s); r++ {
		if s[r]/s[0] <= rankTolerance {
			break
		}
	}

	return r, nil
}
