// SPDX-License-Identifier: MIT
// Package spectrum: sentinel errors.

package spectrum

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidRank is returned when the profile length is not positive or
	// exceeds the available dimension.
	ErrInvalidRank = errors.New("spectrum: invalid rank")

	// ErrInvalidCond is returned for a condition number that is below 1, NaN
	// or infinite, and for a non-positive BadCholQR floor.
	ErrInvalidCond = errors.New("spectrum: invalid condition number")
)

// Profile tags used in wrapped errors.
const (
	opPoly  = "Polynomial"
	opExp   = "Exponential"
	opStep  = "Staircase"
	opChol  = "BadCholQR"
	opRatio = "Ratio"
)

// validate checks the arguments shared by every profile.
// Complexity: O(1).
func validate(op string, k int, cond float64) error {
	if k <= 0 {
		return fmt.Errorf("%s: k=%d: %w", op, k, ErrInvalidRank)
	}
	if math.IsNaN(cond) || math.IsInf(cond, 0) || cond < 1 {
		return fmt.Errorf("%s: cond=%g: %w", op, cond, ErrInvalidCond)
	}

	return nil
}
