// SPDX-License-Identifier: MIT
// Package spectrum - closed-form singular-value profiles.

package spectrum

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// BadCholQRFloor is the default magnitude 1/floor at which the BadCholQR tail
// starts.
const BadCholQRFloor = 1e8

// StaircaseMinCond is the smallest condition number a four-band Staircase
// accepts. Below it the 8/cond band would rise above the leading 1.
const StaircaseMinCond = 8

// flatFraction is the share of leading entries pinned at 1 by the decaying
// profiles.
const flatFraction = 0.1

// ones returns a slice of n ones.
func ones(n int) []float64 {
	s := make([]float64, n)
	floats.AddConst(1, s)

	return s
}

// Polynomial returns k values whose first ⌊0.1k⌋ entries are 1 and whose tail
// decays as 1/i^t (i = 1, 2, … within the tail), with t = log(cond)/log(k−offset)
// so that the last entry is 1/cond.
//
// When the tail has a single entry the exponent is undefined and the whole
// profile is 1.
//
// Complexity: O(k).
func Polynomial(k int, cond float64) ([]float64, error) {
	if err := validate(opPoly, k, cond); err != nil {
		return nil, err
	}
	s := ones(k)
	offset := int(math.Floor(float64(k) * flatFraction))
	if k-offset <= 1 {
		return s, nil
	}
	t := math.Log(cond) / math.Log(float64(k-offset))
	var i int
	for i = offset; i < k; i++ {
		s[i] = 1 / math.Pow(float64(i-offset+1), t)
	}

	return s, nil
}

// Exponential returns k values whose first max(⌊0.1k⌋, 1) entries are 1 and
// whose tail decays as exp(−t·i), t = ln(cond)/(k−offset), ending at 1/cond.
// Complexity: O(k).
func Exponential(k int, cond float64) ([]float64, error) {
	if err := validate(opExp, k, cond); err != nil {
		return nil, err
	}
	s := ones(k)
	offset := max(int(math.Floor(float64(k)*flatFraction)), 1)
	if offset >= k {
		return s, nil
	}
	t := -math.Log(1/cond) / float64(k-offset)
	var i int
	for i = offset; i < k; i++ {
		s[i] = math.Exp(-t * float64(i-offset+1))
	}

	return s, nil
}

// Staircase returns k values in four bands at 1, 8/cond, 4/cond and 1/cond.
// The first three bands hold ⌊k/4⌋ entries each and the last takes the rest.
// Below four entries the bands collapse to a leading 1 followed by 1/cond.
//
// Errors: ErrInvalidRank for k ≤ 0; ErrInvalidCond for a bad cond, or for
// cond < StaircaseMinCond once k ≥ 4 (the profile must stay non-increasing).
// Complexity: O(k).
func Staircase(k int, cond float64) ([]float64, error) {
	if err := validate(opStep, k, cond); err != nil {
		return nil, err
	}
	q := k / 4 // band width
	if q > 0 && cond < StaircaseMinCond {
		return nil, fmt.Errorf("%s: k=%d cond=%g < %d: %w", opStep, k, cond, StaircaseMinCond, ErrInvalidCond)
	}
	s := make([]float64, k)
	if q == 0 {
		floats.AddConst(1/cond, s)
		s[0] = 1

		return s, nil
	}
	levels := [4]float64{1, 8 / cond, 4 / cond, 1 / cond}
	var band int
	var lo, hi int
	for band = 0; band < len(levels); band++ {
		lo, hi = band*q, (band+1)*q
		if band == len(levels)-1 {
			hi = k
		}
		floats.AddConst(levels[band], s[lo:hi])
	}

	return s, nil
}

// BadCholQR returns n values: k leading ones followed by a tail
// exp(t)/floor · exp(−t·i), t = ln(floor/cond)/(1−(n−k)), which runs from
// 1/floor to 1/cond. The spread makes Cholesky-based QR lose orthogonality
// while the matrix stays well-posed in exact arithmetic. A single-entry tail
// is set to 1/cond.
//
// Errors: ErrInvalidRank unless 0 < k ≤ n; ErrInvalidCond for a bad cond or
// floor ≤ 0.
// Complexity: O(n).
func BadCholQR(n, k int, cond, floor float64) ([]float64, error) {
	if err := validate(opChol, k, cond); err != nil {
		return nil, err
	}
	if k > n {
		return nil, fmt.Errorf("%s: k=%d > n=%d: %w", opChol, k, n, ErrInvalidRank)
	}
	if !(floor > 0) || math.IsInf(floor, 0) {
		return nil, fmt.Errorf("%s: floor=%g: %w", opChol, floor, ErrInvalidCond)
	}
	s := ones(n)
	tail := n - k
	switch tail {
	case 0:
		return s, nil
	case 1:
		s[k] = 1 / cond

		return s, nil
	}
	t := math.Log(floor/cond) / float64(1-tail)
	lead := math.Exp(t) / floor
	var i int
	for i = k; i < n; i++ {
		s[i] = lead * math.Exp(-t*float64(i-k+1))
	}

	return s, nil
}

// Ratio returns max(s)/min(s), the condition number a profile encodes.
// Errors: ErrInvalidRank for an empty profile.
// Complexity: O(len(s)).
func Ratio(s []float64) (float64, error) {
	if len(s) == 0 {
		return 0, fmt.Errorf("%s: empty profile: %w", opRatio, ErrInvalidRank)
	}

	return floats.Max(s) / floats.Min(s), nil
}
