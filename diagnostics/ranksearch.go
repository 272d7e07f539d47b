// SPDX-License-Identifier: MIT
// Package diagnostics - truncation rank by bisection over trailing-block norms.

package diagnostics

import (
	"fmt"
	"math"

	"github.com/katalvlaran/matgen/ops"
)

// NormOracle returns ‖A[k:, :]‖_F, the Frobenius norm of the block left after
// dropping the first k rows (k in [0, n]). It should be close to
// non-increasing in k but need not be exactly so at working precision.
type NormOracle func(k int) float64

// RankSearchBinary returns a k in [1, n] with oracle(k) ≤ tau·normA, never
// smaller than the least k that passes that test.
//
// Implementation:
//   - Stage 1: bisection on (lo, hi]; hi starts at n, whose trailing block is
//     empty. The search ends on the last index it tested, which may still
//     fail the threshold.
//   - Stage 2: linear correction. Walk k upward from that index while
//     oracle(k) exceeds the threshold, so the answer is never an index that
//     failed its own test.
//
// For a monotone oracle the result is exactly the smallest passing k.
//
// Errors: ErrInvalidArgument for n < 1, negative or NaN normA/tau, or a nil
// oracle.
// Complexity: O(log n) oracle calls plus the length of the correction walk.
func RankSearchBinary(n int, normA, tau float64, oracle NormOracle) (int, error) {
	if n < 1 || oracle == nil {
		return 0, diagErrorf(opSearch, ErrInvalidArgument, "n=%d oracle=%t", n, oracle != nil)
	}
	if !(normA >= 0) || !(tau >= 0) {
		return 0, diagErrorf(opSearch, ErrInvalidArgument, "normA=%g tau=%g", normA, tau)
	}
	thr := tau * normA

	var (
		lo, hi = 0, n // oracle(lo) fails or lo == 0; oracle(hi) passes or hi == n
		k      = n    // last index tested
	)
	for hi-lo > 1 {
		k = lo + (hi-lo)/2 // midpoint
		if oracle(k) > thr {
			lo = k // rank is larger
		} else {
			hi = k // rank is at most k
		}
	}

	// k is either hi or lo == hi-1; from a failing lo the walk steps up.
	for k < n && oracle(k) > thr {
		k++
	}

	return k, nil
}

// TrailingRowsNorm returns the NormOracle k ↦ ‖A[k:, :]‖_F for the
// column-major m×n matrix in a. The oracle reads a in place; the caller must
// not modify a while the oracle is in use. Rows beyond m give 0.
// Complexity: O(1) to build; each call O((m−k)·n).
func TrailingRowsNorm(a []float64, m, n int) (NormOracle, error) {
	if err := checkMatrix(opTrailing, a, m, n); err != nil {
		return nil, err
	}

	return func(k int) float64 {
		if k >= m {
			return 0
		}
		k = max(k, 0)
		nrm, err := ops.Frobenius(m-k, n, a[k:], m)
		if err != nil {
			return math.Inf(1)
		}

		return nrm
	}, nil
}

// TruncationRank is RankSearchBinary over the rows of an n×n triangular
// factor r (for example the R of a QR factorization) with normA = ‖r‖_F.
// Complexity: O(n² log n).
func TruncationRank(r []float64, n int, tau float64) (int, error) {
	oracle, err := TrailingRowsNorm(r, n, n)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opTruncation, err)
	}
	k, err := RankSearchBinary(n, oracle(0), tau, oracle)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opTruncation, err)
	}

	return k, nil
}
