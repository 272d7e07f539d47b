// SPDX-License-Identifier: MIT
// Package: matgen/gen
//
// impl_profile.go - builders for the spectrum families
// (Polynomial, Exponential, Staircase, BadCholQR).
//
// Contract:
//   - The profile comes from package spectrum and is deterministic.
//   - Diagonal fast path: dst becomes the k×k matrix diag(s). When neither
//     Rows nor Cols equals k the output shape differs from the Spec; Result
//     reports the shape actually produced.
//   - Otherwise dst becomes Rows×Cols = U·diag(s)·Vᵀ via Synthesize.
//   - BadCholQR embeds all Cols profile values, so its effective k is Cols.

package gen

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/matgen/buffer"
	"github.com/katalvlaran/matgen/rng"
	"github.com/katalvlaran/matgen/spectrum"
)

// Profile returns the singular-value profile a spectrum family would embed
// for spec, using the default BadCholQR floor unless opts override it.
//
// Errors: ErrUnsupportedFamily for families without a profile; spectrum
// errors for invalid rank or cond.
func Profile(spec Spec, opts ...Option) ([]float64, error) {
	return profileFor(spec, newConfig(opts...))
}

// profileFor dispatches to the spectrum generator of spec.Family.
func profileFor(spec Spec, cfg config) ([]float64, error) {
	switch spec.Family {
	case Polynomial:
		return spectrum.Polynomial(spec.Rank, spec.CondNum)
	case Exponential:
		return spectrum.Exponential(spec.Rank, spec.CondNum)
	case Staircase:
		return spectrum.Staircase(spec.Rank, spec.CondNum)
	case BadCholQR:
		return spectrum.BadCholQR(spec.Cols, spec.Rank, spec.CondNum, cfg.badCholQRFloor)
	default:
		return nil, wrapf("Profile", ErrUnsupportedFamily, "%v", spec.Family)
	}
}

// buildProfile implements the four spectrum families.
// Complexity: O(k) on the diagonal path, O(m·n·k) otherwise.
func buildProfile(spec Spec, cfg config, dst *buffer.Dense, s rng.State) (Result, rng.State, error) {
	sv, err := profileFor(spec, cfg)
	if err != nil {
		return Result{}, s, err
	}
	k := len(sv) // Cols for BadCholQR, Rank otherwise

	if spec.Diagonal {
		if err = dst.Resize(k, k); err != nil {
			return Result{}, s, err
		}
		if err = buffer.WriteDiagonal(dst.Data(), k, k, sv); err != nil {
			return Result{}, s, err
		}
		if spec.Rows != k && spec.Cols != k {
			cfg.logger.Debug("diagonal output reshaped",
				zap.Int("rows", spec.Rows), zap.Int("cols", spec.Cols), zap.Int("k", k))
		}

		return Result{Rows: k, Cols: k, Rank: k, Family: spec.Family, Diagonal: true}, s, nil
	}

	// orthogonal embedding
	if err = dst.Resize(spec.Rows, spec.Cols); err != nil {
		return Result{}, s, err
	}
	next, err := Synthesize(spec.Rows, spec.Cols, sv, dst.Data(), s)
	if err != nil {
		return Result{}, s, err
	}

	return Result{Rows: spec.Rows, Cols: spec.Cols, Rank: k, Family: spec.Family}, next, nil
}
