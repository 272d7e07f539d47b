// SPDX-License-Identifier: MIT
// Package: matgen/gen
//
// generate.go - the dispatcher.
//
// Design contract:
//   - One entry point: Generate(spec, dst, state, opts...).
//   - Total over Family: unknown tags fail with ErrUnsupportedFamily.
//   - Spec.Validate runs before dst is touched.
//   - On error the input state is returned unchanged.

package gen

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/matgen/buffer"
	"github.com/katalvlaran/matgen/diagnostics"
	"github.com/katalvlaran/matgen/rng"
)

// Result describes the matrix Generate produced.
type Result struct {
	Rows, Cols int    // shape written to dst; k×k on the diagonal path
	Rank       int    // nominal rank, or the measured one when Measured
	Measured   bool   // Rank comes from diagnostics.Rank
	Family     Family // construction used
	Diagonal   bool   // dst holds diag(s) only
}

// builderFunc builds one family into dst. Builders may assume spec is valid.
type builderFunc func(spec Spec, cfg config, dst *buffer.Dense, s rng.State) (Result, rng.State, error)

var builders = [familyCount]builderFunc{
	Polynomial:  buildProfile,
	Exponential: buildProfile,
	Gaussian:    buildGaussian,
	Staircase:   buildProfile,
	Spiked:      buildSpiked,
	Adversarial: buildAdversarial,
	BadCholQR:   buildProfile,
}

// Generate builds the matrix described by spec into dst and returns what was
// produced together with the advanced rng state. dst is resized as needed
// (its storage only grows) and fully overwritten.
//
// Implementation:
//   - Stage 1: validate (ErrUnsupportedFamily, ErrInvalidSpec).
//   - Stage 2: run the family builder.
//   - Stage 3: when spec.CheckTrueRank is set, replace the nominal rank with
//     diagnostics.Rank of the result.
//
// Errors: ErrInvalidSpec, ErrUnsupportedFamily, ErrInvalidSpec for a nil dst,
// and wrapped backend errors.
func Generate(spec Spec, dst *buffer.Dense, s rng.State, opts ...Option) (Result, rng.State, error) {
	if err := spec.Validate(); err != nil {
		return Result{}, s, wrapf(methodGenerate, err, "")
	}
	if dst == nil {
		return Result{}, s, wrapf(methodGenerate, ErrInvalidSpec, "nil destination")
	}
	cfg := newConfig(opts...)

	res, next, err := builders[spec.Family](spec, cfg, dst, s)
	if err != nil {
		return Result{}, s, wrapf(methodGenerate, err, "%v", spec.Family)
	}

	if spec.CheckTrueRank {
		rank, rerr := diagnostics.Rank(dst.Data(), res.Rows, res.Cols)
		if rerr != nil {
			return Result{}, s, wrapf(methodGenerate, rerr, "rank check")
		}
		res.Rank, res.Measured = rank, true
	}

	cfg.logger.Debug("matrix generated",
		zap.Stringer("family", spec.Family),
		zap.Int("rows", res.Rows),
		zap.Int("cols", res.Cols),
		zap.Int("rank", res.Rank),
		zap.Bool("measured", res.Measured),
		zap.Float64("cond", spec.CondNum),
		zap.Float64("scaling", spec.Scaling),
		zap.Stringer("rng", next),
	)

	return res, next, nil
}
