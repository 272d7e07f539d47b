// SPDX-License-Identifier: MIT
// Package: matgen/gen
//
// spec.go - the declarative matrix request.
//
// Defaults (mirroring the generator's historical behaviour):
//   - Rank    = Cols
//   - CondNum = 1
//   - Scaling = 1
//   - Diagonal, CheckTrueRank = false

package gen

import (
	"math"

	"github.com/katalvlaran/matgen/spectrum"
)

// Spec is a declarative request for one matrix.
type Spec struct {
	Rows   int    // m
	Cols   int    // n
	Rank   int    // k, target rank for the profile families
	Family Family // construction

	// CondNum is the target ratio σ_max/σ_min for the profile families.
	CondNum float64
	// Scaling is the spike magnitude (Spiked) or the row scale sigma
	// (Adversarial). Other families ignore it.
	Scaling float64

	// Diagonal asks the profile families to emit the k×k diagonal matrix
	// diag(s) instead of an orthogonal embedding.
	Diagonal bool
	// CheckTrueRank replaces the nominal rank in Result with the numerical
	// rank measured after construction.
	CheckTrueRank bool
}

// SpecOption adjusts a Spec built by NewSpec.
type SpecOption func(*Spec)

// NewSpec returns an m×n Spec for family with the documented defaults, then
// applies opts in order.
// Complexity: O(len(opts)).
func NewSpec(m, n int, family Family, opts ...SpecOption) Spec {
	s := Spec{
		Rows:    m,
		Cols:    n,
		Rank:    n,
		Family:  family,
		CondNum: 1,
		Scaling: 1,
	}
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// WithRank sets the target rank. Panics if k <= 0.
func WithRank(k int) SpecOption {
	if k <= 0 {
		panic("gen: WithRank(k<=0)")
	}
	return func(s *Spec) { s.Rank = k }
}

// WithCond sets the target condition number. Panics if cond < 1 or NaN.
func WithCond(cond float64) SpecOption {
	if !(cond >= 1) {
		panic("gen: WithCond(cond<1)")
	}
	return func(s *Spec) { s.CondNum = cond }
}

// WithScaling sets the spike magnitude or adversarial sigma. Panics on a
// non-finite value.
func WithScaling(scale float64) SpecOption {
	if math.IsNaN(scale) || math.IsInf(scale, 0) {
		panic("gen: WithScaling(non-finite)")
	}
	return func(s *Spec) { s.Scaling = scale }
}

// WithDiagonal requests the k×k diagonal fast path.
func WithDiagonal() SpecOption {
	return func(s *Spec) { s.Diagonal = true }
}

// WithCheckTrueRank requests a measured rank in Result.
func WithCheckTrueRank() SpecOption {
	return func(s *Spec) { s.CheckTrueRank = true }
}

// Validate checks s against the constraints of its family.
//
// Rules:
//   - Rows, Cols ≥ 1.
//   - Profile families: CondNum finite and ≥ 1.
//   - Polynomial, Exponential, Staircase: 1 ≤ Rank ≤ min(Rows, Cols).
//   - Staircase with Rank ≥ 4: CondNum ≥ spectrum.StaircaseMinCond.
//   - BadCholQR: 1 ≤ Rank ≤ Cols ≤ Rows (the full n-value profile is embedded).
//   - Spiked, Adversarial: Rows ≥ Cols and a finite Scaling.
//
// Errors: ErrUnsupportedFamily for an unknown family, ErrInvalidSpec otherwise.
// Complexity: O(1).
func (s Spec) Validate() error {
	if !s.Family.Valid() {
		return wrapf(methodValidate, ErrUnsupportedFamily, "%v", s.Family)
	}
	if s.Rows < 1 || s.Cols < 1 {
		return wrapf(methodValidate, ErrInvalidSpec, "shape %dx%d", s.Rows, s.Cols)
	}

	switch s.Family {
	case Polynomial, Exponential, Staircase:
		if s.Rank < 1 || s.Rank > min(s.Rows, s.Cols) {
			return wrapf(methodValidate, ErrInvalidSpec, "%v: rank=%d not in [1,%d]", s.Family, s.Rank, min(s.Rows, s.Cols))
		}
		if s.Family == Staircase && s.Rank >= 4 && s.CondNum < spectrum.StaircaseMinCond {
			return wrapf(methodValidate, ErrInvalidSpec, "%v: cond=%g < %d with four bands", s.Family, s.CondNum, spectrum.StaircaseMinCond)
		}
	case BadCholQR:
		if s.Rank < 1 || s.Rank > s.Cols {
			return wrapf(methodValidate, ErrInvalidSpec, "%v: rank=%d not in [1,%d]", s.Family, s.Rank, s.Cols)
		}
		if s.Cols > s.Rows {
			return wrapf(methodValidate, ErrInvalidSpec, "%v: cols=%d > rows=%d", s.Family, s.Cols, s.Rows)
		}
	case Spiked, Adversarial:
		if s.Cols > s.Rows {
			return wrapf(methodValidate, ErrInvalidSpec, "%v: cols=%d > rows=%d", s.Family, s.Cols, s.Rows)
		}
		if math.IsNaN(s.Scaling) || math.IsInf(s.Scaling, 0) {
			return wrapf(methodValidate, ErrInvalidSpec, "%v: scaling=%g", s.Family, s.Scaling)
		}
	}

	if s.Family.usesProfile() && (math.IsNaN(s.CondNum) || math.IsInf(s.CondNum, 0) || s.CondNum < 1) {
		return wrapf(methodValidate, ErrInvalidSpec, "%v: cond=%g", s.Family, s.CondNum)
	}

	return nil
}
