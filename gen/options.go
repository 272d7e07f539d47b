// SPDX-License-Identifier: MIT
// Package: matgen/gen
//
// options.go - functional options for Generate.
//
// Contract:
//   - Options are functional (type Option func(*config)).
//   - Option constructors validate and panic on meaningless inputs;
//     Generate itself never panics on user input.
//   - Later options override earlier ones.

package gen

import (
	"go.uber.org/zap"
)

// Option customizes a Generate call.
type Option func(*config)

// WithLogger routes debug records (family, shape, rank, cond, rng state)
// to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("gen: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithAdversarialRows sets how many leading rows of the Adversarial left
// factor are multiplied by Spec.Scaling (default 10). Panics if n < 0.
func WithAdversarialRows(n int) Option {
	if n < 0 {
		panic("gen: WithAdversarialRows(n<0)")
	}
	return func(c *config) { c.adversarialRows = n }
}

// WithAdversarialPerturbFrom sets the first diagonal index of the Adversarial
// right factor that is multiplied by the perturbation (default 11).
// Panics if i < 0.
func WithAdversarialPerturbFrom(i int) Option {
	if i < 0 {
		panic("gen: WithAdversarialPerturbFrom(i<0)")
	}
	return func(c *config) { c.adversarialPerturbFrom = i }
}

// WithAdversarialPerturbation sets the factor applied to the perturbed
// diagonal entries (default 10e-3). Panics if p <= 0.
func WithAdversarialPerturbation(p float64) Option {
	if !(p > 0) {
		panic("gen: WithAdversarialPerturbation(p<=0)")
	}
	return func(c *config) { c.adversarialPerturbation = p }
}

// WithBadCholQRFloor sets the floor whose reciprocal starts the BadCholQR tail
// (default spectrum.BadCholQRFloor = 1e8). Panics if floor <= 0.
func WithBadCholQRFloor(floor float64) Option {
	if !(floor > 0) {
		panic("gen: WithBadCholQRFloor(floor<=0)")
	}
	return func(c *config) { c.badCholQRFloor = floor }
}
