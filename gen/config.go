// SPDX-License-Identifier: MIT
// Package: matgen/gen
//
// config.go - resolved knobs and their defaults.
//
// Defaults:
//   - logger                  = zap.NewNop() (silent)
//   - adversarialRows         = 10
//   - adversarialPerturbFrom  = 11
//   - adversarialPerturbation = 10e-3
//   - badCholQRFloor          = spectrum.BadCholQRFloor

package gen

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/matgen/spectrum"
)

const (
	defaultAdversarialRows         = 10
	defaultAdversarialPerturbFrom  = 11
	defaultAdversarialPerturbation = 10e-3
)

// config is passed by value to builders.
type config struct {
	logger *zap.Logger

	adversarialRows         int
	adversarialPerturbFrom  int
	adversarialPerturbation float64
	badCholQRFloor          float64
}

// newConfig applies opts over the defaults in order.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		logger:                  zap.NewNop(),
		adversarialRows:         defaultAdversarialRows,
		adversarialPerturbFrom:  defaultAdversarialPerturbFrom,
		adversarialPerturbation: defaultAdversarialPerturbation,
		badCholQRFloor:          spectrum.BadCholQRFloor,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
