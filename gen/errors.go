// SPDX-License-Identifier: MIT
// Package: matgen/gen
//
// errors.go - sentinel errors for the generator.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers use errors.Is.
//   - Implementations attach context with %w ("Generate: Spiked: ...").
//   - Option constructors (WithX) panic on meaningless input; builders never do.

package gen

import (
	"errors"
	"fmt"
)

// ErrInvalidSpec indicates that a Spec violates its shape, rank, condition
// number or scaling constraints. It is reported before the destination is
// touched.
var ErrInvalidSpec = errors.New("gen: invalid spec")

// ErrUnsupportedFamily indicates a Family value outside the enumerated set.
var ErrUnsupportedFamily = errors.New("gen: unsupported family")

// Method tags used in wrapped errors.
const (
	methodGenerate    = "Generate"
	methodValidate    = "Spec.Validate"
	methodSynthesize  = "Synthesize"
	methodOrthonormal = "RandomOrthonormal"
)

// wrapf attaches a method tag and optional detail to err.
func wrapf(method string, err error, format string, args ...interface{}) error {
	if format == "" {
		return fmt.Errorf("%s: %w", method, err)
	}

	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
