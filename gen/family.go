// SPDX-License-Identifier: MIT
// Package: matgen/gen
//
// family.go - the enumerated matrix families.

package gen

import (
	"fmt"
	"strings"
)

// Family tags the construction used for a matrix.
type Family int

const (
	// Polynomial: singular values decay as 1/i^t after a flat 10% head.
	Polynomial Family = iota
	// Exponential: singular values decay as exp(−t·i) after a flat head.
	Exponential
	// Gaussian: i.i.d. standard normal entries, no spectral control.
	Gaussian
	// Staircase: four bands of singular values.
	Staircase
	// Spiked: full-rank, highly coherent left singular vectors.
	Spiked
	// Adversarial: numerically rank deficient in a way that fools rank
	// estimators.
	Adversarial
	// BadCholQR: a spread that breaks Cholesky-based QR.
	BadCholQR

	familyCount
)

var familyNames = [familyCount]string{
	Polynomial:  "polynomial",
	Exponential: "exponential",
	Gaussian:    "gaussian",
	Staircase:   "staircase",
	Spiked:      "spiked",
	Adversarial: "adversarial",
	BadCholQR:   "bad_cholqr",
}

// Valid reports whether f is one of the enumerated families.
func (f Family) Valid() bool { return f >= 0 && f < familyCount }

// String implements fmt.Stringer.
func (f Family) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Family(%d)", int(f))
	}

	return familyNames[f]
}

// usesProfile reports whether the family embeds a spectrum profile.
func (f Family) usesProfile() bool {
	switch f {
	case Polynomial, Exponential, Staircase, BadCholQR:
		return true
	default:
		return false
	}
}

// Families returns every supported family in declaration order.
func Families() []Family {
	out := make([]Family, familyCount)
	for i := range out {
		out[i] = Family(i)
	}

	return out
}

// ParseFamily maps a case-insensitive name ("polynomial", "bad_cholqr", …)
// to its Family. "step" is accepted for Staircase and "bad-cholqr" for
// BadCholQR.
//
// Errors: ErrUnsupportedFamily for unknown names.
func ParseFamily(name string) (Family, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "step":
		return Staircase, nil
	case "bad-cholqr":
		return BadCholQR, nil
	}
	for i, n := range familyNames {
		if n == key {
			return Family(i), nil
		}
	}

	return 0, fmt.Errorf("ParseFamily(%q): %w", name, ErrUnsupportedFamily)
}
