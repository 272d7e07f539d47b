// SPDX-License-Identifier: MIT
// Package rng: sentinel errors.

package rng

import "errors"

var (
	// ErrBadDistribution is returned for non-positive shapes, unknown
	// families or a non-zero count outside [0, short axis length].
	ErrBadDistribution = errors.New("rng: invalid distribution")

	// ErrShortBuffer is returned when the destination cannot hold Rows×Cols.
	ErrShortBuffer = errors.New("rng: destination buffer too short")
)
