// SPDX-License-Identifier: MIT
package diagnostics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matgen/diagnostics"
	"github.com/katalvlaran/matgen/rng"
)

func TestSpectralNorm_Diagonal(t *testing.T) {
	a := diagMatrix(t, 5, 3, []float64{3, 1, 0.5})
	est, next, err := diagnostics.SpectralNorm(a, 5, 3, 30, rng.New(1))
	require.NoError(t, err)
	require.InEpsilon(t, 3, est, 1e-10)
	require.Equal(t, uint64(3), next.Counter, "one Gaussian start vector of length n")
}

func TestSpectralNorm_MatchesLargestSingularValue(t *testing.T) {
	const m, n = 40, 12
	s := []float64{2, 1, 0.9, 0.5, 0.1, 0.01}
	a := withSpectrum(t, m, n, s, 17)

	est, _, err := diagnostics.SpectralNorm(a, m, n, 60, rng.New(2))
	require.NoError(t, err)
	require.InEpsilon(t, 2, est, 1e-9)

	again, _, err := diagnostics.SpectralNorm(a, m, n, 60, rng.New(2))
	require.NoError(t, err)
	require.Equal(t, est, again, "same state, same estimate")
}

func TestSpectralNorm_ZeroAndErrors(t *testing.T) {
	z := make([]float64, 6)
	est, _, err := diagnostics.SpectralNorm(z, 3, 2, 5, rng.New(1))
	require.NoError(t, err)
	require.Zero(t, est)

	s := rng.New(4)
	_, next, err := diagnostics.SpectralNorm(z, 3, 2, 0, s)
	require.ErrorIs(t, err, diagnostics.ErrInvalidArgument)
	require.Equal(t, s, next)
	_, _, err = diagnostics.SpectralNorm(z[:4], 3, 2, 1, s)
	require.ErrorIs(t, err, diagnostics.ErrInvalidArgument)
}
