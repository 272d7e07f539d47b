// SPDX-License-Identifier: MIT
package spectrum_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matgen/spectrum"
)

// requireNonIncreasing fails if s ever increases.
func requireNonIncreasing(t *testing.T, s []float64) {
	t.Helper()
	for i := 1; i < len(s); i++ {
		require.LessOrEqual(t, s[i], s[i-1], "s[%d]=%g > s[%d]=%g", i, s[i], i-1, s[i-1])
	}
}

func TestDecayingProfiles_EndpointsAndOrder(t *testing.T) {
	type gen func(k int, cond float64) ([]float64, error)
	profiles := map[string]gen{
		"polynomial":  spectrum.Polynomial,
		"exponential": spectrum.Exponential,
	}
	for name, fn := range profiles {
		for _, k := range []int{2, 5, 10, 20, 37, 100} {
			for _, cond := range []float64{1, 10, 100, 1e6} {
				s, err := fn(k, cond)
				require.NoError(t, err, "%s k=%d", name, k)
				require.Len(t, s, k)
				require.Equal(t, 1.0, s[0], "%s k=%d cond=%g", name, k, cond)
				require.InDelta(t, 1/cond, s[k-1], 1e-12/cond*10, "%s k=%d cond=%g", name, k, cond)
				requireNonIncreasing(t, s)
			}
		}
	}
}

func TestPolynomial_LeadingFlatSegment(t *testing.T) {
	s, err := spectrum.Polynomial(20, 100)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1}, s[:2])
	require.Equal(t, 1.0, s[2], "tail starts at 1/1^t")
	require.Less(t, s[3], 1.0)

	ratio, err := spectrum.Ratio(s)
	require.NoError(t, err)
	require.InDelta(t, 100, ratio, 1e-9)
}

func TestPolynomial_ShortProfiles(t *testing.T) {
	s, err := spectrum.Polynomial(1, 50)
	require.NoError(t, err)
	require.Equal(t, []float64{1}, s)

	// k=2 has no flat segment and a two-entry tail: 1, 1/cond.
	s, err = spectrum.Polynomial(2, 50)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 0.02}, s, 1e-15)
}

func TestExponential_KeepsDominantValue(t *testing.T) {
	s, err := spectrum.Exponential(5, 1e3)
	require.NoError(t, err)
	require.Equal(t, 1.0, s[0])

	s, err = spectrum.Exponential(1, 1e3)
	require.NoError(t, err)
	require.Equal(t, []float64{1}, s)
}

func TestStaircase_Bands(t *testing.T) {
	s, err := spectrum.Staircase(10, 100)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1, 0.08, 0.08, 0.04, 0.04, 0.01, 0.01, 0.01, 0.01}, s)

	s, err = spectrum.Staircase(3, 10)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0.1, 0.1}, s)
}

func TestStaircase_LowCond(t *testing.T) {
	tests := []struct {
		name string
		k    int
		cond float64
		want []float64 // nil: ErrInvalidCond
	}{
		{"one", 8, 1, nil},
		{"two", 8, 2, nil},
		{"just below eight", 8, 7.99, nil},
		{"four entries", 4, 5, nil},
		{"at eight", 8, 8, []float64{1, 1, 1, 1, 0.5, 0.5, 0.125, 0.125}},
		{"collapsed bands", 3, 2, []float64{1, 0.5, 0.5}},
		{"single entry", 1, 1, []float64{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := spectrum.Staircase(tt.k, tt.cond)
			if tt.want == nil {
				require.ErrorIs(t, err, spectrum.ErrInvalidCond)
				require.Nil(t, s)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, s)
			require.Equal(t, 1.0, s[0])
			for i := 1; i < len(s); i++ {
				require.LessOrEqual(t, s[i], s[i-1], "index %d", i)
			}
			ratio, err := spectrum.Ratio(s)
			require.NoError(t, err)
			require.Equal(t, tt.cond, ratio)
		})
	}
}

func TestBadCholQR_Tail(t *testing.T) {
	const n, k, cond = 12, 4, 1e4
	s, err := spectrum.BadCholQR(n, k, cond, spectrum.BadCholQRFloor)
	require.NoError(t, err)
	require.Len(t, s, n)
	require.Equal(t, []float64{1, 1, 1, 1}, s[:k])
	require.InEpsilon(t, 1/spectrum.BadCholQRFloor, s[k], 1e-12)
	require.InEpsilon(t, 1/cond, s[n-1], 1e-12)

	// Geometric tail: constant ratio between neighbours.
	r := s[k+1] / s[k]
	for i := k + 2; i < n; i++ {
		require.InEpsilon(t, r, s[i]/s[i-1], 1e-9)
	}

	one, err := spectrum.BadCholQR(5, 4, 10, spectrum.BadCholQRFloor)
	require.NoError(t, err)
	require.Equal(t, 0.1, one[4])

	full, err := spectrum.BadCholQR(3, 3, 10, spectrum.BadCholQRFloor)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1, 1}, full)
}

func TestProfiles_Errors(t *testing.T) {
	_, err := spectrum.Polynomial(0, 10)
	require.ErrorIs(t, err, spectrum.ErrInvalidRank)
	_, err = spectrum.Exponential(4, 0.5)
	require.ErrorIs(t, err, spectrum.ErrInvalidCond)
	_, err = spectrum.Staircase(4, math.NaN())
	require.ErrorIs(t, err, spectrum.ErrInvalidCond)
	_, err = spectrum.Staircase(4, math.Inf(1))
	require.ErrorIs(t, err, spectrum.ErrInvalidCond)
	_, err = spectrum.BadCholQR(3, 4, 10, spectrum.BadCholQRFloor)
	require.ErrorIs(t, err, spectrum.ErrInvalidRank)
	_, err = spectrum.BadCholQR(5, 4, 10, 0)
	require.ErrorIs(t, err, spectrum.ErrInvalidCond)
	_, err = spectrum.Ratio(nil)
	require.ErrorIs(t, err, spectrum.ErrInvalidRank)
}

func TestProfiles_Deterministic(t *testing.T) {
	a, err := spectrum.Exponential(33, 77)
	require.NoError(t, err)
	b, err := spectrum.Exponential(33, 77)
	require.NoError(t, err)
	require.Equal(t, a, b)
}
