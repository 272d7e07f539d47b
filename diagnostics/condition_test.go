// SPDX-License-Identifier: MIT
package diagnostics_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/matgen/diagnostics"
	"github.com/katalvlaran/matgen/ops"
)

func TestSingularValues_MatchesGonumSVD(t *testing.T) {
	const m, n = 9, 5
	a := withSpectrum(t, m, n, []float64{4, 3, 2, 1, 0.5}, 11)
	orig := append([]float64(nil), a...)

	got, err := diagnostics.SingularValues(a, m, n, diagnostics.Full)
	require.NoError(t, err)
	require.Equal(t, orig, a, "input must not be modified")

	// mat.Dense is row-major: the column-major buffer is Aᵀ, same spectrum.
	var svd mat.SVD
	require.True(t, svd.Factorize(mat.NewDense(n, m, append([]float64(nil), a...)), mat.SVDNone))
	want := svd.Values(nil)

	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(1e-12, 1e-14)); diff != "" {
		t.Fatalf("singular values mismatch (-gonum +diagnostics):\n%s", diff)
	}
	require.InDeltaSlice(t, []float64{4, 3, 2, 1, 0.5}, got, 1e-12)
}

func TestConditionNumber_Full(t *testing.T) {
	a := diagMatrix(t, 4, 3, []float64{1, 0.5, 0.01})
	c, err := diagnostics.ConditionNumber(a, 4, 3, diagnostics.Full)
	require.NoError(t, err)
	require.InEpsilon(t, 100, c, 1e-12)

	z := make([]float64, 6)
	c, err = diagnostics.ConditionNumber(z, 3, 2, diagnostics.Full)
	require.NoError(t, err)
	require.True(t, math.IsInf(c, 1))
}

func TestConditionNumber_PackedUpperMatchesFull(t *testing.T) {
	const n = 4
	full := []float64{
		2, 0, 0, 0,
		1, 3, 0, 0,
		-1, 0.5, 1, 0,
		0.25, 2, -0.5, 0.75,
	}
	ap := make([]float64, ops.PackedLen(n))
	require.NoError(t, ops.FullToPackedUpper(n, full, n, ap))

	want, err := diagnostics.ConditionNumber(full, n, n, diagnostics.Full)
	require.NoError(t, err)
	got, err := diagnostics.ConditionNumber(ap, n, n, diagnostics.PackedUpper)
	require.NoError(t, err)
	require.InEpsilon(t, want, got, 1e-12)

	// A tall full matrix with the triangle on top and zero rows below.
	tall, err := diagnostics.SingularValues(ap, n+2, n, diagnostics.PackedUpper)
	require.NoError(t, err)
	square, err := diagnostics.SingularValues(full, n, n, diagnostics.Full)
	require.NoError(t, err)
	require.InDeltaSlice(t, square, tall, 1e-12)
}

func TestConditionNumber_Errors(t *testing.T) {
	a := make([]float64, 6)
	_, err := diagnostics.ConditionNumber(a, 3, 2, diagnostics.Format(7))
	require.ErrorIs(t, err, diagnostics.ErrUnknownFormat)
	_, err = diagnostics.ConditionNumber(a, 2, 3, diagnostics.PackedUpper)
	require.ErrorIs(t, err, diagnostics.ErrInvalidArgument)
	_, err = diagnostics.ConditionNumber(a, 3, 3, diagnostics.Full)
	require.ErrorIs(t, err, diagnostics.ErrInvalidArgument)
	_, err = diagnostics.ConditionNumber(a, 0, 3, diagnostics.Full)
	require.ErrorIs(t, err, diagnostics.ErrInvalidArgument)
}

func TestRank(t *testing.T) {
	tests := []struct {
		name string
		s    []float64
		want int
	}{
		{"full", []float64{1, 0.5, 0.25}, 3},
		{"tiny tail", []float64{1, 1e-3, 1e-17}, 2},
		{"exact zero", []float64{2, 1, 0}, 2},
		{"zero matrix", []float64{0, 0, 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := diagnostics.Rank(diagMatrix(t, 5, 3, tt.s), 5, 3)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_String(t *testing.T) {
	require.Equal(t, "full", diagnostics.Full.String())
	require.Equal(t, "packed-upper", diagnostics.PackedUpper.String())
	require.Equal(t, "Format(9)", diagnostics.Format(9).String())
}
