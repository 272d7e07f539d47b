// SPDX-License-Identifier: MIT
// Package gen_test: shared helpers.

package gen_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matgen/buffer"
	"github.com/katalvlaran/matgen/diagnostics"
	"github.com/katalvlaran/matgen/gen"
	"github.com/katalvlaran/matgen/rng"
)

// mustGenerate runs gen.Generate into a fresh buffer and fails on error.
func mustGenerate(t *testing.T, spec gen.Spec, seed uint64, opts ...gen.Option) (*buffer.Dense, gen.Result, rng.State) {
	t.Helper()
	var dst buffer.Dense
	res, next, err := gen.Generate(spec, &dst, rng.New(seed), opts...)
	require.NoError(t, err)
	require.Equal(t, res.Rows, dst.Rows())
	require.Equal(t, res.Cols, dst.Cols())

	return &dst, res, next
}

// singularValues returns σ(dst) in descending order.
func singularValues(t *testing.T, dst *buffer.Dense) []float64 {
	t.Helper()
	s, err := diagnostics.SingularValues(dst.Data(), dst.Rows(), dst.Cols(), diagnostics.Full)
	require.NoError(t, err)

	return s
}

// descending returns a sorted copy of s, largest first.
func descending(s []float64) []float64 {
	out := slices.Clone(s)
	slices.Sort(out)
	slices.Reverse(out)

	return out
}

// requireRelClose checks |got-want| ≤ rtol·|want| element-wise.
func requireRelClose(t *testing.T, want, got []float64, rtol float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InEpsilon(t, want[i], got[i], rtol, "index %d", i)
	}
}
