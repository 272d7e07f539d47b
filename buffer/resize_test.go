// SPDX-License-Identifier: MIT
package buffer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matgen/buffer"
)

func TestEnsureCapacity(t *testing.T) {
	buf := []float64{1, 2, 3}

	same, err := buffer.EnsureCapacity(buf, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, same, "never truncates")

	grown, err := buffer.EnsureCapacity(buf, 6)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3, 0, 0, 0}, grown)

	again, err := buffer.EnsureCapacity(grown, 6)
	require.NoError(t, err)
	require.Equal(t, grown, again)

	// Reusing spare capacity still zero-fills the new region.
	spare := make([]float64, 2, 8)
	spare[0], spare[1] = 7, 7
	full := spare[:8]
	full[5] = 99
	out, err := buffer.EnsureCapacity(spare, 6)
	require.NoError(t, err)
	require.Equal(t, []float64{7, 7, 0, 0, 0, 0}, out)

	_, err = buffer.EnsureCapacity(buf, -1)
	require.ErrorIs(t, err, buffer.ErrInvalidArgument)
}

func TestReshapeRows_GrowShrinkRoundTrip(t *testing.T) {
	shapes := []struct{ rows, cols, grow int }{
		{1, 1, 1}, {3, 4, 2}, {5, 2, 7}, {4, 6, 1}, {2, 9, 10},
	}
	for _, s := range shapes {
		orig := seqMatrix(t, s.rows, s.cols)
		buf := append([]float64(nil), orig...)

		grown, err := buffer.ReshapeRows(buf, s.rows, s.cols, s.rows+s.grow)
		require.NoError(t, err)
		require.Len(t, grown, (s.rows+s.grow)*s.cols)

		var i, j int
		for j = 0; j < s.cols; j++ {
			for i = 0; i < s.rows+s.grow; i++ {
				v := grown[i+j*(s.rows+s.grow)]
				if i < s.rows {
					require.Equal(t, orig[i+j*s.rows], v)
				} else {
					require.Zero(t, v, "new row slot (%d,%d)", i, j)
				}
			}
		}

		back, err := buffer.ReshapeRows(grown, s.rows+s.grow, s.cols, s.rows)
		require.NoError(t, err)
		require.Equal(t, orig, back)
	}
}

func TestReshapeRows_ShrinkKeepsLeadingRows(t *testing.T) {
	buf := seqMatrix(t, 4, 3)
	out, err := buffer.ReshapeRows(buf, 4, 3, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 100, 101, 200, 201}, out)
}

func TestReshapeRows_Errors(t *testing.T) {
	_, err := buffer.ReshapeRows(make([]float64, 5), 2, 3, 4)
	require.ErrorIs(t, err, buffer.ErrInvalidArgument)
	_, err = buffer.ReshapeRows(make([]float64, 6), 2, 3, -1)
	require.ErrorIs(t, err, buffer.ErrInvalidArgument)
}

func TestCompactStride(t *testing.T) {
	buf := []float64{1, 2, -1, -1, 3, 4, -1, -1, 5, 6}
	require.NoError(t, buffer.CompactStride(buf, 2, 3, 4))
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, buf[:6])

	same := []float64{1, 2, 3}
	require.NoError(t, buffer.CompactStride(same, 3, 1, 3))
	require.Equal(t, []float64{1, 2, 3}, same)

	require.ErrorIs(t, buffer.CompactStride(buf, 3, 2, 2), buffer.ErrInvalidArgument)
	require.ErrorIs(t, buffer.CompactStride(buf, 2, 4, 4), buffer.ErrInvalidArgument)
}
