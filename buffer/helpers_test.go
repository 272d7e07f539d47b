// SPDX-License-Identifier: MIT
// Package buffer_test: shared fixtures.

package buffer_test

import (
	"math/rand/v2"
	"testing"
)

// seqMatrix returns a rows×cols column-major buffer with entry (i,j) equal to
// 100*j + i, so every element identifies its own position.
func seqMatrix(t *testing.T, rows, cols int) []float64 {
	t.Helper()
	out := make([]float64, rows*cols)
	var i, j int
	for j = 0; j < cols; j++ {
		for i = 0; i < rows; i++ {
			out[i+j*rows] = float64(100*j + i)
		}
	}

	return out
}

// gatherColumns is the reference result of PermuteColumns: column p of the
// output is column idx[p]-1 of a.
func gatherColumns(a []float64, rows int, idx []int) []float64 {
	out := make([]float64, len(a))
	copy(out, a)
	for p, v := range idx {
		copy(out[p*rows:(p+1)*rows], a[(v-1)*rows:v*rows])
	}

	return out
}

// forEachPermutation calls fn with every 1-based permutation of size n
// (Heap's algorithm). fn must not retain the slice.
func forEachPermutation(n int, fn func(idx []int)) {
	idx := make([]int, n)
	c := make([]int, n)
	for i := range idx {
		idx[i] = i + 1
	}
	fn(idx)
	i := 0
	for i < n {
		if c[i] < i {
			if i%2 == 0 {
				idx[0], idx[i] = idx[i], idx[0]
			} else {
				idx[c[i]], idx[i] = idx[i], idx[c[i]]
			}
			fn(idx)
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}
}

// randomPermutation returns a 1-based permutation of size n.
func randomPermutation(r *rand.Rand, n int) []int {
	idx := r.Perm(n)
	for i := range idx {
		idx[i]++
	}

	return idx
}
