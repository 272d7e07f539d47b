// SPDX-License-Identifier: MIT
// Package ops: packed upper-triangular storage.
//
// Packed layout (LAPACK uplo='U', column-major): column j keeps rows 0..j
// contiguously, so A(i,j) with i ≤ j sits at ap[i + j(j+1)/2] and the whole
// triangle needs n(n+1)/2 elements. gonum exposes packed kernels (Tpmv,
// Tpsv) but no packed→full conversion, hence the two loops below.

package ops

// PackedLen returns the number of elements of an n×n packed triangle.
func PackedLen(n int) int { return n * (n + 1) / 2 }

// PackedUpperToFull expands the packed upper triangle ap of order n into the
// column-major full matrix a (leading dimension lda). Entries below the
// diagonal are set to zero.
// Complexity: O(n²).
func PackedUpperToFull(n int, ap []float64, a []float64, lda int) error {
	if n < 0 {
		return opsErrorf(opUnpack, ErrDimensionMismatch, "n=%d", n)
	}
	if len(ap) < PackedLen(n) {
		return opsErrorf(opUnpack, ErrDimensionMismatch, "len(ap)=%d < %d", len(ap), PackedLen(n))
	}
	if err := checkGeneral(opUnpack, n, n, lda, a); err != nil {
		return err
	}

	var i, j, off int
	for j = 0; j < n; j++ {
		off = j * (j + 1) / 2                      // start of packed column j
		copy(a[j*lda:j*lda+j+1], ap[off:off+j+1]) // rows 0..j
		for i = j + 1; i < n; i++ {
			a[i+j*lda] = 0
		}
	}

	return nil
}

// FullToPackedUpper packs the upper triangle of the column-major n×n matrix a
// into ap.
// Complexity: O(n²).
func FullToPackedUpper(n int, a []float64, lda int, ap []float64) error {
	if err := checkGeneral(opPack, n, n, lda, a); err != nil {
		return err
	}
	if len(ap) < PackedLen(n) {
		return opsErrorf(opPack, ErrDimensionMismatch, "len(ap)=%d < %d", len(ap), PackedLen(n))
	}

	var j, off int
	for j = 0; j < n; j++ {
		off = j * (j + 1) / 2
		copy(ap[off:off+j+1], a[j*lda:j*lda+j+1])
	}

	return nil
}
