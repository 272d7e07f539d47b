// SPDX-License-Identifier: MIT
// Package buffer: diagonal and triangular extraction.

package buffer

// ExtractDiagonal returns the first k diagonal entries of the column-major
// rows×cols matrix in buf. k == 0 selects min(rows, cols).
//
// Errors: ErrInvalidArgument for a bad shape or k outside [0, min(rows, cols)].
// Complexity: O(k).
func ExtractDiagonal(buf []float64, rows, cols, k int) ([]float64, error) {
	if err := checkShape(opExtract, buf, rows, cols); err != nil {
		return nil, err
	}
	d := min(rows, cols)
	if k < 0 || k > d {
		return nil, bufferErrorf(opExtract, ErrInvalidArgument, "k=%d not in [0,%d]", k, d)
	}
	if k == 0 {
		k = d
	}
	out := make([]float64, k)
	var i int
	for i = 0; i < k; i++ {
		out[i] = buf[i+i*rows]
	}

	return out, nil
}

// WriteDiagonal stores values on the leading diagonal of the column-major
// rows×cols matrix in buf. Off-diagonal entries are not touched.
//
// Errors: ErrInvalidArgument for a bad shape or len(values) > min(rows, cols).
// Complexity: O(len(values)).
func WriteDiagonal(buf []float64, rows, cols int, values []float64) error {
	if err := checkShape(opWrite, buf, rows, cols); err != nil {
		return err
	}
	if len(values) > min(rows, cols) {
		return bufferErrorf(opWrite, ErrInvalidArgument, "%d values for %dx%d", len(values), rows, cols)
	}
	for i, v := range values {
		buf[i+i*rows] = v
	}

	return nil
}

// Eye overwrites buf with the rows×cols identity (ones on the leading
// diagonal, zeros elsewhere).
// Complexity: O(rows·cols).
func Eye(buf []float64, rows, cols int) error {
	if err := checkShape(opEye, buf, rows, cols); err != nil {
		return err
	}
	clear(buf[:rows*cols])
	var i int
	for i = 0; i < min(rows, cols); i++ {
		buf[i+i*rows] = 1
	}

	return nil
}

// LowerToUnit turns the packed output of an LU factorization into its lower
// factor: in every column j the entries above the diagonal (rows 0..j-1) are
// cleared, and when overwriteDiagonal is set the diagonal becomes 1, giving
// the unit lower-triangular L.
// Complexity: O(rows·cols).
func LowerToUnit(buf []float64, rows, cols int, overwriteDiagonal bool) error {
	if err := checkShape(opLower, buf, rows, cols); err != nil {
		return err
	}
	var j int
	for j = 0; j < cols; j++ {
		clear(buf[j*rows : j*rows+min(j, rows)])
		if overwriteDiagonal && j < rows {
			buf[j+j*rows] = 1
		}
	}

	return nil
}

// UpperTriangle copies the upper triangle of the column-major rows×cols
// matrix in buf into a fresh cols×cols buffer; entries below the diagonal,
// and rows beyond the source, are zero.
// Complexity: O(cols²).
func UpperTriangle(buf []float64, rows, cols int) ([]float64, error) {
	if err := checkShape(opUpper, buf, rows, cols); err != nil {
		return nil, err
	}
	out := make([]float64, cols*cols)
	var j int
	for j = 0; j < cols; j++ {
		copy(out[j*cols:j*cols+min(j+1, rows)], buf[j*rows:j*rows+min(j+1, rows)])
	}

	return out, nil
}

// ZeroBelowDiagonal clears the strict lower triangle of the column-major
// rows×cols matrix in buf, in place.
// Complexity: O(rows·cols).
func ZeroBelowDiagonal(buf []float64, rows, cols int) error {
	if err := checkShape(opZeroBelow, buf, rows, cols); err != nil {
		return err
	}
	var j int
	for j = 0; j < min(cols, rows); j++ {
		clear(buf[j*rows+j+1 : (j+1)*rows])
	}

	return nil
}

// TransposeSquare transposes the n×n matrix in buf in place by swapping
// entries across the diagonal.
// Complexity: O(n²).
func TransposeSquare(buf []float64, n int) error {
	if err := checkShape(opTranspose, buf, n, n); err != nil {
		return err
	}
	var i, j int
	for j = 1; j < n; j++ {
		for i = 0; i < j; i++ {
			buf[i+j*n], buf[j+i*n] = buf[j+i*n], buf[i+j*n]
		}
	}

	return nil
}
