// SPDX-License-Identifier: MIT
// Package buffer - Dense, a column-major matrix over a growable flat slice.

package buffer

import (
	"fmt"
	"strings"
)

// Dense is a column-major matrix of float64 values.
// r is rows, c is columns, and data holds at least r*c elements with (i,j) at
// data[i+j*r]. The zero value is a usable 0×0 matrix.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // backing storage; only ever grows
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols ≥ 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, bufferErrorf(opNewDense, ErrInvalidArgument, "shape %dx%d", rows, cols)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom wraps existing column-major data as a rows×cols Dense.
// data is not copied.
// Complexity: O(1).
func NewDenseFrom(rows, cols int, data []float64) (*Dense, error) {
	if err := checkShape(opNewDense, data, rows, cols); err != nil {
		return nil, err
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// Data returns the live column-major storage of length Rows*Cols. Writes
// through the returned slice modify the matrix.
func (m *Dense) Data() []float64 { return m.data[:m.r*m.c] }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row + col*m.r, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Col returns column j as a slice aliasing the matrix storage.
// Complexity: O(1).
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf("Col", 0, j, ErrOutOfRange)
	}

	return m.data[j*m.r : (j+1)*m.r], nil
}

// Clone returns a deep copy trimmed to Rows*Cols elements.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, m.r*m.c)
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Resize gives m the shape rows×cols with every entry zero. The backing
// storage is reused when it is large enough and grown with EnsureCapacity
// otherwise; it never shrinks.
// Complexity: O(rows·cols).
func (m *Dense) Resize(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return bufferErrorf(opNewDense, ErrInvalidArgument, "resize to %dx%d", rows, cols)
	}
	data, err := EnsureCapacity(m.data, rows*cols)
	if err != nil {
		return err
	}
	clear(data[:rows*cols])
	m.r, m.c, m.data = rows, cols, data

	return nil
}

// ReshapeRows changes the row count while keeping every column's leading
// entries, as ReshapeRows does for raw slices.
// Complexity: O(max(old, new)·cols).
func (m *Dense) ReshapeRows(rows int) error {
	full := m.data[:cap(m.data)]
	out, err := ReshapeRows(full, m.r, m.c, rows)
	if err != nil {
		return err
	}
	m.r, m.data = rows, out[:cap(out)]

	return nil
}

// String renders the matrix row by row for debugging.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i+j*m.r])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// DiagString renders only the leading diagonal, which is all that matters for
// the diagonal matrices produced by the generator's fast path.
func (m *Dense) DiagString() string {
	d, _ := ExtractDiagonal(m.data, m.r, m.c, 0)

	return fmt.Sprint(d)
}
