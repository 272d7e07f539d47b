// SPDX-License-Identifier: MIT
// Package rng - sparse distributions with a fixed non-zero count per vector.

package rng

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/stat/sampleuv"
)

// MajorAxis picks the direction of the vectors that carry exactly VecNNZ
// non-zeros.
type MajorAxis int

const (
	// Short: every vector along the short axis has VecNNZ non-zeros.
	Short MajorAxis = iota
	// Long: every vector along the long axis has VecNNZ non-zeros.
	Long
)

// SparseDist describes a Rows×Cols sparse random operator.
type SparseDist struct {
	Rows   int
	Cols   int
	VecNNZ int
	Major  MajorAxis
}

// SparseOp is a sampled sparse operator in coordinate form. Entries are
// grouped by major-axis vector; within a vector the positions ascend.
type SparseOp struct {
	Rows, Cols int
	RowIdx     []int     // 0-based
	ColIdx     []int     // 0-based
	Vals       []float64 // ±1
}

// NNZ returns the number of stored entries.
func (op SparseOp) NNZ() int { return len(op.Vals) }

// ToDense scatters the operator into a column-major Rows×Cols buffer,
// overwriting it.
func (op SparseOp) ToDense(dst []float64) error {
	if len(dst) < op.Rows*op.Cols {
		return fmt.Errorf("SparseOp.ToDense: len=%d < %d: %w", len(dst), op.Rows*op.Cols, ErrShortBuffer)
	}
	clear(dst[:op.Rows*op.Cols])
	for e, v := range op.Vals {
		dst[op.RowIdx[e]+op.ColIdx[e]*op.Rows] = v
	}

	return nil
}

// geometry returns (number of major vectors, vector length).
func (d SparseDist) geometry() (vecs, length int) {
	short, long := min(d.Rows, d.Cols), max(d.Rows, d.Cols)
	if d.Major == Long {
		return short, long
	}

	return long, short
}

func (d SparseDist) validate() error {
	if d.Rows <= 0 || d.Cols <= 0 {
		return fmt.Errorf("SparseDist %dx%d: %w", d.Rows, d.Cols, ErrBadDistribution)
	}
	if d.Major != Short && d.Major != Long {
		return fmt.Errorf("SparseDist major axis %d: %w", d.Major, ErrBadDistribution)
	}
	_, length := d.geometry()
	if d.VecNNZ < 0 || d.VecNNZ > length {
		return fmt.Errorf("SparseDist vec_nnz=%d not in [0,%d]: %w", d.VecNNZ, length, ErrBadDistribution)
	}

	return nil
}

// FillSparse samples an operator from d.
//
// Implementation:
//   - Stage 1: validate (VecNNZ ≤ vector length along the major axis).
//   - Stage 2: for every major vector, draw VecNNZ distinct positions with
//     sampleuv.WithoutReplacement and a Rademacher sign per entry, all from
//     the single PCG stream addressed by s.
//   - Stage 3: advance s by two variates per non-zero (position + sign).
//
// Complexity: O(vecs · VecNNZ · log VecNNZ).
func FillSparse(d SparseDist, s State) (SparseOp, State, error) {
	if err := d.validate(); err != nil {
		return SparseOp{}, s, err
	}
	vecs, length := d.geometry()
	nnz := vecs * d.VecNNZ
	op := SparseOp{
		Rows:   d.Rows,
		Cols:   d.Cols,
		RowIdx: make([]int, 0, nnz),
		ColIdx: make([]int, 0, nnz),
		Vals:   make([]float64, 0, nnz),
	}

	// Vectors are columns when their length equals Rows; square operators use
	// columns for Long and rows for Short.
	alongRows := length == d.Rows && (d.Rows != d.Cols || d.Major == Long)
	src := s.source()
	pos := make([]int, d.VecNNZ)
	var v, p int
	for v = 0; v < vecs && d.VecNNZ > 0; v++ {
		sampleuv.WithoutReplacement(pos, length, src)
		slices.Sort(pos)
		for _, p = range pos {
			if alongRows {
				op.RowIdx = append(op.RowIdx, p)
				op.ColIdx = append(op.ColIdx, v)
			} else {
				op.RowIdx = append(op.RowIdx, v)
				op.ColIdx = append(op.ColIdx, p)
			}
			if src.Uint64()&1 == 0 {
				op.Vals = append(op.Vals, 1)
			} else {
				op.Vals = append(op.Vals, -1)
			}
		}
	}

	return op, s.Advance(2 * nnz), nil
}

// SampleWithoutReplacement returns k distinct indices from [0, n) in
// ascending order, drawn as the row pattern of a tall n×1 Long-axis operator.
func SampleWithoutReplacement(n, k int, s State) ([]int, State, error) {
	op, next, err := FillSparse(SparseDist{Rows: n, Cols: 1, VecNNZ: k, Major: Long}, s)
	if err != nil {
		return nil, s, err
	}

	return op.RowIdx, next, nil
}
