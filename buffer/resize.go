// SPDX-License-Identifier: MIT
// Package buffer: growing, reshaping and compacting flat storage.

package buffer

// EnsureCapacity returns a slice of length ≥ target sharing buf's contents.
// When buf is already long enough it is returned unchanged; otherwise the
// slice is extended (reallocating only when cap(buf) is too small) and the
// new region is zero-filled. Existing data is never truncated, so repeated
// calls are idempotent.
//
// Errors: ErrInvalidArgument when target < 0.
// Complexity: O(target) when growing, O(1) otherwise.
func EnsureCapacity(buf []float64, target int) ([]float64, error) {
	if target < 0 {
		return buf, bufferErrorf(opEnsure, ErrInvalidArgument, "target=%d", target)
	}
	if len(buf) >= target {
		return buf, nil
	}
	old := len(buf)
	if cap(buf) >= target {
		buf = buf[:target]
		clear(buf[old:])

		return buf, nil
	}
	grown := make([]float64, target)
	copy(grown, buf)

	return grown, nil
}

// ReshapeRows reinterprets the column-major oldRows×cols matrix in buf as a
// newRows×cols matrix, keeping every column's leading min(oldRows, newRows)
// entries in place and zero-filling new row slots. The returned slice has
// length newRows*cols and shares buf's backing array whenever it is large
// enough.
//
// Implementation:
//   - Shrink: columns move toward the front, so they are copied first to last;
//     each destination ends before the next source begins.
//   - Grow: columns move toward the back, so they are copied last to first;
//     a forward pass would overwrite columns that have not moved yet.
//
// Growing and then shrinking back to oldRows restores buf[:oldRows*cols]
// exactly.
//
// Errors: ErrInvalidArgument for negative sizes or a short buf.
// Complexity: O(max(oldRows, newRows)·cols).
func ReshapeRows(buf []float64, oldRows, cols, newRows int) ([]float64, error) {
	if err := checkShape(opReshape, buf, oldRows, cols); err != nil {
		return buf, err
	}
	if newRows < 0 {
		return buf, bufferErrorf(opReshape, ErrInvalidArgument, "newRows=%d", newRows)
	}

	var j int
	switch {
	case newRows < oldRows:
		for j = 0; j < cols; j++ {
			copy(buf[j*newRows:(j+1)*newRows], buf[j*oldRows:j*oldRows+newRows])
		}

		return buf[:newRows*cols], nil

	case newRows > oldRows:
		buf, _ = EnsureCapacity(buf, newRows*cols)
		for j = cols - 1; j >= 0; j-- {
			copy(buf[j*newRows:j*newRows+oldRows], buf[j*oldRows:(j+1)*oldRows])
			clear(buf[j*newRows+oldRows : (j+1)*newRows])
		}

		return buf[:newRows*cols], nil

	default:
		return buf[:oldRows*cols], nil
	}
}

// CompactStride packs count vectors of length vecLen, stored stride apart in
// buf, into the front of buf with no gaps. It is a no-op when stride equals
// vecLen.
//
// Errors: ErrInvalidArgument when stride < vecLen, sizes are negative, or buf
// cannot hold the strided layout.
// Complexity: O(vecLen·count).
func CompactStride(buf []float64, vecLen, count, stride int) error {
	if vecLen < 0 || count < 0 || stride < vecLen {
		return bufferErrorf(opCompact, ErrInvalidArgument, "vecLen=%d count=%d stride=%d", vecLen, count, stride)
	}
	if count == 0 {
		return nil
	}
	if need := (count-1)*stride + vecLen; len(buf) < need {
		return bufferErrorf(opCompact, ErrInvalidArgument, "len=%d < %d", len(buf), need)
	}
	if stride == vecLen {
		return nil
	}
	var i int
	for i = 1; i < count; i++ {
		copy(buf[i*vecLen:(i+1)*vecLen], buf[i*stride:i*stride+vecLen])
	}

	return nil
}
