// SPDX-License-Identifier: MIT
// Package buffer: column permutations in 1-based pivot form.

package buffer

// validatePermutation checks that idx holds distinct 1-based column numbers
// in [1, cols].
// Complexity: O(cols).
func validatePermutation(op string, idx []int, cols int) error {
	seen := make([]bool, cols)
	for p, v := range idx {
		if v < 1 || v > cols {
			return bufferErrorf(op, ErrInvalidArgument, "idx[%d]=%d not in [1,%d]", p, v, cols)
		}
		if seen[v-1] {
			return bufferErrorf(op, ErrInvalidArgument, "idx[%d]=%d repeated", p, v)
		}
		seen[v-1] = true
	}

	return nil
}

// PermuteColumns reorders the columns of the column-major rows×cols matrix in
// buf so that, for every p < len(idx), column p of the result is column
// idx[p]-1 of the input. idx uses the 1-based convention of LAPACK pivot
// vectors and may be shorter than cols, in which case only the leading
// len(idx) columns are placed and the rest keep an unspecified order.
//
// Implementation:
//   - Stage 1: validate idx and work on a private copy of it.
//   - Stage 2: for p = 0.., swap column p with the column currently holding
//     the requested one, then redirect the later entry that was waiting for
//     the column just displaced from p to its new position. Each column is
//     thus moved at most once per cycle step and never swapped twice.
//
// idx itself is not modified.
//
// Errors: ErrInvalidArgument for a bad shape, len(idx) > cols, or entries that
// are out of range or repeated.
// Complexity: O(rows·k + k²) for k = len(idx).
func PermuteColumns(buf []float64, rows, cols int, idx []int) error {
	if err := checkShape(opPermute, buf, rows, cols); err != nil {
		return err
	}
	k := len(idx)
	if k > cols {
		return bufferErrorf(opPermute, ErrInvalidArgument, "len(idx)=%d > cols=%d", k, cols)
	}
	if err := validatePermutation(opPermute, idx, cols); err != nil {
		return err
	}

	pos := make([]int, k)
	copy(pos, idx)
	var p, q, src int
	var a, b []float64
	for p = 0; p < k; p++ {
		src = pos[p] - 1
		if src != p {
			a = buf[p*rows : (p+1)*rows]
			b = buf[src*rows : (src+1)*rows]
			for q = range a {
				a[q], b[q] = b[q], a[q]
			}
			for q = p + 1; q < k; q++ {
				if pos[q] == p+1 {
					pos[q] = src + 1
					break
				}
			}
		}
		pos[p] = p + 1
	}

	return nil
}

// InversePermutation returns the 1-based permutation that undoes idx:
// applying idx and then its inverse with PermuteColumns restores the
// original column order.
//
// Errors: ErrInvalidArgument when idx is not a permutation of 1..len(idx).
// Complexity: O(len(idx)).
func InversePermutation(idx []int) ([]int, error) {
	if err := validatePermutation(opInverse, idx, len(idx)); err != nil {
		return nil, err
	}
	inv := make([]int, len(idx))
	for p, v := range idx {
		inv[v-1] = p + 1
	}

	return inv, nil
}
