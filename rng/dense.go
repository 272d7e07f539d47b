// SPDX-License-Identifier: MIT
// Package rng - dense distributions.

package rng

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Family selects the entry distribution of a DenseDist.
type Family int

const (
	// Gaussian draws i.i.d. N(0,1) entries. It is the zero value.
	Gaussian Family = iota
	// Uniform draws i.i.d. Uniform(-1,1) entries.
	Uniform
)

// String implements fmt.Stringer.
func (f Family) String() string {
	switch f {
	case Gaussian:
		return "gaussian"
	case Uniform:
		return "uniform"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

// DenseDist describes a dense Rows×Cols random matrix.
type DenseDist struct {
	Rows   int
	Cols   int
	Family Family
}

// Len returns Rows*Cols.
func (d DenseDist) Len() int { return d.Rows * d.Cols }

func (d DenseDist) validate() error {
	if d.Rows <= 0 || d.Cols <= 0 {
		return fmt.Errorf("DenseDist %dx%d: %w", d.Rows, d.Cols, ErrBadDistribution)
	}
	if d.Family != Gaussian && d.Family != Uniform {
		return fmt.Errorf("DenseDist family %v: %w", d.Family, ErrBadDistribution)
	}

	return nil
}

// FillDense writes d.Len() variates into dst[:d.Len()] in column-major order
// and returns the advanced state.
//
// Implementation:
//   - Stage 1: validate the distribution and the destination length.
//   - Stage 2: seed the PCG stream addressed by s and sample through distuv.
//   - Stage 3: return s advanced by d.Len().
//
// Errors: ErrBadDistribution, ErrShortBuffer. On error s is returned unchanged
// and dst is not written.
//
// Complexity: O(Rows*Cols).
func FillDense(d DenseDist, dst []float64, s State) (State, error) {
	if err := d.validate(); err != nil {
		return s, err
	}
	n := d.Len()
	if len(dst) < n {
		return s, fmt.Errorf("FillDense: len=%d < %d: %w", len(dst), n, ErrShortBuffer)
	}

	src := s.source()
	switch d.Family {
	case Uniform:
		u := distuv.Uniform{Min: -1, Max: 1, Src: src}
		for i := 0; i < n; i++ {
			dst[i] = u.Rand()
		}
	default:
		g := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
		for i := 0; i < n; i++ {
			dst[i] = g.Rand()
		}
	}

	return s.Advance(n), nil
}

// Normal returns n standard normal variates and the advanced state.
// Convenience over FillDense for vectors.
func Normal(n int, s State) ([]float64, State, error) {
	v := make([]float64, n)
	next, err := FillDense(DenseDist{Rows: n, Cols: 1}, v, s)
	if err != nil {
		return nil, s, err
	}

	return v, next, nil
}

// compile-time check: the PCG stream is a v2 Source as distuv expects.
var _ rand.Source = (*rand.PCG)(nil)
