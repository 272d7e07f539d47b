// Package rng provides the explicit, re-derivable random state that every
// stochastic routine in matgen threads through its calls.
//
// What is a counter-based state?
//
//	A State is the pair (Key, Counter). Sampling count variates from State s
//	seeds a fresh PCG stream from mix(Key, Counter), draws the values, and
//	returns State{Key, Counter+count}. The same (Key, Counter) always yields
//	the same values, so any intermediate state can be stored, printed or
//	replayed, and no process-wide generator exists.
//
// Distributions:
//
//   - DenseDist: Rows×Cols column-major fill, Gaussian N(0,1) or Uniform(-1,1)
//     (gonum stat/distuv).
//   - SparseDist: VecNNZ non-zeros per major-axis vector at distinct
//     positions (gonum stat/sampleuv, sampling without replacement), ±1 values.
//
// Usage:
//
//	s := rng.New(42)
//	buf := make([]float64, m*n)
//	s, err := rng.FillDense(rng.DenseDist{Rows: m, Cols: n}, buf, s)
//
// States are plain values; share them across goroutines freely, but give
// each concurrent job its own State (see Split).
package rng
