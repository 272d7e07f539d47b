// SPDX-License-Identifier: MIT
// Package ops: vector kernels (BLAS level 1).

package ops

import "gonum.org/v1/gonum/blas/blas64"

// Copy sets y ← x for n strided elements.
func Copy(n int, x []float64, incX int, y []float64, incY int) error {
	if err := checkVector(opCopy, n, incX, x); err != nil {
		return err
	}
	if err := checkVector(opCopy, n, incY, y); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	blas64.Copy(vec(n, incX, x), vec(n, incY, y))

	return nil
}

// Scal sets x ← alpha·x for n elements with positive increment incX.
func Scal(n int, alpha float64, x []float64, incX int) error {
	if incX < 0 {
		return opsErrorf(opScal, ErrDimensionMismatch, "inc=%d", incX)
	}
	if err := checkVector(opScal, n, incX, x); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	blas64.Scal(alpha, vec(n, incX, x))

	return nil
}

// Axpy sets y ← alpha·x + y.
func Axpy(n int, alpha float64, x []float64, incX int, y []float64, incY int) error {
	if err := checkVector(opAxpy, n, incX, x); err != nil {
		return err
	}
	if err := checkVector(opAxpy, n, incY, y); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	blas64.Axpy(alpha, vec(n, incX, x), vec(n, incY, y))

	return nil
}

// Dot returns xᵀy.
func Dot(n int, x []float64, incX int, y []float64, incY int) (float64, error) {
	if err := checkVector(opDot, n, incX, x); err != nil {
		return 0, err
	}
	if err := checkVector(opDot, n, incY, y); err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, nil
	}

	return blas64.Dot(vec(n, incX, x), vec(n, incY, y)), nil
}

// Nrm2 returns the Euclidean norm of n elements of x (incX > 0).
func Nrm2(n int, x []float64, incX int) (float64, error) {
	if incX < 0 {
		return 0, opsErrorf(opNrm2, ErrDimensionMismatch, "inc=%d", incX)
	}
	if err := checkVector(opNrm2, n, incX, x); err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, nil
	}

	return blas64.Nrm2(vec(n, incX, x)), nil
}

// Swap exchanges x and y element-wise.
func Swap(n int, x []float64, incX int, y []float64, incY int) error {
	if err := checkVector(opSwap, n, incX, x); err != nil {
		return err
	}
	if err := checkVector(opSwap, n, incY, y); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	blas64.Swap(vec(n, incX, x), vec(n, incY, y))

	return nil
}
