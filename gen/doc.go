// Package gen synthesizes dense test matrices with engineered singular-value
// spectra.
//
// A caller describes the matrix with a Spec (shape, target rank, family,
// condition number, family-specific scaling) and hands it to Generate along
// with a destination buffer and an explicit rng.State. Generate routes the
// Spec to the family builder, fills the buffer and returns the advanced
// state, so repeated calls with the same inputs yield identical matrices.
//
// Families:
//
//	Polynomial, Exponential, Staircase, BadCholQR
//	    singular values from package spectrum, embedded as A = U·diag(s)·Vᵀ
//	    with random orthonormal U and V (or placed on a k×k diagonal when
//	    Spec.Diagonal is set)
//	Gaussian
//	    i.i.d. N(0,1) entries
//	Spiked
//	    stacked copies of a random orthonormal basis with half as many rows as
//	    columns scaled by Spec.Scaling; highly coherent left singular vectors
//	Adversarial
//	    orthonormalized Gaussian factor with its first rows scaled by
//	    Spec.Scaling, times a perturbed upper-triangular orthonormal factor
//
// Errors: ErrInvalidSpec (checked before any work), ErrUnsupportedFamily.
// Backend failures from package ops are wrapped and propagated.
//
// Concurrency: nothing here starts goroutines or keeps global state;
// concurrent calls are safe as long as they use distinct buffers.
package gen
