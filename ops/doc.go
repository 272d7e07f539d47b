// Package ops is the dense linear-algebra boundary of matgen.
//
// Every routine speaks the column-major contract used across the module:
// an m×n matrix lives in a flat []float64 with element (i,j) at a[i+j*lda]
// and lda ≥ max(1, m). The heavy lifting is delegated to gonum's native
// BLAS and LAPACK (blas64, lapack64), which are row-major. The adapter never
// copies to bridge the two layouts: a column-major m×n buffer is, byte for
// byte, the row-major n×m matrix Aᵀ, so each call is rewritten on that
// transposed view.
//
//	QR of A          ⇔ LQ of Aᵀ        (Gelqf / Orglq)
//	C = op(A)·op(B)  ⇔ Cᵀ = op(B)ᵀ·op(A)ᵀ (Gemm with swapped operands)
//	σ(A)             = σ(Aᵀ)           (Gesvd, values only)
//	‖A‖_F            = ‖Aᵀ‖_F          (Lange)
//
// Functions validate their arguments and return sentinel errors instead of
// letting gonum panic. Inputs are overwritten in place wherever the
// corresponding LAPACK routine does so; callers copy first when they must
// preserve the original.
//
// Complexity:
//   - Level-1: O(n); Gemv O(mn); Gemm O(mnk); QR/SVD O(mn·min(m,n)).
package ops
