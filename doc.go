// Package matgen manufactures dense test matrices with engineered
// singular-value spectra and checks the numerical properties of matrices
// produced anywhere else.
//
// 🚀 What is matgen?
//
//	A small, deterministic toolkit for testing randomized linear algebra:
//		• Profiles: polynomial, exponential, staircase and bad-CholQR spectra
//		• Families: profile embeddings, gaussian, spiked and adversarial matrices
//		• Diagnostics: condition number, numerical rank, binary rank search,
//		  orthogonality residual, power-iteration spectral norm
//		• Explicit RNG state: every draw takes a state and returns the next one
//
// ✨ Why choose matgen?
//
//   - Reproducible – identical (seed, counter) give identical matrices
//   - Column-major – buffers follow the LAPACK layout callers already use
//   - Backed by gonum BLAS/LAPACK – no cgo
//
// Under the hood, everything is organized under these subpackages:
//
//	ops/         - column-major adapter over gonum blas64/lapack64
//	rng/         - counter-based random state, dense and sparse distributions
//	buffer/      - sizing, reshaping, triangles, permutations, column norms, Dense
//	spectrum/    - closed-form singular-value profiles
//	gen/         - Spec, orthogonal synthesis, family builders, Generate
//	diagnostics/ - condition number, rank, rank search, orthogonality, 2-norm
//	cmd/matgen/  - CLI: YAML job files, concurrent generation, spectrum plots
//
// Quick example:
//
//	spec := gen.NewSpec(200, 50, gen.Exponential, gen.WithCond(1e10))
//	var a buffer.Dense
//	res, next, err := gen.Generate(spec, &a, rng.New(42))
//
//	go get github.com/katalvlaran/matgen/gen
package matgen
