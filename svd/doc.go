// Package svd exposes singular value decomposition as a swappable capability.
//
// The kabsch estimator only needs "decompose M into U, Σ, Vᵀ" for a small
// square matrix, so that need is expressed as the one-method Decomposer
// interface. Two backends ship with the package:
//
//   - Gonum wraps gonum.org/v1/gonum/mat.SVD (LAPACK-style Golub–Kahan).
//     It is the default used by kabsch.Estimate.
//   - Jacobi is an in-process one-sided (Hestenes) Jacobi SVD. It reaches
//     working precision on the 2×2 and 3×3 covariance matrices kabsch
//     produces in a handful of sweeps.
//
// Both backends return singular values in descending order and orthogonal U
// and V, including a completed null space when the input is rank-deficient.
//
//	f, err := svd.NewJacobi().Decompose(m)
//	if err != nil { ... }
//	// m ≈ f.U · diag(f.Values) · f.VT
package svd
