// SPDX-License-Identifier: MIT

package svd

import "errors"

var (
	// ErrNotSquare is returned when the input matrix is not square.
	ErrNotSquare = errors.New("svd: matrix is not square")

	// ErrNilInput is returned for a nil input matrix.
	ErrNilInput = errors.New("svd: nil matrix")

	// ErrNotConverged is returned when the backend could not factorize the
	// input (gonum reported failure, or Jacobi ran out of sweeps).
	ErrNotConverged = errors.New("svd: factorization did not converge")

	// ErrNonFinite is returned when the input holds NaN or ±Inf.
	ErrNonFinite = errors.New("svd: NaN or Inf in input")
)
