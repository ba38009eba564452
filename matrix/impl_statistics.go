// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Row reductions and centering used by point-set statistics: a D×N matrix
//     stores one point per column, so the centroid is the vector of row means.
//
// Exposed API:
//   - RowMeans(X)      -> means              // mean over columns, one value per row
//   - CenterRows(X)    -> (Xc, means)        // subtract per-row mean
//   - FrobeniusNorm(X) -> ‖X‖_F
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At/Set and operate on row-major flat buffers.

package matrix

import "math"

// Operation name constants for unified error wrapping.
const (
	opRowMeans      = "RowMeans"
	opCenterRows    = "CenterRows"
	opFrobeniusNorm = "FrobeniusNorm"
)

// RowMeans returns μ with μ[i] = (1/c) Σ_j X[i,j].
// For a point matrix (rows = axes, columns = points) this is the centroid.
//
// Errors:
//   - ErrNilMatrix; wrapped At errors on the generic path.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func RowMeans(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opRowMeans, err)
	}
	r, c := X.Rows(), X.Cols()
	means := make([]float64, r)
	if c == 0 {
		return means, nil
	}

	var i, j int
	var s, v float64
	if d, ok := X.(*Dense); ok {
		var base int
		for i = 0; i < r; i++ {
			s, base = ZeroSum, i*c
			for j = 0; j < c; j++ {
				s += d.data[base+j]
			}
			means[i] = s / float64(c)
		}
		return means, nil
	}

	var err error
	for i = 0; i < r; i++ {
		s = ZeroSum
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opRowMeans, err)
			}
			s += v
		}
		means[i] = s / float64(c)
	}

	return means, nil
}

// CenterRows subtracts the per-row mean from every element.
// Implementation:
//   - Stage 1: RowMeans(X).
//   - Stage 2: ewBroadcastSubRows builds the centered copy.
//
// Returns:
//   - Matrix: centered copy (r×c); every row sums to ~0.
//   - []float64: the row means that were removed (len = r).
//
// Errors:
//   - ErrNilMatrix; wrapped At/Set errors.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Keep the returned means: they are the centroid needed to rebuild a translation.
func CenterRows(X Matrix) (Matrix, []float64, error) {
	means, err := RowMeans(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterRows, err)
	}
	Xc, err := ewBroadcastSubRows(X, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterRows, err)
	}

	return Xc, means, nil
}

// FrobeniusNorm returns sqrt(Σ X[i,j]²).
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(1).
func FrobeniusNorm(X Matrix) (float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return 0, matrixErrorf(opFrobeniusNorm, err)
	}
	var sum = ZeroSum
	if d, ok := X.(*Dense); ok {
		for _, v := range d.data {
			sum += v * v
		}
		return math.Sqrt(sum), nil
	}

	var v float64
	var err error
	for i := 0; i < X.Rows(); i++ {
		for j := 0; j < X.Cols(); j++ {
			if v, err = X.At(i, j); err != nil {
				return 0, matrixErrorf(opFrobeniusNorm, err)
			}
			sum += v * v
		}
	}

	return math.Sqrt(sum), nil
}
