// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Small elementwise and broadcast kernels (ew*) shared by statistics and
//     comparison helpers, plus the public AllClose facade.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1); Dense fast-path on the flat buffer.

package matrix

import "math"

const (
	opBroadcastSubRows = "broadcastSubRows"
	opAllClose         = "AllClose"
)

// ewBroadcastSubRows computes out[i,j] = X[i,j] - rowMeans[i].
// Time: O(r*c). Space: O(r*c). Deterministic i→j loops.
func ewBroadcastSubRows(X Matrix, rowMeans []float64) (Matrix, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opBroadcastSubRows, err)
	}
	r, c := X.Rows(), X.Cols()
	if len(rowMeans) != r {
		return nil, matrixErrorf(opBroadcastSubRows, ErrDimensionMismatch)
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opBroadcastSubRows, err)
	}

	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			base, rm := i*c, rowMeans[i]
			for j := 0; j < c; j++ {
				out.data[base+j] = d.data[base+j] - rm
			}
		}
		return out, nil
	}

	var v float64
	for i := 0; i < r; i++ {
		rm := rowMeans[i]
		for j := 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opBroadcastSubRows, err)
			}
			if err = out.Set(i, j, v-rm); err != nil {
				return nil, matrixErrorf(opBroadcastSubRows, err)
			}
		}
	}

	return out, nil
}

// AllClose reports whether |a[i,j] - b[i,j]| ≤ atol + rtol·|b[i,j]| holds
// for every element (numpy semantics, b is the reference).
// Negative tolerances are taken by absolute value.
//
// Errors:
//   - ErrNaNInf (non-finite tolerance), ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), early exit on the first violation; Space O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if math.Abs(da.data[idx]-db.data[idx]) > atol+rtol*math.Abs(db.data[idx]) {
					return false, nil
				}
			}
			return true, nil
		}
	}

	var av, bv float64
	var err error
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
