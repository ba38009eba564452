// SPDX-License-Identifier: MIT
// Package matrix: linear-algebra kernels over any Matrix implementation.
//
// Purpose:
//   - Elementwise Add/Sub, product Mul, Transpose, Scale, MatVec.
//   - Square-matrix scalars: Det (partially pivoted LU) and Trace.
//
// Notes:
//   - Every kernel validates through validators.go and wraps failures with an
//     op* tag via matrixErrorf, so errors.Is keeps matching the sentinels.
//   - *Dense operands take a flat-slice fast path; anything else goes through At/Set.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value of every accumulator in this file.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMatVec    = "MatVec"
	opDet       = "Det"
	opTrace     = "Trace"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ToDense returns m itself when it is a *Dense, otherwise a *Dense copy read
// through At. The result aliases m in the first case; Clone it before writing.
// Every kernel in this package returns a *Dense, so converting a kernel
// result is O(1).
//
// Errors: ErrNilMatrix; wrapped At errors.
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func ToDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Shared body of Add and Sub: one validation, one allocation, one pass.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shape check), allocation errors.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: both *Dense → one flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}
			return res, nil
		}
	}

	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if err = res.Set(i, j, av+sign*bv); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
		}
	}

	return res, nil
}

// Add returns a fresh Dense with C[i,j] = A[i,j] + B[i,j].
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub returns a fresh Dense with C[i,j] = A[i,j] - B[i,j].
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul performs the matrix product C = A × B into a freshly allocated Dense.
// Implementation:
//   - Stage 1: ValidateMulCompatible (non-nil, A.Cols == B.Rows).
//   - Stage 2: *Dense operands use an i→k→j row-major walk that skips zero A[i,k];
//     other implementations use an i→j→k dot-product loop through At.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var i, j, k int
	var av, bv, acc float64
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowA, rowB, rowR int
			for i = 0; i < aRows; i++ {
				rowA, rowR = i*aCols, i*bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowA+k]
					if av == 0 {
						continue
					}
					rowB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowR+j] += av * db.data[rowB+j]
					}
				}
			}
			return res, nil
		}
	}

	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			acc = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				acc += av * bv
			}
			if err = res.Set(i, j, acc); err != nil {
				return nil, matrixErrorf(opMul, err)
			}
		}
	}

	return res, nil
}

// Transpose returns a new c×r Dense holding mᵀ. The input is never mutated.
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[i*cols+j]
			}
		}
		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
		}
	}

	return res, nil
}

// Scale returns a new Dense with elements alpha * m[i,j].
// alpha = 0 yields an explicit zero matrix of the same shape.
//
// Errors: ErrNilMatrix; ErrNaNInf when alpha*m[i,j] overflows under the
// numeric policy (generic path only, the Dense path checks after the loop).
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if isNonFinite(alpha) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if dm, ok := m.(*Dense); ok {
		for idx, v := range dm.data {
			res.data[idx] = v * alpha
		}
		if res.validateNaNInf {
			if err = ValidateFinite(res); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
		}
		return res, nil
	}

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			if err = res.Set(i, j, v*alpha); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
		}
	}

	return res, nil
}

// MatVec computes y = m · x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	var i, j int
	var acc float64
	if d, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			acc = ZeroSum
			base = i * cols
			for j = 0; j < cols; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}
		return y, nil
	}

	var v float64
	var err error
	for i = 0; i < rows; i++ {
		acc = ZeroSum
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			acc += v * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Det returns the determinant of a square matrix.
// Implementation:
//   - Stage 1: ValidateSquare; copy the input into a scratch *Dense.
//   - Stage 2: Gaussian elimination with partial pivoting (largest |a[k,col]|
//     below the diagonal); every row swap flips the sign.
//   - Stage 3: det = sign · Π pivots.
//
// Behavior highlights:
//   - A zero pivot column means the matrix is singular: Det returns 0, nil.
//     Singularity is a value here, not an error.
//   - Closed forms for 1×1 and 2×2 avoid elimination round-off entirely.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//
// Determinism:
//   - Pivot ties resolve to the lowest row index.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the scratch copy.
func Det(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	src, err := ToDense(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	n := src.r
	switch n {
	case 1:
		return src.data[0], nil
	case 2:
		return src.data[0]*src.data[3] - src.data[1]*src.data[2], nil
	}

	a := src.clone() // elimination runs in place on the scratch copy
	det := 1.0
	var col, row, k, pivotRow int
	var best, v, factor float64
	for col = 0; col < n; col++ {
		// Pick the pivot with the largest magnitude in this column.
		pivotRow, best = col, math.Abs(a.data[col*n+col])
		for row = col + 1; row < n; row++ {
			if v = math.Abs(a.data[row*n+col]); v > best {
				pivotRow, best = row, v
			}
		}
		if best == 0 {
			return 0, nil
		}
		if pivotRow != col {
			for k = 0; k < n; k++ {
				a.data[col*n+k], a.data[pivotRow*n+k] = a.data[pivotRow*n+k], a.data[col*n+k]
			}
			det = -det
		}
		det *= a.data[col*n+col]
		for row = col + 1; row < n; row++ {
			factor = a.data[row*n+col] / a.data[col*n+col]
			if factor == 0 {
				continue
			}
			for k = col; k < n; k++ {
				a.data[row*n+k] -= factor * a.data[col*n+k]
			}
		}
	}

	return det, nil
}

// Trace returns Σ m[i,i] of a square matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n).
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var sum = ZeroSum
	var v float64
	var err error
	for i := 0; i < m.Rows(); i++ {
		if v, err = m.At(i, i); err != nil {
			return 0, matrixErrorf(opTrace, err)
		}
		sum += v
	}

	return sum, nil
}
