// SPDX-License-Identifier: MIT

package svd

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/kabsch/matrix"
)

// Factors is the result of a decomposition M = U · diag(Values) · VT.
//
// For an n×n input, U and VT are n×n and orthogonal, and Values holds n
// non-negative singular values sorted in descending order.
type Factors struct {
	U      *matrix.Dense
	Values []float64
	VT     *matrix.Dense
}

// Decomposer factorizes a square matrix.
// Implementations must not mutate m and must be safe for concurrent use.
type Decomposer interface {
	Decompose(m matrix.Matrix) (*Factors, error)
}

// DecomposerFunc adapts an ordinary function to the Decomposer interface.
type DecomposerFunc func(m matrix.Matrix) (*Factors, error)

// Decompose calls f(m).
func (f DecomposerFunc) Decompose(m matrix.Matrix) (*Factors, error) { return f(m) }

// Rank returns the number of singular values strictly greater than
// rtol·Values[0]. A zero matrix has rank 0 for any rtol.
func (f *Factors) Rank(rtol float64) int {
	if len(f.Values) == 0 || f.Values[0] == 0 {
		return 0
	}
	cut := math.Abs(rtol) * f.Values[0]
	rank := 0
	for _, s := range f.Values {
		if s > cut {
			rank++
		}
	}

	return rank
}

// Reconstruct returns U · diag(Values) · VT.
func (f *Factors) Reconstruct() (matrix.Matrix, error) {
	sigma, err := matrix.NewDiag(f.Values)
	if err != nil {
		return nil, err
	}
	us, err := matrix.Mul(f.U, sigma)
	if err != nil {
		return nil, err
	}

	return matrix.Mul(us, f.VT)
}

// readSquare validates m and copies it into a row-major buffer.
func readSquare(m matrix.Matrix) (int, []float64, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return 0, nil, ErrNilInput
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return 0, nil, fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrNotSquare)
	}
	if err := matrix.ValidateFinite(m); err != nil {
		if errors.Is(err, matrix.ErrNaNInf) {
			return 0, nil, fmt.Errorf("%w: %w", ErrNonFinite, err)
		}
		return 0, nil, err
	}

	n := m.Rows()
	data := make([]float64, n*n)
	var v float64
	var err error
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return 0, nil, err
			}
			data[i*n+j] = v
		}
	}

	return n, data, nil
}
