// SPDX-License-Identifier: MIT

package svd

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/kabsch/matrix"
)

// Gonum decomposes with gonum's mat.SVD (full factorization).
// The zero value is ready to use.
type Gonum struct{}

var _ Decomposer = Gonum{}

// NewGonum returns the gonum-backed Decomposer.
func NewGonum() Gonum { return Gonum{} }

// Decompose factorizes m with mat.SVDFull and converts the factors back into
// matrix.Dense. gonum already orders the singular values descending.
func (Gonum) Decompose(m matrix.Matrix) (*Factors, error) {
	n, data, err := readSquare(m)
	if err != nil {
		return nil, err
	}

	var svd mat.SVD
	if ok := svd.Factorize(mat.NewDense(n, n, data), mat.SVDFull); !ok {
		return nil, ErrNotConverged
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	uOut, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	vtOut, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err = uOut.Set(i, j, u.At(i, j)); err != nil {
				return nil, err
			}
			// VT[i,j] = V[j,i]
			if err = vtOut.Set(i, j, v.At(j, i)); err != nil {
				return nil, err
			}
		}
	}

	return &Factors{U: uOut, Values: svd.Values(nil), VT: vtOut}, nil
}
