// SPDX-License-Identifier: MIT

package kabsch

import (
	"fmt"
	"math"

	"github.com/katalvlaran/kabsch/matrix"
)

const (
	opRMSD     = "RMSD"
	opResidual = "Residual"
)

// RMSD returns the root-mean-square deviation between corresponding points:
//
//	sqrt( (1/N) Σ_i ‖a_i − b_i‖² ) = ‖A − B‖_F / sqrt(N)
//
// Errors: ErrNilPointSet, ErrDimensionMismatch.
func RMSD(a, b *PointSet) (float64, error) {
	if a == nil || b == nil {
		return 0, kabschErrorf(opRMSD, ErrNilPointSet)
	}
	if a.Dim() != b.Dim() || a.Len() != b.Len() {
		return 0, kabschErrorf(opRMSD, fmt.Errorf("%dx%d vs %dx%d: %w", a.Dim(), a.Len(), b.Dim(), b.Len(), ErrDimensionMismatch))
	}
	diff, err := matrix.Sub(a.m, b.m)
	if err != nil {
		return 0, kabschErrorf(opRMSD, err)
	}
	fro, err := matrix.FrobeniusNorm(diff)
	if err != nil {
		return 0, kabschErrorf(opRMSD, err)
	}

	return fro / math.Sqrt(float64(a.Len())), nil
}

// Residual returns RMSD(t.Apply(src), dst), the quantity Estimate minimizes.
// Errors: ErrNilTransform, ErrNilPointSet, ErrDimensionMismatch.
func Residual(t *Transform, src, dst *PointSet) (float64, error) {
	if t == nil {
		return 0, kabschErrorf(opResidual, ErrNilTransform)
	}
	moved, err := t.Apply(src)
	if err != nil {
		return 0, kabschErrorf(opResidual, err)
	}

	return RMSD(moved, dst)
}
