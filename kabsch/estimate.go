// SPDX-License-Identifier: MIT

package kabsch

import (
	"fmt"

	"github.com/katalvlaran/kabsch/matrix"
	"github.com/katalvlaran/kabsch/svd"
)

const opEstimate = "Estimate"

// Estimate returns the similarity transform that maps src onto dst with the
// smallest root-mean-square deviation, assuming column i of src and column i
// of dst are the same physical point (Kabsch–Umeyama).
//
// Implementation:
//   - Stage 1: centroids μs, μd (row means) and centered sets Sc, Dc.
//   - Stage 2: covariance C = (1/N)·Dc·Scᵀ (D×D).
//   - Stage 3: C = U·diag(σ)·Vᵀ via the configured svd.Decomposer.
//   - Stage 4: d = sign(det U · det Vᵀ), S = diag(1, ..., 1, d),
//     R = U·S·Vᵀ. S flips the weakest axis whenever U·Vᵀ would be a
//     reflection, so det R = +1 always.
//   - Stage 5: c = tr(diag(σ)·S) / var(Sc) when withScale, else c = 1.
//     var(Sc) = (1/N)·‖Sc‖²_F, the same normalization as C.
//   - Stage 6: t = μd − c·R·μs, then H = [[c·R, t], [0, 1]].
//
// Behavior highlights:
//   - Rank-deficient covariance (collinear or coincident points) is not an
//     error. The rotation is still proper and exact on the spanned subspace,
//     but arbitrary inside the null space. Transform.Rank reports how many
//     directions were actually determined.
//   - No partial results: either a complete Transform or an error.
//
// Errors:
//   - ErrNilPointSet, ErrDimensionMismatch (D or N differ).
//   - ErrUndefinedScale when withScale and the source spread is negligible
//     next to its RMS radius: var(Sc) ≤ eps²·(var(Sc) + ‖μs‖²) (see WithEpsilon).
//   - ErrDecomposition wrapping the backend error, or when the backend
//     returns factors of the wrong shape or values out of descending order.
//
// Concurrency:
//   - No shared state; safe to call from many goroutines on shared inputs.
//
// Complexity:
//   - Time O(D²·N + D³), Space O(D·N).
func Estimate(src, dst *PointSet, withScale bool, opts ...Option) (*Transform, error) {
	if src == nil || dst == nil {
		return nil, kabschErrorf(opEstimate, ErrNilPointSet)
	}
	if src.Dim() != dst.Dim() || src.Len() != dst.Len() {
		return nil, kabschErrorf(opEstimate, fmt.Errorf("src %dx%d, dst %dx%d: %w",
			src.Dim(), src.Len(), dst.Dim(), dst.Len(), ErrDimensionMismatch))
	}
	o := gatherOptions(opts...)
	d, n := src.Dim(), src.Len()

	// Stage 1: centroids and centered copies.
	srcC, muSrc, err := matrix.CenterRows(src.m)
	if err != nil {
		return nil, kabschErrorf(opEstimate, err)
	}
	dstC, muDst, err := matrix.CenterRows(dst.m)
	if err != nil {
		return nil, kabschErrorf(opEstimate, err)
	}

	// Stage 2: covariance.
	cov, err := covariance(dstC, srcC, n)
	if err != nil {
		return nil, kabschErrorf(opEstimate, err)
	}

	// Stage 3: SVD.
	f, err := o.decomposer.Decompose(cov)
	if err != nil {
		return nil, kabschErrorf(opEstimate, fmt.Errorf("%w: %w", ErrDecomposition, err))
	}
	if err = checkFactors(f, d); err != nil {
		return nil, kabschErrorf(opEstimate, err)
	}

	// Stage 4: reflection-corrected rotation.
	correction, err := reflectionCorrection(f, d)
	if err != nil {
		return nil, kabschErrorf(opEstimate, err)
	}
	rot, err := rotation(f, correction)
	if err != nil {
		return nil, kabschErrorf(opEstimate, err)
	}

	// Stage 5: scale.
	scale := 1.0
	if withScale {
		if scale, err = optimalScale(f, correction, srcC, muSrc, n, o.eps); err != nil {
			return nil, kabschErrorf(opEstimate, err)
		}
	}

	// Stage 6: translation and homogeneous assembly.
	rMu, err := matrix.MatVec(rot, muSrc)
	if err != nil {
		return nil, kabschErrorf(opEstimate, err)
	}
	t := make([]float64, d)
	for i := range t {
		t[i] = muDst[i] - scale*rMu[i]
	}

	tr, err := newTransform(rot, scale, t, f.Rank(o.rankTol))
	if err != nil {
		return nil, kabschErrorf(opEstimate, err)
	}

	return tr, nil
}

// covariance returns (1/n)·dstC·srcCᵀ.
func covariance(dstC, srcC matrix.Matrix, n int) (*matrix.Dense, error) {
	srcCT, err := matrix.Transpose(srcC)
	if err != nil {
		return nil, err
	}
	prod, err := matrix.Mul(dstC, srcCT)
	if err != nil {
		return nil, err
	}
	cov, err := matrix.Scale(prod, 1/float64(n))
	if err != nil {
		return nil, err
	}

	return matrix.ToDense(cov)
}

// checkFactors rejects backend output that does not have the D×D shape
// Estimate relies on, or whose values are not sorted in descending order
// (the reflection correction always flips the last, weakest axis).
func checkFactors(f *svd.Factors, d int) error {
	switch {
	case f == nil || f.U == nil || f.VT == nil:
		return fmt.Errorf("%w: backend returned nil factors", ErrDecomposition)
	case f.U.Rows() != d || f.U.Cols() != d || f.VT.Rows() != d || f.VT.Cols() != d || len(f.Values) != d:
		return fmt.Errorf("%w: backend returned factors of the wrong shape", ErrDecomposition)
	}
	for i := 1; i < d; i++ {
		if f.Values[i] > f.Values[i-1] {
			return fmt.Errorf("%w: singular values %v not in descending order", ErrDecomposition, f.Values)
		}
	}

	return nil
}

// reflectionCorrection returns the diagonal of S: all ones, except the last
// entry, which is sign(det U · det Vᵀ).
func reflectionCorrection(f *svd.Factors, d int) ([]float64, error) {
	detU, err := matrix.Det(f.U)
	if err != nil {
		return nil, err
	}
	detVT, err := matrix.Det(f.VT)
	if err != nil {
		return nil, err
	}

	s := make([]float64, d)
	for i := range s {
		s[i] = 1
	}
	if detU*detVT < 0 {
		s[d-1] = -1
	}

	return s, nil
}

// rotation returns U·diag(correction)·Vᵀ.
func rotation(f *svd.Factors, correction []float64) (*matrix.Dense, error) {
	s, err := matrix.NewDiag(correction)
	if err != nil {
		return nil, err
	}
	us, err := matrix.Mul(f.U, s)
	if err != nil {
		return nil, err
	}
	r, err := matrix.Mul(us, f.VT)
	if err != nil {
		return nil, err
	}

	return matrix.ToDense(r)
}

// optimalScale returns tr(diag(σ)·S) / var(srcC).
//
// The source is degenerate when its RMS spread around the centroid is at most
// eps times its RMS distance from the origin. mean‖x‖² = var + ‖μ‖², so the
// test is var ≤ eps²·(var + ‖μ‖²). It is unit-free: a set with nanometre
// spacing passes, while rounding residue of coincident points far from the
// origin does not.
func optimalScale(f *svd.Factors, correction []float64, srcC matrix.Matrix, mu []float64, n int, eps float64) (float64, error) {
	fro, err := matrix.FrobeniusNorm(srcC)
	if err != nil {
		return 0, err
	}
	variance := fro * fro / float64(n)
	meanSq := variance
	for _, v := range mu {
		meanSq += v * v
	}
	if variance <= eps*eps*meanSq {
		return 0, fmt.Errorf("source variance %g at mean square radius %g: %w", variance, meanSq, ErrUndefinedScale)
	}

	sigma, err := matrix.NewDiag(f.Values)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrDecomposition, err)
	}
	s, err := matrix.NewDiag(correction)
	if err != nil {
		return 0, err
	}
	prod, err := matrix.Mul(sigma, s)
	if err != nil {
		return 0, err
	}
	tr, err := matrix.Trace(prod)
	if err != nil {
		return 0, err
	}

	return tr / variance, nil
}
