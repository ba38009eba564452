// Package kabsch estimates the similarity transform (rotation, translation and
// optional uniform scale) that best aligns one set of corresponding points
// onto another in the least-squares sense. This is the Kabsch–Umeyama
// algorithm.
//
// What:
//
//   - PointSet holds N points in D dimensions as a D×N matrix, one point per
//     column. Constructors accept per-axis rows (NewPointSet), a flat slice
//     (PointSetFromSlice), per-point slices (PointSetFromPoints) or
//     github.com/golang/geo r2/r3 values. Shapes are validated once, at
//     construction, including N ≥ D.
//   - Estimate(src, dst, withScale) returns a Transform: the
//     (D+1)×(D+1) homogeneous matrix [[c·R, t], [0, 1]] with R a proper
//     rotation (det +1), c the scale (1 when withScale is false) and t the
//     translation.
//   - RMSD and Residual measure the fit.
//
// How:
//
//	centroids → centered sets → covariance (1/N)·Dc·Scᵀ → SVD →
//	reflection correction → R = U·S·Vᵀ → scale → translation → H
//
// The SVD is a pluggable svd.Decomposer; gonum is the default and
// svd.NewJacobi() is an in-process alternative (WithDecomposer).
//
// Degenerate inputs:
//
//   - Collinear or otherwise rank-deficient point sets still yield a proper
//     rotation; Transform.Rank tells how many directions were determined.
//   - With scale estimation, a source whose points all coincide fails with
//     ErrUndefinedScale instead of producing NaN/Inf.
//
// Example:
//
//	src, _ := kabsch.NewPointSet([][]float64{{1, 2, 3}, {4, 5, 6}})
//	dst, _ := kabsch.NewPointSet([][]float64{{2, 3, 4}, {5, 6, 7}})
//	tr, err := kabsch.Estimate(src, dst, false)
//	// tr.Matrix() ≈ [[1 0 1] [0 1 1] [0 0 1]]
//
// Estimate keeps no state between calls and is safe for concurrent use.
package kabsch
