// Package kabsch is the module root of a small library for point-set
// registration: given two ordered sets of corresponding points, find the
// rotation, translation and optional uniform scale that align them with the
// least root-mean-square deviation (the Kabsch–Umeyama algorithm).
//
// What is in the module?
//
//	kabsch/    PointSet, Estimate, Transform, RMSD/Residual, EstimateAll
//	svd/       the Decomposer interface with gonum and one-sided Jacobi backends
//	matrix/    the dense float64 matrix container and kernels the estimator uses
//	examples/  runnable demos (go run ./examples)
//
// Why this shape?
//
//   - Shapes are validated once, when a PointSet is built; Estimate only
//     compares two shapes and never panics on user input.
//   - The SVD is a one-method capability, so the estimator does not depend on
//     which solver backs it.
//   - Every call is a pure function of its inputs and is safe for concurrent use.
//
// Quick example:
//
//	src, _ := kabsch.NewPointSet([][]float64{{1, 2, 3}, {4, 5, 6}})
//	dst, _ := kabsch.NewPointSet([][]float64{{2, 3, 4}, {5, 6, 7}})
//	tr, _ := kabsch.Estimate(src, dst, false)
//	fmt.Print(tr)
//	// [1, 0, 1]
//	// [0, 1, 1]
//	// [0, 0, 1]
//
//	go get github.com/katalvlaran/kabsch
package kabsch
