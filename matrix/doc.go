// Package matrix provides the dense float64 matrix container used by the
// kabsch estimator.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix that validates its shape at construction
//     (NewDense, NewDenseFrom for nested literals, NewDenseFromSlice for flat
//     literals) and rejects NaN/±Inf on Set by default.
//   - Kernels that always return fresh results: Add, Sub, Mul, Transpose,
//     Scale, MatVec, Det, Trace.
//   - Row reductions for point matrices stored one point per column:
//     RowMeans (centroid), CenterRows, FrobeniusNorm.
//   - View/Induced for writing and extracting blocks (e.g. the rotation block
//     of a homogeneous transform), and AllClose for tolerance comparisons.
//
// Errors are sentinels (ErrDimensionMismatch, ErrBadShape, ...) wrapped with
// the failing operation's name; match them with errors.Is. No function panics
// on user input.
//
// Matrices here are meant to be small (a few rows, up to thousands of
// columns). There is no blocking, threading or BLAS backend.
package matrix
