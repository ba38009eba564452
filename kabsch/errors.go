// SPDX-License-Identifier: MIT
// Package kabsch: sentinel error set.
// Every public function returns one of these (optionally wrapped with the
// failing operation's name); callers match them with errors.Is.

package kabsch

import (
	"errors"
	"fmt"
)

var (
	// ErrNilPointSet is returned when a *PointSet argument is nil.
	ErrNilPointSet = errors.New("kabsch: nil point set")

	// ErrNilTransform is returned when a *Transform argument is nil.
	ErrNilTransform = errors.New("kabsch: nil transform")

	// ErrEmptyPointSet is returned when a point set literal has no axes or no points.
	ErrEmptyPointSet = errors.New("kabsch: empty point set")

	// ErrTooFewPoints is returned when a point set has fewer points than
	// dimensions (N < D). The covariance would be rank-deficient by
	// construction, so the rotation is rejected up front.
	ErrTooFewPoints = errors.New("kabsch: fewer points than dimensions")

	// ErrDimensionMismatch is returned when source and destination differ in
	// dimension or point count, or when a point has the wrong length.
	ErrDimensionMismatch = errors.New("kabsch: dimension mismatch")

	// ErrUndefinedScale is returned when scale estimation is requested but
	// every source point coincides with the centroid, relative to the
	// magnitude of the coordinates (see WithEpsilon).
	ErrUndefinedScale = errors.New("kabsch: undefined scale for zero-variance source")

	// ErrDecomposition wraps a failure reported by the SVD backend.
	ErrDecomposition = errors.New("kabsch: decomposition failed")
)

// kabschErrorf tags err with the public operation name, preserving it for errors.Is.
func kabschErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
