// SPDX-License-Identifier: MIT

// Package kabsch: functional configuration for Estimate.
// This file defines:
//   - documented defaults (constants),
//   - Option / Options (functional options with unexported state),
//   - WithX constructors that panic on nonsensical values,
//   - gatherOptions, the single resolver used by Estimate.
package kabsch

import (
	"math"

	"github.com/katalvlaran/kabsch/matrix"
	"github.com/katalvlaran/kabsch/svd"
)

// Defaults (single source of truth).
const (
	// DefaultEpsilon is the relative spread (RMS distance from the centroid
	// over RMS distance from the origin) at or below which scale estimation
	// fails with ErrUndefinedScale.
	DefaultEpsilon = 1e-12

	// DefaultRankTolerance is the relative singular value cutoff used to
	// report Transform.Rank.
	DefaultRankTolerance = matrix.DefaultEpsilon
)

const (
	panicEpsilonInvalid   = "kabsch: WithEpsilon: eps must be finite and in [0, 1)"
	panicDecomposerNil    = "kabsch: WithDecomposer: decomposer must be non-nil"
	panicRankToleranceBad = "kabsch: WithRankTolerance: rtol must be finite and in [0, 1)"
)

// Option mutates the estimator configuration.
type Option func(*Options)

// Options holds the effective configuration after applying Option setters.
// Fields are unexported; Estimate resolves them through gatherOptions.
type Options struct {
	decomposer svd.Decomposer // DefaultDecomposer
	eps        float64        // DefaultEpsilon
	rankTol    float64        // DefaultRankTolerance
}

// DefaultDecomposer returns the SVD backend used when WithDecomposer is not given.
func DefaultDecomposer() svd.Decomposer { return svd.NewGonum() }

// WithDecomposer replaces the SVD backend, e.g. svd.NewJacobi() for an
// in-process solver. Panics on nil.
func WithDecomposer(d svd.Decomposer) Option {
	if d == nil {
		panic(panicDecomposerNil)
	}

	return func(o *Options) { o.decomposer = d }
}

// WithEpsilon sets the relative tolerance that decides, when withScale is
// true, whether the source points all coincide. The source is rejected when
// its RMS spread around the centroid is at most eps times its RMS distance
// from the origin, so the test does not depend on the units of the data.
// eps = 0 rejects only an exactly zero spread. Panics unless eps is in [0, 1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 || eps >= 1 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithRankTolerance sets the relative cutoff for Transform.Rank: a singular
// value counts when it exceeds rtol times the largest one.
func WithRankTolerance(rtol float64) Option {
	if math.IsNaN(rtol) || math.IsInf(rtol, 0) || rtol < 0 || rtol >= 1 {
		panic(panicRankToleranceBad)
	}

	return func(o *Options) { o.rankTol = rtol }
}

func defaultOptions() Options {
	return Options{
		decomposer: DefaultDecomposer(),
		eps:        DefaultEpsilon,
		rankTol:    DefaultRankTolerance,
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
