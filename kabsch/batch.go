// SPDX-License-Identifier: MIT

package kabsch

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

const opEstimateAll = "EstimateAll"

// Pair is one source/destination correspondence for EstimateAll.
type Pair struct {
	Src, Dst *PointSet
}

// EstimateAll runs Estimate for every pair concurrently, at most
// GOMAXPROCS at a time, and returns the transforms in input order.
//
// The first failure cancels the pairs that have not started yet and is
// returned wrapped with the index of the failing pair. ctx cancellation is
// checked before each pair starts; a single Estimate is not interruptible.
//
// Errors: ctx.Err(), or any Estimate error.
func EstimateAll(ctx context.Context, pairs []Pair, withScale bool, opts ...Option) ([]*Transform, error) {
	out := make([]*Transform, len(pairs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range pairs {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			tr, err := Estimate(pairs[i].Src, pairs[i].Dst, withScale, opts...)
			if err != nil {
				return kabschErrorf(opEstimateAll, fmt.Errorf("pair %d: %w", i, err))
			}
			out[i] = tr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
