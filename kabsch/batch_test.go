// SPDX-License-Identifier: MIT

package kabsch_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kabsch/kabsch"
	"github.com/katalvlaran/kabsch/matrix"
)

func TestEstimateAll_PreservesOrder(t *testing.T) {
	t.Parallel()
	src := mustPointSet(t, cloud3)
	pairs := make([]kabsch.Pair, 16)
	for i := range pairs {
		pairs[i] = kabsch.Pair{
			Src: src,
			Dst: mustPointSet(t, similarity(t, rotZ(0.1*float64(i)), 1, []float64{float64(i), 0, 0}, cloud3)),
		}
	}

	got, err := kabsch.EstimateAll(context.Background(), pairs, false)
	require.NoError(t, err)
	require.Len(t, got, len(pairs))
	for i, tr := range got {
		want, err := kabsch.Estimate(pairs[i].Src, pairs[i].Dst, false)
		require.NoError(t, err)
		ok, err := matrix.AllClose(tr.Matrix(), want.Matrix(), 0, 0)
		require.NoError(t, err)
		assert.True(t, ok, "pair %d", i)
		assert.InDelta(t, float64(i), tr.Translation()[0], tol)
	}
}

func TestEstimateAll_Empty(t *testing.T) {
	t.Parallel()
	got, err := kabsch.EstimateAll(context.Background(), nil, true)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEstimateAll_FirstError(t *testing.T) {
	t.Parallel()
	src := mustPointSet(t, cloud3)
	pairs := []kabsch.Pair{
		{Src: src, Dst: src},
		{Src: src, Dst: mustPointSet(t, [][]float64{{0, 1, 2}, {0, 1, 2}})},
		{Src: src, Dst: src},
	}
	got, err := kabsch.EstimateAll(context.Background(), pairs, false)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, kabsch.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "pair 1")
}

func TestEstimateAll_Canceled(t *testing.T) {
	t.Parallel()
	src := mustPointSet(t, cloud3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := kabsch.EstimateAll(ctx, []kabsch.Pair{{Src: src, Dst: src}}, false)
	assert.ErrorIs(t, err, context.Canceled)
}
