// SPDX-License-Identifier: MIT

package kabsch_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kabsch/kabsch"
)

func TestRMSD(t *testing.T) {
	t.Parallel()
	a := mustPointSet(t, [][]float64{{0, 0, 0}, {0, 0, 0}})
	b := mustPointSet(t, [][]float64{{3, 0, 0}, {4, 0, 0}})

	// One point off by 5, two exact: sqrt(25/3).
	got, err := kabsch.RMSD(a, b)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(25.0/3.0), got, tol)

	self, err := kabsch.RMSD(b, b)
	require.NoError(t, err)
	assert.Equal(t, 0.0, self)
}

func TestRMSD_Errors(t *testing.T) {
	t.Parallel()
	a := mustPointSet(t, [][]float64{{0, 1, 2}, {0, 1, 2}})
	b := mustPointSet(t, [][]float64{{0, 1}, {0, 1}})

	_, err := kabsch.RMSD(nil, a)
	assert.ErrorIs(t, err, kabsch.ErrNilPointSet)
	_, err = kabsch.RMSD(a, b)
	assert.ErrorIs(t, err, kabsch.ErrDimensionMismatch)
}

func TestResidual(t *testing.T) {
	t.Parallel()
	src := mustPointSet(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	dst := mustPointSet(t, [][]float64{{2, 3, 4}, {5, 6, 7}})

	tr, err := kabsch.Estimate(src, dst, false)
	require.NoError(t, err)
	res, err := kabsch.Residual(tr, src, dst)
	require.NoError(t, err)
	assert.InDelta(t, 0, res, tol)

	// Before alignment the residual equals the raw RMSD: every point is off by (1,1).
	raw, err := kabsch.RMSD(src, dst)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, raw, tol)

	_, err = kabsch.Residual(nil, src, dst)
	assert.ErrorIs(t, err, kabsch.ErrNilTransform)
	_, err = kabsch.Residual(tr, nil, dst)
	assert.ErrorIs(t, err, kabsch.ErrNilPointSet)
}
