// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for row reductions and centering.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kabsch/matrix"
)

func TestRowMeans(t *testing.T) {
	t.Parallel()
	// Three 2-D points stored as columns: (1,4), (2,5), (3,6).
	pts := MustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	for name, m := range map[string]matrix.Matrix{"dense": pts, "fallback": hide{pts}} {
		means, err := matrix.RowMeans(m)
		require.NoError(t, err, name)
		assert.Equal(t, []float64{2, 5}, means, name)
	}
	_, err := matrix.RowMeans(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestCenterRows(t *testing.T) {
	t.Parallel()
	pts := MustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 9}})
	for name, m := range map[string]matrix.Matrix{"dense": pts, "fallback": hide{pts}} {
		c, means, err := matrix.CenterRows(m)
		require.NoError(t, err, name)
		assert.Equal(t, []float64{2, 6}, means, name)
		assert.Equal(t, [][]float64{{-1, 0, 1}, {-2, -1, 3}}, RowsOf(t, c), name)

		// Every row of the centered copy sums to zero.
		rm, err := matrix.RowMeans(c)
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64{0, 0}, rm, 1e-15)
	}
	assert.Equal(t, 1.0, MustAt(t, pts, 0, 0), "input untouched")

	_, _, err := matrix.CenterRows(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestFrobeniusNorm(t *testing.T) {
	t.Parallel()
	m := MustFrom(t, [][]float64{{3, 0}, {0, -4}})
	for name, x := range map[string]matrix.Matrix{"dense": m, "fallback": hide{m}} {
		n, err := matrix.FrobeniusNorm(x)
		require.NoError(t, err, name)
		assert.Equal(t, 5.0, n, name)
	}

	r := MustDense(t, 5, 7)
	RandomFill(t, r, 7)
	var sum float64
	r.Do(func(_, _ int, v float64) bool { sum += v * v; return true })
	n, err := matrix.FrobeniusNorm(r)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(sum), n, 1e-15)

	_, err = matrix.FrobeniusNorm(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
