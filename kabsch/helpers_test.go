// SPDX-License-Identifier: MIT

package kabsch_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kabsch/kabsch"
	"github.com/katalvlaran/kabsch/matrix"
	"github.com/katalvlaran/kabsch/svd"
)

// tol is the absolute tolerance for exact-data recoveries.
const tol = 1e-9

// approx compares float slices element-wise within tol.
var approx = cmpopts.EquateApprox(0, tol)

// backends lists every SVD backend Estimate is exercised with.
func backends() map[string]kabsch.Option {
	return map[string]kabsch.Option{
		"gonum":  kabsch.WithDecomposer(svd.NewGonum()),
		"jacobi": kabsch.WithDecomposer(svd.NewJacobi()),
	}
}

// cloud3 is a non-degenerate 3×6 point set (full-rank covariance).
var cloud3 = [][]float64{
	{0, 1, 0, 0, 1, 2},
	{0, 0, 1, 0, 1, -1},
	{0, 0, 0, 1, 1, 0.5},
}

func mustPointSet(t testing.TB, rows [][]float64) *kabsch.PointSet {
	t.Helper()
	ps, err := kabsch.NewPointSet(rows)
	require.NoError(t, err)
	return ps
}

func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)
	return m
}

// rotZ returns the 3×3 rotation by theta about the z axis.
func rotZ(theta float64) [][]float64 {
	c, s := math.Cos(theta), math.Sin(theta)
	return [][]float64{{c, -s, 0}, {s, c, 0}, {0, 0, 1}}
}

// rotX returns the 3×3 rotation by theta about the x axis.
func rotX(theta float64) [][]float64 {
	c, s := math.Cos(theta), math.Sin(theta)
	return [][]float64{{1, 0, 0}, {0, c, -s}, {0, s, c}}
}

// mul returns a·b for nested literals.
func mul(t testing.TB, a, b [][]float64) *matrix.Dense {
	t.Helper()
	p, err := matrix.Mul(mustDense(t, a), mustDense(t, b))
	require.NoError(t, err)
	d, err := matrix.ToDense(p)
	require.NoError(t, err)
	return d
}

// rowsOf converts a Dense back into a nested literal.
func rowsOf(t testing.TB, m *matrix.Dense) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	var err error
	for i := range out {
		out[i], err = m.Row(i)
		require.NoError(t, err)
	}
	return out
}

// similarity returns c·R·P + t (t broadcast over columns) as a nested literal.
func similarity(t testing.TB, r [][]float64, c float64, tr []float64, p [][]float64) [][]float64 {
	t.Helper()
	out := rowsOf(t, mul(t, r, p))
	for i := range out {
		for j := range out[i] {
			out[i][j] = c*out[i][j] + tr[i]
		}
	}
	return out
}

// centered subtracts the per-row mean from p.
func centered(p [][]float64) [][]float64 {
	out := make([][]float64, len(p))
	for i, row := range p {
		var mean float64
		for _, v := range row {
			mean += v
		}
		mean /= float64(len(row))
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j] = v - mean
		}
	}
	return out
}

// requireClose asserts got ≈ want element-wise.
func requireClose(t testing.TB, want [][]float64, got *matrix.Dense) {
	t.Helper()
	if diff := cmp.Diff(want, rowsOf(t, got), approx); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}

func identityRows(n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		out[i][i] = 1
	}
	return out
}
