// SPDX-License-Identifier: MIT

package kabsch

import (
	"fmt"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"

	"github.com/katalvlaran/kabsch/matrix"
)

const (
	opNewPointSet        = "NewPointSet"
	opPointSetFromSlice  = "PointSetFromSlice"
	opPointSetFromPoints = "PointSetFromPoints"
	opPointSetFromR2     = "PointSetFromR2"
	opPointSetFromR3     = "PointSetFromR3"
)

// PointSet is an immutable D×N matrix of N points in D dimensions, stored
// one point per column: row k holds the k-th coordinate of every point.
//
// Construction validates the shape once (non-empty, rectangular, finite,
// N ≥ D), so Estimate only has to compare two shapes.
// A PointSet is safe for concurrent reads.
type PointSet struct {
	m *matrix.Dense
}

// NewPointSet builds a point set from per-axis rows: rows[k][i] is coordinate
// k of point i. The input is copied.
//
// Errors: ErrEmptyPointSet, matrix.ErrBadShape (ragged rows),
// matrix.ErrNaNInf, ErrTooFewPoints.
func NewPointSet(rows [][]float64) (*PointSet, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, kabschErrorf(opNewPointSet, ErrEmptyPointSet)
	}
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return nil, kabschErrorf(opNewPointSet, err)
	}

	return wrap(opNewPointSet, m)
}

// PointSetFromSlice builds a d×n point set from a flat row-major slice
// (all x coordinates, then all y coordinates, ...). len(data) must be d*n.
//
// Errors: ErrEmptyPointSet, matrix.ErrBadShape, matrix.ErrNaNInf, ErrTooFewPoints.
func PointSetFromSlice(d, n int, data []float64) (*PointSet, error) {
	if d <= 0 || n <= 0 {
		return nil, kabschErrorf(opPointSetFromSlice, ErrEmptyPointSet)
	}
	m, err := matrix.NewDenseFromSlice(d, n, data)
	if err != nil {
		return nil, kabschErrorf(opPointSetFromSlice, err)
	}

	return wrap(opPointSetFromSlice, m)
}

// PointSetFromPoints builds a point set from one coordinate slice per point.
// Every point must have the same length D.
//
// Errors: ErrEmptyPointSet, ErrDimensionMismatch, matrix.ErrNaNInf, ErrTooFewPoints.
func PointSetFromPoints(points [][]float64) (*PointSet, error) {
	if len(points) == 0 || len(points[0]) == 0 {
		return nil, kabschErrorf(opPointSetFromPoints, ErrEmptyPointSet)
	}
	d, n := len(points[0]), len(points)
	data := make([]float64, d*n)
	for i, p := range points {
		if len(p) != d {
			return nil, kabschErrorf(opPointSetFromPoints,
				fmt.Errorf("point %d has %d coordinates, want %d: %w", i, len(p), d, ErrDimensionMismatch))
		}
		for k, v := range p {
			data[k*n+i] = v
		}
	}

	return PointSetFromSlice(d, n, data)
}

// PointSetFromR2 builds a 2×N point set from planar points.
func PointSetFromR2(points []r2.Point) (*PointSet, error) {
	n := len(points)
	if n == 0 {
		return nil, kabschErrorf(opPointSetFromR2, ErrEmptyPointSet)
	}
	data := make([]float64, 2*n)
	for i, p := range points {
		data[i], data[n+i] = p.X, p.Y
	}
	ps, err := PointSetFromSlice(2, n, data)
	if err != nil {
		return nil, kabschErrorf(opPointSetFromR2, err)
	}

	return ps, nil
}

// PointSetFromR3 builds a 3×N point set from spatial vectors.
func PointSetFromR3(points []r3.Vector) (*PointSet, error) {
	n := len(points)
	if n == 0 {
		return nil, kabschErrorf(opPointSetFromR3, ErrEmptyPointSet)
	}
	data := make([]float64, 3*n)
	for i, p := range points {
		data[i], data[n+i], data[2*n+i] = p.X, p.Y, p.Z
	}
	ps, err := PointSetFromSlice(3, n, data)
	if err != nil {
		return nil, kabschErrorf(opPointSetFromR3, err)
	}

	return ps, nil
}

// wrap enforces N ≥ D on a freshly built matrix the PointSet will own.
func wrap(op string, m *matrix.Dense) (*PointSet, error) {
	if m.Cols() < m.Rows() {
		return nil, kabschErrorf(op, fmt.Errorf("%d points in %d dimensions: %w", m.Cols(), m.Rows(), ErrTooFewPoints))
	}

	return &PointSet{m: m}, nil
}

// Dim returns D, the number of coordinates per point.
func (p *PointSet) Dim() int { return p.m.Rows() }

// Len returns N, the number of points.
func (p *PointSet) Len() int { return p.m.Cols() }

// Point returns a copy of the coordinates of point i.
// Errors: matrix.ErrOutOfRange.
func (p *PointSet) Point(i int) ([]float64, error) {
	return p.m.Col(i)
}

// Matrix returns a copy of the underlying D×N matrix.
func (p *PointSet) Matrix() *matrix.Dense {
	cp, _ := matrix.ToDense(p.m.Clone()) // Clone of a Dense is a Dense

	return cp
}

// Centroid returns the mean of all points (the per-row mean).
func (p *PointSet) Centroid() []float64 {
	means, _ := matrix.RowMeans(p.m) // p.m is never nil

	return means
}

// R3 returns the points as spatial vectors. Errors with ErrDimensionMismatch
// unless D == 3.
func (p *PointSet) R3() ([]r3.Vector, error) {
	if p.Dim() != 3 {
		return nil, fmt.Errorf("R3: dimension %d: %w", p.Dim(), ErrDimensionMismatch)
	}
	out := make([]r3.Vector, p.Len())
	var err error
	for i := range out {
		if out[i].X, err = p.m.At(0, i); err != nil {
			return nil, err
		}
		if out[i].Y, err = p.m.At(1, i); err != nil {
			return nil, err
		}
		if out[i].Z, err = p.m.At(2, i); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// String prints the point matrix row by row.
func (p *PointSet) String() string { return p.m.String() }
