// SPDX-License-Identifier: MIT

package kabsch

import (
	"fmt"

	"github.com/golang/geo/r3"

	"github.com/katalvlaran/kabsch/matrix"
)

const (
	opApply      = "Transform.Apply"
	opApplyPoint = "Transform.ApplyPoint"
	opApplyR3    = "Transform.ApplyR3"
)

// Transform is a D-dimensional similarity transform x ↦ c·R·x + t, stored as
// the (D+1)×(D+1) homogeneous matrix
//
//	[ c·R  t ]
//	[  0   1 ]
//
// R is a proper rotation (orthogonal, det +1) and c ≥ 0 (c = 1 for rigid
// estimates, c = 0 when a scaled estimate maps onto coincident points). A Transform is immutable and safe for concurrent use.
type Transform struct {
	h     *matrix.Dense // homogeneous matrix
	rot   *matrix.Dense // R without scale
	scale float64
	rank  int
}

// newTransform assembles the homogeneous matrix from its parts.
func newTransform(rot *matrix.Dense, scale float64, t []float64, rank int) (*Transform, error) {
	d := rot.Rows()
	h, err := matrix.NewIdentity(d + 1)
	if err != nil {
		return nil, err
	}
	scaled, err := matrix.Scale(rot, scale)
	if err != nil {
		return nil, err
	}
	block, err := h.View(0, 0, d, d)
	if err != nil {
		return nil, err
	}
	if err = block.CopyFrom(scaled); err != nil {
		return nil, err
	}
	for i, v := range t {
		if err = h.Set(i, d, v); err != nil {
			return nil, err
		}
	}

	return &Transform{h: h, rot: rot, scale: scale, rank: rank}, nil
}

// Matrix returns a copy of the (D+1)×(D+1) homogeneous matrix.
func (t *Transform) Matrix() *matrix.Dense {
	cp, _ := matrix.ToDense(t.h.Clone())

	return cp
}

// Dim returns D, the dimension of the points the transform acts on.
func (t *Transform) Dim() int { return t.rot.Rows() }

// Rotation returns a copy of the D×D proper rotation R (without scale).
func (t *Transform) Rotation() *matrix.Dense {
	cp, _ := matrix.ToDense(t.rot.Clone())

	return cp
}

// Translation returns a copy of t.
func (t *Transform) Translation() []float64 {
	d := t.Dim()
	out := make([]float64, d)
	for i := range out {
		out[i], _ = t.h.At(i, d)
	}

	return out
}

// Scale returns the uniform scale c.
func (t *Transform) Scale() float64 { return t.scale }

// Rank returns the number of significant singular values of the covariance
// matrix the transform was estimated from. Rank() < Dim() means the source
// and destination did not span every direction: the rotation is still proper
// but only determined on the spanned subspace.
func (t *Transform) Rank() int { return t.rank }

// Apply maps every point of ps through the transform.
// Implementation:
//   - Stage 1: lift ps to homogeneous coordinates (append a row of ones).
//   - Stage 2: multiply by the homogeneous matrix.
//   - Stage 3: drop the last row.
//
// Errors: ErrNilPointSet, ErrDimensionMismatch.
// Complexity: Time O(D²·N), Space O(D·N).
func (t *Transform) Apply(ps *PointSet) (*PointSet, error) {
	if ps == nil {
		return nil, kabschErrorf(opApply, ErrNilPointSet)
	}
	d, n := t.Dim(), ps.Len()
	if ps.Dim() != d {
		return nil, kabschErrorf(opApply, fmt.Errorf("point set dimension %d, transform %d: %w", ps.Dim(), d, ErrDimensionMismatch))
	}

	lifted, err := matrix.NewDense(d+1, n)
	if err != nil {
		return nil, kabschErrorf(opApply, err)
	}
	top, err := lifted.View(0, 0, d, n)
	if err != nil {
		return nil, kabschErrorf(opApply, err)
	}
	if err = top.CopyFrom(ps.m); err != nil {
		return nil, kabschErrorf(opApply, err)
	}
	for j := 0; j < n; j++ {
		if err = lifted.Set(d, j, 1); err != nil {
			return nil, kabschErrorf(opApply, err)
		}
	}

	prod, err := matrix.Mul(t.h, lifted)
	if err != nil {
		return nil, kabschErrorf(opApply, err)
	}
	hp, err := matrix.ToDense(prod)
	if err != nil {
		return nil, kabschErrorf(opApply, err)
	}
	rows := make([]int, d)
	for i := range rows {
		rows[i] = i
	}
	cols := make([]int, n)
	for j := range cols {
		cols[j] = j
	}
	out, err := hp.Induced(rows, cols)
	if err != nil {
		return nil, kabschErrorf(opApply, err)
	}

	return &PointSet{m: out}, nil
}

// ApplyPoint maps a single point. len(p) must equal Dim().
// Errors: ErrDimensionMismatch, matrix.ErrNaNInf.
func (t *Transform) ApplyPoint(p []float64) ([]float64, error) {
	d := t.Dim()
	if len(p) != d {
		return nil, kabschErrorf(opApplyPoint, fmt.Errorf("point has %d coordinates, want %d: %w", len(p), d, ErrDimensionMismatch))
	}
	x := make([]float64, d+1)
	copy(x, p)
	x[d] = 1
	y, err := matrix.MatVec(t.h, x)
	if err != nil {
		return nil, kabschErrorf(opApplyPoint, err)
	}

	return y[:d], nil
}

// ApplyR3 maps a spatial vector. Errors with ErrDimensionMismatch unless Dim() == 3.
func (t *Transform) ApplyR3(v r3.Vector) (r3.Vector, error) {
	if t.Dim() != 3 {
		return r3.Vector{}, kabschErrorf(opApplyR3, fmt.Errorf("transform dimension %d: %w", t.Dim(), ErrDimensionMismatch))
	}
	y, err := t.ApplyPoint([]float64{v.X, v.Y, v.Z})
	if err != nil {
		return r3.Vector{}, err
	}

	return r3.Vector{X: y[0], Y: y[1], Z: y[2]}, nil
}

// String prints the homogeneous matrix row by row.
func (t *Transform) String() string { return t.h.String() }
