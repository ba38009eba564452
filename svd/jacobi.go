// SPDX-License-Identifier: MIT

package svd

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/kabsch/matrix"
)

// Jacobi defaults.
const (
	// DefaultTolerance bounds the relative non-orthogonality of every column
	// pair at convergence: |wpᵀwq| ≤ tol·‖wp‖·‖wq‖.
	DefaultTolerance = 1e-14

	// DefaultMaxSweeps caps the number of full (p,q) sweeps. Small matrices
	// converge quadratically, typically in 4–8 sweeps.
	DefaultMaxSweeps = 60

	// nullScale multiplies n·σmax·machEps to decide that a column collapsed to zero.
	nullScale = 4.0
	machEps   = 2.220446049250313e-16
)

const (
	panicToleranceInvalid = "svd: WithTolerance: tol must be finite and in (0, 1)"
	panicSweepsInvalid    = "svd: WithMaxSweeps: sweeps must be > 0"
)

// JacobiOption configures a Jacobi decomposer.
type JacobiOption func(*Jacobi)

// WithTolerance sets the relative orthogonality tolerance.
// Panics on a non-finite value or one outside (0, 1).
func WithTolerance(tol float64) JacobiOption {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 || tol >= 1 {
		panic(panicToleranceInvalid)
	}

	return func(j *Jacobi) { j.tol = tol }
}

// WithMaxSweeps sets the sweep cap. Panics when sweeps <= 0.
func WithMaxSweeps(sweeps int) JacobiOption {
	if sweeps <= 0 {
		panic(panicSweepsInvalid)
	}

	return func(j *Jacobi) { j.maxSweeps = sweeps }
}

// Jacobi is a one-sided (Hestenes) Jacobi SVD for square matrices.
//
// Algorithm Outline:
//  1. W := A, V := I.
//  2. Sweep over every column pair (p,q): with α=‖wp‖², β=‖wq‖², γ=wpᵀwq,
//     rotate columns p,q of W and V by the plane rotation that makes wp ⟂ wq.
//  3. Stop when no pair exceeds the tolerance. Then W = A·V has orthogonal
//     columns: σj = ‖wj‖ and uj = wj/σj.
//  4. Columns with σj ≈ 0 get their uj from Gram–Schmidt over the standard
//     basis, so U stays orthogonal for rank-deficient inputs.
//  5. Reorder (σ, U, V) by descending σ.
//
// Complexity: O(sweeps · n³) time, O(n²) space.
type Jacobi struct {
	tol       float64
	maxSweeps int
}

var _ Decomposer = (*Jacobi)(nil)

// NewJacobi returns a Jacobi decomposer with defaults overridden by opts.
func NewJacobi(opts ...JacobiOption) *Jacobi {
	j := &Jacobi{tol: DefaultTolerance, maxSweeps: DefaultMaxSweeps}
	for _, opt := range opts {
		opt(j)
	}

	return j
}

// Decompose factorizes m. Errors: ErrNilInput, ErrNotSquare, ErrNonFinite,
// ErrNotConverged.
func (jc *Jacobi) Decompose(m matrix.Matrix) (*Factors, error) {
	n, w, err := readSquare(m)
	if err != nil {
		return nil, err
	}
	v := identity(n)

	if err = jc.orthogonalize(n, w, v); err != nil {
		return nil, err
	}

	// Column norms are the singular values, unordered.
	sigma := make([]float64, n)
	var i, j int
	var s float64
	for j = 0; j < n; j++ {
		s = 0
		for i = 0; i < n; i++ {
			s += w[i*n+j] * w[i*n+j]
		}
		sigma[j] = math.Sqrt(s)
	}

	order := make([]int, n)
	for j = range order {
		order[j] = j
	}
	sort.SliceStable(order, func(a, b int) bool { return sigma[order[a]] > sigma[order[b]] })

	values := make([]float64, n)
	u := make([]float64, n*n)
	vt := make([]float64, n*n)
	cut := nullScale * float64(n) * machEps * sigma[order[0]]
	filled := make([]bool, n)
	var src int
	for j = 0; j < n; j++ {
		src = order[j]
		values[j] = sigma[src]
		for i = 0; i < n; i++ {
			vt[j*n+i] = v[i*n+src] // row j of Vᵀ is column src of V
		}
		if sigma[src] > cut && sigma[src] > 0 {
			for i = 0; i < n; i++ {
				u[i*n+j] = w[i*n+src] / sigma[src]
			}
			filled[j] = true
		} else {
			values[j] = 0
		}
	}
	completeBasis(n, u, filled)

	uOut, err := matrix.NewDenseFromSlice(n, n, u)
	if err != nil {
		return nil, err
	}
	vtOut, err := matrix.NewDenseFromSlice(n, n, vt)
	if err != nil {
		return nil, err
	}

	return &Factors{U: uOut, Values: values, VT: vtOut}, nil
}

// orthogonalize runs Jacobi sweeps on the row-major n×n buffers w and v in place.
func (jc *Jacobi) orthogonalize(n int, w, v []float64) error {
	var (
		sweep, p, q, i        int
		alpha, beta, gamma    float64
		zeta, t, c, s, wp, wq float64
		rotated               bool
	)
	for sweep = 0; sweep < jc.maxSweeps; sweep++ {
		rotated = false
		for p = 0; p < n-1; p++ {
			for q = p + 1; q < n; q++ {
				alpha, beta, gamma = 0, 0, 0
				for i = 0; i < n; i++ {
					wp, wq = w[i*n+p], w[i*n+q]
					alpha += wp * wp
					beta += wq * wq
					gamma += wp * wq
				}
				if gamma == 0 || math.Abs(gamma) <= jc.tol*math.Sqrt(alpha*beta) {
					continue
				}
				rotated = true

				// Smaller root of t² + 2ζt − 1 = 0 keeps |θ| ≤ π/4.
				zeta = (beta - alpha) / (2 * gamma)
				t = math.Copysign(1, zeta) / (math.Abs(zeta) + math.Hypot(1, zeta))
				c = 1 / math.Hypot(1, t)
				s = c * t

				for i = 0; i < n; i++ {
					wp, wq = w[i*n+p], w[i*n+q]
					w[i*n+p] = c*wp - s*wq
					w[i*n+q] = s*wp + c*wq

					wp, wq = v[i*n+p], v[i*n+q]
					v[i*n+p] = c*wp - s*wq
					v[i*n+q] = s*wp + c*wq
				}
			}
		}
		if !rotated {
			return nil
		}
	}

	return fmt.Errorf("after %d sweeps: %w", jc.maxSweeps, ErrNotConverged)
}

// completeBasis fills every column j of the row-major n×n buffer u with
// filled[j] == false so that u becomes orthogonal. Candidates are the
// standard basis vectors; the one with the largest residual after
// projecting out the filled columns wins (classical Gram–Schmidt, applied twice).
func completeBasis(n int, u []float64, filled []bool) {
	var j, k, e, i, pass int
	var best, norm, dot float64
	cand := make([]float64, n)
	bestVec := make([]float64, n)
	for j = 0; j < n; j++ {
		if filled[j] {
			continue
		}
		best = -1
		for e = 0; e < n; e++ {
			for i = range cand {
				cand[i] = 0
			}
			cand[e] = 1
			for pass = 0; pass < 2; pass++ {
				for k = 0; k < n; k++ {
					if !filled[k] {
						continue
					}
					dot = 0
					for i = 0; i < n; i++ {
						dot += u[i*n+k] * cand[i]
					}
					for i = 0; i < n; i++ {
						cand[i] -= dot * u[i*n+k]
					}
				}
			}
			norm = 0
			for i = 0; i < n; i++ {
				norm += cand[i] * cand[i]
			}
			if norm > best {
				best = norm
				copy(bestVec, cand)
			}
		}
		norm = math.Sqrt(best)
		for i = 0; i < n; i++ {
			u[i*n+j] = bestVec[i] / norm
		}
		filled[j] = true
	}
}

// identity returns a row-major n×n identity buffer.
func identity(n int) []float64 {
	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		out[i*n+i] = 1
	}

	return out
}
