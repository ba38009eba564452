// SPDX-License-Identifier: MIT

package kabsch_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/kabsch/kabsch"
	"github.com/katalvlaran/kabsch/svd"
)

// benchSizes are the point counts to benchmark (D = 3).
var benchSizes = []int{16, 256, 4096}

var sinkT *kabsch.Transform

// randomPair returns a deterministic 3×n cloud and a rotated, scaled, shifted copy.
func randomPair(b *testing.B, n int) (*kabsch.PointSet, *kabsch.PointSet) {
	b.Helper()
	rng := rand.New(rand.NewSource(1337))
	src := make([]float64, 3*n)
	dst := make([]float64, 3*n)
	c, s := math.Cos(0.4), math.Sin(0.4)
	var x, y, z float64
	for i := 0; i < n; i++ {
		x, y, z = rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()
		src[i], src[n+i], src[2*n+i] = x, y, z
		dst[i], dst[n+i], dst[2*n+i] = 2*(c*x-s*y)+1, 2*(s*x+c*y)-1, 2*z+0.5
	}
	ps, err := kabsch.PointSetFromSlice(3, n, src)
	if err != nil {
		b.Fatal(err)
	}
	pd, err := kabsch.PointSetFromSlice(3, n, dst)
	if err != nil {
		b.Fatal(err)
	}
	return ps, pd
}

func BenchmarkEstimate(b *testing.B) {
	for _, n := range benchSizes {
		src, dst := randomPair(b, n)
		for name, dec := range map[string]svd.Decomposer{"gonum": svd.NewGonum(), "jacobi": svd.NewJacobi()} {
			opt := kabsch.WithDecomposer(dec)
			b.Run(fmt.Sprintf("%s/n=%d", name, n), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					tr, err := kabsch.Estimate(src, dst, true, opt)
					if err != nil {
						b.Fatal(err)
					}
					sinkT = tr
				}
			})
		}
	}
}
