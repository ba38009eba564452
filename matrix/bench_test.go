// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the kernels on the estimator's
// hot path, using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/kabsch/matrix"
)

// benchPoints are the point counts of the 3×N matrices benchmarked.
var benchPoints = []int{64, 1024, 16384}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkV []float64
	sinkF float64
)

func BenchmarkCenterRows(b *testing.B) {
	for _, n := range benchPoints {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			X := MustDense(b, 3, n)
			RandomFill(b, X, 1337)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, means, err := matrix.CenterRows(X)
				if err != nil {
					b.Fatal(err)
				}
				sinkM, sinkV = m, means
			}
		})
	}
}

// BenchmarkCovariance measures Dc·Scᵀ, the only O(N) product in Estimate.
func BenchmarkCovariance(b *testing.B) {
	for _, n := range benchPoints {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			D := MustDense(b, 3, n)
			S := MustDense(b, 3, n)
			RandomFill(b, D, 1)
			RandomFill(b, S, 2)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				st, err := matrix.Transpose(S)
				if err != nil {
					b.Fatal(err)
				}
				m, err := matrix.Mul(D, st)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkDet3(b *testing.B) {
	m := MustDense(b, 3, 3)
	RandomFill(b, m, 42)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		d, err := matrix.Det(m)
		if err != nil {
			b.Fatal(err)
		}
		sinkF = d
	}
}
