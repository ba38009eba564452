// SPDX-License-Identifier: MIT

package svd_test

import (
	"fmt"

	"github.com/katalvlaran/kabsch/matrix"
	"github.com/katalvlaran/kabsch/svd"
)

// ExampleJacobi_Decompose factorizes a rank-deficient matrix in process.
func ExampleJacobi_Decompose() {
	m, _ := matrix.NewDenseFrom([][]float64{{3, 0}, {4, 0}})
	f, err := svd.NewJacobi().Decompose(m)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("values %.3f, rank %d\n", f.Values, f.Rank(1e-9))
	// Output:
	// values [5.000 0.000], rank 1
}
