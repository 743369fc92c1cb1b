package utils

import (
	"gonum.org/v1/gonum/mat"
)

// MatMaxAbsDiff is the largest elementwise |A - B|; A and B must share dimensions.
func MatMaxAbsDiff(A, B mat.Matrix) (diff float64) {
	var (
		nr, nc   = A.Dims()
		nrB, ncB = B.Dims()
	)
	if nr != nrB || nc != ncB {
		panic(mat.ErrShape)
	}
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			d := A.At(i, j) - B.At(i, j)
			if d < 0 {
				d = -d
			}
			if d > diff {
				diff = d
			}
		}
	}
	return
}
