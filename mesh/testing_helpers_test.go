package mesh

import (
	"github.com/notargets/femcore/utils"
)

// triangleGrid splits an n x n grid of unit squares on [0,1]^2 into 2n^2 triangles.
func triangleGrid(n int) (V utils.Matrix, C [][]int) {
	var (
		np = n + 1
		h  = 1. / float64(n)
	)
	V = utils.NewMatrix(2, np*np)
	for j := 0; j < np; j++ {
		for i := 0; i < np; i++ {
			V.Set(0, i+np*j, float64(i)*h)
			V.Set(1, i+np*j, float64(j)*h)
		}
	}
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			v00, v10, v01, v11 := i+np*j, i+1+np*j, i+np*(j+1), i+1+np*(j+1)
			C = append(C, []int{v00, v10, v01}, []int{v10, v11, v01})
		}
	}
	return
}

// quadGrid is an nx x ny grid of unit squares, vertices in tensor order.
func quadGrid(nx, ny int) (V utils.Matrix, C [][]int) {
	npx := nx + 1
	V = utils.NewMatrix(2, npx*(ny+1))
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			V.Set(0, i+npx*j, float64(i))
			V.Set(1, i+npx*j, float64(j))
		}
	}
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			v00 := i + npx*j
			C = append(C, []int{v00, v00 + 1, v00 + npx, v00 + npx + 1})
		}
	}
	return
}

// kuhnCube splits the unit cube into six tetrahedra sharing the main diagonal.
func kuhnCube() (V utils.Matrix, C [][]int) {
	V = utils.NewMatrix(3, 8)
	for v := 0; v < 8; v++ {
		V.Set(0, v, float64(v&1))
		V.Set(1, v, float64((v>>1)&1))
		V.Set(2, v, float64((v>>2)&1))
	}
	axes := []int{1, 2, 4}
	for _, perm := range [][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}} {
		a := axes[perm[0]]
		b := a + axes[perm[1]]
		C = append(C, []int{0, a, b, 7})
	}
	return
}
