package mesh

import (
	"fmt"

	"github.com/notargets/femcore/types"
	"github.com/notargets/femcore/utils"
)

// kuhnPaths are the axis orders of the six tetrahedra of a Kuhn (Freudenthal)
// split of the unit cube. Every cube uses the same split, so faces conform.
var kuhnPaths = [6][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}

// Grid returns the vertices and cells of a structured mesh of the box
// [0,lengths[0]] x ... with divisions[d] boxes along direction d. Boxes are
// split into 2 triangles or 6 tetrahedra for simplex geometries. Cell vertices
// follow the element vertex order.
func Grid(gt types.GeometryType, divisions []int, lengths []float64) (V utils.Matrix, C [][]int) {
	dims := gt.Dims()
	if len(divisions) != dims || len(lengths) != dims {
		panic(fmt.Errorf("%v grid needs %d divisions and lengths, got %d and %d",
			gt, dims, len(divisions), len(lengths)))
	}
	var (
		np     = make([]int, dims) // vertices per direction
		stride = make([]int, dims)
		nVerts = 1
		nBoxes = 1
	)
	for d, n := range divisions {
		if n < 1 {
			panic(fmt.Errorf("grid divisions must be positive, got %v", divisions))
		}
		np[d] = n + 1
		stride[d] = nVerts
		nVerts *= np[d]
		nBoxes *= n
	}
	V = utils.NewMatrix(dims, nVerts)
	for v := 0; v < nVerts; v++ {
		for d := 0; d < dims; d++ {
			i := (v / stride[d]) % np[d]
			V.Set(d, v, lengths[d]*float64(i)/float64(divisions[d]))
		}
	}
	corners := make([]int, 1<<dims) // corner c has bit d set for the upper side in d
	for b := 0; b < nBoxes; b++ {
		origin, rem := 0, b
		for d := 0; d < dims; d++ {
			origin += (rem % divisions[d]) * stride[d]
			rem /= divisions[d]
		}
		for c := range corners {
			corners[c] = origin
			for d := 0; d < dims; d++ {
				if c&(1<<d) != 0 {
					corners[c] += stride[d]
				}
			}
		}
		switch gt {
		case types.Line, types.Quadrilateral, types.Hexahedron:
			C = append(C, append([]int{}, corners...))
		case types.Triangle:
			C = append(C,
				[]int{corners[0], corners[1], corners[2]},
				[]int{corners[1], corners[3], corners[2]})
		case types.Tetrahedron:
			for _, path := range kuhnPaths {
				a := 1 << path[0]
				C = append(C, []int{corners[0], corners[a], corners[a|1<<path[1]], corners[7]})
			}
		}
	}
	return
}
