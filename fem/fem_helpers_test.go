package fem

import (
	"github.com/notargets/femcore/element"
	"github.com/notargets/femcore/mesh"
	"github.com/notargets/femcore/types"
	"github.com/notargets/femcore/utils"
)

// rectangleMesh covers [0,Lx]x[0,Ly] with 2*n*n triangles or n*n quads.
func rectangleMesh(gt types.GeometryType, P, n int, Lx, Ly float64) *mesh.Mesh {
	np := n + 1
	V := utils.NewMatrix(2, np*np)
	for j := 0; j < np; j++ {
		for i := 0; i < np; i++ {
			V.Set(0, i+np*j, Lx*float64(i)/float64(n))
			V.Set(1, i+np*j, Ly*float64(j)/float64(n))
		}
	}
	var C [][]int
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			v00, v10, v01, v11 := i+np*j, i+1+np*j, i+np*(j+1), i+1+np*(j+1)
			if gt == types.Quadrilateral {
				C = append(C, []int{v00, v10, v01, v11})
			} else {
				C = append(C, []int{v00, v10, v01}, []int{v10, v11, v01})
			}
		}
	}
	return mesh.NewMesh(element.NewLagrange(gt, P), 2, V, C)
}

// boxMesh is the box [0,L]^3 as six tetrahedra or one hexahedron, sheared by
// x += s*z so the hexahedron is a parallelepiped.
func boxMesh(gt types.GeometryType, P int, L, s float64) *mesh.Mesh {
	V := utils.NewMatrix(3, 8)
	for v := 0; v < 8; v++ {
		x, y, z := float64(v&1)*L, float64((v>>1)&1)*L, float64((v>>2)&1)*L
		V.Set(0, v, x+s*z)
		V.Set(1, v, y)
		V.Set(2, v, z)
	}
	var C [][]int
	if gt == types.Hexahedron {
		C = [][]int{{0, 1, 2, 3, 4, 5, 6, 7}}
	} else {
		axes := []int{1, 2, 4}
		for _, perm := range [][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}} {
			a := axes[perm[0]]
			C = append(C, []int{0, a, a + axes[perm[1]], 7})
		}
	}
	return mesh.NewMesh(element.NewLagrange(gt, P), 3, V, C)
}

// foldedSurface is two triangles on the plane z = x + y, embedded in 3D.
func foldedSurface(P int) *mesh.Mesh {
	V := utils.NewMatrix(3, 4, []float64{
		0, 1, 0, 1,
		0, 0, 1, 1,
		0, 1, 1, 2,
	})
	return mesh.NewMesh(element.NewLagrange(types.Triangle, P), 3, V, [][]int{{0, 1, 2}, {1, 3, 2}})
}

// nodalField samples f(x) = a.x + b at the mesh nodes.
func nodalField(m *mesh.Mesh, a []float64, b float64) (f []float64) {
	f = make([]float64, m.NumNodes())
	for n := range f {
		f[n] = b
		for d := 0; d < m.Dims; d++ {
			f[n] += a[d] * m.X.At(d, n)
		}
	}
	return
}
