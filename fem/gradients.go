package fem

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/femcore/element"
	"github.com/notargets/femcore/mesh"
	"github.com/notargets/femcore/utils"
)

// machineEpsilon is the float64 unit roundoff used to scale the rank cutoff.
const machineEpsilon = 0x1p-52

// ShapeFunctionGradients returns the Np x Dims physical gradients of el's
// shape functions at reference point xi, for an element whose affine base
// vertices sit at X (Dims x NVp).
//
// The map to physical space is taken from the affine base only, so the result
// is exact when the element is an affine image of the reference element and an
// approximation for curved elements. Non-square Jacobians (surfaces, curves)
// are inverted in the least squares sense with an SVD, which yields the
// tangential gradient.
func ShapeFunctionGradients(el element.Element, xi []float64, X utils.Matrix) (GP utils.Matrix) {
	return newAffineInverse(el, xi, X).gradients(el.GradN(xi))
}

// affineInverse holds the SVD of the transposed affine Jacobian of one element
// at one reference point.
type affineInverse struct {
	svd  mat.SVD
	rank int
	np   int
	dims int
}

func newAffineInverse(el element.Element, xi []float64, X utils.Matrix) (ai *affineInverse) {
	dims, nv := X.Dims()
	if nv != el.NVp() {
		panic(fmt.Errorf("%s: vertex positions have %d columns, expected %d", el.Name(), nv, el.NVp()))
	}
	J := X.Mul(el.AffineBase().GradN(xi)) // Dims x k
	ai = &affineInverse{np: el.Np(), dims: dims}
	// Jᵀ ∇x N = ∇ξ N for every node
	if !ai.svd.Factorize(J.M.T(), mat.SVDThin) {
		panic(fmt.Errorf("%s: SVD of the Jacobian failed", el.Name()))
	}
	// Singular values below the roundoff level of the largest one are zero
	ai.rank = ai.svd.Rank(machineEpsilon * float64(max(dims, el.Dims())))
	return
}

// gradients maps reference gradients GN (Np x k) to physical ones (Np x Dims).
func (ai *affineInverse) gradients(GN utils.Matrix) (GP utils.Matrix) {
	GP = utils.NewMatrix(ai.np, ai.dims)
	if ai.rank == 0 {
		return
	}
	var G mat.Dense
	ai.svd.SolveTo(&G, GN.M.T(), ai.rank) // Dims x Np
	GP.M.Copy(G.T())
	return
}

// GradientBlockColumn is the first column of the Np x Dims gradient block of
// element e at quadrature point g in the output of MeshShapeFunctionGradients.
func GradientBlockColumn(m *mesh.Mesh, NQ, e, g int) int {
	return e*m.Dims*NQ + g*m.Dims
}

// MeshShapeFunctionGradients evaluates ShapeFunctionGradients at every
// quadrature point of order qOrder in every element. The result is
// Np x (Dims*NQ*NumElements), blocks addressed by GradientBlockColumn.
func MeshShapeFunctionGradients(m *mesh.Mesh, qOrder int) (GNe utils.Matrix) {
	defer utils.Profile("fem.MeshShapeFunctionGradients")()
	var (
		el   = m.Element
		rule = el.Quadrature(qOrder)
		NQ   = rule.NQ()
		K    = m.NumElements()
	)
	// One factorization per element when the affine map has a constant Jacobian
	constant := el.AffineBase().HasConstantJacobian()
	GNe = utils.NewMatrix(el.Np(), m.Dims*NQ*K)
	utils.ParallelFor(K, func(e int) {
		var (
			X  = m.VertexPositions(e)
			ai *affineInverse
		)
		for g := 0; g < NQ; g++ {
			xi := rule.Point(g)
			if ai == nil || !constant {
				ai = newAffineInverse(el, xi, X)
			}
			GNe.SetBlock(0, GradientBlockColumn(m, NQ, e, g), ai.gradients(el.GradN(xi)))
		}
	})
	return
}
