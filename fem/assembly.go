package fem

import (
	"github.com/james-bowman/sparse"

	"github.com/notargets/femcore/mesh"
	"github.com/notargets/femcore/utils"
)

// MassMatrix assembles the global consistent mass matrix, NumNodes x NumNodes.
func MassMatrix(m *mesh.Mesh, qOrder int) *sparse.CSR {
	defer utils.Profile("fem.MassMatrix")()
	var (
		el    = m.Element
		rule  = el.Quadrature(qOrder)
		NQ    = rule.NQ()
		Np    = el.Np()
		N     = ShapeFunctions(el, qOrder)
		detJe = DeterminantOfJacobian(m, qOrder)
	)
	return assemble(m, func(e int) (Me utils.Matrix) {
		Me = utils.NewMatrix(Np, Np)
		for g := 0; g < NQ; g++ {
			wg := rule.Weights[g] * detJe.At(g, e)
			Ng := N.Col(g)
			for j := 0; j < Np; j++ {
				Me.AddCol(j, wg*Ng[j], Ng)
			}
		}
		return
	})
}

// LaplacianMatrix assembles the negative semi-definite stiffness matrix of the
// Laplace operator, -int grad(Ni) . grad(Nj), NumNodes x NumNodes.
func LaplacianMatrix(m *mesh.Mesh, qOrder int) *sparse.CSR {
	defer utils.Profile("fem.LaplacianMatrix")()
	var (
		el    = m.Element
		rule  = el.Quadrature(qOrder)
		NQ    = rule.NQ()
		Np    = el.Np()
		GNe   = MeshShapeFunctionGradients(m, qOrder)
		detJe = DeterminantOfJacobian(m, qOrder)
	)
	return assemble(m, func(e int) (Le utils.Matrix) {
		Le = utils.NewMatrix(Np, Np)
		for g := 0; g < NQ; g++ {
			wg := rule.Weights[g] * detJe.At(g, e)
			col := GradientBlockColumn(m, NQ, e, g)
			G := GNe.Slice(0, Np, col, col+m.Dims) // Np x Dims
			Le.M.Add(Le.M, G.Mul(G.Transpose()).Scale(-wg).M)
		}
		return
	})
}

// assemble computes element matrices in parallel and sums them into a global
// sparse matrix from a single goroutine, in element order.
func assemble(m *mesh.Mesh, elementMatrix func(e int) utils.Matrix) *sparse.CSR {
	var (
		K      = m.NumElements()
		nNodes = m.NumNodes()
		blocks = make([]utils.Matrix, K)
	)
	utils.ParallelFor(K, func(e int) {
		blocks[e] = elementMatrix(e)
	})
	A := utils.NewDOK(nNodes, nNodes)
	for e, Ae := range blocks {
		A.ScatterBlock(m.ElementNodes(e), Ae)
	}
	return A.ToCSR()
}
