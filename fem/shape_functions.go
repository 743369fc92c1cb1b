// Package fem evaluates Lagrange shape functions and their physical gradients
// on a mesh, along with the Jacobian determinants and global matrices built
// from them.
package fem

import (
	"github.com/notargets/femcore/element"
	"github.com/notargets/femcore/mesh"
	"github.com/notargets/femcore/utils"
)

// ShapeFunctions returns the Np x NQ values of el's shape functions at the
// points of its quadrature rule of order qOrder.
func ShapeFunctions(el element.Element, qOrder int) (N utils.Matrix) {
	var (
		rule = el.Quadrature(qOrder)
		NQ   = rule.NQ()
	)
	N = utils.NewMatrix(el.Np(), NQ)
	for g := 0; g < NQ; g++ {
		N.SetCol(g, el.N(rule.Point(g)))
	}
	return
}

// ShapeFunctionsAt returns the Np x nPoints values of el's shape functions at
// the reference points Xi (el.Dims() x nPoints).
func ShapeFunctionsAt(el element.Element, Xi utils.Matrix) (N utils.Matrix, err error) {
	defer utils.Profile("fem.ShapeFunctionsAt")()
	nr, nPts := Xi.Dims()
	if err = checkDim("ShapeFunctionsAt", "evaluation point dimension", el.Dims(), nr); err != nil {
		return
	}
	N = utils.NewMatrix(el.Np(), nPts)
	utils.ParallelFor(nPts, func(j int) {
		N.SetCol(j, el.N(Xi.Col(j)))
	})
	return
}

// IntegratedShapeFunctions integrates every shape function over every element,
// given the Jacobian determinants detJe (NQ x NumElements) at the quadrature
// points of order qOrder. The result is Np x NumElements.
func IntegratedShapeFunctions(m *mesh.Mesh, qOrder int, detJe utils.Matrix) (IN utils.Matrix, err error) {
	defer utils.Profile("fem.IntegratedShapeFunctions")()
	var (
		el   = m.Element
		rule = el.Quadrature(qOrder)
		NQ   = rule.NQ()
		K    = m.NumElements()
	)
	nr, nc := detJe.Dims()
	if err = checkDim("IntegratedShapeFunctions", "determinant rows (quadrature points)", NQ, nr); err != nil {
		return
	}
	if err = checkDim("IntegratedShapeFunctions", "determinant columns (elements)", K, nc); err != nil {
		return
	}
	N := ShapeFunctions(el, qOrder)
	IN = utils.NewMatrix(el.Np(), K)
	utils.ParallelFor(K, func(e int) {
		for g := 0; g < NQ; g++ {
			IN.AddCol(e, rule.Weights[g]*detJe.At(g, e), N.Col(g))
		}
	})
	return
}
