package fem

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/femcore/element"
	"github.com/notargets/femcore/mesh"
	"github.com/notargets/femcore/utils"
)

// Jacobian is x * GradN(xi), the Dims x el.Dims() derivative of the map from
// reference to physical space for element nodal positions x (Dims x Np).
func Jacobian(el element.Element, xi []float64, x utils.Matrix) (J utils.Matrix) {
	if _, nc := x.Dims(); nc != el.Np() {
		panic(fmt.Errorf("%s: nodal positions have %d columns, expected %d", el.Name(), nc, el.Np()))
	}
	return x.Mul(el.GradN(xi))
}

// GeneralizedDeterminant is the product of the singular values of J, which is
// |det J| for square J and the area/length scale of a surface/curve map.
func GeneralizedDeterminant(J utils.Matrix) (det float64) {
	var svd mat.SVD
	if !svd.Factorize(J.M, mat.SVDNone) {
		return math.NaN()
	}
	det = 1.
	for _, s := range svd.Values(nil) {
		det *= s
	}
	return
}

// DeterminantOfJacobian returns the NQ x NumElements Jacobian determinants at
// the quadrature points of order qOrder, using the full isoparametric map.
func DeterminantOfJacobian(m *mesh.Mesh, qOrder int) (detJe utils.Matrix) {
	defer utils.Profile("fem.DeterminantOfJacobian")()
	var (
		el   = m.Element
		rule = el.Quadrature(qOrder)
		NQ   = rule.NQ()
		K    = m.NumElements()
	)
	detJe = utils.NewMatrix(NQ, K)
	utils.ParallelFor(K, func(e int) {
		x := m.ElementPositions(e)
		for g := 0; g < NQ; g++ {
			detJe.Set(g, e, GeneralizedDeterminant(Jacobian(el, rule.Point(g), x)))
		}
	})
	return
}

// CheckAffineMap compares, at every quadrature point of order qOrder, the
// Jacobian of each element's full nodal map with the Jacobian of its affine
// base. Elements whose maps differ by more than tol relative to the affine
// Jacobian make ShapeFunctionGradients inexact; the first one, in element
// order, is reported with an error wrapping ErrNonAffineElement.
func CheckAffineMap(m *mesh.Mesh, qOrder int, tol float64) (err error) {
	defer utils.Profile("fem.CheckAffineMap")()
	var (
		el     = m.Element
		affine = el.AffineBase()
		rule   = el.Quadrature(qOrder)
		NQ     = rule.NQ()
		K      = m.NumElements()
		diffs  = make([]float64, K)
		points = make([]int, K)
	)
	utils.ParallelFor(K, func(e int) {
		x, xv := m.ElementPositions(e), m.VertexPositions(e)
		for g := 0; g < NQ; g++ {
			xi := rule.Point(g)
			Ja := Jacobian(affine, xi, xv)
			scale := math.Max(1., math.Max(math.Abs(Ja.Max()), math.Abs(Ja.Min())))
			diff := utils.MatMaxAbsDiff(Jacobian(el, xi, x), Ja) / scale
			if diff > diffs[e] {
				diffs[e], points[e] = diff, g
			}
		}
	})
	for e, diff := range diffs {
		if diff > tol {
			return fmt.Errorf("element %d, quadrature point %d: nodal and affine Jacobians differ by %.3g: %w",
				e, points[e], diff, ErrNonAffineElement)
		}
	}
	return
}
