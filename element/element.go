// Package element provides Lagrange reference elements: node layout, shape
// functions and their reference gradients, the affine base used to map the
// element to physical space, and quadrature rules.
package element

import (
	"fmt"
	"math/big"

	"github.com/notargets/femcore/quadrature"
	"github.com/notargets/femcore/types"
	"github.com/notargets/femcore/utils"
)

const MaxOrder = 3

// Element is the capability surface consumed by the mesh builder and the
// shape function evaluators. Implementations are stateless and safe for
// concurrent use.
type Element interface {
	Name() string
	GeometryType() types.GeometryType
	Order() int // Polynomial order
	Dims() int  // Parametric dimension
	Np() int    // Number of nodes
	NVp() int   // Number of affine base nodes (vertices)

	// Vertices are the indices, in node order, of the nodes forming the
	// affine base. Vertices()[v] is the node at affine base node v.
	Vertices() utils.Index
	// Lattice holds integer node coordinates; reference coordinates are
	// Lattice()[i][d] / Order().
	Lattice() [][]int
	AffineBase() Element

	N(xi []float64) []float64        // Np shape function values
	GradN(xi []float64) utils.Matrix // Np x Dims reference gradients
	// AffineWeights evaluates the affine base shape functions in exact
	// arithmetic.
	AffineWeights(xi []*big.Rat) []*big.Rat

	Quadrature(order int) *quadrature.Rule
	// HasConstantJacobian reports whether the reference to physical map of
	// this element is affine, so its Jacobian is the same at every point.
	HasConstantJacobian() bool
}

// New returns the Lagrange element of a geometry and order.
func New(geometry types.GeometryType, order int) (el Element, err error) {
	if order < 1 || order > MaxOrder {
		err = fmt.Errorf("element order must be in [1,%d], got %d", MaxOrder, order)
		return
	}
	switch geometry {
	case types.Line, types.Triangle, types.Quadrilateral, types.Tetrahedron, types.Hexahedron:
	default:
		err = fmt.Errorf("unsupported element geometry %v", geometry)
		return
	}
	el = NewLagrange(geometry, order)
	return
}

// Parse accepts geometry names like "triangle", "tet" or "hex".
func Parse(name string, order int) (el Element, err error) {
	var gt types.GeometryType
	if gt, err = types.ParseGeometryType(name); err != nil {
		return
	}
	return New(gt, order)
}
