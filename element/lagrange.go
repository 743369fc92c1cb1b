package element

import (
	"fmt"
	"math/big"

	"github.com/notargets/femcore/quadrature"
	"github.com/notargets/femcore/types"
	"github.com/notargets/femcore/utils"
)

// Lagrange is an equispaced Lagrange element. Simplices use the barycentric
// product basis, lines/quads/hexes use tensor products of 1D Lagrange
// polynomials.
type Lagrange struct {
	geometry types.GeometryType
	order    int
	dims     int
	lattice  [][]int
	vertices utils.Index
	affine   *Lagrange
}

func NewLagrange(geometry types.GeometryType, order int) (el *Lagrange) {
	if order < 1 {
		panic(fmt.Errorf("invalid Lagrange order %d", order))
	}
	el = &Lagrange{
		geometry: geometry,
		order:    order,
		dims:     geometry.Dims(),
	}
	el.lattice = buildLattice(geometry, order)
	if order == 1 {
		el.affine = el
	} else {
		el.affine = NewLagrange(geometry, 1)
	}
	// Vertices are the affine base lattice points scaled to this order
	el.vertices = utils.NewIndex(len(el.affine.lattice))
	for v, a := range el.affine.lattice {
		el.vertices[v] = -1
		for i, b := range el.lattice {
			if sameScaled(a, b, order) {
				el.vertices[v] = i
				break
			}
		}
		if el.vertices[v] < 0 {
			panic(fmt.Errorf("vertex %d not found in %s lattice", v, el.Name()))
		}
	}
	return
}

func sameScaled(a, b []int, order int) bool {
	for d := range a {
		if a[d]*order != b[d] {
			return false
		}
	}
	return true
}

// buildLattice enumerates integer node coordinates with the first coordinate
// varying fastest.
func buildLattice(geometry types.GeometryType, order int) (lattice [][]int) {
	var (
		dims    = geometry.Dims()
		simplex = geometry.IsSimplex()
		a       = make([]int, dims)
	)
	var recurse func(d, budget int)
	recurse = func(d, budget int) {
		if d < 0 {
			node := make([]int, dims)
			copy(node, a)
			lattice = append(lattice, node)
			return
		}
		for i := 0; i <= budget; i++ {
			a[d] = i
			if simplex {
				recurse(d-1, budget-i)
			} else {
				recurse(d-1, budget)
			}
		}
	}
	recurse(dims-1, order)
	return
}

func (el *Lagrange) Name() string {
	return fmt.Sprintf("Lagrange %v P%d", el.geometry, el.order)
}

func (el *Lagrange) GeometryType() types.GeometryType { return el.geometry }
func (el *Lagrange) Order() int { return el.order }
func (el *Lagrange) Dims() int { return el.dims }
func (el *Lagrange) Np() int { return len(el.lattice) }
func (el *Lagrange) NVp() int { return len(el.vertices) }
func (el *Lagrange) Vertices() utils.Index { return el.vertices }
func (el *Lagrange) Lattice() [][]int { return el.lattice }
func (el *Lagrange) AffineBase() Element { return el.affine }

func (el *Lagrange) HasConstantJacobian() bool {
	return el.order == 1 && el.geometry.IsSimplex()
}

func (el *Lagrange) Quadrature(order int) *quadrature.Rule {
	return quadrature.New(el.geometry, order)
}

func (el *Lagrange) N(xi []float64) (N []float64) {
	el.checkPoint(len(xi))
	N = make([]float64, len(el.lattice))
	if el.geometry.IsSimplex() {
		lambda := barycentric(xi)
		for i, a := range el.lattice {
			N[i] = 1.
			for l, m := range barycentricIndex(a, el.order) {
				f, _ := simplexFactor(m, el.order, lambda[l])
				N[i] *= f
			}
		}
		return
	}
	for i, a := range el.lattice {
		N[i] = 1.
		for d, k := range a {
			f, _ := lagrange1D(k, el.order, xi[d])
			N[i] *= f
		}
	}
	return
}

func (el *Lagrange) GradN(xi []float64) (GN utils.Matrix) {
	el.checkPoint(len(xi))
	GN = utils.NewMatrix(len(el.lattice), el.dims)
	if el.geometry.IsSimplex() {
		var (
			lambda = barycentric(xi)
			f      = make([]float64, el.dims+1)
			df     = make([]float64, el.dims+1)
		)
		for i, a := range el.lattice {
			for l, m := range barycentricIndex(a, el.order) {
				f[l], df[l] = simplexFactor(m, el.order, lambda[l])
			}
			// dN/dlambda_l, then chain rule: dlambda_0/dxi_d = -1, dlambda_d+1/dxi_d = 1
			dNdl := productDerivatives(f, df)
			for d := 0; d < el.dims; d++ {
				GN.Set(i, d, dNdl[d+1]-dNdl[0])
			}
		}
		return
	}
	var (
		f  = make([]float64, el.dims)
		df = make([]float64, el.dims)
	)
	for i, a := range el.lattice {
		for d, k := range a {
			f[d], df[d] = lagrange1D(k, el.order, xi[d])
		}
		dN := productDerivatives(f, df)
		for d := 0; d < el.dims; d++ {
			GN.Set(i, d, dN[d])
		}
	}
	return
}

func (el *Lagrange) AffineWeights(xi []*big.Rat) (N []*big.Rat) {
	el.checkPoint(len(xi))
	var (
		one = big.NewRat(1, 1)
	)
	N = make([]*big.Rat, el.NVp())
	if el.geometry.IsSimplex() {
		N[0] = new(big.Rat).Set(one)
		for d := range xi {
			N[0].Sub(N[0], xi[d])
			N[d+1] = new(big.Rat).Set(xi[d])
		}
		return
	}
	for v, a := range el.affine.lattice {
		N[v] = new(big.Rat).Set(one)
		for d, k := range a {
			if k == 0 {
				N[v].Mul(N[v], new(big.Rat).Sub(one, xi[d]))
			} else {
				N[v].Mul(N[v], xi[d])
			}
		}
	}
	return
}

func (el *Lagrange) checkPoint(n int) {
	if n != el.dims {
		panic(fmt.Errorf("%s: expected a %d dimensional reference point, got %d", el.Name(), el.dims, n))
	}
}

func barycentric(xi []float64) (lambda []float64) {
	lambda = make([]float64, len(xi)+1)
	lambda[0] = 1.
	for d, x := range xi {
		lambda[0] -= x
		lambda[d+1] = x
	}
	return
}

func barycentricIndex(a []int, order int) (b []int) {
	b = make([]int, len(a)+1)
	b[0] = order
	for d, k := range a {
		b[0] -= k
		b[d+1] = k
	}
	return
}

// simplexFactor is prod_{k<m} (p*lambda - k)/(k+1) and its derivative in lambda.
func simplexFactor(m, p int, lambda float64) (f, df float64) {
	f = 1.
	for k := 0; k < m; k++ {
		fac := (float64(p)*lambda - float64(k)) / float64(k+1)
		dfac := float64(p) / float64(k+1)
		df = df*fac + f*dfac
		f *= fac
	}
	return
}

// lagrange1D is the 1D Lagrange polynomial of equispaced node k/p on [0,1]
// and its derivative.
func lagrange1D(k, p int, x float64) (f, df float64) {
	f = 1.
	for m := 0; m <= p; m++ {
		if m == k {
			continue
		}
		fac := (float64(p)*x - float64(m)) / float64(k-m)
		dfac := float64(p) / float64(k-m)
		df = df*fac + f*dfac
		f *= fac
	}
	return
}

// productDerivatives returns d/dx_l prod_j f_j for each l, given df_l = df_l/dx_l.
func productDerivatives(f, df []float64) (d []float64) {
	d = make([]float64, len(f))
	for l := range f {
		d[l] = df[l]
		for j := range f {
			if j != l {
				d[l] *= f[j]
			}
		}
	}
	return
}
