// Package quadrature builds Gauss rules on the reference domains used by the
// element package: [0,1]^d for lines, quadrilaterals and hexahedra, and the
// unit simplex for triangles and tetrahedra. Simplex rules are conical
// (collapsed coordinate) products of Gauss-Jacobi rules.
package quadrature

import (
	"fmt"
	"sync"

	"github.com/notargets/femcore/types"
	"github.com/notargets/femcore/utils"
)

// Rule integrates polynomials of degree Order exactly on its reference
// domain: total degree for simplices, per-direction degree for tensor shapes.
type Rule struct {
	Geometry types.GeometryType
	Order    int
	Points   utils.Matrix // Dims x NQ reference coordinates, read only
	Weights  []float64    // NQ, sums to the reference volume
}

func (r *Rule) Dims() int {
	nr, _ := r.Points.Dims()
	return nr
}

func (r *Rule) NQ() int { return len(r.Weights) }

// Point returns a copy of the reference coordinates of point g.
func (r *Rule) Point(g int) []float64 { return r.Points.Col(g) }

type ruleKey struct {
	geometry types.GeometryType
	order    int
}

var (
	cacheMu   sync.Mutex
	ruleCache = make(map[ruleKey]*Rule)
)

// New returns the Gauss rule of the requested polynomial order for a geometry.
// Rules are cached and shared; callers must not modify them.
func New(geometry types.GeometryType, order int) (r *Rule) {
	if order < 0 {
		panic(fmt.Errorf("quadrature order must be non-negative, got %d", order))
	}
	key := ruleKey{geometry, order}
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if r = ruleCache[key]; r != nil {
		return
	}
	var (
		cols [][]float64
		wts  []float64
	)
	n := order/2 + 1 // Gauss points per direction, exact to 2n-1
	xL, wL := GaussLegendre(n)
	switch geometry {
	case types.Line:
		for i := range xL {
			cols = append(cols, []float64{xL[i]})
			wts = append(wts, wL[i])
		}
	case types.Quadrilateral:
		for j := range xL {
			for i := range xL {
				cols = append(cols, []float64{xL[i], xL[j]})
				wts = append(wts, wL[i]*wL[j])
			}
		}
	case types.Hexahedron:
		for k := range xL {
			for j := range xL {
				for i := range xL {
					cols = append(cols, []float64{xL[i], xL[j], xL[k]})
					wts = append(wts, wL[i]*wL[j]*wL[k])
				}
			}
		}
	case types.Triangle:
		// xi = (u(1-v), v), dxi = (1-v) du dv
		xv, wv := collapsedDirection(1, n)
		for j := range xv {
			for i := range xL {
				v := xv[j]
				cols = append(cols, []float64{xL[i] * (1 - v), v})
				wts = append(wts, wL[i]*wv[j])
			}
		}
	case types.Tetrahedron:
		// xi = (u(1-v)(1-w), v(1-w), w), dxi = (1-v)(1-w)^2 du dv dw
		xv, wv := collapsedDirection(1, n)
		xw, ww := collapsedDirection(2, n)
		for k := range xw {
			for j := range xv {
				for i := range xL {
					v, w := xv[j], xw[k]
					cols = append(cols, []float64{xL[i] * (1 - v) * (1 - w), v * (1 - w), w})
					wts = append(wts, wL[i]*wv[j]*ww[k])
				}
			}
		}
	default:
		panic(fmt.Errorf("no quadrature for geometry %v", geometry))
	}
	r = &Rule{
		Geometry: geometry,
		Order:    order,
		Points:   utils.NewMatrixFromColumns(cols),
		Weights:  wts,
	}
	r.Points.SetReadOnly(fmt.Sprintf("%v quadrature points, order %d", geometry, order))
	ruleCache[key] = r
	return
}

// collapsedDirection maps the Gauss-Jacobi(alpha,0) rule to [0,1] so that
// sum_i w_i f(x_i) = int_0^1 f(x) (1-x)^alpha dx.
func collapsedDirection(alpha float64, n int) (x, w []float64) {
	t, wt := JacobiGQ(alpha, 0, n-1)
	x, w = make([]float64, n), make([]float64, n)
	scale := 1.
	for p := 0.; p < alpha+1; p++ {
		scale *= 0.5
	}
	for i := range t {
		x[i] = 0.5 * (1. + t[i])
		w[i] = scale * wt[i]
	}
	return
}
