package quadrature

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// JacobiGQ returns the N+1 point Gauss quadrature for the Jacobi weight
// (1-x)^alpha (1+x)^beta on [-1,1]. Points are the eigenvalues of the
// symmetric tridiagonal Jacobi matrix, weights come from the first components
// of its eigenvectors (Golub-Welsch).
func JacobiGQ(alpha, beta float64, N int) (x, w []float64) {
	var (
		h1, d0, d1 []float64
		VVr        *mat.Dense
	)
	if N == 0 {
		x = []float64{-(alpha - beta) / (alpha + beta + 2.)}
		w = []float64{gamma0(alpha, beta)}
		return
	}

	h1 = make([]float64, N+1)
	for i := 0; i < N+1; i++ {
		h1[i] = 2*float64(i) + alpha + beta
	}

	// main diagonal: (beta^2-alpha^2)/(h1*(h1+2))
	d0 = make([]float64, N+1)
	fac := beta*beta - alpha*alpha
	for i := 0; i < N+1; i++ {
		val := h1[i]
		d0[i] = fac / (val * (val + 2.))
	}
	// Handle division by zero
	eps := 1.e-16
	if math.Abs(alpha+beta) < 10*eps {
		d0[0] = 0.
	}

	// 1st off diagonal: 2/(h1+2)*sqrt(i*(i+alpha+beta)*(i+alpha)*(i+beta)/((h1+1)*(h1+3)))
	var ip1 float64
	d1 = make([]float64, N)
	for i := 0; i < N; i++ {
		ip1 = float64(i + 1)
		val := h1[i]
		d1[i] = 2. / (val + 2.)
		d1[i] *= math.Sqrt(ip1 * (ip1 + alpha + beta) * (ip1 + alpha) * (ip1 + beta) / ((val + 1.) * (val + 3.)))
	}

	JJ := newSymTriDiagonal(d0, d1)

	var eig mat.EigenSym
	ok := eig.Factorize(JJ, true)
	if !ok {
		panic("eigenvalue decomposition failed")
	}
	x = eig.Values(nil)

	VVr = mat.NewDense(len(x), len(x), nil)
	eig.VectorsTo(VVr)
	g0 := gamma0(alpha, beta)
	w = make([]float64, len(x))
	for i, v := range VVr.RawRowView(0) {
		w[i] = v * v * g0
	}
	return
}

// gamma0 is the integral of the Jacobi weight over [-1,1].
func gamma0(alpha, beta float64) float64 {
	ab1 := alpha + beta + 1.
	a1 := alpha + 1.
	b1 := beta + 1.
	return math.Gamma(a1) * math.Gamma(b1) * math.Pow(2, ab1) / ab1 / math.Gamma(ab1)
}

func newSymTriDiagonal(d0, d1 []float64) (JJ *mat.SymDense) {
	var (
		n = len(d0)
	)
	JJ = mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		JJ.SetSym(i, i, d0[i])
		if i < n-1 {
			JJ.SetSym(i, i+1, d1[i])
		}
	}
	return
}

// GaussLegendre returns n Gauss-Legendre points and weights mapped to [0,1].
func GaussLegendre(n int) (x, w []float64) {
	return mapToUnit(JacobiGQ(0, 0, n-1))
}

func mapToUnit(t, wt []float64) (x, w []float64) {
	x, w = make([]float64, len(t)), make([]float64, len(t))
	for i := range t {
		x[i] = 0.5 * (1. + t[i])
		w[i] = 0.5 * wt[i]
	}
	return
}
