package fem

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/femcore/element"
	"github.com/notargets/femcore/types"
	"github.com/notargets/femcore/utils"
)

func TestShapeFunctionsAtDimensionMismatch(t *testing.T) {
	el := element.NewLagrange(types.Tetrahedron, 2)
	Xi := utils.NewMatrix(2, 4)
	N, err := ShapeFunctionsAt(el, Xi)
	require.Error(t, err)
	assert.True(t, N.IsEmpty())
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	var se *ShapeError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 3, se.Expected)
	assert.Equal(t, 2, se.Actual)
	assert.Equal(t, "ShapeFunctionsAt", se.Op)
	assert.Contains(t, err.Error(), "expected 3, actual 2")
}

func TestShapeFunctionsAt(t *testing.T) {
	el := element.NewLagrange(types.Triangle, 3)
	Xi := utils.NewMatrix(2, 5, []float64{
		0.1, 0.2, 0.3, 0.0, 1. / 3.,
		0.1, 0.5, 0.6, 0.0, 1. / 3.,
	})
	N, err := ShapeFunctionsAt(el, Xi)
	require.NoError(t, err)
	nr, nc := N.Dims()
	assert.Equal(t, el.Np(), nr)
	assert.Equal(t, 5, nc)
	for j := 0; j < nc; j++ {
		assert.InDeltaSlice(t, el.N(Xi.Col(j)), N.Col(j), 1.e-15)
		assert.InDelta(t, 1., sumOf(N.Col(j)), 1.e-12)
	}
	// The origin is node 0
	assert.InDelta(t, 1., N.At(0, 3), 1.e-14)
}

func TestShapeFunctionsAtQuadraturePoints(t *testing.T) {
	for _, gt := range []types.GeometryType{types.Line, types.Triangle, types.Quadrilateral,
		types.Tetrahedron, types.Hexahedron} {
		for P := 1; P <= element.MaxOrder; P++ {
			el := element.NewLagrange(gt, P)
			N := ShapeFunctions(el, 2*P)
			nr, nc := N.Dims()
			assert.Equal(t, el.Np(), nr)
			assert.Equal(t, el.Quadrature(2*P).NQ(), nc)
			for g := 0; g < nc; g++ {
				assert.InDeltaf(t, 1., sumOf(N.Col(g)), 1.e-12, "%s g=%d", el.Name(), g)
			}
		}
	}
}

func TestIntegratedShapeFunctionsMeasure(t *testing.T) {
	cases := map[string]struct {
		measure float64
		P       int
		gt      types.GeometryType
	}{
		"triangles P1": {6., 1, types.Triangle},
		"triangles P2": {6., 2, types.Triangle},
		"triangles P3": {6., 3, types.Triangle},
		"quads P2":     {6., 2, types.Quadrilateral},
		"quads P3":     {6., 3, types.Quadrilateral},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			m := rectangleMesh(tc.gt, tc.P, 3, 2., 3.)
			detJe := DeterminantOfJacobian(m, tc.P)
			IN, err := IntegratedShapeFunctions(m, tc.P, detJe)
			require.NoError(t, err)
			nr, nc := IN.Dims()
			assert.Equal(t, m.Element.Np(), nr)
			assert.Equal(t, m.NumElements(), nc)
			assert.InDelta(t, tc.measure, IN.Sum(), 1.e-12)
		})
	}
	for P := 1; P <= element.MaxOrder; P++ {
		for _, gt := range []types.GeometryType{types.Tetrahedron, types.Hexahedron} {
			m := boxMesh(gt, P, 2., 0.5)
			IN, err := IntegratedShapeFunctions(m, P, DeterminantOfJacobian(m, P))
			require.NoError(t, err)
			assert.InDeltaf(t, 8., IN.Sum(), 1.e-12, "%v P%d", gt, P)
		}
		// Two triangles of area sqrt(3)/2 each
		m := foldedSurface(P)
		IN, err := IntegratedShapeFunctions(m, P, DeterminantOfJacobian(m, P))
		require.NoError(t, err)
		assert.InDelta(t, math.Sqrt(3.), IN.Sum(), 1.e-12)
	}
}

func TestIntegratedShapeFunctionsDimensionMismatch(t *testing.T) {
	m := rectangleMesh(types.Triangle, 2, 2, 1., 1.)
	NQ := m.Element.Quadrature(2).NQ()
	_, err := IntegratedShapeFunctions(m, 2, utils.NewMatrix(NQ+1, m.NumElements()))
	var se *ShapeError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, NQ, se.Expected)
	assert.Equal(t, NQ+1, se.Actual)

	_, err = IntegratedShapeFunctions(m, 2, utils.NewMatrix(NQ, m.NumElements()-1))
	require.True(t, errors.As(err, &se))
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Equal(t, m.NumElements(), se.Expected)
	assert.Equal(t, m.NumElements()-1, se.Actual)
}

func sumOf(v []float64) (sum float64) {
	for _, val := range v {
		sum += val
	}
	return
}
