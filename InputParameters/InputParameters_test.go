package InputParameters

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListedMesh(t *testing.T) {
	fileInput := []byte(`
Title: Two triangles
Element: triangle
PolynomialOrder: 2
Vertices:
  - [0, 0]
  - [1, 0]
  - [0, 1]
  - [1, 1]
Cells:
  - [0, 1, 2]
  - [1, 3, 2]
`)
	var mp MeshParameters
	require.NoError(t, mp.Parse(fileInput))
	assert.Equal(t, "Two triangles", mp.Title)
	assert.Equal(t, 2, mp.Dims)
	assert.Equal(t, 4, mp.QuadratureOrder)
	assert.Equal(t, 1.e-10, mp.AffineTolerance)
	mp.Print()

	V, C := mp.Geometry()
	nr, nc := V.Dims()
	assert.Equal(t, 2, nr)
	assert.Equal(t, 4, nc)
	assert.Equal(t, 1., V.At(1, 3))
	assert.Len(t, C, 2)

	m, err := mp.NewMesh()
	require.NoError(t, err)
	assert.Equal(t, 9, m.NumNodes())
}

func TestParseGridMesh(t *testing.T) {
	fileInput := []byte(`
Title: Box
Element: tet
PolynomialOrder: 1
QuadratureOrder: 3
Grid:
  Divisions: [2, 1, 1]
  Lengths: [2., 1., 1.]
`)
	var mp MeshParameters
	require.NoError(t, mp.Parse(fileInput))
	assert.Equal(t, 3, mp.Dims)
	assert.Equal(t, 3, mp.QuadratureOrder)
	m, err := mp.NewMesh()
	require.NoError(t, err)
	assert.Equal(t, 12, m.NumNodes())
	assert.Equal(t, 12, m.NumElements())
}

func TestParseErrors(t *testing.T) {
	testCases := map[string]string{
		"unknown element": "Element: prism\nPolynomialOrder: 1\nVertices: [[0]]\nCells: [[0]]",
		"bad order":       "Element: line\nPolynomialOrder: 9\nVertices: [[0],[1]]\nCells: [[0,1]]",
		"low dims":        "Element: triangle\nPolynomialOrder: 1\nDims: 1\nVertices: [[0],[1],[2]]\nCells: [[0,1,2]]",
		"vertex length":   "Element: triangle\nPolynomialOrder: 1\nVertices: [[0,0],[1,0],[0]]\nCells: [[0,1,2]]",
		"cell length":     "Element: triangle\nPolynomialOrder: 1\nVertices: [[0,0],[1,0],[0,1]]\nCells: [[0,1]]",
		"cell range":      "Element: triangle\nPolynomialOrder: 1\nVertices: [[0,0],[1,0],[0,1]]\nCells: [[0,1,3]]",
		"no mesh":         "Element: triangle\nPolynomialOrder: 1",
		"both":            "Element: line\nPolynomialOrder: 1\nVertices: [[0],[1]]\nCells: [[0,1]]\nGrid: {Divisions: [2], Lengths: [1.]}",
		"grid dims":       "Element: quad\nPolynomialOrder: 1\nGrid: {Divisions: [2], Lengths: [1.]}",
		"grid embedded":   "Element: quad\nPolynomialOrder: 1\nDims: 3\nGrid: {Divisions: [2, 2], Lengths: [1., 1.]}",
		"grid divisions":  "Element: quad\nPolynomialOrder: 1\nGrid: {Divisions: [2, 0], Lengths: [1., 1.]}",
	}
	for name, input := range testCases {
		t.Run(name, func(t *testing.T) {
			var mp MeshParameters
			err := mp.Parse([]byte(input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput), err.Error())
		})
	}
	var mp MeshParameters
	assert.Error(t, mp.Parse([]byte("Element: [unterminated")))
}
