package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrix(t *testing.T) {
	// Transpose
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		mNr, mNc := M.Dims()
		A := M.Transpose()
		aNr, aNc := A.Dims()
		assert.Equal(t, aNc, mNr)
		assert.Equal(t, aNr, mNc)
		assert.Equal(t, A.Data(), []float64{1, 4, 2, 5, 3, 6})
		assert.Equal(t, 4., M.T().At(0, 1))
	}
	// SliceCols
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		A := M.SliceCols(Index{2, 0})
		assert.Equal(t, []float64{3, 1, 6, 4}, A.Data())
		assert.Panics(t, func() { M.SliceCols(Index{3}) })
	}
	// Slice
	{
		M := NewMatrix(3, 3, []float64{
			1, 2, 3,
			4, 5, 6,
			7, 8, 9,
		})
		assert.Equal(t, []float64{5, 6, 8, 9}, M.Slice(1, 3, 1, 3).Data())
	}
	// Columns and rows
	{
		M := NewMatrixFromColumns([][]float64{{1, 4}, {2, 5}, {3, 6}})
		nr, nc := M.Dims()
		assert.Equal(t, 2, nr)
		assert.Equal(t, 3, nc)
		assert.Equal(t, []float64{2, 5}, M.Col(1))
		assert.Equal(t, []float64{4, 5, 6}, M.Row(1))
		assert.Equal(t, 21., M.Sum())
		assert.Equal(t, 1., M.Min())
		assert.Equal(t, 6., M.Max())
		M.AddCol(0, 2., []float64{1, 1})
		assert.Equal(t, []float64{3, 6}, M.Col(0))
		assert.Panics(t, func() { NewMatrixFromColumns([][]float64{{1, 2}, {3}}) })
	}
	// Mul, SetBlock, Scale
	{
		A := NewMatrix(2, 2, []float64{1, 2, 3, 4})
		B := NewMatrix(2, 1, []float64{1, 1})
		assert.Equal(t, []float64{3, 7}, A.Mul(B).Data())
		R := NewMatrix(3, 4)
		R.SetBlock(1, 2, A).Scale(2)
		assert.Equal(t, []float64{
			0, 0, 0, 0,
			0, 0, 2, 4,
			0, 0, 6, 8,
		}, R.Data())
		assert.Equal(t, 0., MatMaxAbsDiff(A.Transpose().Transpose(), A))
		assert.Equal(t, 3., MatMaxAbsDiff(A, NewMatrix(2, 2, []float64{1, 2, 3, 7})))
	}
	// Read only
	{
		M := NewMatrix(2, 2)
		M.SetReadOnly("M")
		assert.True(t, M.IsReadOnly())
		assert.Panics(t, func() { M.Set(0, 0, 1) })
		assert.Panics(t, func() { M.Scale(2) })
		assert.False(t, M.Transpose().IsReadOnly())
		M.SetWritable()
		assert.NotPanics(t, func() { M.Set(0, 0, 1) })
		assert.Panics(t, func() { NewMatrix(2, 2, []float64{1}) })
	}
}

func TestIndex(t *testing.T) {
	I := Index{7, 3, 9, 3}
	assert.Equal(t, Index{1, 3, 0, 2}, I.Argsort())
	assert.Equal(t, Index{3, 3, 7, 9}, I.Subset(I.Argsort()))
	assert.Equal(t, Index{2, 3, 4}, NewRange(2, 4))
	assert.Len(t, NewIndex(5), 5)
}

func TestDOK(t *testing.T) {
	A := NewDOK(4, 4)
	A.ScatterBlock(Index{0, 2}, NewMatrix(2, 2, []float64{1, 2, 3, 4}))
	A.ScatterBlock(Index{2, 3}, NewMatrix(2, 2, []float64{1, 1, 1, 1}))
	A.Accumulate(3, 0, 0.5)
	assert.Equal(t, 5., A.At(2, 2))
	assert.Equal(t, 2., A.At(0, 2))
	assert.Equal(t, 0.5, A.At(3, 0))
	csr := A.ToCSR()
	nr, nc := csr.Dims()
	assert.Equal(t, 4, nr)
	assert.Equal(t, 4, nc)
	assert.Equal(t, 8, csr.NNZ())
	assert.Equal(t, 5., csr.At(2, 2))
	// Converted builders are sealed
	assert.Panics(t, func() { A.Accumulate(0, 0, 1) })
	B := NewDOK(2, 2)
	assert.Panics(t, func() { B.ScatterBlock(Index{0, 1, 2}, NewMatrix(2, 2)) })
	B.SetReadOnly("B")
	assert.Panics(t, func() { B.Accumulate(0, 0, 1) })
}

func TestLineSet(t *testing.T) {
	ls := make(LineSet)
	ls.AddLine(0, 0, 2, 1, GetColor(Red))
	ls.AddCrossHair(-1, 3, 0.5, GetColor(Blue))
	require.Len(t, ls, 2)
	assert.Len(t, ls[GetColor(Blue)], 8)
	xMin, xMax, yMin, yMax := ls.Bounds()
	assert.Equal(t, float32(-1.5), xMin)
	assert.Equal(t, float32(2), xMax)
	assert.Equal(t, float32(0), yMin)
	assert.Equal(t, float32(3.5), yMax)
}
