package utils

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Matrix wraps a row-major gonum Dense. Methods that build a new matrix do not
// change the receiver; methods that write panic on a read only matrix.
type Matrix struct {
	M        *mat.Dense
	readOnly bool
	name     string
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v\n", nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{
		m,
		false,
		"unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

// NewMatrixFromColumns stacks equal length columns side by side.
func NewMatrixFromColumns(cols [][]float64) (R Matrix) {
	if len(cols) == 0 {
		panic("NewMatrixFromColumns: no columns")
	}
	var (
		nr = len(cols[0])
		nc = len(cols)
	)
	R = NewMatrix(nr, nc)
	for j, col := range cols {
		if len(col) != nr {
			panic(fmt.Errorf("NewMatrixFromColumns: column %d has length %d, expected %d", j, len(col), nr))
		}
		R.M.SetCol(j, col)
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)    { return m.M.Dims() }
func (m Matrix) At(i, j int) float64 { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix       { return m.M.T() }
func (m Matrix) Data() []float64     { return m.M.RawMatrix().Data }
func (m Matrix) IsEmpty() bool       { return m.M == nil || m.M.IsEmpty() }

// Chainable methods (extended)
func (m *Matrix) SetReadOnly(name ...string) Matrix {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return *m
}

func (m *Matrix) SetWritable() Matrix {
	m.readOnly = false
	return *m
}

func (m Matrix) IsReadOnly() bool { return m.readOnly }

func (m Matrix) Transpose() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
		data   = m.Data()
	)
	R = NewMatrix(nc, nr)
	dataR := R.Data()
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			dataR[j*nr+i] = data[i*nc+j]
		}
	}
	return
}

func (m Matrix) Mul(A Matrix) (R Matrix) { // Does not change receiver
	var (
		nrM, _ = m.M.Dims()
		_, ncA = A.M.Dims()
	)
	R = NewMatrix(nrM, ncA)
	R.M.Mul(m.M, A.M)
	return R
}

func (m Matrix) Slice(I, K, J, L int) (R Matrix) { // Does not change receiver
	var (
		nrR   = K - I
		ncR   = L - J
		dataR = make([]float64, nrR*ncR)
		_, nc = m.Dims()
		data  = m.Data()
	)
	for i := I; i < K; i++ {
		for j := J; j < L; j++ {
			dataR[(i-I)*ncR+(j-J)] = data[i*nc+j]
		}
	}
	R = NewMatrix(nrR, ncR, dataR)
	return
}

func (m Matrix) SliceCols(I Index) (R Matrix) { // Does not change receiver
	// I should contain a list of column indices into M
	var (
		nr, nc   = m.Dims()
		maxIndex = nc - 1
		nI       = len(I)
		dataM    = m.Data()
	)
	R = NewMatrix(nr, nI)
	dataR := R.Data()
	for jNewCol, j := range I {
		if j > maxIndex || j < 0 {
			fmt.Printf("index out of bounds: index = %d, max_bounds = %d\n", j, maxIndex)
			panic("unable to subset columns from matrix")
		}
		for i := 0; i < nr; i++ {
			dataR[i*nI+jNewCol] = dataM[i*nc+j]
		}
	}
	return
}

func (m Matrix) Set(i, j int, val float64) Matrix { // Changes receiver
	m.checkWritable()
	m.M.Set(i, j, val)
	return m
}

func (m Matrix) SetCol(j int, data []float64) Matrix { // Changes receiver
	m.checkWritable()
	m.M.SetCol(j, data)
	return m
}

// SetBlock copies A into the receiver with its top left corner at (i0, j0).
func (m Matrix) SetBlock(i0, j0 int, A Matrix) Matrix { // Changes receiver
	var (
		_, nc  = m.Dims()
		nA, mA = A.Dims()
		data   = m.Data()
		dataA  = A.Data()
	)
	m.checkWritable()
	for i := 0; i < nA; i++ {
		copy(data[(i0+i)*nc+j0:(i0+i)*nc+j0+mA], dataA[i*mA:(i+1)*mA])
	}
	return m
}

// AddCol accumulates a*v into column j.
func (m Matrix) AddCol(j int, a float64, v []float64) Matrix { // Changes receiver
	var (
		_, nc = m.Dims()
		data  = m.Data()
	)
	m.checkWritable()
	for i, val := range v {
		data[i*nc+j] += a * val
	}
	return m
}

func (m Matrix) Scale(a float64) Matrix { // Changes receiver
	var (
		data = m.Data()
	)
	m.checkWritable()
	for i := range data {
		data[i] *= a
	}
	return m
}

func (m Matrix) Col(j int) (col []float64) {
	var (
		nr, _ = m.Dims()
	)
	col = make([]float64, nr)
	mat.Col(col, j, m.M)
	return
}

func (m Matrix) Row(i int) (row []float64) {
	var (
		_, nc = m.Dims()
	)
	row = make([]float64, nc)
	copy(row, m.M.RawRowView(i))
	return
}

func (m Matrix) Sum() float64 { return floats.Sum(m.Data()) }
func (m Matrix) Min() float64 { return floats.Min(m.Data()) }
func (m Matrix) Max() float64 { return floats.Max(m.Data()) }

func (m Matrix) String() string {
	return fmt.Sprintf("%v", mat.Formatted(m.M, mat.Squeeze()))
}

func (m Matrix) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}
