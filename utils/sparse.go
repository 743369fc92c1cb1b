package utils

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// DOK is a dictionary-of-keys sparse builder. It is not safe for concurrent
// writes; assemble from a single goroutine and convert once with ToCSR.
type DOK struct {
	M        *sparse.DOK
	readOnly bool
	name     string
}

func NewDOK(nr, nc int) (R DOK) {
	R = DOK{
		sparse.NewDOK(nr, nc),
		false,
		"unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m DOK) Dims() (r, c int)    { return m.M.Dims() }
func (m DOK) At(i, j int) float64 { return m.M.At(i, j) }
func (m DOK) T() mat.Matrix       { return m.M.T() }
func (m DOK) NNZ() int            { return m.M.NNZ() }

func (m *DOK) SetReadOnly(name ...string) DOK {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return *m
}

// Accumulate adds val to entry (i,j).
func (m DOK) Accumulate(i, j int, val float64) { // Changes receiver
	m.checkWritable()
	m.M.Set(i, j, m.M.At(i, j)+val)
}

// ScatterBlock adds the dense block A at rows/columns I.
func (m DOK) ScatterBlock(I Index, A Matrix) { // Changes receiver
	var (
		nr, nc = A.Dims()
	)
	if nr != len(I) || nc != len(I) {
		panic(fmt.Errorf("block dimensions %dx%d do not match index length %d", nr, nc, len(I)))
	}
	for a, i := range I {
		for b, j := range I {
			m.Accumulate(i, j, A.At(a, b))
		}
	}
}

// ToCSR converts the builder to compressed rows and seals it; later writes to
// the builder panic.
func (m *DOK) ToCSR() *sparse.CSR {
	m.SetReadOnly()
	return m.M.ToCSR()
}

func (m DOK) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}
