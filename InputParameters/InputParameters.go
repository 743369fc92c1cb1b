package InputParameters

import (
	"errors"
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/notargets/femcore/element"
	"github.com/notargets/femcore/mesh"
	"github.com/notargets/femcore/types"
	"github.com/notargets/femcore/utils"
)

var ErrInvalidInput = errors.New("invalid mesh input")

// MeshParameters describes a mesh and its evaluation settings, obtained from
// the YAML input file. The mesh is either listed (Vertices and Cells) or
// generated (Grid).
type MeshParameters struct {
	Title           string          `json:"Title"`
	Element         string          `json:"Element"` // line, triangle, quadrilateral, tetrahedron, hexahedron
	PolynomialOrder int             `json:"PolynomialOrder"`
	Dims            int             `json:"Dims"`            // Embedding dimension, defaults to the element's
	QuadratureOrder int             `json:"QuadratureOrder"` // Defaults to 2*PolynomialOrder
	AffineTolerance float64         `json:"AffineTolerance"` // Defaults to 1.e-10
	Vertices        [][]float64     `json:"Vertices"`
	Cells           [][]int         `json:"Cells"`
	Grid            *GridParameters `json:"Grid"`
}

type GridParameters struct {
	Divisions []int     `json:"Divisions"`
	Lengths   []float64 `json:"Lengths"`
}

func (mp *MeshParameters) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, mp); err != nil {
		return
	}
	return mp.Validate()
}

// Validate fills in defaults and checks the description against its element.
func (mp *MeshParameters) Validate() (err error) {
	var el element.Element
	if el, err = mp.NewElement(); err != nil {
		return
	}
	if mp.Dims == 0 {
		mp.Dims = el.Dims()
	}
	if mp.Dims < el.Dims() {
		return fmt.Errorf("%w: Dims %d is lower than the %v dimension %d",
			ErrInvalidInput, mp.Dims, el.GeometryType(), el.Dims())
	}
	if mp.QuadratureOrder == 0 {
		mp.QuadratureOrder = 2 * mp.PolynomialOrder
	}
	if mp.QuadratureOrder < 0 {
		return fmt.Errorf("%w: negative QuadratureOrder %d", ErrInvalidInput, mp.QuadratureOrder)
	}
	if mp.AffineTolerance == 0 {
		mp.AffineTolerance = 1.e-10
	}
	switch {
	case mp.Grid != nil && len(mp.Vertices) != 0:
		return fmt.Errorf("%w: give either Grid or Vertices and Cells, not both", ErrInvalidInput)
	case mp.Grid != nil:
		return mp.validateGrid(el)
	case len(mp.Vertices) == 0 || len(mp.Cells) == 0:
		return fmt.Errorf("%w: no Vertices and Cells or Grid", ErrInvalidInput)
	}
	for v, X := range mp.Vertices {
		if len(X) != mp.Dims {
			return fmt.Errorf("%w: vertex %d has %d coordinates, expected %d",
				ErrInvalidInput, v, len(X), mp.Dims)
		}
	}
	for c, cell := range mp.Cells {
		if len(cell) != el.NVp() {
			return fmt.Errorf("%w: cell %d has %d vertices, expected %d",
				ErrInvalidInput, c, len(cell), el.NVp())
		}
		for _, v := range cell {
			if v < 0 || v >= len(mp.Vertices) {
				return fmt.Errorf("%w: cell %d references vertex %d of %d",
					ErrInvalidInput, c, v, len(mp.Vertices))
			}
		}
	}
	return
}

func (mp *MeshParameters) validateGrid(el element.Element) error {
	g := mp.Grid
	if mp.Dims != el.Dims() {
		return fmt.Errorf("%w: grids are not embedded, Dims must be %d", ErrInvalidInput, el.Dims())
	}
	if len(g.Divisions) != el.Dims() || len(g.Lengths) != el.Dims() {
		return fmt.Errorf("%w: Grid needs %d Divisions and Lengths", ErrInvalidInput, el.Dims())
	}
	for d := range g.Divisions {
		if g.Divisions[d] < 1 || g.Lengths[d] <= 0 {
			return fmt.Errorf("%w: Grid Divisions and Lengths must be positive", ErrInvalidInput)
		}
	}
	return nil
}

func (mp *MeshParameters) NewElement() (el element.Element, err error) {
	if el, err = element.Parse(mp.Element, mp.PolynomialOrder); err != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return
}

// Geometry returns the Dims x #vertices positions and the cells of the mesh.
func (mp *MeshParameters) Geometry() (V utils.Matrix, C [][]int) {
	if mp.Grid != nil {
		gt, _ := types.ParseGeometryType(mp.Element)
		return mesh.Grid(gt, mp.Grid.Divisions, mp.Grid.Lengths)
	}
	V = utils.NewMatrix(mp.Dims, len(mp.Vertices))
	for v, X := range mp.Vertices {
		V.SetCol(v, X)
	}
	return V, mp.Cells
}

// NewMesh builds the mesh described by validated parameters.
func (mp *MeshParameters) NewMesh() (m *mesh.Mesh, err error) {
	var el element.Element
	if el, err = mp.NewElement(); err != nil {
		return
	}
	V, C := mp.Geometry()
	m = mesh.NewMesh(el, mp.Dims, V, C)
	return
}

func (mp *MeshParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", mp.Title)
	fmt.Printf("[%s]\t\t= Element\n", mp.Element)
	fmt.Printf("[%d]\t\t\t= Polynomial Order\n", mp.PolynomialOrder)
	fmt.Printf("[%d]\t\t\t= Quadrature Order\n", mp.QuadratureOrder)
	fmt.Printf("[%d]\t\t\t= Embedding Dimension\n", mp.Dims)
	if mp.Grid != nil {
		fmt.Printf("%v x %v\t= Grid Divisions x Lengths\n", mp.Grid.Divisions, mp.Grid.Lengths)
	} else {
		fmt.Printf("[%d]\t\t\t= Vertices\n", len(mp.Vertices))
		fmt.Printf("[%d]\t\t\t= Cells\n", len(mp.Cells))
	}
}
