package types

import (
	"fmt"
	"strings"
)

// GeometryType is the shape of a reference element.
type GeometryType uint8

const (
	Line GeometryType = iota
	Triangle
	Quadrilateral
	Tetrahedron
	Hexahedron
)

var GeometryNameMap = map[string]GeometryType{
	"line":          Line,
	"lin":           Line,
	"triangle":      Triangle,
	"tri":           Triangle,
	"quadrilateral": Quadrilateral,
	"quad":          Quadrilateral,
	"tetrahedron":   Tetrahedron,
	"tet":           Tetrahedron,
	"hexahedron":    Hexahedron,
	"hex":           Hexahedron,
}

func ParseGeometryType(name string) (gt GeometryType, err error) {
	var ok bool
	if gt, ok = GeometryNameMap[strings.ToLower(strings.TrimSpace(name))]; !ok {
		err = fmt.Errorf("unknown element geometry %q", name)
	}
	return
}

func (gt GeometryType) String() string {
	names := []string{"Line", "Triangle", "Quadrilateral", "Tetrahedron", "Hexahedron"}
	if int(gt) < len(names) {
		return names[gt]
	}
	return "Invalid"
}

// Dims is the parametric dimension of the reference domain.
func (gt GeometryType) Dims() int {
	switch gt {
	case Line:
		return 1
	case Triangle, Quadrilateral:
		return 2
	case Tetrahedron, Hexahedron:
		return 3
	default:
		panic(fmt.Errorf("invalid geometry type %d", gt))
	}
}

// IsSimplex is true for lines, triangles and tetrahedra.
func (gt GeometryType) IsSimplex() bool {
	return gt == Line || gt == Triangle || gt == Tetrahedron
}

// ReferenceVolume is the measure of the reference domain: [0,1]^d for tensor
// shapes and the unit simplex otherwise.
func (gt GeometryType) ReferenceVolume() float64 {
	switch gt {
	case Triangle:
		return 1. / 2.
	case Tetrahedron:
		return 1. / 6.
	default:
		return 1.
	}
}
