// Package mesh builds finite element mesh topology from a geometric mesh.
// Higher order nodes are generated on every cell and deduplicated across
// cells with exact rational keys, so a node on a shared face is stored once.
package mesh

import (
	"fmt"
	"math/big"

	"github.com/notargets/femcore/element"
	"github.com/notargets/femcore/utils"
)

// Mesh is the node level topology of a geometric mesh.
//
// E is stored element major: E[e][i] is the node index of element e's i-th
// node, so E is NumElements x Np. Read column wise it is the Np x NumElements
// connectivity, E[e] being column e.
type Mesh struct {
	Element element.Element
	Dims    int          // Embedding dimension
	X       utils.Matrix // Dims x NumNodes node positions
	E       [][]int      // NumElements x Np, E[e] in canonical node order
	Nodes   *NodeTable
}

// NewMesh builds nodes and connectivity for cells C (C[c] lists the cell's
// vertex indices into the columns of V, in the element's vertex order).
// Invalid shapes panic. Node numbering follows the input cell order and does
// not depend on the parallel degree.
func NewMesh(el element.Element, dims int, V utils.Matrix, C [][]int) (m *Mesh) {
	defer utils.Profile("mesh.NewMesh")()
	nr, nVerts := V.Dims()
	switch {
	case len(C) == 0:
		panic("mesh has no cells")
	case dims < el.Dims():
		panic(fmt.Errorf("embedding dimension %d is lower than the %s dimension %d",
			dims, el.Name(), el.Dims()))
	case nr != dims:
		panic(fmt.Errorf("vertex positions have %d rows, expected %d", nr, dims))
	}
	for c, cell := range C {
		if len(cell) != el.NVp() {
			panic(fmt.Errorf("cell %d has %d vertices, %s needs %d", c, len(cell), el.Name(), el.NVp()))
		}
		for _, v := range cell {
			if v < 0 || v >= nVerts {
				panic(fmt.Errorf("cell %d references vertex %d, valid range is [0,%d)", c, v, nVerts))
			}
		}
	}
	var (
		K       = len(C)
		Np      = el.Np()
		weights = affineNodeWeights(el)
		keys    = make([][]NodeKey, K)
		pos     = make([][]float64, K) // Dims x Np per cell, row major
	)
	utils.ParallelFor(K, func(c int) {
		cell := utils.Index(C[c])
		sortOrder := cell.Argsort()
		keys[c] = make([]NodeKey, Np)
		pos[c] = make([]float64, dims*Np)
		for i := 0; i < Np; i++ {
			keys[c][i] = NewNodeKey(cell, sortOrder, weights[i])
			for v, w := range weights[i] {
				if w.Sign() == 0 {
					continue
				}
				wf, _ := w.Float64()
				for d := 0; d < dims; d++ {
					pos[c][d*Np+i] += wf * V.At(d, cell[v])
				}
			}
		}
	})
	m = &Mesh{
		Element: el,
		Dims:    dims,
		E:       make([][]int, K),
		Nodes:   NewNodeTable(K * Np),
	}
	var X []float64 // Node major while growing
	for c := 0; c < K; c++ {
		m.E[c] = make([]int, Np)
		for i := 0; i < Np; i++ {
			node, inserted := m.Nodes.Insert(keys[c][i])
			if inserted {
				for d := 0; d < dims; d++ {
					X = append(X, pos[c][d*Np+i])
				}
			}
			m.E[c][i] = node
		}
	}
	nNodes := m.Nodes.DistinctKeys()
	m.X = utils.NewMatrix(nNodes, dims, X).Transpose()
	m.X.SetReadOnly("mesh node positions")
	return
}

// affineNodeWeights returns the exact affine weights of every reference node.
func affineNodeWeights(el element.Element) (W [][]*big.Rat) {
	W = make([][]*big.Rat, el.Np())
	for i, a := range el.Lattice() {
		xi := make([]*big.Rat, len(a))
		for d, k := range a {
			xi[d] = big.NewRat(int64(k), int64(el.Order()))
		}
		W[i] = el.AffineWeights(xi)
	}
	return
}

func (m *Mesh) NumNodes() int {
	_, nc := m.X.Dims()
	return nc
}

func (m *Mesh) NumElements() int { return len(m.E) }

func (m *Mesh) ElementNodes(e int) utils.Index { return m.E[e] }

// ElementVertices returns the node indices of element e's affine base.
func (m *Mesh) ElementVertices(e int) utils.Index {
	return utils.Index(m.E[e]).Subset(m.Element.Vertices())
}

// ElementPositions returns the Dims x Np positions of element e's nodes.
func (m *Mesh) ElementPositions(e int) utils.Matrix {
	return m.X.SliceCols(m.E[e])
}

// VertexPositions returns the Dims x NVp positions of element e's affine base.
func (m *Mesh) VertexPositions(e int) utils.Matrix {
	return m.X.SliceCols(m.ElementVertices(e))
}

// QuadraturePoints maps the reference quadrature points of the given order
// into every element. Column e*NQ+g is point g of element e.
func (m *Mesh) QuadraturePoints(order int) (P utils.Matrix) {
	var (
		rule = m.Element.Quadrature(order)
		NQ   = rule.NQ()
		Np   = m.Element.Np()
		N    = make([][]float64, NQ)
	)
	for g := 0; g < NQ; g++ {
		N[g] = m.Element.N(rule.Point(g))
	}
	P = utils.NewMatrix(m.Dims, NQ*m.NumElements())
	utils.ParallelFor(m.NumElements(), func(e int) {
		for g := 0; g < NQ; g++ {
			for d := 0; d < m.Dims; d++ {
				var x float64
				for i := 0; i < Np; i++ {
					x += N[g][i] * m.X.At(d, m.E[e][i])
				}
				P.Set(d, e*NQ+g, x)
			}
		}
	})
	return
}
