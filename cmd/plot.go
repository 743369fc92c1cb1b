/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notargets/femcore/element"
	"github.com/notargets/femcore/mesh"
	"github.com/notargets/femcore/types"
	"github.com/notargets/femcore/utils"
)

// PlotCmd represents the plot command
var PlotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Draw a two dimensional mesh, its nodes and quadrature points",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			fileName, _ = cmd.Flags().GetString("inputFile")
			showQuad, _ = cmd.Flags().GetBool("quadrature")
			ls          utils.LineSet
			qOrder      = -1
		)
		mp, err := readMeshParameters(fileName)
		if err != nil {
			return
		}
		m, err := mp.NewMesh()
		if err != nil {
			return
		}
		if showQuad {
			qOrder = mp.QuadratureOrder
		}
		if ls, err = MeshLines(m, qOrder); err != nil {
			return
		}
		utils.PlotLines(ls)
		return
	},
}

func init() {
	rootCmd.AddCommand(PlotCmd)
	PlotCmd.Flags().StringP("inputFile", "I", "", "YAML mesh description")
	PlotCmd.Flags().BoolP("quadrature", "q", false, "mark the quadrature points")
}

// elementEdges lists the affine base edges of a 2D element as vertex pairs.
func elementEdges(gt types.GeometryType) [][2]int {
	switch gt {
	case types.Line:
		return [][2]int{{0, 1}}
	case types.Triangle:
		return [][2]int{{0, 1}, {1, 2}, {2, 0}}
	case types.Quadrilateral:
		return [][2]int{{0, 1}, {1, 3}, {3, 2}, {2, 0}}
	default:
		return nil
	}
}

// edgePoints samples the physical image of a reference edge through the
// element's shape functions, so higher order edges follow their nodes. x holds
// the element's node positions.
func edgePoints(el element.Element, edge [2]int, x utils.Matrix) (p [][2]float64) {
	var (
		nSeg  = 1
		dims  = el.Dims()
		va    = el.AffineBase().Lattice()[edge[0]]
		vb    = el.AffineBase().Lattice()[edge[1]]
		xi    = make([]float64, dims)
		nr, _ = x.Dims()
	)
	if el.Order() > 1 {
		nSeg = 4 * el.Order()
	}
	p = make([][2]float64, nSeg+1)
	for s := 0; s <= nSeg; s++ {
		t := float64(s) / float64(nSeg)
		for d := 0; d < dims; d++ {
			xi[d] = (1-t)*float64(va[d]) + t*float64(vb[d])
		}
		N := el.N(xi)
		for d := 0; d < nr; d++ {
			for i, Ni := range N {
				p[s][d] += Ni * x.At(d, i)
			}
		}
	}
	return
}

// MeshLines draws element edges sampled through the shape functions, vertex
// nodes in red, higher order nodes in green and, when qOrder >= 0, quadrature
// points in blue.
func MeshLines(m *mesh.Mesh, qOrder int) (ls utils.LineSet, err error) {
	if m.Dims != 2 || m.Element.Dims() > 2 {
		return nil, fmt.Errorf("only planar meshes can be plotted, mesh is %dD with %v elements",
			m.Dims, m.Element.GeometryType())
	}
	var (
		size     float64
		isVertex = make(map[int]bool)
		edges    = elementEdges(m.Element.GeometryType())
	)
	ls = make(utils.LineSet)
	for e := 0; e < m.NumElements(); e++ {
		x := m.ElementPositions(e)
		for _, edge := range edges {
			p := edgePoints(m.Element, edge, x)
			for s := 0; s+1 < len(p); s++ {
				ls.AddLine(p[s][0], p[s][1], p[s+1][0], p[s+1][1], utils.GetColor(utils.White))
			}
		}
		for _, n := range m.ElementVertices(e) {
			isVertex[n] = true
		}
	}
	x0, x1, y0, y1 := ls.Bounds()
	size = 0.01 * float64(max(x1-x0, y1-y0))
	for n := 0; n < m.NumNodes(); n++ {
		col := utils.GetColor(utils.Green)
		if isVertex[n] {
			col = utils.GetColor(utils.Red)
		}
		ls.AddCrossHair(m.X.At(0, n), m.X.At(1, n), size, col)
	}
	if qOrder >= 0 {
		P := m.QuadraturePoints(qOrder)
		_, nc := P.Dims()
		for j := 0; j < nc; j++ {
			ls.AddCrossHair(P.At(0, j), P.At(1, j), 0.5*size, utils.GetColor(utils.Blue))
		}
	}
	return
}
