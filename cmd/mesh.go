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
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/notargets/femcore/InputParameters"
	"github.com/notargets/femcore/fem"
	"github.com/notargets/femcore/mesh"
	"github.com/notargets/femcore/utils"
)

const exampleMeshFile = `
########################################
Title: "Two triangles"
Element: triangle # line, quad, tet, hex
PolynomialOrder: 2
QuadratureOrder: 4 # default 2*PolynomialOrder
Vertices:
  - [0, 0]
  - [1, 0]
  - [0, 1]
  - [1, 1]
Cells:
  - [0, 1, 2]
  - [1, 3, 2]
# or, instead of Vertices and Cells:
# Grid:
#   Divisions: [4, 4]
#   Lengths: [1., 1.]
########################################
`

// MeshCmd represents the mesh command
var MeshCmd = &cobra.Command{
	Use:   "mesh",
	Short: "Build a mesh and evaluate its shape functions and gradients",
	Long: `Builds the mesh described by a YAML input file, then reports node
deduplication, the measure integrated with the shape functions and the size of
the gradient buffer. Optionally checks that elements are affine and assembles
the global mass and Laplacian matrices.`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			fileName, _    = cmd.Flags().GetString("inputFile")
			checkAffine, _ = cmd.Flags().GetBool("checkAffine")
			assemble, _    = cmd.Flags().GetBool("assemble")
			mp             *InputParameters.MeshParameters
			report         *MeshReport
		)
		if mp, err = readMeshParameters(fileName); err != nil {
			return
		}
		mp.Print()
		if report, err = RunMesh(mp, checkAffine, assemble); err != nil {
			return
		}
		report.Print(os.Stdout)
		return
	},
}

func init() {
	rootCmd.AddCommand(MeshCmd)
	MeshCmd.Flags().StringP("inputFile", "I", "", "YAML mesh description")
	MeshCmd.Flags().BoolP("checkAffine", "a", false, "verify that element maps are affine, so gradients are exact")
	MeshCmd.Flags().Bool("assemble", false, "assemble the global mass and Laplacian matrices")
}

func readMeshParameters(fileName string) (mp *InputParameters.MeshParameters, err error) {
	if len(fileName) == 0 {
		fmt.Printf("Example File:%s\n", exampleMeshFile)
		return nil, fmt.Errorf("must supply a mesh input file (-I, --inputFile)")
	}
	var data []byte
	if data, err = os.ReadFile(fileName); err != nil {
		return
	}
	mp = &InputParameters.MeshParameters{}
	if err = mp.Parse(data); err != nil {
		err = fmt.Errorf("reading %s: %w", fileName, err)
	}
	return
}

type MeshReport struct {
	Nodes, Elements            int
	DistinctKeys               int
	ElementNodes               int // Total (element, local node) pairs
	QuadraturePoints           int // Per element
	Measure                    float64
	GradientRows, GradientCols int
	AffineChecked              bool
	AffineErr                  error
	Assembled                  bool
	MassNNZ, LaplacianNNZ      int
	MassSum                    float64
}

// RunMesh builds the mesh and evaluates everything the report holds.
func RunMesh(mp *InputParameters.MeshParameters, checkAffine, assemble bool) (r *MeshReport, err error) {
	var (
		m *mesh.Mesh
	)
	if m, err = mp.NewMesh(); err != nil {
		return
	}
	log.Info("mesh built", "element", m.Element.Name(), "nodes", m.NumNodes(), "elements", m.NumElements())
	log.Debug(utils.GetMemUsage())
	q := mp.QuadratureOrder
	r = &MeshReport{
		Nodes:            m.NumNodes(),
		Elements:         m.NumElements(),
		DistinctKeys:     m.Nodes.DistinctKeys(),
		ElementNodes:     m.NumElements() * m.Element.Np(),
		QuadraturePoints: m.Element.Quadrature(q).NQ(),
	}
	IN, err := fem.IntegratedShapeFunctions(m, q, fem.DeterminantOfJacobian(m, q))
	if err != nil {
		return
	}
	r.Measure = IN.Sum()
	r.GradientRows, r.GradientCols = fem.MeshShapeFunctionGradients(m, q).Dims()
	if checkAffine {
		r.AffineChecked = true
		if r.AffineErr = fem.CheckAffineMap(m, q, mp.AffineTolerance); r.AffineErr != nil {
			log.Warn("gradients are approximate", "err", r.AffineErr)
		}
	}
	if assemble {
		r.Assembled = true
		M := fem.MassMatrix(m, q)
		r.MassNNZ = M.NNZ()
		M.DoNonZero(func(i, j int, v float64) { r.MassSum += v })
		r.LaplacianNNZ = fem.LaplacianMatrix(m, q).NNZ()
	}
	return
}

func (r *MeshReport) Print(w io.Writer) {
	fmt.Fprintf(w, "[%d]\t\t\t= Nodes\n", r.Nodes)
	fmt.Fprintf(w, "[%d]\t\t\t= Elements\n", r.Elements)
	fmt.Fprintf(w, "[%d/%d]\t\t= Distinct node keys / element nodes\n", r.DistinctKeys, r.ElementNodes)
	fmt.Fprintf(w, "[%d]\t\t\t= Quadrature points per element\n", r.QuadraturePoints)
	fmt.Fprintf(w, "%12.8f\t\t= Measure\n", r.Measure)
	fmt.Fprintf(w, "[%d x %d]\t\t= Gradient buffer\n", r.GradientRows, r.GradientCols)
	if r.AffineChecked {
		if r.AffineErr != nil {
			fmt.Fprintf(w, "%v\t= Affine check\n", r.AffineErr)
		} else {
			fmt.Fprintf(w, "[ok]\t\t\t= Affine check\n")
		}
	}
	if r.Assembled {
		fmt.Fprintf(w, "[%d]\t\t\t= Mass matrix non zeros\n", r.MassNNZ)
		fmt.Fprintf(w, "%12.8f\t\t= Mass matrix sum\n", r.MassSum)
		fmt.Fprintf(w, "[%d]\t\t\t= Laplacian non zeros\n", r.LaplacianNNZ)
	}
}
