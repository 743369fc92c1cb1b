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

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/femcore/quadrature"
	"github.com/notargets/femcore/types"
)

// QuadratureCmd represents the quadrature command
var QuadratureCmd = &cobra.Command{
	Use:   "quadrature",
	Short: "Print the Gauss quadrature rule of a reference element",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			name, _  = cmd.Flags().GetString("element")
			order, _ = cmd.Flags().GetInt("order")
			gt       types.GeometryType
		)
		if gt, err = types.ParseGeometryType(name); err != nil {
			return
		}
		if order < 0 {
			return fmt.Errorf("quadrature order must be non-negative, got %d", order)
		}
		PrintRule(os.Stdout, quadrature.New(gt, order))
		return
	},
}

func init() {
	rootCmd.AddCommand(QuadratureCmd)
	QuadratureCmd.Flags().StringP("element", "e", "triangle", "line, triangle, quadrilateral, tetrahedron or hexahedron")
	QuadratureCmd.Flags().IntP("order", "o", 2, "polynomial order integrated exactly")
}

func PrintRule(w io.Writer, r *quadrature.Rule) {
	fmt.Fprintf(w, "%v, order %d, %d points\n", r.Geometry, r.Order, r.NQ())
	for g := 0; g < r.NQ(); g++ {
		fmt.Fprintf(w, "%4d  w = %18.15f  xi = %v\n", g, r.Weights[g], r.Point(g))
	}
	fmt.Fprintf(w, "sum(w) = %18.15f\n", floats.Sum(r.Weights))
}
