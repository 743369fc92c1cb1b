package utils

import (
	"image/color"
	"math"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
)

type ColorName uint8

const (
	White ColorName = iota
	Blue
	Red
	Green
	Black
)

func GetColor(name ColorName) (c color.RGBA) {
	switch name {
	case White:
		c = utils2.WHITE
	case Blue:
		c = color.RGBA{R: 50, G: 0, B: 255, A: 255}
	case Red:
		c = utils2.RED
	case Green:
		c = color.RGBA{R: 25, G: 255, B: 25, A: 255}
	case Black:
		c = utils2.BLACK
	}
	return
}

// LineSet collects line segments (x1,y1,x2,y2 quadruples) by color.
type LineSet map[color.RGBA][]float32

func (ls LineSet) AddLine(x1, y1, x2, y2 float64, col color.RGBA) {
	ls[col] = append(ls[col],
		float32(x1), float32(y1),
		float32(x2), float32(y2),
	)
}

// AddCrossHair marks the point (x,y) with a cross of half width size.
func (ls LineSet) AddCrossHair(x, y, size float64, col color.RGBA) {
	ls.AddLine(x-size, y, x+size, y, col)
	ls.AddLine(x, y-size, x, y+size, col)
}

// Bounds returns the extent of every segment in the set.
func (ls LineSet) Bounds() (xMin, xMax, yMin, yMax float32) {
	xMin, xMax = math.MaxFloat32, -math.MaxFloat32
	yMin, yMax = math.MaxFloat32, -math.MaxFloat32
	for _, line := range ls {
		for i := 0; i+1 < len(line); i += 2 {
			x, y := line[i], line[i+1]
			xMin, xMax = min(xMin, x), max(xMax, x)
			yMin, yMax = min(yMin, y), max(yMax, y)
		}
	}
	return
}

// PlotLines opens a chart window with the line set and blocks while it is shown.
func PlotLines(ls LineSet) {
	xMin, xMax, yMin, yMax := ls.Bounds()
	// Pad so lines on the boundary stay visible
	padX, padY := 0.05*(xMax-xMin), 0.05*(yMax-yMin)
	ch := chart2d.NewChart2D(xMin-padX, xMax+padX, yMin-padY, yMax+padY,
		1024, 1024, utils2.WHITE, utils2.BLACK)
	for col, line := range ls {
		ch.AddLine(line, col)
	}
	select {}
}
