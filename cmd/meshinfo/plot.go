package main

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-fdm/fdm/mesher"
)

var palette = []color.Color{
	color.RGBA{R: 31, G: 119, B: 180, A: 255},
	color.RGBA{R: 255, G: 127, B: 14, A: 255},
	color.RGBA{R: 44, G: 160, B: 44, A: 255},
	color.RGBA{R: 214, G: 39, B: 40, A: 255},
}

type namedMesher struct {
	name string
	m    mesher.Mesher1D
}

// spacingPlot draws the forward spacing against the node position for every
// mesher. Dense regions show up as dips.
func spacingPlot(meshers []namedMesher) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Node spacing"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "dplus"

	for k, nm := range meshers {
		n := nm.m.Size()
		pts := make(plotter.XYs, 0, n-1)
		for i := range n - 1 {
			pts = append(pts, plotter.XY{X: nm.m.Location(i), Y: nm.m.Dplus(i)})
		}

		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", nm.name, err)
		}
		c := palette[k%len(palette)]
		line.Color = c
		line.Width = vg.Points(1)
		points.Color = c
		points.Radius = vg.Points(1.5)

		p.Add(line, points)
		p.Legend.Add(nm.name, line, points)
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10
	return p, nil
}

func savePlot(path string, meshers []namedMesher) error {
	p, err := spacingPlot(meshers)
	if err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}
