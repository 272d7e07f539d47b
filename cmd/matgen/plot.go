// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// savePlot draws the singular values s against their index on a log scale and
// writes the figure to path; the extension picks the image format. Exact
// zeros cannot be shown on a log axis and are left out.
func savePlot(path, title string, s []float64) error {
	pts := make(plotter.XYs, 0, len(s))
	for i, v := range s {
		if v > 0 {
			pts = append(pts, plotter.XY{X: float64(i + 1), Y: v})
		}
	}
	if len(pts) == 0 {
		return fmt.Errorf("no positive singular values to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "index i"
	p.Y.Label.Text = "σ_i"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
