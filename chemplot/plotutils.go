/*
 * plotutils.go, part of gochem.
 *
 * Copyright 2024 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

//Package chemplot produces plots of goChem data, such as descriptor spectra, using gonum/plot.
package chemplot

import (
	"fmt"
	"path/filepath"

	"github.com/rmera/gochemdesc/histo"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

func basicSpectraPlot(title, xlabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "Intensity"
	p.Add(plotter.NewGrid())
	return p
}

// Curves plots each of the ys against the axis x, one line per element of ys, and saves the plot to
// plotname. The extension must be included in plotname, and it determines the format (png, svg, pdf, etc).
// names can be nil, otherwise it must contain one legend entry per curve. Curves that are
// zero everywhere are skipped. Returns an error or nil.
func Curves(x []float64, ys [][]float64, names []string, title, xlabel, plotname string) error {
	if x == nil || ys == nil {
		return fmt.Errorf("goChem/chemplot: nil data")
	}
	if names != nil && len(names) != len(ys) {
		return fmt.Errorf("goChem/chemplot: %d names given for %d curves", len(names), len(ys))
	}
	p := basicSpectraPlot(title, xlabel)
	var drawn int
	for key, y := range ys {
		if len(y) != len(x) {
			return fmt.Errorf("goChem/chemplot: Curve %d has %d points but the axis has %d", key, len(y), len(x))
		}
		if allZero(y) {
			continue
		}
		pts := make(plotter.XYs, len(x))
		for i := range x {
			pts[i].X = x[i]
			pts[i].Y = y[i]
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		l.LineStyle.Width = vg.Points(1)
		l.LineStyle.Color = plotutil.Color(drawn)
		drawn++
		p.Add(l)
		if names != nil {
			p.Legend.Add(names[key], l)
		}
	}
	if filepath.Ext(plotname) == "" {
		plotname += ".png"
	}
	// Save the plot to the file.
	if err := p.Save(6*vg.Inch, 4*vg.Inch, plotname); err != nil {
		return err
	}
	return nil
}

// Spectra plots the given curves, which must share an axis. See Curves.
func Spectra(curves []*histo.Data, names []string, title, xlabel, plotname string) error {
	if len(curves) == 0 {
		return fmt.Errorf("goChem/chemplot: No curves to plot")
	}
	ys := make([][]float64, len(curves))
	for i, c := range curves {
		ys[i] = c.View()
	}
	return Curves(curves[0].Axis(), ys, names, title, xlabel, plotname)
}

func allZero(y []float64) bool {
	for _, v := range y {
		if v != 0 {
			return false
		}
	}
	return true
}
