// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package histplot

import (
	"image/color"
	"io"
	"math"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
)

// WriteSVG renders f as an SVG with one facet row per panel. Log axes
// are plotted in log10 units.
func (f *Figure) WriteSVG(w io.Writer) error {
	var (
		panel   []int
		dataset []string
		xs, ys  []float64
		colors  []color.RGBA
	)
	add := func(pi int, label string, c color.RGBA, x, y float64) {
		panel = append(panel, pi)
		dataset = append(dataset, label)
		colors = append(colors, c)
		xs = append(xs, svgPos(f.X, x))
		ys = append(ys, svgPos(f.Y, y))
	}

	titles := make([]string, len(f.Panels))
	for pi, p := range f.Panels {
		titles[pi] = p.Title
		if len(p.Series) == 0 {
			// Keep a row so the facet still appears.
			gray := color.RGBA{192, 192, 192, 255}
			add(pi, p.Title, gray, f.X.Min, f.Y.Min)
			add(pi, p.Title, gray, f.X.Max, f.Y.Min)
			continue
		}
		for _, s := range p.Series {
			h := s.Hist
			for i, c := range h.Counts {
				add(pi, s.Label, s.Color, h.Edges[i], c)
			}
			add(pi, s.Label, s.Color, h.Edges[len(h.Edges)-1], h.Counts[len(h.Counts)-1])
		}
	}

	tab := table.NewBuilder(nil).
		Add("panel", panel).
		Add("dataset", dataset).
		Add("x", xs).
		Add("y", ys).
		Add("color", colors).
		Done()

	plot := gg.NewPlot(tab)
	plot.GroupBy("dataset")
	xlo, xhi := svgPos(f.X, f.X.Min), svgPos(f.X, f.X.Max)
	ylo, yhi := svgPos(f.Y, f.Y.Min), svgPos(f.Y, f.Y.Max)
	plot.SetScale("x", gg.NewLinearScaler().SetMin(xlo).SetMax(xhi))
	plot.SetScale("y", gg.NewLinearScaler().SetMin(ylo).SetMax(yhi))
	plot.Add(gg.FacetY{
		Col:     "panel",
		Labeler: func(v interface{}) string { return titles[v.(int)] },
	})
	plot.Add(gg.LayerSteps{
		LayerPaths: gg.LayerPaths{X: "x", Y: "y", Color: "color"},
		Step:       gg.StepHV,
	})
	plot.Add(gg.AxisLabel("x", axisLabel(f.XLabel, f.X)))
	plot.Add(gg.AxisLabel("y", axisLabel(f.YLabel, f.Y)))
	if f.Title != "" {
		plot.Add(gg.Title(f.Title))
	}
	return plot.WriteSVG(w, f.Width, f.PanelHeight*len(f.Panels))
}

func svgPos(a Axis, v float64) float64 {
	if !a.Log {
		return v
	}
	return math.Log10(math.Max(v, a.Min))
}

func axisLabel(name string, a Axis) string {
	if a.Log {
		return "log10 " + name
	}
	return name
}
