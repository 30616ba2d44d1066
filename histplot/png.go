// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package histplot

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const maxTicks = 8

// WritePNG renders f as a single PNG with its panels stacked
// vertically.
func (f *Figure) WritePNG(w io.Writer) error {
	img, err := f.Image()
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Image renders f.
func (f *Figure) Image() (image.Image, error) {
	dst := image.NewRGBA(image.Rect(0, 0, f.Width, f.PanelHeight*len(f.Panels)))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	for i, p := range f.Panels {
		img, err := f.panelImage(p)
		if err != nil {
			return nil, fmt.Errorf("panel %q: %w", p.Title, err)
		}
		r := image.Rect(0, i*f.PanelHeight, f.Width, (i+1)*f.PanelHeight)
		draw.Draw(dst, r, img, img.Bounds().Min, draw.Src)
		if p.Err != "" {
			drawMessage(dst, r, p.Err)
		}
	}
	return dst, nil
}

func (f *Figure) panelImage(p Panel) (image.Image, error) {
	xlo, xhi := f.X.Extent()
	ylo, yhi := f.Y.Extent()

	var series []chart.Series
	for _, s := range p.Series {
		series = append(series, f.stepSeries(s))
	}
	if len(series) == 0 {
		// go-chart refuses to draw a chart with no visible series.
		series = append(series, chart.ContinuousSeries{
			XValues: []float64{xlo, xhi},
			YValues: []float64{ylo, ylo},
			Style:   chart.Style{StrokeColor: drawing.ColorTransparent, StrokeWidth: 1},
		})
	}

	c := chart.Chart{
		Title:      p.Title,
		Width:      f.Width,
		Height:     f.PanelHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20}},
		XAxis: chart.XAxis{
			Name:  f.XLabel,
			Range: &chart.ContinuousRange{Min: xlo, Max: xhi},
			Ticks: chartTicks(f.X),
		},
		YAxis: chart.YAxis{
			Name:  f.YLabel,
			Range: &chart.ContinuousRange{Min: ylo, Max: yhi},
			Ticks: chartTicks(f.Y),
		},
		Series: series,
	}
	if len(p.Series) > 0 {
		c.Elements = []chart.Renderable{chart.Legend(&c)}
	}

	var buf bytes.Buffer
	if err := c.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}

// stepSeries returns the outline of s's histogram as a filled step
// line in panel coordinates.
func (f *Figure) stepSeries(s Series) chart.ContinuousSeries {
	h := s.Hist
	xs := make([]float64, 0, 2*len(h.Counts)+2)
	ys := make([]float64, 0, 2*len(h.Counts)+2)
	base := f.Y.Pos(f.Y.Min)
	xs, ys = append(xs, f.X.Pos(h.Edges[0])), append(ys, base)
	for i, c := range h.Counts {
		y := f.Y.Pos(c)
		xs = append(xs, f.X.Pos(h.Edges[i]), f.X.Pos(h.Edges[i+1]))
		ys = append(ys, y, y)
	}
	xs, ys = append(xs, f.X.Pos(h.Edges[len(h.Edges)-1])), append(ys, base)

	col := drawingColor(s.Color)
	return chart.ContinuousSeries{
		Name:    s.Label,
		XValues: xs,
		YValues: ys,
		Style: chart.Style{
			StrokeColor: col,
			StrokeWidth: 1,
			FillColor:   col.WithAlpha(128),
		},
	}
}

func chartTicks(a Axis) []chart.Tick {
	var ticks []chart.Tick
	for _, t := range a.Ticks(maxTicks) {
		ticks = append(ticks, chart.Tick{Value: a.Pos(t.Value), Label: t.Label})
	}
	return ticks
}

func drawingColor(c color.RGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// drawMessage writes msg in the middle of r, clipped to its width.
func drawMessage(dst draw.Image, r image.Rectangle, msg string) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.RGBA{R: 200, A: 255}),
		Face: face,
	}
	const margin = 80
	avail := r.Dx() - 2*margin
	for len(msg) > 0 && d.MeasureString(msg).Ceil() > avail {
		msg = msg[:len(msg)-1]
	}
	x := r.Min.X + margin
	y := r.Min.Y + r.Dy()/2
	d.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	d.DrawString(msg)
}
