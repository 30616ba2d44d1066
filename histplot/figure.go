// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package histplot renders dataset histograms as PNG images, with an
// optional SVG companion.
//
// A Figure is built from an aggregated framestats.View. All panels of
// a figure share the same bins and axis limits, so datasets can be
// compared by eye.
package histplot

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/bioxfel/framestats/framestats"
)

// A Style selects the figure layout.
type Style int

const (
	// Combined overlays every dataset in one panel with linear axes.
	Combined Style = iota

	// PerDataset draws one log-log panel per dataset followed by a
	// panel overlaying all of them.
	PerDataset
)

func (s Style) String() string {
	switch s {
	case Combined:
		return "combined"
	case PerDataset:
		return "per-dataset"
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// Bins returns the number of histogram bins used by s.
func (s Style) Bins() int {
	if s == PerDataset {
		return 100
	}
	return 10
}

// FileName returns the PNG file name for a figure titled title.
func (s Style) FileName(title string) string {
	if s == PerDataset {
		return title + "_intensities_combined.png"
	}
	return title + "_combined_histogram.png"
}

// SVGName returns the companion SVG file name for a PNG file name.
func SVGName(png string) string {
	return strings.TrimSuffix(png, ".png") + ".svg"
}

// Options control how a Figure is built.
type Options struct {
	Title string
	Style Style

	// Width and PanelHeight are the pixel size of each panel. If
	// zero, they default to 1000 and 600.
	Width, PanelHeight int
}

// A Figure is a stack of histogram panels with shared axes.
type Figure struct {
	Title          string
	Style          Style
	XLabel, YLabel string
	X, Y           Axis
	Binning        Binning
	Panels         []Panel

	Width, PanelHeight int
}

// A Panel is one plot area of a figure.
type Panel struct {
	Title  string
	Series []Series

	// Err is the failure shown in place of data, if any.
	Err string
}

// A Series is one dataset's histogram.
type Series struct {
	Label string
	Color color.RGBA
	Hist  Hist
}

// Build bins every plottable series of v and lays them out according
// to o. v must have a valid range.
func Build(v *framestats.View, o Options) (*Figure, error) {
	plottable := v.Plottable()
	if len(plottable) == 0 || !finite(v.Min) || !finite(v.Max) || v.Min > v.Max {
		return nil, framestats.ErrEmptyRange
	}
	f := &Figure{
		Title:       o.Title,
		Style:       o.Style,
		Width:       o.Width,
		PanelHeight: o.PanelHeight,
	}
	if f.Width <= 0 {
		f.Width = 1000
	}
	if f.PanelHeight <= 0 {
		f.PanelHeight = 600
	}
	log := o.Style == PerDataset
	if log {
		f.XLabel, f.YLabel = "Intensity of Peaks", "Occurrences Across Images"
	} else {
		f.XLabel, f.YLabel = "Frequency of Peaks", "Frequency of Images"
	}

	f.Binning = NewBinning(v.Min, v.Max, o.Style.Bins(), log)
	f.X = Axis{Min: f.Binning.Min, Max: f.Binning.Max, Log: f.Binning.Log}

	hists := make(map[int]Series)
	var all []Series
	maxCount := 0.0
	for _, s := range plottable {
		hs := Series{Label: s.Label, Color: s.Color, Hist: f.Binning.Hist(s.Samples)}
		if m := hs.Hist.MaxCount(); m > maxCount {
			maxCount = m
		}
		hists[s.Index] = hs
		all = append(all, hs)
	}
	f.Y = countAxis(maxCount, log)

	if o.Style == Combined {
		f.Panels = []Panel{{Title: o.Title, Series: all}}
		return f, nil
	}
	for _, s := range v.Series {
		p := Panel{Title: s.Label}
		if hs, ok := hists[s.Index]; ok {
			p.Series = []Series{hs}
		}
		if s.Err != nil {
			p.Err = s.Err.Error()
		}
		f.Panels = append(f.Panels, p)
	}
	f.Panels = append(f.Panels, Panel{Title: "Combined " + o.Title, Series: all})
	return f, nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
