// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package framestats

import (
	"fmt"
	"image/color"
	"math"
	"path"
	"path/filepath"
	"strings"

	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-moremath/stats"
)

// A Series is one dataset prepared for plotting.
type Series struct {
	DatasetResult

	Index int // Position in the input dataset list
	Color color.RGBA
	Label string
}

// Plottable reports whether s contributes to the range and the plot.
func (s Series) Plottable() bool {
	return s.Err == nil && len(Finite(s.Samples)) > 0
}

// A View is the set of dataset results with the value range they
// share.
type View struct {
	Series   []Series // In input order, including failed datasets
	Min, Max float64  // Over plottable series
}

// Plottable returns the series that have samples and no error.
func (v *View) Plottable() []Series {
	var out []Series
	for _, s := range v.Series {
		if s.Plottable() {
			out = append(out, s)
		}
	}
	return out
}

// Failed returns the series whose datasets failed.
func (v *View) Failed() []Series {
	var out []Series
	for _, s := range v.Series {
		if s.Err != nil {
			out = append(out, s)
		}
	}
	return out
}

// ByName returns the series for the named dataset.
func (v *View) ByName(name string) (Series, bool) {
	for _, s := range v.Series {
		if s.Name == name {
			return s, true
		}
	}
	return Series{}, false
}

// Aggregate assigns each result a color and label and computes the
// global sample range. NaN and infinite samples are kept in the
// results but never widen the range. Colors depend only on a dataset's position in
// results, so they are stable across runs even when other datasets
// fail. If no result has samples, Aggregate returns ErrEmptyRange
// along with a View whose Series can still be reported.
func Aggregate(results []DatasetResult) (*View, error) {
	v := &View{Min: math.Inf(1), Max: math.Inf(-1)}
	for i, r := range results {
		s := Series{
			DatasetResult: r,
			Index:         i,
			Color:         Color(i, len(results)),
			Label:         Label(r.Name, r.FileCount),
		}
		if s.Plottable() {
			lo, hi := stats.Bounds(Finite(r.Samples))
			v.Min = math.Min(v.Min, lo)
			v.Max = math.Max(v.Max, hi)
		}
		v.Series = append(v.Series, s)
	}
	if math.IsInf(v.Min, 1) {
		return v, ErrEmptyRange
	}
	return v, nil
}

// Finite returns the finite values of xs. If every value is finite,
// xs itself is returned.
func Finite(xs []float64) []float64 {
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			out := append([]float64(nil), xs[:i]...)
			for _, x := range xs[i+1:] {
				if !math.IsNaN(x) && !math.IsInf(x, 0) {
					out = append(out, x)
				}
			}
			return out
		}
	}
	return xs
}

// Color returns the viridis color for position i of n.
func Color(i, n int) color.RGBA {
	c := palette.Viridis.Map(float64(i) / float64(n))
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// Label returns the legend label for a dataset: the final element of
// its name without extension, and its file count.
func Label(name string, files int) string {
	return fmt.Sprintf("%s (Files: %d)", Stem(name), files)
}

// Stem returns the final element of name with its extension removed.
// A leading dot does not start an extension.
func Stem(name string) string {
	base := path.Base(filepath.ToSlash(name))
	if base == "." || base == "/" {
		return ""
	}
	i := strings.LastIndexByte(base, '.')
	if i <= 0 || i == len(base)-1 {
		return base
	}
	return base[:i]
}
