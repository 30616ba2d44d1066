// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package histplot

import (
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
)

// A Binning divides [Min, Max] into N bins. If Log is set, the bins
// are uniform in log10 space.
type Binning struct {
	Min, Max float64
	N        int
	Log      bool
}

// NewBinning returns a binning of n bins over [min, max]. Log binning
// is used only if log is requested and min > 0. A degenerate range is
// widened so every bin has positive width.
func NewBinning(min, max float64, n int, log bool) Binning {
	if n < 1 {
		n = 1
	}
	b := Binning{Min: min, Max: max, N: n, Log: log && min > 0}
	if b.Min == b.Max {
		if b.Log {
			b.Min /= math.Sqrt(10)
			b.Max *= math.Sqrt(10)
		} else {
			b.Min -= 0.5
			b.Max += 0.5
		}
	}
	return b
}

// pos maps a value to the space the bins are uniform in.
func (b Binning) pos(x float64) float64 {
	if b.Log {
		return math.Log10(x)
	}
	return x
}

// Edges returns the N+1 bin edges in increasing order.
func (b Binning) Edges() []float64 {
	edges := vec.Linspace(b.pos(b.Min), b.pos(b.Max), b.N+1)
	if b.Log {
		edges = vec.Map(func(x float64) float64 { return math.Pow(10, x) }, edges)
		// Pin the ends against rounding in Pow.
		edges[0], edges[b.N] = b.Min, b.Max
	}
	return edges
}

// Count returns the number of xs in each bin. Bins are half-open
// except the last, which includes Max. Values outside [Min, Max] and
// NaNs are dropped.
func (b Binning) Count(xs []float64) []float64 {
	h := stats.NewLinearHist(b.pos(b.Min), b.pos(b.Max), b.N)
	lo, hi := b.pos(b.Min), b.pos(b.Max)
	top := 0
	for _, x := range xs {
		if math.IsNaN(x) || x < b.Min || x > b.Max || (b.Log && x <= 0) {
			continue
		}
		p := b.pos(x)
		switch {
		case p >= hi:
			top++
		case p < lo:
			// Rounding in log10 can push Min just below lo.
			h.Add(lo)
		default:
			h.Add(p)
		}
	}

	_, bins, high := h.Counts()
	counts := make([]float64, len(bins))
	for i, c := range bins {
		counts[i] = float64(c)
	}
	// Anything the histogram put past its last bin is at Max.
	counts[len(counts)-1] += float64(high) + float64(top)
	return counts
}

// A Hist is a binned sample.
type Hist struct {
	Edges  []float64
	Counts []float64
}

// Total returns the number of counted samples.
func (h Hist) Total() float64 {
	return vec.Sum(h.Counts)
}

// MaxCount returns the largest bin count.
func (h Hist) MaxCount() float64 {
	_, max := stats.Bounds(h.Counts)
	if math.IsNaN(max) {
		return 0
	}
	return max
}

// Hist bins xs.
func (b Binning) Hist(xs []float64) Hist {
	return Hist{b.Edges(), b.Count(xs)}
}
