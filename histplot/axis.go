// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package histplot

import (
	"math"
	"strconv"

	"github.com/aclements/go-moremath/scale"
)

// LogFloor is where zero counts are drawn on a log count axis.
const LogFloor = 0.5

// An Axis maps data values in [Min, Max] to panel positions. Linear
// axes map v to v. Log axes map v to log10(v/Min), so Min is at
// position 0. Values below Min are drawn at Min.
type Axis struct {
	Min, Max float64
	Log      bool
}

// Pos returns the position of v on a.
func (a Axis) Pos(v float64) float64 {
	if a.Log {
		if v < a.Min {
			v = a.Min
		}
		return math.Log10(v / a.Min)
	}
	return v
}

// Extent returns the positions of Min and Max.
func (a Axis) Extent() (lo, hi float64) {
	return a.Pos(a.Min), a.Pos(a.Max)
}

// A Tick is a labeled position on an axis.
type Tick struct {
	Value float64 // Data value, not position
	Label string
}

// Ticks returns at most max major ticks within [Min, Max].
func (a Axis) Ticks(max int) []Tick {
	var major []float64
	o := scale.TickOptions{Max: max}
	if a.Log {
		s, err := scale.NewLog(a.Min, a.Max, 10)
		if err != nil {
			return nil
		}
		major, _ = s.Ticks(o)
	} else {
		s := scale.Linear{Min: a.Min, Max: a.Max}
		major, _ = s.Ticks(o)
	}

	var ticks []Tick
	for _, v := range major {
		// Allow for rounding at the ends.
		eps := 1e-9 * math.Max(math.Abs(a.Min), math.Abs(a.Max))
		if v < a.Min-eps || v > a.Max+eps {
			continue
		}
		ticks = append(ticks, Tick{v, formatTick(v)})
	}
	return ticks
}

func formatTick(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e6 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'g', 4, 64)
}

// countAxis returns the count axis for histograms whose largest bin is
// maxCount.
func countAxis(maxCount float64, log bool) Axis {
	if maxCount < 1 {
		maxCount = 1
	}
	if log {
		return Axis{Min: LogFloor, Max: maxCount * 2, Log: true}
	}
	return Axis{Min: 0, Max: maxCount * 1.05}
}
