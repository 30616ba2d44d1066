// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package framestats

import (
	"fmt"
	"math"
)

// A Mode selects the statistic extracted from each frame.
type Mode int

const (
	// PeakCount reduces each frame to one sample: its number of
	// non-zero pixels.
	PeakCount Mode = iota

	// RawIntensity contributes every non-zero pixel value of each
	// frame as a sample.
	RawIntensity
)

func (m Mode) String() string {
	switch m {
	case PeakCount:
		return "peak-count"
	case RawIntensity:
		return "raw-intensity"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Extract returns the samples frame contributes to its dataset.
func (m Mode) Extract(frame []float64) []float64 {
	if m == PeakCount {
		return []float64{float64(CountPeaks(frame))}
	}
	return NonZero(frame)
}

// CountPeaks returns the total number of occurrences of the distinct
// non-zero values in frame. This is the number of non-zero elements;
// NaNs are non-zero and count as one distinct value.
func CountPeaks(frame []float64) int {
	freq := make(map[float64]int)
	nans := 0
	for _, v := range frame {
		switch {
		case v == 0:
		case math.IsNaN(v):
			nans++
		default:
			freq[v]++
		}
	}
	total := nans
	for _, n := range freq {
		total += n
	}
	return total
}

// NonZero returns the non-zero values of frame in order.
func NonZero(frame []float64) []float64 {
	out := []float64{}
	for _, v := range frame {
		if v != 0 {
			out = append(out, v)
		}
	}
	return out
}
