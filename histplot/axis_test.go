// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package histplot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAxisPos(t *testing.T) {
	lin := Axis{Min: -2, Max: 8}
	assert.Equal(t, 3.0, lin.Pos(3))

	log := Axis{Min: 2, Max: 2000, Log: true}
	assert.Equal(t, 0.0, log.Pos(2))
	assert.InDelta(t, 3.0, log.Pos(2000), 1e-12)
	// Values below the axis sit on it.
	assert.Equal(t, 0.0, log.Pos(0))

	lo, hi := log.Extent()
	assert.Equal(t, 0.0, lo)
	assert.InDelta(t, 3.0, hi, 1e-12)
}

func TestLogTicksArePowersOfTen(t *testing.T) {
	a := Axis{Min: 1, Max: 1e4, Log: true}
	ticks := a.Ticks(8)
	require.NotEmpty(t, ticks)
	for _, tick := range ticks {
		e := math.Log10(tick.Value)
		assert.InDelta(t, math.Round(e), e, 1e-9, "tick %v", tick.Value)
		assert.GreaterOrEqual(t, tick.Value, a.Min)
		assert.LessOrEqual(t, tick.Value, a.Max)
	}
	assert.Equal(t, "1", ticks[0].Label)
}

func TestLinearTicks(t *testing.T) {
	a := Axis{Min: 0, Max: 100}
	ticks := a.Ticks(6)
	require.NotEmpty(t, ticks)
	assert.LessOrEqual(t, len(ticks), 6)
	for i, tick := range ticks {
		assert.GreaterOrEqual(t, tick.Value, 0.0)
		assert.LessOrEqual(t, tick.Value, 100.0)
		if i > 0 {
			assert.Greater(t, tick.Value, ticks[i-1].Value)
		}
	}
}

func TestFormatTick(t *testing.T) {
	for _, test := range []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{100, "100"},
		{-20, "-20"},
		{0.5, "0.5"},
		{1e7, "1e+07"},
	} {
		assert.Equal(t, test.want, formatTick(test.v))
	}
}

func TestCountAxis(t *testing.T) {
	a := countAxis(0, true)
	assert.Equal(t, LogFloor, a.Min)
	assert.True(t, a.Log)

	a = countAxis(40, false)
	assert.Equal(t, 0.0, a.Min)
	assert.InDelta(t, 42.0, a.Max, 1e-9)
}
