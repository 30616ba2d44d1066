// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package framestats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessAllEmpty(t *testing.T) {
	w := &Worker{BaseDir: t.TempDir(), Logger: quiet}
	res, err := ProcessAll(context.Background(), w, nil)
	assert.ErrorIs(t, err, ErrUsage)
	assert.Nil(t, res)
}

func TestProcessAllOrder(t *testing.T) {
	base := t.TempDir()
	names := []string{"d", "c", "b", "a", "e"}
	frames := map[string][]float64{}
	for i, name := range names {
		file := name + ".h5"
		touch(t, base, name, file)
		frames[file] = []float64{float64(i + 1)}
	}
	r := &fakeReader{frames: frames, delay: 5 * time.Millisecond}
	w := &Worker{BaseDir: base, Mode: RawIntensity, Reader: r, Logger: quiet}

	res, err := ProcessAll(context.Background(), w, names)
	require.NoError(t, err)
	require.Len(t, res, len(names))
	for i, name := range names {
		assert.Equal(t, name, res[i].Name)
		assert.Equal(t, 1, res[i].FileCount)
		assert.Equal(t, []float64{float64(i + 1)}, res[i].Samples)
	}
}

func TestProcessAllIsolatesFailures(t *testing.T) {
	base := t.TempDir()
	touch(t, base, "A", "a1.h5", "a2.h5")
	touch(t, base, "B", "b1.h5", "b2.h5", "b3.h5")
	touch(t, base, "C", "c1.h5")
	r := &fakeReader{
		frames: map[string][]float64{
			"a1.h5": {10, 0}, "a2.h5": {20},
			"b1.h5": {1}, "b3.h5": {2},
			"c1.h5": {0, 30},
		},
		fail: map[string]error{"b2.h5": errors.New("corrupt frame")},
	}
	w := &Worker{BaseDir: base, Mode: RawIntensity, Reader: r, Logger: quiet}

	res, err := ProcessAll(context.Background(), w, []string{"A", "B", "C"})
	require.NoError(t, err)
	require.Len(t, res, 3)

	assert.NoError(t, res[0].Err)
	assert.Equal(t, []float64{10, 20}, res[0].Samples)

	assert.Error(t, res[1].Err)
	assert.Equal(t, 3, res[1].FileCount)
	assert.Empty(t, res[1].Samples)

	assert.NoError(t, res[2].Err)
	assert.Equal(t, []float64{30}, res[2].Samples)
}

// Two workers with different base directories share nothing.
func TestProcessAllIndependentWorkers(t *testing.T) {
	base1, base2 := t.TempDir(), t.TempDir()
	writeFrames(t, base1, "ds", []float64{1, 1})
	writeFrames(t, base2, "ds", []float64{2}, []float64{2, 2, 0})

	w1 := &Worker{BaseDir: base1, Logger: quiet}
	w2 := &Worker{BaseDir: base2, Logger: quiet}
	r1, err := ProcessAll(context.Background(), w1, []string{"ds"})
	require.NoError(t, err)
	r2, err := ProcessAll(context.Background(), w2, []string{"ds"})
	require.NoError(t, err)

	assert.Equal(t, []float64{2}, r1[0].Samples)
	assert.Equal(t, 1, r1[0].FileCount)
	assert.Equal(t, []float64{1, 2}, r2[0].Samples)
	assert.Equal(t, 2, r2[0].FileCount)
}

// A full pipeline run from frame files to the shared range.
func TestPipelineRange(t *testing.T) {
	base := t.TempDir()
	writeFrames(t, base, "low", []float64{1, 0, 2}, []float64{0, 3})
	writeFrames(t, base, "high", []float64{50, 100})

	w := &Worker{BaseDir: base, Mode: RawIntensity, Logger: quiet}
	res, err := ProcessAll(context.Background(), w, []string{"low", "high"})
	require.NoError(t, err)

	v, err := Aggregate(res)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v.Min)
	assert.Equal(t, 100.0, v.Max)
	require.Len(t, v.Series, 2)
	assert.Equal(t, "low (Files: 2)", v.Series[0].Label)
	assert.Equal(t, "high (Files: 1)", v.Series[1].Label)
	assert.Equal(t, []float64{1, 2, 3}, v.Series[0].Samples)
}
