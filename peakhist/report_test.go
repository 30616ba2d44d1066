// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bioxfel/framestats/framestats"
)

func TestReport(t *testing.T) {
	v, err := framestats.Aggregate([]framestats.DatasetResult{
		{Name: "run_a", Samples: []float64{1, 2, 3, 6}, FileCount: 4},
		{Name: "run_b", Err: errors.New("truncated frame"), FileCount: 2},
		{Name: "run_c", Samples: []float64{}, FileCount: 0},
	})
	require.NoError(t, err)

	rows := reportRows(v)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"run_a", "4", "4", "1", "3", "6", "ok"}, rows[0])
	assert.Equal(t, []string{"run_b", "2", "0", "-", "-", "-", "failed: truncated frame"}, rows[1])
	assert.Equal(t, "empty", rows[2][6])

	var buf bytes.Buffer
	writeReport(&buf, v)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "DATASET"))
	assert.Contains(t, lines[2], "failed: truncated frame")
	assert.Equal(t, "range: [1, 6]", lines[4])
	// Plain output carries no escape sequences.
	assert.NotContains(t, buf.String(), "\x1b[")
}
