// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aclements/go-moremath/stats"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/bioxfel/framestats/framestats"
)

var reportHeader = []string{"DATASET", "FILES", "SAMPLES", "MIN", "MEAN", "MAX", "STATUS"}

// reportRows summarizes each series of v, one row per dataset.
func reportRows(v *framestats.View) [][]string {
	var rows [][]string
	for _, s := range v.Series {
		row := []string{s.Name, fmt.Sprint(s.FileCount), fmt.Sprint(len(s.Samples))}
		if xs := framestats.Finite(s.Samples); len(xs) > 0 {
			sample := stats.Sample{Xs: xs}
			lo, hi := sample.Bounds()
			row = append(row, fmtStat(lo), fmtStat(sample.Mean()), fmtStat(hi))
		} else {
			row = append(row, "-", "-", "-")
		}
		switch {
		case s.Err != nil:
			row = append(row, "failed: "+s.Err.Error())
		case len(s.Samples) == 0:
			row = append(row, "empty")
		default:
			row = append(row, "ok")
		}
		rows = append(rows, row)
	}
	return rows
}

func fmtStat(x float64) string {
	return fmt.Sprintf("%.4g", x)
}

// writeReport prints a table of per-dataset statistics to w. On a
// terminal the table is styled; otherwise it is plain text.
func writeReport(w io.Writer, v *framestats.View) {
	rows := reportRows(v)

	widths := make([]int, len(reportHeader))
	for _, row := range append([][]string{reportHeader}, rows...) {
		for i, cell := range row[:len(row)-1] {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	r := lipgloss.NewRenderer(w)
	tty := isTerminal(w)
	cell := r.NewStyle().PaddingRight(2)
	head := cell
	ok, bad := r.NewStyle(), r.NewStyle()
	if tty {
		head = head.Bold(true).Foreground(lipgloss.Color("62"))
		ok = ok.Foreground(lipgloss.Color("40"))
		bad = bad.Foreground(lipgloss.Color("196"))
	}

	line := func(row []string, style lipgloss.Style, status lipgloss.Style) string {
		cells := make([]string, len(row))
		for i, c := range row[:len(row)-1] {
			st := style.Width(widths[i] + 2)
			if i > 0 {
				st = st.Align(lipgloss.Right)
			}
			cells[i] = st.Render(c)
		}
		cells[len(row)-1] = status.Render(row[len(row)-1])
		return strings.Join(cells, "")
	}

	var b strings.Builder
	fmt.Fprintln(&b, line(reportHeader, head, head))
	for _, row := range rows {
		status := ok
		if row[len(row)-1] != "ok" {
			status = bad
		}
		fmt.Fprintln(&b, line(row, cell, status))
	}
	if len(v.Plottable()) > 0 {
		fmt.Fprintf(&b, "range: [%s, %s]\n", fmtStat(v.Min), fmtStat(v.Max))
	}
	io.WriteString(w, b.String())
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
