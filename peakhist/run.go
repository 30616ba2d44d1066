// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/bioxfel/framestats/framestats"
	"github.com/bioxfel/framestats/histplot"
)

type runner struct {
	cfg   Config
	mode  framestats.Mode
	style histplot.Style

	stdout, stderr io.Writer

	// open shows a written figure. If nil, openViewer is used.
	open func(path string) error
}

// run processes datasets and writes the figure titled title to the
// output directory.
func (r *runner) run(ctx context.Context, datasets []string, title string) error {
	logger := slog.New(slog.NewTextHandler(r.stderr, &slog.HandlerOptions{Level: r.cfg.LogLevel})).
		With("run", uuid.NewString())
	logger.Info("starting", "mode", r.mode, "datasets", len(datasets), "base", r.cfg.BaseDir)

	w := &framestats.Worker{BaseDir: r.cfg.BaseDir, Mode: r.mode, Logger: logger}
	results, err := framestats.ProcessAll(ctx, w, datasets)
	if err != nil {
		return err
	}
	view, aggErr := framestats.Aggregate(results)
	if r.cfg.Report {
		writeReport(r.stdout, view)
	}
	logger.Info("datasets processed", "total", len(view.Series), "failed", len(view.Failed()))
	if aggErr != nil {
		return aggErr
	}

	fig, err := histplot.Build(view, histplot.Options{
		Title:       title,
		Style:       r.style,
		Width:       r.cfg.Width,
		PanelHeight: r.cfg.PanelHeight,
	})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(r.cfg.OutDir, 0777); err != nil {
		return err
	}
	out := filepath.Join(r.cfg.OutDir, r.style.FileName(title))

	var g errgroup.Group
	if r.cfg.SVG {
		g.Go(func() error { return writeFile(histplot.SVGName(out), fig.WriteSVG) })
	}
	img, err := fig.Image()
	if err != nil {
		g.Wait()
		return err
	}
	g.Go(func() error { return writeFile(out, pngWriter(img)) })
	if r.cfg.Thumb {
		g.Go(func() error { return writeFile(histplot.ThumbName(out), pngWriter(histplot.Thumbnail(img, 2))) })
	}
	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("wrote figure", "path", out, "panels", len(fig.Panels))

	if r.cfg.Open {
		open := r.open
		if open == nil {
			open = openViewer
		}
		if err := open(out); err != nil {
			return fmt.Errorf("opening %s: %w", out, err)
		}
	}
	return nil
}

func pngWriter(img image.Image) func(io.Writer) error {
	return func(w io.Writer) error { return png.Encode(w, img) }
}

// writeFile creates path and fills it with render.
func writeFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if err := render(bw); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// openViewer starts the platform image viewer on path.
func openViewer(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	return cmd.Start()
}
