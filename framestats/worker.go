// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package framestats computes per-dataset statistics over directories
// of detector frame files and prepares them for a shared histogram.
//
// A dataset is a directory of frame files under a base directory. A
// Worker reduces every frame in one dataset to samples according to
// its Mode, ProcessAll runs one Worker per dataset concurrently, and
// Aggregate assigns each dataset its color and label and finds the
// value range shared by all of them.
package framestats

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// A DatasetResult is the outcome of processing one dataset.
//
// If Err is non-nil, Samples is empty: one bad file fails the whole
// dataset. FileCount is the number of frame files found, whether or
// not they were processed.
type DatasetResult struct {
	Name      string
	Samples   []float64
	FileCount int
	Err       error
}

// A Worker processes datasets that live under BaseDir.
type Worker struct {
	BaseDir string
	Mode    Mode

	// Reader reads frames. If nil, frames are read from HDF5 files.
	Reader RecordReader

	// Suffix selects frame files. If empty, it is ".h5".
	Suffix string

	// Slot is the array read from each frame file. If empty, it is
	// DataPath.
	Slot string

	// Logger receives progress and failures. If nil,
	// slog.Default() is used.
	Logger *slog.Logger
}

// Process reads every frame file of dataset name and reduces it to
// samples. Failures are returned in the result's Err field.
func (w *Worker) Process(ctx context.Context, name string) DatasetResult {
	reader, suffix, slot := w.Reader, w.Suffix, w.Slot
	if reader == nil {
		reader = H5Reader{}
	}
	if suffix == "" {
		suffix = ".h5"
	}
	if slot == "" {
		slot = DataPath
	}
	log := w.Logger
	if log == nil {
		log = slog.Default()
	}
	log = log.With("dataset", name)

	dir := filepath.Join(w.BaseDir, name)
	res := DatasetResult{Name: name}
	fail := func(path string, err error) DatasetResult {
		res.Samples = nil
		res.Err = &DatasetError{Dataset: name, Path: path, Err: err}
		log.ErrorContext(ctx, "dataset failed", "path", path, "err", err)
		return res
	}

	ents, err := os.ReadDir(dir)
	if err != nil {
		return fail(dir, err)
	}
	var files []string
	for _, ent := range ents {
		if !ent.IsDir() && strings.HasSuffix(ent.Name(), suffix) {
			files = append(files, filepath.Join(dir, ent.Name()))
		}
	}
	res.FileCount = len(files)
	res.Samples = []float64{}
	log.DebugContext(ctx, "listed dataset", "dir", dir, "files", len(files))

	for _, path := range files {
		frame, err := readFrame(reader, path, slot)
		if err != nil {
			return fail(path, err)
		}
		res.Samples = append(res.Samples, w.Mode.Extract(frame)...)
		log.DebugContext(ctx, "read frame", "path", path, "values", len(frame))
	}
	log.InfoContext(ctx, "dataset done", "files", res.FileCount, "samples", len(res.Samples))
	return res
}

// readFrame reads one frame with r. A panic in r is returned as an
// error so a malformed file fails only its own dataset.
func readFrame(r RecordReader, path, slot string) (frame []float64, err error) {
	defer func() {
		if p := recover(); p != nil {
			frame, err = nil, fmt.Errorf("%w: %v", ErrCorruptFrame, p)
		}
	}()
	return r.ReadRecord(path, slot)
}
