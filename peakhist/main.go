// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command peakhist plots histograms of detector frame statistics
// across datasets.
//
// Each dataset is a directory of HDF5 frame files under the base
// directory. Every frame's image is read from entry/data/data.
//
//	peakhist peaks <dataset>... <title>
//
// counts the non-zero pixels of each frame and plots one combined
// histogram of those counts, written to <title>_combined_histogram.png.
//
//	peakhist intensities <dataset>... <title>
//
// collects every non-zero pixel value and plots a log-log histogram
// per dataset plus a combined one, written to
// <title>_intensities_combined.png.
//
// Datasets are processed in parallel. A dataset with an unreadable
// frame is reported and left out of the plot; the plot is still drawn
// if any dataset succeeded.
//
// Flags may also be set in a config file (--config) or in the
// environment with the FRAMESTATS_ prefix, for example
// FRAMESTATS_BASE_DIR. The config key "datasets" is a shell-quoted
// dataset list used when only a title is given.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"

	"github.com/bioxfel/framestats/framestats"
)

func main() {
	log.SetPrefix("peakhist: ")
	log.SetFlags(0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	switch {
	case err == nil:
	case errors.Is(err, framestats.ErrUsage):
		log.Print(err)
		stop()
		os.Exit(2)
	case errors.Is(err, framestats.ErrEmptyRange):
		log.Printf("%v; no figure written", err)
		stop()
		os.Exit(1)
	default:
		stop()
		log.Fatal(err)
	}
}
