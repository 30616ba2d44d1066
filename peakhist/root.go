// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bioxfel/framestats/framestats"
	"github.com/bioxfel/framestats/histplot"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "peakhist",
		Short:         "Plot histograms of detector frame statistics across datasets",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	addFlags(root.PersistentFlags())
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError(cmd, err)
	})
	root.AddCommand(
		newPlotCmd("intensities", "Plot per-dataset histograms of non-zero pixel intensities",
			framestats.RawIntensity, histplot.PerDataset),
		newPlotCmd("peaks", "Plot a combined histogram of per-frame peak counts",
			framestats.PeakCount, histplot.Combined),
	)
	return root
}

func newPlotCmd(name, short string, mode framestats.Mode, style histplot.Style) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <dataset>... <title>",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := newViper(cmd.Flags())
			if err != nil {
				return err
			}
			cfg, err := Load(v)
			if err != nil {
				return err
			}
			datasets, title, err := splitArgs(args, cfg.Datasets)
			if err != nil {
				return usageError(cmd, err)
			}
			r := &runner{
				cfg:    cfg,
				mode:   mode,
				style:  style,
				stdout: cmd.OutOrStdout(),
				stderr: cmd.ErrOrStderr(),
			}
			return r.run(cmd.Context(), datasets, title)
		},
	}
}

// usageError prints cmd's usage and returns err marked as a usage
// error.
func usageError(cmd *cobra.Command, err error) error {
	if !errors.Is(err, framestats.ErrUsage) {
		err = badUsage{err}
	}
	if uerr := cmd.Usage(); uerr != nil {
		return errors.Join(err, uerr)
	}
	return err
}

// badUsage is a command line error that matches framestats.ErrUsage.
type badUsage struct{ err error }

func (e badUsage) Error() string        { return e.err.Error() }
func (e badUsage) Unwrap() error        { return e.err }
func (e badUsage) Is(target error) bool { return target == framestats.ErrUsage }

// splitArgs splits "<dataset>... <title>" into datasets and title. If
// only a title is given, the configured datasets are used.
func splitArgs(args, configured []string) (datasets []string, title string, err error) {
	if len(args) == 0 {
		return nil, "", fmt.Errorf("%w and a plot title", framestats.ErrUsage)
	}
	datasets, title = args[:len(args)-1], args[len(args)-1]
	if len(datasets) == 0 {
		datasets = configured
	}
	if len(datasets) == 0 {
		return nil, "", framestats.ErrUsage
	}
	if title == "" {
		return nil, "", fmt.Errorf("%w: empty plot title", framestats.ErrUsage)
	}
	return datasets, title, nil
}
