// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables that set config keys.
const EnvPrefix = "FRAMESTATS"

// Config is the resolved configuration of one run.
type Config struct {
	BaseDir string
	OutDir  string

	LogLevel slog.Level

	SVG    bool // Also write an SVG companion
	Thumb  bool // Also write a half-size PNG
	Open   bool // Open the PNG in the platform viewer
	Report bool // Print a summary table

	Width, PanelHeight int

	// Datasets is used when no datasets are given on the command
	// line.
	Datasets []string
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"base-dir":     "base_dir",
	"out-dir":      "out_dir",
	"log-level":    "log_level",
	"svg":          "svg",
	"thumbnail":    "thumbnail",
	"open":         "open",
	"report":       "report",
	"width":        "width",
	"panel-height": "panel_height",
	"datasets":     "datasets",
}

func addFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "read configuration from `file`")
	fs.String("base-dir", ".", "look for datasets in `dir`")
	fs.StringP("out-dir", "o", ".", "write figures to `dir`")
	fs.String("log-level", "info", "log at `level` (debug, info, warn, error)")
	fs.Bool("svg", false, "also write an SVG version of the figure")
	fs.Bool("thumbnail", false, "also write a half-size PNG thumbnail")
	fs.Bool("open", false, "open the figure in the system image viewer")
	fs.Bool("report", true, "print a per-dataset summary")
	fs.Int("width", 1000, "panel width in `pixels`")
	fs.Int("panel-height", 600, "panel height in `pixels`")
	fs.String("datasets", "", "shell-quoted dataset `list` to use if none are given as arguments")
}

// newViper returns a viper bound to the flags in fs and to the
// environment.
func newViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return nil, err
		}
	}
	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	return v, nil
}

// Load resolves and checks the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		BaseDir:     v.GetString("base_dir"),
		OutDir:      v.GetString("out_dir"),
		SVG:         v.GetBool("svg"),
		Thumb:       v.GetBool("thumbnail"),
		Open:        v.GetBool("open"),
		Report:      v.GetBool("report"),
		Width:       v.GetInt("width"),
		PanelHeight: v.GetInt("panel_height"),
	}
	if cfg.BaseDir == "" {
		cfg.BaseDir = "."
	}
	if cfg.OutDir == "" {
		cfg.OutDir = "."
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("log_level"))); err != nil {
		return Config{}, fmt.Errorf("log_level: %w", err)
	}
	if cfg.Width <= 0 || cfg.PanelHeight <= 0 {
		return Config{}, fmt.Errorf("width and panel_height must be positive, got %d and %d", cfg.Width, cfg.PanelHeight)
	}
	ds, err := shellquote.Split(v.GetString("datasets"))
	if err != nil {
		return Config{}, fmt.Errorf("datasets: %w", err)
	}
	cfg.Datasets = ds
	return cfg, nil
}
