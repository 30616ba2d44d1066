// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadArgs(t *testing.T, args ...string) (Config, error) {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addFlags(fs)
	require.NoError(t, fs.Parse(args))
	v, err := newViper(fs)
	if err != nil {
		return Config{}, err
	}
	return Load(v)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadArgs(t)
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.BaseDir)
	assert.Equal(t, ".", cfg.OutDir)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.True(t, cfg.Report)
	assert.False(t, cfg.SVG)
	assert.False(t, cfg.Open)
	assert.Equal(t, 1000, cfg.Width)
	assert.Equal(t, 600, cfg.PanelHeight)
	assert.Empty(t, cfg.Datasets)
}

func TestLoadFlags(t *testing.T) {
	cfg, err := loadArgs(t,
		"--base-dir", "/data/xfel",
		"-o", "/tmp/out",
		"--log-level", "debug",
		"--svg",
		"--report=false",
		"--width", "800",
		"--datasets", `run_001 'run 002' "run_003"`,
	)
	require.NoError(t, err)
	assert.Equal(t, "/data/xfel", cfg.BaseDir)
	assert.Equal(t, "/tmp/out", cfg.OutDir)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.True(t, cfg.SVG)
	assert.False(t, cfg.Report)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, []string{"run_001", "run 002", "run_003"}, cfg.Datasets)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("FRAMESTATS_BASE_DIR", "/env/base")
	t.Setenv("FRAMESTATS_PANEL_HEIGHT", "320")

	cfg, err := loadArgs(t)
	require.NoError(t, err)
	assert.Equal(t, "/env/base", cfg.BaseDir)
	assert.Equal(t, 320, cfg.PanelHeight)

	// Flags win over the environment.
	cfg, err = loadArgs(t, "--base-dir", "/flag/base")
	require.NoError(t, err)
	assert.Equal(t, "/flag/base", cfg.BaseDir)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "peakhist.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_dir: /from/file\ndatasets: a b\nsvg: true\n"), 0666))

	cfg, err := loadArgs(t, "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "/from/file", cfg.BaseDir)
	assert.Equal(t, []string{"a", "b"}, cfg.Datasets)
	assert.True(t, cfg.SVG)

	_, err = loadArgs(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	for _, args := range [][]string{
		{"--log-level", "loud"},
		{"--width", "0"},
		{"--panel-height", "-5"},
		{"--datasets", `"unterminated`},
	} {
		_, err := loadArgs(t, args...)
		assert.Error(t, err, "args %q", args)
	}
}
