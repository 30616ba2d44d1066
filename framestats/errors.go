// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package framestats

import (
	"errors"
	"fmt"
)

var (
	// ErrUsage is returned when no datasets are given.
	ErrUsage = errors.New("at least one dataset is required")

	// ErrEmptyRange is returned by Aggregate when no dataset
	// produced any samples, so no histogram range exists.
	ErrEmptyRange = errors.New("no usable data: every dataset failed or was empty")

	// ErrCorruptFrame is returned when a frame file's metadata
	// cannot describe its contents.
	ErrCorruptFrame = errors.New("corrupt frame file")
)

// A DatasetError records why a dataset could not be processed.
type DatasetError struct {
	Dataset string // Dataset name as given
	Path    string // Directory or file that failed
	Err     error
}

func (e *DatasetError) Error() string {
	return fmt.Sprintf("dataset %s: %s: %v", e.Dataset, e.Path, e.Err)
}

func (e *DatasetError) Unwrap() error { return e.Err }
