// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frametest writes HDF5 frame files for tests.
package frametest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/robert-malhotra/go-hdf5/hdf5"
)

// WriteFrame writes data to a new HDF5 file at path as the dataset
// slot, creating the groups on the way.
func WriteFrame(path, slot string, data any) error {
	elems := strings.Split(strings.Trim(slot, "/"), "/")
	f, err := hdf5.Create(path)
	if err != nil {
		return err
	}
	g := f.Root()
	for _, name := range elems[:len(elems)-1] {
		if g, err = g.CreateGroup(name); err != nil {
			f.Close()
			return fmt.Errorf("%s: group %s: %w", path, name, err)
		}
	}
	if _, err := g.CreateDataset(elems[len(elems)-1], data); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

// WriteDataset writes one frame file per frame into base/name, at
// slot entry/data/data. Files are named name_a.h5, name_b.h5 and so
// on, so they list in frame order.
func WriteDataset(base, name string, frames ...[]float64) error {
	dir := filepath.Join(base, name)
	if err := os.MkdirAll(dir, 0777); err != nil {
		return err
	}
	for i, frame := range frames {
		path := filepath.Join(dir, fmt.Sprintf("%s_%c.h5", filepath.Base(name), 'a'+i))
		if err := WriteFrame(path, "entry/data/data", frame); err != nil {
			return err
		}
	}
	return nil
}
