// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package framestats

import (
	"fmt"
	"math/bits"
	"os"

	"github.com/robert-malhotra/go-hdf5/hdf5"
)

// DataPath is the dataset that holds the detector image in each frame
// file.
const DataPath = "entry/data/data"

// maxInflate bounds how much larger a frame's data may be than the
// file holding it. Deflate cannot expand data by more than about
// 1032:1.
const maxInflate = 1032

// A RecordReader reads the numeric array at slot from one record file.
type RecordReader interface {
	ReadRecord(path, slot string) ([]float64, error)
}

// H5Reader reads records from HDF5 files.
type H5Reader struct{}

func (H5Reader) ReadRecord(path, slot string) ([]float64, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	f, err := hdf5.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := f.OpenDataset(slot)
	if err != nil {
		return nil, err
	}
	if err := checkFrameSize(d.NumElements(), d.DtypeSize(), fi.Size()); err != nil {
		return nil, fmt.Errorf("%s: %w", slot, err)
	}
	return d.ReadFloat64()
}

// checkFrameSize rejects a dataset of n elements of size bytes each
// that a file of fileSize bytes cannot hold, even compressed.
func checkFrameSize(n uint64, size int, fileSize int64) error {
	if size <= 0 || fileSize < 0 {
		return fmt.Errorf("%w: element size %d", ErrCorruptFrame, size)
	}
	hi, total := bits.Mul64(n, uint64(size))
	if hi != 0 || total/maxInflate > uint64(fileSize) {
		return fmt.Errorf("%w: %d elements of %d bytes in a %d-byte file", ErrCorruptFrame, n, size, fileSize)
	}
	return nil
}
