// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package histplot

import (
	"image"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/draw"
)

// ThumbName returns the thumbnail file name for a PNG file name.
func ThumbName(png string) string {
	return strings.TrimSuffix(png, ".png") + "_thumb.png"
}

// Thumbnail scales src down by factor.
func Thumbnail(src image.Image, factor int) image.Image {
	if factor < 1 {
		factor = 1
	}
	sb := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, max(sb.Dx()/factor, 1), max(sb.Dy()/factor, 1)))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, sb, draw.Over, nil)
	return dst
}

// WriteThumbnail renders f scaled down by factor as a PNG.
func (f *Figure) WriteThumbnail(w io.Writer, factor int) error {
	img, err := f.Image()
	if err != nil {
		return err
	}
	return png.Encode(w, Thumbnail(img, factor))
}
