// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hideqr

import (
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

// Raster geometry, in pixels.
const (
	ModuleSize = 10 // side of one module
	Border     = 20 // white margin around the symbol
)

// Image returns the overlay rendered as a greyscale image: a white
// canvas of Size()*ModuleSize+2*Border pixels on a side with each
// black module drawn as a ModuleSize square.  Image fails with
// ErrRasterBounds, returning no image, if a module would fall outside
// the canvas.
func (o *Overlay) Image() (*image.Gray, error) {
	dim := o.size*ModuleSize + Border*2
	img := image.NewGray(image.Rect(0, 0, dim, dim))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	for y := 0; y < o.size; y++ {
		for x := 0; x < o.size; x++ {
			r := image.Rect(0, 0, ModuleSize, ModuleSize).
				Add(image.Pt(x*ModuleSize+Border, y*ModuleSize+Border))
			if !r.In(img.Bounds()) {
				return nil, ErrRasterBounds
			}
			if o.Black(x, y) {
				draw.Draw(img, r, image.Black, image.Point{}, draw.Src)
			}
		}
	}
	return img, nil
}

// EncodePNG writes the overlay to w as a PNG image.
func (o *Overlay) EncodePNG(w io.Writer) error {
	img, err := o.Image()
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// WriteFile writes the overlay to the named file, as a PBM image if
// the name ends in ".pbm", otherwise as a PNG image.  On error no
// file is left behind.
func (o *Overlay) WriteFile(name string) error {
	encode := o.EncodePNG
	if strings.EqualFold(filepath.Ext(name), ".pbm") {
		encode = o.EncodePBM
	}
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return err
	}
	err = encode(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(name)
	}
	return err
}
