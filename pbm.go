// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hideqr

import (
	"bufio"
	"io"
	"strconv"
)

// EncodePBM writes a Portable Bit Map image of the overlay to w, for
// use with netpbm.  The geometry is that of Image.
func (o *Overlay) EncodePBM(w io.Writer) error {
	img, err := o.Image()
	if err != nil {
		return err
	}
	b := bufio.NewWriter(w)
	length := img.Bounds().Dx()
	ls := strconv.Itoa(length)
	if _, err := b.WriteString("P4\n" + ls + " " + ls + "\n"); err != nil {
		return err
	}
	row := make([]byte, (length+7)/8)
	for y := 0; y < length; y++ {
		pbmRow(row, img.Pix[y*img.Stride:y*img.Stride+length])
		if _, err := b.Write(row); err != nil {
			return err
		}
	}
	return b.Flush()
}

// pbmRow packs a row of grey pixels into row, 1 for dark.
func pbmRow(row, pix []byte) {
	clear(row)
	for i, v := range pix {
		if v < 0x80 {
			row[i>>3] |= 0x80 >> (i & 7)
		}
	}
}
