// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import "image"

// Hidden stream contract.
//
// A hidden stream, as produced by a reader sampling the module grid,
// starts with a ContractBits wide contract number, followed by the
// LengthBits wide secret length in bytes read from HeaderCells, and
// then one bit per module of Zigzag.  All fields are most significant
// bit first.
const (
	HeaderVersion = 1 // contract number of this layout
	ContractBits  = 4 // width of the contract number
	LengthBits    = 8 // width of the length field
	HeaderBits    = ContractBits + LengthBits

	MaxSecret = 1<<LengthBits - 1 // longest secret, in bytes
)

// HeaderCells returns the modules holding the length field of a
// symbol with size modules on a side, most significant bit first.
// The cells are pairs of modules in the two rightmost columns, right
// column first, from the third row from the bottom upwards.  They are
// part of the LengthHeader region.
func HeaderCells(size int) [LengthBits]image.Point {
	var c [LengthBits]image.Point
	for i := 0; i < LengthBits/2; i++ {
		y := size - 3 - i
		c[i*2] = image.Pt(size-1, y)
		c[i*2+1] = image.Pt(size-2, y)
	}
	return c
}

// HeaderCells returns the length field modules of l.
func (l *Layout) HeaderCells() [LengthBits]image.Point {
	return HeaderCells(l.Size)
}
