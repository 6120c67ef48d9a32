// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hideqr

import "strings"

// An Overlay is a modifiable copy of the modules of a Symbol.
// Modules are stored row by row, the module at (x, y) at index
// y*Size()+x.
type Overlay struct {
	version int
	size    int
	mod     []bool
}

// newOverlay returns a copy of the modules of s.
func newOverlay(s *Symbol) *Overlay {
	o := &Overlay{
		version: s.Version,
		size:    s.Size,
		mod:     make([]bool, s.Size*s.Size),
	}
	for y := 0; y < o.size; y++ {
		for x := 0; x < o.size; x++ {
			o.mod[o.index(x, y)] = s.Black(x, y)
		}
	}
	return o
}

func (o *Overlay) index(x, y int) int { return y*o.size + x }

// Size returns the number of modules on a side.
func (o *Overlay) Size() int { return o.size }

// Version returns the QR version.
func (o *Overlay) Version() int { return o.version }

// Black reports whether the module at (x, y) is black.  Modules
// outside the symbol are white.
func (o *Overlay) Black(x, y int) bool {
	return 0 <= x && x < o.size && 0 <= y && y < o.size &&
		o.mod[o.index(x, y)]
}

// set sets the module at (x, y), which must be inside the symbol.
func (o *Overlay) set(x, y int, black bool) {
	o.mod[o.index(x, y)] = black
}

// changed returns the number of modules that differ from s.
func (o *Overlay) changed(s *Symbol) int {
	n := 0
	for y := 0; y < o.size; y++ {
		for x := 0; x < o.size; x++ {
			if o.mod[o.index(x, y)] != s.Black(x, y) {
				n++
			}
		}
	}
	return n
}

// String returns the modules drawn with Unicode block characters.
func (o *Overlay) String() string {
	return blocks(o.size, o.Black)
}

// quietZone is the white margin, in modules, around text renderings.
const quietZone = 4

// blocks draws a square grid of size modules with Unicode half
// blocks, two rows of modules per line, framed by quietZone.  Light
// modules are drawn, for terminals with light text on a dark
// background.
func blocks(size int, black func(x, y int) bool) string {
	var b strings.Builder
	b.Grow((size + quietZone*2 + 1) * (size/2 + quietZone + 1) * 3)
	for y := -quietZone; y < size+quietZone; y += 2 {
		for x := -quietZone; x < size+quietZone; x++ {
			n := 0
			if black(x, y) {
				n = 2
			}
			if black(x, y+1) {
				n++
			}
			b.WriteString([4]string{"█", "▀", "▄", " "}[n])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
