// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import "image"

// Zigzag returns the free modules of the symbol in zigzag scan order.
//
// The scan walks pairs of columns from the right edge leftwards,
// moving the pair one column left when it would cover the vertical
// timing pattern.  Pairs alternate between upward and downward
// traversal, the rightmost pair going up.  Within a row the right
// column comes first.  Modules that are not free are skipped.
//
// The order is fixed for a given version: writers and readers of
// hidden data must agree on it.
func (l *Layout) Zigzag() []image.Point {
	siz := l.Size
	pp := make([]image.Point, 0, siz*siz/2)
	for right := siz - 1; right >= 1; right -= 2 {
		if right == 6 { // vertical timing strip
			right = 5
		}
		up := (right+1)&2 == 0
		for vert := 0; vert < siz; vert++ {
			y := vert
			if up {
				y = siz - 1 - vert
			}
			for x := right; x >= right-1; x-- {
				if l.Classify(x, y) == Writable {
					pp = append(pp, image.Pt(x, y))
				}
			}
		}
	}
	return pp
}

// Capacity returns the number of free modules, that is the number of
// payload bits the symbol can hide.
func (l *Layout) Capacity() int {
	n := 0
	for y := 0; y < l.Size; y++ {
		for x := 0; x < l.Size; x++ {
			if l.Classify(x, y) == Writable {
				n++
			}
		}
	}
	return n
}
