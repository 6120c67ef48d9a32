// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import "image"

// alignCoords returns the row and column coordinates of alignment
// pattern centres for version v.  The first is always 6, the rest are
// spaced by an even step and end at Size(v)-7.
func alignCoords(v int) []int {
	if v <= 1 {
		return nil
	}
	interval := v/7 + 1
	dist := v*4 + 4
	step := (dist*2 + interval) / (interval * 2) // rounded
	step += step & 1
	pos := make([]int, 1, interval+1)
	pos[0] = 6
	for i := 1; i <= interval; i++ {
		pos = append(pos, 6+dist-step*(interval-i))
	}
	return pos
}

// AlignmentCenters returns the centres of the alignment patterns of
// a symbol of the given version, in row major order.  Centres that
// fall on a finder pattern are omitted.  Version 1 has none.
func AlignmentCenters(version int) []image.Point {
	pos := alignCoords(version)
	if pos == nil {
		return nil
	}
	size := Size(version)
	pp := make([]image.Point, 0, len(pos)*len(pos))
	for _, y := range pos {
		for _, x := range pos {
			if Classify(x, y, size, nil) != Finder {
				pp = append(pp, image.Pt(x, y))
			}
		}
	}
	return pp
}
