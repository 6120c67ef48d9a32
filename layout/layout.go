// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout classifies the modules of a QR symbol into function
// patterns and free modules, and enumerates the free modules in
// zigzag scan order.
//
// A module is free (Writable) when changing it touches neither a
// function pattern nor the reserved length header, so the symbol
// stays detectable and the change lands in data or error correction
// codewords only.
package layout // import "github.com/unixdj/hideqr/layout"

import (
	"errors"
	"image"
	"strconv"
	"strings"
)

// Version limits.
const (
	MinVersion = 1  // Minimum QR version
	MaxVersion = 40 // Maximum QR version
)

var ErrVersion = errors.New("hideqr: invalid version")

// Size returns the number of modules on a side of a QR symbol of
// the given version.
func Size(version int) int { return version*4 + 17 }

// A Region is the class of a module position.
type Region int

// Module regions, in the order Classify checks them.
const (
	Writable     Region = iota // free module
	Finder                     // finder pattern with separator
	Timing                     // timing pattern
	Format                     // format information
	VersionInfo                // version information
	Alignment                  // alignment pattern
	LengthHeader               // reserved for the hidden length header
)

var regionNames = [...]string{
	"writable", "finder", "timing", "format", "version", "alignment",
	"header",
}

func (r Region) String() string {
	if r < 0 || int(r) >= len(regionNames) {
		return "region(" + strconv.Itoa(int(r)) + ")"
	}
	return regionNames[r]
}

// Rune returns the character representing r in region maps.
func (r Region) Rune() rune {
	const runes = ".FTfVAH"
	if r < 0 || int(r) >= len(runes) {
		return '?'
	}
	return rune(runes[r])
}

// Classify returns the region of the module at (x, y) in a symbol
// with size modules on a side and alignment patterns centred at
// align.  The first matching region wins.
func Classify(x, y, size int, align []image.Point) Region {
	switch {
	case x < 8 && y < 8, x < 8 && y >= size-8, x >= size-8 && y < 8:
		return Finder
	case x == 6, y == 6:
		return Timing
	case x == 8 && (y <= 8 || y >= size-8),
		y == 8 && (x <= 8 || x >= size-8):
		return Format
	case x <= 5 && size-11 <= y && y <= size-9,
		y <= 5 && size-11 <= x && x <= size-9:
		return VersionInfo
	}
	for _, c := range align {
		if x-c.X <= 2 && c.X-x <= 2 && y-c.Y <= 2 && c.Y-y <= 2 {
			return Alignment
		}
	}
	if (x == size-1 || x == size-2) && y >= size-6 {
		return LengthHeader
	}
	return Writable
}

// A Layout describes the module classification of one QR version.
// Alignment centres are computed once, by New.
type Layout struct {
	Version int           // QR version
	Size    int           // modules on a side
	Align   []image.Point // alignment pattern centres
}

// New returns the Layout for the given QR version.
func New(version int) (*Layout, error) {
	if version < MinVersion || version > MaxVersion {
		return nil, ErrVersion
	}
	return &Layout{
		Version: version,
		Size:    Size(version),
		Align:   AlignmentCenters(version),
	}, nil
}

// Classify returns the region of the module at (x, y).
func (l *Layout) Classify(x, y int) Region {
	return Classify(x, y, l.Size, l.Align)
}

// Writable reports whether the module at (x, y) is inside the
// symbol and free.
func (l *Layout) Writable(x, y int) bool {
	return 0 <= x && x < l.Size && 0 <= y && y < l.Size &&
		l.Classify(x, y) == Writable
}

// Map returns a text map of the symbol's regions, one line per row
// of modules, one character per module as returned by Region.Rune.
func (l *Layout) Map() string {
	var b strings.Builder
	b.Grow((l.Size + 1) * l.Size)
	for y := 0; y < l.Size; y++ {
		for x := 0; x < l.Size; x++ {
			b.WriteRune(l.Classify(x, y).Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
