// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package hideqr hides a secret text in the free modules of a QR code.

The carrier text is encoded as an ordinary QR symbol.  The secret is
written bit by bit over the modules that belong to no function
pattern, walking them in zigzag order, after an 8 bit length header
kept in four module pairs next to the bottom right corner.  Error
correction lets a standard reader still decode the carrier, and a
reader that knows the layout recovers the secret from the module
grid.

Each embedding is verified by rasterising the result, detecting it
again and decoding both texts.

	sym, err := hideqr.Encode("HELLO", hideqr.H)
	if err != nil {
		return err
	}
	ov, err := sym.Embed("HI")
	if err != nil {
		return err
	}
	return ov.WriteFile("hello.png")
*/
package hideqr // import "github.com/unixdj/hideqr"

import (
	"fmt"
	"strings"

	"rsc.io/qr"
	"rsc.io/qr/coding"

	"github.com/unixdj/hideqr/layout"
)

// A Level denotes a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // 20% redundant
	M              // 38% redundant
	Q              // 55% redundant
	H              // 65% redundant
)

func (l Level) String() string {
	if L <= l && l <= H {
		return "LMQH"[l : l+1]
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ParseLevel returns the level named by s, one of "l", "m", "q" or
// "h" in either case.
func ParseLevel(s string) (Level, error) {
	if len(s) == 1 {
		if n := strings.IndexByte("lmqhLMQH", s[0]); n >= 0 {
			return Level(n & 3), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrLevel, s)
}

// A Symbol is a QR symbol encoding a carrier text.  Its modules are
// never modified.
type Symbol struct {
	Text    string // carrier text
	Version int    // QR version
	Size    int    // modules on a side
	Level   Level  // error correction level
	code    *qr.Code
}

// Encode returns a QR symbol encoding text at the given error
// correction level, choosing the smallest version that fits.  If no
// version fits, the error wraps ErrCapacityExceeded.
func Encode(text string, level Level) (*Symbol, error) {
	if level < L || level > H {
		return nil, fmt.Errorf("%w: %v", ErrLevel, level)
	}
	if !fits(text, level) {
		return nil, fmt.Errorf("%w: %d bytes at level %v",
			ErrCapacityExceeded, len(text), level)
	}
	c, err := qr.Encode(text, qr.Level(level))
	if err != nil {
		return nil, fmt.Errorf("hideqr: %w", err)
	}
	return &Symbol{
		Text:    text,
		Version: (c.Size - 17) / 4,
		Size:    c.Size,
		Level:   level,
		code:    c,
	}, nil
}

// fits reports whether text fits the largest version at level, using
// the most compact of the numeric, alphanumeric and byte encodings
// that can represent it, as qr.Encode does.
func fits(text string, level Level) bool {
	var enc coding.Encoding = coding.String(text)
	switch {
	case coding.Num(text).Check() == nil:
		enc = coding.Num(text)
	case coding.Alpha(text).Check() == nil:
		enc = coding.Alpha(text)
	}
	v := coding.Version(layout.MaxVersion)
	return enc.Bits(v) <= v.DataBytes(coding.Level(level))*8
}

// Black reports whether the module at (x, y) is black.  Modules
// outside the symbol are white.
func (s *Symbol) Black(x, y int) bool {
	return s.code.Black(x, y)
}

// Capacity returns the number of secret bits the symbol can hide.
func (s *Symbol) Capacity() int {
	l, err := layout.New(s.Version)
	if err != nil {
		return 0
	}
	return l.Capacity()
}

// String returns the symbol drawn with Unicode block characters.
func (s *Symbol) String() string {
	return blocks(s.Size, s.Black)
}
