// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding converts between text, bytes and the bit sequences
// hidden in QR symbols.
//
// Bit sequences are slices of bool, one element per module, most
// significant bit of each byte first.
package coding // import "github.com/unixdj/hideqr/coding"

import (
	"golang.org/x/text/encoding/charmap"
)

// ByteToBits returns the 8 bits of b, most significant first.
func ByteToBits(b byte) []bool {
	bits := make([]bool, 8)
	for i := range bits {
		bits[i] = b&(0x80>>i) != 0
	}
	return bits
}

// BytesToBits returns the bits of p, 8 per byte in byte order.
func BytesToBits(p []byte) []bool {
	bits := make([]bool, 0, len(p)*8)
	for _, b := range p {
		for i := 7; i >= 0; i-- {
			bits = append(bits, b>>i&1 != 0)
		}
	}
	return bits
}

// TextToBits returns the bits of the bytes of s.
func TextToBits(s string) []bool {
	return BytesToBits([]byte(s))
}

// BitsToBytes packs bits into bytes.  A final incomplete group of
// fewer than 8 bits is dropped.
func BitsToBytes(bits []bool) []byte {
	p := make([]byte, len(bits)/8)
	for i := range p {
		p[i] = byte(BitsToUint(bits[i*8 : i*8+8]))
	}
	return p
}

// BitsToText decodes bits as text, one character per complete group
// of 8 bits.  Each byte maps to the character with the same code
// point, as in ISO 8859-1, so ASCII round trips unchanged.
func BitsToText(bits []bool) string {
	p, err := charmap.ISO8859_1.NewDecoder().Bytes(BitsToBytes(bits))
	if err != nil { // ISO 8859-1 maps every byte
		panic("hideqr: " + err.Error())
	}
	return string(p)
}

// BitsToUint returns bits interpreted as an unsigned integer, most
// significant bit first.  Bits beyond the 64th shift out the top.
func BitsToUint(bits []bool) uint64 {
	var v uint64
	for _, b := range bits {
		v <<= 1
		if b {
			v |= 1
		}
	}
	return v
}

// Bits is a growable bit buffer.  The zero value is empty and ready
// to use.
type Bits struct {
	b    []byte
	nbit int
}

// Len returns the number of bits written to b.
func (b *Bits) Len() int {
	return b.nbit
}

// Bytes returns the content of b.  Unwritten low bits of the last
// byte are zero.
func (b *Bits) Bytes() []byte {
	return b.b
}

// Write appends the nbit low bits of v, most significant first.
func (b *Bits) Write(v uint32, nbit int) {
	if nbit <= 0 {
		return
	}
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// WriteBool appends one bit.
func (b *Bits) WriteBool(bit bool) {
	var v uint32
	if bit {
		v = 1
	}
	b.Write(v, 1)
}

// BitStream reads bits from the underlying buffer.
type BitStream struct {
	b   []byte
	pos int
}

// NewBitStream returns a BitStream reading from b.
func NewBitStream(b []byte) *BitStream { return &BitStream{b: b} }

// Remaining returns the number of bits left in s.
func (s *BitStream) Remaining() int { return len(s.b)*8 - s.pos }

// Next returns the next bit from s.
// Past end of buffer Next returns false.
func (s *BitStream) Next() bool {
	var b byte
	if i := s.pos >> 3; i < len(s.b) {
		b = s.b[i] >> (7 &^ s.pos) & 1
		s.pos++
	}
	return b != 0
}

// Read returns the next n bits from s, or fewer if s runs out.
func (s *BitStream) Read(n int) []bool {
	n = max(min(n, s.Remaining()), 0)
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = s.Next()
	}
	return bits
}
