// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByteToBits(t *testing.T) {
	assert.Equal(t,
		[]bool{false, true, false, false, false, false, false, true},
		ByteToBits('A'))
	assert.Equal(t, ByteToBits(0xa5), TextToBits("\xa5"))
}

func TestTextIdentity(t *testing.T) {
	var printable []byte
	for c := byte(' '); c <= '~'; c++ {
		printable = append(printable, c)
	}
	for _, s := range []string{
		"", "A", "HI", "Hello, World!", string(printable),
	} {
		bits := TextToBits(s)
		assert.Len(t, bits, len(s)*8)
		assert.Equal(t, s, BitsToText(bits))
	}
}

func TestBitsToTextPartial(t *testing.T) {
	bits := TextToBits("OK")
	assert.Equal(t, "O", BitsToText(bits[:15]))
	assert.Equal(t, "", BitsToText(bits[:7]))
}

func TestBitsToTextLatin1(t *testing.T) {
	assert.Equal(t, "café", BitsToText(BytesToBits([]byte("caf\xe9"))))
}

func TestBitsToUint(t *testing.T) {
	assert.Equal(t, uint64(0), BitsToUint(nil))
	assert.Equal(t, uint64(2), BitsToUint([]bool{true, false}))
	assert.Equal(t, uint64(255), BitsToUint(ByteToBits(255)))
	assert.Equal(t, uint64(0x4849), BitsToUint(TextToBits("HI")))
}

func TestBits(t *testing.T) {
	var b Bits
	b.Write(1, 4)
	b.Write(0x48, 8)
	b.WriteBool(true)
	b.Write(0, 3)
	assert.Equal(t, 16, b.Len())
	assert.Equal(t, []byte{0x14, 0x88}, b.Bytes())

	var c Bits
	c.Write(0xabc, 12)
	assert.Equal(t, 12, c.Len())
	assert.Equal(t, []byte{0xab, 0xc0}, c.Bytes())
}

func TestBitStream(t *testing.T) {
	s := NewBitStream([]byte{0x14, 0x88})
	assert.Equal(t, 16, s.Remaining())
	assert.Equal(t, uint64(1), BitsToUint(s.Read(4)))
	assert.Equal(t, uint64(0x48), BitsToUint(s.Read(8)))
	assert.Equal(t, 4, s.Remaining())
	assert.Len(t, s.Read(10), 4)
	assert.False(t, s.Next())
	assert.Empty(t, s.Read(1))
}

func ExampleBitsToText() {
	bits := TextToBits("HI")
	fmt.Println(len(bits), BitsToText(bits))
	// Output: 16 HI
}
