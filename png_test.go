// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hideqr

import (
	"bytes"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func helloOverlay(t *testing.T) *Overlay {
	t.Helper()
	s, err := Encode("HELLO", H)
	require.NoError(t, err)
	return newOverlay(s)
}

func TestImage(t *testing.T) {
	ov := helloOverlay(t)
	img, err := ov.Image()
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 250, 250), img.Bounds())

	white, black := uint8(0xff), uint8(0)
	assert.Equal(t, white, img.GrayAt(0, 0).Y)
	assert.Equal(t, white, img.GrayAt(19, 19).Y)
	assert.Equal(t, black, img.GrayAt(20, 20).Y) // finder corner
	assert.Equal(t, black, img.GrayAt(29, 29).Y)
	assert.Equal(t, white, img.GrayAt(35, 35).Y) // finder ring
	assert.Equal(t, black, img.GrayAt(45, 45).Y) // finder centre
	assert.Equal(t, white, img.GrayAt(95, 25).Y) // separator
	assert.Equal(t, white, img.GrayAt(249, 249).Y)

	for y := 0; y < ov.Size(); y++ {
		for x := 0; x < ov.Size(); x++ {
			v := img.GrayAt(x*ModuleSize+Border+ModuleSize/2,
				y*ModuleSize+Border+ModuleSize/2).Y
			require.Equal(t, ov.Black(x, y), v == black,
				"module (%d,%d)", x, y)
		}
	}
}

func TestEncodePNG(t *testing.T) {
	ov := helloOverlay(t)
	var b bytes.Buffer
	require.NoError(t, ov.EncodePNG(&b))
	img, err := png.Decode(&b)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 250, 250), img.Bounds())
}

func TestEncodePBM(t *testing.T) {
	ov := helloOverlay(t)
	var b bytes.Buffer
	require.NoError(t, ov.EncodePBM(&b))
	const header = "P4\n250 250\n"
	const stride = (250 + 7) / 8
	p := b.Bytes()
	require.Len(t, p, len(header)+stride*250)
	assert.Equal(t, header, string(p[:len(header)]))
	p = p[len(header):]
	assert.Equal(t, make([]byte, stride), p[:stride])
	row := p[20*stride : 21*stride]
	assert.Equal(t, byte(0x0f), row[2]) // pixels 20 to 23 dark
	assert.Equal(t, byte(0xff), row[3])
}

func TestWriteFile(t *testing.T) {
	ov := helloOverlay(t)
	dir := t.TempDir()

	name := filepath.Join(dir, "a.png")
	require.NoError(t, ov.WriteFile(name))
	img, err := Load(name)
	require.NoError(t, err)
	want, err := ov.Image()
	require.NoError(t, err)
	assert.Equal(t, want.Pix, img.Pix)

	name = filepath.Join(dir, "a.PBM")
	require.NoError(t, ov.WriteFile(name))
	p, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "P4\n", string(p[:3]))

	err = ov.WriteFile(filepath.Join(dir, "missing", "a.png"))
	var pe *fs.PathError
	assert.ErrorAs(t, err, &pe)
}

func TestLoad(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, fs.ErrNotExist)

	name := filepath.Join(t.TempDir(), "text.png")
	require.NoError(t, os.WriteFile(name, []byte("not an image"), 0666))
	_, err = Load(name)
	var pe *fs.PathError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "decode", pe.Op)
	assert.Equal(t, name, pe.Path)
}
