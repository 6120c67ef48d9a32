// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package detect locates and decodes QR symbols in raster images and
// extracts the hidden stream from their module grid.
package detect // import "github.com/unixdj/hideqr/detect"

import (
	"errors"
	"fmt"
	"image"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
	"github.com/makiuchi-d/gozxing/qrcode/detector"
	"go.uber.org/zap"

	"github.com/unixdj/hideqr/coding"
	"github.com/unixdj/hideqr/layout"
)

var (
	ErrNotFound = errors.New("hideqr: no QR symbol found")
	ErrGrid     = errors.New("hideqr: bad module grid")
)

// A Symbol is a QR symbol found in an image.
type Symbol struct {
	Text    string // decoded text
	Version int    // QR version
	Raw     []byte // hidden stream, see Stream
}

// Detector finds QR symbols.  The zero value logs nothing.
type Detector struct {
	log *zap.Logger
}

// New returns a Detector logging to log.  A nil log disables logging.
func New(log *zap.Logger) *Detector {
	if log == nil {
		log = zap.NewNop()
	}
	return &Detector{log: log}
}

func (d *Detector) logger() *zap.Logger {
	if d == nil || d.log == nil {
		return zap.NewNop()
	}
	return d.log
}

// Detect locates a QR symbol in img and decodes it.  On success the
// result holds exactly one Symbol.  The hidden stream is sampled from
// the module grid before error correction, so it carries modules
// exactly as printed.
func (d *Detector) Detect(img image.Image) ([]Symbol, error) {
	log := d.logger()
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	matrix, err := bmp.GetBlackMatrix()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	found, err := detector.NewDetector(matrix).Detect(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	grid := found.GetBits()
	version := (grid.GetWidth() - 17) / 4
	raw, err := Stream(version, grid.Get)
	if err != nil {
		return nil, err
	}
	log.Debug("symbol located",
		zap.Int("version", version),
		zap.Int("stream_bytes", len(raw)))

	res, err := qrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		log.Debug("symbol not decoded", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	log.Debug("symbol decoded", zap.Int("text_bytes", len(res.GetText())))
	return []Symbol{{
		Text:    res.GetText(),
		Version: version,
		Raw:     raw,
	}}, nil
}

// Stream returns the hidden stream of a symbol of the given version
// whose modules are reported by black: the contract number, the
// length field read from the header cells, and the free modules in
// zigzag order, packed most significant bit first.  Free modules
// past the last whole byte are left out, so the zero padding of the
// final byte never completes a byte of secret.
func Stream(version int, black func(x, y int) bool) ([]byte, error) {
	l, err := layout.New(version)
	if err != nil {
		return nil, fmt.Errorf("%w: version %d", ErrGrid, version)
	}
	return stream(l, black), nil
}

func stream(l *layout.Layout, black func(x, y int) bool) []byte {
	var b coding.Bits
	b.Write(layout.HeaderVersion, layout.ContractBits)
	for _, c := range l.HeaderCells() {
		b.WriteBool(black(c.X, c.Y))
	}
	coords := l.Zigzag()
	for _, c := range coords[:len(coords)&^7] {
		b.WriteBool(black(c.X, c.Y))
	}
	return b.Bytes()
}
