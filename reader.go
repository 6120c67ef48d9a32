// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hideqr

import (
	"go.uber.org/zap"

	"github.com/unixdj/hideqr/coding"
	"github.com/unixdj/hideqr/detect"
	"github.com/unixdj/hideqr/layout"
)

// A Reader extracts a secret from a hidden stream as produced by
// detect.Stream: a 4 bit contract number, which Reader ignores, an
// 8 bit length in bytes, and the secret bits.
type Reader struct {
	n    int
	bits []bool
}

// NewReader parses the hidden stream raw.  If raw ends early, the
// secret is cut short.
func NewReader(raw []byte) *Reader {
	s := coding.NewBitStream(raw)
	s.Read(layout.ContractBits)
	n := int(coding.BitsToUint(s.Read(layout.LengthBits)))
	return &Reader{n: n, bits: s.Read(n * 8)}
}

// Len returns the secret length recorded in the header, in bytes.
func (r *Reader) Len() int { return r.n }

// Read returns the secret.  Trailing bits short of a byte are
// dropped.
func (r *Reader) Read() string { return coding.BitsToText(r.bits) }

// A Result holds the texts read from an image.
type Result struct {
	Carrier string `yaml:"carrier"`
	Secret  string `yaml:"secret"`
	Version int    `yaml:"version"`
	Length  int    `yaml:"length"` // secret length from the header
}

// ReadFile reads the named image, detects a QR symbol in it and
// returns its carrier and secret texts.  Options other than
// WithLogger and WithDetector are ignored.
func ReadFile(name string, opts ...Option) (*Result, error) {
	o := newOptions(opts)
	img, err := Load(name)
	if err != nil {
		return nil, err
	}
	syms, err := o.detector.Detect(img)
	if err != nil {
		return nil, err
	}
	if len(syms) == 0 {
		return nil, detect.ErrNotFound
	}
	sym := syms[0]
	r := NewReader(sym.Raw)
	o.log.Debug("symbol read",
		zap.String("path", name),
		zap.Int("version", sym.Version),
		zap.Int("length", r.Len()))
	return &Result{
		Carrier: sym.Text,
		Secret:  r.Read(),
		Version: sym.Version,
		Length:  r.Len(),
	}, nil
}
