// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hideqr

import (
	"image"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/unixdj/hideqr/coding"
	"github.com/unixdj/hideqr/detect"
	"github.com/unixdj/hideqr/layout"
)

// A Detector locates and decodes QR symbols in an image.
// *detect.Detector is the standard implementation.
type Detector interface {
	Detect(img image.Image) ([]detect.Symbol, error)
}

type options struct {
	log      *zap.Logger
	detector Detector
	tempDir  string
	truncate bool
	noVerify bool
}

// An Option configures Embed, Create and ReadFile.
type Option func(*options)

// WithLogger sets the logger.  By default nothing is logged.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithDetector sets the detector used to read symbols back.
func WithDetector(d Detector) Option {
	return func(o *options) { o.detector = d }
}

// WithTempDir sets the directory for the image written during
// verification.  The default is os.TempDir.
func WithTempDir(dir string) Option {
	return func(o *options) { o.tempDir = dir }
}

// WithTruncation allows secrets longer than the symbol holds.  The
// bits that do not fit are dropped, and the secret read back is the
// whole bytes that fit.
func WithTruncation(on bool) Option {
	return func(o *options) { o.truncate = on }
}

// WithoutVerify skips reading the symbol back after embedding.
func WithoutVerify() Option {
	return func(o *options) { o.noVerify = true }
}

func newOptions(opts []Option) *options {
	o := &options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	if o.detector == nil {
		o.detector = detect.New(o.log)
	}
	return o
}

// checkSecret validates the secret text.
func checkSecret(secret string) error {
	if len(secret) > layout.MaxSecret {
		return ErrSecretTooLong
	}
	for i := 0; i < len(secret); i++ {
		if secret[i] >= 0x80 {
			return ErrNotASCII
		}
	}
	return nil
}

// Embed returns a copy of the symbol's modules with secret hidden in
// them.  The secret must be ASCII and at most 255 bytes long.  Unless
// WithTruncation is given, it must also fit the free modules, or the
// error is a *PayloadError.
//
// The result is verified by rasterising it to a temporary file and
// reading both texts back.  If either is not read intact, the error
// is a *VerificationError.
func (s *Symbol) Embed(secret string, opts ...Option) (*Overlay, error) {
	o := newOptions(opts)
	session := uuid.NewString()
	log := o.log.With(zap.String("session", session))
	if err := checkSecret(secret); err != nil {
		return nil, err
	}

	ov := newOverlay(s)
	l, err := layout.New(s.Version)
	if err != nil {
		return nil, err
	}
	coords := l.Zigzag()
	bits := coding.TextToBits(secret)
	if len(bits) > len(coords) {
		if !o.truncate {
			return nil, &PayloadError{Bits: len(bits), Capacity: len(coords)}
		}
		log.Warn("secret truncated",
			zap.Int("bits", len(bits)),
			zap.Int("capacity", len(coords)))
		bits = bits[:len(coords)]
	}

	hdr := coding.ByteToBits(byte(len(secret)))
	for i, c := range l.HeaderCells() {
		ov.set(c.X, c.Y, hdr[i])
	}
	for i, b := range bits {
		ov.set(coords[i].X, coords[i].Y, b)
	}
	log.Debug("secret embedded",
		zap.Int("version", s.Version),
		zap.Stringer("level", s.Level),
		zap.Int("bits", len(bits)),
		zap.Int("capacity", len(coords)),
		zap.Int("changed", ov.changed(s)))

	if o.noVerify {
		return ov, nil
	}
	if err := verify(ov, s.Text, secret[:len(bits)/8], session, o, log); err != nil {
		log.Info("verification failed", zap.Error(err))
		return nil, err
	}
	return ov, nil
}

// Create encodes carrier at the given level, hides secret in it and
// writes the result to the named file as Overlay.WriteFile does.
// Nothing is written if any step fails.
func Create(name, carrier, secret string, level Level, opts ...Option) (*Overlay, error) {
	s, err := Encode(carrier, level)
	if err != nil {
		return nil, err
	}
	ov, err := s.Embed(secret, opts...)
	if err != nil {
		return nil, err
	}
	if err := ov.WriteFile(name); err != nil {
		return nil, err
	}
	return ov, nil
}
