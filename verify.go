// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hideqr

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"
)

// verify writes ov to a temporary PNG file, reads it back and checks
// that the first symbol found decodes to carrier and hides secret.
// The temporary file, named after session, is removed on return.
func verify(ov *Overlay, carrier, secret, session string, o *options, log *zap.Logger) error {
	f, err := os.CreateTemp(o.tempDir, "hideqr-"+session+"-*.png")
	if err != nil {
		return err
	}
	name := f.Name()
	defer func() {
		if err := os.Remove(name); err != nil &&
			!errors.Is(err, fs.ErrNotExist) {
			log.Warn("temporary image not removed",
				zap.String("path", name), zap.Error(err))
		}
	}()
	err = ov.EncodePNG(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	img, err := Load(name)
	if err != nil {
		return err
	}
	syms, err := o.detector.Detect(img)
	if err != nil || len(syms) == 0 {
		return &VerificationError{
			Kind:   CarrierUnreadable,
			Reason: "no symbol decoded",
			Err:    err,
		}
	}
	sym := syms[0]
	if sym.Text != carrier {
		return &VerificationError{
			Kind:   CarrierUnreadable,
			Reason: fmt.Sprintf("decoded %q", sym.Text),
		}
	}
	log.Debug("carrier readable", zap.String("path", name))
	if got := NewReader(sym.Raw).Read(); got != secret {
		return &VerificationError{
			Kind:   SecretUnreadable,
			Reason: fmt.Sprintf("read %q", got),
		}
	}
	log.Debug("secret readable")
	return nil
}
