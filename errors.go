// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hideqr

import (
	"errors"
	"strconv"
)

var (
	ErrLevel            = errors.New("hideqr: invalid level")
	ErrCapacityExceeded = errors.New("hideqr: text too long to encode as QR")
	ErrSecretTooLong    = errors.New("hideqr: secret longer than 255 bytes")
	ErrNotASCII         = errors.New("hideqr: secret is not ASCII")
	ErrRasterBounds     = errors.New("hideqr: module outside canvas")
)

// A PayloadError is returned when a secret needs more bits than the
// symbol has free modules.
type PayloadError struct {
	Bits     int // secret length in bits
	Capacity int // free modules
}

func (e *PayloadError) Error() string {
	return "hideqr: secret needs " + strconv.Itoa(e.Bits) +
		" bits, symbol holds " + strconv.Itoa(e.Capacity)
}

// A VerifyKind tells which text could not be read back.
type VerifyKind int

const (
	CarrierUnreadable VerifyKind = iota + 1 // carrier not decoded intact
	SecretUnreadable                        // secret not recovered intact
)

func (k VerifyKind) String() string {
	switch k {
	case CarrierUnreadable:
		return "carrier unreadable"
	case SecretUnreadable:
		return "secret unreadable"
	}
	return "VerifyKind(" + strconv.Itoa(int(k)) + ")"
}

// A VerificationError is returned when a symbol with a secret
// embedded does not read back as written.  Retrying with the same
// texts fails the same way.
type VerificationError struct {
	Kind   VerifyKind
	Reason string
	Err    error // underlying detector error, if any
}

func (e *VerificationError) Error() string {
	s := "hideqr: verification failed: " + e.Kind.String()
	if e.Reason != "" {
		s += ": " + e.Reason
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *VerificationError) Unwrap() error { return e.Err }
