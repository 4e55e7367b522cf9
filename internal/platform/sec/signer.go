// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
)

// # Cookie Signing

// ErrInvalidSignature is returned when a signed value is malformed or its
// signature does not match.
var ErrInvalidSignature = errors.New("sec: invalid signature")

// signatureSeparator joins the raw value and its signature. It never appears
// in the standard base64 alphabet, so the last occurrence is always the split.
const signatureSeparator = "."

// Signer signs and verifies opaque cookie values with HMAC-SHA256.
//
// A Signer is immutable after construction and safe for concurrent use.
type Signer struct {
	secret []byte
}

// NewSigner creates a [Signer] keyed by secret.
func NewSigner(secret string) (*Signer, error) {
	if secret == "" {
		return nil, errors.New("sec: signing secret must not be empty")
	}
	return &Signer{secret: []byte(secret)}, nil
}

// Sign returns value followed by its signature: "<value>.<mac>".
func (signer *Signer) Sign(value string) string {
	return value + signatureSeparator + signer.mac(value)
}

// Unsign verifies a value produced by [Signer.Sign] and returns the original.
//
// It fails with [ErrInvalidSignature] when the separator is missing, the
// embedded value is empty, or the signature does not verify.
func (signer *Signer) Unsign(signed string) (string, error) {
	cut := strings.LastIndex(signed, signatureSeparator)
	if cut <= 0 || cut == len(signed)-1 {
		return "", ErrInvalidSignature
	}

	value, given := signed[:cut], signed[cut+1:]
	expected := signer.mac(value)

	// hmac.Equal runs in constant time for equal-length inputs.
	if !hmac.Equal([]byte(given), []byte(expected)) {
		return "", ErrInvalidSignature
	}

	return value, nil
}

func (signer *Signer) mac(value string) string {
	h := hmac.New(sha256.New, signer.secret)
	h.Write([]byte(value))
	return base64.RawStdEncoding.EncodeToString(h.Sum(nil))
}
