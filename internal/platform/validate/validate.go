// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package validate checks request payloads at the HTTP boundary.

A [Validator] runs every rule in a chain and keeps going after a failure, so a
client gets all field errors of a payload in one 400 response:

	err := (&validate.Validator{}).
		Required("name", input.Name).
		MaxLen("name", input.Name, 120).
		Err()

A Validator is single-use and not safe for concurrent use.
*/
package validate

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/clubcompass/internal/platform/apperr"
	"github.com/taibuivan/clubcompass/pkg/slug"
	"github.com/taibuivan/clubcompass/pkg/uuid"
)

const msgFailed = "Validation failed"

// InvalidJSON is the 400 returned for an undecodable request body.
func InvalidJSON(cause error) *apperr.AppError {
	return apperr.ValidationError("Invalid JSON payload").WithCause(cause)
}

// Validator accumulates [apperr.FieldError] values.
type Validator struct {
	failures []apperr.FieldError
}

func (v *Validator) check(field string, ok bool, message string) *Validator {
	if !ok {
		v.failures = append(v.failures, apperr.FieldError{Field: field, Message: message})
	}
	return v
}

// # Rules

func (v *Validator) Required(field, value string) *Validator {
	return v.check(field, strings.TrimSpace(value) != "", "This field is required")
}

// MaxLen counts runes, not bytes.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	return v.check(field, utf8.RuneCountInString(value) <= max, fmt.Sprintf("Maximum %d characters", max))
}

// MinLen counts runes, not bytes.
func (v *Validator) MinLen(field, value string, min int) *Validator {
	return v.check(field, utf8.RuneCountInString(value) >= min, fmt.Sprintf("Minimum %d characters", min))
}

// Email accepts a bare RFC 5322 address. Display-name forms are rejected.
func (v *Validator) Email(field, value string) *Validator {
	address, err := mail.ParseAddress(value)
	return v.check(field, err == nil && address.Address == value, "Must be a valid email address")
}

// Slug accepts the output form of [slug.From].
func (v *Validator) Slug(field, value string) *Validator {
	return v.check(field, slug.Valid(value), "Must be lowercase letters and digits separated by single hyphens")
}

func (v *Validator) UUID(field, value string) *Validator {
	return v.check(field, uuid.Valid(value), "Must be a valid UUID")
}

// URL accepts absolute http and https URLs with a host.
func (v *Validator) URL(field, value string) *Validator {
	parsed, err := url.Parse(value)
	ok := err == nil && (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
	return v.check(field, ok, "Must be a valid http(s) URL")
}

// Custom records message when failed is true.
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	return v.check(field, !failed, message)
}

// # Result

// HasErrors reports whether any rule failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.failures) > 0
}

// Err returns nil when every rule passed, otherwise a VALIDATION_ERROR listing
// the failures in the order they were checked.
func (v *Validator) Err() error {
	if !v.HasErrors() {
		return nil
	}
	return apperr.ValidationError(msgFailed, v.failures...)
}
