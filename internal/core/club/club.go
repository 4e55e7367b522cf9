// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package club manages the club directory of each school.

Clubs are scoped to a school and addressed by id, slug, or name. Anyone may
browse the directory; managers create and edit clubs and administrators delete
them.
*/
package club

import (
	"errors"
	"strings"
	"time"

	"github.com/taibuivan/clubcompass/pkg/uuid"
)

// # Domain Entities

// Club is one entry of a school's directory.
type Club struct {
	ID          string    `json:"id"`
	School      string    `json:"school"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CreatedBy   string    `json:"created_by"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Filter narrows a club listing.
type Filter struct {
	// Tag restricts the result to clubs carrying the tag with this slug.
	Tag string
}

// # Lookup Keys

// KeyKind names the column a [Key] matches.
type KeyKind string

const (
	KeyID   KeyKind = "id"
	KeySlug KeyKind = "slug"
	KeyName KeyKind = "name"
)

// Key addresses a single club within a school.
type Key struct {
	Kind  KeyKind
	Value string
}

var (
	// ErrUnknownKeyKind is returned by [ParseKey] for an unsupported "by" value.
	ErrUnknownKeyKind = errors.New("club: unknown lookup key")

	// ErrInvalidKey is returned by [ParseKey] for an empty value or a malformed id.
	ErrInvalidKey = errors.New("club: invalid lookup value")

	// ErrUnknownTag is returned by repositories when a tag slug does not exist
	// in the club's school.
	ErrUnknownTag = errors.New("club: unknown tag")
)

/*
ParseKey builds a lookup key from the "by" query parameter and a path value.

An empty by defaults to [KeySlug].

Example:

	ParseKey("", "chess")          // {slug chess}
	ParseKey("name", "Chess Club") // {name Chess Club}
*/
func ParseKey(by, value string) (Key, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Key{}, ErrInvalidKey
	}

	switch kind := KeyKind(strings.ToLower(strings.TrimSpace(by))); kind {
	case "", KeySlug:
		return Key{Kind: KeySlug, Value: strings.ToLower(value)}, nil
	case KeyName:
		return Key{Kind: KeyName, Value: value}, nil
	case KeyID:
		if !uuid.Valid(value) {
			return Key{}, ErrInvalidKey
		}
		return Key{Kind: KeyID, Value: strings.ToLower(value)}, nil
	default:
		return Key{}, ErrUnknownKeyKind
	}
}

// # Field Names

const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldTags        = "tags"
	FieldBy          = "by"
)

const (
	NameMaxLength        = 120
	DescriptionMaxLength = 4000
	MaxTagsPerClub       = 20
)
