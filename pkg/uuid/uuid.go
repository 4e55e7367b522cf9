// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid provides time-ordered identifiers for accounts, clubs and tags.

Version 7 values sort by creation time, which keeps B-tree primary keys in
PostgreSQL append-only.
*/
package uuid

import "github.com/google/uuid"

// # Generators

// New generates a new UUIDv7 string.
func New() string {

	// entropy failure is an unrecoverable system-level error
	id, err := uuid.NewV7()
	if err != nil {
		panic("uuid: failed to generate UUID: " + err.Error())
	}

	return id.String()
}

// # Validation

// Valid reports whether value is a canonical UUID of any version.
func Valid(value string) bool {
	return uuid.Validate(value) == nil && len(value) == 36
}
