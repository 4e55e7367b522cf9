// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package tag manages the per-school vocabulary used to categorise clubs.
package tag

import "time"

// Tag is a label that clubs of the same school can carry.
type Tag struct {
	ID        string    `json:"id"`
	School    string    `json:"school"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	FieldName     = "name"
	NameMaxLength = 60
)
