// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package club

import "context"

// # Repository Interfaces

// Repository defines persistence operations for clubs. Every method is scoped
// to one school; a club of another school is reported as not found.
type Repository interface {
	// Find returns the club matching key, or an error matching dberr.ErrNotFound.
	Find(context context.Context, school string, key Key) (*Club, error)

	// List returns one page of clubs ordered by name, and the total match count.
	List(context context.Context, school string, filter Filter, limit, offset int) ([]*Club, int, error)

	// Create persists a new club and its tag links.
	Create(context context.Context, club *Club) error

	// Update rewrites the mutable fields and tag links of an existing club.
	Update(context context.Context, club *Club) error

	// Delete removes the club and its tag links.
	Delete(context context.Context, school, id string) error
}
