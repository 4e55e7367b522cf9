// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"

	"github.com/taibuivan/clubcompass/internal/platform/sec"
)

// # User Data Access

// UserRepository defines the data access contract for user accounts.
type UserRepository interface {

	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *User: Hydrated entity
		  - error: dberr.ErrNotFound or database errors
	*/
	FindByID(context context.Context, id string) (*User, error)

	/*
		FindByEmail returns the account with the given email within a school.

		Parameters:
		  - context: context.Context
		  - school: string
		  - email: string

		Returns:
		  - *User: Hydrated entity
		  - error: dberr.ErrNotFound or database errors
	*/
	FindByEmail(context context.Context, school, email string) (*User, error)

	/*
		FindByUsername returns the account with the given username within a school.

		Parameters:
		  - context: context.Context
		  - school: string
		  - username: string

		Returns:
		  - *User: Hydrated entity
		  - error: dberr.ErrNotFound or database errors
	*/
	FindByUsername(context context.Context, school, username string) (*User, error)

	/*
		Create persists a brand-new user account.

		Parameters:
		  - context: context.Context
		  - user: *User

		Returns:
		  - error: Conflict on duplicate username/email, or persistence failures
	*/
	Create(context context.Context, user *User) error

	/*
		UpdateRole replaces the role of an account within a school.

		Parameters:
		  - context: context.Context
		  - school: string
		  - userID: string
		  - role: sec.Role

		Returns:
		  - *User: The updated entity
		  - error: dberr.ErrNotFound or persistence failures
	*/
	UpdateRole(context context.Context, school, userID string, role sec.Role) (*User, error)
}
