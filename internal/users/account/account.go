// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package account handles profile management for signed-in users.

Members read and edit their own profile and look up the public profile of
other members of the same school. Credentials and roles are managed by the
auth package.
*/
package account

import (
	"context"

	"github.com/taibuivan/clubcompass/internal/platform/sec"
	"github.com/taibuivan/clubcompass/internal/users/auth"
)

// # Domain Entities

// PublicProfile is the view of an account shown to other members.
type PublicProfile struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Avatar   string   `json:"avatar,omitempty"`
	Role     sec.Role `json:"role"`
}

// Public projects user onto its [PublicProfile].
func Public(user *auth.User) *PublicProfile {
	return &PublicProfile{
		ID:       user.ID,
		Username: user.Username,
		Avatar:   user.Avatar,
		Role:     user.Role,
	}
}

// # Repository Contracts

// AccountRepository defines the persistence contract for profiles.
type AccountRepository interface {
	/*
		FindByID retrieves a user record by its ID.

		Returns:
		  - *auth.User: Loaded account entity
		  - error: dberr.ErrNotFound or storage failures
	*/
	FindByID(context context.Context, id string) (*auth.User, error)

	/*
		UpdateProfile writes the CCID and avatar of the account in school.

		Returns:
		  - *auth.User: Account after the update
		  - error: dberr.ErrNotFound or storage failures
	*/
	UpdateProfile(context context.Context, school, id, ccid, avatar string) (*auth.User, error)
}

const (
	FieldCCID   = "ccid"
	FieldAvatar = "avatar"

	CCIDMaxLength   = 64
	AvatarMaxLength = 2048
)
