// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/clubcompass/internal/platform/apperr"
	"github.com/taibuivan/clubcompass/internal/platform/ctxutil"
	"github.com/taibuivan/clubcompass/internal/platform/dberr"
	"github.com/taibuivan/clubcompass/internal/platform/sec"
	"github.com/taibuivan/clubcompass/internal/users/auth"
)

// # Service Layer

// Service implements the profile use cases.
type Service struct {
	accountRepository AccountRepository
}

// NewService constructs a new [Service].
func NewService(accountRepo AccountRepository) *Service {
	return &Service{accountRepository: accountRepo}
}

// # Profile Management

/*
GetProfile retrieves the private profile of the signed-in user.

Parameters:
  - context: context.Context
  - actor: *sec.Identity

Returns:
  - *auth.User: The hydrated user profile
  - error: NotFound if the account vanished since the session was checked
*/
func (service *Service) GetProfile(context context.Context, actor *sec.Identity) (*auth.User, error) {
	user, err := service.accountRepository.FindByID(context, actor.ID)
	if err != nil {
		return nil, notFound(err)
	}
	return user, nil
}

// UpdateProfileInput defines the mutable subset of profile fields. Nil fields are unchanged.
type UpdateProfileInput struct {
	CCID   *string
	Avatar *string
}

/*
UpdateProfile applies a partial update to the signed-in user's profile.

Parameters:
  - context: context.Context
  - actor: *sec.Identity
  - school: string (tenant of the request)
  - input: UpdateProfileInput

Returns:
  - *auth.User: The updated profile
  - error: Forbidden if the session belongs to another school
*/
func (service *Service) UpdateProfile(context context.Context, actor *sec.Identity, school string, input UpdateProfileInput) (*auth.User, error) {
	if actor.School != school {
		return nil, apperr.Forbidden("Account belongs to another school")
	}

	user, err := service.accountRepository.FindByID(context, actor.ID)
	if err != nil {
		return nil, notFound(err)
	}

	ccid, avatar := user.CCID, user.Avatar
	if input.CCID != nil {
		ccid = strings.TrimSpace(*input.CCID)
	}
	if input.Avatar != nil {
		avatar = strings.TrimSpace(*input.Avatar)
	}

	updated, err := service.accountRepository.UpdateProfile(context, school, actor.ID, ccid, avatar)
	if err != nil {
		return nil, notFound(err)
	}

	ctxutil.GetLogger(context).InfoContext(context, "user_profile_updated", slog.String("user_id", actor.ID))
	return updated, nil
}

/*
GetPublicProfile returns another member's public profile.

Accounts of other schools are reported as not found.
*/
func (service *Service) GetPublicProfile(context context.Context, school, userID string) (*PublicProfile, error) {
	user, err := service.accountRepository.FindByID(context, userID)
	if err != nil {
		return nil, notFound(err)
	}
	if user.School != school {
		return nil, apperr.NotFound("User")
	}
	return Public(user), nil
}

func notFound(err error) error {
	if dberr.IsNotFound(err) {
		return apperr.NotFound("User")
	}
	return err
}
