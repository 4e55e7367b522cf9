// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/taibuivan/clubcompass/internal/platform/apperr"
	"github.com/taibuivan/clubcompass/internal/platform/dberr"
	"github.com/taibuivan/clubcompass/internal/platform/sec"
	"github.com/taibuivan/clubcompass/internal/session"
	"github.com/taibuivan/clubcompass/pkg/uuid"
)

// # Contracts & Types

// SessionIssuer creates and revokes login sessions. Implemented by [*session.Manager].
type SessionIssuer interface {
	Generate(ctx context.Context, userID string) (*session.Issued, error)
	Destroy(ctx context.Context, sessionID string) error
}

// Service implements account and session use cases.
type Service struct {
	userRepository UserRepository
	sessions       SessionIssuer

	// dummyHash is compared against when the login name is unknown so that
	// both failure paths cost one bcrypt comparison.
	dummyHash string
}

// NewService constructs a new [Service] with its dependencies.
func NewService(userRepo UserRepository, sessions SessionIssuer) (*Service, error) {
	dummyHash, err := sec.HashPassword("clubcompass-timing-equaliser")
	if err != nil {
		return nil, fmt.Errorf("auth: failed to prepare dummy hash: %w", err)
	}

	return &Service{
		userRepository: userRepo,
		sessions:       sessions,
		dummyHash:      dummyHash,
	}, nil
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	School   string
	Username string
	Email    string
	Password string
	CCID     string
	Avatar   string
}

/*
Register validates, hashes, and persists a new MEMBER account, then logs it in.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *User: Created entity
  - *session.Issued: Signed session cookie value and metadata
  - error: Conflict (identity exists), session store or database errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, *session.Issued, error) {

	// Verify email uniqueness within the school
	if _, err := service.userRepository.FindByEmail(context, input.School, input.Email); err == nil {
		return nil, nil, apperr.Conflict("Email is already registered")
	} else if !dberr.IsNotFound(err) {
		return nil, nil, err
	}

	// Verify username uniqueness within the school
	if _, err := service.userRepository.FindByUsername(context, input.School, input.Username); err == nil {
		return nil, nil, apperr.Conflict("Username is already taken")
	} else if !dberr.IsNotFound(err) {
		return nil, nil, err
	}

	hashedPassword, err := sec.HashPassword(input.Password)
	if errors.Is(err, sec.ErrPasswordTooLong) {
		return nil, nil, apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   FieldPassword,
			Message: "Maximum 72 bytes",
		})
	}
	if err != nil {
		return nil, nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	user := &User{
		ID:           uuid.New(),
		School:       input.School,
		Username:     input.Username,
		CCID:         input.CCID,
		Avatar:       input.Avatar,
		Email:        strings.ToLower(input.Email),
		PasswordHash: hashedPassword,
		Role:         sec.RoleMember,
	}

	if err := service.userRepository.Create(context, user); err != nil {
		return nil, nil, err
	}

	issued, err := service.sessions.Generate(context, user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("auth_service_session_failed: %w", err)
	}

	return user, issued, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	School   string
	Login    string // Can be Username or Email
	Password string
}

/*
Login validates credentials within the school and starts a new session.

Description: Unknown accounts and wrong passwords produce the same error and
the same bcrypt cost.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *User: Authenticated account
  - *session.Issued: Signed session cookie value and metadata
  - error: Unauthorized, session store or database errors
*/
func (service *Service) Login(context context.Context, input LoginInput) (*User, *session.Issued, error) {
	user, err := service.findByLogin(context, input.School, input.Login)
	if err != nil {
		if !dberr.IsNotFound(err) {
			return nil, nil, err
		}
		sec.CheckPasswordHash(input.Password, service.dummyHash)
		return nil, nil, apperr.Unauthorized(msgInvalidCredentials)
	}

	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, nil, apperr.Unauthorized(msgInvalidCredentials)
	}

	issued, err := service.sessions.Generate(context, user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("auth_service_session_failed: %w", err)
	}

	return user, issued, nil
}

// findByLogin looks the login up as an email when it contains "@", otherwise as a username.
func (service *Service) findByLogin(context context.Context, school, login string) (*User, error) {
	if strings.Contains(login, "@") {
		return service.userRepository.FindByEmail(context, school, login)
	}
	return service.userRepository.FindByUsername(context, school, login)
}

/*
Logout destroys the session. Destroying an absent session succeeds.

Parameters:
  - context: context.Context
  - sessionID: string

Returns:
  - error: session.ErrDestroyFailed when the store is unreachable
*/
func (service *Service) Logout(context context.Context, sessionID string) error {
	return service.sessions.Destroy(context, sessionID)
}

// # Account Administration

/*
ChangeRole assigns a new role to an account of the same school.

Parameters:
  - context: context.Context
  - actor: *sec.Identity (the administrator performing the change)
  - school: string (tenant of the request)
  - userID: string
  - rawRole: string (untrusted role name)

Returns:
  - *User: Updated account
  - error: ValidationError on unknown role, Forbidden on self-demotion or
    cross-school change, NotFound
*/
func (service *Service) ChangeRole(context context.Context, actor *sec.Identity, school, userID, rawRole string) (*User, error) {
	role, err := sec.ParseRole(rawRole)
	if err != nil {
		return nil, apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   FieldRole,
			Message: "Must be one of: MEMBER, SCHOLAR, MANAGER, ADMIN",
		})
	}

	if actor.School != school {
		return nil, apperr.Forbidden("Account belongs to another school")
	}

	if actor.ID == userID && role != actor.Role {
		return nil, apperr.Forbidden("Administrators cannot change their own role")
	}

	user, err := service.userRepository.UpdateRole(context, school, userID, role)
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, apperr.NotFound("User")
		}
		return nil, err
	}

	return user, nil
}
