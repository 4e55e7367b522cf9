// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements account registration, login and the session endpoints.

It defines the User entity, its PostgreSQL repository, and the HTTP surface
that issues and revokes the cc.sid session cookie.

# Architecture

Accounts belong to exactly one school. Usernames and emails are unique within
a school, so every lookup is scoped by the tenant resolved for the request.
*/
package auth

import (
	"time"

	"github.com/taibuivan/clubcompass/internal/platform/sec"
)

// # Domain Entities

// User represents a registered student or staff member of one school.
type User struct {
	ID           string    `json:"id"`
	School       string    `json:"school"`
	Username     string    `json:"username"`
	CCID         string    `json:"ccid,omitempty"`
	Avatar       string    `json:"avatar,omitempty"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	Role         sec.Role  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity projects the user onto the fields carried by an authenticated request.
func (user *User) Identity() *sec.Identity {
	return &sec.Identity{
		ID:       user.ID,
		School:   user.School,
		Username: user.Username,
		CCID:     user.CCID,
		Avatar:   user.Avatar,
		Email:    user.Email,
		Role:     user.Role,
	}
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldCCID     = "ccid"
	FieldAvatar   = "avatar"
	FieldLogin    = "login"
	FieldRole     = "role"
)
