// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import "github.com/taibuivan/clubcompass/internal/platform/sec"

// # Account Constraints

const (
	// UsernameMinLength and UsernameMaxLength bound the username length.
	UsernameMinLength = 3
	UsernameMaxLength = 32

	// PasswordMinLength is the minimum accepted password length.
	PasswordMinLength = 8

	// PasswordMaxLength is bcrypt's input limit in bytes.
	PasswordMaxLength = sec.MaxPasswordBytes
)

// msgInvalidCredentials is shared by every login failure to prevent account enumeration.
const msgInvalidCredentials = "Invalid login credentials"
