// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateSecureToken returns size bytes from the OS CSPRNG, base64url encoded
// without padding.
func GenerateSecureToken(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("sec: token size must be positive, got %d", size)
	}

	buffer := make([]byte, size)
	if _, err := rand.Read(buffer); err != nil {
		return "", fmt.Errorf("sec: failed to read random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buffer), nil
}
