// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// Identity is the authenticated user attached to a request.
//
// It is a projection of the user record limited to non-sensitive fields and
// lives only for the duration of one request. It is never persisted.
type Identity struct {
	ID       string `json:"id"`
	School   string `json:"school"`
	Username string `json:"username"`
	CCID     string `json:"ccid,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}
