// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package school implements the tenant registry.

Every request under /api/v1 is scoped to exactly one school, named by the
leftmost label of the request host (lincoln.clubcompass.app → "lincoln").
This package owns the school records and the cached lookup used to validate
that name on every request.
*/
package school

import "time"

// School is a registered tenant.
type School struct {
	// Name is the subdomain label and primary key, always lower case.
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}
