// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"errors"
	"strings"
)

// # User Roles

// Role represents the authorization level granted to an account.
type Role string

const (
	// Default role for every registered student
	RoleMember Role = "MEMBER"

	// Students recognised by the school (e.g. club officers)
	RoleScholar Role = "SCHOLAR"

	// Staff who create and maintain the club directory
	RoleManager Role = "MANAGER"

	// Unrestricted access within the school
	RoleAdmin Role = "ADMIN"
)

// hierarchy is the fixed total order of roles, least privileged first.
var hierarchy = [...]Role{RoleMember, RoleScholar, RoleManager, RoleAdmin}

// ErrUnknownRole is returned by [ParseRole] for values outside the hierarchy.
var ErrUnknownRole = errors.New("sec: unknown role")

// # Role Hierarchy

// Index returns the position of r in the role hierarchy, or -1 when r is not
// a known role.
func (r Role) Index() int {
	for i, known := range hierarchy {
		if r == known {
			return i
		}
	}
	return -1
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r.Index() >= 0
}

// Sufficient reports whether actual is at least as privileged as required.
//
// Comparison is by position in the fixed hierarchy. An unknown actual role
// sits at -1 and is therefore never sufficient, not even for MEMBER.
func Sufficient(actual, required Role) bool {
	return actual.Index() >= required.Index()
}

// ParseRole validates an externally supplied role name. Matching is
// case-insensitive; the returned value is always canonical.
func ParseRole(raw string) (Role, error) {
	role := Role(strings.ToUpper(strings.TrimSpace(raw)))
	if !role.Valid() {
		return "", ErrUnknownRole
	}
	return role, nil
}

// Roles returns the hierarchy, least privileged first.
func Roles() []Role {
	out := make([]Role, len(hierarchy))
	copy(out, hierarchy[:])
	return out
}
