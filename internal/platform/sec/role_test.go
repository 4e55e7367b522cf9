// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/clubcompass/internal/platform/sec"
)

/*
TestSufficient_Reflexive verifies every role satisfies itself.
*/
func TestSufficient_Reflexive(t *testing.T) {
	for _, role := range sec.Roles() {
		assert.True(t, sec.Sufficient(role, role), role)
	}
}

/*
TestSufficient_Order checks every ordered pair against the fixed hierarchy.
*/
func TestSufficient_Order(t *testing.T) {
	roles := sec.Roles()
	for i, actual := range roles {
		for j, required := range roles {
			assert.Equal(t, i >= j, sec.Sufficient(actual, required), "%s vs %s", actual, required)
		}
	}
}

/*
TestSufficient_NotLexical guards against comparing role names as strings.
"ADMIN" sorts before "MEMBER" lexically but outranks it.
*/
func TestSufficient_NotLexical(t *testing.T) {
	assert.True(t, sec.Sufficient(sec.RoleAdmin, sec.RoleMember))
	assert.False(t, sec.Sufficient(sec.RoleMember, sec.RoleAdmin))
	assert.True(t, sec.Sufficient(sec.RoleScholar, sec.RoleMember))
	assert.False(t, sec.Sufficient(sec.RoleScholar, sec.RoleManager))
}

/*
TestSufficient_UnknownRole verifies an unknown role is never sufficient.
*/
func TestSufficient_UnknownRole(t *testing.T) {
	bogus := sec.Role("BOGUS")

	assert.Equal(t, -1, bogus.Index())
	assert.False(t, sec.Sufficient(bogus, sec.RoleMember))
	assert.False(t, sec.Sufficient(sec.Role(""), sec.RoleMember))
	assert.False(t, sec.Sufficient(sec.Role("member"), sec.RoleMember))
}

/*
TestParseRole validates membership before trusting external strings.
*/
func TestParseRole(t *testing.T) {
	tests := []struct {
		raw     string
		want    sec.Role
		wantErr bool
	}{
		{"MEMBER", sec.RoleMember, false},
		{" manager ", sec.RoleManager, false},
		{"Admin", sec.RoleAdmin, false},
		{"owner", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			role, err := sec.ParseRole(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, sec.ErrUnknownRole)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, role)
		})
	}
}
