// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package club_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/clubcompass/internal/core/club"
	"github.com/taibuivan/clubcompass/internal/platform/apperr"
	"github.com/taibuivan/clubcompass/internal/platform/sec"
)

var manager = &sec.Identity{ID: "manager-1", School: "lincoln", Role: sec.RoleManager}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	appErr := apperr.As(err)
	require.NotNil(t, appErr, "expected an AppError, got %v", err)
	return appErr.HTTPStatus
}

/*
TestService_Create verifies slug derivation, tag normalisation and the creator.
*/
func TestService_Create(t *testing.T) {
	service := club.NewService(newMemoryClubs())

	created, err := service.Create(context.Background(), manager, "lincoln", club.CreateInput{
		Name:        "  Échecs & Chess ",
		Description: "Weekly games",
		Tags:        []string{"Games", "chess", "games", " "},
	})
	require.NoError(t, err)

	assert.Equal(t, "echecs-chess", created.Slug)
	assert.Equal(t, "Échecs & Chess", created.Name)
	assert.Equal(t, []string{"chess", "games"}, created.Tags)
	assert.Equal(t, "manager-1", created.CreatedBy)
	assert.NotEmpty(t, created.ID)

	found, err := service.Get(context.Background(), "lincoln", club.Key{Kind: club.KeySlug, Value: "echecs-chess"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

/*
TestService_CreateRejections covers the error mapping of Create.
*/
func TestService_CreateRejections(t *testing.T) {
	service := club.NewService(newMemoryClubs())
	_, err := service.Create(context.Background(), manager, "lincoln", club.CreateInput{Name: "Chess"})
	require.NoError(t, err)

	tests := []struct {
		name       string
		actor      *sec.Identity
		school     string
		input      club.CreateInput
		wantStatus int
	}{
		{"duplicate slug", manager, "lincoln", club.CreateInput{Name: "CHESS"}, http.StatusConflict},
		{"unknown tag", manager, "lincoln", club.CreateInput{Name: "Drama", Tags: []string{"theatre"}}, http.StatusBadRequest},
		{"name without letters", manager, "lincoln", club.CreateInput{Name: "!!!"}, http.StatusBadRequest},
		{"other school", manager, "roosevelt", club.CreateInput{Name: "Drama"}, http.StatusForbidden},
		{"no actor", nil, "lincoln", club.CreateInput{Name: "Drama"}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(context.Background(), tt.actor, tt.school, tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.wantStatus, statusOf(t, err))
		})
	}
}

/*
TestService_Update applies a partial update and leaves omitted fields alone.
*/
func TestService_Update(t *testing.T) {
	service := club.NewService(newMemoryClubs())
	created, err := service.Create(context.Background(), manager, "lincoln", club.CreateInput{
		Name:        "Chess",
		Description: "Weekly games",
		Tags:        []string{"chess"},
	})
	require.NoError(t, err)

	name := "Chess & Go"
	updated, err := service.Update(context.Background(), manager, "lincoln", created.ID, club.UpdateInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "chess-go", updated.Slug)
	assert.Equal(t, "Weekly games", updated.Description)
	assert.Equal(t, []string{"chess"}, updated.Tags)

	updated, err = service.Update(context.Background(), manager, "lincoln", created.ID, club.UpdateInput{SetTags: true})
	require.NoError(t, err)
	assert.Empty(t, updated.Tags)

	_, err = service.Update(context.Background(), manager, "lincoln", "0192f0c4-7f0e-7b7a-9c1d-000000000000", club.UpdateInput{Name: &name})
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

/*
TestService_Delete removes a club once and reports 404 afterwards.
*/
func TestService_Delete(t *testing.T) {
	service := club.NewService(newMemoryClubs())
	admin := &sec.Identity{ID: "admin-1", School: "lincoln", Role: sec.RoleAdmin}

	created, err := service.Create(context.Background(), manager, "lincoln", club.CreateInput{Name: "Chess"})
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), admin, "lincoln", created.ID))

	err = service.Delete(context.Background(), admin, "lincoln", created.ID)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

/*
TestService_ListIsSchoolScoped verifies tenants never see each other's clubs.
*/
func TestService_ListIsSchoolScoped(t *testing.T) {
	repository := newMemoryClubs()
	repository.knownTags["roosevelt"] = []string{"chess"}
	service := club.NewService(repository)

	roosevelt := &sec.Identity{ID: "manager-2", School: "roosevelt", Role: sec.RoleManager}
	_, err := service.Create(context.Background(), manager, "lincoln", club.CreateInput{Name: "Chess", Tags: []string{"chess"}})
	require.NoError(t, err)
	_, err = service.Create(context.Background(), manager, "lincoln", club.CreateInput{Name: "Robotics", Tags: []string{"stem"}})
	require.NoError(t, err)
	_, err = service.Create(context.Background(), roosevelt, "roosevelt", club.CreateInput{Name: "Chess", Tags: []string{"chess"}})
	require.NoError(t, err)

	clubs, total, err := service.List(context.Background(), "lincoln", club.Filter{}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, clubs, 2)

	clubs, total, err = service.List(context.Background(), "lincoln", club.Filter{Tag: " CHESS "}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "Chess", clubs[0].Name)
}
