// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/clubcompass/internal/platform/apperr"
	"github.com/taibuivan/clubcompass/internal/platform/dberr"
	"github.com/taibuivan/clubcompass/internal/platform/sec"
	"github.com/taibuivan/clubcompass/internal/session"
	"github.com/taibuivan/clubcompass/internal/users/auth"
)

// memoryUsers is an in-memory UserRepository and session.IdentityFinder.
type memoryUsers struct {
	mu    sync.Mutex
	users map[string]*auth.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: make(map[string]*auth.User)}
}

func (repository *memoryUsers) FindByID(_ context.Context, id string) (*auth.User, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	user, ok := repository.users[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (repository *memoryUsers) FindIdentity(ctx context.Context, userID string) (*sec.Identity, error) {
	user, err := repository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Identity(), nil
}

func (repository *memoryUsers) find(match func(*auth.User) bool) (*auth.User, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, user := range repository.users {
		if match(user) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repository *memoryUsers) FindByEmail(_ context.Context, school, email string) (*auth.User, error) {
	return repository.find(func(user *auth.User) bool {
		return user.School == school && strings.EqualFold(user.Email, email)
	})
}

func (repository *memoryUsers) FindByUsername(_ context.Context, school, username string) (*auth.User, error) {
	return repository.find(func(user *auth.User) bool {
		return user.School == school && user.Username == username
	})
}

func (repository *memoryUsers) Create(_ context.Context, user *auth.User) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, exists := repository.users[user.ID]; exists {
		return apperr.Conflict("Resource already exists")
	}
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	repository.users[user.ID] = &copied
	return nil
}

func (repository *memoryUsers) UpdateRole(_ context.Context, school, userID string, role sec.Role) (*auth.User, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	user, ok := repository.users[userID]
	if !ok || user.School != school {
		return nil, dberr.ErrNotFound
	}
	user.Role = role
	copied := *user
	return &copied, nil
}

// seed stores a user with a real bcrypt hash of password.
func (repository *memoryUsers) seed(t *testing.T, user auth.User, password string) *auth.User {
	t.Helper()

	hash, err := sec.HashPassword(password)
	require.NoError(t, err)
	user.PasswordHash = hash
	require.NoError(t, repository.Create(context.Background(), &user))
	return &user
}

type authFixture struct {
	users   *memoryUsers
	manager *session.Manager
	signer  *sec.Signer
	server  *miniredis.Miniredis
	service *auth.Service
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	signer, err := sec.NewSigner("auth-secret")
	require.NoError(t, err)

	users := newMemoryUsers()
	manager := session.NewManager(session.NewRedisStore(client, 500*time.Millisecond), signer, users)

	service, err := auth.NewService(users, manager)
	require.NoError(t, err)

	return &authFixture{users: users, manager: manager, signer: signer, server: server, service: service}
}
