// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/clubcompass/internal/platform/database/schema"
	"github.com/taibuivan/clubcompass/internal/platform/dberr"
	"github.com/taibuivan/clubcompass/internal/users/auth"
)

// PostgresRepository implements [AccountRepository] on users.account.
//
// Lookups by id delegate to the auth repository; only profile writes live here.
type PostgresRepository struct {
	pool  *pgxpool.Pool
	users *auth.PostgresUserRepository
}

// NewPostgresRepository constructs the profile store.
func NewPostgresRepository(pool *pgxpool.Pool, users *auth.PostgresUserRepository) *PostgresRepository {
	return &PostgresRepository{pool: pool, users: users}
}

// FindByID retrieves the account with the given id.
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*auth.User, error) {
	return repository.users.FindByID(context, id)
}

/*
UpdateProfile sets the CCID and avatar of one account and returns the new row.

Parameters:
  - context: context.Context
  - school: string (the row must belong to it)
  - id: string
  - ccid: string
  - avatar: string

Returns:
  - *auth.User: Updated entity
  - error: dberr.ErrNotFound or wrapped database errors
*/
func (repository *PostgresRepository) UpdateProfile(context context.Context, school, id, ccid, avatar string) (*auth.User, error) {
	a := schema.UserAccount
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1 AND %s = $2
		RETURNING %s`,
		a.Table, a.CCID, a.Avatar, a.UpdatedAt,
		a.School, a.ID,
		strings.Join(a.Columns(), ", "),
	)

	user := &auth.User{}
	err := repository.pool.QueryRow(context, query, school, id, ccid, avatar).Scan(
		&user.ID, &user.School, &user.Username, &user.CCID, &user.Avatar,
		&user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "update_account_profile")
	}
	return user, nil
}
