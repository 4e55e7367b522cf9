// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/clubcompass/internal/platform/database/schema"
	"github.com/taibuivan/clubcompass/internal/platform/dberr"
	"github.com/taibuivan/clubcompass/internal/platform/sec"
)

// # User Repository

// PostgresUserRepository implements the UserRepository interface using pgx.
//
// It also satisfies session.IdentityFinder through [PostgresUserRepository.FindIdentity].
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

// userColumns is the select list shared by every lookup, in scanUser order.
var userColumns = strings.Join(schema.UserAccount.Columns(), ", ")

// scanUser hydrates a User from a row selected with userColumns.
func scanUser(row pgx.Row) (*User, error) {
	user := &User{}
	err := row.Scan(
		&user.ID,
		&user.School,
		&user.Username,
		&user.CCID,
		&user.Avatar,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

/*
Create persists a new user record into the users.account table.

Description: Initializes timestamps if not provided. Duplicate usernames or
emails within a school are reported as a Conflict.

Parameters:
  - context: context.Context
  - user: *User (Entity to persist)

Returns:
  - error: apperr.Conflict or wrapped database errors
*/
func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		schema.UserAccount.Table, userColumns,
	)

	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	_, err := repository.pool.Exec(context, query,
		user.ID,
		user.School,
		user.Username,
		user.CCID,
		user.Avatar,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.CreatedAt,
		user.UpdatedAt,
	)

	return dberr.Wrap(err, "create_user")
}

/*
FindByID retrieves a user record by their unique ID.

Parameters:
  - context: context.Context
  - id: string (UUIDv7)

Returns:
  - *User: Hydrated account entity
  - error: dberr.ErrNotFound or wrapped database errors
*/
func (repository *PostgresUserRepository) FindByID(context context.Context, id string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		userColumns, schema.UserAccount.Table, schema.UserAccount.ID,
	)

	user, err := scanUser(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_user_by_id")
	}
	return user, nil
}

/*
FindIdentity resolves the user linked to a session.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - *sec.Identity: Non-sensitive projection of the account
  - error: dberr.ErrNotFound or wrapped database errors
*/
func (repository *PostgresUserRepository) FindIdentity(context context.Context, userID string) (*sec.Identity, error) {
	user, err := repository.FindByID(context, userID)
	if err != nil {
		return nil, err
	}
	return user.Identity(), nil
}

/*
FindByEmail retrieves a user record by email within a school.

Description: Emails are compared case-insensitively.

Parameters:
  - context: context.Context
  - school: string
  - email: string

Returns:
  - *User: Hydrated account entity
  - error: dberr.ErrNotFound or wrapped database errors
*/
func (repository *PostgresUserRepository) FindByEmail(context context.Context, school, email string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND lower(%s) = lower($2)`,
		userColumns, schema.UserAccount.Table, schema.UserAccount.School, schema.UserAccount.Email,
	)

	user, err := scanUser(repository.pool.QueryRow(context, query, school, email))
	if err != nil {
		return nil, dberr.Wrap(err, "find_user_by_email")
	}
	return user, nil
}

/*
FindByUsername retrieves a user record by username within a school.

Parameters:
  - context: context.Context
  - school: string
  - username: string

Returns:
  - *User: Hydrated account entity
  - error: dberr.ErrNotFound or wrapped database errors
*/
func (repository *PostgresUserRepository) FindByUsername(context context.Context, school, username string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = $2`,
		userColumns, schema.UserAccount.Table, schema.UserAccount.School, schema.UserAccount.Username,
	)

	user, err := scanUser(repository.pool.QueryRow(context, query, school, username))
	if err != nil {
		return nil, dberr.Wrap(err, "find_user_by_username")
	}
	return user, nil
}

/*
UpdateRole replaces the role of an account and returns the updated record.

Parameters:
  - context: context.Context
  - school: string
  - userID: string
  - role: sec.Role

Returns:
  - *User: Updated account entity
  - error: dberr.ErrNotFound or wrapped database errors
*/
func (repository *PostgresUserRepository) UpdateRole(context context.Context, school, userID string, role sec.Role) (*User, error) {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $3, %s = $4
		WHERE %s = $1 AND %s = $2
		RETURNING %s`,
		schema.UserAccount.Table, schema.UserAccount.Role, schema.UserAccount.UpdatedAt,
		schema.UserAccount.School, schema.UserAccount.ID,
		userColumns,
	)

	user, err := scanUser(repository.pool.QueryRow(context, query, school, userID, role, time.Now().UTC()))
	if err != nil {
		return nil, dberr.Wrap(err, "update_user_role")
	}
	return user, nil
}
