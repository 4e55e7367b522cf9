// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package school

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/clubcompass/internal/platform/database/schema"
	"github.com/taibuivan/clubcompass/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of [Repository].
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

/*
FindByName retrieves a school by its subdomain name.

Parameters:
  - context: context.Context
  - name: string

Returns:
  - *School: Hydrated entity
  - error: dberr.ErrNotFound or wrapped database errors
*/
func (repository *PostgresRepository) FindByName(context context.Context, name string) (*School, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1`,
		schema.CoreSchool.Name, schema.CoreSchool.DisplayName, schema.CoreSchool.CreatedAt,
		schema.CoreSchool.Table, schema.CoreSchool.Name,
	)

	school := &School{}
	err := repository.db.QueryRow(context, query, name).Scan(&school.Name, &school.DisplayName, &school.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "find_school_by_name")
	}

	return school, nil
}

/*
Register inserts every name not yet present, using the name as its display
name. Existing rows are left untouched.

Parameters:
  - context: context.Context
  - names: []string (configured subdomain labels)

Returns:
  - error: Wrapped database errors
*/
func (repository *PostgresRepository) Register(context context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		SELECT n, n FROM UNNEST($1::text[]) AS n
		ON CONFLICT (%s) DO NOTHING`,
		schema.CoreSchool.Table, schema.CoreSchool.Name, schema.CoreSchool.DisplayName,
		schema.CoreSchool.Name,
	)

	if _, err := repository.db.Exec(context, query, names); err != nil {
		return dberr.Wrap(err, "register_schools")
	}
	return nil
}
