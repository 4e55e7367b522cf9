// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package club

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/clubcompass/internal/platform/database/schema"
	"github.com/taibuivan/clubcompass/internal/platform/dberr"
)

// # PostgreSQL Repository

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed club store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// clubColumns selects every club column plus its tag slugs aggregated into an array.
func clubColumns() string {
	c := schema.CoreClub
	return fmt.Sprintf(`c.%s, c.%s, c.%s, c.%s, c.%s, COALESCE(c.%s::text, ''), c.%s, c.%s,
		COALESCE((
			SELECT array_agg(t.%s ORDER BY t.%s)
			FROM %s ct JOIN %s t ON t.%s = ct.%s
			WHERE ct.%s = c.%s
		), '{}')`,
		c.ID, c.School, c.Name, c.Slug, c.Description, c.CreatedBy, c.CreatedAt, c.UpdatedAt,
		schema.CoreTag.Slug, schema.CoreTag.Slug,
		schema.CoreClubTag.Table, schema.CoreTag.Table, schema.CoreTag.ID, schema.CoreClubTag.TagID,
		schema.CoreClubTag.ClubID, c.ID,
	)
}

func scanClub(row pgx.Row, extra ...any) (*Club, error) {
	club := &Club{}
	targets := append([]any{
		&club.ID, &club.School, &club.Name, &club.Slug, &club.Description,
		&club.CreatedBy, &club.CreatedAt, &club.UpdatedAt, &club.Tags,
	}, extra...)

	if err := row.Scan(targets...); err != nil {
		return nil, err
	}
	return club, nil
}

/*
Find returns the club of school matching key.

Parameters:
  - context: context.Context
  - school: string
  - key: Key (id, slug or case-insensitive name)

Returns:
  - *Club: Hydrated club with tag slugs
  - error: dberr.ErrNotFound or database errors
*/
func (repository *PostgresRepository) Find(context context.Context, school string, key Key) (*Club, error) {
	var predicate string
	switch key.Kind {
	case KeyID:
		predicate = fmt.Sprintf("c.%s = $2", schema.CoreClub.ID)
	case KeySlug:
		predicate = fmt.Sprintf("c.%s = $2", schema.CoreClub.Slug)
	case KeyName:
		predicate = fmt.Sprintf("LOWER(c.%s) = LOWER($2)", schema.CoreClub.Name)
	default:
		return nil, ErrUnknownKeyKind
	}

	query := fmt.Sprintf(`SELECT %s FROM %s c WHERE c.%s = $1 AND %s`,
		clubColumns(), schema.CoreClub.Table, schema.CoreClub.School, predicate)

	club, err := scanClub(repository.pool.QueryRow(context, query, school, key.Value))
	if err != nil {
		return nil, dberr.Wrap(err, "find_club")
	}
	return club, nil
}

/*
List returns a page of clubs ordered by name and the total count.

Description: COUNT(*) OVER() yields the total without a second query. An
empty page past the end still reports zero, which callers treat as "no more".
*/
func (repository *PostgresRepository) List(context context.Context, school string, filter Filter, limit, offset int) ([]*Club, int, error) {
	var queryBuilder strings.Builder
	args := []any{school}
	argID := 2

	queryBuilder.WriteString(fmt.Sprintf(`SELECT %s, COUNT(*) OVER() AS total_count FROM %s c WHERE c.%s = $1`,
		clubColumns(), schema.CoreClub.Table, schema.CoreClub.School))

	// Tag filter
	if filter.Tag != "" {
		queryBuilder.WriteString(fmt.Sprintf(` AND EXISTS (
			SELECT 1 FROM %s ct JOIN %s t ON t.%s = ct.%s
			WHERE ct.%s = c.%s AND t.%s = $%d)`,
			schema.CoreClubTag.Table, schema.CoreTag.Table, schema.CoreTag.ID, schema.CoreClubTag.TagID,
			schema.CoreClubTag.ClubID, schema.CoreClub.ID, schema.CoreTag.Slug, argID))
		args = append(args, filter.Tag)
		argID++
	}

	queryBuilder.WriteString(fmt.Sprintf(` ORDER BY c.%s ASC LIMIT $%d OFFSET $%d`, schema.CoreClub.Name, argID, argID+1))
	args = append(args, limit, offset)

	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_clubs")
	}
	defer rows.Close()

	clubs := make([]*Club, 0, limit)
	total := 0
	for rows.Next() {
		club, err := scanClub(rows, &total)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_club")
		}
		clubs = append(clubs, club)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_clubs")
	}

	return clubs, total, nil
}

// Create inserts the club and its tag links in one transaction.
func (repository *PostgresRepository) Create(context context.Context, club *Club) error {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "create_club_begin")
	}
	defer transaction.Rollback(context)

	c := schema.CoreClub
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s, %s`,
		c.Table, c.ID, c.School, c.Name, c.Slug, c.Description, c.CreatedBy,
		c.CreatedAt, c.UpdatedAt,
	)

	err = transaction.QueryRow(context, query,
		club.ID, club.School, club.Name, club.Slug, club.Description, club.CreatedBy,
	).Scan(&club.CreatedAt, &club.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_club")
	}

	if err := replaceTags(context, transaction, club); err != nil {
		return err
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "create_club_commit")
	}
	return nil
}

// Update rewrites name, slug, description and tags in one transaction.
func (repository *PostgresRepository) Update(context context.Context, club *Club) error {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "update_club_begin")
	}
	defer transaction.Rollback(context)

	c := schema.CoreClub
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $1 AND %s = $2
		RETURNING %s`,
		c.Table, c.Name, c.Slug, c.Description, c.UpdatedAt,
		c.School, c.ID,
		c.UpdatedAt,
	)

	err = transaction.QueryRow(context, query,
		club.School, club.ID, club.Name, club.Slug, club.Description,
	).Scan(&club.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "update_club")
	}

	if err := replaceTags(context, transaction, club); err != nil {
		return err
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "update_club_commit")
	}
	return nil
}

// Delete removes the club; its tag links cascade.
func (repository *PostgresRepository) Delete(context context.Context, school, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.CoreClub.Table, schema.CoreClub.School, schema.CoreClub.ID)

	result, err := repository.pool.Exec(context, query, school, id)
	if err != nil {
		return dberr.Wrap(err, "delete_club")
	}
	if result.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// replaceTags swaps the club's tag links for the slugs in club.Tags. Slugs
// unknown to the club's school fail with [ErrUnknownTag].
func replaceTags(context context.Context, transaction pgx.Tx, club *Club) error {
	ct := schema.CoreClubTag
	t := schema.CoreTag

	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, ct.Table, ct.ClubID)
	if _, err := transaction.Exec(context, deleteQuery, club.ID); err != nil {
		return dberr.Wrap(err, "clear_club_tags")
	}

	if len(club.Tags) == 0 {
		return nil
	}

	insertQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		SELECT $1, %s FROM %s WHERE %s = $2 AND %s = ANY($3)`,
		ct.Table, ct.ClubID, ct.TagID,
		t.ID, t.Table, t.School, t.Slug,
	)

	result, err := transaction.Exec(context, insertQuery, club.ID, club.School, club.Tags)
	if err != nil {
		return dberr.Wrap(err, "set_club_tags")
	}
	if int(result.RowsAffected()) != len(club.Tags) {
		return ErrUnknownTag
	}
	return nil
}
