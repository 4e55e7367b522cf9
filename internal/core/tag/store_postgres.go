// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

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

// NewPostgresRepository constructs a PostgreSQL backed tag store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func tagColumns() string {
	t := schema.CoreTag
	return fmt.Sprintf("%s, %s, %s, %s, %s", t.ID, t.School, t.Name, t.Slug, t.CreatedAt)
}

// List returns the school's tags ordered by name.
func (repository *PostgresRepository) List(context context.Context, school string) ([]*Tag, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		tagColumns(), schema.CoreTag.Table, schema.CoreTag.School, schema.CoreTag.Name)

	rows, err := repository.db.Query(context, query, school)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tags")
	}
	defer rows.Close()

	tags := make([]*Tag, 0)
	for rows.Next() {
		tag := &Tag{}
		if err := rows.Scan(&tag.ID, &tag.School, &tag.Name, &tag.Slug, &tag.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_tag")
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_tags")
	}

	return tags, nil
}

// FindBySlug returns the school's tag with the given slug.
func (repository *PostgresRepository) FindBySlug(context context.Context, school, slug string) (*Tag, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = $2`,
		tagColumns(), schema.CoreTag.Table, schema.CoreTag.School, schema.CoreTag.Slug)

	tag := &Tag{}
	err := repository.db.QueryRow(context, query, school, slug).Scan(
		&tag.ID, &tag.School, &tag.Name, &tag.Slug, &tag.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_tag_by_slug")
	}
	return tag, nil
}

// Create inserts a tag. A duplicate slug within the school is a Conflict.
func (repository *PostgresRepository) Create(context context.Context, tag *Tag) error {
	t := schema.CoreTag
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4) RETURNING %s`,
		t.Table, t.ID, t.School, t.Name, t.Slug, t.CreatedAt)

	if err := repository.db.QueryRow(context, query, tag.ID, tag.School, tag.Name, tag.Slug).Scan(&tag.CreatedAt); err != nil {
		return dberr.Wrap(err, "create_tag")
	}
	return nil
}
