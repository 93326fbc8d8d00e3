// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/database/schema"
	"github.com/taibuivan/folio/internal/platform/dberr"
	"github.com/taibuivan/folio/internal/platform/postgres"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db postgres.DB
}

// NewRepository creates a new Postgres implementation for categories.
func NewRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var categoryColumns = strings.Join(schema.LibraryCategory.Columns(), ", ")

func scanCategory(row pgx.Row) (*Category, error) {
	category := &Category{}
	err := row.Scan(
		&category.ID,
		&category.UserID,
		&category.Name,
		&category.Color,
		&category.CreatedAt,
	)
	return category, err
}

// Create inserts into library.category. The (userid, name) unique index
// turns a duplicate into apperr.Conflict.
func (repository *PostgresRepository) Create(context context.Context, category *Category) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5)`,
		schema.LibraryCategory.Table, categoryColumns)

	_, err := repository.db.Exec(context, query,
		category.ID,
		category.UserID,
		category.Name,
		category.Color,
		category.CreatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, resourceCategory, "category_create")
	}
	return nil
}

// ListByUser returns the user's categories sorted by name.
func (repository *PostgresRepository) ListByUser(context context.Context, userID string) ([]*Category, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s`,
		categoryColumns, schema.LibraryCategory.Table,
		schema.LibraryCategory.UserID, schema.LibraryCategory.Name)

	rows, err := repository.db.Query(context, query, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres_category_repo_list_failed: %w", err)
	}
	defer rows.Close()

	categories := []*Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres_category_repo_list_scan_failed: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_category_repo_list_failed: %w", err)
	}

	return categories, nil
}

// FindByName looks up a category by its exact name.
func (repository *PostgresRepository) FindByName(context context.Context, userID, name string) (*Category, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = $2`,
		categoryColumns, schema.LibraryCategory.Table,
		schema.LibraryCategory.UserID, schema.LibraryCategory.Name)

	category, err := scanCategory(repository.db.QueryRow(context, query, userID, name))
	if err != nil {
		return nil, dberr.Wrap(err, resourceCategory, "category_find_by_name")
	}
	return category, nil
}

// Delete removes an owned category row.
func (repository *PostgresRepository) Delete(context context.Context, userID, categoryID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.LibraryCategory.Table, schema.LibraryCategory.ID, schema.LibraryCategory.UserID)

	tag, err := repository.db.Exec(context, query, categoryID, userID)
	if err != nil {
		return fmt.Errorf("postgres_category_repo_delete_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourceCategory)
	}
	return nil
}
