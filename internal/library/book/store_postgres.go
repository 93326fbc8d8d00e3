// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/folio/internal/platform/database/schema"
	"github.com/taibuivan/folio/internal/platform/dberr"
	"github.com/taibuivan/folio/internal/platform/postgres"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db postgres.DB
}

// NewRepository creates a new Postgres implementation for book metadata.
func NewRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var (
	bookColumns = strings.Join(schema.LibraryBook.Columns(), ", ")
	ownedBook   = fmt.Sprintf(`%s = $1 AND %s = $2`, schema.LibraryBook.ID, schema.LibraryBook.UserID)
)

func scanBook(row pgx.Row) (*Book, error) {
	book := &Book{}
	err := row.Scan(
		&book.ID,
		&book.UserID,
		&book.Title,
		&book.Author,
		&book.Filename,
		&book.StorageKey,
		&book.FileType,
		&book.FileSize,
		&book.ReadingProgress,
		&book.ReadingTime,
		&book.Category,
		&book.Tags,
		&book.Bookmarks,
		&book.UploadDate,
		&book.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if book.Tags == nil {
		book.Tags = []string{}
	}
	if book.Bookmarks == nil {
		book.Bookmarks = []int{}
	}
	return book, nil
}

// Create inserts a new row into library.book.
func (repository *PostgresRepository) Create(context context.Context, book *Book) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		schema.LibraryBook.Table, bookColumns)

	if book.Tags == nil {
		book.Tags = []string{}
	}
	if book.Bookmarks == nil {
		book.Bookmarks = []int{}
	}

	_, err := repository.db.Exec(context, query,
		book.ID,
		book.UserID,
		book.Title,
		book.Author,
		book.Filename,
		book.StorageKey,
		book.FileType,
		book.FileSize,
		book.ReadingProgress,
		book.ReadingTime,
		book.Category,
		book.Tags,
		book.Bookmarks,
		book.UploadDate,
		book.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres_book_repo_create_failed: %w", err)
	}
	return nil
}

// ListByUser returns the shelf newest-first.
func (repository *PostgresRepository) ListByUser(context context.Context, userID string) ([]*Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC, %s DESC`,
		bookColumns, schema.LibraryBook.Table, schema.LibraryBook.UserID,
		schema.LibraryBook.UploadedAt, schema.LibraryBook.ID)

	rows, err := repository.db.Query(context, query, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres_book_repo_list_failed: %w", err)
	}
	defer rows.Close()

	books := []*Book{}
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres_book_repo_list_scan_failed: %w", err)
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_book_repo_list_failed: %w", err)
	}

	return books, nil
}

// FindByID loads one owned book.
func (repository *PostgresRepository) FindByID(context context.Context, userID, bookID string) (*Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s`, bookColumns, schema.LibraryBook.Table, ownedBook)

	book, err := scanBook(repository.db.QueryRow(context, query, bookID, userID))
	if err != nil {
		return nil, dberr.Wrap(err, resourceBook, "book_find_by_id")
	}
	return book, nil
}

// Delete removes the row and hands back the storage key so the caller can
// clean up the file.
func (repository *PostgresRepository) Delete(context context.Context, userID, bookID string) (string, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s RETURNING %s`,
		schema.LibraryBook.Table, ownedBook, schema.LibraryBook.StorageKey)

	var storageKey string
	if err := repository.db.QueryRow(context, query, bookID, userID).Scan(&storageKey); err != nil {
		return "", dberr.Wrap(err, resourceBook, "book_delete")
	}
	return storageKey, nil
}

// UpdateProgress overwrites progress and accumulates reading time in one statement.
func (repository *PostgresRepository) UpdateProgress(context context.Context, userID, bookID string, progress float64, readingTimeDelta int) (*Book, error) {
	query := fmt.Sprintf(`
		UPDATE %[1]s
		SET %[2]s = $3, %[3]s = %[3]s + $4, %[4]s = NOW()
		WHERE %[5]s
		RETURNING %[6]s`,
		schema.LibraryBook.Table,
		schema.LibraryBook.ReadingProgress,
		schema.LibraryBook.ReadingTime,
		schema.LibraryBook.UpdatedAt,
		ownedBook,
		bookColumns,
	)

	book, err := scanBook(repository.db.QueryRow(context, query, bookID, userID, progress, readingTimeDelta))
	if err != nil {
		return nil, dberr.Wrap(err, resourceBook, "book_update_progress")
	}
	return book, nil
}

/*
ToggleBookmark flips membership of page in the bookmark set.

The CASE keeps the whole read-modify-write inside one UPDATE so concurrent
toggles cannot lose each other. Added pages are re-sorted so the array stays
ascending.
*/
func (repository *PostgresRepository) ToggleBookmark(context context.Context, userID, bookID string, page int) (*Book, error) {
	query := fmt.Sprintf(`
		UPDATE %[1]s
		SET %[2]s = CASE
				WHEN $3::int = ANY(%[2]s) THEN array_remove(%[2]s, $3::int)
				ELSE ARRAY(SELECT page FROM unnest(array_append(%[2]s, $3::int)) AS page ORDER BY page)
			END,
			%[3]s = NOW()
		WHERE %[4]s
		RETURNING %[5]s`,
		schema.LibraryBook.Table,
		schema.LibraryBook.Bookmarks,
		schema.LibraryBook.UpdatedAt,
		ownedBook,
		bookColumns,
	)

	book, err := scanBook(repository.db.QueryRow(context, query, bookID, userID, page))
	if err != nil {
		return nil, dberr.Wrap(err, resourceBook, "book_toggle_bookmark")
	}
	return book, nil
}

// UpdateMetadata writes the editable descriptive fields.
func (repository *PostgresRepository) UpdateMetadata(context context.Context, book *Book) (*Book, error) {
	query := fmt.Sprintf(`
		UPDATE %[1]s
		SET %[2]s = $3, %[3]s = $4, %[4]s = $5, %[5]s = $6, %[6]s = NOW()
		WHERE %[7]s
		RETURNING %[8]s`,
		schema.LibraryBook.Table,
		schema.LibraryBook.Title,
		schema.LibraryBook.Author,
		schema.LibraryBook.Category,
		schema.LibraryBook.Tags,
		schema.LibraryBook.UpdatedAt,
		ownedBook,
		bookColumns,
	)

	tags := book.Tags
	if tags == nil {
		tags = []string{}
	}

	updated, err := scanBook(repository.db.QueryRow(context, query,
		book.ID, book.UserID, book.Title, book.Author, book.Category, tags))
	if err != nil {
		return nil, dberr.Wrap(err, resourceBook, "book_update_metadata")
	}
	return updated, nil
}

// CountByCategory groups the user's books by category string.
func (repository *PostgresRepository) CountByCategory(context context.Context, userID string) (map[string]int, error) {
	query := fmt.Sprintf(`
		SELECT %[1]s, COUNT(*)
		FROM %[2]s
		WHERE %[3]s = $1 AND %[1]s IS NOT NULL AND %[1]s <> ''
		GROUP BY %[1]s`,
		schema.LibraryBook.Category, schema.LibraryBook.Table, schema.LibraryBook.UserID)

	rows, err := repository.db.Query(context, query, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres_book_repo_count_by_category_failed: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var name string
		var count int
		if err := rows.Scan(&name, &count); err != nil {
			return nil, fmt.Errorf("postgres_book_repo_count_by_category_scan_failed: %w", err)
		}
		counts[name] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_book_repo_count_by_category_failed: %w", err)
	}

	return counts, nil
}
