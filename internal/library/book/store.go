// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"context"
	"io"
	"time"
)

// Repository defines the data access contract for book metadata.
//
// Every method that takes a bookID also takes the owning userID; a mismatch
// is reported as apperr.NotFound.
type Repository interface {
	// Create persists a new book row.
	Create(context context.Context, book *Book) error

	// ListByUser returns every book of the user, newest upload first.
	ListByUser(context context.Context, userID string) ([]*Book, error)

	// FindByID returns one owned book.
	FindByID(context context.Context, userID, bookID string) (*Book, error)

	// Delete removes the row and returns the storage key of its file.
	Delete(context context.Context, userID, bookID string) (string, error)

	// UpdateProgress sets progress and adds readingTimeDelta minutes atomically.
	UpdateProgress(context context.Context, userID, bookID string, progress float64, readingTimeDelta int) (*Book, error)

	// ToggleBookmark adds page if absent and removes it if present, atomically.
	ToggleBookmark(context context.Context, userID, bookID string, page int) (*Book, error)

	// UpdateMetadata writes title, author, category and tags.
	UpdateMetadata(context context.Context, book *Book) (*Book, error)

	// CountByCategory counts the user's books per non-empty category string.
	CountByCategory(context context.Context, userID string) (map[string]int, error)
}

// FileStore stores uploaded book bytes under opaque keys.
type FileStore interface {
	Save(context context.Context, filename string, body io.Reader) (string, int64, error)
	Open(key string) (io.ReadCloser, int64, error)
	Remove(key string) error
}

// CategoryEnsurer makes sure a named category exists for the user.
type CategoryEnsurer interface {
	Ensure(context context.Context, userID, name string) error
}

// ActivityRecorder logs a progress report for streak tracking.
type ActivityRecorder interface {
	Record(context context.Context, userID, bookID string, minutes int, at time.Time) error
}
