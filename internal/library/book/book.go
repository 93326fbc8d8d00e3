// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package book implements the personal book shelf: uploads, downloads, reading
progress, bookmarks and metadata.

# Architecture

  - Service: Use cases scoped to the acting user.
  - Repository: PostgreSQL persistence of book metadata (library.book).
  - FileStore: Opaque blob storage for the uploaded PDF/EPUB bytes.
  - Filter: Pure in-memory search over a user's shelf.

Ownership is enforced in every query: a book owned by someone else is
indistinguishable from a book that does not exist.
*/
package book

import (
	"time"

	"github.com/taibuivan/folio/pkg/pointer"
)

// # Domain Entities

// Book is one uploaded file plus its reading state.
type Book struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Title           string    `json:"title"`
	Author          *string   `json:"author"`
	Filename        string    `json:"filename"`
	StorageKey      string    `json:"-"`
	FileType        string    `json:"file_type"`
	FileSize        int64     `json:"file_size"`
	ReadingProgress float64   `json:"reading_progress"`
	ReadingTime     int       `json:"reading_time"`
	Category        *string   `json:"category"`
	Tags            []string  `json:"tags"`
	Bookmarks       []int     `json:"bookmarks"`
	UploadDate      time.Time `json:"upload_date"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CategoryName returns the category or "" when unset.
func (b *Book) CategoryName() string {
	return pointer.Val(b.Category)
}

// # Use Case Inputs

// UploadInput carries one multipart upload into the service.
type UploadInput struct {
	Filename    string
	ContentType string
	Title       string
	Author      string
	Category    string
	Tags        string
}

// MetadataInput is a partial update. Nil fields are left unchanged; an empty
// Author or Category clears it.
type MetadataInput struct {
	Title    *string   `json:"title"`
	Author   *string   `json:"author"`
	Category *string   `json:"category"`
	Tags     *[]string `json:"tags"`
}

// Query narrows a shelf listing. Zero values match everything.
type Query struct {
	Search   string
	Category string
	Tags     []string
}

// # Constants

// Accepted content types.
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeEPUB = "application/epub+zip"
)

// Field constraints.
const (
	MaxTitleLength    = 255
	MaxAuthorLength   = 255
	MaxCategoryLength = 50
)

// Field names used in validation details.
const (
	FieldFile        = "file"
	FieldTitle       = "title"
	FieldAuthor      = "author"
	FieldCategory    = "category"
	FieldProgress    = "progress"
	FieldReadingTime = "reading_time"
	FieldPageNumber  = "page_number"
)

const resourceBook = "Book"
