// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/ctxutil"
	"github.com/taibuivan/folio/internal/platform/filestore"
	"github.com/taibuivan/folio/internal/platform/validate"
	"github.com/taibuivan/folio/pkg/pointer"
	"github.com/taibuivan/folio/pkg/query"
	"github.com/taibuivan/folio/pkg/uuid"
)

// Service implements the book shelf use cases.
type Service struct {
	repository Repository
	files      FileStore
	categories CategoryEnsurer
	activity   ActivityRecorder
	maxBytes   int64
	now        func() time.Time
}

// NewService constructs a [Service]. maxBytes is only used for error messages;
// the FileStore enforces the limit.
func NewService(repository Repository, files FileStore, categories CategoryEnsurer, activity ActivityRecorder, maxBytes int64) *Service {
	return &Service{
		repository: repository,
		files:      files,
		categories: categories,
		activity:   activity,
		maxBytes:   maxBytes,
		now:        time.Now,
	}
}

// # Upload Flow

/*
Upload stores the file, then the metadata row, then makes sure the category
exists.

The file type comes from the declared content type when it is one of the
accepted types, otherwise from the filename extension.

Returns:
  - *Book: The created book
  - error: UnsupportedMediaType, ValidationError or storage failures
*/
func (service *Service) Upload(context context.Context, userID string, input UploadInput, body io.Reader) (*Book, error) {
	fileType, err := ResolveFileType(input.ContentType, input.Filename)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	author := strings.TrimSpace(input.Author)
	category := strings.TrimSpace(input.Category)

	validator := &validate.Validator{}
	validator.Required(FieldTitle, title).
		MaxLen(FieldTitle, title, MaxTitleLength).
		MaxLen(FieldAuthor, author, MaxAuthorLength).
		MaxLen(FieldCategory, category, MaxCategoryLength)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	filename := filepath.Base(strings.ReplaceAll(input.Filename, `\`, "/"))

	storageKey, size, err := service.files.Save(context, filename, body)
	if err != nil {
		if errors.Is(err, filestore.ErrTooLarge) {
			return nil, service.tooLarge()
		}
		return nil, fmt.Errorf("book_service_save_file_failed: %w", err)
	}

	now := service.now().UTC()
	book := &Book{
		ID:         uuid.New(),
		UserID:     userID,
		Title:      title,
		Author:     optional(author),
		Filename:   filename,
		StorageKey: storageKey,
		FileType:   fileType,
		FileSize:   size,
		Category:   optional(category),
		Tags:       tagsOrEmpty(query.StringSlice(input.Tags)),
		Bookmarks:  []int{},
		UploadDate: now,
		UpdatedAt:  now,
	}

	logger := ctxutil.GetLogger(context)

	if err := service.repository.Create(context, book); err != nil {
		if removeErr := service.files.Remove(storageKey); removeErr != nil {
			logger.WarnContext(context, "book_orphan_file_cleanup_failed",
				slog.String("storage_key", storageKey), slog.Any("error", removeErr))
		}
		return nil, err
	}

	service.ensureCategory(context, userID, category)

	logger.InfoContext(context, "book_uploaded",
		slog.String("book_id", book.ID),
		slog.String("file_type", fileType),
		slog.Int64("file_size", size),
	)

	return book, nil
}

// ResolveFileType maps an upload to one of the accepted content types.
func ResolveFileType(contentType, filename string) (string, error) {
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		switch mediaType {
		case ContentTypePDF, ContentTypeEPUB:
			return mediaType, nil
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return ContentTypePDF, nil
	case ".epub":
		return ContentTypeEPUB, nil
	}

	return "", apperr.UnsupportedMediaType("Only PDF and EPUB files are supported")
}

func (service *Service) tooLarge() error {
	return validate.RequiredError(FieldFile, fmt.Sprintf("File exceeds the %d MB limit", service.maxBytes>>20))
}

// TooLarge is the error the HTTP layer reports when the request body itself
// overruns the limit before reaching the store.
func (service *Service) TooLarge() error {
	return service.tooLarge()
}

// # Reads

// List returns the user's shelf, newest first, narrowed by q.
func (service *Service) List(context context.Context, userID string, q Query) ([]*Book, error) {
	books, err := service.repository.ListByUser(context, userID)
	if err != nil {
		return nil, err
	}
	return Filter(books, q), nil
}

// Get returns one owned book.
func (service *Service) Get(context context.Context, userID, bookID string) (*Book, error) {
	if !validate.IsUUID(bookID) {
		return nil, apperr.NotFound(resourceBook)
	}
	return service.repository.FindByID(context, userID, bookID)
}

// Download returns the book and a reader over its stored file. The caller
// must close the reader.
func (service *Service) Download(context context.Context, userID, bookID string) (*Book, io.ReadCloser, int64, error) {
	book, err := service.Get(context, userID, bookID)
	if err != nil {
		return nil, nil, 0, err
	}

	reader, size, err := service.files.Open(book.StorageKey)
	if err != nil {
		if errors.Is(err, filestore.ErrNotFound) {
			ctxutil.GetLogger(context).WarnContext(context, "book_file_missing",
				slog.String("book_id", book.ID), slog.String("storage_key", book.StorageKey))
			return nil, nil, 0, apperr.NotFound("File")
		}
		return nil, nil, 0, fmt.Errorf("book_service_open_file_failed: %w", err)
	}

	return book, reader, size, nil
}

// # Writes

// Delete removes the book row, then its file. A file that cannot be removed
// is logged and left behind.
func (service *Service) Delete(context context.Context, userID, bookID string) error {
	if !validate.IsUUID(bookID) {
		return apperr.NotFound(resourceBook)
	}

	storageKey, err := service.repository.Delete(context, userID, bookID)
	if err != nil {
		return err
	}

	if err := service.files.Remove(storageKey); err != nil {
		ctxutil.GetLogger(context).WarnContext(context, "book_file_remove_failed",
			slog.String("book_id", bookID),
			slog.String("storage_key", storageKey),
			slog.Any("error", err),
		)
	}
	return nil
}

/*
UpdateProgress stores a new reading position.

progress is clamped to [0, 1]. readingTimeDelta minutes are added to the
running total and must not be negative.
*/
func (service *Service) UpdateProgress(context context.Context, userID, bookID string, progress *float64, readingTimeDelta int) (*Book, error) {
	validator := &validate.Validator{}
	validator.Custom(FieldProgress, progress == nil, "This field is required").
		Min(FieldReadingTime, readingTimeDelta, 0)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if !validate.IsUUID(bookID) {
		return nil, apperr.NotFound(resourceBook)
	}

	book, err := service.repository.UpdateProgress(context, userID, bookID, ClampProgress(*progress), readingTimeDelta)
	if err != nil {
		return nil, err
	}

	if err := service.activity.Record(context, userID, book.ID, readingTimeDelta, service.now()); err != nil {
		ctxutil.GetLogger(context).WarnContext(context, "reading_activity_record_failed",
			slog.String("book_id", book.ID), slog.Any("error", err))
	}

	return book, nil
}

// ClampProgress bounds p to [0, 1].
func ClampProgress(p float64) float64 {
	return min(max(p, 0), 1)
}

// ToggleBookmark adds or removes page from the bookmark set.
func (service *Service) ToggleBookmark(context context.Context, userID, bookID string, page int) (*Book, error) {
	validator := &validate.Validator{}
	if err := validator.Min(FieldPageNumber, page, 1).Err(); err != nil {
		return nil, err
	}

	if !validate.IsUUID(bookID) {
		return nil, apperr.NotFound(resourceBook)
	}

	return service.repository.ToggleBookmark(context, userID, bookID, page)
}

// UpdateMetadata applies a partial edit of title, author, category and tags.
func (service *Service) UpdateMetadata(context context.Context, userID, bookID string, input MetadataInput) (*Book, error) {
	book, err := service.Get(context, userID, bookID)
	if err != nil {
		return nil, err
	}

	validator := &validate.Validator{}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		validator.Required(FieldTitle, title).MaxLen(FieldTitle, title, MaxTitleLength)
		book.Title = title
	}
	if input.Author != nil {
		author := strings.TrimSpace(*input.Author)
		validator.MaxLen(FieldAuthor, author, MaxAuthorLength)
		book.Author = optional(author)
	}
	previousCategory := book.CategoryName()
	if input.Category != nil {
		category := strings.TrimSpace(*input.Category)
		validator.MaxLen(FieldCategory, category, MaxCategoryLength)
		book.Category = optional(category)
	}
	if input.Tags != nil {
		book.Tags = tagsOrEmpty(query.Trimmed(*input.Tags))
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	updated, err := service.repository.UpdateMetadata(context, book)
	if err != nil {
		return nil, err
	}

	if name := updated.CategoryName(); name != previousCategory {
		service.ensureCategory(context, userID, name)
	}

	return updated, nil
}

// ensureCategory runs after the book write has committed, so a failure here
// only costs the auto-created category row and is logged.
func (service *Service) ensureCategory(context context.Context, userID, name string) {
	if name == "" {
		return
	}
	if err := service.categories.Ensure(context, userID, name); err != nil {
		ctxutil.GetLogger(context).WarnContext(context, "category_ensure_failed",
			slog.String("category", name), slog.Any("error", err))
	}
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return pointer.To(value)
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
