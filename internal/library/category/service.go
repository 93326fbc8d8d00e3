// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/ctxutil"
	"github.com/taibuivan/folio/internal/platform/validate"
	"github.com/taibuivan/folio/pkg/uuid"
)

// Service implements category use cases.
type Service struct {
	repository Repository
	books      BookCounter
}

// NewService constructs a [Service].
func NewService(repository Repository, books BookCounter) *Service {
	return &Service{repository: repository, books: books}
}

/*
Create adds a category for the user.

Returns:
  - *Category: The created category with a zero book count
  - error: ValidationError, or Conflict when the name is taken
*/
func (service *Service) Create(context context.Context, userID, name, color string) (*Category, error) {
	name = strings.TrimSpace(name)
	color = strings.TrimSpace(color)
	if color == "" {
		color = DefaultColor
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, name).
		MaxLen(FieldName, name, MaxNameLength).
		HexColor(FieldColor, color)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	category := &Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Color:     color,
		CreatedAt: time.Now().UTC(),
	}

	if err := service.repository.Create(context, category); err != nil {
		if apperr.HasCode(err, apperr.CodeConflict) {
			return nil, apperr.Conflict("Category already exists")
		}
		return nil, err
	}

	counts, err := service.books.CountByCategory(context, userID)
	if err != nil {
		return nil, err
	}
	category.BookCount = counts[category.Name]

	return category, nil
}

// List returns the user's categories with live book counts.
func (service *Service) List(context context.Context, userID string) ([]*Category, error) {
	categories, err := service.repository.ListByUser(context, userID)
	if err != nil {
		return nil, err
	}

	counts, err := service.books.CountByCategory(context, userID)
	if err != nil {
		return nil, err
	}

	for _, category := range categories {
		category.BookCount = counts[category.Name]
	}
	return categories, nil
}

// Delete removes the category row. Books keep their category string.
func (service *Service) Delete(context context.Context, userID, categoryID string) error {
	if !validate.IsUUID(categoryID) {
		return apperr.NotFound(resourceCategory)
	}
	return service.repository.Delete(context, userID, categoryID)
}

/*
FindOrCreate returns the named category, creating it with the default color
if needed. When two requests race, the loser's insert hits the unique index
and it reads back the winner's row.
*/
func (service *Service) FindOrCreate(context context.Context, userID, name string) (*Category, error) {
	created, err := service.Create(context, userID, name, "")
	if err == nil {
		ctxutil.GetLogger(context).InfoContext(context, "category_auto_created",
			slog.String("category_id", created.ID), slog.String("name", created.Name))
		return created, nil
	}
	if !apperr.HasCode(err, apperr.CodeConflict) {
		return nil, err
	}
	return service.repository.FindByName(context, userID, strings.TrimSpace(name))
}

// Ensure is FindOrCreate without the result, for callers that only need the
// row to exist.
func (service *Service) Ensure(context context.Context, userID, name string) error {
	_, err := service.FindOrCreate(context, userID, name)
	return err
}
