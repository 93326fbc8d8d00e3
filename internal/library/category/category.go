// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package category manages the named, colored shelves a reader sorts books into.

Books reference categories by name only. A category row is a label with a
color; deleting it leaves the books that carry its name untouched, and the
book count shown next to it is always derived from the books at read time.
*/
package category

import (
	"context"
	"time"
)

// Category is one user-defined label.
type Category struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	BookCount int       `json:"book_count"`
}

// DefaultColor is applied when none is supplied.
const DefaultColor = "#6366F1"

// MaxNameLength matches the library.category column width.
const MaxNameLength = 50

// Field names used in validation details.
const (
	FieldName  = "name"
	FieldColor = "color"
)

const resourceCategory = "Category"

// Repository defines the data access contract for categories.
type Repository interface {
	// Create inserts a category. A duplicate name for the user is apperr.Conflict.
	Create(context context.Context, category *Category) error

	// ListByUser returns the user's categories ordered by name.
	ListByUser(context context.Context, userID string) ([]*Category, error)

	// FindByName returns the user's category with exactly this name.
	FindByName(context context.Context, userID, name string) (*Category, error)

	// Delete removes an owned category.
	Delete(context context.Context, userID, categoryID string) error
}

// BookCounter reports how many of the user's books carry each category name.
type BookCounter interface {
	CountByCategory(context context.Context, userID string) (map[string]int, error)
}
