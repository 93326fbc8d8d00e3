// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book_test

import (
	"context"
	"errors"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/taibuivan/folio/internal/library/book"
	"github.com/taibuivan/folio/internal/platform/apperr"
)

// memoryRepository is an in-memory [book.Repository] honoring ownership rules.
type memoryRepository struct {
	mu        sync.Mutex
	books     map[string]*book.Book
	order     []string
	createErr error
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{books: map[string]*book.Book{}}
}

func clone(b *book.Book) *book.Book {
	c := *b
	c.Tags = slices.Clone(b.Tags)
	c.Bookmarks = slices.Clone(b.Bookmarks)
	return &c
}

func (repository *memoryRepository) owned(userID, bookID string) (*book.Book, error) {
	b, ok := repository.books[bookID]
	if !ok || b.UserID != userID {
		return nil, apperr.NotFound("Book")
	}
	return b, nil
}

func (repository *memoryRepository) Create(_ context.Context, b *book.Book) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	if repository.createErr != nil {
		return repository.createErr
	}
	repository.books[b.ID] = clone(b)
	repository.order = append(repository.order, b.ID)
	return nil
}

func (repository *memoryRepository) ListByUser(_ context.Context, userID string) ([]*book.Book, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	result := []*book.Book{}
	for i := len(repository.order) - 1; i >= 0; i-- {
		if b, ok := repository.books[repository.order[i]]; ok && b.UserID == userID {
			result = append(result, clone(b))
		}
	}
	return result, nil
}

func (repository *memoryRepository) FindByID(_ context.Context, userID, bookID string) (*book.Book, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	b, err := repository.owned(userID, bookID)
	if err != nil {
		return nil, err
	}
	return clone(b), nil
}

func (repository *memoryRepository) Delete(_ context.Context, userID, bookID string) (string, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	b, err := repository.owned(userID, bookID)
	if err != nil {
		return "", err
	}
	delete(repository.books, bookID)
	return b.StorageKey, nil
}

func (repository *memoryRepository) UpdateProgress(_ context.Context, userID, bookID string, progress float64, delta int) (*book.Book, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	b, err := repository.owned(userID, bookID)
	if err != nil {
		return nil, err
	}
	b.ReadingProgress = progress
	b.ReadingTime += delta
	b.UpdatedAt = time.Now().UTC()
	return clone(b), nil
}

func (repository *memoryRepository) ToggleBookmark(_ context.Context, userID, bookID string, page int) (*book.Book, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	b, err := repository.owned(userID, bookID)
	if err != nil {
		return nil, err
	}
	if index := slices.Index(b.Bookmarks, page); index >= 0 {
		b.Bookmarks = slices.Delete(b.Bookmarks, index, index+1)
	} else {
		b.Bookmarks = append(b.Bookmarks, page)
		sort.Ints(b.Bookmarks)
	}
	return clone(b), nil
}

func (repository *memoryRepository) UpdateMetadata(_ context.Context, updated *book.Book) (*book.Book, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	b, err := repository.owned(updated.UserID, updated.ID)
	if err != nil {
		return nil, err
	}
	b.Title, b.Author, b.Category, b.Tags = updated.Title, updated.Author, updated.Category, slices.Clone(updated.Tags)
	return clone(b), nil
}

func (repository *memoryRepository) CountByCategory(_ context.Context, userID string) (map[string]int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	counts := map[string]int{}
	for _, b := range repository.books {
		if b.UserID == userID && b.CategoryName() != "" {
			counts[b.CategoryName()]++
		}
	}
	return counts, nil
}

// recordingCategories remembers every Ensure call.
type recordingCategories struct {
	mu    sync.Mutex
	names []string
	err   error
}

func (categories *recordingCategories) Ensure(_ context.Context, _ string, name string) error {
	categories.mu.Lock()
	defer categories.mu.Unlock()
	categories.names = append(categories.names, name)
	return categories.err
}

// recordingActivity remembers every Record call.
type recordingActivity struct {
	mu      sync.Mutex
	minutes []int
}

func (activity *recordingActivity) Record(_ context.Context, _, _ string, minutes int, _ time.Time) error {
	activity.mu.Lock()
	defer activity.mu.Unlock()
	activity.minutes = append(activity.minutes, minutes)
	return nil
}

var errBoom = errors.New("boom")
