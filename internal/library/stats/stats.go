// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package stats aggregates a reader's shelf into dashboard numbers.

Everything is computed from the current rows on each request. Nothing is
cached or stored.
*/
package stats

import (
	"context"
	"time"

	"github.com/taibuivan/folio/internal/library/activity"
	"github.com/taibuivan/folio/internal/library/book"
)

// CompletedThreshold is the progress at which a book counts as finished.
const CompletedThreshold = 0.95

// Stats is the GET /api/stats payload.
type Stats struct {
	TotalBooks       int     `json:"total_books"`
	BooksCompleted   int     `json:"books_completed"`
	TotalReadingTime int     `json:"total_reading_time"`
	BooksThisMonth   int     `json:"books_this_month"`
	CurrentStreak    int     `json:"current_streak"`
	LongestStreak    int     `json:"longest_streak"`
	FavoriteCategory *string `json:"favorite_category"`
	AverageProgress  float64 `json:"average_progress"`
}

// BookLister returns the user's books, newest upload first.
type BookLister interface {
	ListByUser(context context.Context, userID string) ([]*book.Book, error)
}

// DayLister returns the days the user reported reading progress on.
type DayLister interface {
	Days(context context.Context, userID string) ([]time.Time, error)
}

// Service computes [Stats].
type Service struct {
	books BookLister
	days  DayLister
	now   func() time.Time
}

// NewService constructs a [Service] using the wall clock.
func NewService(books BookLister, days DayLister) *Service {
	return &Service{books: books, days: days, now: time.Now}
}

// WithClock returns a copy of the service that reads time from now.
func (service *Service) WithClock(now func() time.Time) *Service {
	clone := *service
	clone.now = now
	return &clone
}

// Compute loads the user's shelf and reading days and aggregates them.
func (service *Service) Compute(context context.Context, userID string) (*Stats, error) {
	books, err := service.books.ListByUser(context, userID)
	if err != nil {
		return nil, err
	}

	days, err := service.days.Days(context, userID)
	if err != nil {
		return nil, err
	}

	now := service.now()
	result := Aggregate(books, now)
	result.CurrentStreak, result.LongestStreak = activity.Streaks(days, now)
	return result, nil
}

/*
Aggregate folds a newest-first book list into [Stats]. Streak fields are left
at zero.

The favorite category is the most frequent non-empty category. Ties go to the
category that appears first when walking the shelf from the oldest upload.
*/
func Aggregate(books []*book.Book, now time.Time) *Stats {
	result := &Stats{TotalBooks: len(books)}

	year, month, _ := now.UTC().Date()
	counts := map[string]int{}
	var order []string
	var progressSum float64

	for i := len(books) - 1; i >= 0; i-- {
		b := books[i]

		if b.ReadingProgress >= CompletedThreshold {
			result.BooksCompleted++
		}
		result.TotalReadingTime += b.ReadingTime
		progressSum += b.ReadingProgress

		uploadYear, uploadMonth, _ := b.UploadDate.UTC().Date()
		if uploadYear == year && uploadMonth == month {
			result.BooksThisMonth++
		}

		if name := b.CategoryName(); name != "" {
			if counts[name] == 0 {
				order = append(order, name)
			}
			counts[name]++
		}
	}

	best := 0
	for _, name := range order {
		if counts[name] > best {
			best = counts[name]
			favorite := name
			result.FavoriteCategory = &favorite
		}
	}

	if len(books) > 0 {
		result.AverageProgress = progressSum / float64(len(books))
	}

	return result
}
