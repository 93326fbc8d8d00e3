// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/taibuivan/folio/pkg/slice"
)

// Filter returns the books matching every non-empty criterion of q, in input order.
//
// Search is a case-folded substring match on title, author or filename.
// Category is exact. Tags match when the book carries at least one of them.
func Filter(books []*Book, q Query) []*Book {
	folder := cases.Fold()
	search := folder.String(strings.TrimSpace(q.Search))

	matched := slice.Filter(books, func(book *Book) bool {
		if search != "" && !matchesSearch(folder, book, search) {
			return false
		}
		if q.Category != "" && book.CategoryName() != q.Category {
			return false
		}
		if len(q.Tags) > 0 && !slices.ContainsFunc(q.Tags, func(tag string) bool {
			return slices.Contains(book.Tags, tag)
		}) {
			return false
		}
		return true
	})

	if matched == nil {
		return []*Book{}
	}
	return matched
}

func matchesSearch(folder cases.Caser, book *Book, search string) bool {
	fields := []string{book.Title, book.Filename}
	if book.Author != nil {
		fields = append(fields, *book.Author)
	}
	for _, field := range fields {
		if strings.Contains(folder.String(field), search) {
			return true
		}
	}
	return false
}
