// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/folio/internal/library/book"
	"github.com/taibuivan/folio/pkg/pointer"
)

func shelf() []*book.Book {
	return []*book.Book{
		{ID: "1", Title: "Dune", Author: pointer.To("Frank Herbert"), Filename: "dune.epub",
			Category: pointer.To("Fiction"), Tags: []string{"scifi", "classic"}},
		{ID: "2", Title: "Thinking, Fast and Slow", Author: pointer.To("Daniel Kahneman"), Filename: "tfas.pdf",
			Category: pointer.To("Nonfiction"), Tags: []string{"psychology"}},
		{ID: "3", Title: "Untitled", Filename: "ÉLAN-notes.pdf", Tags: []string{}},
	}
}

func ids(books []*book.Book) []string {
	result := []string{}
	for _, b := range books {
		result = append(result, b.ID)
	}
	return result
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		query book.Query
		want  []string
	}{
		{"empty query keeps everything in order", book.Query{}, []string{"1", "2", "3"}},
		{"search title case-insensitively", book.Query{Search: "dune"}, []string{"1"}},
		{"search author", book.Query{Search: "KAHNEMAN"}, []string{"2"}},
		{"search filename", book.Query{Search: "tfas"}, []string{"2"}},
		{"search folds unicode case", book.Query{Search: "élan"}, []string{"3"}},
		{"search ignores surrounding spaces", book.Query{Search: "  herbert "}, []string{"1"}},
		{"category exact", book.Query{Category: "Fiction"}, []string{"1"}},
		{"category is case-sensitive", book.Query{Category: "fiction"}, []string{}},
		{"category without match", book.Query{Category: "Poetry"}, []string{}},
		{"any tag matches", book.Query{Tags: []string{"poetry", "psychology"}}, []string{"2"}},
		{"tag is exact", book.Query{Tags: []string{"SciFi"}}, []string{}},
		{"filters are combined", book.Query{Search: "dune", Category: "Nonfiction"}, []string{}},
		{"all filters agree", book.Query{Search: "dune", Category: "Fiction", Tags: []string{"scifi"}}, []string{"1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(book.Filter(shelf(), tt.query)))
		})
	}
}

func TestFilter_DuneScenario(t *testing.T) {
	books := shelf()

	assert.Equal(t, []string{"1"}, ids(book.Filter(books, book.Query{Search: "dune"})))
	assert.Equal(t, []string{"1"}, ids(book.Filter(books, book.Query{Category: "Fiction"})))
	assert.Equal(t, []string{"1"}, ids(book.Filter(books, book.Query{Tags: []string{"scifi"}})))
	assert.Empty(t, book.Filter(books, book.Query{Search: "dune", Category: "Nonfiction"}))
}

func TestFilter_NilInputIsEmptySlice(t *testing.T) {
	result := book.Filter(nil, book.Query{})
	assert.NotNil(t, result)
	assert.Empty(t, result)
}
