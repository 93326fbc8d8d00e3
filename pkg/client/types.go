// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package client

import (
	"io"
	"time"
)

// User is the public account profile.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Session is returned by Register and Login.
type Session struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	User        User   `json:"user"`
}

// Book mirrors the server's book resource.
type Book struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Title           string    `json:"title"`
	Author          *string   `json:"author"`
	Filename        string    `json:"filename"`
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

// BookQuery filters ListBooks. Empty fields are omitted.
type BookQuery struct {
	Search   string
	Category string
	Tags     []string
}

// Upload describes one file to send to UploadBook.
type Upload struct {
	Filename string
	// ContentType is optional; the server falls back to the extension.
	ContentType string
	Body        io.Reader

	Title    string
	Author   string
	Category string
	Tags     []string
}

// MetadataUpdate is a partial update. Nil fields are left unchanged.
type MetadataUpdate struct {
	Title    *string   `json:"title,omitempty"`
	Author   *string   `json:"author,omitempty"`
	Category *string   `json:"category,omitempty"`
	Tags     *[]string `json:"tags,omitempty"`
}

// Download is an open file stream. Close it when done.
type Download struct {
	io.ReadCloser
	ContentType   string
	ContentLength int64
	Filename      string
}

// Category mirrors the server's category resource.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	BookCount int       `json:"book_count"`
}

// Stats is the reading dashboard.
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
