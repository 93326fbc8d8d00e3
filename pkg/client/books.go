// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package client

import (
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
)

// ListBooks returns the shelf, newest first, narrowed by q.
func (c *Client) ListBooks(ctx context.Context, token string, q BookQuery) ([]Book, error) {
	values := url.Values{}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.Category != "" {
		values.Set("category", q.Category)
	}
	if len(q.Tags) > 0 {
		values.Set("tags", strings.Join(q.Tags, ","))
	}

	path := "/api/books"
	if encoded := values.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var books []Book
	if err := c.doJSON(ctx, http.MethodGet, path, token, nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// GetBook fetches one book.
func (c *Client) GetBook(ctx context.Context, token, id string) (*Book, error) {
	book := &Book{}
	if err := c.doJSON(ctx, http.MethodGet, "/api/books/"+escape(id), token, nil, book); err != nil {
		return nil, err
	}
	return book, nil
}

// UpdateBook applies a partial metadata update.
func (c *Client) UpdateBook(ctx context.Context, token, id string, update MetadataUpdate) (*Book, error) {
	book := &Book{}
	if err := c.doJSON(ctx, http.MethodPatch, "/api/books/"+escape(id), token, update, book); err != nil {
		return nil, err
	}
	return book, nil
}

// DeleteBook removes the book and its file.
func (c *Client) DeleteBook(ctx context.Context, token, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/books/"+escape(id), token, nil, nil)
}

// UpdateProgress sets reading progress and adds minutes of reading time.
func (c *Client) UpdateProgress(ctx context.Context, token, id string, progress float64, minutes int) (*Book, error) {
	book := &Book{}
	body := map[string]any{"progress": progress, "reading_time": minutes}
	if err := c.doJSON(ctx, http.MethodPut, "/api/books/"+escape(id)+"/progress", token, body, book); err != nil {
		return nil, err
	}
	return book, nil
}

// ToggleBookmark adds the page if absent and removes it otherwise.
func (c *Client) ToggleBookmark(ctx context.Context, token, id string, page int) (*Book, error) {
	book := &Book{}
	body := map[string]int{"page_number": page}
	if err := c.doJSON(ctx, http.MethodPost, "/api/books/"+escape(id)+"/bookmark", token, body, book); err != nil {
		return nil, err
	}
	return book, nil
}

/*
UploadBook streams a multipart upload.

The body is piped straight into the request, so large files are never held
in memory. The call is bounded by ctx only.
*/
func (c *Client) UploadBook(ctx context.Context, token string, upload Upload) (*Book, error) {
	reader, writer := io.Pipe()
	form := multipart.NewWriter(writer)

	go func() {
		writer.CloseWithError(writeUploadForm(form, upload))
	}()

	request, err := c.newRequest(ctx, http.MethodPost, "/api/books/upload", token, reader)
	if err != nil {
		_ = reader.Close()
		return nil, err
	}
	request.Header.Set("Content-Type", form.FormDataContentType())

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("folio: upload: %w", err)
	}
	defer response.Body.Close()

	book := &Book{}
	if err := decode(response, book); err != nil {
		return nil, err
	}
	return book, nil
}

func writeUploadForm(form *multipart.Writer, upload Upload) error {
	fields := [][2]string{
		{"title", upload.Title},
		{"author", upload.Author},
		{"category", upload.Category},
		{"tags", strings.Join(upload.Tags, ",")},
	}
	for _, field := range fields {
		if field[1] == "" {
			continue
		}
		if err := form.WriteField(field[0], field[1]); err != nil {
			return err
		}
	}

	contentType := upload.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", mime.FormatMediaType("form-data", map[string]string{
		"name":     "file",
		"filename": upload.Filename,
	}))
	header.Set("Content-Type", contentType)

	part, err := form.CreatePart(header)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, upload.Body); err != nil {
		return err
	}
	return form.Close()
}

// DownloadBook opens the stored file. The caller must close the result.
func (c *Client) DownloadBook(ctx context.Context, token, id string) (*Download, error) {
	request, err := c.newRequest(ctx, http.MethodGet, "/api/books/"+escape(id)+"/download", token, nil)
	if err != nil {
		return nil, err
	}
	request.Header.Set("Accept", "*/*")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("folio: download: %w", err)
	}
	if response.StatusCode >= http.StatusBadRequest {
		defer response.Body.Close()
		return nil, decodeError(response)
	}

	download := &Download{
		ReadCloser:    response.Body,
		ContentType:   response.Header.Get("Content-Type"),
		ContentLength: response.ContentLength,
	}
	if _, params, err := mime.ParseMediaType(response.Header.Get("Content-Disposition")); err == nil {
		download.Filename = params["filename"]
	}
	return download, nil
}
