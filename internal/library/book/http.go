// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/folio/internal/platform/request"
	"github.com/taibuivan/folio/internal/platform/respond"
	"github.com/taibuivan/folio/internal/platform/validate"
	"github.com/taibuivan/folio/pkg/query"
)

// multipartOverhead leaves room for form fields and boundaries on top of the file.
const multipartOverhead = 1 << 20

// multipartMemory is how much of a multipart body is buffered before spilling to disk.
const multipartMemory = 8 << 20

// Handler implements the /api/books endpoints.
type Handler struct {
	bookService *Service
	maxBytes    int64
}

// NewHandler constructs a new [Handler]. maxBytes caps the uploaded file size.
func NewHandler(service *Service, maxBytes int64) *Handler {
	return &Handler{bookService: service, maxBytes: maxBytes}
}

// Routes returns the book router. Callers must have applied RequireAuth.
//
// Transfer routes get a longer deadline than the rest, so this router sets
// its own timeouts instead of inheriting the global one.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(constants.TransferRequestTimeout))
		r.Post("/upload", handler.upload)
		r.Get("/{id}/download", handler.download)
	})

	router.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
		r.Get("/", handler.list)
		r.Get("/{id}", handler.get)
		r.Patch("/{id}", handler.updateMetadata)
		r.Delete("/{id}", handler.delete)
		r.Put("/{id}/progress", handler.updateProgress)
		r.Post("/{id}/bookmark", handler.toggleBookmark)
	})

	return router
}

// # Request Payloads

type progressRequest struct {
	Progress    *float64 `json:"progress"`
	ReadingTime int      `json:"reading_time"`
}

type bookmarkRequest struct {
	PageNumber int `json:"page_number"`
}

/*
upload accepts a multipart book upload.

POST /api/books/upload

Form fields: file (required), title (required), author, category, tags (comma separated).

Response:
  - 201: Book
  - 400: Validation failure or file too large
  - 415: Not a PDF or EPUB
*/
func (handler *Handler) upload(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	request.Body = http.MaxBytesReader(writer, request.Body, handler.maxBytes+multipartOverhead)
	if err := request.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(writer, request, handler.bookService.TooLarge())
			return
		}
		respond.Error(writer, request, validate.RequiredError(FieldFile, "Expected a multipart form"))
		return
	}
	defer func() { _ = request.MultipartForm.RemoveAll() }()

	file, header, err := request.FormFile(FieldFile)
	if err != nil {
		respond.Error(writer, request, validate.RequiredError(FieldFile, "This field is required"))
		return
	}
	defer file.Close()

	book, err := handler.bookService.Upload(request.Context(), userID, UploadInput{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Title:       request.FormValue(FieldTitle),
		Author:      request.FormValue(FieldAuthor),
		Category:    request.FormValue(FieldCategory),
		Tags:        request.FormValue("tags"),
	}, file)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, book)
}

// list returns the shelf. GET /api/books?search=&category=&tags=
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := request.URL.Query()
	books, err := handler.bookService.List(request.Context(), userID, Query{
		Search:   params.Get("search"),
		Category: params.Get("category"),
		Tags:     query.StringSlice(params.Get("tags")),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, books)
}

// get returns one book. GET /api/books/{id}
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	book, err := handler.bookService.Get(request.Context(), userID, requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, book)
}

/*
download streams the stored file.

GET /api/books/{id}/download

The response is inline so browsers can open PDFs directly, and carries the
original filename.
*/
func (handler *Handler) download(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	book, reader, size, err := handler.bookService.Download(request.Context(), userID, requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	defer reader.Close()

	writer.Header().Set("Content-Type", book.FileType)
	writer.Header().Set("Content-Length", strconv.FormatInt(size, 10))
	writer.Header().Set("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": book.Filename}))
	writer.WriteHeader(http.StatusOK)

	if _, err := io.Copy(writer, reader); err != nil {
		ctxutil.GetLogger(request.Context()).WarnContext(request.Context(), "book_download_interrupted",
			slog.String("book_id", book.ID), slog.Any("error", err))
	}
}

// updateMetadata edits descriptive fields. PATCH /api/books/{id}
func (handler *Handler) updateMetadata(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input MetadataInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	book, err := handler.bookService.UpdateMetadata(request.Context(), userID, requestutil.ID(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, book)
}

// delete removes a book and its file. DELETE /api/books/{id}
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.bookService.Delete(request.Context(), userID, requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// updateProgress records a reading position. PUT /api/books/{id}/progress
func (handler *Handler) updateProgress(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input progressRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	book, err := handler.bookService.UpdateProgress(request.Context(), userID, requestutil.ID(request, "id"), input.Progress, input.ReadingTime)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, book)
}

// toggleBookmark flips one page. POST /api/books/{id}/bookmark
func (handler *Handler) toggleBookmark(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input bookmarkRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	book, err := handler.bookService.ToggleBookmark(request.Context(), userID, requestutil.ID(request, "id"), input.PageNumber)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, book)
}
