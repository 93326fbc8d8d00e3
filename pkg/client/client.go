// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package client is a typed Go SDK for the Folio HTTP API.

Every call that needs authentication takes the access token as an explicit
argument. The client holds no per-user state and is safe for concurrent use
by many users.

	c := client.New("http://localhost:8080")
	session, err := c.Login(ctx, "reader@example.com", "correct horse")
	books, err := c.ListBooks(ctx, session.AccessToken, client.BookQuery{Search: "dune"})
*/
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// defaultTimeout bounds JSON calls when no custom http.Client is supplied.
// Transfers use the caller's context instead.
const defaultTimeout = 30 * time.Second

// Client talks to one Folio server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customizes a [Client].
type Option func(*Client)

// WithHTTPClient replaces the underlying transport client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// New returns a client for the server at baseURL (scheme and host, no /api).
func New(baseURL string, options ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// FieldError is one per-field validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is a non-2xx response decoded from the server's error envelope.
type APIError struct {
	Status  int          `json:"-"`
	Message string       `json:"error"`
	Code    string       `json:"code"`
	Details []FieldError `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("folio: %d %s: %s", e.Status, e.Code, e.Message)
}

// Is lets errors.Is match on status code alone.
func (e *APIError) Is(target error) bool {
	other, ok := target.(*APIError)
	return ok && other.Status == e.Status && (other.Code == "" || other.Code == e.Code)
}

// Sentinel errors for errors.Is checks.
var (
	ErrUnauthorized = &APIError{Status: http.StatusUnauthorized}
	ErrNotFound     = &APIError{Status: http.StatusNotFound}
	ErrConflict     = &APIError{Status: http.StatusConflict}
	ErrRateLimited  = &APIError{Status: http.StatusTooManyRequests}
)

type envelope struct {
	Data json.RawMessage `json:"data"`
}

// newRequest builds a request against path, attaching token when non-empty.
func (c *Client) newRequest(ctx context.Context, method, path, token string, body io.Reader) (*http.Request, error) {
	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("folio: build request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	return request, nil
}

// doJSON sends in as JSON (when non-nil) and decodes the data envelope into out.
func (c *Client) doJSON(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("folio: encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultTimeout)
		defer cancel()
	}

	request, err := c.newRequest(ctx, method, path, token, body)
	if err != nil {
		return err
	}
	if in != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("folio: %s %s: %w", method, path, err)
	}
	defer response.Body.Close()

	return decode(response, out)
}

// decode turns a response into out or an [*APIError].
func decode(response *http.Response, out any) error {
	if response.StatusCode >= http.StatusBadRequest {
		return decodeError(response)
	}
	if out == nil || response.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, response.Body)
		return nil
	}

	var wrapped envelope
	if err := json.NewDecoder(response.Body).Decode(&wrapped); err != nil {
		return fmt.Errorf("folio: decode response: %w", err)
	}
	if err := json.Unmarshal(wrapped.Data, out); err != nil {
		return fmt.Errorf("folio: decode data: %w", err)
	}
	return nil
}

func decodeError(response *http.Response) error {
	apiErr := &APIError{Status: response.StatusCode}
	if err := json.NewDecoder(response.Body).Decode(apiErr); err != nil || apiErr.Message == "" {
		apiErr.Message = http.StatusText(response.StatusCode)
	}
	return apiErr
}

func escape(id string) string {
	return url.PathEscape(id)
}
