// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package client

import (
	"context"
	"net/http"
)

// ListCategories returns the user's categories with book counts.
func (c *Client) ListCategories(ctx context.Context, token string) ([]Category, error) {
	var categories []Category
	if err := c.doJSON(ctx, http.MethodGet, "/api/categories", token, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory adds a category. An empty color lets the server pick the default.
func (c *Client) CreateCategory(ctx context.Context, token, name, color string) (*Category, error) {
	body := map[string]string{"name": name}
	if color != "" {
		body["color"] = color
	}

	category := &Category{}
	if err := c.doJSON(ctx, http.MethodPost, "/api/categories", token, body, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a category. Books keep their category text.
func (c *Client) DeleteCategory(ctx context.Context, token, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/categories/"+escape(id), token, nil, nil)
}

// Stats returns the reading dashboard.
func (c *Client) Stats(ctx context.Context, token string) (*Stats, error) {
	stats := &Stats{}
	if err := c.doJSON(ctx, http.MethodGet, "/api/stats", token, nil, stats); err != nil {
		return nil, err
	}
	return stats, nil
}
