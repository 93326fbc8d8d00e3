// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package client

import (
	"context"
	"net/http"
)

// Register creates an account and returns a session for it.
func (c *Client) Register(ctx context.Context, email, password, name string) (*Session, error) {
	session := &Session{}
	body := map[string]string{"email": email, "password": password, "name": name}
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/register", "", body, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Login exchanges credentials for a session.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	session := &Session{}
	body := map[string]string{"email": email, "password": password}
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", "", body, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Me returns the profile the token belongs to.
func (c *Client) Me(ctx context.Context, token string) (*User, error) {
	user := &User{}
	if err := c.doJSON(ctx, http.MethodGet, "/api/auth/me", token, nil, user); err != nil {
		return nil, err
	}
	return user, nil
}
