// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-19

package github

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"
)

// NewHTTPClient creates an HTTP client that authenticates every request with
// the given token. If token is empty, it returns nil so callers fall back to
// an unauthenticated default client.
func NewHTTPClient(ctx context.Context, token string) *http.Client {
	if token == "" {
		return nil
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	return oauth2.NewClient(ctx, ts)
}
