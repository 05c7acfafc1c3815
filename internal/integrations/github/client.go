// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-19

package github

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-github/v60/github"
)

// Client wraps the GitHub REST API client.
type Client struct {
	client *github.Client
}

// NewClient creates a REST client on top of httpClient (see NewHTTPClient).
func NewClient(httpClient *http.Client) *Client {
	return &Client{
		client: github.NewClient(httpClient),
	}
}

// GetIssueNodeID fetches the GraphQL node ID of an issue or pull request.
// Pull requests are issues in the REST API, so one call covers both.
func (c *Client) GetIssueNodeID(ctx context.Context, owner, repo string, number int) (string, error) {
	issue, _, err := c.client.Issues.Get(ctx, owner, repo, number)
	if err != nil {
		return "", fmt.Errorf("failed to fetch issue: %w", err)
	}

	if issue.GetNodeID() == "" {
		return "", fmt.Errorf("%w: node ID for %s/%s#%d", ErrNotFound, owner, repo, number)
	}

	return issue.GetNodeID(), nil
}
