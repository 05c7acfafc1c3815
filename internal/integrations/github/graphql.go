// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-04
// Last Modified: 2026-10-19

package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// DefaultGraphQLEndpoint is the public GitHub GraphQL endpoint.
const DefaultGraphQLEndpoint = "https://api.github.com/graphql"

// ErrNotFound is returned when a query succeeds but the requested node is absent.
var ErrNotFound = errors.New("not found")

// GraphQLClient provides access to GitHub's GraphQL API.
type GraphQLClient struct {
	httpClient *http.Client
	endpoint   string
}

// NewGraphQLClient creates a new GraphQL client. httpClient is expected to
// carry authentication (see NewHTTPClient); an empty endpoint selects
// DefaultGraphQLEndpoint.
func NewGraphQLClient(httpClient *http.Client, endpoint string) *GraphQLClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if endpoint == "" {
		endpoint = DefaultGraphQLEndpoint
	}
	return &GraphQLClient{
		httpClient: httpClient,
		endpoint:   endpoint,
	}
}

// graphQLRequest represents a GraphQL request payload.
type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

// graphQLResponse represents a GraphQL response.
type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors,omitempty"`
}

// execute sends a GraphQL query/mutation and returns the response data.
func (c *GraphQLClient) execute(ctx context.Context, query string, variables map[string]interface{}) (json.RawMessage, error) {
	reqBody := graphQLRequest{
		Query:     query,
		Variables: variables,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Truncate response body to avoid leaking sensitive data in logs
		truncated := string(respBody)
		if len(truncated) > 200 {
			truncated = truncated[:200] + "..."
		}
		return nil, fmt.Errorf("GraphQL request failed with status %d: %s", resp.StatusCode, truncated)
	}

	var gqlResp graphQLResponse
	if err := json.Unmarshal(respBody, &gqlResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(gqlResp.Errors) > 0 {
		return nil, fmt.Errorf("GraphQL error: %s", gqlResp.Errors[0].Message)
	}

	return gqlResp.Data, nil
}
