// Package postmanclient provides the main entry point for creating Postman API clients
package postmanclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/postman-client/internal/client"
	"github.com/fivetwenty-io/postman-client/pkg/postman"
)

// New creates a new Postman API client. The config is copied, so later
// changes by the caller do not affect the returned client.
func New(_ context.Context, config *postman.Config) (postman.Client, error) {
	if config == nil {
		return nil, postman.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, postman.ErrAPIKeyRequired
	}

	normalized := *config
	normalized.BaseURL = normalizeBaseURL(config.BaseURL)

	c, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewWithAPIKey creates a client for the public API with only an API key.
func NewWithAPIKey(ctx context.Context, apiKey string) (postman.Client, error) {
	return New(ctx, &postman.Config{
		APIKey: apiKey,
	})
}

// normalizeBaseURL strips trailing slashes so paths can be appended as is.
func normalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return postman.DefaultBaseURL
	}

	return baseURL
}
