package client

import (
	"context"

	"github.com/fivetwenty-io/postman-client/internal/http"
	"github.com/fivetwenty-io/postman-client/pkg/postman"
)

// UsersClient implements postman.UsersClient.
type UsersClient struct {
	httpClient *http.Client
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *http.Client) *UsersClient {
	return &UsersClient{
		httpClient: httpClient,
	}
}

// Me implements postman.UsersClient.Me.
func (c *UsersClient) Me(ctx context.Context) (*postman.Response, error) {
	return c.httpClient.Get(ctx, "/me")
}

// List implements postman.UsersClient.List.
func (c *UsersClient) List(ctx context.Context) (*postman.Response, error) {
	return c.httpClient.Get(ctx, "/users")
}

// Get implements postman.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, userID string) (*postman.Response, error) {
	err := postman.ValidateNumericID(userID, "userId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Get(ctx, "/users/"+userID)
}
