package client

import (
	"context"

	"github.com/fivetwenty-io/postman-client/internal/http"
	"github.com/fivetwenty-io/postman-client/pkg/postman"
)

// MocksClient implements postman.MocksClient.
type MocksClient struct {
	httpClient *http.Client
}

// NewMocksClient creates a new mocks client.
func NewMocksClient(httpClient *http.Client) *MocksClient {
	return &MocksClient{
		httpClient: httpClient,
	}
}

// List implements postman.MocksClient.List.
func (c *MocksClient) List(ctx context.Context, opts *postman.MockListOptions) (*postman.Response, error) {
	query := postman.NewQuery()

	if opts != nil {
		if opts.TeamID != "" {
			query.Add("teamId", opts.TeamID)
		}

		if opts.WorkspaceID != "" {
			err := postman.ValidateID(opts.WorkspaceID, "workspaceId")
			if err != nil {
				return nil, err
			}

			query.Add("workspace", opts.WorkspaceID)
		}
	}

	return c.httpClient.Get(ctx, "/mocks"+query.Encode())
}

// Get implements postman.MocksClient.Get.
func (c *MocksClient) Get(ctx context.Context, mockID string) (*postman.Response, error) {
	err := postman.ValidateID(mockID, "mockId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Get(ctx, "/mocks/"+mockID)
}

// Create implements postman.MocksClient.Create.
func (c *MocksClient) Create(ctx context.Context, workspaceID string, mock interface{}) (*postman.Response, error) {
	err := postman.ValidateID(workspaceID, "workspaceId")
	if err != nil {
		return nil, err
	}

	query := postman.NewQuery().Add("workspace", workspaceID)

	return c.httpClient.Post(ctx, "/mocks"+query.Encode(), envelope("mock", mock))
}

// Update implements postman.MocksClient.Update.
func (c *MocksClient) Update(ctx context.Context, mockID string, mock interface{}) (*postman.Response, error) {
	err := postman.ValidateID(mockID, "mockId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Put(ctx, "/mocks/"+mockID, envelope("mock", mock))
}

// Delete implements postman.MocksClient.Delete.
func (c *MocksClient) Delete(ctx context.Context, mockID string) (*postman.Response, error) {
	err := postman.ValidateID(mockID, "mockId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Delete(ctx, "/mocks/"+mockID)
}

// ListCallLogs implements postman.MocksClient.ListCallLogs.
func (c *MocksClient) ListCallLogs(ctx context.Context, mockID string, opts *postman.CallLogListOptions) (*postman.Response, error) {
	err := postman.ValidateID(mockID, "mockId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Get(ctx, "/mocks/"+mockID+"/call-logs"+callLogQuery(opts).Encode())
}

// Publish implements postman.MocksClient.Publish.
func (c *MocksClient) Publish(ctx context.Context, mockID string) (*postman.Response, error) {
	err := postman.ValidateID(mockID, "mockId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Do(ctx, c.httpClient.NewRequest("POST", "/mocks/"+mockID+"/publish"))
}

// Unpublish implements postman.MocksClient.Unpublish.
func (c *MocksClient) Unpublish(ctx context.Context, mockID string) (*postman.Response, error) {
	err := postman.ValidateID(mockID, "mockId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Delete(ctx, "/mocks/"+mockID+"/unpublish")
}

// ListServerResponses implements postman.MocksClient.ListServerResponses.
func (c *MocksClient) ListServerResponses(ctx context.Context, mockID string) (*postman.Response, error) {
	err := postman.ValidateID(mockID, "mockId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Get(ctx, "/mocks/"+mockID+"/serverResponses")
}

// GetServerResponse implements postman.MocksClient.GetServerResponse.
func (c *MocksClient) GetServerResponse(ctx context.Context, mockID, serverResponseID string) (*postman.Response, error) {
	err := validateIDs(mockID, "mockId", serverResponseID, "serverResponseId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Get(ctx, "/mocks/"+mockID+"/serverResponses/"+serverResponseID)
}

// CreateServerResponse implements postman.MocksClient.CreateServerResponse.
func (c *MocksClient) CreateServerResponse(ctx context.Context, mockID string, serverResponse interface{}) (*postman.Response, error) {
	err := postman.ValidateID(mockID, "mockId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Post(ctx, "/mocks/"+mockID+"/serverResponses", envelope("serverResponse", serverResponse))
}

// UpdateServerResponse implements postman.MocksClient.UpdateServerResponse.
func (c *MocksClient) UpdateServerResponse(ctx context.Context, mockID, serverResponseID string, serverResponse interface{}) (*postman.Response, error) {
	err := validateIDs(mockID, "mockId", serverResponseID, "serverResponseId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Put(ctx, "/mocks/"+mockID+"/serverResponses/"+serverResponseID, envelope("serverResponse", serverResponse))
}

// DeleteServerResponse implements postman.MocksClient.DeleteServerResponse.
func (c *MocksClient) DeleteServerResponse(ctx context.Context, mockID, serverResponseID string) (*postman.Response, error) {
	err := validateIDs(mockID, "mockId", serverResponseID, "serverResponseId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Delete(ctx, "/mocks/"+mockID+"/serverResponses/"+serverResponseID)
}

func callLogQuery(opts *postman.CallLogListOptions) *postman.Query {
	query := postman.NewQuery()
	if opts == nil {
		return query
	}

	query.Add("limit", opts.Limit)
	addString(query, "cursor", opts.Cursor)
	addString(query, "until", opts.Until)
	addString(query, "since", opts.Since)
	query.Add("responseStatusCode", opts.ResponseStatusCode)
	addString(query, "responseType", opts.ResponseType)
	addString(query, "requestMethod", opts.RequestMethod)
	addString(query, "requestPath", opts.RequestPath)
	addString(query, "sort", opts.Sort)
	addString(query, "direction", opts.Direction)
	addString(query, "include", opts.Include)

	return query
}
