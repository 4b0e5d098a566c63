package client

import (
	"context"
	"testing"

	"github.com/fivetwenty-io/postman-client/pkg/postman"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestMocksClient_Operations(t *testing.T) {
	t.Parallel()

	mockPath := "/mocks/" + testItemID
	serverResponse := map[string]interface{}{"name": "Internal error", "statusCode": 500}
	serverResponseBody := `{"serverResponse":{"name":"Internal error","statusCode":500}}`

	RunOperationTests(t, []TestOperation{
		{
			Name: "list",
			Call: func(ctx context.Context, c *Client) (*postman.Response, error) {
				return c.Mocks().List(ctx, nil)
			},
			Verb: "GET",
			Path: "/mocks",
		},
		{
			Name: "list by team and workspace",
			Call: func(ctx context.Context, c *Client) (*postman.Response, error) {
				return c.Mocks().List(ctx, &postman.MockListOptions{TeamID: "4321", WorkspaceID: testWorkspaceID})
			},
			Verb:  "GET",
			Path:  "/mocks",
			Query: "teamId=4321&workspace=" + testWorkspaceID,
		},
		{
			Name: "get",
			Call: func(ctx context.Context, c *Client) (*postman.Response, error) {
				return c.Mocks().Get(ctx, testItemID)
			},
			Verb: "GET",
			Path: mockPath,
		},
		{
			Name: "create",
			Call: func(ctx context.Context, c *Client) (*postman.Response, error) {
				return c.Mocks().Create(ctx, testWorkspaceID, map[string]interface{}{"name": "Mock", "collection": testCollectionUID})
			},
			Verb:  "POST",
			Path:  "/mocks",
			Query: "workspace=" + testWorkspaceID,
			Body:  `{"mock":{"name":"Mock","collection":"` + testCollectionUID + `"}}`,
		},
		{
			Name: "update",
			Call: func(ctx context.Context, c *Client) (*postman.Response, error) {
				return c.Mocks().Update(ctx, testItemID, map[string]bool{"private": true})
			},
			Verb: "PUT",
			Path: mockPath,
			Body: `{"mock":{"private":true}}`,
		},
		{
			Name: "delete",
			Call: func(ctx context.Context, c *Client) (*postman.Response, error) {
				return c.Mocks().Delete(ctx, testItemID)
			},
			Verb: "DELETE",
			Path: mockPath,
		},
		{
			Name: "list call logs",
			Call: func(ctx context.Context, c *Client) (*postman.Response, error) {
				return c.Mocks().ListCallLogs(ctx, testItemID, nil)
			},
			Verb: "GET",
			Path: mockPath + "/call-logs",
		},
		{
			Name: "list call logs with filters",
			Call: func(ctx context.Context, c *Client) (*postman.Response, error) {
				return c.Mocks().ListCallLogs(ctx, testItemID, &postman.CallLogListOptions{
					Limit:              postman.Int(50),
					Since:              "2024-01-01T00:00:00Z",
					ResponseStatusCode: postman.Int(404),
					RequestMethod:      "GET",
					RequestPath:        "/v1/users",
					Direction:          "asc",
					Include:            "request.headers",
				})
			},
			Verb: "GET",
			Path: mockPath + "/call-logs",
			Query: "limit=50&since=2024-01-01T00%3A00%3A00Z&responseStatusCode=404" +
				"&requestMethod=GET&requestPath=%2Fv1%2Fusers&direction=asc&include=request.headers",
		},
		{
			Name: "publish sends no body",
			Call: func(ctx context.Context, c *Client) (*postman.Response, error) {
				return c.Mocks().Publish(ctx, testItemID)
			},
			Verb: "POST",
			Path: mockPath + "/publish",
		},
		{
			Name: "unpublish",
			Call: func(ctx context.Context, c *Client) (*postman.Response, error) {
				return c.Mocks().Unpublish(ctx, testItemID)
			},
			Verb: "DELETE",
			Path: mockPath + "/unpublish",
		},
		{
			Name: "list server responses",
			Call: func(ctx context.Context, c *Client) (*postman.Response, error) {
				return c.Mocks().ListServerResponses(ctx, testItemID)
			},
			Verb: "GET",
			Path: mockPath + "/serverResponses",
		},
		{
			Name: "get server response",
			Call: func(ctx context.Context, c *Client) (*postman.Response, error) {
				return c.Mocks().GetServerResponse(ctx, testItemID, testOtherID)
			},
			Verb: "GET",
			Path: mockPath + "/serverResponses/" + testOtherID,
		},
		{
			Name: "create server response",
			Call: func(ctx context.Context, c *Client) (*postman.Response, error) {
				return c.Mocks().CreateServerResponse(ctx, testItemID, serverResponse)
			},
			Verb: "POST",
			Path: mockPath + "/serverResponses",
			Body: serverResponseBody,
		},
		{
			Name: "update server response",
			Call: func(ctx context.Context, c *Client) (*postman.Response, error) {
				return c.Mocks().UpdateServerResponse(ctx, testItemID, testOtherID, serverResponse)
			},
			Verb: "PUT",
			Path: mockPath + "/serverResponses/" + testOtherID,
			Body: serverResponseBody,
		},
		{
			Name: "delete server response",
			Call: func(ctx context.Context, c *Client) (*postman.Response, error) {
				return c.Mocks().DeleteServerResponse(ctx, testItemID, testOtherID)
			},
			Verb: "DELETE",
			Path: mockPath + "/serverResponses/" + testOtherID,
		},
	})
}

func TestMocksClient_Validation(t *testing.T) {
	t.Parallel()

	RunValidationTests(t, []TestValidation{
		{
			Name: "list rejects malformed workspace",
			Call: func(ctx context.Context, c *Client) (*postman.Response, error) {
				return c.Mocks().List(ctx, &postman.MockListOptions{WorkspaceID: testBadID})
			},
			WantErr: idFormatError("workspaceId"),
		},
		{
			Name: "get rejects uid",
			Call: func(ctx context.Context, c *Client) (*postman.Response, error) {
				return c.Mocks().Get(ctx, testItemUID)
			},
			WantErr: idFormatError("mockId"),
		},
		{
			Name: "create requires workspace",
			Call: func(ctx context.Context, c *Client) (*postman.Response, error) {
				return c.Mocks().Create(ctx, "", map[string]string{})
			},
			WantErr: "workspaceId is required",
		},
		{
			Name: "publish requires mock",
			Call: func(ctx context.Context, c *Client) (*postman.Response, error) {
				return c.Mocks().Publish(ctx, "")
			},
			WantErr: "mockId is required",
		},
		{
			Name: "server response requires id",
			Call: func(ctx context.Context, c *Client) (*postman.Response, error) {
				return c.Mocks().DeleteServerResponse(ctx, testItemID, "")
			},
			WantErr: "serverResponseId is required",
		},
		{
			Name: "server response checks mock first",
			Call: func(ctx context.Context, c *Client) (*postman.Response, error) {
				return c.Mocks().GetServerResponse(ctx, testBadID, testBadID)
			},
			WantErr: idFormatError("mockId"),
		},
	})
}
