package client

import (
	"context"
	"testing"

	"github.com/fivetwenty-io/postman-client/pkg/postman"
)

func TestMonitorsClient_Operations(t *testing.T) {
	t.Parallel()

	RunOperationTests(t, []TestOperation{
		{
			Name: "list",
			Call: func(ctx context.Context, c *Client) (*postman.Response, error) {
				return c.Monitors().List(ctx, "")
			},
			Verb: "GET",
			Path: "/monitors",
		},
		{
			Name: "list in workspace",
			Call: func(ctx context.Context, c *Client) (*postman.Response, error) {
				return c.Monitors().List(ctx, testWorkspaceID)
			},
			Verb:  "GET",
			Path:  "/monitors",
			Query: "workspace=" + testWorkspaceID,
		},
		{
			Name: "get",
			Call: func(ctx context.Context, c *Client) (*postman.Response, error) {
				return c.Monitors().Get(ctx, testItemID)
			},
			Verb: "GET",
			Path: "/monitors/" + testItemID,
		},
		{
			Name: "create",
			Call: func(ctx context.Context, c *Client) (*postman.Response, error) {
				return c.Monitors().Create(ctx, testWorkspaceID, &postman.MonitorDefinition{
					Name:        "Nightly",
					Collection:  testCollectionUID,
					Environment: testItemUID,
					Schedule:    &postman.MonitorSchedule{Cron: "0 0 * * *", Timezone: "UTC"},
				})
			},
			Verb:  "POST",
			Path:  "/monitors",
			Query: "workspace=" + testWorkspaceID,
			Body: `{"monitor":{"name":"Nightly","collection":"` + testCollectionUID + `","environment":"` + testItemUID +
				`","schedule":{"cron":"0 0 * * *","timezone":"UTC"}}}`,
		},
		{
			Name: "create without environment",
			Call: func(ctx context.Context, c *Client) (*postman.Response, error) {
				return c.Monitors().Create(ctx, testWorkspaceID, &postman.MonitorDefinition{Name: "Smoke", Collection: testCollectionUID})
			},
			Verb:  "POST",
			Path:  "/monitors",
			Query: "workspace=" + testWorkspaceID,
			Body:  `{"monitor":{"name":"Smoke","collection":"` + testCollectionUID + `"}}`,
		},
		{
			Name: "update",
			Call: func(ctx context.Context, c *Client) (*postman.Response, error) {
				return c.Monitors().Update(ctx, testItemID, map[string]string{"name": "Hourly"})
			},
			Verb: "PUT",
			Path: "/monitors/" + testItemID,
			Body: `{"monitor":{"name":"Hourly"}}`,
		},
		{
			Name: "delete",
			Call: func(ctx context.Context, c *Client) (*postman.Response, error) {
				return c.Monitors().Delete(ctx, testItemID)
			},
			Verb: "DELETE",
			Path: "/monitors/" + testItemID,
		},
		{
			Name: "run sends no body",
			Call: func(ctx context.Context, c *Client) (*postman.Response, error) {
				return c.Monitors().Run(ctx, testItemID)
			},
			Verb: "POST",
			Path: "/monitors/" + testItemID + "/run",
		},
	})
}

func TestMonitorsClient_Validation(t *testing.T) {
	t.Parallel()

	RunValidationTests(t, []TestValidation{
		{
			Name: "create requires monitor",
			Call: func(ctx context.Context, c *Client) (*postman.Response, error) {
				return c.Monitors().Create(ctx, testWorkspaceID, nil)
			},
			WantErr: "monitor is required",
		},
		{
			Name: "create requires collection uid",
			Call: func(ctx context.Context, c *Client) (*postman.Response, error) {
				return c.Monitors().Create(ctx, testWorkspaceID, &postman.MonitorDefinition{Name: "x", Collection: testCollectionID})
			},
			WantErr: uidFormatError("collectionUid"),
		},
		{
			Name: "create checks environment uid",
			Call: func(ctx context.Context, c *Client) (*postman.Response, error) {
				return c.Monitors().Create(ctx, testWorkspaceID, &postman.MonitorDefinition{
					Name:        "x",
					Collection:  testCollectionUID,
					Environment: testMalformedUID,
				})
			},
			WantErr: uidFormatError("environmentUid"),
		},
		{
			Name: "run requires id",
			Call: func(ctx context.Context, c *Client) (*postman.Response, error) {
				return c.Monitors().Run(ctx, "")
			},
			WantErr: "monitorId is required",
		},
	})
}
