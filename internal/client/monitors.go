package client

import (
	"context"

	"github.com/fivetwenty-io/postman-client/internal/http"
	"github.com/fivetwenty-io/postman-client/pkg/postman"
)

// MonitorsClient implements postman.MonitorsClient.
type MonitorsClient struct {
	httpClient *http.Client
}

// NewMonitorsClient creates a new monitors client.
func NewMonitorsClient(httpClient *http.Client) *MonitorsClient {
	return &MonitorsClient{
		httpClient: httpClient,
	}
}

// List implements postman.MonitorsClient.List.
func (c *MonitorsClient) List(ctx context.Context, workspaceID string) (*postman.Response, error) {
	query, err := optionalWorkspaceQuery(workspaceID)
	if err != nil {
		return nil, err
	}

	return c.httpClient.Get(ctx, "/monitors"+query.Encode())
}

// Get implements postman.MonitorsClient.Get.
func (c *MonitorsClient) Get(ctx context.Context, monitorID string) (*postman.Response, error) {
	err := postman.ValidateID(monitorID, "monitorId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Get(ctx, "/monitors/"+monitorID)
}

// Create implements postman.MonitorsClient.Create. The monitor's collection
// and environment are referenced by UID and checked before the call.
func (c *MonitorsClient) Create(ctx context.Context, workspaceID string, monitor *postman.MonitorDefinition) (*postman.Response, error) {
	err := postman.ValidateID(workspaceID, "workspaceId")
	if err != nil {
		return nil, err
	}

	if monitor == nil {
		return nil, postman.ValidateRequired("", "monitor")
	}

	err = postman.ValidateUID(monitor.Collection, "collectionUid")
	if err != nil {
		return nil, err
	}

	if monitor.Environment != "" {
		err = postman.ValidateUID(monitor.Environment, "environmentUid")
		if err != nil {
			return nil, err
		}
	}

	query := postman.NewQuery().Add("workspace", workspaceID)

	return c.httpClient.Post(ctx, "/monitors"+query.Encode(), envelope("monitor", monitor))
}

// Update implements postman.MonitorsClient.Update.
func (c *MonitorsClient) Update(ctx context.Context, monitorID string, monitor interface{}) (*postman.Response, error) {
	err := postman.ValidateID(monitorID, "monitorId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Put(ctx, "/monitors/"+monitorID, envelope("monitor", monitor))
}

// Delete implements postman.MonitorsClient.Delete.
func (c *MonitorsClient) Delete(ctx context.Context, monitorID string) (*postman.Response, error) {
	err := postman.ValidateID(monitorID, "monitorId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Delete(ctx, "/monitors/"+monitorID)
}

// Run implements postman.MonitorsClient.Run.
func (c *MonitorsClient) Run(ctx context.Context, monitorID string) (*postman.Response, error) {
	err := postman.ValidateID(monitorID, "monitorId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Do(ctx, c.httpClient.NewRequest("POST", "/monitors/"+monitorID+"/run"))
}
