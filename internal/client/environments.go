package client

import (
	"context"

	"github.com/fivetwenty-io/postman-client/internal/http"
	"github.com/fivetwenty-io/postman-client/pkg/postman"
)

// EnvironmentsClient implements postman.EnvironmentsClient.
type EnvironmentsClient struct {
	httpClient *http.Client
}

// NewEnvironmentsClient creates a new environments client.
func NewEnvironmentsClient(httpClient *http.Client) *EnvironmentsClient {
	return &EnvironmentsClient{
		httpClient: httpClient,
	}
}

// List implements postman.EnvironmentsClient.List. An empty workspaceID lists
// every environment the key can see.
func (c *EnvironmentsClient) List(ctx context.Context, workspaceID string) (*postman.Response, error) {
	query, err := optionalWorkspaceQuery(workspaceID)
	if err != nil {
		return nil, err
	}

	return c.httpClient.Get(ctx, "/environments"+query.Encode())
}

// Get implements postman.EnvironmentsClient.Get.
func (c *EnvironmentsClient) Get(ctx context.Context, environmentID string) (*postman.Response, error) {
	err := postman.ValidateID(environmentID, "environmentId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Get(ctx, "/environments/"+environmentID)
}

// Create implements postman.EnvironmentsClient.Create.
func (c *EnvironmentsClient) Create(ctx context.Context, workspaceID string, environment interface{}) (*postman.Response, error) {
	err := postman.ValidateID(workspaceID, "workspaceId")
	if err != nil {
		return nil, err
	}

	query := postman.NewQuery().Add("workspace", workspaceID)

	return c.httpClient.Post(ctx, "/environments"+query.Encode(), envelope("environment", environment))
}

// Replace implements postman.EnvironmentsClient.Replace.
func (c *EnvironmentsClient) Replace(ctx context.Context, environmentID string, environment interface{}) (*postman.Response, error) {
	err := postman.ValidateID(environmentID, "environmentId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Put(ctx, "/environments/"+environmentID, envelope("environment", environment))
}

// Delete implements postman.EnvironmentsClient.Delete.
func (c *EnvironmentsClient) Delete(ctx context.Context, environmentID string) (*postman.Response, error) {
	err := postman.ValidateID(environmentID, "environmentId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Delete(ctx, "/environments/"+environmentID)
}

// Fork implements postman.EnvironmentsClient.Fork.
func (c *EnvironmentsClient) Fork(ctx context.Context, environmentUID, workspaceID, forkName string) (*postman.Response, error) {
	err := postman.ValidateUID(environmentUID, "environmentUid")
	if err != nil {
		return nil, err
	}

	err = postman.ValidateID(workspaceID, "workspaceId")
	if err != nil {
		return nil, err
	}

	err = postman.ValidateRequired(forkName, "forkName")
	if err != nil {
		return nil, err
	}

	query := postman.NewQuery().Add("workspace", workspaceID)

	return c.httpClient.Post(ctx, "/environments/"+environmentUID+"/forks"+query.Encode(), map[string]string{"forkName": forkName})
}

// ListForks implements postman.EnvironmentsClient.ListForks.
func (c *EnvironmentsClient) ListForks(ctx context.Context, environmentUID string, opts *postman.ForkListOptions) (*postman.Response, error) {
	err := postman.ValidateUID(environmentUID, "environmentUid")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Get(ctx, "/environments/"+environmentUID+"/forks"+forkQuery(opts).Encode())
}

// Merge implements postman.EnvironmentsClient.Merge. It merges the fork
// sourceUID into environmentUID and optionally deletes the fork.
func (c *EnvironmentsClient) Merge(ctx context.Context, environmentUID, sourceUID string, deleteSource bool) (*postman.Response, error) {
	err := validateUIDs(environmentUID, "environmentUid", sourceUID, "sourceUid")
	if err != nil {
		return nil, err
	}

	body := map[string]interface{}{
		"source":       sourceUID,
		"deleteSource": deleteSource,
	}

	return c.httpClient.Post(ctx, "/environments/"+environmentUID+"/merges", body)
}

// Pull implements postman.EnvironmentsClient.Pull. It pulls changes from the
// parent sourceUID into the fork environmentUID.
func (c *EnvironmentsClient) Pull(ctx context.Context, environmentUID, sourceUID string) (*postman.Response, error) {
	err := validateUIDs(environmentUID, "environmentUid", sourceUID, "sourceUid")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Post(ctx, "/environments/"+environmentUID+"/pulls", map[string]string{"source": sourceUID})
}

func optionalWorkspaceQuery(workspaceID string) (*postman.Query, error) {
	query := postman.NewQuery()
	if workspaceID == "" {
		return query, nil
	}

	err := postman.ValidateID(workspaceID, "workspaceId")
	if err != nil {
		return nil, err
	}

	return query.Add("workspace", workspaceID), nil
}
