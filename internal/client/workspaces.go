package client

import (
	"context"

	"github.com/fivetwenty-io/postman-client/internal/http"
	"github.com/fivetwenty-io/postman-client/pkg/postman"
)

// WorkspacesClient implements postman.WorkspacesClient.
type WorkspacesClient struct {
	httpClient *http.Client
}

// NewWorkspacesClient creates a new workspaces client.
func NewWorkspacesClient(httpClient *http.Client) *WorkspacesClient {
	return &WorkspacesClient{
		httpClient: httpClient,
	}
}

// List implements postman.WorkspacesClient.List.
func (c *WorkspacesClient) List(ctx context.Context, opts *postman.WorkspaceListOptions) (*postman.Response, error) {
	query := postman.NewQuery()

	if opts != nil {
		addString(query, "type", opts.Type)
		addString(query, "createdBy", opts.CreatedBy)
		addString(query, "include", opts.Include)
	}

	return c.httpClient.Get(ctx, "/workspaces"+query.Encode())
}

// Get implements postman.WorkspacesClient.Get. include is passed through,
// e.g. "mocks:deactivated".
func (c *WorkspacesClient) Get(ctx context.Context, workspaceID, include string) (*postman.Response, error) {
	err := postman.ValidateID(workspaceID, "workspaceId")
	if err != nil {
		return nil, err
	}

	query := addString(postman.NewQuery(), "include", include)

	return c.httpClient.Get(ctx, "/workspaces/"+workspaceID+query.Encode())
}

// Create implements postman.WorkspacesClient.Create.
func (c *WorkspacesClient) Create(ctx context.Context, workspace interface{}) (*postman.Response, error) {
	return c.httpClient.Post(ctx, "/workspaces", envelope("workspace", workspace))
}

// Update implements postman.WorkspacesClient.Update.
func (c *WorkspacesClient) Update(ctx context.Context, workspaceID string, workspace interface{}) (*postman.Response, error) {
	err := postman.ValidateID(workspaceID, "workspaceId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Put(ctx, "/workspaces/"+workspaceID, envelope("workspace", workspace))
}

// Delete implements postman.WorkspacesClient.Delete.
func (c *WorkspacesClient) Delete(ctx context.Context, workspaceID string) (*postman.Response, error) {
	err := postman.ValidateID(workspaceID, "workspaceId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Delete(ctx, "/workspaces/"+workspaceID)
}

// GetGlobalVariables implements postman.WorkspacesClient.GetGlobalVariables.
func (c *WorkspacesClient) GetGlobalVariables(ctx context.Context, workspaceID string) (*postman.Response, error) {
	err := postman.ValidateID(workspaceID, "workspaceId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Get(ctx, "/workspaces/"+workspaceID+"/global-variables")
}

// UpdateGlobalVariables implements postman.WorkspacesClient.UpdateGlobalVariables.
// The given values replace all existing global variables.
func (c *WorkspacesClient) UpdateGlobalVariables(ctx context.Context, workspaceID string, values []postman.GlobalVariable) (*postman.Response, error) {
	err := postman.ValidateID(workspaceID, "workspaceId")
	if err != nil {
		return nil, err
	}

	if values == nil {
		values = []postman.GlobalVariable{}
	}

	return c.httpClient.Put(ctx, "/workspaces/"+workspaceID+"/global-variables", map[string]interface{}{"values": values})
}

// GetTags implements postman.WorkspacesClient.GetTags.
func (c *WorkspacesClient) GetTags(ctx context.Context, workspaceID string) (*postman.Response, error) {
	err := postman.ValidateID(workspaceID, "workspaceId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Get(ctx, "/workspaces/"+workspaceID+"/tags")
}

// UpdateTags implements postman.WorkspacesClient.UpdateTags.
func (c *WorkspacesClient) UpdateTags(ctx context.Context, workspaceID string, tags []postman.Tag) (*postman.Response, error) {
	err := postman.ValidateID(workspaceID, "workspaceId")
	if err != nil {
		return nil, err
	}

	if tags == nil {
		tags = []postman.Tag{}
	}

	return c.httpClient.Put(ctx, "/workspaces/"+workspaceID+"/tags", map[string]interface{}{"tags": tags})
}

// ListRoles implements postman.WorkspacesClient.ListRoles.
func (c *WorkspacesClient) ListRoles(ctx context.Context, workspaceID string) (*postman.Response, error) {
	err := postman.ValidateID(workspaceID, "workspaceId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Get(ctx, "/workspaces/"+workspaceID+"/roles")
}

// UpdateRoles implements postman.WorkspacesClient.UpdateRoles.
func (c *WorkspacesClient) UpdateRoles(ctx context.Context, workspaceID string, roles []postman.RoleOperation) (*postman.Response, error) {
	err := postman.ValidateID(workspaceID, "workspaceId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Patch(ctx, "/workspaces/"+workspaceID+"/roles", map[string]interface{}{"roles": roles})
}
