package client

import (
	"context"
	"net/url"

	"github.com/fivetwenty-io/postman-client/internal/http"
	"github.com/fivetwenty-io/postman-client/pkg/postman"
)

// SpecsClient implements postman.SpecsClient.
type SpecsClient struct {
	httpClient *http.Client
}

// NewSpecsClient creates a new specs client.
func NewSpecsClient(httpClient *http.Client) *SpecsClient {
	return &SpecsClient{
		httpClient: httpClient,
	}
}

// List implements postman.SpecsClient.List.
func (c *SpecsClient) List(ctx context.Context, opts *postman.SpecListOptions) (*postman.Response, error) {
	if opts == nil {
		opts = &postman.SpecListOptions{}
	}

	err := postman.ValidateID(opts.WorkspaceID, "workspaceId")
	if err != nil {
		return nil, err
	}

	query := postman.NewQuery().Add("workspaceId", opts.WorkspaceID)
	addString(query, "cursor", opts.Cursor)
	query.Add("limit", opts.Limit)

	return c.httpClient.Get(ctx, "/specs"+query.Encode())
}

// Get implements postman.SpecsClient.Get.
func (c *SpecsClient) Get(ctx context.Context, specID string) (*postman.Response, error) {
	err := postman.ValidateID(specID, "specId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Get(ctx, "/specs/"+specID)
}

// Create implements postman.SpecsClient.Create.
func (c *SpecsClient) Create(ctx context.Context, workspaceID string, spec *postman.SpecCreateRequest) (*postman.Response, error) {
	err := postman.ValidateID(workspaceID, "workspaceId")
	if err != nil {
		return nil, err
	}

	query := postman.NewQuery().Add("workspaceId", workspaceID)

	return c.httpClient.Post(ctx, "/specs"+query.Encode(), spec)
}

// Update implements postman.SpecsClient.Update. Only the name can change.
func (c *SpecsClient) Update(ctx context.Context, specID, name string) (*postman.Response, error) {
	err := postman.ValidateID(specID, "specId")
	if err != nil {
		return nil, err
	}

	err = postman.ValidateRequired(name, "name")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Patch(ctx, "/specs/"+specID, map[string]string{"name": name})
}

// Delete implements postman.SpecsClient.Delete.
func (c *SpecsClient) Delete(ctx context.Context, specID string) (*postman.Response, error) {
	err := postman.ValidateID(specID, "specId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Delete(ctx, "/specs/"+specID)
}

// GetDefinition implements postman.SpecsClient.GetDefinition.
func (c *SpecsClient) GetDefinition(ctx context.Context, specID string) (*postman.Response, error) {
	err := postman.ValidateID(specID, "specId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Get(ctx, "/specs/"+specID+"/definitions")
}

// ListFiles implements postman.SpecsClient.ListFiles.
func (c *SpecsClient) ListFiles(ctx context.Context, specID string) (*postman.Response, error) {
	err := postman.ValidateID(specID, "specId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Get(ctx, "/specs/"+specID+"/files")
}

// GetFile implements postman.SpecsClient.GetFile.
func (c *SpecsClient) GetFile(ctx context.Context, specID, filePath string) (*postman.Response, error) {
	path, err := specFilePath(specID, filePath)
	if err != nil {
		return nil, err
	}

	return c.httpClient.Get(ctx, path)
}

// CreateFile implements postman.SpecsClient.CreateFile.
func (c *SpecsClient) CreateFile(ctx context.Context, specID string, file *postman.SpecFile) (*postman.Response, error) {
	err := postman.ValidateID(specID, "specId")
	if err != nil {
		return nil, err
	}

	if file == nil {
		return nil, postman.ValidateRequired("", "file")
	}

	err = postman.ValidateRequired(file.Path, "path")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Post(ctx, "/specs/"+specID+"/files", file)
}

// UpdateFile implements postman.SpecsClient.UpdateFile.
func (c *SpecsClient) UpdateFile(ctx context.Context, specID, filePath string, update *postman.SpecFileUpdate) (*postman.Response, error) {
	path, err := specFilePath(specID, filePath)
	if err != nil {
		return nil, err
	}

	return c.httpClient.Patch(ctx, path, update)
}

// DeleteFile implements postman.SpecsClient.DeleteFile.
func (c *SpecsClient) DeleteFile(ctx context.Context, specID, filePath string) (*postman.Response, error) {
	path, err := specFilePath(specID, filePath)
	if err != nil {
		return nil, err
	}

	return c.httpClient.Delete(ctx, path)
}

// GenerateCollection implements postman.SpecsClient.GenerateCollection.
func (c *SpecsClient) GenerateCollection(ctx context.Context, specID string, request *postman.CollectionGenerationRequest) (*postman.Response, error) {
	err := postman.ValidateID(specID, "specId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Post(ctx, "/specs/"+specID+"/generations/collection", request)
}

// ListGeneratedCollections implements postman.SpecsClient.ListGeneratedCollections.
func (c *SpecsClient) ListGeneratedCollections(ctx context.Context, specID string) (*postman.Response, error) {
	err := postman.ValidateID(specID, "specId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Get(ctx, "/specs/"+specID+"/generations/collection")
}

// GetTask implements postman.SpecsClient.GetTask.
func (c *SpecsClient) GetTask(ctx context.Context, specID, taskID string) (*postman.Response, error) {
	err := validateIDs(specID, "specId", taskID, "taskId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Get(ctx, "/specs/"+specID+"/tasks/"+taskID)
}

// SyncWithCollection implements postman.SpecsClient.SyncWithCollection.
func (c *SpecsClient) SyncWithCollection(ctx context.Context, specID, collectionUID string) (*postman.Response, error) {
	err := postman.ValidateID(specID, "specId")
	if err != nil {
		return nil, err
	}

	err = postman.ValidateUID(collectionUID, "collectionUid")
	if err != nil {
		return nil, err
	}

	query := postman.NewQuery().Add("collectionUid", collectionUID)

	return c.httpClient.Do(ctx, c.httpClient.NewRequest("PUT", "/specs/"+specID+"/synchronizations"+query.Encode()))
}

// specFilePath escapes the file path as a single segment, so "a/b.yaml"
// becomes "a%2Fb.yaml".
func specFilePath(specID, filePath string) (string, error) {
	err := postman.ValidateID(specID, "specId")
	if err != nil {
		return "", err
	}

	err = postman.ValidateRequired(filePath, "filePath")
	if err != nil {
		return "", err
	}

	return "/specs/" + specID + "/files/" + url.PathEscape(filePath), nil
}
