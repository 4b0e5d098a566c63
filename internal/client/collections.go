package client

import (
	"context"

	"github.com/fivetwenty-io/postman-client/internal/http"
	"github.com/fivetwenty-io/postman-client/pkg/postman"
)

// CollectionsClient implements postman.CollectionsClient.
type CollectionsClient struct {
	httpClient *http.Client
	comments   *commentsClient
}

// NewCollectionsClient creates a new collections client.
func NewCollectionsClient(httpClient *http.Client) *CollectionsClient {
	return &CollectionsClient{
		httpClient: httpClient,
		comments:   &commentsClient{httpClient: httpClient},
	}
}

// List implements postman.CollectionsClient.List.
func (c *CollectionsClient) List(ctx context.Context, opts *postman.CollectionListOptions) (*postman.Response, error) {
	query := postman.NewQuery()

	if opts != nil {
		if opts.WorkspaceID != "" {
			err := postman.ValidateID(opts.WorkspaceID, "workspaceId")
			if err != nil {
				return nil, err
			}

			query.Add("workspace", opts.WorkspaceID)
		}

		if opts.Name != "" {
			query.Add("name", opts.Name)
		}

		query.Add("limit", opts.Limit).Add("offset", opts.Offset)
	}

	return c.httpClient.Get(ctx, "/collections"+query.Encode())
}

// Get implements postman.CollectionsClient.Get.
func (c *CollectionsClient) Get(ctx context.Context, collectionID string, opts *postman.CollectionGetOptions) (*postman.Response, error) {
	err := postman.ValidateID(collectionID, "collectionId")
	if err != nil {
		return nil, err
	}

	query := postman.NewQuery()

	if opts != nil {
		if opts.AccessKey != "" {
			query.Add("access_key", opts.AccessKey)
		}

		if opts.Model != "" {
			query.Add("model", opts.Model)
		}
	}

	return c.httpClient.Get(ctx, "/collections/"+collectionID+query.Encode())
}

// Create implements postman.CollectionsClient.Create.
func (c *CollectionsClient) Create(ctx context.Context, workspaceID string, collection interface{}) (*postman.Response, error) {
	err := postman.ValidateID(workspaceID, "workspaceId")
	if err != nil {
		return nil, err
	}

	query := postman.NewQuery().Add("workspace", workspaceID)

	return c.httpClient.Post(ctx, "/collections"+query.Encode(), envelope("collection", collection))
}

// Replace implements postman.CollectionsClient.Replace.
func (c *CollectionsClient) Replace(ctx context.Context, collectionID string, collection interface{}) (*postman.Response, error) {
	err := postman.ValidateID(collectionID, "collectionId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Put(ctx, "/collections/"+collectionID, envelope("collection", collection))
}

// Patch implements postman.CollectionsClient.Patch.
func (c *CollectionsClient) Patch(ctx context.Context, collectionID string, collection interface{}) (*postman.Response, error) {
	err := postman.ValidateID(collectionID, "collectionId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Patch(ctx, "/collections/"+collectionID, envelope("collection", collection))
}

// Delete implements postman.CollectionsClient.Delete.
func (c *CollectionsClient) Delete(ctx context.Context, collectionID string) (*postman.Response, error) {
	err := postman.ValidateID(collectionID, "collectionId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Delete(ctx, "/collections/"+collectionID)
}

// Fork implements postman.CollectionsClient.Fork.
func (c *CollectionsClient) Fork(ctx context.Context, collectionID, workspaceID, label string) (*postman.Response, error) {
	err := validateIDs(collectionID, "collectionId", workspaceID, "workspaceId")
	if err != nil {
		return nil, err
	}

	err = postman.ValidateRequired(label, "label")
	if err != nil {
		return nil, err
	}

	query := postman.NewQuery().Add("workspace", workspaceID)

	return c.httpClient.Post(ctx, "/collections/fork/"+collectionID+query.Encode(), map[string]string{"label": label})
}

// ListForks implements postman.CollectionsClient.ListForks.
func (c *CollectionsClient) ListForks(ctx context.Context, collectionID string, opts *postman.ForkListOptions) (*postman.Response, error) {
	err := postman.ValidateID(collectionID, "collectionId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Get(ctx, "/collections/"+collectionID+"/forks"+forkQuery(opts).Encode())
}

// Merge implements postman.CollectionsClient.Merge.
func (c *CollectionsClient) Merge(ctx context.Context, request *postman.CollectionMergeRequest) (*postman.Response, error) {
	if request == nil {
		return nil, postman.ValidateRequired("", "request")
	}

	err := validateUIDs(request.Source, "source", request.Destination, "destination")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Post(ctx, "/collections/merge", request)
}

// GetTags implements postman.CollectionsClient.GetTags.
func (c *CollectionsClient) GetTags(ctx context.Context, collectionUID string) (*postman.Response, error) {
	err := postman.ValidateUID(collectionUID, "collectionUid")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Get(ctx, "/collections/"+collectionUID+"/tags")
}

// UpdateTags implements postman.CollectionsClient.UpdateTags.
func (c *CollectionsClient) UpdateTags(ctx context.Context, collectionUID string, tags []postman.Tag) (*postman.Response, error) {
	err := postman.ValidateUID(collectionUID, "collectionUid")
	if err != nil {
		return nil, err
	}

	if tags == nil {
		tags = []postman.Tag{}
	}

	return c.httpClient.Put(ctx, "/collections/"+collectionUID+"/tags", map[string]interface{}{"tags": tags})
}

// Transform implements postman.CollectionsClient.Transform. The API returns
// the collection as an OpenAPI definition.
func (c *CollectionsClient) Transform(ctx context.Context, collectionID string) (*postman.Response, error) {
	err := postman.ValidateID(collectionID, "collectionId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Get(ctx, "/collections/"+collectionID+"/transformations")
}

// GenerateSpec implements postman.CollectionsClient.GenerateSpec.
func (c *CollectionsClient) GenerateSpec(ctx context.Context, collectionUID string, request *postman.SpecGenerationRequest) (*postman.Response, error) {
	err := postman.ValidateUID(collectionUID, "collectionUid")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Post(ctx, "/collections/"+collectionUID+"/generations/spec", request)
}

// SyncWithSpec implements postman.CollectionsClient.SyncWithSpec.
func (c *CollectionsClient) SyncWithSpec(ctx context.Context, collectionUID, specID string) (*postman.Response, error) {
	err := postman.ValidateUID(collectionUID, "collectionUid")
	if err != nil {
		return nil, err
	}

	err = postman.ValidateID(specID, "specId")
	if err != nil {
		return nil, err
	}

	query := postman.NewQuery().Add("specId", specID)

	return c.httpClient.Do(ctx, c.httpClient.NewRequest("PUT", "/collections/"+collectionUID+"/synchronizations"+query.Encode()))
}

// ListComments implements postman.CollectionsClient.ListComments.
func (c *CollectionsClient) ListComments(ctx context.Context, collectionUID string) (*postman.Response, error) {
	err := postman.ValidateUID(collectionUID, "collectionUid")
	if err != nil {
		return nil, err
	}

	return c.comments.list(ctx, "/collections/"+collectionUID)
}

// CreateComment implements postman.CollectionsClient.CreateComment.
func (c *CollectionsClient) CreateComment(ctx context.Context, collectionUID string, comment *postman.Comment) (*postman.Response, error) {
	err := postman.ValidateUID(collectionUID, "collectionUid")
	if err != nil {
		return nil, err
	}

	return c.comments.create(ctx, "/collections/"+collectionUID, comment)
}

// UpdateComment implements postman.CollectionsClient.UpdateComment.
func (c *CollectionsClient) UpdateComment(ctx context.Context, collectionUID string, commentID int, comment *postman.Comment) (*postman.Response, error) {
	err := postman.ValidateUID(collectionUID, "collectionUid")
	if err != nil {
		return nil, err
	}

	return c.comments.update(ctx, "/collections/"+collectionUID, commentID, comment)
}

// DeleteComment implements postman.CollectionsClient.DeleteComment.
func (c *CollectionsClient) DeleteComment(ctx context.Context, collectionUID string, commentID int) (*postman.Response, error) {
	err := postman.ValidateUID(collectionUID, "collectionUid")
	if err != nil {
		return nil, err
	}

	return c.comments.remove(ctx, "/collections/"+collectionUID, commentID)
}

func forkQuery(opts *postman.ForkListOptions) *postman.Query {
	query := postman.NewQuery()
	if opts == nil {
		return query
	}

	if opts.Cursor != "" {
		query.Add("cursor", opts.Cursor)
	}

	if opts.Direction != "" {
		query.Add("direction", opts.Direction)
	}

	return query.Add("limit", opts.Limit)
}
