package client

import (
	"context"

	"github.com/fivetwenty-io/postman-client/internal/http"
	"github.com/fivetwenty-io/postman-client/pkg/postman"
)

// FoldersClient implements postman.FoldersClient.
type FoldersClient struct {
	httpClient *http.Client
	comments   *commentsClient
}

// NewFoldersClient creates a new folders client.
func NewFoldersClient(httpClient *http.Client) *FoldersClient {
	return &FoldersClient{
		httpClient: httpClient,
		comments:   &commentsClient{httpClient: httpClient},
	}
}

// Create implements postman.FoldersClient.Create.
func (c *FoldersClient) Create(ctx context.Context, collectionID string, folder interface{}) (*postman.Response, error) {
	err := postman.ValidateID(collectionID, "collectionId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Post(ctx, "/collections/"+collectionID+"/folders", folder)
}

// Get implements postman.FoldersClient.Get.
func (c *FoldersClient) Get(ctx context.Context, collectionID, folderID string, opts *postman.ItemGetOptions) (*postman.Response, error) {
	err := validateIDs(collectionID, "collectionId", folderID, "folderId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Get(ctx, "/collections/"+collectionID+"/folders/"+folderID+itemQuery(opts).Encode())
}

// Update implements postman.FoldersClient.Update.
func (c *FoldersClient) Update(ctx context.Context, collectionID, folderID string, folder interface{}) (*postman.Response, error) {
	err := validateIDs(collectionID, "collectionId", folderID, "folderId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Put(ctx, "/collections/"+collectionID+"/folders/"+folderID, folder)
}

// Delete implements postman.FoldersClient.Delete.
func (c *FoldersClient) Delete(ctx context.Context, collectionID, folderID string) (*postman.Response, error) {
	err := validateIDs(collectionID, "collectionId", folderID, "folderId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Delete(ctx, "/collections/"+collectionID+"/folders/"+folderID)
}

// ListComments implements postman.FoldersClient.ListComments.
func (c *FoldersClient) ListComments(ctx context.Context, collectionUID, folderUID string) (*postman.Response, error) {
	basePath, err := folderPath(collectionUID, folderUID)
	if err != nil {
		return nil, err
	}

	return c.comments.list(ctx, basePath)
}

// CreateComment implements postman.FoldersClient.CreateComment.
func (c *FoldersClient) CreateComment(ctx context.Context, collectionUID, folderUID string, comment *postman.Comment) (*postman.Response, error) {
	basePath, err := folderPath(collectionUID, folderUID)
	if err != nil {
		return nil, err
	}

	return c.comments.create(ctx, basePath, comment)
}

// UpdateComment implements postman.FoldersClient.UpdateComment.
func (c *FoldersClient) UpdateComment(ctx context.Context, collectionUID, folderUID string, commentID int, comment *postman.Comment) (*postman.Response, error) {
	basePath, err := folderPath(collectionUID, folderUID)
	if err != nil {
		return nil, err
	}

	return c.comments.update(ctx, basePath, commentID, comment)
}

// DeleteComment implements postman.FoldersClient.DeleteComment.
func (c *FoldersClient) DeleteComment(ctx context.Context, collectionUID, folderUID string, commentID int) (*postman.Response, error) {
	basePath, err := folderPath(collectionUID, folderUID)
	if err != nil {
		return nil, err
	}

	return c.comments.remove(ctx, basePath, commentID)
}

func folderPath(collectionUID, folderUID string) (string, error) {
	err := validateUIDs(collectionUID, "collectionUid", folderUID, "folderUid")
	if err != nil {
		return "", err
	}

	return "/collections/" + collectionUID + "/folders/" + folderUID, nil
}

// itemQuery renders the flags shared by folder, request and response lookups.
func itemQuery(opts *postman.ItemGetOptions) *postman.Query {
	query := postman.NewQuery()
	if opts == nil {
		return query
	}

	if opts.IDs {
		query.Add("ids", true)
	}

	if opts.UID {
		query.Add("uid", true)
	}

	if opts.Populate {
		query.Add("populate", true)
	}

	return query
}
