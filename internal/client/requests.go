package client

import (
	"context"

	"github.com/fivetwenty-io/postman-client/internal/http"
	"github.com/fivetwenty-io/postman-client/pkg/postman"
)

// RequestsClient implements postman.RequestsClient.
type RequestsClient struct {
	httpClient *http.Client
	comments   *commentsClient
}

// NewRequestsClient creates a new requests client.
func NewRequestsClient(httpClient *http.Client) *RequestsClient {
	return &RequestsClient{
		httpClient: httpClient,
		comments:   &commentsClient{httpClient: httpClient},
	}
}

// Create implements postman.RequestsClient.Create. With opts.FolderID the
// request is placed in that folder instead of the collection root.
func (c *RequestsClient) Create(ctx context.Context, collectionID string, request interface{}, opts *postman.RequestCreateOptions) (*postman.Response, error) {
	err := postman.ValidateID(collectionID, "collectionId")
	if err != nil {
		return nil, err
	}

	query := postman.NewQuery()

	if opts != nil && opts.FolderID != "" {
		err = postman.ValidateID(opts.FolderID, "folderId")
		if err != nil {
			return nil, err
		}

		query.Add("folder", opts.FolderID)
	}

	return c.httpClient.Post(ctx, "/collections/"+collectionID+"/requests"+query.Encode(), request)
}

// Get implements postman.RequestsClient.Get.
func (c *RequestsClient) Get(ctx context.Context, collectionID, requestID string, opts *postman.ItemGetOptions) (*postman.Response, error) {
	err := validateIDs(collectionID, "collectionId", requestID, "requestId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Get(ctx, "/collections/"+collectionID+"/requests/"+requestID+itemQuery(opts).Encode())
}

// Update implements postman.RequestsClient.Update.
func (c *RequestsClient) Update(ctx context.Context, collectionID, requestID string, request interface{}) (*postman.Response, error) {
	err := validateIDs(collectionID, "collectionId", requestID, "requestId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Put(ctx, "/collections/"+collectionID+"/requests/"+requestID, request)
}

// Delete implements postman.RequestsClient.Delete.
func (c *RequestsClient) Delete(ctx context.Context, collectionID, requestID string) (*postman.Response, error) {
	err := validateIDs(collectionID, "collectionId", requestID, "requestId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Delete(ctx, "/collections/"+collectionID+"/requests/"+requestID)
}

// ListComments implements postman.RequestsClient.ListComments.
func (c *RequestsClient) ListComments(ctx context.Context, collectionUID, requestUID string) (*postman.Response, error) {
	basePath, err := requestPath(collectionUID, requestUID)
	if err != nil {
		return nil, err
	}

	return c.comments.list(ctx, basePath)
}

// CreateComment implements postman.RequestsClient.CreateComment.
func (c *RequestsClient) CreateComment(ctx context.Context, collectionUID, requestUID string, comment *postman.Comment) (*postman.Response, error) {
	basePath, err := requestPath(collectionUID, requestUID)
	if err != nil {
		return nil, err
	}

	return c.comments.create(ctx, basePath, comment)
}

// UpdateComment implements postman.RequestsClient.UpdateComment.
func (c *RequestsClient) UpdateComment(ctx context.Context, collectionUID, requestUID string, commentID int, comment *postman.Comment) (*postman.Response, error) {
	basePath, err := requestPath(collectionUID, requestUID)
	if err != nil {
		return nil, err
	}

	return c.comments.update(ctx, basePath, commentID, comment)
}

// DeleteComment implements postman.RequestsClient.DeleteComment.
func (c *RequestsClient) DeleteComment(ctx context.Context, collectionUID, requestUID string, commentID int) (*postman.Response, error) {
	basePath, err := requestPath(collectionUID, requestUID)
	if err != nil {
		return nil, err
	}

	return c.comments.remove(ctx, basePath, commentID)
}

func requestPath(collectionUID, requestUID string) (string, error) {
	err := validateUIDs(collectionUID, "collectionUid", requestUID, "requestUid")
	if err != nil {
		return "", err
	}

	return "/collections/" + collectionUID + "/requests/" + requestUID, nil
}
