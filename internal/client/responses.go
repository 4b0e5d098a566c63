package client

import (
	"context"

	"github.com/fivetwenty-io/postman-client/internal/http"
	"github.com/fivetwenty-io/postman-client/pkg/postman"
)

// ResponsesClient implements postman.ResponsesClient.
type ResponsesClient struct {
	httpClient *http.Client
	comments   *commentsClient
}

// NewResponsesClient creates a new responses client.
func NewResponsesClient(httpClient *http.Client) *ResponsesClient {
	return &ResponsesClient{
		httpClient: httpClient,
		comments:   &commentsClient{httpClient: httpClient},
	}
}

// Create implements postman.ResponsesClient.Create.
func (c *ResponsesClient) Create(ctx context.Context, collectionID, requestID string, response interface{}) (*postman.Response, error) {
	err := validateIDs(collectionID, "collectionId", requestID, "requestId")
	if err != nil {
		return nil, err
	}

	query := postman.NewQuery().Add("request", requestID)

	return c.httpClient.Post(ctx, "/collections/"+collectionID+"/responses"+query.Encode(), response)
}

// Get implements postman.ResponsesClient.Get.
func (c *ResponsesClient) Get(ctx context.Context, collectionID, responseID string, opts *postman.ItemGetOptions) (*postman.Response, error) {
	err := validateIDs(collectionID, "collectionId", responseID, "responseId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Get(ctx, "/collections/"+collectionID+"/responses/"+responseID+itemQuery(opts).Encode())
}

// Update implements postman.ResponsesClient.Update.
func (c *ResponsesClient) Update(ctx context.Context, collectionID, responseID string, response interface{}) (*postman.Response, error) {
	err := validateIDs(collectionID, "collectionId", responseID, "responseId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Put(ctx, "/collections/"+collectionID+"/responses/"+responseID, response)
}

// Delete implements postman.ResponsesClient.Delete.
func (c *ResponsesClient) Delete(ctx context.Context, collectionID, responseID string) (*postman.Response, error) {
	err := validateIDs(collectionID, "collectionId", responseID, "responseId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Delete(ctx, "/collections/"+collectionID+"/responses/"+responseID)
}

// ListComments implements postman.ResponsesClient.ListComments.
func (c *ResponsesClient) ListComments(ctx context.Context, collectionUID, responseUID string) (*postman.Response, error) {
	basePath, err := responsePath(collectionUID, responseUID)
	if err != nil {
		return nil, err
	}

	return c.comments.list(ctx, basePath)
}

// CreateComment implements postman.ResponsesClient.CreateComment.
func (c *ResponsesClient) CreateComment(ctx context.Context, collectionUID, responseUID string, comment *postman.Comment) (*postman.Response, error) {
	basePath, err := responsePath(collectionUID, responseUID)
	if err != nil {
		return nil, err
	}

	return c.comments.create(ctx, basePath, comment)
}

// UpdateComment implements postman.ResponsesClient.UpdateComment.
func (c *ResponsesClient) UpdateComment(ctx context.Context, collectionUID, responseUID string, commentID int, comment *postman.Comment) (*postman.Response, error) {
	basePath, err := responsePath(collectionUID, responseUID)
	if err != nil {
		return nil, err
	}

	return c.comments.update(ctx, basePath, commentID, comment)
}

// DeleteComment implements postman.ResponsesClient.DeleteComment.
func (c *ResponsesClient) DeleteComment(ctx context.Context, collectionUID, responseUID string, commentID int) (*postman.Response, error) {
	basePath, err := responsePath(collectionUID, responseUID)
	if err != nil {
		return nil, err
	}

	return c.comments.remove(ctx, basePath, commentID)
}

func responsePath(collectionUID, responseUID string) (string, error) {
	err := validateUIDs(collectionUID, "collectionUid", responseUID, "responseUid")
	if err != nil {
		return "", err
	}

	return "/collections/" + collectionUID + "/responses/" + responseUID, nil
}
