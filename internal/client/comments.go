package client

import (
	"context"
	"strconv"

	"github.com/fivetwenty-io/postman-client/internal/http"
	"github.com/fivetwenty-io/postman-client/pkg/postman"
)

// commentsClient serves the comment endpoints shared by collections, folders,
// requests and responses. basePath is the already validated owner path, e.g.
// "/collections/{uid}/folders/{uid}".
type commentsClient struct {
	httpClient *http.Client
}

func (c *commentsClient) list(ctx context.Context, basePath string) (*postman.Response, error) {
	return c.httpClient.Get(ctx, basePath+"/comments")
}

func (c *commentsClient) create(ctx context.Context, basePath string, comment *postman.Comment) (*postman.Response, error) {
	return c.httpClient.Post(ctx, basePath+"/comments", comment)
}

func (c *commentsClient) update(ctx context.Context, basePath string, commentID int, comment *postman.Comment) (*postman.Response, error) {
	err := postman.ValidatePositive(commentID, "commentId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Put(ctx, basePath+"/comments/"+strconv.Itoa(commentID), comment)
}

func (c *commentsClient) remove(ctx context.Context, basePath string, commentID int) (*postman.Response, error) {
	err := postman.ValidatePositive(commentID, "commentId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Delete(ctx, basePath+"/comments/"+strconv.Itoa(commentID))
}
