package client

import (
	"context"
	"net/url"

	"github.com/fivetwenty-io/postman-client/internal/http"
	"github.com/fivetwenty-io/postman-client/pkg/postman"
)

// TagsClient implements postman.TagsClient.
type TagsClient struct {
	httpClient *http.Client
}

// NewTagsClient creates a new tags client.
func NewTagsClient(httpClient *http.Client) *TagsClient {
	return &TagsClient{
		httpClient: httpClient,
	}
}

// ListEntities implements postman.TagsClient.ListEntities.
func (c *TagsClient) ListEntities(ctx context.Context, slug string, opts *postman.TagEntitiesOptions) (*postman.Response, error) {
	err := postman.ValidateRequired(slug, "slug")
	if err != nil {
		return nil, err
	}

	query := postman.NewQuery()

	if opts != nil {
		query.Add("limit", opts.Limit)
		addString(query, "direction", opts.Direction)
		addString(query, "cursor", opts.Cursor)
		addString(query, "entityType", opts.EntityType)
	}

	return c.httpClient.Get(ctx, "/tags/"+url.PathEscape(slug)+"/entities"+query.Encode())
}
