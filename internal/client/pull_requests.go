package client

import (
	"context"

	"github.com/fivetwenty-io/postman-client/internal/http"
	"github.com/fivetwenty-io/postman-client/pkg/postman"
)

// PullRequestsClient implements postman.PullRequestsClient.
type PullRequestsClient struct {
	httpClient *http.Client
}

// NewPullRequestsClient creates a new pull requests client.
func NewPullRequestsClient(httpClient *http.Client) *PullRequestsClient {
	return &PullRequestsClient{
		httpClient: httpClient,
	}
}

// ListForCollection implements postman.PullRequestsClient.ListForCollection.
func (c *PullRequestsClient) ListForCollection(ctx context.Context, collectionUID string, opts *postman.PullRequestListOptions) (*postman.Response, error) {
	err := postman.ValidateUID(collectionUID, "collectionUid")
	if err != nil {
		return nil, err
	}

	query := postman.NewQuery()

	if opts != nil {
		addString(query, "createdBy", opts.CreatedBy)
		addString(query, "status", opts.Status)
		addString(query, "direction", opts.Direction)
		query.Add("limit", opts.Limit).Add("offset", opts.Offset)
	}

	return c.httpClient.Get(ctx, "/collections/"+collectionUID+"/pull-requests"+query.Encode())
}

// Create implements postman.PullRequestsClient.Create. The pull request
// merges the fork collectionUID into request.DestinationID.
func (c *PullRequestsClient) Create(ctx context.Context, collectionUID string, request *postman.PullRequestCreateRequest) (*postman.Response, error) {
	err := postman.ValidateUID(collectionUID, "collectionUid")
	if err != nil {
		return nil, err
	}

	if request == nil {
		return nil, postman.ValidateRequired("", "request")
	}

	err = postman.ValidateUID(request.DestinationID, "destinationId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Post(ctx, "/collections/"+collectionUID+"/pull-requests", request)
}

// Get implements postman.PullRequestsClient.Get.
func (c *PullRequestsClient) Get(ctx context.Context, pullRequestID string) (*postman.Response, error) {
	err := postman.ValidateID(pullRequestID, "pullRequestId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Get(ctx, "/pull-requests/"+pullRequestID)
}

// Update implements postman.PullRequestsClient.Update.
func (c *PullRequestsClient) Update(ctx context.Context, pullRequestID string, request *postman.PullRequestUpdateRequest) (*postman.Response, error) {
	err := postman.ValidateID(pullRequestID, "pullRequestId")
	if err != nil {
		return nil, err
	}

	return c.httpClient.Put(ctx, "/pull-requests/"+pullRequestID, request)
}

// Review implements postman.PullRequestsClient.Review.
func (c *PullRequestsClient) Review(ctx context.Context, pullRequestID string, action postman.PullRequestAction, comment string) (*postman.Response, error) {
	err := postman.ValidateID(pullRequestID, "pullRequestId")
	if err != nil {
		return nil, err
	}

	err = validateReviewAction(action)
	if err != nil {
		return nil, err
	}

	body := map[string]string{"action": string(action)}
	if comment != "" {
		body["comment"] = comment
	}

	return c.httpClient.Post(ctx, "/pull-requests/"+pullRequestID+"/tasks", body)
}

func validateReviewAction(action postman.PullRequestAction) error {
	switch action {
	case postman.PullRequestApprove, postman.PullRequestUnapprove, postman.PullRequestDecline, postman.PullRequestMerge:
		return nil
	case "":
		return postman.ValidateRequired("", "action")
	default:
		return &postman.InvalidArgumentError{
			Field:   "action",
			Message: "action must be one of approve, unapprove, decline, merge",
		}
	}
}
