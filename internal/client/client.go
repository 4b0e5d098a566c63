package client

import (
	"github.com/fivetwenty-io/postman-client/internal/constants"
	"github.com/fivetwenty-io/postman-client/internal/http"
	"github.com/fivetwenty-io/postman-client/pkg/postman"
)

// Client implements the postman.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     postman.Logger

	// Resource clients
	collections  postman.CollectionsClient
	folders      postman.FoldersClient
	requests     postman.RequestsClient
	responses    postman.ResponsesClient
	pullRequests postman.PullRequestsClient
	specs        postman.SpecsClient
	environments postman.EnvironmentsClient
	mocks        postman.MocksClient
	monitors     postman.MonitorsClient
	workspaces   postman.WorkspacesClient
	users        postman.UsersClient
	tags         postman.TagsClient
}

// New creates a new Postman API client from a validated config.
func New(config *postman.Config, extraOpts ...http.Option) (*Client, error) {
	if config == nil {
		return nil, postman.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, postman.ErrAPIKeyRequired
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = postman.DefaultBaseURL
	}

	httpOpts := append(createHTTPClientOptions(config), extraOpts...)

	client := &Client{
		httpClient: http.NewClient(baseURL, config.APIKey, httpOpts...),
		baseURL:    baseURL,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *postman.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(config.Interceptors))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	if len(config.Headers) > 0 || config.RequestTimeout > 0 || config.MaxBodyLength > 0 || config.MaxContentLength > 0 {
		httpOpts = append(httpOpts, http.WithDefaultExtra(http.ExtraOptions{
			Headers:          config.Headers,
			Timeout:          config.RequestTimeout,
			MaxBodyLength:    config.MaxBodyLength,
			MaxContentLength: config.MaxContentLength,
		}))
	}

	return httpOpts
}

func (c *Client) initializeResourceClients() {
	c.collections = NewCollectionsClient(c.httpClient)
	c.folders = NewFoldersClient(c.httpClient)
	c.requests = NewRequestsClient(c.httpClient)
	c.responses = NewResponsesClient(c.httpClient)
	c.pullRequests = NewPullRequestsClient(c.httpClient)
	c.specs = NewSpecsClient(c.httpClient)
	c.environments = NewEnvironmentsClient(c.httpClient)
	c.mocks = NewMocksClient(c.httpClient)
	c.monitors = NewMonitorsClient(c.httpClient)
	c.workspaces = NewWorkspacesClient(c.httpClient)
	c.users = NewUsersClient(c.httpClient)
	c.tags = NewTagsClient(c.httpClient)
}

// BaseURL returns the API base URL requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Collections implements postman.Client.Collections.
func (c *Client) Collections() postman.CollectionsClient {
	return c.collections
}

// Folders implements postman.Client.Folders.
func (c *Client) Folders() postman.FoldersClient {
	return c.folders
}

// Requests implements postman.Client.Requests.
func (c *Client) Requests() postman.RequestsClient {
	return c.requests
}

// Responses implements postman.Client.Responses.
func (c *Client) Responses() postman.ResponsesClient {
	return c.responses
}

// PullRequests implements postman.Client.PullRequests.
func (c *Client) PullRequests() postman.PullRequestsClient {
	return c.pullRequests
}

// Specs implements postman.Client.Specs.
func (c *Client) Specs() postman.SpecsClient {
	return c.specs
}

// Environments implements postman.Client.Environments.
func (c *Client) Environments() postman.EnvironmentsClient {
	return c.environments
}

// Mocks implements postman.Client.Mocks.
func (c *Client) Mocks() postman.MocksClient {
	return c.mocks
}

// Monitors implements postman.Client.Monitors.
func (c *Client) Monitors() postman.MonitorsClient {
	return c.monitors
}

// Workspaces implements postman.Client.Workspaces.
func (c *Client) Workspaces() postman.WorkspacesClient {
	return c.workspaces
}

// Users implements postman.Client.Users.
func (c *Client) Users() postman.UsersClient {
	return c.users
}

// Tags implements postman.Client.Tags.
func (c *Client) Tags() postman.TagsClient {
	return c.tags
}
