package postman

import (
	"net/http"
	"time"
)

// DefaultBaseURL is the public Postman API endpoint.
const DefaultBaseURL = "https://api.getpostman.com"

// CollectionClients provides access to collection-scoped resource clients.
type CollectionClients interface {
	Collections() CollectionsClient
	Folders() FoldersClient
	Requests() RequestsClient
	Responses() ResponsesClient
	PullRequests() PullRequestsClient
}

// APIDesignClients provides access to API design and testing resource clients.
type APIDesignClients interface {
	Specs() SpecsClient
	Environments() EnvironmentsClient
	Mocks() MocksClient
	Monitors() MonitorsClient
}

// AccountClients provides access to workspace and account resource clients.
type AccountClients interface {
	Workspaces() WorkspacesClient
	Users() UsersClient
	Tags() TagsClient
}

// Client is the Postman API client.
type Client interface {
	CollectionClients
	APIDesignClients
	AccountClients
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a postman.Client.
//
// The configuration is read once when the client is constructed and is never
// mutated afterwards; a client is safe for concurrent use.
//
// # Timeouts and retries
//
// No timeout is applied by default. Cancel or bound calls with the context
// passed to each method. Retries are disabled unless RetryMax is set.
type Config struct {
	// APIKey is sent in the X-API-Key header of every request. Required.
	APIKey string

	// BaseURL defaults to DefaultBaseURL. It is used verbatim as the URL prefix.
	BaseURL string

	// Optional configurations
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// RetryMax is the number of retries for transient failures (>=500, 429 and
	// connection errors). Zero disables retries.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug enables HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
	// HTTPClient replaces the underlying *http.Client, e.g. to set a proxy.
	HTTPClient *http.Client
	// Interceptors run around every request when set.
	Interceptors *InterceptorChain

	// Headers are added to every request. Content-Type and X-API-Key cannot
	// be overridden.
	Headers map[string]string
	// RequestTimeout bounds each call. Zero means no timeout.
	RequestTimeout time.Duration
	// MaxBodyLength rejects larger request bodies before sending. Zero means unlimited.
	MaxBodyLength int64
	// MaxContentLength caps the response body size. Zero means unlimited.
	MaxContentLength int64
}
