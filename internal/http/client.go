package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fivetwenty-io/postman-client/internal/constants"
	"github.com/fivetwenty-io/postman-client/pkg/postman"
	"github.com/hashicorp/go-retryablehttp"
)

// Doer sends a prepared request. *retryablehttp.Client satisfies it.
type Doer interface {
	Do(req *retryablehttp.Request) (*http.Response, error)
}

// Client executes requests against the Postman API.
type Client struct {
	builder      *Builder
	httpClient   *retryablehttp.Client
	doer         Doer
	logger       postman.Logger
	debug        bool
	userAgent    string
	extra        *ExtraOptions
	interceptors *postman.InterceptorChain
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger postman.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithRetryConfig turns on retries for 429, 5xx and connection errors.
func WithRetryConfig(maxRetries int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = maxRetries
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithHTTPClient replaces the underlying *http.Client. A client without a
// CheckRedirect policy is copied and made to stop at the first redirect.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient == nil {
			return
		}

		if httpClient.CheckRedirect == nil {
			copied := *httpClient
			copied.CheckRedirect = stopAtRedirect
			httpClient = &copied
		}

		c.httpClient.HTTPClient = httpClient
	}
}

// WithInterceptors runs the chain around every request.
func WithInterceptors(chain *postman.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// WithDefaultExtra merges extra into every request built by the helpers.
func WithDefaultExtra(extra ExtraOptions) Option {
	return func(c *Client) {
		c.extra = &extra
	}
}

// WithDoer replaces the transport entirely.
func WithDoer(doer Doer) Option {
	return func(c *Client) {
		c.doer = doer
	}
}

// NewClient creates a new HTTP client. Retries are off until WithRetryConfig
// is used, and retryablehttp hands every response and error back unchanged.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.CheckRetry = retryPolicy
	retryClient.HTTPClient.CheckRedirect = stopAtRedirect
	retryClient.Logger = nil

	client := &Client{
		builder:    NewBuilder(baseURL, apiKey),
		httpClient: retryClient,
		userAgent:  constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.logger != nil {
		retryClient.Logger = newLeveledLogger(client.logger, client.debug)
	}

	if client.doer == nil {
		client.doer = retryClient
	}

	return client
}

// stopAtRedirect hands a 3xx back as the response instead of following it,
// so the API key never reaches the Location target.
func stopAtRedirect(*http.Request, []*http.Request) error {
	return http.ErrUseLastResponse
}

// retryPolicy is retryablehttp's default policy, except that a cancelled or
// expired context stops without replacing the transport error with ctx.Err().
func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, nil
	}

	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

// Builder returns the request builder bound to this client.
func (c *Client) Builder() *Builder {
	return c.builder
}

// Do executes a request. Transport errors are returned as they are; any
// status outside 200-299 becomes a *postman.APIError.
func (c *Client) Do(ctx context.Context, req *Request) (*postman.Response, error) {
	body, err := encodeBody(req)
	if err != nil {
		return nil, err
	}

	if req.MaxBodyLength > 0 && int64(len(body)) > req.MaxBodyLength {
		return nil, fmt.Errorf("%w: %d > %d bytes", constants.ErrRequestBodyTooLarge, len(body), req.MaxBodyLength)
	}

	if req.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	intercepted := &postman.InterceptedRequest{
		Method:   strings.ToUpper(req.Method),
		URL:      req.URL,
		Headers:  c.headers(req),
		Body:     body,
		Metadata: make(map[string]interface{}),
	}

	if c.interceptors != nil {
		err = c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
		if err != nil {
			return nil, err
		}

		// interceptors cannot change the fixed headers
		intercepted.Headers.Set(constants.HeaderContentType, constants.ContentTypeJSON)
		intercepted.Headers.Set(constants.HeaderAPIKey, req.Headers[constants.HeaderAPIKey])
	}

	httpReq, err := newRetryableRequest(ctx, intercepted, req.HasBody)
	if err != nil {
		return nil, err
	}

	c.logRequest(intercepted)

	start := time.Now()

	httpResp, err := c.doer.Do(httpReq)
	if err != nil {
		c.afterResponse(ctx, intercepted, &postman.InterceptedResponse{Error: err})

		return nil, err
	}

	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := readBody(httpResp.Body, req.MaxContentLength)
	if err != nil {
		c.afterResponse(ctx, intercepted, &postman.InterceptedResponse{StatusCode: httpResp.StatusCode, Error: err})

		return nil, err
	}

	c.logResponse(intercepted, httpResp.StatusCode, len(respBody), time.Since(start))

	if httpResp.StatusCode < constants.StatusSuccessMin || httpResp.StatusCode > constants.StatusSuccessMax {
		apiErr := &postman.APIError{
			StatusCode: httpResp.StatusCode,
			Headers:    httpResp.Header,
			Body:       respBody,
		}

		c.afterResponse(ctx, intercepted, &postman.InterceptedResponse{
			StatusCode: httpResp.StatusCode,
			Headers:    httpResp.Header,
			Body:       respBody,
			Error:      apiErr,
		})

		return nil, apiErr
	}

	if c.interceptors != nil {
		err = c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, &postman.InterceptedResponse{
			StatusCode: httpResp.StatusCode,
			Headers:    httpResp.Header,
			Body:       respBody,
		})
		if err != nil {
			return nil, err
		}
	}

	return &postman.Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, opts ...RequestOption) (*postman.Response, error) {
	return c.Do(ctx, c.build(http.MethodGet, path, opts...))
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}, opts ...RequestOption) (*postman.Response, error) {
	return c.Do(ctx, c.build(http.MethodPost, path, append([]RequestOption{WithBody(body)}, opts...)...))
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}, opts ...RequestOption) (*postman.Response, error) {
	return c.Do(ctx, c.build(http.MethodPut, path, append([]RequestOption{WithBody(body)}, opts...)...))
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body interface{}, opts ...RequestOption) (*postman.Response, error) {
	return c.Do(ctx, c.build(http.MethodPatch, path, append([]RequestOption{WithBody(body)}, opts...)...))
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, opts ...RequestOption) (*postman.Response, error) {
	return c.Do(ctx, c.build(http.MethodDelete, path, opts...))
}

// NewRequest builds a request with the client's default options applied,
// for calls the verb helpers do not cover such as a bodyless PUT.
func (c *Client) NewRequest(method, path string, opts ...RequestOption) *Request {
	return c.build(method, path, opts...)
}

func (c *Client) build(method, path string, opts ...RequestOption) *Request {
	if c.extra != nil {
		opts = append([]RequestOption{WithExtra(*c.extra)}, opts...)
	}

	return c.builder.Build(method, path, opts...)
}

func (c *Client) headers(req *Request) http.Header {
	headers := make(http.Header, len(req.Headers)+1)
	headers.Set(constants.HeaderUserAgent, c.userAgent)

	for name, value := range req.Headers {
		headers.Set(name, value)
	}

	return headers
}

func (c *Client) afterResponse(ctx context.Context, req *postman.InterceptedRequest, resp *postman.InterceptedResponse) {
	if c.interceptors == nil {
		return
	}

	err := c.interceptors.ExecuteResponseInterceptors(ctx, req, resp)
	if err != nil && c.logger != nil {
		c.logger.Warn("Response interceptor failed", map[string]interface{}{
			"method": req.Method,
			"url":    req.URL,
			"error":  err.Error(),
		})
	}
}

func (c *Client) logRequest(req *postman.InterceptedRequest) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Request", map[string]interface{}{
		"method":    req.Method,
		"url":       req.URL,
		"body_size": len(req.Body),
	})
}

func (c *Client) logResponse(req *postman.InterceptedRequest, status, size int, duration time.Duration) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Response", map[string]interface{}{
		"method":    req.Method,
		"url":       req.URL,
		"status":    status,
		"body_size": size,
		"duration":  duration.String(),
	})
}

func encodeBody(req *Request) ([]byte, error) {
	if !req.HasBody {
		return nil, nil
	}

	if raw, ok := req.Body.(json.RawMessage); ok && raw != nil {
		return raw, nil
	}

	body, err := json.Marshal(req.Body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request body: %w", err)
	}

	return body, nil
}

func newRetryableRequest(ctx context.Context, req *postman.InterceptedRequest, hasBody bool) (*retryablehttp.Request, error) {
	var body interface{}
	if hasBody || len(req.Body) > 0 {
		body = req.Body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	for name, values := range req.Headers {
		for _, value := range values {
			httpReq.Header.Add(name, value)
		}
	}

	return httpReq, nil
}

func readBody(body io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		data, err := io.ReadAll(body)
		if err != nil {
			return nil, fmt.Errorf("reading response body: %w", err)
		}

		return data, nil
	}

	var buf bytes.Buffer

	_, err := io.Copy(&buf, io.LimitReader(body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if int64(buf.Len()) > limit {
		return nil, fmt.Errorf("%w: limit %d bytes", constants.ErrResponseTooLarge, limit)
	}

	return buf.Bytes(), nil
}
