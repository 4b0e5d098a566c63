package http

import (
	"strings"
	"time"

	"github.com/fivetwenty-io/postman-client/internal/constants"
)

// ExtraOptions are caller supplied transport knobs merged into a request.
// Zero values mean "not set".
type ExtraOptions struct {
	Headers          map[string]string
	Timeout          time.Duration
	MaxBodyLength    int64
	MaxContentLength int64
}

// Request is a fully built HTTP call, created fresh for each operation.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	// Body is serialized as JSON when HasBody is set, even if Body is nil.
	Body    interface{}
	HasBody bool

	Timeout          time.Duration
	MaxBodyLength    int64
	MaxContentLength int64
}

// RequestOption customizes a request while it is built.
type RequestOption func(*Request)

// WithBody attaches a body verbatim.
func WithBody(body interface{}) RequestOption {
	return func(r *Request) {
		r.Body = body
		r.HasBody = true
	}
}

// WithExtra merges caller options into the request.
func WithExtra(extra ExtraOptions) RequestOption {
	return func(r *Request) {
		mergeExtra(r, extra)
	}
}

// Builder produces request descriptors for a fixed base URL and API key.
type Builder struct {
	BaseURL string
	APIKey  string
}

// NewBuilder creates a new request builder.
func NewBuilder(baseURL, apiKey string) *Builder {
	return &Builder{
		BaseURL: baseURL,
		APIKey:  apiKey,
	}
}

// Build creates a request. The method is kept as given and the URL is the
// plain concatenation of BaseURL and path.
func (b *Builder) Build(method, path string, opts ...RequestOption) *Request {
	req := &Request{
		Method:  method,
		URL:     b.BaseURL + path,
		Headers: b.fixedHeaders(),
	}

	for _, opt := range opts {
		opt(req)
	}

	return req
}

func (b *Builder) fixedHeaders() map[string]string {
	return map[string]string{
		constants.HeaderContentType: constants.ContentTypeJSON,
		constants.HeaderAPIKey:      b.APIKey,
	}
}

// mergeExtra copies the scalar knobs and adds extra headers. Content-Type and
// X-API-Key are never replaced, whatever the case of the extra header name.
func mergeExtra(req *Request, extra ExtraOptions) {
	if extra.Timeout > 0 {
		req.Timeout = extra.Timeout
	}

	if extra.MaxBodyLength > 0 {
		req.MaxBodyLength = extra.MaxBodyLength
	}

	if extra.MaxContentLength > 0 {
		req.MaxContentLength = extra.MaxContentLength
	}

	if req.Headers == nil {
		req.Headers = make(map[string]string, len(extra.Headers))
	}

	for name, value := range extra.Headers {
		if isFixedHeader(name) {
			continue
		}

		req.Headers[name] = value
	}
}

func isFixedHeader(name string) bool {
	return strings.EqualFold(name, constants.HeaderContentType) ||
		strings.EqualFold(name, constants.HeaderAPIKey)
}
