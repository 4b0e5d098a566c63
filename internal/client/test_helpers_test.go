package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/fivetwenty-io/postman-client/internal/constants"
	internalhttp "github.com/fivetwenty-io/postman-client/internal/http"
	"github.com/fivetwenty-io/postman-client/pkg/postman"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAPIKey = "PMAK-test-key"

	testCollectionID  = "bf5cb6e7-0a1e-4b82-a577-b2068a70f830"
	testCollectionUID = "12345678-" + testCollectionID
	testWorkspaceID   = "1f0df51a-8658-4ee8-a2a1-d2567dfa09a9"
	testItemID        = "c82dd02c-4870-4907-8fcb-593a876cf05b"
	testItemUID       = "12345678-" + testItemID
	testOtherID       = "5daabc50-8451-43f6-922d-96b403b4f28e"
	testOtherUID      = "12345678-" + testOtherID
	testMalformedUID  = "12345678_bf5cb6e7"
	testBadID         = "not-a-valid-id"

	testResponseBody = `{"ok":true}`
)

// NewTestClient creates a new test client with the given base URL.
func NewTestClient(baseURL string, opts ...internalhttp.Option) *Client {
	client := &Client{
		httpClient: internalhttp.NewClient(baseURL, testAPIKey, opts...),
		baseURL:    baseURL,
	}

	client.initializeResourceClients()

	return client
}

// countingDoer fails the test if anything reaches the transport.
type countingDoer struct {
	calls atomic.Int32
}

func (d *countingDoer) Do(req *retryablehttp.Request) (*http.Response, error) {
	d.calls.Add(1)

	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(testResponseBody)),
	}, nil
}

// TestOperation describes one resource call and the HTTP request it must produce.
type TestOperation struct {
	Name  string
	Call  func(ctx context.Context, c *Client) (*postman.Response, error)
	Verb  string
	Path  string // escaped path
	Query string // raw query, "" for none
	Body  string // expected JSON body, "" for no body
}

// RunOperationTests checks every operation against a live test server.
func RunOperationTests(t *testing.T, operations []TestOperation) {
	t.Helper()

	for _, op := range operations {
		op := op
		t.Run(op.Name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, op.Verb, r.Method)
				assert.Equal(t, op.Path, r.URL.EscapedPath())
				assert.Equal(t, op.Query, r.URL.RawQuery)
				assert.Equal(t, testAPIKey, r.Header.Get(constants.HeaderAPIKey))
				assert.Equal(t, constants.ContentTypeJSON, r.Header.Get(constants.HeaderContentType))

				body, err := io.ReadAll(r.Body)
				assert.NoError(t, err)

				if op.Body == "" {
					assert.Empty(t, body)
				} else {
					assert.JSONEq(t, op.Body, string(body))
				}

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(testResponseBody))
			}))
			defer server.Close()

			client := NewTestClient(server.URL)

			resp, err := op.Call(context.Background(), client)
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.JSONEq(t, testResponseBody, string(resp.Body))
		})
	}
}

// TestValidation describes a call that must be rejected before any network call.
type TestValidation struct {
	Name    string
	Call    func(ctx context.Context, c *Client) (*postman.Response, error)
	WantErr string
}

// RunValidationTests asserts each call fails locally with the exact message.
func RunValidationTests(t *testing.T, validations []TestValidation) {
	t.Helper()

	for _, validation := range validations {
		validation := validation
		t.Run(validation.Name, func(t *testing.T) {
			t.Parallel()

			doer := &countingDoer{}
			client := NewTestClient("https://api.getpostman.com", internalhttp.WithDoer(doer))

			resp, err := validation.Call(context.Background(), client)
			require.Error(t, err)
			assert.Nil(t, resp)
			assert.Equal(t, validation.WantErr, err.Error())
			require.ErrorIs(t, err, postman.ErrInvalidArgument)
			assert.Equal(t, int32(0), doer.calls.Load(), "transport must not be called")
		})
	}
}

func idFormatError(field string) string {
	return field + " must be a valid ID format (e.g., '" + postman.ExampleID + "')"
}

func uidFormatError(field string) string {
	return field + " must be a valid UID format (e.g., '" + postman.ExampleUID + "')"
}
