package commands

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/99designs/keyring"
	"github.com/fivetwenty-io/postman-client/internal/constants"
	"github.com/fivetwenty-io/postman-client/pkg/postman"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method string
	URI    string
	APIKey string
	Body   string
}

// fakeAPI answers requests from a table keyed by "METHOD /path?query" and
// records every call.
type fakeAPI struct {
	mu        sync.Mutex
	requests  []recordedRequest
	responses map[string]string
	statuses  map[string]int
}

func newFakeAPI(t *testing.T) (*fakeAPI, *httptest.Server) {
	t.Helper()

	api := &fakeAPI{responses: map[string]string{}, statuses: map[string]int{}}
	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	return api, server
}

func (f *fakeAPI) on(method, uri, body string) {
	f.onStatus(method, uri, http.StatusOK, body)
}

func (f *fakeAPI) onStatus(method, uri string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.responses[method+" "+uri] = body
	f.statuses[method+" "+uri] = status
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	key := r.Method + " " + r.URL.RequestURI()

	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{
		Method: r.Method,
		URI:    r.URL.RequestURI(),
		APIKey: r.Header.Get(constants.HeaderAPIKey),
		Body:   string(body),
	})
	response, ok := f.responses[key]
	status := f.statuses[key]
	f.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"name":"instanceNotFoundError","message":"not found"}}`))

		return
	}

	w.WriteHeader(status)
	_, _ = w.Write([]byte(response))
}

func (f *fakeAPI) calls() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]recordedRequest(nil), f.requests...)
}

func TestCommandGroups(t *testing.T) {
	resetViper(t)

	root := NewRootCommand("dev", "none", "unknown")

	tests := []struct {
		group       string
		subcommands []string
	}{
		{"config", []string{"set-api-key", "clear-api-key", "show"}},
		{"collections", []string{"list", "get", "fork", "delete"}},
		{"environments", []string{"list", "get", "delete"}},
		{"workspaces", []string{"list", "get"}},
		{"specs", []string{"list", "get", "files", "delete"}},
		{"mocks", []string{"list", "get", "publish", "unpublish"}},
		{"monitors", []string{"list", "get", "run"}},
	}

	for _, tt := range tests {
		group := findSubcommand(root, tt.group)
		require.NotNil(t, group, tt.group)
		assert.Len(t, group.Commands(), len(tt.subcommands), tt.group)

		for _, name := range tt.subcommands {
			sub := findSubcommand(group, name)
			if assert.NotNil(t, sub, "%s %s", tt.group, name) {
				assert.NotNil(t, sub.RunE)
			}
		}
	}

	deleteCmd := findSubcommand(findSubcommand(root, "collections"), "delete")
	force := deleteCmd.Flags().Lookup("force")
	require.NotNil(t, force)
	assert.Equal(t, "f", force.Shorthand)
	assert.Equal(t, "false", force.DefValue)
}

func TestMeCommand(t *testing.T) {
	useMemoryKeyring(t, keyring.Item{Key: constants.KeyringAPIKeyItem, Data: []byte(testAPIKey)})

	api, server := newFakeAPI(t)
	api.on("GET", "/me", `{"user":{"id":12345678,"username":"taylor","email":"taylor@example.com","fullName":"Taylor Lee"}}`)

	stdout, _, err := executeCommand(t, "", "me", "--base-url", server.URL)
	require.NoError(t, err)
	assert.Contains(t, stdout, "taylor@example.com")
	assert.Contains(t, stdout, "12345678")

	calls := api.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, testAPIKey, calls[0].APIKey)
}

func TestCollectionsListCommand(t *testing.T) {
	workspaceID := uuid.NewString()

	api, server := newFakeAPI(t)
	api.on("GET", "/collections?workspace="+workspaceID+"&limit=5",
		`{"collections":[{"id":"c1","name":"Pets","uid":"12345678-c1","owner":"12345678","updatedAt":"2026-01-01T00:00:00.000Z"}]}`)

	stdout, _, err := executeCommand(t, "", "collections", "list",
		"--api-key", testAPIKey, "--base-url", server.URL, "-w", workspaceID, "--limit", "5")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Pets")
	assert.Contains(t, stdout, "12345678-c1")
}

func TestCollectionsGetCommand_APIError(t *testing.T) {
	_, server := newFakeAPI(t)

	collectionID := uuid.NewString()

	_, _, err := executeCommand(t, "", "collections", "get", collectionID, "--api-key", testAPIKey, "--base-url", server.URL)
	require.Error(t, err)
	assert.True(t, postman.IsNotFound(err))
	assert.Contains(t, err.Error(), "failed to get collection: API call failed with status 404")
}

func TestCollectionsGetCommand_InvalidID(t *testing.T) {
	api, server := newFakeAPI(t)

	_, _, err := executeCommand(t, "", "collections", "get", "not-a-valid-id", "--api-key", testAPIKey, "--base-url", server.URL)
	require.ErrorIs(t, err, postman.ErrInvalidArgument)
	assert.Empty(t, api.calls())
}

func TestDeleteCommand(t *testing.T) {
	t.Run("cancelled", func(t *testing.T) {
		api, server := newFakeAPI(t)
		collectionID := uuid.NewString()

		stdout, _, err := executeCommand(t, "n\n", "collections", "delete", collectionID,
			"--api-key", testAPIKey, "--base-url", server.URL)
		require.NoError(t, err)
		assert.Contains(t, stdout, "Really delete collection '"+collectionID+"'? (y/N): ")
		assert.Contains(t, stdout, "Cancelled")
		assert.Empty(t, api.calls())
	})

	t.Run("confirmed", func(t *testing.T) {
		api, server := newFakeAPI(t)
		environmentID := uuid.NewString()
		api.on("DELETE", "/environments/"+environmentID, `{"environment":{"id":"`+environmentID+`"}}`)

		stdout, _, err := executeCommand(t, "yes\n", "environments", "delete", environmentID,
			"--api-key", testAPIKey, "--base-url", server.URL)
		require.NoError(t, err)
		assert.Contains(t, stdout, "Successfully deleted environment '"+environmentID+"'")
		assert.Len(t, api.calls(), 1)
	})

	t.Run("forced", func(t *testing.T) {
		api, server := newFakeAPI(t)
		specID := uuid.NewString()
		api.onStatus("DELETE", "/specs/"+specID, http.StatusNoContent, "")

		stdout, _, err := executeCommand(t, "", "specs", "delete", specID, "-f",
			"--api-key", testAPIKey, "--base-url", server.URL)
		require.NoError(t, err)
		assert.NotContains(t, stdout, "Really delete")
		assert.Contains(t, stdout, "Successfully deleted spec '"+specID+"'")
	})
}

func TestMocksPublishCommand(t *testing.T) {
	api, server := newFakeAPI(t)
	mockID := uuid.NewString()
	api.on("POST", "/mocks/"+mockID+"/publish", `{"mock":{"id":"`+mockID+`"}}`)
	api.on("DELETE", "/mocks/"+mockID+"/unpublish", `{"mock":{"id":"`+mockID+`"}}`)

	stdout, _, err := executeCommand(t, "", "mocks", "publish", mockID, "--api-key", testAPIKey, "--base-url", server.URL)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Successfully published mock")

	stdout, _, err = executeCommand(t, "", "mocks", "unpublish", mockID, "--api-key", testAPIKey, "--base-url", server.URL)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Successfully unpublished mock")

	calls := api.calls()
	require.Len(t, calls, 2)
	assert.Empty(t, calls[0].Body)
}

func TestMonitorsRunCommand(t *testing.T) {
	api, server := newFakeAPI(t)
	monitorID := uuid.NewString()
	api.on("POST", "/monitors/"+monitorID+"/run",
		`{"run":{"info":{"status":"success"},"stats":{"requests":{"total":4},"assertions":{"failed":0}}}}`)

	stdout, _, err := executeCommand(t, "", "monitors", "run", monitorID, "--api-key", testAPIKey, "--base-url", server.URL, "-o", "json")
	require.NoError(t, err)

	var run map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &run))
	assert.Contains(t, run, "run")
}

func TestVerboseLogsToStderr(t *testing.T) {
	api, server := newFakeAPI(t)
	api.on("GET", "/workspaces?type=team", `{"workspaces":[{"id":"w1","name":"Team","type":"team"}]}`)

	stdout, stderr, err := executeCommand(t, "", "workspaces", "list", "--type", "team",
		"--api-key", testAPIKey, "--base-url", server.URL, "-v")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Team")
	assert.Contains(t, stderr, "DEBUG HTTP Request")
	assert.Contains(t, stderr, "DEBUG HTTP Response")
	assert.NotContains(t, stderr, testAPIKey)
}
