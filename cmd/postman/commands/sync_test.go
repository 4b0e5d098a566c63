package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/fivetwenty-io/postman-client/internal/constants"
	"github.com/fivetwenty-io/postman-client/pkg/postman"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testRootSpec    = "openapi: 3.0.3\ninfo:\n  title: Pets API\n  version: 1.0.0\npaths: {}\n"
	testSchemasFile = "Pet:\n  type: object\n"
)

func writeSpecDir(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()

	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm))
		require.NoError(t, os.WriteFile(path, []byte(content), constants.ConfigFilePerm))
	}

	return dir
}

func TestCollectSpecFiles(t *testing.T) {
	t.Parallel()

	t.Run("walks nested files", func(t *testing.T) {
		t.Parallel()

		dir := writeSpecDir(t, map[string]string{
			"openapi.yaml":             testRootSpec,
			"components/schemas.yaml":  testSchemasFile,
			"components/examples.json": "{}",
			"README.md":                "# ignored",
		})

		files, err := collectSpecFiles(dir)
		require.NoError(t, err)

		paths := make([]string, len(files))
		for i, file := range files {
			paths[i] = file.Path
		}

		assert.Equal(t, []string{"components/examples.json", "components/schemas.yaml", "openapi.yaml"}, paths)
	})

	t.Run("no spec files", func(t *testing.T) {
		t.Parallel()

		dir := writeSpecDir(t, map[string]string{"README.md": "# nothing"})

		_, err := collectSpecFiles(dir)
		require.ErrorIs(t, err, constants.ErrNoSpecFiles)
	})
}

func TestFindRootFile(t *testing.T) {
	t.Parallel()

	t.Run("yaml root", func(t *testing.T) {
		t.Parallel()

		root, header, err := findRootFile([]*specFile{
			{Path: "components/schemas.yaml", Content: testSchemasFile},
			{Path: "openapi.yaml", Content: testRootSpec},
		})
		require.NoError(t, err)
		assert.Equal(t, "openapi.yaml", root.Path)
		assert.Equal(t, "Pets API", header.Info.Title)
	})

	t.Run("json root", func(t *testing.T) {
		t.Parallel()

		root, header, err := findRootFile([]*specFile{
			{Path: "asyncapi.json", Content: `{"asyncapi":"2.6.0","info":{"title":"Events"}}`},
		})
		require.NoError(t, err)
		assert.Equal(t, "asyncapi.json", root.Path)
		assert.Equal(t, "2.6.0", header.AsyncAPI)
	})

	t.Run("no root", func(t *testing.T) {
		t.Parallel()

		_, _, err := findRootFile([]*specFile{{Path: "schemas.yaml", Content: testSchemasFile}})
		require.ErrorIs(t, err, constants.ErrNoRootFile)
	})
}

func TestDetectSpecType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header specHeader
		want   string
	}{
		{"openapi 3.0", specHeader{OpenAPI: "3.0.3"}, constants.SpecTypeOpenAPI30},
		{"openapi 3.1", specHeader{OpenAPI: "3.1.0"}, constants.SpecTypeOpenAPI31},
		{"asyncapi 2", specHeader{AsyncAPI: "2.6.0"}, constants.SpecTypeAsyncAPI20},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := detectSpecType(&tt.header)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := detectSpecType(&specHeader{OpenAPI: "2.0"})
	require.ErrorIs(t, err, constants.ErrUnknownSpecType)
}

func TestSyncCommand_CreatesSpec(t *testing.T) {
	workspaceID := uuid.NewString()
	specID := uuid.NewString()
	collectionUID := "12345678-" + uuid.NewString()

	api, server := newFakeAPI(t)
	api.on("POST", "/specs?workspaceId="+workspaceID, `{"id":"`+specID+`","name":"Pets API"}`)
	api.on("PUT", "/collections/"+collectionUID+"/synchronizations?specId="+specID, `{"taskId":"t1"}`)

	dir := writeSpecDir(t, map[string]string{
		"openapi.yaml":            testRootSpec,
		"components/schemas.yaml": testSchemasFile,
	})

	stdout, _, err := executeCommand(t, "", "sync", dir, "-w", workspaceID, "--collection", collectionUID,
		"--api-key", testAPIKey, "--base-url", server.URL, "-o", "json")
	require.NoError(t, err)

	var summary struct {
		SpecID string `json:"specId"`
		Files  []struct {
			Path   string `json:"path"`
			Action string `json:"action"`
		} `json:"files"`
	}

	require.NoError(t, json.Unmarshal([]byte(stdout), &summary))
	assert.Equal(t, specID, summary.SpecID)
	require.Len(t, summary.Files, 2)
	assert.Equal(t, "components/schemas.yaml", summary.Files[0].Path)
	assert.Equal(t, syncActionCreated, summary.Files[0].Action)

	calls := api.calls()
	require.Len(t, calls, 2)

	var created postman.SpecCreateRequest
	require.NoError(t, json.Unmarshal([]byte(calls[0].Body), &created))
	assert.Equal(t, "Pets API", created.Name)
	assert.Equal(t, constants.SpecTypeOpenAPI30, created.Type)
	assert.Equal(t, []postman.SpecFile{
		{Path: "components/schemas.yaml", Content: testSchemasFile, Type: constants.SpecFileTypeDefault},
		{Path: "openapi.yaml", Content: testRootSpec, Type: constants.SpecFileTypeRoot},
	}, created.Files)

	assert.Equal(t, "PUT", calls[1].Method)
}

func TestSyncCommand_UpdatesExistingSpec(t *testing.T) {
	specID := uuid.NewString()

	api, server := newFakeAPI(t)
	api.on("GET", "/specs/"+specID+"/files", `{"files":[{"id":"f1","path":"openapi.yaml","type":"ROOT"}]}`)
	api.on("PATCH", "/specs/"+specID+"/files/openapi.yaml", `{"id":"f1"}`)
	api.on("POST", "/specs/"+specID+"/files", `{"id":"f2"}`)

	dir := writeSpecDir(t, map[string]string{
		"openapi.yaml":            testRootSpec,
		"components/schemas.yaml": testSchemasFile,
	})

	stdout, _, err := executeCommand(t, "", "sync", dir, "--spec-id", specID,
		"--api-key", testAPIKey, "--base-url", server.URL, "-q", "[.files[] | .action]")
	require.NoError(t, err)
	assert.JSONEq(t, `["created","updated"]`, stdout)

	calls := api.calls()
	require.Len(t, calls, 3)

	methods := []string{calls[1].Method, calls[2].Method}
	sort.Strings(methods)
	assert.Equal(t, []string{"PATCH", "POST"}, methods)

	for _, call := range calls[1:] {
		switch call.Method {
		case "PATCH":
			assert.JSONEq(t, `{"content":`+mustJSON(t, testRootSpec)+`}`, call.Body)
		case "POST":
			assert.JSONEq(t, `{"path":"components/schemas.yaml","content":`+mustJSON(t, testSchemasFile)+`}`, call.Body)
		}
	}
}

func TestSyncCommand_Errors(t *testing.T) {
	dir := writeSpecDir(t, map[string]string{"openapi.yaml": testRootSpec})

	t.Run("workspace required for new spec", func(t *testing.T) {
		_, server := newFakeAPI(t)

		_, _, err := executeCommand(t, "", "sync", dir, "--api-key", testAPIKey, "--base-url", server.URL)
		require.ErrorIs(t, err, constants.ErrWorkspaceRequired)
	})

	t.Run("name required without title", func(t *testing.T) {
		_, server := newFakeAPI(t)
		untitled := writeSpecDir(t, map[string]string{"openapi.yaml": "openapi: 3.1.0\npaths: {}\n"})

		_, _, err := executeCommand(t, "", "sync", untitled, "-w", uuid.NewString(),
			"--api-key", testAPIKey, "--base-url", server.URL)
		require.ErrorIs(t, err, constants.ErrNameRequired)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, server := newFakeAPI(t)
		swagger := writeSpecDir(t, map[string]string{"openapi.yaml": "openapi: 2.0.0\ninfo:\n  title: Old\n"})

		_, _, err := executeCommand(t, "", "sync", swagger, "-w", uuid.NewString(),
			"--api-key", testAPIKey, "--base-url", server.URL)
		require.ErrorIs(t, err, constants.ErrUnknownSpecType)
	})

	t.Run("missing spec id in response", func(t *testing.T) {
		workspaceID := uuid.NewString()
		api, server := newFakeAPI(t)
		api.on("POST", "/specs?workspaceId="+workspaceID, `{"name":"Pets API"}`)

		_, _, err := executeCommand(t, "", "sync", dir, "-w", workspaceID,
			"--api-key", testAPIKey, "--base-url", server.URL)
		require.ErrorIs(t, err, constants.ErrMissingSpecID)
	})

	t.Run("upload failure", func(t *testing.T) {
		specID := uuid.NewString()
		api, server := newFakeAPI(t)
		api.on("GET", "/specs/"+specID+"/files", `{"files":[{"path":"openapi.yaml"}]}`)

		_, _, err := executeCommand(t, "", "sync", dir, "--spec-id", specID,
			"--api-key", testAPIKey, "--base-url", server.URL)
		require.Error(t, err)
		assert.True(t, postman.IsNotFound(err))
		assert.Contains(t, err.Error(), "failed to update openapi.yaml")
	})
}

func mustJSON(t *testing.T, value string) string {
	t.Helper()

	encoded, err := json.Marshal(value)
	require.NoError(t, err)

	return string(encoded)
}
