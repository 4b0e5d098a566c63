//go:build integration

package integration

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/google/uuid"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	APIKey      string
	WorkspaceID string
	BinaryPath  string
	Verbose     bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIKey:      os.Getenv("POSTMAN_API_KEY"),
		WorkspaceID: os.Getenv("POSTMAN_TEST_WORKSPACE_ID"),
		BinaryPath:  getBinaryPath(),
		Verbose:     os.Getenv("POSTMAN_TEST_VERBOSE") == "true",
	}
}

// getBinaryPath determines the path to the postman binary
func getBinaryPath() string {
	if path := os.Getenv("POSTMAN_BINARY_PATH"); path != "" {
		return path
	}

	for _, candidate := range []string{"../../postman", "./postman", "../postman"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "postman"
}

// SkipIfMissingConfig skips test if required config is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.APIKey == "" {
		t.Skip("POSTMAN_API_KEY not set, skipping integration test")
	}

	if _, err := exec.LookPath(config.BinaryPath); err != nil {
		t.Skipf("postman binary not found at %s, skipping integration test", config.BinaryPath)
	}
}

// SkipIfNoWorkspace skips tests that create resources
func (config *TestConfig) SkipIfNoWorkspace(t *testing.T) {
	t.Helper()

	if config.WorkspaceID == "" {
		t.Skip("POSTMAN_TEST_WORKSPACE_ID not set, skipping test that creates resources")
	}
}

// CommandRunner provides utilities for running postman commands
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{config: config, t: t}
}

// Run executes a postman command and returns output
func (runner *CommandRunner) Run(args ...string) (string, string, error) {
	return runner.RunWithInput("", args...)
}

// RunWithInput executes a postman command with stdin input
func (runner *CommandRunner) RunWithInput(input string, args ...string) (string, string, error) {
	cmd := exec.Command(runner.config.BinaryPath, args...)
	cmd.Env = append(os.Environ(), "POSTMAN_API_KEY="+runner.config.APIKey)

	var stdoutBuf, stderrBuf bytes.Buffer

	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	cmd.Stdin = strings.NewReader(input)

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.BinaryPath, strings.Join(args, " "))
	}

	err := cmd.Run()
	stdout, stderr := stdoutBuf.String(), stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// CleanupResource attempts to delete a test resource
func (runner *CommandRunner) CleanupResource(group, id string) {
	stdout, stderr, err := runner.Run(group, "delete", id, "--force")
	if err != nil && runner.config.Verbose {
		runner.t.Logf("Cleanup warning for %s %s: %s\nStderr: %s", group, id, stdout, stderr)
	}
}

// GenerateTestName creates a unique test resource name
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString()[:8])
}

// AssertJSONOutput verifies command output is valid JSON
func AssertJSONOutput(t *testing.T, output string) {
	t.Helper()

	output = strings.TrimSpace(output)
	if !strings.HasPrefix(output, "{") && !strings.HasPrefix(output, "[") && !strings.HasPrefix(output, "\"") {
		t.Errorf("Output does not appear to be JSON: %s", output)
	}
}
