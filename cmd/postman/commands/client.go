package commands

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/fivetwenty-io/postman-client/internal/constants"
	"github.com/fivetwenty-io/postman-client/pkg/postman"
	"github.com/fivetwenty-io/postman-client/pkg/postmanclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// API key sources, as reported by "config show".
const (
	sourceFlagOrEnv = "flag/env/config"
	sourceKeyring   = "keyring"
	sourceNone      = "none"
)

// resolveAPIKey looks at --api-key, POSTMAN_API_KEY and the config file
// first, then the keyring.
func resolveAPIKey() (string, string, error) {
	apiKey := strings.TrimSpace(viper.GetString("api-key"))
	if apiKey != "" {
		return apiKey, sourceFlagOrEnv, nil
	}

	apiKey, err := loadStoredAPIKey()
	if err != nil {
		return "", sourceNone, err
	}

	if apiKey == "" {
		return "", sourceNone, constants.ErrNoAPIKey
	}

	return apiKey, sourceKeyring, nil
}

// createClient builds an API client from the resolved CLI configuration.
func createClient(cmd *cobra.Command) (postman.Client, error) {
	apiKey, _, err := resolveAPIKey()
	if err != nil {
		return nil, err
	}

	config := &postman.Config{
		APIKey:    apiKey,
		BaseURL:   viper.GetString("base-url"),
		UserAgent: "postman-cli/" + cmd.Root().Version,
	}

	if viper.GetBool("verbose") {
		config.Logger = newStderrLogger(cmd.ErrOrStderr())
		config.Debug = true
	}

	client, err := postmanclient.New(cmd.Context(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// stderrLogger writes one "LEVEL msg key=value ..." line per entry.
type stderrLogger struct {
	mu  sync.Mutex
	out io.Writer
}

func newStderrLogger(out io.Writer) *stderrLogger {
	if out == nil {
		out = os.Stderr
	}

	return &stderrLogger{out: out}
}

func (l *stderrLogger) Debug(msg string, fields map[string]interface{}) {
	l.write("DEBUG", msg, fields)
}

func (l *stderrLogger) Info(msg string, fields map[string]interface{}) {
	l.write("INFO", msg, fields)
}

func (l *stderrLogger) Warn(msg string, fields map[string]interface{}) {
	l.write("WARN", msg, fields)
}

func (l *stderrLogger) Error(msg string, fields map[string]interface{}) {
	l.write("ERROR", msg, fields)
}

func (l *stderrLogger) write(level, msg string, fields map[string]interface{}) {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	var line strings.Builder

	line.WriteString(level)
	line.WriteString(" ")
	line.WriteString(msg)

	for _, key := range keys {
		fmt.Fprintf(&line, " %s=%v", key, fields[key])
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	_, _ = fmt.Fprintln(l.out, line.String())
}
