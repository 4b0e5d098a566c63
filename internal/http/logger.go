package http

import (
	"fmt"

	"github.com/fivetwenty-io/postman-client/pkg/postman"
	"github.com/hashicorp/go-retryablehttp"
)

// leveledLogger routes retryablehttp's transport logs into a postman.Logger.
// Debug and info lines are only forwarded in debug mode.
type leveledLogger struct {
	logger postman.Logger
	debug  bool
}

var _ retryablehttp.LeveledLogger = (*leveledLogger)(nil)

func newLeveledLogger(logger postman.Logger, debug bool) *leveledLogger {
	return &leveledLogger{logger: logger, debug: debug}
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	if l.debug {
		l.logger.Info(msg, toFields(keysAndValues))
	}
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	if l.debug {
		l.logger.Debug(msg, toFields(keysAndValues))
	}
}

func toFields(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])
		if i+1 < len(keysAndValues) {
			fields[key] = keysAndValues[i+1]
		} else {
			fields[key] = nil
		}
	}

	return fields
}
