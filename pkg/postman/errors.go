package postman

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Static errors for err113 compliance.
var (
	// ErrInvalidArgument matches every InvalidArgumentError via errors.Is.
	ErrInvalidArgument = errors.New("invalid argument")

	ErrConfigRequired = errors.New("config is required")
	ErrAPIKeyRequired = errors.New("API key is required")
)

// InvalidArgumentError is returned before any network call when an
// identifier or other required argument is empty or malformed.
type InvalidArgumentError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *InvalidArgumentError) Error() string {
	return e.Message
}

// Is lets errors.Is(err, ErrInvalidArgument) match.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// APIError is returned for any response whose status is outside 200-299.
type APIError struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("API call failed with status %d: %s", e.StatusCode, serializeBody(e.Body))
}

// ErrorDetail is the error envelope the Postman API returns.
type ErrorDetail struct {
	Name    string `json:"name"    yaml:"name"`
	Message string `json:"message" yaml:"message"`
}

// Detail parses the Postman error envelope from the response body. Both
// {"error":{"name":..,"message":..}} and {"error":"..."} shapes are accepted.
func (e *APIError) Detail() *ErrorDetail {
	var envelope struct {
		Error json.RawMessage `json:"error"`
	}

	err := json.Unmarshal(e.Body, &envelope)
	if err != nil || len(envelope.Error) == 0 {
		return nil
	}

	var detail ErrorDetail

	err = json.Unmarshal(envelope.Error, &detail)
	if err == nil {
		return &detail
	}

	var message string

	err = json.Unmarshal(envelope.Error, &message)
	if err != nil {
		return nil
	}

	return &ErrorDetail{Message: message}
}

// serializeBody renders the body the way it appears in APIError messages:
// JSON bodies compacted, anything else JSON string quoted.
func serializeBody(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && json.Valid(trimmed) {
		var buf bytes.Buffer

		err := json.Compact(&buf, trimmed)
		if err == nil {
			return buf.String()
		}
	}

	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)

	err := encoder.Encode(string(body))
	if err != nil {
		return `""`
	}

	return strings.TrimSuffix(buf.String(), "\n")
}

func statusOf(err error) (int, bool) {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode, true
	}

	return 0, false
}

// IsNotFound checks if the error is a 404 API error.
func IsNotFound(err error) bool {
	status, ok := statusOf(err)

	return ok && status == http.StatusNotFound
}

// IsUnauthorized checks if the error is a 401 API error.
func IsUnauthorized(err error) bool {
	status, ok := statusOf(err)

	return ok && status == http.StatusUnauthorized
}

// IsForbidden checks if the error is a 403 API error.
func IsForbidden(err error) bool {
	status, ok := statusOf(err)

	return ok && status == http.StatusForbidden
}

// IsRateLimited checks if the error is a 429 API error.
func IsRateLimited(err error) bool {
	status, ok := statusOf(err)

	return ok && status == http.StatusTooManyRequests
}

// IsInvalidArgument checks if the error was raised by local input validation.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
