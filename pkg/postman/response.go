package postman

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrEmptyResponseBody is returned by Decode when there is nothing to decode.
var ErrEmptyResponseBody = errors.New("empty response body")

// Response is a successful API response, returned exactly as received.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       json.RawMessage
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v interface{}) error {
	if len(r.Body) == 0 {
		return ErrEmptyResponseBody
	}

	err := json.Unmarshal(r.Body, v)
	if err != nil {
		return fmt.Errorf("parsing response body: %w", err)
	}

	return nil
}

// Data decodes the body into a generic JSON value.
func (r *Response) Data() (interface{}, error) {
	var data interface{}

	err := r.Decode(&data)
	if err != nil {
		return nil, err
	}

	return data, nil
}
