package client

import "github.com/fivetwenty-io/postman-client/pkg/postman"

// validateUIDs checks the UID arguments in order, so the first bad one is reported.
func validateUIDs(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		err := postman.ValidateUID(pairs[i], pairs[i+1])
		if err != nil {
			return err
		}
	}

	return nil
}

// validateIDs checks the ID arguments in order, so the first bad one is reported.
func validateIDs(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		err := postman.ValidateID(pairs[i], pairs[i+1])
		if err != nil {
			return err
		}
	}

	return nil
}

// envelope wraps a payload under the key the API expects, e.g. {"collection": ...}.
func envelope(key string, payload interface{}) map[string]interface{} {
	return map[string]interface{}{key: payload}
}

// addString appends key only when value is set.
func addString(query *postman.Query, key, value string) *postman.Query {
	if value != "" {
		query.Add(key, value)
	}

	return query
}
