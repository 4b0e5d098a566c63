package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIKey           = errors.New("no API key configured, use 'postman config set-api-key' or set POSTMAN_API_KEY")
	ErrEmptyAPIKey        = errors.New("API key cannot be empty")
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// Validation errors.
var (
	ErrInvalidOutputFormat = errors.New("invalid output format, use table, json or yaml")
	ErrWorkspaceRequired   = errors.New("--workspace flag is required")
	ErrNameRequired        = errors.New("--name flag is required")
	ErrNoSpecFiles         = errors.New("no spec files given")
	ErrUnknownSpecType     = errors.New("could not detect spec type, pass --type")
	ErrNoRootFile          = errors.New("no file with an openapi or asyncapi version key found")
)

// Transport errors.
var (
	ErrUnexpectedResponse  = errors.New("unexpected response shape")
	ErrMissingSpecID       = errors.New("spec creation response has no id")
	ErrRequestBodyTooLarge = errors.New("request body exceeds configured maximum length")
	ErrResponseTooLarge    = errors.New("response body exceeds configured maximum length")
)
