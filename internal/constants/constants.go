package constants

import "time"

// Wire headers sent with every request.
const (
	// HeaderContentType is the content type header name.
	HeaderContentType = "Content-Type"

	// HeaderAPIKey carries the Postman API key.
	HeaderAPIKey = "X-API-Key"

	// HeaderUserAgent is the user agent header name.
	HeaderUserAgent = "User-Agent"

	// ContentTypeJSON is the only content type the API accepts.
	ContentTypeJSON = "application/json"

	// DefaultUserAgent identifies this SDK.
	DefaultUserAgent = "postman-client-go/1.0.0"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// CLI configuration.
const (
	// EnvPrefix is the prefix viper binds environment variables with.
	EnvPrefix = "POSTMAN"

	// EnvAPIKey is the environment variable holding the API key.
	EnvAPIKey = "POSTMAN_API_KEY"

	// ConfigDirName is the directory under $HOME holding the CLI config.
	ConfigDirName = ".postman"

	// ConfigFileName is the config file name without extension.
	ConfigFileName = "config"

	// ConfigFileType is the config file format.
	ConfigFileType = "yaml"

	// KeyringService is the OS keyring service name for stored API keys.
	KeyringService = "postman-cli"

	// KeyringAPIKeyItem is the keyring item key for the API key.
	KeyringAPIKeyItem = "api-key"
)

// Retry configuration used when retries are switched on.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Concurrency limits.
const (
	// DefaultConcurrencyLimit limits concurrent spec file uploads.
	DefaultConcurrencyLimit = 3
)

// HTTP status range treated as success.
const (
	// StatusSuccessMin is the lowest successful status code.
	StatusSuccessMin = 200

	// StatusSuccessMax is the highest successful status code.
	StatusSuccessMax = 299
)

// Output formats.
const (
	// FormatTable renders tables.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2
)

// Spec types accepted by Spec Hub.
const (
	// SpecTypeOpenAPI30 is an OpenAPI 3.0 spec.
	SpecTypeOpenAPI30 = "OPENAPI:3.0"

	// SpecTypeOpenAPI31 is an OpenAPI 3.1 spec.
	SpecTypeOpenAPI31 = "OPENAPI:3.1"

	// SpecTypeAsyncAPI20 is an AsyncAPI 2.0 spec.
	SpecTypeAsyncAPI20 = "ASYNCAPI:2.0"

	// SpecFileTypeRoot marks the root file of a multi-file spec.
	SpecFileTypeRoot = "ROOT"

	// SpecFileTypeDefault marks a non-root file.
	SpecFileTypeDefault = "DEFAULT"
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// MaskVisibleChars is how many trailing characters of a secret are shown.
	MaskVisibleChars = 4

	// ConfirmationYes for positive confirmations.
	ConfirmationYes = "yes"
)
