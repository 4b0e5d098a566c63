package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/postman-client/internal/constants"
	"github.com/fivetwenty-io/postman-client/pkg/postman"
	"github.com/itchyny/gojq"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// column maps a table header to a dotted field path, e.g. "owner" or "info.name".
type column struct {
	Header string
	Field  string
}

// tableView describes how a response renders as a table. Key selects the
// list or object in the body, such as "collections" or "collection".
type tableView struct {
	Key     string
	Columns []column
	Empty   string
}

// renderResponse writes resp in the configured output format. A --query
// expression is applied first; its result is never tabulated.
func renderResponse(w io.Writer, resp *postman.Response, view *tableView) error {
	data, err := resp.Data()
	if err != nil {
		return err
	}

	return render(w, data, view)
}

func render(w io.Writer, data interface{}, view *tableView) error {
	format := viper.GetString("output")
	query := viper.GetString("query")

	if query != "" {
		filtered, err := applyQuery(data, query)
		if err != nil {
			return err
		}

		data = filtered
		view = nil
	}

	switch format {
	case constants.FormatJSON:
		return writeJSON(w, data)
	case constants.FormatYAML:
		return writeYAML(w, data)
	case constants.FormatTable, "":
		if view == nil {
			return writeJSON(w, data)
		}

		return writeTable(w, data, view)
	default:
		return fmt.Errorf("%w: %s", constants.ErrInvalidOutputFormat, format)
	}
}

// applyQuery runs a jq expression over data. Several results come back as a list.
func applyQuery(data interface{}, expression string) (interface{}, error) {
	query, err := gojq.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid query expression: %w", err)
	}

	iter := query.Run(data)

	var results []interface{}

	for {
		value, ok := iter.Next()
		if !ok {
			break
		}

		if runErr, isErr := value.(error); isErr {
			return nil, fmt.Errorf("query error: %w", runErr)
		}

		results = append(results, value)
	}

	if len(results) == 1 {
		return results[0], nil
	}

	return results, nil
}

func writeJSON(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

	return encoder.Encode(data)
}

func writeYAML(w io.Writer, data interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(constants.JSONIndentSize)

	err := encoder.Encode(integralNumbers(data))
	if err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}

	return encoder.Close()
}

func writeTable(w io.Writer, data interface{}, view *tableView) error {
	selected := data
	if view.Key != "" {
		object, ok := data.(map[string]interface{})
		if !ok {
			return fmt.Errorf("%w: expected an object with %q", constants.ErrUnexpectedResponse, view.Key)
		}

		selected = object[view.Key]
	}

	table := tablewriter.NewWriter(w)

	switch typed := selected.(type) {
	case []interface{}:
		if len(typed) == 0 {
			_, err := fmt.Fprintln(w, view.Empty)

			return err
		}

		headers := make([]any, len(view.Columns))
		for i, col := range view.Columns {
			headers[i] = col.Header
		}

		table.Header(headers...)

		for _, item := range typed {
			row := make([]string, len(view.Columns))
			for i, col := range view.Columns {
				row[i] = lookupField(item, col.Field)
			}

			_ = table.Append(row)
		}
	case map[string]interface{}:
		table.Header("Property", "Value")

		for _, col := range view.Columns {
			_ = table.Append([]string{col.Header, lookupField(typed, col.Field)})
		}
	default:
		return fmt.Errorf("%w: %q is not a list or object", constants.ErrUnexpectedResponse, view.Key)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// lookupField walks a dotted path through nested objects.
func lookupField(item interface{}, path string) string {
	current := item

	for _, part := range strings.Split(path, ".") {
		object, ok := current.(map[string]interface{})
		if !ok {
			return constants.NotAvailable
		}

		current, ok = object[part]
		if !ok || current == nil {
			return constants.NotAvailable
		}
	}

	return formatValue(current)
}

func formatValue(value interface{}) string {
	switch typed := value.(type) {
	case string:
		return typed
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(typed)
	case []interface{}:
		parts := make([]string, len(typed))
		for i, item := range typed {
			parts[i] = formatValue(item)
		}

		return strings.Join(parts, ", ")
	default:
		encoded, err := json.Marshal(typed)
		if err != nil {
			return fmt.Sprint(typed)
		}

		return string(encoded)
	}
}

// integralNumbers turns whole float64 values into int64 so YAML prints
// 12345678 instead of 1.2345678e+07.
func integralNumbers(value interface{}) interface{} {
	switch typed := value.(type) {
	case float64:
		if typed == math.Trunc(typed) && math.Abs(typed) < math.MaxInt64 {
			return int64(typed)
		}

		return typed
	case []interface{}:
		out := make([]interface{}, len(typed))
		for i, item := range typed {
			out[i] = integralNumbers(item)
		}

		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(typed))
		for key, item := range typed {
			out[key] = integralNumbers(item)
		}

		return out
	default:
		return value
	}
}

// maskSecret keeps only the last few characters visible.
func maskSecret(secret string) string {
	if len(secret) <= constants.MaskVisibleChars {
		return constants.MaskedSecret
	}

	return constants.MaskedSecret + secret[len(secret)-constants.MaskVisibleChars:]
}
