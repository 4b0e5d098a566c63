package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fivetwenty-io/postman-client/internal/constants"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testView = &tableView{
	Key: "collections",
	Columns: []column{
		{Header: "Name", Field: "name"},
		{Header: "Owner", Field: "owner.id"},
		{Header: "Tags", Field: "tags"},
	},
	Empty: "No collections found",
}

func testData() map[string]interface{} {
	return map[string]interface{}{
		"collections": []interface{}{
			map[string]interface{}{
				"name":  "Pets",
				"owner": map[string]interface{}{"id": float64(12345678)},
				"tags":  []interface{}{"beta", "internal"},
			},
			map[string]interface{}{"name": "Orders"},
		},
	}
}

func renderWith(t *testing.T, output, query string, data interface{}, view *tableView) (string, error) {
	t.Helper()
	resetViper(t)

	viper.Set("output", output)
	viper.Set("query", query)

	var buf bytes.Buffer
	err := render(&buf, data, view)

	return buf.String(), err
}

func TestRender(t *testing.T) {
	t.Run("table list", func(t *testing.T) {
		out, err := renderWith(t, constants.FormatTable, "", testData(), testView)
		require.NoError(t, err)
		assert.Contains(t, out, "Pets")
		assert.Contains(t, out, "12345678")
		assert.Contains(t, out, "beta, internal")
		assert.Contains(t, out, "Orders")
		assert.Contains(t, out, constants.NotAvailable)
	})

	t.Run("table empty list", func(t *testing.T) {
		out, err := renderWith(t, constants.FormatTable, "", map[string]interface{}{"collections": []interface{}{}}, testView)
		require.NoError(t, err)
		assert.Equal(t, "No collections found\n", out)
	})

	t.Run("table object", func(t *testing.T) {
		view := &tableView{Key: "collection", Columns: []column{{Header: "Name", Field: "info.name"}}}
		data := map[string]interface{}{"collection": map[string]interface{}{"info": map[string]interface{}{"name": "Pets"}}}

		out, err := renderWith(t, "", "", data, view)
		require.NoError(t, err)
		assert.Contains(t, out, "Name")
		assert.Contains(t, out, "Pets")
	})

	t.Run("table missing key", func(t *testing.T) {
		_, err := renderWith(t, constants.FormatTable, "", map[string]interface{}{"error": "x"}, testView)
		require.ErrorIs(t, err, constants.ErrUnexpectedResponse)
	})

	t.Run("table without view falls back to json", func(t *testing.T) {
		out, err := renderWith(t, constants.FormatTable, "", map[string]interface{}{"ok": true}, nil)
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"ok\": true\n}\n", out)
	})

	t.Run("json", func(t *testing.T) {
		out, err := renderWith(t, constants.FormatJSON, "", map[string]interface{}{"id": float64(12345678)}, testView)
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"id\": 12345678\n}\n", out)
	})

	t.Run("yaml keeps integers", func(t *testing.T) {
		out, err := renderWith(t, constants.FormatYAML, "", map[string]interface{}{"id": float64(12345678), "ratio": 0.5}, testView)
		require.NoError(t, err)
		assert.Equal(t, "id: 12345678\nratio: 0.5\n", out)
	})

	t.Run("query single result", func(t *testing.T) {
		out, err := renderWith(t, constants.FormatTable, ".collections[0].name", testData(), testView)
		require.NoError(t, err)
		assert.Equal(t, "\"Pets\"\n", out)
	})

	t.Run("query several results", func(t *testing.T) {
		out, err := renderWith(t, constants.FormatJSON, ".collections[].name", testData(), testView)
		require.NoError(t, err)
		assert.JSONEq(t, `["Pets","Orders"]`, out)
	})

	t.Run("invalid query", func(t *testing.T) {
		_, err := renderWith(t, constants.FormatJSON, ".collections[", testData(), testView)
		require.Error(t, err)
		assert.True(t, strings.HasPrefix(err.Error(), "invalid query expression"))
	})

	t.Run("query runtime error", func(t *testing.T) {
		_, err := renderWith(t, constants.FormatJSON, ".collections.name", testData(), testView)
		require.Error(t, err)
		assert.True(t, strings.HasPrefix(err.Error(), "query error"))
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := renderWith(t, "csv", "", testData(), testView)
		require.ErrorIs(t, err, constants.ErrInvalidOutputFormat)
	})
}

func TestLookupField(t *testing.T) {
	t.Parallel()

	item := map[string]interface{}{
		"name":    "Pets",
		"count":   float64(3),
		"shared":  true,
		"owner":   map[string]interface{}{"id": "12345678"},
		"missing": nil,
	}

	assert.Equal(t, "Pets", lookupField(item, "name"))
	assert.Equal(t, "3", lookupField(item, "count"))
	assert.Equal(t, "true", lookupField(item, "shared"))
	assert.Equal(t, "12345678", lookupField(item, "owner.id"))
	assert.Equal(t, constants.NotAvailable, lookupField(item, "missing"))
	assert.Equal(t, constants.NotAvailable, lookupField(item, "owner.name"))
	assert.Equal(t, constants.NotAvailable, lookupField(item, "name.first"))
	assert.JSONEq(t, `{"id":"12345678"}`, lookupField(item, "owner"))
}

func TestMaskSecret(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "***cdef", maskSecret(testAPIKey))
	assert.Equal(t, constants.MaskedSecret, maskSecret("abcd"))
	assert.Equal(t, constants.MaskedSecret, maskSecret(""))
}
