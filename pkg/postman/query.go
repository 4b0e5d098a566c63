package postman

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// QueryParam is a single query string entry.
type QueryParam struct {
	Key   string
	Value interface{}
}

// Query is an ordered set of query parameters. Entries keep insertion order;
// nil values (including nil pointers) are dropped at encode time.
type Query struct {
	params []QueryParam
}

// NewQuery creates an empty query.
func NewQuery() *Query {
	return &Query{}
}

// Add appends a parameter. Adding an existing key appends another entry.
func (q *Query) Add(key string, value interface{}) *Query {
	q.params = append(q.params, QueryParam{Key: key, Value: value})

	return q
}

// Set replaces the value of the first entry with key, or appends it.
func (q *Query) Set(key string, value interface{}) *Query {
	for i := range q.params {
		if q.params[i].Key == key {
			q.params[i].Value = value

			return q
		}
	}

	return q.Add(key, value)
}

// Params returns a copy of the entries in insertion order.
func (q *Query) Params() []QueryParam {
	if q == nil {
		return nil
	}

	out := make([]QueryParam, len(q.params))
	copy(out, q.params)

	return out
}

// Encode renders the query as "?k1=v1&k2=v2", or "" when no entry survives
// nil filtering.
func (q *Query) Encode() string {
	if q == nil {
		return ""
	}

	parts := make([]string, 0, len(q.params))

	for _, param := range q.params {
		value, ok := stringifyQueryValue(param.Value)
		if !ok {
			continue
		}

		parts = append(parts, queryEscape(param.Key)+"="+queryEscape(value))
	}

	if len(parts) == 0 {
		return ""
	}

	return "?" + strings.Join(parts, "&")
}

// queryEscape percent-encodes s, writing spaces as %20 rather than '+'.
func queryEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// BuildQueryString encodes params; a nil query yields "".
func BuildQueryString(params *Query) string {
	return params.Encode()
}

// stringifyQueryValue returns false for values that must be omitted.
func stringifyQueryValue(value interface{}) (string, bool) {
	if value == nil {
		return "", false
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "", false
		}

		rv = rv.Elem()
	}

	switch typed := rv.Interface().(type) {
	case string:
		return typed, true
	case bool:
		return strconv.FormatBool(typed), true
	case time.Time:
		return typed.UTC().Format(time.RFC3339), true
	case float32:
		return strconv.FormatFloat(float64(typed), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), true
	case fmt.Stringer:
		return typed.String(), true
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.String:
		return rv.String(), true
	case reflect.Slice, reflect.Array:
		items := make([]string, 0, rv.Len())

		for i := 0; i < rv.Len(); i++ {
			item, ok := stringifyQueryValue(rv.Index(i).Interface())
			if ok {
				items = append(items, item)
			}
		}

		return strings.Join(items, ","), true
	default:
		return fmt.Sprint(rv.Interface()), true
	}
}
