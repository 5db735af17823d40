package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// convertResult converts a raw tool source result into text. A mapping
// carrying a truthy "error" value is a business-level failure and returns
// an error with the value's string form; other mappings and sequences are
// serialized as indented JSON; anything else is stringified.
func convertResult(result any) (string, error) {
	if m, ok := result.(map[string]any); ok {
		if v, exists := m["error"]; exists && isTruthy(v) {
			return "", errors.New(fmt.Sprint(v))
		}
	}

	switch reflect.ValueOf(result).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	return fmt.Sprint(result), nil
}

// isTruthy reports whether a decoded JSON value is truthy: not nil, false,
// zero, an empty string, or an empty collection.
func isTruthy(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0
	case int:
		return v != 0
	case int64:
		return v != 0
	case json.Number:
		return v.String() != "0" && v.String() != ""
	case map[string]any:
		return len(v) > 0
	case []any:
		return len(v) > 0
	}
	return true
}
