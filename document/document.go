package document

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"

	"github.com/goccy/go-json"
)

// PathSeparator separates keys in a document path.
const PathSeparator = ":"

// ErrNotMapping is returned when a mapping is required but another value was found.
var ErrNotMapping = errors.New("document is not a mapping")

// Normalize returns v converted into the canonical document representation.
// The input is never modified; mappings and sequences are rebuilt.
func Normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = Normalize(vv)
		}

		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[keyString(k)] = Normalize(vv)
		}

		return out
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = Normalize(t[i])
		}

		return out
	case []map[string]any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = Normalize(t[i])
		}

		return out
	case json.Number:
		return normalizeNumber(t)
	default:
		return normalizeContainer(v)
	}
}

// normalizeContainer handles typed maps, slices and arrays such as
// map[string]string or []int. Byte slices are kept as scalars.
func normalizeContainer(v any) any {
	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Map:
		out := make(map[string]any, rv.Len())

		iter := rv.MapRange()
		for iter.Next() {
			out[keyString(iter.Key().Interface())] = Normalize(iter.Value().Interface())
		}

		return out
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return v
		}

		out := make([]any, rv.Len())
		for i := range out {
			out[i] = Normalize(rv.Index(i).Interface())
		}

		return out
	default:
		return normalizeScalar(v)
	}
}

// NormalizeMapping normalizes v and asserts that the result is a mapping.
// A nil value is the empty mapping.
func NormalizeMapping(v any) (map[string]any, error) {
	if v == nil {
		return map[string]any{}, nil
	}

	m, ok := Normalize(v).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrNotMapping, TypeName(v))
	}

	return m, nil
}

func normalizeScalar(v any) any {
	switch t := v.(type) {
	case int:
		return int64(t)
	case int8:
		return int64(t)
	case int16:
		return int64(t)
	case int32:
		return int64(t)
	case uint:
		return normalizeUnsigned(uint64(t))
	case uint8:
		return int64(t)
	case uint16:
		return int64(t)
	case uint32:
		return int64(t)
	case uint64:
		return normalizeUnsigned(t)
	case float32:
		return normalizeFloat(float64(t))
	case float64:
		return normalizeFloat(t)
	default:
		return v
	}
}

// normalizeFloat folds integral values that fit into int64, so 2.0 and 2
// are the same document value whichever parser produced them.
func normalizeFloat(f float64) any {
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return int64(f)
	}

	return f
}

func normalizeUnsigned(u uint64) any {
	if u <= math.MaxInt64 {
		return int64(u)
	}

	return u
}

func normalizeNumber(n json.Number) any {
	if i, err := n.Int64(); err == nil {
		return i
	}

	if f, err := n.Float64(); err == nil {
		return normalizeFloat(f)
	}

	return n.String()
}

func keyString(k any) string {
	if s, ok := k.(string); ok {
		return s
	}

	return fmt.Sprint(k)
}

// Clone returns a deep copy of a normalized document value.
func Clone(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = Clone(vv)
		}

		return out
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = Clone(t[i])
		}

		return out
	default:
		return v
	}
}

// CloneMapping is Clone for mappings.
func CloneMapping(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}

	out, _ := Clone(m).(map[string]any)

	return out
}

// SplitPath splits a colon separated path into keys. The empty path yields no keys.
func SplitPath(path string) []string {
	if path == "" {
		return nil
	}

	return strings.Split(path, PathSeparator)
}

// Lookup returns the value found at path inside doc.
func Lookup(doc any, path string) (any, bool) {
	current := doc

	for _, key := range SplitPath(path) {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}

		current, ok = m[key]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// SortedKeys returns the keys of m in lexical order.
func SortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// DecodeJSON decodes JSON text into a normalized document value.
// Numbers are decoded exactly and then normalized.
func DecodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any

	err := dec.Decode(&v)
	if err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}

	if dec.More() {
		return nil, errors.New("decoding JSON: unexpected data after value")
	}

	return Normalize(v), nil
}

// EncodeJSON encodes a document value as compact JSON.
func EncodeJSON(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding JSON: %w", err)
	}

	return data, nil
}

// TypeName describes the JSON type of a document value for error messages.
func TypeName(v any) string {
	switch normalizeScalar(v).(type) {
	case nil:
		return "null"
	case map[string]any, map[any]any:
		return "mapping"
	case []any:
		return "sequence"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int64, uint64:
		return "integer"
	case float64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
