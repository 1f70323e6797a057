package rawlog

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
)

// Mapping is a string-keyed map that remembers insertion order, so projected
// structs marshal with their fields in declaration order.
type Mapping struct {
	keys   []string
	values map[string]any
}

// NewMapping creates an empty ordered mapping.
func NewMapping() *Mapping {
	return &Mapping{values: make(map[string]any)}
}

// Set adds or replaces a key. The first insertion fixes the key's position.
func (m *Mapping) Set(key string, value any) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key.
func (m *Mapping) Get(key string) (any, bool) {
	value, ok := m.values[key]

	return value, ok
}

// Keys returns the keys in insertion order. The slice is shared, not a copy.
func (m *Mapping) Keys() []string {
	return m.keys
}

// Len returns the number of keys.
func (m *Mapping) Len() int {
	return len(m.keys)
}

// MarshalJSON writes the mapping as a JSON object with keys in insertion
// order.
func (m *Mapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')

		value, err := json.Marshal(m.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// StructToMap projects a decoded struct into an ordered mapping keyed by the
// original C field names carried in atop struct tags.
//
// Reserved fields (any C name containing "future") are dropped, char arrays
// become lenient NUL-trimmed strings, and array fields declared with a limiter
// tag option are truncated to the live element count their sibling field
// reports. The projection never mutates its input.
func StructToMap(v any) *Mapping {
	value := reflect.ValueOf(v)
	for value.Kind() == reflect.Pointer {
		value = value.Elem()
	}

	return projectStruct(value)
}

type tagOptions struct {
	// numeric marks a byte-typed field that holds a number, not a character.
	numeric bool

	// limiter names the sibling field holding the array's live element count.
	limiter string
}

func parseTag(tag string) (string, tagOptions) {
	parts := strings.Split(tag, ",")

	var opts tagOptions
	for _, part := range parts[1:] {
		switch {
		case part == "num":
			opts.numeric = true
		case strings.HasPrefix(part, "limiter="):
			opts.limiter = strings.TrimPrefix(part, "limiter=")
		}
	}

	return parts[0], opts
}

func projectStruct(value reflect.Value) *Mapping {
	mapping := NewMapping()
	structType := value.Type()

	for i := 0; i < structType.NumField(); i++ {
		name, opts := parseTag(structType.Field(i).Tag.Get("atop"))
		if name == "" || strings.Contains(name, "future") {
			continue
		}

		mapping.Set(name, projectField(value, value.Field(i), opts))
	}

	return mapping
}

func projectField(parent, field reflect.Value, opts tagOptions) any {
	switch field.Kind() {
	case reflect.Struct:
		return projectStruct(field)
	case reflect.Array:
		if field.Type().Elem().Kind() == reflect.Uint8 && !opts.numeric {
			return decodeChars(field)
		}

		return projectArray(parent, field, opts)
	case reflect.Uint8:
		if !opts.numeric {
			return decodeBytes([]byte{byte(field.Uint())})
		}

		return field.Interface()
	default:
		return field.Interface()
	}
}

func projectArray(parent, field reflect.Value, opts tagOptions) []any {
	limit := field.Len()
	if opts.limiter != "" {
		if live, ok := limiterValue(parent, opts.limiter); ok && live < limit {
			limit = max(live, 0)
		}
	}

	elems := make([]any, 0, limit)
	for i := 0; i < limit; i++ {
		elem := field.Index(i)
		if elem.Kind() == reflect.Struct {
			elems = append(elems, projectStruct(elem))

			continue
		}

		elems = append(elems, elem.Interface())
	}

	return elems
}

// limiterValue resolves a limiter tag option against the parent struct by C
// field name.
func limiterValue(parent reflect.Value, limiter string) (int, bool) {
	structType := parent.Type()
	for i := 0; i < structType.NumField(); i++ {
		name, _ := parseTag(structType.Field(i).Tag.Get("atop"))
		if name != limiter {
			continue
		}

		sibling := parent.Field(i)
		switch sibling.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return int(sibling.Int()), true
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return int(sibling.Uint()), true
		default:
			return 0, false
		}
	}

	return 0, false
}

func decodeChars(field reflect.Value) string {
	b := make([]byte, field.Len())
	reflect.Copy(reflect.ValueOf(b), field)

	return decodeBytes(b)
}

// decodeBytes decodes C char data leniently: the first NUL terminates the
// string and bytes that do not form valid UTF-8 are dropped.
func decodeBytes(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}

	return strings.ToValidUTF8(string(b), "")
}
