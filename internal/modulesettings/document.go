package modulesettings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"

	opts "github.com/goliatone/go-options/layering"
)

// Document is an untyped settings tree as it travels over the wire and
// through the database: setting name to value, nested sections as Documents
// or map[string]any.
type Document map[string]any

// ParseDocument decodes a JSON object. Empty input yields an empty Document.
func ParseDocument(raw []byte) (Document, error) {
	doc := Document{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return doc, nil
	}

	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		doc = Document{}
	}

	return doc, nil
}

// ToDocument converts a settings struct to its Document form.
func ToDocument(v any) (Document, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	return ParseDocument(raw)
}

// Merge returns a deep copy of base with over applied on top. Nested sections
// are merged key by key; any other value in over replaces the one in base.
func Merge(base, over Document) Document {
	merged := opts.MergeLayers(over, base)
	if merged == nil {
		return Document{}
	}

	return merged
}

// Apply decodes over onto a copy of defaults. Sections present in over are
// merged field by field, everything else keeps its default value.
func Apply[T any](defaults T, over Document) (T, error) {
	var out T

	raw, err := json.Marshal(defaults)
	if err != nil {
		return out, err
	}
	if err = json.Unmarshal(raw, &out); err != nil {
		return out, err
	}

	if len(over) == 0 {
		return out, nil
	}

	raw, err = json.Marshal(over)
	if err != nil {
		return out, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	if err = dec.Decode(&out); err != nil {
		return out, fmt.Errorf("apply settings override: %w", err)
	}

	return out, nil
}

// Check reports every key of doc that settings type t does not declare and
// every value whose JSON type does not fit the field. Keys are dotted paths
// below prefix.
func Check(t reflect.Type, doc Document, prefix string) map[string]string {
	problems := make(map[string]string)
	walk(t, doc, prefix, nil, problems)

	return problems
}

// Prune returns a copy of doc without the keys Check would report, and the
// paths that were dropped.
func Prune(t reflect.Type, doc Document) (Document, []string) {
	problems := make(map[string]string)
	kept := Document{}
	walk(t, doc, "", kept, problems)

	paths := make([]string, 0, len(problems))
	for p := range problems {
		paths = append(paths, p)
	}

	return kept, paths
}

func walk(t reflect.Type, doc Document, prefix string, kept Document, problems map[string]string) {
	fields := jsonFields(t)

	for key, value := range doc {
		path := joinPath(prefix, key)

		field, ok := fields[key]
		if !ok {
			problems[path] = "is not a known setting"
			continue
		}

		if field.Kind() == reflect.Struct {
			section, isMap := asMap(value)
			if !isMap {
				problems[path] = "must be an object"
				continue
			}

			var sub Document
			if kept != nil {
				sub = Document{}
			}

			walk(field, section, path, sub, problems)

			if kept != nil {
				kept[key] = map[string]any(sub)
			}

			continue
		}

		if msg := checkScalar(field, value); msg != "" {
			problems[path] = msg
			continue
		}

		if kept != nil {
			kept[key] = value
		}
	}
}

func checkScalar(t reflect.Type, value any) string {
	switch t.Kind() {
	case reflect.Bool:
		if _, ok := value.(bool); !ok {
			return "must be true or false"
		}
	case reflect.String:
		if _, ok := value.(string); !ok {
			return "must be a string"
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, ok := toFloat(value)
		if !ok || math.IsInf(n, 0) || n != math.Trunc(n) {
			return "must be an integer"
		}
		if !fitsKind(t, n) {
			return "is out of range"
		}
	case reflect.Float32, reflect.Float64:
		n, ok := toFloat(value)
		if !ok {
			return "must be a number"
		}
		if !fitsKind(t, n) {
			return "is out of range"
		}
	default:
	}

	return ""
}

// jsonFields maps JSON names to field types for struct type t.
func jsonFields(t reflect.Type) map[string]reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	out := make(map[string]reflect.Type, t.NumField())

	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		switch name {
		case "-":
			continue
		case "":
			name = f.Name
		}

		ft := f.Type
		for ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}

		out[name] = ft
	}

	return out
}

func asMap(v any) (Document, bool) {
	switch m := v.(type) {
	case Document:
		return m, true
	case map[string]any:
		return Document(m), true
	default:
		return nil, false
	}
}

// fitsKind reports whether n can be stored in a field of
// type t without overflow.
func fitsKind(t reflect.Type, n float64) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if n < -(1 << 63) || n >= 1<<63 {
			return false
		}

		return !reflect.Zero(t).OverflowInt(int64(n))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if n < 0 || n >= 1<<64 {
			return false
		}

		return !reflect.Zero(t).OverflowUint(uint64(n))
	case reflect.Float32, reflect.Float64:
		return !reflect.Zero(t).OverflowFloat(n)
	default:
		return true
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}

	return prefix + "." + key
}
