// Package normalize reconciles upstream records of variable shape into the
// canonical view-models in models. Every resolver takes a fixed priority
// list of candidate sources and falls back to an explicit default; given the
// same input it always produces the same output.
package normalize

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"bitbucket.org/mmdatafocus/console_backend/models"
)

// RawRecord is one decoded upstream object. Nil (from malformed input) is a
// valid receiver: every accessor returns its default.
type RawRecord map[string]interface{}

// DecodeRecord tolerates malformed input: anything that is not a JSON
// object decodes to nil, and the reconcilers produce an all-defaults record
// from it. The surrounding page renders an empty state instead of crashing.
func DecodeRecord(data []byte) RawRecord {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw RawRecord
	if err := dec.Decode(&raw); err != nil {
		return nil
	}
	return raw
}

// lookup walks a dotted path ("user.first_name") through nested objects.
func (r RawRecord) lookup(path string) (interface{}, bool) {
	if r == nil {
		return nil, false
	}
	segments := strings.Split(path, ".")
	var current interface{} = map[string]interface{}(r)
	for _, segment := range segments {
		obj, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = obj[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// String resolves the first candidate source holding a non-empty string.
// Numeric values (ids arrive as both "5" and 5 depending on the endpoint
// version) resolve to their decimal string form.
func (r RawRecord) String(paths ...string) string {
	for _, path := range paths {
		v, ok := r.lookup(path)
		if !ok || v == nil {
			continue
		}
		switch val := v.(type) {
		case string:
			if val != "" {
				return val
			}
		case json.Number:
			return val.String()
		case bool:
			return strconv.FormatBool(val)
		}
	}
	return ""
}

// Int resolves the first candidate source holding an integer (or an integer
// encoded as a string). Missing resolves to 0.
func (r RawRecord) Int(paths ...string) int {
	for _, path := range paths {
		v, ok := r.lookup(path)
		if !ok || v == nil {
			continue
		}
		switch val := v.(type) {
		case json.Number:
			if n, err := strconv.Atoi(val.String()); err == nil {
				return n
			}
		case string:
			if n, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
				return n
			}
		}
	}
	return 0
}

// Int64 is Int for sizes and counts that can exceed 32 bits.
func (r RawRecord) Int64(paths ...string) int64 {
	for _, path := range paths {
		v, ok := r.lookup(path)
		if !ok || v == nil {
			continue
		}
		switch val := v.(type) {
		case json.Number:
			if n, err := strconv.ParseInt(val.String(), 10, 64); err == nil {
				return n
			}
		case string:
			if n, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64); err == nil {
				return n
			}
		}
	}
	return 0
}

// Bool resolves the first candidate source holding a boolean.
func (r RawRecord) Bool(paths ...string) bool {
	for _, path := range paths {
		v, ok := r.lookup(path)
		if !ok || v == nil {
			continue
		}
		switch val := v.(type) {
		case bool:
			return val
		case string:
			if b, err := strconv.ParseBool(val); err == nil {
				return b
			}
		}
	}
	return false
}

// Amount resolves a monetary/percentage field. The original string form is
// the source of truth; a bare JSON number resolves to its literal text so
// no float round-trip ever touches it. Missing resolves to "".
func (r RawRecord) Amount(paths ...string) string {
	for _, path := range paths {
		v, ok := r.lookup(path)
		if !ok || v == nil {
			continue
		}
		switch val := v.(type) {
		case string:
			if val != "" {
				return val
			}
		case json.Number:
			return val.String()
		}
	}
	return ""
}

// Record resolves a nested object.
func (r RawRecord) Record(paths ...string) RawRecord {
	for _, path := range paths {
		v, ok := r.lookup(path)
		if !ok {
			continue
		}
		if obj, ok := v.(map[string]interface{}); ok {
			return RawRecord(obj)
		}
	}
	return nil
}

// Records resolves a nested array of objects. Non-object elements are
// skipped.
func (r RawRecord) Records(paths ...string) []RawRecord {
	for _, path := range paths {
		v, ok := r.lookup(path)
		if !ok {
			continue
		}
		arr, ok := v.([]interface{})
		if !ok {
			continue
		}
		out := make([]RawRecord, 0, len(arr))
		for _, elem := range arr {
			if obj, ok := elem.(map[string]interface{}); ok {
				out = append(out, RawRecord(obj))
			}
		}
		return out
	}
	return nil
}

// Ref resolves a relationship into its identifier and display halves.
// The id candidates and name candidates are tried independently so a flat
// "manager_id" can pair with a nested "manager.name".
func (r RawRecord) Ref(idPaths []string, namePaths []string) models.Ref {
	return models.Ref{
		Id:   r.String(idPaths...),
		Name: r.String(namePaths...),
	}
}

func reconcileCommon(raw RawRecord) models.CommonFields {
	return models.CommonFields{
		Id:        raw.String("id", "uuid"),
		CreatedAt: raw.String("created_at", "createdAt"),
		UpdatedAt: raw.String("updated_at", "updatedAt", "modified_at"),
	}
}
