// internal/asset/document.go
//
// Source documents are SFMC devtools metadata exports: arbitrary JSON with
// no fixed schema. Field names vary in casing between asset types and whole
// sub-objects may be missing, so every access has to tolerate absence.
// Document wraps a parsed JSON value and offers lookups that return zero
// values instead of faulting when a key or intermediate object is not there.

package asset

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Document is a single parsed metadata file.
type Document struct {
	root any
}

// ParseDocument decodes raw JSON into a Document. Any valid JSON value is
// accepted; documents whose top level is not an object simply resolve every
// lookup to absent.
func ParseDocument(data []byte) (Document, error) {
	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return Document{}, fmt.Errorf("asset: parse document: %w", err)
	}
	return Document{root: root}, nil
}

// Lookup walks nested objects along path and reports whether the final key
// resolved to a present, non-null value.
func (d Document) Lookup(path ...string) (any, bool) {
	current := d.root
	for _, key := range path {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	if current == nil {
		return nil, false
	}
	return current, true
}

// String resolves path to a scalar rendered as a string. Missing keys,
// null values, and non-scalar values all yield "".
func (d Document) String(path ...string) string {
	value, ok := d.Lookup(path...)
	if !ok {
		return ""
	}
	return stringify(value)
}

// Bool resolves path to a boolean. Anything other than a present JSON true
// yields false.
func (d Document) Bool(path ...string) bool {
	value, ok := d.Lookup(path...)
	if !ok {
		return false
	}
	b, _ := value.(bool)
	return b
}

// Array resolves key to a list of element Documents. The second return is
// false when the key is absent or not list-valued; an empty array reports
// true with zero elements.
func (d Document) Array(key string) ([]Document, bool) {
	value, ok := d.Lookup(key)
	if !ok {
		return nil, false
	}
	list, ok := value.([]any)
	if !ok {
		return nil, false
	}
	elements := make([]Document, len(list))
	for i, item := range list {
		elements[i] = Document{root: item}
	}
	return elements, true
}

// First tries each candidate path in order and returns the first one that
// resolves to a present value, rendered as a string. A present empty string
// still wins over later candidates.
func (d Document) First(paths ...[]string) string {
	for _, path := range paths {
		if value, ok := d.Lookup(path...); ok {
			return stringify(value)
		}
	}
	return ""
}

// stringify renders a JSON scalar the way it appeared in the source.
// Numbers keep their shortest representation (50, not 50.000000) so values
// like MaxLength round-trip into the CSV unchanged.
func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}
