// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package formtree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/danielhkuo/monthlog/models"
)

// Tree is a nested form value: field name -> scalar, sequence, or subtree
type Tree map[string]any

// Section is one named diff result, ready for payload assembly
type Section struct {
	Category string
	Diff     Tree
}

// RemoveDefaults returns the part of values that differs from defaults.
//
// Nested objects are diffed recursively and kept only when non-empty.
// Sequences are kept verbatim when non-empty, without comparing elements.
// Scalars are kept when not equal to the default at the same key.
//
// A nested key without a matching default object is diffed against an empty
// tree, so its whole non-empty subtree is kept. Callers that want to send only
// answered fields must keep values and defaults structurally identical.
func RemoveDefaults(values, defaults Tree) Tree {
	result := Tree{}

	for key, value := range values {
		if sub, ok := asTree(value); ok {
			subDefaults, _ := asTree(defaults[key])
			diff := RemoveDefaults(sub, subDefaults)
			if len(diff) > 0 {
				result[key] = diff
			}
			continue
		}

		if isSequence(value) {
			if reflect.ValueOf(value).Len() > 0 {
				result[key] = value
			}
			continue
		}

		def, ok := defaults[key]
		if !ok || !scalarEqual(value, def) {
			result[key] = value
		}
	}

	return result
}

// AssemblePayload attaches every non-empty diff under its category.
// An all-default form yields an empty, non-nil payload.
func AssemblePayload(sections ...Section) models.ContributionPayload {
	payload := models.ContributionPayload{}
	for _, s := range sections {
		if len(s.Diff) > 0 {
			payload[s.Category] = s.Diff
		}
	}
	return payload
}

// FromValue converts a JSON-tagged struct into a Tree using its JSON field names
func FromValue(v any) (Tree, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode form value: %w", err)
	}
	return FromJSON(data)
}

// FromJSON decodes a JSON object into a Tree
func FromJSON(data []byte) (Tree, error) {
	var t Tree
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&t); err != nil {
		return nil, fmt.Errorf("failed to decode form tree: %w", err)
	}
	if t == nil {
		return nil, fmt.Errorf("form tree must be a JSON object")
	}
	return t, nil
}

// asTree reports whether v is a plain nested object
func asTree(v any) (Tree, bool) {
	switch t := v.(type) {
	case Tree:
		return t, t != nil
	case map[string]any:
		return Tree(t), t != nil
	}
	return nil, false
}

func isSequence(v any) bool {
	if v == nil {
		return false
	}
	kind := reflect.TypeOf(v).Kind()
	return kind == reflect.Slice || kind == reflect.Array
}

// scalarEqual is strict equality with JSON number semantics: 7, int64(7)
// and 7.0 are the same value, but 0 and "0" are not.
func scalarEqual(a, b any) bool {
	if fa, ok := toFloat(a); ok {
		fb, ok := toFloat(b)
		return ok && fa == fb
	}
	if _, ok := toFloat(b); ok {
		return false
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if !ta.Comparable() {
		return reflect.DeepEqual(a, b)
	}
	return a == b
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
