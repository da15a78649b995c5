package api

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// The backend wraps payloads inconsistently across endpoints: a bare array,
// {"<key>": [...]}, {"data": [...]}, {"success":..,"message":..,"data":
// {"<key>": [...]}}, and occasionally one more "data" layer inside that.
// Everything below normalizes those shapes in one place so resource methods
// and their callers only ever see one.

const maxEnvelopeDepth = 3

// findArray returns the first JSON array found at the top level, under one of
// names, or under a "data" wrapper, walking at most maxEnvelopeDepth levels.
func findArray(raw json.RawMessage, names ...string) (json.RawMessage, bool) {
	return findArrayDepth(raw, names, 0)
}

func findArrayDepth(raw json.RawMessage, names []string, depth int) (json.RawMessage, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || depth > maxEnvelopeDepth {
		return nil, false
	}
	if raw[0] == '[' {
		return raw, true
	}
	if raw[0] != '{' {
		return nil, false
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, false
	}
	for _, name := range names {
		if v, ok := lookup(obj, name); ok {
			if arr, ok := findArrayDepth(v, names, depth+1); ok {
				return arr, true
			}
		}
	}
	if v, ok := lookup(obj, "data"); ok {
		return findArrayDepth(v, names, depth+1)
	}
	return nil, false
}

// findObject is findArray's sibling for single-record responses.
func findObject(raw json.RawMessage, names ...string) (json.RawMessage, bool) {
	return findObjectDepth(raw, names, 0)
}

func findObjectDepth(raw json.RawMessage, names []string, depth int) (json.RawMessage, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' || depth > maxEnvelopeDepth {
		return nil, false
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, false
	}
	for _, name := range names {
		if v, ok := lookup(obj, name); ok {
			v = bytes.TrimSpace(v)
			if len(v) > 0 && v[0] == '{' {
				return v, true
			}
		}
	}
	if v, ok := lookup(obj, "data"); ok {
		if inner, ok := findObjectDepth(v, names, depth+1); ok {
			return inner, true
		}
		v = bytes.TrimSpace(v)
		if len(v) > 0 && v[0] == '{' {
			return v, true
		}
	}
	return raw, true // already the bare record
}

// findInt hunts pagination counters ("pages", "totalPages", "total_pages"),
// which may sit at the top level or under data/meta/pagination wrappers.
func findInt(raw json.RawMessage, names ...string) (int, bool) {
	return findIntDepth(raw, names, 0)
}

func findIntDepth(raw json.RawMessage, names []string, depth int) (int, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' || depth > maxEnvelopeDepth {
		return 0, false
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return 0, false
	}
	for _, name := range names {
		if v, ok := lookup(obj, name); ok {
			if n, ok := asInt(v); ok {
				return n, true
			}
		}
	}
	for _, wrap := range []string{"data", "meta", "pagination"} {
		if v, ok := lookup(obj, wrap); ok {
			if n, ok := findIntDepth(v, names, depth+1); ok {
				return n, true
			}
		}
	}
	return 0, false
}

// lookup is a case-insensitive key fetch; the backend mixes snake and camel.
func lookup(obj map[string]json.RawMessage, name string) (json.RawMessage, bool) {
	if v, ok := obj[name]; ok {
		return v, true
	}
	for k, v := range obj {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return nil, false
}

func asInt(raw json.RawMessage) (int, bool) {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if s == "" || s == "null" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return 0, false
		}
		n = int(f)
	}
	return n, true
}
