// Package jsonfield provides typed, defaulted reads of glTF JSON object
// fields, each annotated with the dotted JSON path of the field being read
// so parse errors can name exactly where they went wrong.
package jsonfield

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Error is a structural JSON field error: a short message plus the dotted
// path of the field that failed (e.g. "root.accessors[2].byteOffset").
type Error struct {
	Path    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func errf(path, format string, args ...any) error {
	return &Error{Path: path, Message: fmt.Sprintf(format, args...)}
}

// Object is a parsed JSON object with fields addressable by key. It is a
// thin wrapper around map[string]json.RawMessage so callers get typed,
// defaulted accessors instead of raw unmarshal calls scattered everywhere.
type Object map[string]json.RawMessage

// ParseObject decodes raw as a JSON object.
func ParseObject(raw json.RawMessage, path string) (Object, error) {
	if len(raw) == 0 {
		return Object{}, nil
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, errf(path, "not a JSON object: %v", err)
	}
	return Object(m), nil
}

func (o Object) Has(key string) bool {
	_, ok := o[key]
	return ok
}

// String reads a required string field.
func (o Object) String(key, path string) (string, error) {
	raw, ok := o[key]
	if !ok {
		return "", errf(path, "missing required field %q", key)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", errf(path, "field %q is not a string", key)
	}
	return s, nil
}

// OptString reads an optional string field, returning def when absent.
func (o Object) OptString(key, def, path string) (string, error) {
	raw, ok := o[key]
	if !ok {
		return def, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", errf(path, "field %q is not a string", key)
	}
	return s, nil
}

// OptInt reads an optional integer field, returning def when absent.
func (o Object) OptInt(key string, def int, path string) (int, error) {
	raw, ok := o[key]
	if !ok {
		return def, nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, errf(path, "field %q is not a number", key)
	}
	return int(f), nil
}

// RequiredInt reads a required integer field.
func (o Object) RequiredInt(key, path string) (int, error) {
	if !o.Has(key) {
		return 0, errf(path, "missing required field %q", key)
	}
	return o.OptInt(key, 0, path)
}

// OptIntPtr reads an optional integer field as *int; nil means absent.
func (o Object) OptIntPtr(key, path string) (*int, error) {
	if !o.Has(key) {
		return nil, nil
	}
	v, err := o.OptInt(key, 0, path)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// OptFloat32 reads an optional float32 field, returning def when absent.
func (o Object) OptFloat32(key string, def float32, path string) (float32, error) {
	raw, ok := o[key]
	if !ok {
		return def, nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, errf(path, "field %q is not a number", key)
	}
	return float32(f), nil
}

// OptFloat32Ptr reads an optional float32 field as *float32; nil means
// absent.
func (o Object) OptFloat32Ptr(key, path string) (*float32, error) {
	if !o.Has(key) {
		return nil, nil
	}
	v, err := o.OptFloat32(key, 0, path)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// OptBool reads an optional bool field, returning def when absent.
func (o Object) OptBool(key string, def bool, path string) (bool, error) {
	raw, ok := o[key]
	if !ok {
		return def, nil
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false, errf(path, "field %q is not a boolean", key)
	}
	return b, nil
}

// FloatArray reads an optional fixed-length float32 array field, returning
// nil when absent and an error when present with a length other than n.
func FloatArray(o Object, key string, n int, path string) ([]float32, error) {
	raw, ok := o[key]
	if !ok {
		return nil, nil
	}
	var vals []float64
	if err := json.Unmarshal(raw, &vals); err != nil {
		return nil, errf(path, "field %q is not an array", key)
	}
	if len(vals) != n {
		return nil, errf(path, "field %q has length %d, want %d", key, len(vals), n)
	}
	out := make([]float32, n)
	for i, v := range vals {
		out[i] = float32(v)
	}
	return out, nil
}

// IntArray reads an optional integer array field, returning nil when
// absent.
func IntArray(o Object, key, path string) ([]int, error) {
	raw, ok := o[key]
	if !ok {
		return nil, nil
	}
	var vals []int
	if err := json.Unmarshal(raw, &vals); err != nil {
		return nil, errf(path, "field %q is not an array of integers", key)
	}
	return vals, nil
}

// ObjectArray reads the raw elements of an array field as Objects.
func ObjectArray(root Object, key, path string) ([]Object, error) {
	raw, ok := root[key]
	if !ok {
		return nil, nil
	}
	var rawElems []json.RawMessage
	if err := json.Unmarshal(raw, &rawElems); err != nil {
		return nil, errf(path, "field %q is not an array", key)
	}
	out := make([]Object, len(rawElems))
	for i, elem := range rawElems {
		obj, err := ParseObject(elem, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out[i] = obj
	}
	return out, nil
}

// StringEnum validates s is one of allowed, returning a structural error
// naming the field otherwise.
func StringEnum(s, key, path string, allowed ...string) error {
	for _, a := range allowed {
		if s == a {
			return nil
		}
	}
	return errf(path, "field %q has unrecognized value %q", key, s)
}

// ParseSuffixDigits parses a strict "digits only, full consumption"
// unsigned integer suffix, used for TEXCOORD_n / COLOR_n / JOINTS_n /
// WEIGHTS_n semantic keys. Returns ok=false (not an error) when the suffix
// is not pure digits, matching the "unrecognized semantics are silently
// dropped" rule.
func ParseSuffixDigits(s string) (n int, ok bool) {
	if s == "" {
		return 0, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}
