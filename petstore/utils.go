package petstore

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PtrBool is a helper routine that returns a pointer to given boolean value.
func PtrBool(v bool) *bool { return &v }

// PtrInt32 is a helper routine that returns a pointer to given integer value.
func PtrInt32(v int32) *int32 { return &v }

// PtrFloat64 is a helper routine that returns a pointer to given float value.
func PtrFloat64(v float64) *float64 { return &v }

// PtrString is a helper routine that returns a pointer to given string value.
func PtrString(v string) *string { return &v }

// requireProperties fails when data is not an object, lacks any of names, or
// holds an explicit null for one of them.
func requireProperties(data []byte, names ...string) error {
	var props map[string]json.RawMessage
	if err := json.Unmarshal(data, &props); err != nil {
		return err
	}
	for _, name := range names {
		raw, ok := props[name]
		if !ok {
			return fmt.Errorf("no value given for required property %v", name)
		}
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return fmt.Errorf("required property %v must not be null", name)
		}
	}
	return nil
}

func enumStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func copyAttributes[T any](attrs []T) []T {
	return append([]T(nil), attrs...)
}
