// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package models

// Payload is a request body that can be written as a table row.
type Payload interface {
	// ToRecord returns the columns to write. Absent fields are left out.
	ToRecord() map[string]any
}

// Completer is a Payload whose absent fields can be filled in from the row
// already stored, so that rules spanning several fields can be checked on
// partial updates.
type Completer interface {
	Payload
	Complete(stored map[string]any) Payload
}

func storedString(v any) *string {
	switch s := v.(type) {
	case string:
		return &s
	case []byte:
		str := string(s)
		return &str
	}
	return nil
}

func storedInt64(v any) *int64 {
	var n int64
	switch x := v.(type) {
	case int64:
		n = x
	case int32:
		n = int64(x)
	case int:
		n = int64(x)
	case float64:
		n = int64(x)
	default:
		return nil
	}
	return &n
}

func storedInt(v any) *int {
	n := storedInt64(v)
	if n == nil {
		return nil
	}
	i := int(*n)
	return &i
}
