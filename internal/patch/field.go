// Package patch distinguishes "absent", "explicitly null" and "set to a
// value" in partial-update payloads. Plain Go structs collapse the
// first two, which is exactly the ambiguity partial PUTs must not have.
package patch

import "encoding/json"

// Field is an option-of-option: unset until its key appears in the
// decoded JSON document, null when the key carried an explicit null.
// The zero value is an unset field, so patch structs need no
// constructors.
type Field[T any] struct {
	set   bool
	null  bool
	value T
}

// Set returns a field holding the given value.
func Set[T any](value T) Field[T] {
	return Field[T]{set: true, value: value}
}

// Null returns a field that explicitly clears its target.
func Null[T any]() Field[T] {
	return Field[T]{set: true, null: true}
}

// IsSet reports whether the key was present in the payload at all.
func (f Field[T]) IsSet() bool {
	return f.set
}

// IsNull reports whether the key was present and carried null.
func (f Field[T]) IsNull() bool {
	return f.set && f.null
}

// Get returns the decoded value and whether one is available, which is
// false both for unset and for explicitly null fields.
func (f Field[T]) Get() (T, bool) {
	if !f.set || f.null {
		var zero T
		return zero, false
	}
	return f.value, true
}

// UnmarshalJSON is only invoked by encoding/json for keys present in
// the document, which is what makes the unset/null distinction work.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.set = true
	if string(data) == "null" {
		f.null = true
		var zero T
		f.value = zero
		return nil
	}
	f.null = false
	return json.Unmarshal(data, &f.value)
}
