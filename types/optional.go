package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// NoneText is how an absent value is rendered in text reports
const NoneText = "None"

// Optional holds a value that may be explicitly absent. The zero value is absent.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns an Optional holding v
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// None returns an absent Optional
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether a value is present
func (o Optional[T]) IsSet() bool {
	return o.set
}

// OrElse returns the value if present, otherwise def
func (o Optional[T]) OrElse(def T) T {
	if o.set {
		return o.value
	}
	return def
}

// String renders the value, or NoneText when absent
func (o Optional[T]) String() string {
	if !o.set {
		return NoneText
	}
	return fmt.Sprint(o.value)
}

// MarshalJSON encodes an absent value as null
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON decodes null as an absent value
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = None[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}
