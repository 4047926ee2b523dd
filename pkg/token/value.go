package token

import (
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"strconv"
)

// Value is an immutable generated token value.
//
// Binary values hold raw bytes; all others hold text. The zero Value is an
// empty text value.
type Value struct {
	data   []byte
	binary bool
}

// StringValue returns a text Value.
func StringValue(s string) Value {
	return Value{data: []byte(s)}
}

// BytesValue returns a binary Value holding a copy of b.
func BytesValue(b []byte) Value {
	return Value{data: append([]byte(nil), b...), binary: true}
}

// String returns the value as a string. Binary values are returned as their
// raw bytes.
func (v Value) String() string {
	return string(v.data)
}

// Bytes returns a copy of the underlying bytes.
func (v Value) Bytes() []byte {
	return append([]byte(nil), v.data...)
}

// Len returns the length in bytes.
func (v Value) Len() int {
	return len(v.data)
}

// IsBinary reports whether the value holds raw bytes rather than text.
func (v Value) IsBinary() bool {
	return v.binary
}

// Int parses a text value as a base 10 integer.
func (v Value) Int() (int64, error) {
	if v.binary {
		return 0, ErrInvalidInput.WithDetails("binary value is not an integer")
	}
	n, err := strconv.ParseInt(string(v.data), 10, 64)
	if err != nil {
		return 0, ErrInvalidInput.WithCause(err)
	}
	return n, nil
}

// Equal reports whether both values hold the same bytes, in constant time.
func (v Value) Equal(other Value) bool {
	return v.binary == other.binary && subtle.ConstantTimeCompare(v.data, other.data) == 1
}

// MarshalJSON encodes text values as JSON strings and binary values as
// standard base64 strings.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.binary {
		return json.Marshal(base64.StdEncoding.EncodeToString(v.data))
	}
	return json.Marshal(string(v.data))
}

// MarshalYAML mirrors MarshalJSON.
func (v Value) MarshalYAML() (any, error) {
	if v.binary {
		return base64.StdEncoding.EncodeToString(v.data), nil
	}
	return string(v.data), nil
}
