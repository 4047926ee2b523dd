package token

import (
	"encoding/json"
)

// SnapshotKeys lists the snapshot keys in their fixed order.
var SnapshotKeys = []string{"adapter", "value", "category", "payload", "lifetime", "created", "expires"}

// Snapshot is the full state of a Token. Adapter and Payload are the same
// handles the Token holds; nothing is deep copied. Category is nil while
// the token has no category.
type Snapshot struct {
	Adapter  Generator
	Value    Value
	Category *string
	Payload  any
	Lifetime string
	Created  string
	Expires  string
}

// Field is one key/value pair of a snapshot.
type Field struct {
	Key   string
	Value any
}

// Snapshot returns the full state of the token.
func (t *Token) Snapshot() Snapshot {
	var category *string
	if c, ok := t.LookupCategory(); ok {
		category = &c
	}
	return Snapshot{
		Adapter:  t.adapter,
		Value:    t.value,
		Category: category,
		Payload:  t.payload,
		Lifetime: t.lifetime.String(),
		Created:  t.Created(),
		Expires:  t.Expires(),
	}
}

// Fields returns the snapshot as ordered key/value pairs, keyed by
// SnapshotKeys.
func (s Snapshot) Fields() []Field {
	return []Field{
		{Key: "adapter", Value: s.Adapter},
		{Key: "value", Value: s.Value},
		{Key: "category", Value: s.Category},
		{Key: "payload", Value: s.Payload},
		{Key: "lifetime", Value: s.Lifetime},
		{Key: "created", Value: s.Created},
		{Key: "expires", Value: s.Expires},
	}
}

// encodedSnapshot is the serialized form. Field order is the key order.
type encodedSnapshot struct {
	Adapter  string  `json:"adapter" yaml:"adapter"`
	Value    Value   `json:"value" yaml:"value"`
	Category *string `json:"category" yaml:"category"`
	Payload  any     `json:"payload" yaml:"payload"`
	Lifetime string  `json:"lifetime" yaml:"lifetime"`
	Created  string  `json:"created" yaml:"created"`
	Expires  string  `json:"expires" yaml:"expires"`
}

func (s Snapshot) encode() encodedSnapshot {
	return encodedSnapshot{
		Adapter:  Describe(s.Adapter),
		Value:    s.Value,
		Category: s.Category,
		Payload:  s.Payload,
		Lifetime: s.Lifetime,
		Created:  s.Created,
		Expires:  s.Expires,
	}
}

// MarshalJSON encodes the snapshot with the adapter rendered by name.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.encode())
}

// MarshalYAML mirrors MarshalJSON.
func (s Snapshot) MarshalYAML() (any, error) {
	return s.encode(), nil
}
