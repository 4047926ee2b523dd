package token

import (
	"time"
)

// TimestampLayout renders created/expires as ISO-8601 with a numeric UTC
// offset, e.g. 2017-06-01T12:00:00+00:00.
const TimestampLayout = "2006-01-02T15:04:05-07:00"

// Token is a generated value plus its creation and expiry metadata.
//
// The value and creation time are fixed at construction. Expires is always
// derived from Created and the current Lifetime.
type Token struct {
	adapter  Generator
	value    Value
	category *string
	payload  any
	lifetime Lifetime
	created  time.Time
	expires  time.Time
}

// Option configures a Token at construction.
type Option func(*options)

type options struct {
	now      func() time.Time
	lifetime string
	category *string
	payload  any
}

// WithClock sets the clock used to stamp the creation time.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithLifetime sets the initial lifetime instead of DefaultLifetime.
func WithLifetime(lifetime string) Option {
	return func(o *options) {
		o.lifetime = lifetime
	}
}

// WithCategory sets the initial category. An empty category is still set;
// omit the option to leave the category unset.
func WithCategory(category string) Option {
	return func(o *options) {
		o.category = &category
	}
}

// WithPayload sets the initial payload.
func WithPayload(payload any) Option {
	return func(o *options) {
		o.payload = payload
	}
}

// New generates a token using g. Generate is called exactly once.
//
// Either every field is set or an error is returned and no Token is produced.
func New(g Generator, opts ...Option) (*Token, error) {
	if g == nil {
		return nil, ErrInvalidInput.WithDetails("generator cannot be nil")
	}

	o := options{
		now:      time.Now,
		lifetime: DefaultLifetime,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.now == nil {
		return nil, ErrInvalidInput.WithDetails("clock cannot be nil")
	}

	lifetime, err := ParseLifetime(o.lifetime)
	if err != nil {
		return nil, err
	}

	value, err := g.Generate()
	if err != nil {
		if IsError(err, "") {
			return nil, err
		}
		return nil, ErrGenerationFailure.WithDetails(AdapterName(g)).WithCause(err)
	}

	// The textual format has second precision; truncating keeps Created
	// and its rendering identical.
	created := o.now().Truncate(time.Second)
	expires, err := lifetime.expiry(created)
	if err != nil {
		return nil, err
	}

	return &Token{
		adapter:  g,
		value:    value,
		category: o.category,
		payload:  o.payload,
		lifetime: lifetime,
		created:  created,
		expires:  expires,
	}, nil
}

// NewManualToken wraps value in a Token.
func NewManualToken(value string, opts ...Option) (*Token, error) {
	return New(NewManual(value), opts...)
}

// NewRandomBytesToken generates a RandomBytes token. A zero length selects
// DefaultLength.
func NewRandomBytesToken(length int, asBytes bool, opts ...Option) (*Token, error) {
	var genOpts []RandomBytesOption
	if length != 0 {
		genOpts = append(genOpts, WithLength(length))
	}
	if asBytes {
		genOpts = append(genOpts, AsBytes())
	}
	g, err := NewRandomBytes(genOpts...)
	if err != nil {
		return nil, err
	}
	return New(g, opts...)
}

// NewRandomIntToken generates a RandomInt token in [min, max].
func NewRandomIntToken(min, max int64, opts ...Option) (*Token, error) {
	return New(NewRandomInt(min, max), opts...)
}

// SetCategory sets the category label.
func (t *Token) SetCategory(category string) {
	t.category = &category
}

// SetLifetime replaces the lifetime and recomputes Expires from the
// original creation time.
func (t *Token) SetLifetime(lifetime string) error {
	if lifetime == "" {
		return ErrInvalidInput.WithDetails("lifetime cannot be empty")
	}
	l, err := ParseLifetime(lifetime)
	if err != nil {
		return err
	}
	expires, err := l.expiry(t.created)
	if err != nil {
		return err
	}
	t.lifetime = l
	t.expires = expires
	return nil
}

// SetPayload stores payload as is. It is never copied or inspected.
func (t *Token) SetPayload(payload any) {
	t.payload = payload
}

// Adapter returns the generator that produced the value.
func (t *Token) Adapter() Generator {
	return t.adapter
}

// Token returns the generated value.
func (t *Token) Token() Value {
	return t.value
}

// Category returns the category label, or "" if unset.
func (t *Token) Category() string {
	if t.category == nil {
		return ""
	}
	return *t.category
}

// LookupCategory returns the category label and whether one was set.
func (t *Token) LookupCategory() (string, bool) {
	if t.category == nil {
		return "", false
	}
	return *t.category, true
}

// Payload returns the payload.
func (t *Token) Payload() any {
	return t.payload
}

// Lifetime returns the lifetime as written, e.g. "+3 days".
func (t *Token) Lifetime() string {
	return t.lifetime.String()
}

// Created returns the creation time in TimestampLayout.
func (t *Token) Created() string {
	return t.created.Format(TimestampLayout)
}

// Expires returns the expiry time in TimestampLayout.
func (t *Token) Expires() string {
	return t.expires.Format(TimestampLayout)
}

// CreatedAt returns the creation time.
func (t *Token) CreatedAt() time.Time {
	return t.created
}

// ExpiresAt returns the expiry time.
func (t *Token) ExpiresAt() time.Time {
	return t.expires
}

// IsExpired reports whether the token has expired at now.
func (t *Token) IsExpired(now time.Time) bool {
	return !now.Before(t.expires)
}

// ParseTimestamp parses a timestamp rendered by Created or Expires.
func ParseTimestamp(s string) (time.Time, error) {
	ts, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidInput.WithDetailsf("timestamp %q", s).WithCause(err)
	}
	return ts, nil
}
