// Package token provides token value objects and the generators that
// produce them.
//
// A Token wraps exactly one generated Value together with creation and
// expiry metadata, an optional category and an opaque payload. The value
// is produced once, at construction, by a Generator:
//
//   - Manual: a caller supplied value (e.g. an externally issued JWT)
//   - RandomBytes: CSPRNG bytes, lowercase hex encoded or raw
//   - RandomInt: a uniformly drawn integer in a closed range (e.g. SMS pins)
//   - ULID, UUID, NanoID, KSUID: well known identifier formats
//
// Expiry:
//
//   - Lifetime is a relative offset such as "+3 days", "+1 year 2 hours",
//     "next month" or "2 hours ago"; absolute forms like "tomorrow" are rejected
//   - Offsets that overflow, or expiries outside years 0 to 9999, are rejected
//   - Expires is always Created advanced by the current Lifetime
//   - Timestamps are rendered as ISO-8601 with a numeric UTC offset
//
// Security:
//
//   - All random generators read from crypto/rand unless a reader is injected
//   - There is no fallback to a non-cryptographic source
//   - Hash and Verify use SHA-256 with constant-time comparison
//
// A Token is not safe for concurrent mutation; callers sharing one across
// goroutines must serialize access.
package token
