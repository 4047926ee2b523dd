package logger

import (
	"log/slog"
	"strings"
)

// Key fragments whose string values are masked before they are written.
var sensitiveKeyPatterns = []string{
	"token",
	"value",
	"secret",
	"payload",
	"hash",
	"password",
}

// redactedValue replaces values too short to mask partially.
const redactedValue = "***REDACTED***"

// redactSensitive masks string attributes whose key looks sensitive.
func redactSensitive(a slog.Attr) slog.Attr {
	switch a.Value.Kind() {
	case slog.KindString:
		if IsSensitiveKey(a.Key) {
			if s := a.Value.String(); s != "" {
				return slog.String(a.Key, RedactString(s))
			}
		}
	case slog.KindGroup:
		attrs := a.Value.Group()
		newAttrs := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			newAttrs[i] = redactSensitive(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(newAttrs...)}
	case slog.KindAny:
		if IsSensitiveKey(a.Key) && a.Value.Any() != nil {
			return slog.String(a.Key, redactedValue)
		}
	}
	return a
}

// RedactString keeps the first and last three characters of value.
// Values of twelve characters or fewer are fully redacted.
func RedactString(value string) string {
	if len(value) <= 12 {
		return redactedValue
	}
	return value[:3] + "..." + value[len(value)-3:]
}

// IsSensitiveKey checks if a key name suggests sensitive content.
func IsSensitiveKey(key string) bool {
	keyLower := strings.ToLower(key)
	for _, pattern := range sensitiveKeyPatterns {
		if strings.Contains(keyLower, pattern) {
			return true
		}
	}
	return false
}
