// Package redact strips credentials from values before they reach logs or
// span attributes.
package redact

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"
)

// sensitiveParams are query parameters Meet uses to carry join secrets.
var sensitiveParams = map[string]struct{}{
	"secret":       {},
	"token":        {},
	"access_token": {},
	"api_key":      {},
}

// Fingerprint returns a short stable hash of value, or "" for an empty value.
func Fingerprint(value string) string {
	if value == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])[:8]
}

// URL replaces the values of secret-bearing query parameters with a
// fingerprint. Unparseable input is redacted entirely.
func URL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "[REDACTED]"
	}
	if u.User != nil {
		u.User = url.User("[REDACTED]")
	}
	if u.RawQuery == "" {
		return u.String()
	}

	q := u.Query()
	for key, values := range q {
		if _, ok := sensitiveParams[strings.ToLower(key)]; !ok {
			continue
		}
		for i, v := range values {
			values[i] = "[REDACTED:" + Fingerprint(v) + "]"
		}
		q[key] = values
	}
	u.RawQuery = q.Encode()
	return u.String()
}
