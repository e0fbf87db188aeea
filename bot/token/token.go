// Package token implements the compact callback-data encoding that carries
// the multi-step keyboard flows across stateless webhook invocations.
//
// A token looks like "prefix_field1_field2", optionally followed by "|ref"
// where ref is a durable entity id (e.g. a parent record id). Telegram caps
// callback data at 64 bytes, so Encode enforces that ceiling.
package token

import (
	"fmt"
	"strings"
)

const (
	// GroupSep separates the primary payload from the contextual reference.
	GroupSep = "|"
	// FieldSep separates the prefix and fields inside the primary payload.
	FieldSep = "_"
	// PayloadLimit is the Telegram callback_data size ceiling in bytes.
	PayloadLimit = 64
)

// Prefixes owned by the picker package. Other handlers own free-form
// payloads ("pick_date_time", "quick_scheduler", ...) which only share the
// GroupSep convention; those go through Split, not Decode.
const (
	PrefixCalendar = "n"
	PrefixPeriod   = "pt"
	PrefixTime     = "t"
)

// Token is a decoded callback payload. Field values must not contain
// GroupSep or FieldSep; Encode does not escape them. That is a caller
// invariant inherited from the token grammar, not something Decode can
// recover from.
type Token struct {
	Prefix string
	Fields []string
	Ref    string
}

// Encode renders t as callback data. It fails only when the encoded form
// would exceed PayloadLimit bytes.
func Encode(t Token) (string, error) {
	parts := append([]string{t.Prefix}, t.Fields...)
	s := strings.Join(parts, FieldSep)
	if t.Ref != "" {
		s += GroupSep + t.Ref
	}
	if len(s) > PayloadLimit {
		return "", fmt.Errorf("token %q exceeds %d bytes", s, PayloadLimit)
	}
	return s, nil
}

// Decode parses callback data. Decoding is deliberately tolerant and never
// fails: keyboards may be rebuilt from stale tokens, so unknown shapes come
// back with empty fields instead of an error.
func Decode(s string) Token {
	var t Token
	if i := strings.Index(s, GroupSep); i >= 0 {
		t.Ref = s[i+len(GroupSep):]
		s = s[:i]
	}
	parts := strings.Split(s, FieldSep)
	t.Prefix = parts[0]
	if len(parts) > 1 {
		t.Fields = parts[1:]
	}
	return t
}

// Field returns the i-th field, or "" when the token has fewer fields.
func (t Token) Field(i int) string {
	if i < 0 || i >= len(t.Fields) {
		return ""
	}
	return t.Fields[i]
}

// Split separates raw callback data into its primary payload and contextual
// reference without interpreting fields. Handlers with free-form payloads
// use this instead of Decode.
func Split(raw string) (payload, ref string) {
	if i := strings.Index(raw, GroupSep); i >= 0 {
		return raw[:i], raw[i+len(GroupSep):]
	}
	return raw, ""
}

// Join is the inverse of Split for free-form payloads.
func Join(payload, ref string) string {
	if ref == "" {
		return payload
	}
	return payload + GroupSep + ref
}

// HasPrefix reports whether raw decodes to the given workflow prefix.
func HasPrefix(raw, prefix string) bool {
	return Decode(raw).Prefix == prefix
}
