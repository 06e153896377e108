// Package token holds the opaque session token type and its verifiers.
package token

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

// MaxLength bounds the accepted token size in bytes.
const MaxLength = 4096

const redacted = "[redacted]"

// ErrMalformed reports a token that is not a printable, whitespace free string.
var ErrMalformed = errors.New("token: malformed")

// Token is a client supplied session token. The zero value means absent.
type Token struct {
	value string
}

// Parse validates s and wraps it as a Token.
func Parse(s string) (Token, error) {
	switch {
	case s == "":
		return Token{}, fmt.Errorf("%w: empty", ErrMalformed)
	case len(s) > MaxLength:
		return Token{}, fmt.Errorf("%w: longer than %d bytes", ErrMalformed, MaxLength)
	}
	for i := 0; i < len(s); i++ {
		if s[i] <= ' ' || s[i] > '~' {
			return Token{}, fmt.Errorf("%w: invalid character at offset %d", ErrMalformed, i)
		}
	}
	return Token{value: s}, nil
}

// IsZero reports whether the token is absent.
func (t Token) IsZero() bool { return t.value == "" }

// Value returns the raw token for verification.
func (t Token) Value() string { return t.value }

func (t Token) String() string {
	if t.IsZero() {
		return ""
	}
	return redacted
}

// LogValue keeps raw tokens out of structured logs.
func (t Token) LogValue() slog.Value { return slog.StringValue(t.String()) }

// UnmarshalJSON accepts any JSON string, or null. The format is not checked
// here; verifiers call Check before trusting the value.
func (t *Token) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) == 0 || data[0] != '"' {
		return fmt.Errorf("%w: must be a JSON string", ErrMalformed)
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	t.value = raw
	return nil
}

// Check applies the Parse rules to a decoded token.
func (t Token) Check() error {
	_, err := Parse(t.value)
	return err
}

// ServerProvided is a token handed out by the server along with its lifetime
// in seconds.
type ServerProvided struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}
