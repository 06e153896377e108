package token

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is the role claim required on the admin routes.
const RoleAdmin = "admin"

// ErrInvalid reports a token that failed verification.
var ErrInvalid = errors.New("token: invalid")

// Claims are the verified facts carried by a token.
type Claims struct {
	Subject   string
	Role      string
	ExpiresAt time.Time
}

// Verifier checks a token and returns its claims.
type Verifier interface {
	Verify(ctx context.Context, t Token) (Claims, error)
}

type jwtClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// HMACVerifier accepts HS256 JWTs signed with a shared secret.
type HMACVerifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewHMACVerifier builds a verifier for secret. Tokens must carry an exp claim.
func NewHMACVerifier(secret []byte) *HMACVerifier {
	return &HMACVerifier{
		secret: secret,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}
}

// Verify parses t and validates its signature and expiry.
func (v *HMACVerifier) Verify(ctx context.Context, t Token) (Claims, error) {
	if err := ctx.Err(); err != nil {
		return Claims{}, err
	}
	if err := t.Check(); err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	claims := &jwtClaims{}
	parsed, err := v.parser.ParseWithClaims(t.Value(), claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if !parsed.Valid {
		return Claims{}, ErrInvalid
	}

	out := Claims{Subject: claims.Subject, Role: claims.Role}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
