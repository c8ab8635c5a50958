// Package token issues and verifies signed session tokens. Tokens are
// stateless HS256 JWTs binding a subject (user id) and a role claim to an
// absolute expiry; there is no revocation list, so a token stays valid until
// it expires.
package token

import (
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Antonmish822/SHORT-HACKX5/internal/errs"
)

// DefaultTTL is the access-token lifetime unless the caller overrides it.
const DefaultTTL = 24 * time.Hour

type claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Claims is the verified content of a session token.
type Claims struct {
	Subject uuid.UUID
	Role    string
}

// Service signs and verifies session tokens with a process-wide secret key.
type Service struct {
	key []byte
}

// NewService constructs a Service. The key is a secret; the server refuses
// to start without one, so an empty key here is a programming error.
func NewService(key []byte) *Service {
	return &Service{key: key}
}

// Issue creates a signed token for the subject valid for ttl from now.
// A non-positive ttl produces a token that is already expired.
func (s *Service) Issue(subject uuid.UUID, role string, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(ttl)
	c := claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := tok.SignedString(s.key)
	return signed, exp, err
}

// Verify parses and validates raw, returning its claims. Failures map to
// ErrTokenExpired, ErrTokenMalformed (bad signature or structure), or
// ErrTokenInvalid (any other decode failure).
func (s *Service) Verify(raw string) (Claims, error) {
	var c claims
	_, err := jwt.ParseWithClaims(raw, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrTokenMalformed
		}
		return s.key, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, errs.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed),
			errors.Is(err, jwt.ErrTokenSignatureInvalid),
			errors.Is(err, errs.ErrTokenMalformed):
			return Claims{}, errs.ErrTokenMalformed
		default:
			return Claims{}, errs.ErrTokenInvalid
		}
	}
	subject, err := uuid.FromString(c.Subject)
	if err != nil {
		return Claims{}, errs.ErrTokenInvalid
	}
	return Claims{Subject: subject, Role: c.Role}, nil
}
