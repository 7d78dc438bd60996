package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for every verification failure: bad
// signature, missing claims, expired, malformed. Callers never learn
// which one, so the token layer cannot be used as an oracle.
var ErrInvalidToken = errors.New("invalid token")

// Manager issues and verifies signed bearer tokens.
type Manager struct {
	secret   []byte
	lifetime time.Duration
	now      func() time.Time
}

// NewManager creates a token manager signing with the given secret.
// Tokens expire lifetime after issuance. Rotating the secret
// invalidates every outstanding token.
func NewManager(secret string, lifetime time.Duration) *Manager {
	return &Manager{
		secret:   []byte(secret),
		lifetime: lifetime,
		now:      time.Now,
	}
}

// NewManagerWithClock is NewManager with an injectable clock, used by
// tests to control expiry deterministically.
func NewManagerWithClock(secret string, lifetime time.Duration, now func() time.Time) *Manager {
	m := NewManager(secret, lifetime)
	m.now = now
	return m
}

// Issue creates a signed HS256 token carrying the subject and an
// absolute expiry of issued-at + lifetime.
func (m *Manager) Issue(subject string) (string, error) {
	now := m.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.lifetime)),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(m.secret)
}

// Verify checks the signature, requires the sub and exp claims, and
// requires the current time to be strictly before expiry. It returns
// the subject on success and ErrInvalidToken on any failure.
func (m *Manager) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	tok, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !tok.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
