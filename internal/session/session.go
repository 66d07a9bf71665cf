// Package session turns a raw bearer token into an explicit session
// object that is passed down the call chain. Nothing in the gateway
// reads token state ambiently.
package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNotAuthenticated = errors.New("must be logged in")

type Session struct {
	Token     string
	Subject   string
	Role      string
	ExpiresAt time.Time
}

// FromToken decodes the token's claims without verifying the signature:
// the remote backend is the signing authority and re-checks every call.
// The gateway only refuses tokens that are malformed or already expired.
func FromToken(raw string) (*Session, error) {
	return FromTokenAt(raw, time.Now())
}

func FromTokenAt(raw string, now time.Time) (*Session, error) {
	if raw == "" {
		return nil, ErrNotAuthenticated
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return nil, ErrNotAuthenticated
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, ErrNotAuthenticated
	}
	if !exp.After(now) {
		return nil, ErrNotAuthenticated
	}

	sub, _ := claims.GetSubject()
	role, _ := claims["role"].(string)

	return &Session{
		Token:     raw,
		Subject:   sub,
		Role:      role,
		ExpiresAt: exp.Time,
	}, nil
}

// Valid reports whether the session is usable at time now.
func (s *Session) Valid(now time.Time) bool {
	return s != nil && s.Token != "" && s.ExpiresAt.After(now)
}
