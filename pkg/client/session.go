package client

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the resolved identity derived from the stored credential.
type Session struct {
	ID       string
	Username string
	Role     string
}

// Resolver turns the stored credential into a trustworthy Session.
//
// Resolution re-reads the store and re-checks expiry against the wall clock
// on every call, so a session resolved earlier cannot be served past its
// expiry. Any failure (malformed token, past expiry, missing identity
// claims) voids the credential and reports "no session"; callers cannot
// distinguish the failure modes.
type Resolver struct {
	store TokenStore
	now   func() time.Time
}

func NewResolver(store TokenStore) *Resolver {
	return &Resolver{store: store, now: time.Now}
}

// Resolve returns the current session, or ok=false when no valid credential
// is stored.
func (r *Resolver) Resolve() (*Session, bool) {
	token := r.store.Get()
	if token == "" {
		return nil, false
	}

	session, err := r.decode(token)
	if err != nil {
		_ = r.store.Clear()
		return nil, false
	}
	return session, true
}

// decode extracts the identity claims without verifying the signature. The
// holder of the secret is the backend; the client treats the token as a
// claims carrier and lets the backend reject forgeries.
func (r *Resolver) decode(token string) (*Session, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, err
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, fmt.Errorf("missing exp claim")
	}
	if !exp.Time.After(r.now()) {
		return nil, fmt.Errorf("token expired")
	}

	id := claimString(claims, "id")
	username := claimString(claims, "username")
	role := claimString(claims, "role")
	if id == "" || username == "" || role == "" {
		return nil, fmt.Errorf("missing identity claims")
	}

	return &Session{ID: id, Username: username, Role: role}, nil
}

// claimString reads a claim that may have been serialised as a string or a
// JSON number.
func claimString(claims jwt.MapClaims, key string) string {
	switch v := claims[key].(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%.0f", v)
	default:
		return ""
	}
}
