package client

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSigningKey = "test-secret"

func mintToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSigningKey))
	if err != nil {
		t.Fatalf("minting token: %v", err)
	}
	return token
}

func validClaims(exp time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"id":       "665f1a2b3c4d5e6f70818283",
		"username": "admin",
		"role":     "admin",
		"jti":      "7d9f4e31-0000-4000-8000-000000000001",
		"exp":      exp.Unix(),
	}
}

func TestResolveValidToken(t *testing.T) {
	store := NewMemoryStore()
	_ = store.Set(mintToken(t, validClaims(time.Now().Add(time.Hour))))

	session, ok := NewResolver(store).Resolve()
	if !ok {
		t.Fatal("expected a session from a valid token")
	}
	if session.ID != "665f1a2b3c4d5e6f70818283" {
		t.Errorf("unexpected id: %s", session.ID)
	}
	if session.Username != "admin" {
		t.Errorf("unexpected username: %s", session.Username)
	}
	if session.Role != "admin" {
		t.Errorf("unexpected role: %s", session.Role)
	}
}

func TestResolveExpiredTokenClearsStore(t *testing.T) {
	store := NewMemoryStore()
	_ = store.Set(mintToken(t, validClaims(time.Now().Add(-time.Minute))))

	if _, ok := NewResolver(store).Resolve(); ok {
		t.Fatal("expired token must not resolve to a session")
	}
	if store.Get() != "" {
		t.Fatal("expired token must be cleared from the store")
	}
}

func TestResolveExpiryCheckedOnEveryCall(t *testing.T) {
	store := NewMemoryStore()
	exp := time.Now().Add(time.Hour)
	_ = store.Set(mintToken(t, validClaims(exp)))

	resolver := NewResolver(store)
	if _, ok := resolver.Resolve(); !ok {
		t.Fatal("token should still be live")
	}

	resolver.now = func() time.Time { return exp.Add(time.Second) }
	if _, ok := resolver.Resolve(); ok {
		t.Fatal("token past expiry must not resolve even after an earlier success")
	}
}

func TestResolveMissingIdentityClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	cases := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{"no id", jwt.MapClaims{"username": "admin", "role": "admin", "exp": exp.Unix()}},
		{"no username", jwt.MapClaims{"id": "abc", "role": "admin", "exp": exp.Unix()}},
		{"no role", jwt.MapClaims{"id": "abc", "username": "admin", "exp": exp.Unix()}},
		{"no exp", jwt.MapClaims{"id": "abc", "username": "admin", "role": "admin"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := NewMemoryStore()
			_ = store.Set(mintToken(t, tc.claims))

			if _, ok := NewResolver(store).Resolve(); ok {
				t.Fatal("token with missing claims must not resolve")
			}
			if store.Get() != "" {
				t.Fatal("unusable token must be cleared")
			}
		})
	}
}

func TestResolveMalformedToken(t *testing.T) {
	store := NewMemoryStore()
	_ = store.Set("not-a-jwt")

	if _, ok := NewResolver(store).Resolve(); ok {
		t.Fatal("garbage must not resolve to a session")
	}
	if store.Get() != "" {
		t.Fatal("garbage must be cleared from the store")
	}
}

func TestResolveEmptyStore(t *testing.T) {
	if _, ok := NewResolver(NewMemoryStore()).Resolve(); ok {
		t.Fatal("empty store must resolve to no session")
	}
}
