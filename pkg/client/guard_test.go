package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newLoginServer(t *testing.T, token string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != loginPath {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(loginResponse{
			Token: token,
			User:  User{ID: "u1", Username: "admin", Role: "admin"},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGuardStartsChecking(t *testing.T) {
	store := NewMemoryStore()
	_ = store.Set(mintToken(t, validClaims(time.Now().Add(time.Hour))))

	g := NewGuard(New("http://unused", store))
	if got := g.State(); got != StateChecking {
		t.Fatalf("guard must start in the checking state, got %q", got)
	}
}

func TestGuardAdmitsValidSession(t *testing.T) {
	store := NewMemoryStore()
	_ = store.Set(mintToken(t, validClaims(time.Now().Add(time.Hour))))

	g := NewGuard(New("http://unused", store))
	decision := g.Check("/admin/products")
	if decision.State != StateAuthenticated {
		t.Fatalf("expected authenticated, got %q", decision.State)
	}
	if decision.Session == nil || decision.Session.Username != "admin" {
		t.Fatalf("unexpected session: %+v", decision.Session)
	}
	if decision.RedirectTo != "" {
		t.Fatalf("admitted visitor must not be redirected, got %q", decision.RedirectTo)
	}
	if got := g.State(); got != StateAuthenticated {
		t.Fatalf("state after check: %q", got)
	}
}

func TestGuardRedirectPreservesDestination(t *testing.T) {
	g := NewGuard(New("http://unused", NewMemoryStore()))

	decision := g.Check("/admin/products")
	if decision.State != StateUnauthenticated {
		t.Fatalf("expected unauthenticated, got %q", decision.State)
	}
	if decision.RedirectTo != "/admin/login?redirectTo=%2Fadmin%2Fproducts" {
		t.Fatalf("unexpected redirect: %q", decision.RedirectTo)
	}
}

func TestGuardLoginLandsOnBlockedDestination(t *testing.T) {
	srv := newLoginServer(t, mintToken(t, validClaims(time.Now().Add(time.Hour))))

	g := NewGuard(New(srv.URL, NewMemoryStore()))
	g.Check("/admin/messages")

	target, err := g.Login(context.Background(), "admin", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if target != "/admin/messages" {
		t.Fatalf("expected the blocked destination, got %q", target)
	}

	// The intent is consumed; a later login falls back to the admin home.
	target, err = g.Login(context.Background(), "admin", "pw")
	if err != nil {
		t.Fatalf("second login: %v", err)
	}
	if target != "/admin" {
		t.Fatalf("expected default landing, got %q", target)
	}
}

func TestGuardLoginDefaultsToAdminHome(t *testing.T) {
	srv := newLoginServer(t, mintToken(t, validClaims(time.Now().Add(time.Hour))))

	g := NewGuard(New(srv.URL, NewMemoryStore()))
	target, err := g.Login(context.Background(), "admin", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if target != "/admin" {
		t.Fatalf("expected /admin, got %q", target)
	}
}

func TestGuardExpiryNoticedBetweenChecks(t *testing.T) {
	store := NewMemoryStore()
	exp := time.Now().Add(time.Hour)
	_ = store.Set(mintToken(t, validClaims(exp)))

	g := NewGuard(New("http://unused", store))
	if d := g.Check("/admin"); d.State != StateAuthenticated {
		t.Fatalf("token should still be live, got %q", d.State)
	}

	g.resolver.now = func() time.Time { return exp.Add(time.Second) }
	if d := g.Check("/admin"); d.State != StateUnauthenticated {
		t.Fatalf("expired credential must be rejected, got %q", d.State)
	}
	if store.Get() != "" {
		t.Fatal("expired credential must be cleared")
	}
}

func TestGuardRoleRestriction(t *testing.T) {
	claims := validClaims(time.Now().Add(time.Hour))
	claims["role"] = "editor"
	store := NewMemoryStore()
	_ = store.Set(mintToken(t, claims))

	g := NewGuard(New("http://unused", store), "admin")
	decision := g.Check("/admin/users")
	if decision.State != StateUnauthenticated {
		t.Fatalf("editor must not pass an admin-only guard, got %q", decision.State)
	}

	both := NewGuard(New("http://unused", store), "admin", "editor")
	if d := both.Check("/admin/pages"); d.State != StateAuthenticated {
		t.Fatalf("editor must pass an admin+editor guard, got %q", d.State)
	}
}

func TestGuardLogoutReturnsBareLoginPath(t *testing.T) {
	token := mintToken(t, validClaims(time.Now().Add(time.Hour)))
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == loginPath {
			_ = json.NewEncoder(w).Encode(loginResponse{Token: token, User: User{ID: "u1", Username: "admin", Role: "admin"}})
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	store := NewMemoryStore()
	g := NewGuard(New(srv.URL, store))
	g.Check("/admin/settings")

	target, err := g.Logout(context.Background())
	if err != nil {
		t.Fatalf("logout: %v", err)
	}
	if target != "/admin/login" {
		t.Fatalf("expected bare login path, got %q", target)
	}
	if store.Get() != "" {
		t.Fatal("logout must empty the store")
	}

	// No stale intent survives the logout.
	landing, err := g.Login(context.Background(), "admin", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if landing != "/admin" {
		t.Fatalf("stale intent leaked into post-login landing: %q", landing)
	}
}
