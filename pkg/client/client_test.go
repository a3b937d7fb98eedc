package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestBearerReadFreshPerRequest(t *testing.T) {
	var seen []string
	var mu sync.Mutex
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.Header.Get("Authorization"))
		mu.Unlock()
		_ = json.NewEncoder(w).Encode([]User{})
	}))
	defer srv.Close()

	store := NewMemoryStore()
	c := New(srv.URL, store)

	_ = store.Set("token-a")
	if _, err := c.ListUsers(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	_ = store.Set("token-b")
	if _, err := c.ListUsers(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(seen) != 2 || seen[0] != "Bearer token-a" || seen[1] != "Bearer token-b" {
		t.Fatalf("expected store re-read per request, saw %v", seen)
	}
}

func TestLoginStoresTokenAndSkipsBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("login must not carry a credential, got %q", got)
		}
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Username != "admin" || req.Password != "s3cret-pass" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(loginResponse{
			Token: "fresh-token",
			User:  User{ID: "u1", Username: "admin", Role: "admin"},
		})
	}))
	defer srv.Close()

	store := NewMemoryStore()
	c := New(srv.URL, store)

	user, err := c.Login(context.Background(), "admin", "s3cret-pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Username != "admin" || user.Role != "admin" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if store.Get() != "fresh-token" {
		t.Fatalf("token not stored, got %q", store.Get())
	}
}

func TestFailedLoginKeepsExistingCredential(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
	}))
	defer srv.Close()

	store := NewMemoryStore()
	_ = store.Set("existing-token")
	c := New(srv.URL, store)

	_, err := c.Login(context.Background(), "admin", "wrong")
	if err == nil {
		t.Fatal("expected login failure")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Message != "invalid credentials" {
		t.Fatalf("backend message dropped, got %q", apiErr.Message)
	}
	if errors.Is(err, ErrSessionExpired) {
		t.Fatal("a failed login is not a session expiry")
	}
	if store.Get() != "existing-token" {
		t.Fatal("failed login must leave the stored credential untouched")
	}
}

func TestRejectedCredentialClearsStoreAndSignalsOnce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "token expired"})
	}))
	defer srv.Close()

	store := NewMemoryStore()
	_ = store.Set("stale-token")

	var signals int32
	c := New(srv.URL, store, WithSessionExpiredHandler(func() {
		atomic.AddInt32(&signals, 1)
	}))

	const callers = 8
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = c.ListUsers(context.Background())
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if !errors.Is(err, ErrSessionExpired) {
			t.Fatalf("caller %d: expected ErrSessionExpired, got %v", i, err)
		}
	}
	if store.Get() != "" {
		t.Fatal("rejected credential must be cleared from the store")
	}
	if n := atomic.LoadInt32(&signals); n != 1 {
		t.Fatalf("expected exactly one expiry signal, got %d", n)
	}
}

func TestExpirySignalRearmsAfterLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == loginPath {
			_ = json.NewEncoder(w).Encode(loginResponse{Token: "second-token", User: User{ID: "u1", Username: "admin", Role: "admin"}})
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "token expired"})
	}))
	defer srv.Close()

	store := NewMemoryStore()
	_ = store.Set("first-token")

	var signals int32
	c := New(srv.URL, store, WithSessionExpiredHandler(func() {
		atomic.AddInt32(&signals, 1)
	}))

	if _, err := c.ListUsers(context.Background()); !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected expiry, got %v", err)
	}
	if _, err := c.Login(context.Background(), "admin", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := c.ListUsers(context.Background()); !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected second expiry, got %v", err)
	}
	if n := atomic.LoadInt32(&signals); n != 2 {
		t.Fatalf("signal must re-arm after a new login, got %d signals", n)
	}
}

func TestRetryWithRefreshedCredential(t *testing.T) {
	store := NewMemoryStore()
	_ = store.Set("old-token")

	var requests int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		if r.Header.Get("Authorization") == "Bearer new-token" {
			_ = json.NewEncoder(w).Encode([]User{{ID: "u1", Username: "admin", Role: "admin"}})
			return
		}
		// Another caller refreshed the credential while this one was in flight.
		_ = store.Set("new-token")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "token expired"})
	}))
	defer srv.Close()

	var signals int32
	c := New(srv.URL, store, WithSessionExpiredHandler(func() {
		atomic.AddInt32(&signals, 1)
	}))

	users, err := c.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("expected retry with refreshed token to succeed, got %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("unexpected result: %+v", users)
	}
	if n := atomic.LoadInt32(&requests); n != 2 {
		t.Fatalf("expected exactly one retry, got %d requests", n)
	}
	if atomic.LoadInt32(&signals) != 0 {
		t.Fatal("a successful retry must not raise the expiry signal")
	}
	if store.Get() != "new-token" {
		t.Fatal("refreshed credential must survive")
	}
}

func TestRetryRejectedVoidsCredential(t *testing.T) {
	store := NewMemoryStore()
	_ = store.Set("old-token")

	var requests int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		_ = store.Set("new-token")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "token expired"})
	}))
	defer srv.Close()

	c := New(srv.URL, store)

	if _, err := c.ListUsers(context.Background()); !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired after rejected retry, got %v", err)
	}
	if n := atomic.LoadInt32(&requests); n != 2 {
		t.Fatalf("expected exactly one retry, got %d requests", n)
	}
	if store.Get() != "" {
		t.Fatal("credential must be voided after the retry is rejected")
	}
}

func TestLogoutClearsStoreDespiteServerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	store := NewMemoryStore()
	_ = store.Set(mintToken(t, validClaims(time.Now().Add(time.Hour))))
	c := New(srv.URL, store)

	if err := c.Logout(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if store.Get() != "" {
		t.Fatal("logout must clear the credential even when the server call fails")
	}
}

func TestLogoutWithUnreachableServer(t *testing.T) {
	store := NewMemoryStore()
	_ = store.Set("some-token")
	c := New("http://127.0.0.1:0", store)

	if err := c.Logout(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if store.Get() != "" {
		t.Fatal("logout must clear the credential even when the server is unreachable")
	}
}

func TestAPIErrorCarriesBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "username already taken"})
	}))
	defer srv.Close()

	store := NewMemoryStore()
	_ = store.Set("token")
	c := New(srv.URL, store)

	_, err := c.CreateUser(context.Background(), UserInput{Username: "admin", Password: "password1", Role: "editor"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusConflict || apiErr.Message != "username already taken" {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
}
