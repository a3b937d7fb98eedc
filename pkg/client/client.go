// Package client is the Go client for the corporate site API. It owns the
// credential lifecycle on the calling device: a durable TokenStore, a
// Resolver that derives the current session from the stored credential, a
// Guard that gates admin-area navigation, and the HTTP gateway itself.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"
)

// ErrSessionExpired is returned when the backend rejects the stored
// credential. By the time a caller sees it the Token Store has already been
// cleared; the caller's only job is to send the user to the login view.
var ErrSessionExpired = errors.New("session expired")

const loginPath = "/api/auth/login"

// APIError carries a non-2xx backend response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
}

// Client is the HTTP gateway to the backend. Every non-login request carries
// the credential read fresh from the Token Store, so a credential refreshed
// mid-session is picked up on the very next call. The gateway never
// navigates; on credential rejection it clears the store, raises the
// session-expired signal at most once per credential, and returns
// ErrSessionExpired for the caller to act on.
type Client struct {
	baseURL string
	httpc   *http.Client
	store   TokenStore

	mu        sync.Mutex
	signaled  bool
	onExpired func()
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// WithSessionExpiredHandler installs a callback invoked at most once per
// credential lifetime when the backend rejects it.
func WithSessionExpiredHandler(fn func()) Option {
	return func(c *Client) { c.onExpired = fn }
}

// New returns a Client for the API at baseURL using store for credentials.
func New(baseURL string, store TokenStore, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 30 * time.Second},
		store:   store,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Store exposes the Token Store, primarily for constructing a Resolver or
// Guard over the same credential slot.
func (c *Client) Store() TokenStore {
	return c.store
}

func (c *Client) signalExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.signaled {
		return
	}
	c.signaled = true
	if c.onExpired != nil {
		c.onExpired()
	}
}

// rearm re-enables the session-expired signal after a new credential is
// stored.
func (c *Client) rearm() {
	c.mu.Lock()
	c.signaled = false
	c.mu.Unlock()
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, payload []byte, token string) (*http.Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.httpc.Do(req)
}

// do dispatches one logical request. On a 401 for a non-login request it
// re-reads the store and retries at most once (covers a credential refreshed
// mid-flight); a second rejection voids the credential.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var payload []byte
	if in != nil {
		var err error
		payload, err = json.Marshal(in)
		if err != nil {
			return err
		}
	}

	token := c.store.Get()
	resp, err := c.send(ctx, method, path, query, payload, token)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized && path != loginPath {
		_ = resp.Body.Close()

		if fresh := c.store.Get(); fresh != "" && fresh != token {
			resp, err = c.send(ctx, method, path, query, payload, fresh)
			if err != nil {
				return err
			}
			if resp.StatusCode != http.StatusUnauthorized {
				return c.decode(resp, out)
			}
			_ = resp.Body.Close()
		}

		_ = c.store.Clear()
		c.signalExpired()
		return ErrSessionExpired
	}

	return c.decode(resp, out)
}

func (c *Client) decode(resp *http.Response, out any) error {
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    readErrorMessage(resp.Body),
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// readErrorMessage extracts the backend's error text, falling back to a
// generic message when the body is not the usual envelope.
func readErrorMessage(body io.Reader) string {
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(body).Decode(&envelope); err == nil {
		if envelope.Error != "" {
			return envelope.Error
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}
	return "request failed"
}

// --- Auth ---

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Login authenticates against the backend and stores the credential. A
// failed login leaves any existing credential untouched.
func (c *Client) Login(ctx context.Context, username, password string) (*User, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, loginPath, nil, loginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, &APIError{StatusCode: http.StatusBadGateway, Message: "login succeeded but no token returned"}
	}

	if err := c.store.Set(resp.Token); err != nil {
		return nil, err
	}
	c.rearm()
	return &resp.User, nil
}

// Logout clears the local credential unconditionally. The server-side
// revocation call is best-effort; its failure is ignored.
func (c *Client) Logout(ctx context.Context) error {
	if token := c.store.Get(); token != "" {
		if resp, err := c.send(ctx, http.MethodPost, "/api/auth/logout", nil, nil, token); err == nil {
			_ = resp.Body.Close()
		}
	}

	if err := c.store.Clear(); err != nil {
		return err
	}
	c.rearm()
	return nil
}

// --- Pages ---

func (c *Client) ListPages(ctx context.Context) ([]Page, error) {
	var pages []Page
	err := c.do(ctx, http.MethodGet, "/api/admin/pages", nil, nil, &pages)
	return pages, err
}

func (c *Client) GetPage(ctx context.Context, key string) (*Page, error) {
	var page Page
	err := c.do(ctx, http.MethodGet, "/api/admin/pages/"+url.PathEscape(key), nil, nil, &page)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) UpdatePage(ctx context.Context, key string, input PageInput) (*Page, error) {
	var page Page
	err := c.do(ctx, http.MethodPut, "/api/admin/pages/"+url.PathEscape(key), nil, input, &page)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// --- Products ---

// ListProducts returns the admin (both-language) catalog view.
func (c *Client) ListProducts(ctx context.Context, category string, page, limit int) (*ProductList, error) {
	query := url.Values{}
	if category != "" {
		query.Set("category", category)
	}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var list ProductList
	if err := c.do(ctx, http.MethodGet, "/api/admin/products", query, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (*Product, error) {
	var product Product
	err := c.do(ctx, http.MethodGet, "/api/admin/products/"+url.PathEscape(id), nil, nil, &product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) CreateProduct(ctx context.Context, input ProductInput) (*Product, error) {
	var product Product
	err := c.do(ctx, http.MethodPost, "/api/admin/products", nil, input, &product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, input ProductInput) (*Product, error) {
	var product Product
	err := c.do(ctx, http.MethodPut, "/api/admin/products/"+url.PathEscape(id), nil, input, &product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/products/"+url.PathEscape(id), nil, nil, nil)
}

// --- Messages ---

// SubmitMessage posts a visitor inquiry through the public endpoint and
// returns its reference code.
func (c *Client) SubmitMessage(ctx context.Context, name, email, content string) (string, error) {
	var resp struct {
		Reference string `json:"reference"`
	}
	err := c.do(ctx, http.MethodPost, "/api/messages", nil, map[string]string{
		"name":    name,
		"email":   email,
		"content": content,
	}, &resp)
	return resp.Reference, err
}

func (c *Client) ListMessages(ctx context.Context, status string, page, limit int) (*MessageList, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", status)
	}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var list MessageList
	if err := c.do(ctx, http.MethodGet, "/api/admin/messages", query, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) MarkMessageRead(ctx context.Context, id string) (*Message, error) {
	var message Message
	err := c.do(ctx, http.MethodPut, "/api/admin/messages/"+url.PathEscape(id)+"/read", nil, nil, &message)
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (c *Client) ReplyMessage(ctx context.Context, id, reply string) (*Message, error) {
	var message Message
	err := c.do(ctx, http.MethodPut, "/api/admin/messages/"+url.PathEscape(id)+"/reply", nil, map[string]string{"reply": reply}, &message)
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (c *Client) DeleteMessage(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/messages/"+url.PathEscape(id), nil, nil, nil)
}

// --- Users ---

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	err := c.do(ctx, http.MethodGet, "/api/admin/users", nil, nil, &users)
	return users, err
}

func (c *Client) CreateUser(ctx context.Context, input UserInput) (*User, error) {
	var user User
	err := c.do(ctx, http.MethodPost, "/api/admin/users", nil, input, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/users/"+url.PathEscape(id), nil, nil, nil)
}

func (c *Client) ChangeUserPassword(ctx context.Context, id, password string) error {
	return c.do(ctx, http.MethodPut, "/api/admin/users/"+url.PathEscape(id)+"/password", nil, map[string]string{"password": password}, nil)
}

// --- Settings ---

func (c *Client) GetSettings(ctx context.Context) (*Settings, error) {
	var settings Settings
	err := c.do(ctx, http.MethodGet, "/api/admin/settings", nil, nil, &settings)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (c *Client) UpdateSettings(ctx context.Context, input SettingsInput) (*Settings, error) {
	var settings Settings
	err := c.do(ctx, http.MethodPut, "/api/admin/settings", nil, input, &settings)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}
