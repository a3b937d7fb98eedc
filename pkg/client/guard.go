package client

import (
	"context"
	"net/url"
	"strings"
	"sync"
)

// AuthState is the guard's view of the current visitor.
type AuthState string

const (
	// StateChecking is the initial state, before the stored credential has
	// been resolved. A guard in this state never admits and never redirects.
	StateChecking AuthState = "checking"

	// StateAuthenticated means a live credential with an allowed role backs
	// the current visitor.
	StateAuthenticated AuthState = "authenticated"

	// StateUnauthenticated means no usable credential exists.
	StateUnauthenticated AuthState = "unauthenticated"
)

const (
	loginViewPath    = "/admin/login"
	adminDefaultPath = "/admin"
)

// Decision is the outcome of gating one navigation attempt.
type Decision struct {
	State AuthState

	// Session is set only when State is StateAuthenticated.
	Session *Session

	// RedirectTo is set when the visitor must be sent elsewhere: to the
	// login view (with the original destination preserved) when the
	// credential is missing or dead.
	RedirectTo string
}

// Guard gates navigation into the admin area. It resolves the stored
// credential on every check, so a credential that expired between checks is
// noticed without any server round trip, and remembers the destination that
// triggered a redirect so a later login can land there.
type Guard struct {
	client   *Client
	resolver *Resolver
	allowed  map[string]struct{}

	mu      sync.Mutex
	checked bool
	intent  string
}

// NewGuard builds a guard over the client's credential store. With no roles
// given, any authenticated session is admitted.
func NewGuard(c *Client, allowedRoles ...string) *Guard {
	g := &Guard{
		client:   c,
		resolver: NewResolver(c.Store()),
	}
	if len(allowedRoles) > 0 {
		g.allowed = make(map[string]struct{}, len(allowedRoles))
		for _, role := range allowedRoles {
			g.allowed[role] = struct{}{}
		}
	}
	return g
}

// State reports the guard's current state without recording a navigation
// intent. Before the first Check it is StateChecking.
func (g *Guard) State() AuthState {
	g.mu.Lock()
	checked := g.checked
	g.mu.Unlock()

	if !checked {
		return StateChecking
	}
	if _, ok := g.resolver.Resolve(); !ok {
		return StateUnauthenticated
	}
	return StateAuthenticated
}

// Check gates a navigation attempt at requestedPath. An unauthenticated
// visitor is redirected to the login view and the requested destination is
// remembered for the post-login redirect.
func (g *Guard) Check(requestedPath string) Decision {
	session, ok := g.resolver.Resolve()

	g.mu.Lock()
	defer g.mu.Unlock()
	g.checked = true

	if !ok || !g.roleAllowed(session.Role) {
		if requestedPath != "" && requestedPath != loginViewPath {
			g.intent = requestedPath
		}
		return Decision{
			State:      StateUnauthenticated,
			RedirectTo: loginURL(g.intent),
		}
	}

	return Decision{State: StateAuthenticated, Session: session}
}

func (g *Guard) roleAllowed(role string) bool {
	if g.allowed == nil {
		return true
	}
	_, ok := g.allowed[role]
	return ok
}

// Login authenticates through the gateway and returns the path to land on:
// the destination that originally triggered the login redirect, or the admin
// home when there is none. A successful login consumes the pending intent.
func (g *Guard) Login(ctx context.Context, username, password string) (string, error) {
	if _, err := g.client.Login(ctx, username, password); err != nil {
		return "", err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.checked = true

	target := g.intent
	g.intent = ""
	if target == "" || !strings.HasPrefix(target, "/") {
		target = adminDefaultPath
	}
	return target, nil
}

// Logout clears the credential and returns the bare login path, with no
// destination carried over.
func (g *Guard) Logout(ctx context.Context) (string, error) {
	if err := g.client.Logout(ctx); err != nil {
		return "", err
	}

	g.mu.Lock()
	g.intent = ""
	g.mu.Unlock()

	return loginViewPath, nil
}

// loginURL builds the login view path, preserving the blocked destination in
// the redirectTo query parameter.
func loginURL(intent string) string {
	if intent == "" {
		return loginViewPath
	}
	return loginViewPath + "?redirectTo=" + url.QueryEscape(intent)
}
