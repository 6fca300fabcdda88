package dashboard

import (
	"context"
	"errors"
	"sync"

	"github.com/xuseen0619585707-eng/horseed-hospital-hms/internal/apiclient"
)

// User-facing login failure messages. These two are deliberately the only
// errors the dashboard ever shows; everything else is logged and swallowed.
const (
	MsgBadCredentials = "incorrect username or password"
	MsgUnreachable    = "server not reachable"
)

// ErrLoginInFlight is returned when a login attempt is made while a
// previous one has not settled yet.
var ErrLoginInFlight = errors.New("login already in flight")

// SessionGate holds the authentication boundary: a single flag plus a
// transient error message. Nothing is persisted; a restart always lands
// back on the login surface.
type SessionGate struct {
	backend Backend

	mu            sync.Mutex
	authenticated bool
	pending       bool
	message       string
}

func NewSessionGate(backend Backend) *SessionGate {
	return &SessionGate{backend: backend}
}

// AttemptLogin submits credentials. While an attempt is pending, further
// attempts are rejected with ErrLoginInFlight. On success the gate flips
// to authenticated; on failure it records a user-facing message: a 401
// maps to MsgBadCredentials, any other failure to MsgUnreachable.
func (g *SessionGate) AttemptLogin(ctx context.Context, username, password string) error {
	g.mu.Lock()
	if g.pending {
		g.mu.Unlock()
		return ErrLoginInFlight
	}
	g.pending = true
	g.message = ""
	g.mu.Unlock()

	err := g.backend.Login(ctx, username, password)

	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending = false

	switch {
	case err == nil:
		g.authenticated = true
		g.message = ""
	case errors.Is(err, apiclient.ErrCredentialsRejected):
		g.message = MsgBadCredentials
	default:
		g.message = MsgUnreachable
	}
	return err
}

// Logout drops the session. There is no server-side state to clear.
func (g *SessionGate) Logout() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.authenticated = false
	g.message = ""
}

func (g *SessionGate) Authenticated() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.authenticated
}

func (g *SessionGate) Pending() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pending
}

// Message returns the current user-facing login error, empty when none.
func (g *SessionGate) Message() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.message
}
