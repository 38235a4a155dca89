package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/edumax/schoolapp/internal/domain/access"
	domainauth "github.com/edumax/schoolapp/internal/domain/auth"
	"github.com/edumax/schoolapp/internal/observability/errkind"
	"github.com/edumax/schoolapp/internal/ports"
)

var (
	// ErrBootstrapPending is returned when a transition is requested before
	// the startup store read has resolved.
	ErrBootstrapPending = errors.New("session bootstrap has not completed")

	// ErrAlreadyAuthenticated is returned by Login when a session is live.
	ErrAlreadyAuthenticated = errors.New("already authenticated")

	// ErrNotAuthenticated is returned by Logout without a live session.
	ErrNotAuthenticated = errors.New("not authenticated")
)

// SessionManagerOptions groups dependencies for SessionManager.
type SessionManagerOptions struct {
	Gateway ports.Gateway
	Store   ports.CredentialStore
	Logger  *slog.Logger
}

// SessionManager owns the in-memory session state machine and is the only
// writer of both the session and the credential store. The view layer reads
// state and requests transitions; it never mutates either directly.
//
// Transitions are serialized: one mutex is held across each transition, so
// a Logout issued while a Login is in flight queues behind it and never
// interleaves.
type SessionManager struct {
	gateway ports.Gateway
	store   ports.CredentialStore
	logger  *slog.Logger

	boot singleflight.Group

	mu     sync.Mutex
	booted bool
	state  domainauth.State
	token  string
	role   domainauth.Role
}

// NewSessionManager constructs a SessionManager. The session starts in
// StateAuthenticating until Bootstrap resolves it.
func NewSessionManager(opts SessionManagerOptions) *SessionManager {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionManager{
		gateway: opts.Gateway,
		store:   opts.Store,
		logger:  logger,
		state:   domainauth.StateAuthenticating,
	}
}

// Bootstrap reconciles the session with the credential store. A valid pair
// resolves to Authenticated(role); anything else, including store read
// failure or a corrupt pair, resolves to Unauthenticated. Bootstrap itself
// never fails and is safe to call from any number of goroutines; concurrent
// calls collapse into one store read.
func (m *SessionManager) Bootstrap(ctx context.Context) domainauth.Session {
	v, _, _ := m.boot.Do("bootstrap", func() (any, error) {
		return m.bootstrap(ctx), nil
	})
	return v.(domainauth.Session)
}

func (m *SessionManager) bootstrap(ctx context.Context) domainauth.Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.booted {
		return m.snapshotLocked()
	}

	cred, found, err := m.store.Load(ctx)
	switch {
	case err != nil:
		// Read failure is indistinguishable from "never logged in";
		// re-login recovers it.
		m.logger.Warn("credential load failed, starting unauthenticated",
			slog.String("kind", errkind.Kind(err)),
			slog.Any("error", err))
		m.setUnauthenticatedLocked()
	case found:
		m.state = domainauth.StateAuthenticated
		m.token = cred.Token
		m.role = domainauth.ParseRole(string(cred.Role))
	default:
		m.setUnauthenticatedLocked()
	}

	m.booted = true
	return m.snapshotLocked()
}

// Login exchanges credentials through the gateway, persists the result, and
// transitions to Authenticated(role). Legal only from Unauthenticated. On
// failure the session stays Unauthenticated and the error is surfaced to
// the caller; no partial state is ever observable.
func (m *SessionManager) Login(ctx context.Context, email, password string) (domainauth.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.booted {
		return m.snapshotLocked(), ErrBootstrapPending
	}
	if m.state == domainauth.StateAuthenticated {
		return m.snapshotLocked(), ErrAlreadyAuthenticated
	}

	res, err := m.gateway.Login(ctx, email, password)
	if err != nil {
		return m.snapshotLocked(), err
	}

	cred := domainauth.Credential{Token: res.Token, Role: res.Role}
	if saveErr := m.store.Save(ctx, cred); saveErr != nil {
		// The login is real; a lost save only costs a re-login after the
		// next restart.
		m.logger.Warn("credential save failed, session will not survive restart",
			slog.String("kind", errkind.Kind(saveErr)),
			slog.Any("error", saveErr))
	}

	m.state = domainauth.StateAuthenticated
	m.token = res.Token
	m.role = res.Role
	return m.snapshotLocked(), nil
}

// Logout clears the credential store and transitions to Unauthenticated.
// The visible session always reads "logged out" after Logout returns, even
// when the store clear fails; staying logged in on a local failure would be
// the worse outcome.
func (m *SessionManager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != domainauth.StateAuthenticated {
		return ErrNotAuthenticated
	}

	if err := m.store.Clear(ctx); err != nil {
		m.logger.Warn("credential clear failed, session cleared anyway",
			slog.String("kind", errkind.Kind(err)),
			slog.Any("error", err))
	}

	m.setUnauthenticatedLocked()
	return nil
}

// Current returns a snapshot of the session.
func (m *SessionManager) Current() domainauth.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// Token returns the live session token, or "" when unauthenticated. It is
// the token source wired into the gateway client.
func (m *SessionManager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// Can reports whether the current session's role unlocks c. It is false for
// any capability while unauthenticated or still bootstrapping.
func (m *SessionManager) Can(c access.Capability) bool {
	return m.Capabilities().Has(c)
}

// Capabilities returns the capability set of the current role, or an empty
// set without a live session.
func (m *SessionManager) Capabilities() access.Set {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != domainauth.StateAuthenticated {
		return access.Set{}
	}
	return access.ForRole(m.role)
}

func (m *SessionManager) setUnauthenticatedLocked() {
	m.state = domainauth.StateUnauthenticated
	m.token = ""
	m.role = ""
}

func (m *SessionManager) snapshotLocked() domainauth.Session {
	return domainauth.Session{State: m.state, Token: m.token, Role: m.role}
}
