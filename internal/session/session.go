// Package session holds the client-side belief about whether the user
// is authenticated. The manager is an explicit, injectable object with
// a defined lifecycle: initialized once from the token store, then
// mutated only through Login, Logout, and Invalidate intents. It never
// touches the network.
package session

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/invoicing/invoicectl/internal/tokenstore"
)

// Status is the session state axis.
type Status int

const (
	// StatusLoading means the token store has not been consulted yet.
	StatusLoading Status = iota
	// StatusAuthenticated means a token exists or login succeeded.
	StatusAuthenticated
	// StatusUnauthenticated means no token exists, or the session was
	// ended by logout or a rejected request.
	StatusUnauthenticated
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusAuthenticated:
		return "authenticated"
	case StatusUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Route identifies a navigation target.
type Route string

// Fixed navigation targets.
const (
	RouteLogin        Route = "/login"
	RouteInvoiceList  Route = "/invoices"
	RouteCustomerList Route = "/customers"
)

// Navigator receives navigation signals. The view layer supplies one.
type Navigator interface {
	Navigate(Route)
}

// TokenStore is the persistence contract the manager depends on.
// Satisfied by *tokenstore.Store.
type TokenStore interface {
	Get() (string, error)
	Set(token string) error
	Clear() error
}

// Manager tracks authentication state for the process.
type Manager struct {
	store  TokenStore
	nav    Navigator
	logger *zap.Logger

	mu     sync.RWMutex
	status Status
}

// NewManager creates a manager in the loading state. Call Init before
// consulting the status.
func NewManager(store TokenStore, nav Navigator, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		store:  store,
		nav:    nav,
		logger: logger,
		status: StatusLoading,
	}
}

// Init consults the token store exactly once and resolves the loading
// state. No network call is made: a stored token is trusted until a
// request fails. Calling Init again is a no-op.
func (m *Manager) Init() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.status != StatusLoading {
		return
	}

	_, err := m.store.Get()
	switch {
	case err == nil:
		m.status = StatusAuthenticated
	case errors.Is(err, tokenstore.ErrNoToken):
		m.status = StatusUnauthenticated
	default:
		m.logger.Warn("token store unreadable, treating as signed out", zap.Error(err))
		m.status = StatusUnauthenticated
	}
}

// Status returns the current session status.
func (m *Manager) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// IsAuthenticated reports whether the session is authenticated.
func (m *Manager) IsAuthenticated() bool {
	return m.Status() == StatusAuthenticated
}

// IsLoading reports whether the token store has not been consulted yet.
func (m *Manager) IsLoading() bool {
	return m.Status() == StatusLoading
}

// Login persists the token, marks the session authenticated, and
// signals navigation to the default landing screen.
func (m *Manager) Login(token string) error {
	if err := m.store.Set(token); err != nil {
		return err
	}

	m.mu.Lock()
	m.status = StatusAuthenticated
	m.mu.Unlock()

	if m.nav != nil {
		m.nav.Navigate(RouteInvoiceList)
	}
	return nil
}

// Logout clears the token, marks the session unauthenticated, and
// signals navigation to the login screen.
func (m *Manager) Logout() error {
	if err := m.store.Clear(); err != nil {
		return err
	}

	m.mu.Lock()
	m.status = StatusUnauthenticated
	m.mu.Unlock()

	if m.nav != nil {
		m.nav.Navigate(RouteLogin)
	}
	return nil
}

// Invalidate force-resets the session after the server rejected a
// request as unauthenticated. The stale token is discarded and the user
// is sent back to the login screen.
func (m *Manager) Invalidate() {
	if err := m.store.Clear(); err != nil {
		m.logger.Warn("clearing stale token failed", zap.Error(err))
	}

	m.mu.Lock()
	m.status = StatusUnauthenticated
	m.mu.Unlock()

	if m.nav != nil {
		m.nav.Navigate(RouteLogin)
	}
}
