// Package controller implements the per-screen logic: each screen is a
// small finite-state machine that guards on the session, fetches
// through the API client, and signals navigation. The view layer reads
// controller state and calls intent methods; it never talks to the API
// directly.
package controller

import (
	"context"
	"errors"

	"github.com/invoicing/invoicectl/internal/api"
	"github.com/invoicing/invoicectl/internal/session"
)

// State is the explicit screen lifecycle. A screen is never in an
// ambiguous combination of loading/error flags.
type State int

const (
	// StateIdle means the screen has not started loading (session gate
	// not passed yet).
	StateIdle State = iota
	// StateLoading means a fetch or submit is in flight.
	StateLoading
	// StateReady means data is loaded and the screen is interactive.
	StateReady
	// StateErrored means a load failed terminally for this view.
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// Confirmer asks the user to approve a destructive action before it is
// issued.
type Confirmer interface {
	Confirm(prompt string) bool
}

// screen carries the state shared by every controller: the session
// gate, the navigation sink, and a context bound to the screen's
// active lifetime. Close cancels any in-flight request so a response
// arriving after navigation is never acted on.
type screen struct {
	ctx    context.Context
	cancel context.CancelFunc
	sess   *session.Manager
	nav    session.Navigator

	state  State
	errMsg string
}

func newScreen(sess *session.Manager, nav session.Navigator) screen {
	ctx, cancel := context.WithCancel(context.Background())
	return screen{
		ctx:    ctx,
		cancel: cancel,
		sess:   sess,
		nav:    nav,
		state:  StateIdle,
	}
}

// State returns the screen's lifecycle state.
func (s *screen) State() State {
	return s.state
}

// Err returns the message to render inline, empty when there is none.
func (s *screen) Err() string {
	return s.errMsg
}

// Close ends the screen's lifetime and aborts its pending requests.
func (s *screen) Close() {
	s.cancel()
}

// guard applies the session gate: a loading session means wait, an
// unauthenticated one redirects to login. Only an authenticated
// session may fetch.
func (s *screen) guard() bool {
	switch s.sess.Status() {
	case session.StatusLoading:
		return false
	case session.StatusUnauthenticated:
		if s.nav != nil {
			s.nav.Navigate(session.RouteLogin)
		}
		return false
	default:
		return true
	}
}

// reportError records a failure and moves the screen to next. A
// rejected session forces a reset and redirect instead of surfacing as
// an ordinary error. Cancellation is silent: the screen was left and
// the response is stale.
func (s *screen) reportError(err error, next State) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return
	}
	if api.IsUnauthorized(err) {
		s.sess.Invalidate()
	}
	s.errMsg = err.Error()
	s.state = next
}

// failLoad marks a fetch failure as terminal for the view.
func (s *screen) failLoad(err error) {
	s.reportError(err, StateErrored)
}

// failSubmit surfaces a submit failure and re-enables the form with
// its prior input intact.
func (s *screen) failSubmit(err error) {
	s.reportError(err, StateReady)
}

// begin enters the loading state and clears any previous error.
func (s *screen) begin() {
	s.state = StateLoading
	s.errMsg = ""
}

// localError surfaces a client-side precondition failure without any
// network call.
func (s *screen) localError(msg string) {
	s.errMsg = msg
	s.state = StateReady
}
