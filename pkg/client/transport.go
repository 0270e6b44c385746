package client

import (
	"net/http"
	"sync/atomic"
)

// Transport is an http.RoundTripper that attaches the stored session token
// to every outgoing request and reacts to 401 responses by clearing the
// session and requesting a single navigation back to the login entry point.
//
// Headers are set per request on a clone, never on shared client state, so
// two Transports over the same http.Client cannot leak tokens into each
// other's requests.
type Transport struct {
	// Base performs the actual round trip. Defaults to http.DefaultTransport.
	Base http.RoundTripper
	// Store supplies and clears the session token.
	Store *Store
	// LoginPath is the entry point users are sent to after session loss.
	LoginPath string
	// CurrentPath reports where the client currently is. Used to suppress
	// the redirect when the client is already at LoginPath.
	CurrentPath func() string
	// Navigate is invoked at most once per session loss with the redirect
	// target. Subsequent 401s clear the store but do not navigate again.
	Navigate func(path string)

	redirecting atomic.Bool
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	if token, ok := t.Store.Retrieve(); ok {
		clone.Header.Set("Authorization", "Bearer "+token)
	}

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	resp, err := base.RoundTrip(clone)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		t.handleSessionLoss()
	}
	return resp, nil
}

// handleSessionLoss clears the store (a no-op when already empty) and
// decides the redirect exactly once, so a 401 racing in after navigation has
// started cannot re-trigger it. A 401 received while already at the login
// page leaves the one-shot flag armed; only an actual navigation consumes it.
func (t *Transport) handleSessionLoss() {
	_ = t.Store.Clear()

	if t.CurrentPath != nil && t.CurrentPath() == t.LoginPath {
		return
	}
	if !t.redirecting.CompareAndSwap(false, true) {
		return
	}
	if t.Navigate != nil {
		t.Navigate(t.LoginPath)
	}
}

// ResetNavigation re-arms the one-shot redirect, to be called after a new
// session is persisted (e.g. following a fresh login).
func (t *Transport) ResetNavigation() {
	t.redirecting.Store(false)
}
