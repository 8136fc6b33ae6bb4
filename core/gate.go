package core

import "net/http"

// Gate decides whether a request may run a mutating operation. When it
// denies, Allow has already written the response.
type Gate interface {
	Allow(w http.ResponseWriter, r *http.Request) bool
}

// GateFunc adapts a function to Gate.
type GateFunc func(w http.ResponseWriter, r *http.Request) bool

// Allow implements Gate.
func (f GateFunc) Allow(w http.ResponseWriter, r *http.Request) bool { return f(w, r) }

// AllowAll returns a Gate that admits every request.
func AllowAll() Gate {
	return GateFunc(func(http.ResponseWriter, *http.Request) bool { return true })
}

// SessionGate admits requests from authenticated sessions.
type SessionGate struct {
	sessions *SessionStore
	login    string
}

// NewSessionGate returns a gate that sends anonymous browsers to login.
func NewSessionGate(sessions *SessionStore, login string) *SessionGate {
	return &SessionGate{sessions: sessions, login: login}
}

// Allow implements Gate. Script requests are refused with 401, browsers
// are redirected to the login page.
func (g *SessionGate) Allow(w http.ResponseWriter, r *http.Request) bool {
	if g.sessions.IsAuthenticated(r) {
		return true
	}
	if IsAsync(r) {
		Error(w, http.StatusUnauthorized, "Authentication required")
		return false
	}
	Redirect(w, r, g.login)
	return false
}

// RequireGuest redirects authenticated sessions to home and reports
// whether the request may continue.
func (g *SessionGate) RequireGuest(w http.ResponseWriter, r *http.Request) bool {
	if !g.sessions.IsAuthenticated(r) {
		return true
	}
	Redirect(w, r, "/")
	return false
}
