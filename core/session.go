package core

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Session keys used by the authentication controller.
const (
	SessionUserID = "user_id"
	SessionUser   = "user"
)

// Session holds the values of one client session.
type Session struct {
	id     string
	mu     sync.RWMutex
	values map[string]any
}

// ID returns the session identifier carried by the cookie.
func (s *Session) ID() string { return s.id }

// Get returns the value stored under key.
func (s *Session) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Set stores v under key.
func (s *Session) Set(key string, v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = v
}

// Has reports whether key is set.
func (s *Session) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Remove deletes key.
func (s *Session) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// IsAuthenticated reports whether a user is logged in.
func (s *Session) IsAuthenticated() bool {
	return s.Has(SessionUserID)
}

// UserID returns the id of the logged in user.
func (s *Session) UserID() (int64, bool) {
	v, ok := s.Get(SessionUserID)
	if !ok {
		return 0, false
	}
	id, err := ToInt64(v)
	if err != nil {
		return 0, false
	}
	return id, true
}

// SessionStore keeps sessions in memory, keyed by a random id sent as a cookie.
type SessionStore struct {
	cookie string
	ttl    time.Duration
	cache  *expirable.LRU[string, *Session]
}

// SessionOption configures a SessionStore.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	cookie string
	size   int
	ttl    time.Duration
}

// WithSessionCookie sets the cookie name. Default "session_id".
func WithSessionCookie(name string) SessionOption {
	return func(c *sessionConfig) { c.cookie = name }
}

// WithSessionSize sets the number of sessions kept. Default 4096.
func WithSessionSize(n int) SessionOption {
	return func(c *sessionConfig) { c.size = n }
}

// WithSessionTTL sets the idle lifetime of a session. Default 24h.
func WithSessionTTL(d time.Duration) SessionOption {
	return func(c *sessionConfig) { c.ttl = d }
}

// NewSessionStore returns an empty store.
func NewSessionStore(opts ...SessionOption) *SessionStore {
	cfg := sessionConfig{cookie: "session_id", size: 4096, ttl: 24 * time.Hour}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &SessionStore{
		cookie: cfg.cookie,
		ttl:    cfg.ttl,
		cache:  expirable.NewLRU[string, *Session](cfg.size, nil, cfg.ttl),
	}
}

// Lookup returns the session of the request without creating one.
func (st *SessionStore) Lookup(r *http.Request) (*Session, bool) {
	c, err := r.Cookie(st.cookie)
	if err != nil {
		return nil, false
	}
	return st.cache.Get(c.Value)
}

// Start returns the session of the request, creating it and setting the
// cookie when none exists.
func (st *SessionStore) Start(w http.ResponseWriter, r *http.Request) *Session {
	if s, ok := st.Lookup(r); ok {
		st.cache.Add(s.id, s)
		return s
	}
	s := &Session{id: uuid.NewString(), values: make(map[string]any)}
	st.cache.Add(s.id, s)
	http.SetCookie(w, &http.Cookie{
		Name:     st.cookie,
		Value:    s.id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(st.ttl / time.Second),
	})
	return s
}

// IsAuthenticated reports whether the request belongs to a logged in session.
func (st *SessionStore) IsAuthenticated(r *http.Request) bool {
	s, ok := st.Lookup(r)
	return ok && s.IsAuthenticated()
}

// Destroy drops the session of the request and expires its cookie.
func (st *SessionStore) Destroy(w http.ResponseWriter, r *http.Request) {
	if s, ok := st.Lookup(r); ok {
		st.cache.Remove(s.id)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     st.cookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// Len returns the number of live sessions.
func (st *SessionStore) Len() int { return st.cache.Len() }
