package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/twitsprout/tools"
	"github.com/twitsprout/tools/clock"

	"school-gallery/internal"
	"school-gallery/internal/surface"
)

// Session owns the engine state of one browsing session. The ID is the
// pseudo-anonymous token correlating the session's like records; it is
// generated once and read-only thereafter. It is not a security
// credential.
type Session struct {
	ID     string
	Public *surface.Public
	Admin  *surface.Admin

	lastSeen time.Time
}

// Registry holds one engine instance per active browsing session and
// evicts sessions idle for longer than the TTL. Sessions are fully
// independent; consistency across them is eventual, observed on the
// next full load.
type Registry struct {
	svc    internal.GalleryService
	logger tools.Logger
	clock  clock.Clock
	ttl    time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewRegistry creates a Registry. A nil clk falls back to real time.
func NewRegistry(svc internal.GalleryService, ttl time.Duration, clk clock.Clock, logger tools.Logger) *Registry {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	if clk == nil {
		clk = &clock.Default{}
	}
	return &Registry{
		svc:      svc,
		logger:   logger,
		clock:    clk,
		ttl:      ttl,
		sessions: make(map[string]*Session),
	}
}

// Get returns the session for id, touching its idle timer. Expired or
// unknown sessions report false.
func (r *Registry) Get(id string) (*Session, bool) {
	now := r.clock.Now()
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	if now.Sub(s.lastSeen) > r.ttl {
		delete(r.sessions, id)
		return nil, false
	}
	s.lastSeen = now
	return s, true
}

// GetOrCreate returns the session for id, or a fresh one when id is
// empty, unknown or expired.
func (r *Registry) GetOrCreate(id string) *Session {
	if id != "" {
		if s, ok := r.Get(id); ok {
			return s
		}
	}
	return r.Create()
}

// Create starts a new browsing session with its own engine instance.
func (r *Registry) Create() *Session {
	id := uuid.NewString()
	pub, adm := surface.New(r.svc, id, r.logger)
	s := &Session{
		ID:       id,
		Public:   pub,
		Admin:    adm,
		lastSeen: r.clock.Now(),
	}

	r.mu.Lock()
	r.prune(s.lastSeen)
	r.sessions[id] = s
	r.mu.Unlock()

	r.logger.Debug("[Create] new browsing session", "session_id", id)
	return s
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// prune drops idle sessions. Caller must hold the lock.
func (r *Registry) prune(now time.Time) {
	for id, s := range r.sessions {
		if now.Sub(s.lastSeen) > r.ttl {
			delete(r.sessions, id)
		}
	}
}
