package session

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/felipe-jimenez-ai/mentoria/models"
)

// CookieName is the browser cookie carrying the session token.
const CookieName = "mentoria_session"

// Manager keys sessions by a uuid cookie. Sessions idle longer than the
// TTL are pruned opportunistically on the next Attach, so no janitor
// goroutine is needed.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

// NewManager creates an empty session registry. ttl <= 0 disables expiry.
func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Attach returns the session for the request's cookie, creating a fresh
// one (and setting the cookie) on first contact or after expiry.
func (m *Manager) Attach(c *fiber.Ctx) *Session {
	m.prune()

	if token := c.Cookies(CookieName); token != "" {
		m.mu.RLock()
		s, ok := m.sessions[token]
		m.mu.RUnlock()
		if ok {
			return s
		}
	}

	s := newSession(uuid.NewString())

	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()

	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    s.id,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return s
}

// Lookup returns the session for a token without creating one.
func (m *Manager) Lookup(token string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[token]
	if !ok {
		return nil, models.ErrNotSet
	}
	return s, nil
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *Manager) prune() {
	if m.ttl <= 0 {
		return
	}

	cutoff := time.Now().Add(-m.ttl)

	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		if s.lastTouched().Before(cutoff) {
			delete(m.sessions, id)
		}
	}
}
