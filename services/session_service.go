package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionTTL is how long an issued session stays valid.
const SessionTTL = 24 * time.Hour

// Session maps an opaque token to a logged-in user.
type Session struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
}

// SessionService issues and resolves opaque server-side sessions. Tokens
// carry no information themselves; everything lives in this map, so a
// restart logs everyone out.
type SessionService struct {
	mu       sync.Mutex
	sessions map[string]Session
}

// NewSessionService returns an empty session registry.
func NewSessionService() *SessionService {
	return &SessionService{sessions: make(map[string]Session)}
}

// Create issues a fresh session for userID.
func (s *SessionService) Create(userID string) Session {
	session := Session{
		Token:     uuid.New().String(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(SessionTTL),
	}

	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()

	return session
}

// Get resolves a token. Expired sessions are dropped on lookup.
func (s *SessionService) Get(token string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return Session{}, false
	}
	if time.Now().After(session.ExpiresAt) {
		delete(s.sessions, token)
		return Session{}, false
	}
	return session, true
}

// Destroy forgets a session. Unknown tokens are ignored.
func (s *SessionService) Destroy(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
