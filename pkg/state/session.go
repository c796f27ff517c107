package state

import (
	"sync"

	"cropcast/entities"
)

type Session struct {
	Token string
	User  entities.Profile
}

// SessionStore holds the current session, or none when signed out.
type SessionStore struct {
	mu   sync.RWMutex
	cur  *Session
	subs listeners[*Session]
}

func NewSessionStore() *SessionStore { return &SessionStore{} }

func (s *SessionStore) SignIn(sess Session) {
	s.mu.Lock()
	s.cur = &sess
	s.mu.Unlock()
	s.subs.emit(s.Current())
}

func (s *SessionStore) SignOut() {
	s.mu.Lock()
	was := s.cur != nil
	s.cur = nil
	s.mu.Unlock()
	if was {
		s.subs.emit(nil)
	}
}

// Current returns a copy of the session, nil when signed out.
func (s *SessionStore) Current() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cur == nil {
		return nil
	}
	cp := *s.cur
	return &cp
}

// Token satisfies client.TokenSource.
func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cur == nil {
		return ""
	}
	return s.cur.Token
}

// Subscribe registers fn for sign-in (non-nil) and sign-out (nil) events.
func (s *SessionStore) Subscribe(fn func(*Session)) (cancel func()) {
	return s.subs.add(fn)
}
