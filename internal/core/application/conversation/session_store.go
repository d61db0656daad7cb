package conversation

import (
	"sync"
	"time"
)

type sessionEntry struct {
	mu      sync.Mutex
	session *Session
	removed bool
}

// SessionStore maps chat ids to sessions. Transitions of one chat run one at a
// time; different chats proceed in parallel.
type SessionStore struct {
	mu      sync.Mutex
	entries map[int64]*sessionEntry
	now     func() time.Time
}

// NewSessionStore returns an empty store. A nil now defaults to time.Now.
func NewSessionStore(now func() time.Time) *SessionStore {
	if now == nil {
		now = time.Now
	}
	return &SessionStore{
		entries: make(map[int64]*sessionEntry),
		now:     now,
	}
}

// Do runs fn with exclusive access to the session of chatID, creating it on
// first contact. The session's LastSeen is refreshed after fn returns.
func (s *SessionStore) Do(chatID int64, fn func(*Session) error) error {
	for {
		if done, err := s.run(s.entry(chatID), fn); done {
			return err
		}
	}
}

// run reports false when e was swept between lookup and lock.
func (s *SessionStore) run(e *sessionEntry, fn func(*Session) error) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.removed {
		return false, nil
	}

	defer func() {
		e.session.LastSeen = s.now()
	}()
	return true, fn(e.session)
}

func (s *SessionStore) entry(chatID int64) *sessionEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[chatID]
	if !ok {
		e = &sessionEntry{session: newSession(chatID, s.now())}
		s.entries[chatID] = e
	}
	return e
}

// Sweep drops sessions idle for longer than ttl and returns how many were
// dropped. Sessions busy in Do are skipped.
func (s *SessionStore) Sweep(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-ttl)
	dropped := 0
	for id, e := range s.entries {
		if !e.mu.TryLock() {
			continue
		}
		if e.session.LastSeen.Before(cutoff) {
			e.removed = true
			delete(s.entries, id)
			dropped++
		}
		e.mu.Unlock()
	}
	return dropped
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
