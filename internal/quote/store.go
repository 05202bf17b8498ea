package quote

import (
	"sync"
	"time"
)

// Store caches the latest quote per session with lazy TTL eviction. It also
// hands out per-session locks so every read-modify-write sequence on one
// session is serialized; operations on different sessions never contend.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Quote
	locks    map[string]*sessionLock
	now      func() time.Time
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

// NewStore builds an empty store using the provided clock.
func NewStore(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		sessions: make(map[string]*Quote),
		locks:    make(map[string]*sessionLock),
		now:      now,
	}
}

// Acquire locks the session and returns its release func.
func (s *Store) Acquire(sessionID string) func() {
	s.mu.Lock()
	lock, ok := s.locks[sessionID]
	if !ok {
		lock = &sessionLock{}
		s.locks[sessionID] = lock
	}
	lock.refs++
	s.mu.Unlock()

	lock.mu.Lock()
	return func() {
		lock.mu.Unlock()
		s.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(s.locks, sessionID)
		}
		s.mu.Unlock()
	}
}

// Get returns a copy of the stored quote, evicting it first when expired.
func (s *Store) Get(sessionID string) (*Quote, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.sessions[sessionID]
	if !ok {
		return nil, false
	}
	if stored.ExpiredAt(s.now().UTC()) {
		delete(s.sessions, sessionID)
		return nil, false
	}
	return stored.Clone(), true
}

// Put inserts or replaces the quote for its session.
func (s *Store) Put(q *Quote) {
	if q == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[q.SessionID] = q.Clone()
}

// Delete drops the session outright.
func (s *Store) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// Sweep removes every expired session and reports how many were dropped.
// Reads already self-evict, so this is purely a memory bound.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	removed := 0
	for sessionID, stored := range s.sessions {
		if stored.ExpiredAt(now) {
			delete(s.sessions, sessionID)
			removed++
		}
	}
	return removed
}

// Len reports the number of cached sessions, expired or not.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
