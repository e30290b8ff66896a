package history

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Session owns one bounded history, scoped to a (user, session) pair.
// Callers must hold the session lock for the whole turn so concurrent turns
// on the same key are serialized; distinct keys proceed independently.
type Session struct {
	UserID    string
	SessionID string

	mu      sync.Mutex
	history *History
}

// Lock serializes turn processing for this session key.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session key.
func (s *Session) Unlock() { s.mu.Unlock() }

// History returns the session's turn window. Callers must hold the lock.
func (s *Session) History() *History {
	return s.history
}

// TeardownFunc runs when a session ends, explicitly or by expiry.
type TeardownFunc func(s *Session)

// Store is the keyed session registry. Stale sessions expire on a TTL and
// run the same teardown as an explicit end, so memory use stays bounded even
// when clients never say goodbye.
type Store struct {
	mu       sync.Mutex
	sessions *gocache.Cache
	ttl      time.Duration
	teardown TeardownFunc
}

const keySep = "\x1f"

// NewStore returns a session store whose entries expire after ttl of
// inactivity.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	c := gocache.New(ttl, ttl/2)
	s := &Store{sessions: c, ttl: ttl}
	c.OnEvicted(func(_ string, value any) {
		sess, ok := value.(*Session)
		if !ok {
			return
		}
		s.mu.Lock()
		teardown := s.teardown
		s.mu.Unlock()
		if teardown != nil {
			teardown(sess)
		}
	})
	return s
}

// SetTeardown installs the session-end hook. Must be called before traffic.
func (s *Store) SetTeardown(fn TeardownFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teardown = fn
}

// Acquire returns the session for the key, creating it on first use and
// refreshing its expiry. The caller locks the returned session for the turn.
func (s *Store) Acquire(userID, sessionID string) *Session {
	key := userID + keySep + sessionID

	s.mu.Lock()
	defer s.mu.Unlock()
	if value, ok := s.sessions.Get(key); ok {
		sess := value.(*Session)
		s.sessions.Set(key, sess, s.ttl)
		return sess
	}
	sess := &Session{UserID: userID, SessionID: sessionID, history: New()}
	s.sessions.Set(key, sess, s.ttl)
	return sess
}

// End removes the session and fires the teardown hook via the eviction
// callback. Ending an unknown session is a no-op.
func (s *Store) End(userID, sessionID string) {
	key := userID + keySep + sessionID
	s.mu.Lock()
	_, ok := s.sessions.Get(key)
	s.mu.Unlock()
	if !ok {
		return
	}
	// Delete triggers OnEvicted, which runs the teardown exactly once.
	s.sessions.Delete(key)
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	return s.sessions.ItemCount()
}
