// Package sessionstore keeps the active scheduling session per user in a
// TTL-bounded cache, so abandoned sessions age out instead of leaking.
package sessionstore

import (
	"errors"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"personal-task-scheduler/internal/scheduler"
)

// ErrNoActiveSession is returned when a user drives a session that does
// not exist (never opened, expired, or already finished).
var ErrNoActiveSession = errors.New("no active scheduling session")

const (
	DefaultCapacity = 128
	DefaultTTL      = 30 * time.Minute
)

// Store holds at most one active session per user. Mutating transitions go
// through Do, which serializes access per store; sessions themselves are
// not safe for concurrent use.
type Store struct {
	mu    sync.Mutex
	cache *expirable.LRU[string, *scheduler.Session]
}

// New creates a session store. Non-positive capacity/TTL fall back to the
// defaults.
func New(capacity int, ttl time.Duration) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		cache: expirable.NewLRU[string, *scheduler.Session](capacity, nil, ttl),
	}
}

// Put stores the user's active session, replacing any previous one.
func (s *Store) Put(userID string, sess *scheduler.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Add(userID, sess)
}

// Get returns the user's active session, if any.
func (s *Store) Get(userID string) (*scheduler.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Get(userID)
}

// Remove drops the user's active session.
func (s *Store) Remove(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Remove(userID)
}

// Do runs fn against the user's active session under the store lock.
// Returns ErrNoActiveSession when there is none.
func (s *Store) Do(userID string, fn func(*scheduler.Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.cache.Get(userID)
	if !ok {
		return ErrNoActiveSession
	}
	return fn(sess)
}
