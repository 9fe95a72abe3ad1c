package session

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Store maps session ids to histories. It holds at most capacity sessions,
// evicting the least recently used, and forgets sessions idle for ttl.
type Store struct {
	mu          sync.Mutex
	cache       *expirable.LRU[string, *History]
	historySize int
}

// NewStore creates a store. A zero ttl disables idle expiry.
func NewStore(capacity int, ttl time.Duration, historySize int) *Store {
	return &Store{
		cache:       expirable.NewLRU[string, *History](capacity, nil, ttl),
		historySize: historySize,
	}
}

// History returns the history for id, creating it on first use.
func (s *Store) History(id string) *History {
	s.mu.Lock()
	defer s.mu.Unlock()

	if h, ok := s.cache.Get(id); ok {
		return h
	}
	h := NewHistory(s.historySize)
	s.cache.Add(id, h)
	return h
}

// Lookup returns the history for id without creating one.
func (s *Store) Lookup(id string) (*History, bool) {
	return s.cache.Get(id)
}

// Remove forgets a session.
func (s *Store) Remove(id string) {
	s.cache.Remove(id)
}

// Len reports how many sessions are held.
func (s *Store) Len() int {
	return s.cache.Len()
}
