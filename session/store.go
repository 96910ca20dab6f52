// Package session tracks the backend bearer token for each browser
// session. At most one backend session exists per browser context; the
// cookie value is the only key.
package session

import (
	"sync"
	"time"
)

// Store persists short string values under opaque keys with a TTL. It backs
// both the session tokens and the role-resolution cache.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string, ttl time.Duration)
	Delete(key string)
}

type memoryEntry struct {
	value   string
	expires time.Time
}

// MemoryStore is the single-process fallback used when no Redis address is
// configured. Expired entries are dropped lazily on read and by the cron
// sweep.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return "", false
	}
	if time.Now().After(entry.expires) {
		s.Delete(key)
		return "", false
	}
	return entry.value, true
}

func (s *MemoryStore) Set(key, value string, ttl time.Duration) {
	s.mu.Lock()
	s.entries[key] = memoryEntry{value: value, expires: time.Now().Add(ttl)}
	s.mu.Unlock()
}

func (s *MemoryStore) Delete(key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// Sweep removes every expired entry and returns how many were dropped.
func (s *MemoryStore) Sweep() int {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for key, entry := range s.entries {
		if now.After(entry.expires) {
			delete(s.entries, key)
			n++
		}
	}
	return n
}
