package state

import (
	"sync"
	"time"
)

// Store is the persisted console state: auth token, per-screen UI state,
// auth-check cache, console sessions. Implementations are last-write-wins;
// expired entries read as absent.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	SetTTL(key, value string, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// MemStore is the in-memory Store used by tests.
type MemStore struct {
	mu      sync.Mutex
	entries map[string]memEntry
}

type memEntry struct {
	value   string
	expires time.Time // zero = no expiry
}

func NewMemStore() *MemStore {
	return &MemStore{entries: map[string]memEntry{}}
}

func (m *MemStore) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok {
		return "", false, nil
	}
	if !e.expires.IsZero() && time.Now().After(e.expires) {
		delete(m.entries, key)
		return "", false, nil
	}
	return e.value, true, nil
}

func (m *MemStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memEntry{value: value}
	return nil
}

func (m *MemStore) SetTTL(key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memEntry{value: value, expires: time.Now().Add(ttl)}
	return nil
}

func (m *MemStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func (m *MemStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = map[string]memEntry{}
	return nil
}
