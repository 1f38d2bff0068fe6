package canvas

import "sync"

// keyEntry wraps a stored value with frame tracking for staleness detection.
type keyEntry[T any] struct {
	value     *T
	lastFrame uint64
}

// KeyStore is a typed store keyed by node identity keys that drops entries
// not touched during the current frame. It backs the node-proxy factory:
// proxies survive as long as their key keeps appearing in rebuilt view-info
// trees and are discarded the frame the key disappears.
type KeyStore[T any] struct {
	entries map[any]*keyEntry[T]
	frame   uint64
	mu      sync.RWMutex
}

// NewKeyStore creates an empty store.
func NewKeyStore[T any]() *KeyStore[T] {
	return &KeyStore[T]{entries: make(map[any]*keyEntry[T])}
}

// NextFrame advances the store's frame counter. Call once per tree rebuild,
// before touching any entries.
func (s *KeyStore[T]) NextFrame() {
	s.mu.Lock()
	s.frame++
	s.mu.Unlock()
}

// Get returns the value stored for the key, creating it from def when absent,
// and marks the entry as touched this frame. The returned pointer stays valid
// until the entry goes stale.
func (s *KeyStore[T]) Get(key any, def T) *T {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		e.lastFrame = s.frame
		return e.value
	}
	v := def
	s.entries[key] = &keyEntry[T]{value: &v, lastFrame: s.frame}
	return &v
}

// Lookup returns the value stored for the key without touching it,
// or nil when absent.
func (s *KeyStore[T]) Lookup(key any) *T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if e, ok := s.entries[key]; ok {
		return e.value
	}
	return nil
}

// Cleanup removes every entry not touched during the current frame.
// Call after a tree rebuild has touched all live keys.
func (s *KeyStore[T]) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, e := range s.entries {
		if e.lastFrame < s.frame {
			delete(s.entries, key)
		}
	}
}

// Len returns the number of stored entries.
func (s *KeyStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
