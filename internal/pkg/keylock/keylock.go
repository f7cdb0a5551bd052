// Package keylock provides non-blocking per-key locks.
package keylock

import "sync"

// Set hands out at most one lock per key. A caller that finds the key taken
// is turned away instead of waiting.
type Set struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// New creates an empty lock set
func New() *Set {
	return &Set{held: make(map[string]struct{})}
}

// TryLock takes the lock for key. It returns ok=false when the key is already
// locked; otherwise unlock must be called to release it.
func (s *Set) TryLock(key string) (unlock func(), ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.held[key]; taken {
		return nil, false
	}
	s.held[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.held, key)
			s.mu.Unlock()
		})
	}, true
}
