package safe

import (
	"sync"
)

// Map is a thread-safe map.
// It is safe for concurrent access by multiple goroutines.
type Map[K comparable, V any] struct {
	m  map[K]V
	mu sync.RWMutex
}

func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{m: make(map[K]V)}
}

func (m *Map[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.m)
}

func (m *Map[K, V]) Get(key K) (actual V, loaded bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	actual, loaded = m.m[key]
	return actual, loaded
}

// GetOrSet returns the existing value for the key if present.
// Otherwise, it stores and returns the value built by create.
// The loaded result is true if the value was loaded, false if stored.
func (m *Map[K, V]) GetOrSet(key K, create func() V) (actual V, loaded bool) {
	if actual, loaded = m.Get(key); loaded {
		return actual, loaded
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.m == nil {
		m.m = make(map[K]V)
	}
	if actual, loaded = m.m[key]; loaded {
		return actual, loaded
	}
	actual = create()
	m.m[key] = actual
	return actual, false
}

// Range calls f for each entry until f returns false. f must not modify m.
func (m *Map[K, V]) Range(f func(key K, value V) bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for k, v := range m.m {
		if !f(k, v) {
			break
		}
	}
}
