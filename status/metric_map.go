package status

import (
	"maps"
	"slices"
	"sync"
)

// MetricMap holds one metric per Key, created on first Get
// Owners fetch pointers once and update them lock-free afterwards
type MetricMap[T any] struct {
	mu    sync.RWMutex
	items map[Key]*T
}

// NewMetricMap creates an empty MetricMap
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{items: make(map[Key]*T)}
}

// Get returns the metric for key, registering a zero value if absent
func (m *MetricMap[T]) Get(key Key) *T {
	m.mu.RLock()
	ptr, ok := m.items[key]
	m.mu.RUnlock()
	if ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, ok := m.items[key]; ok {
		return ptr
	}
	ptr = new(T)
	m.items[key] = ptr
	return ptr
}

// Has reports whether key was registered
func (m *MetricMap[T]) Has(key Key) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.items[key]
	return ok
}

// Keys returns registered keys in sorted order
func (m *MetricMap[T]) Keys() []Key {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Sorted(maps.Keys(m.items))
}

// Each calls fn for every metric in key order
// fn runs without the lock held, so it may call Get
func (m *MetricMap[T]) Each(fn func(key Key, ptr *T)) {
	for _, k := range m.Keys() {
		fn(k, m.Get(k))
	}
}

// Len returns the number of registered metrics
func (m *MetricMap[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
