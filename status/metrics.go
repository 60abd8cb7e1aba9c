package status

import (
	"slices"
	"sync"
	"sync/atomic"
	"unicode/utf8"
)

// MaxStringLen bounds stored strings in bytes so the debug line stays on one row
const MaxStringLen = 24

// MetricMap hands out one shared *T per key
// Pointers are cached by components at construction; only first use of a key synchronizes
type MetricMap[T any] struct {
	items sync.Map // string -> *T
}

// NewMetricMap creates an empty map
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{}
}

// Get returns the metric for key, creating it on first use
func (m *MetricMap[T]) Get(key string) *T {
	if v, ok := m.items.Load(key); ok {
		return v.(*T)
	}
	v, _ := m.items.LoadOrStore(key, new(T))
	return v.(*T)
}

// Range calls fn for each metric in key order
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	var keys []string
	m.items.Range(func(k, _ any) bool {
		keys = append(keys, k.(string))
		return true
	})
	slices.Sort(keys)
	for _, k := range keys {
		fn(k, m.Get(k))
	}
}

// Count returns the number of keys in use
func (m *MetricMap[T]) Count() int {
	n := 0
	m.items.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// AtomicString is a string metric; the zero value holds ""
type AtomicString struct {
	v atomic.Value
}

// Store sets the value, cut to at most MaxStringLen bytes on a rune boundary
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		cut := MaxStringLen
		for cut > 0 && !utf8.RuneStart(val[cut]) {
			cut--
		}
		val = val[:cut]
	}
	s.v.Store(val)
}

// Load returns the current value
func (s *AtomicString) Load() string {
	v, _ := s.v.Load().(string)
	return v
}
