package pager

import (
	"sync"

	"golang.org/x/exp/maps"
)

// Dependency is a value the controller watches. Every notification
// schedules a fetch.
type Dependency interface {
	Subscribe(fn func()) (unsubscribe func())
}

type subscriber struct {
	id int
	fn func()
}

// Signal is an observable value. Subscribers run synchronously on the
// goroutine that called Set, after the lock is released.
type Signal[T any] struct {
	mu     sync.RWMutex
	value  T
	equal  func(a, b T) bool
	nextID int
	subs   []subscriber
}

func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{value: initial}
}

// NewSignalFunc returns a signal that stays silent when Set is given a
// value equal to the current one.
func NewSignalFunc[T any](initial T, equal func(a, b T) bool) *Signal[T] {
	return &Signal[T]{value: initial, equal: equal}
}

func (s *Signal[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

func (s *Signal[T]) Set(v T) {
	s.Update(func(T) T { return v })
}

// Update replaces the value with fn(current). fn runs under the signal's
// write lock, so it must not call Get, Set or Update on the same signal.
func (s *Signal[T]) Update(fn func(T) T) {
	s.mu.Lock()
	next := fn(s.value)
	if s.equal != nil && s.equal(s.value, next) {
		s.mu.Unlock()
		return
	}
	s.value = next
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn()
	}
}

func (s *Signal[T]) Subscribe(fn func()) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i], s.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// Filter is caller-owned list filter state. The controller passes it through
// to the fetch callback without interpreting it.
type Filter map[string]string

// NewFilter returns a filter signal that only notifies when the filter
// contents change.
func NewFilter(initial Filter) *Signal[Filter] {
	return NewSignalFunc(initial, func(a, b Filter) bool { return maps.Equal(a, b) })
}

// With returns a copy of f with key set to value. An empty value removes the key.
func (f Filter) With(key, value string) Filter {
	next := maps.Clone(f)
	if next == nil {
		next = Filter{}
	}
	if value == "" {
		delete(next, key)
		return next
	}
	next[key] = value
	return next
}
